package model

// UIState is the single value describing what the window shows.
// It is owned by the session controller and only mutated on the event loop.
type UIState struct {
	Enabled  bool    // download button, folder button, URL field, playlist check
	Progress float64 // 0 to 100
	Theme    Theme
	Phase    Phase
}

// NewUIState returns the state of a freshly opened window
func NewUIState(theme Theme) UIState {
	return UIState{
		Enabled: true,
		Theme:   theme,
		Phase:   PhaseIdle,
	}
}
