package ui

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tubeflow/internal/config"
	"github.com/ytget/tubeflow/internal/logging"
	"github.com/ytget/tubeflow/internal/model"
)

// SettingsWindow is the secondary window with the theme selector and a
// snapshot of the console
type SettingsWindow struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	callbacks    SettingsCallbacks

	themeRadio     *widget.RadioGroup
	languageSelect *widget.Select
	consoleText    *widget.Entry
}

// SettingsCallbacks are run on the event loop when the user changes a choice
type SettingsCallbacks struct {
	OnTheme    func(model.Theme)
	OnLanguage func(code string)
}

// NewSettingsWindow creates the settings window
func NewSettingsWindow(app fyne.App, settings *config.Settings, l *Localization, console *logging.Console, current model.Theme, callbacks SettingsCallbacks) *SettingsWindow {
	sw := &SettingsWindow{
		window:       app.NewWindow(l.GetText(KeySettings)),
		settings:     settings,
		localization: l,
		callbacks:    callbacks,
	}
	sw.createUI(console, current)
	return sw
}

// Show displays the window
func (sw *SettingsWindow) Show() {
	sw.window.Show()
}

func (sw *SettingsWindow) createUI(console *logging.Console, current model.Theme) {
	l := sw.localization

	labels := map[string]model.Theme{
		l.GetText(KeyLight): model.ThemeLight,
		l.GetText(KeyDark):  model.ThemeDark,
	}
	sw.themeRadio = widget.NewRadioGroup([]string{l.GetText(KeyLight), l.GetText(KeyDark)}, func(selected string) {
		if t, ok := labels[selected]; ok && sw.callbacks.OnTheme != nil {
			sw.callbacks.OnTheme(t)
		}
	})
	sw.themeRadio.Required = true
	if current == model.ThemeDark {
		sw.themeRadio.Selected = l.GetText(KeyDark)
	} else {
		sw.themeRadio.Selected = l.GetText(KeyLight)
	}

	options := sw.settings.GetLanguageOptions()
	codes := make([]string, 0, len(options))
	for code := range options {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, options[code])
	}
	sw.languageSelect = widget.NewSelect(names, func(name string) {
		for code, n := range options {
			if n != name {
				continue
			}
			if sw.callbacks.OnLanguage != nil {
				sw.callbacks.OnLanguage(code)
			} else {
				sw.settings.SetLanguage(code)
			}
			return
		}
	})
	sw.languageSelect.Selected = options[sw.settings.GetLanguage()]

	sw.consoleText = newConsoleView(SettingsConsoleMinRows)
	sw.consoleText.SetText(console.Text())

	top := container.NewVBox(
		widget.NewLabel(l.GetText(KeyTheme)),
		sw.themeRadio,
		widget.NewLabel(l.GetText(KeyLanguage)),
		sw.languageSelect,
		widget.NewLabel(l.GetText(KeyConsole)),
	)

	sw.window.SetContent(container.NewPadded(container.NewBorder(top, nil, nil, nil, sw.consoleText)))
	sw.window.Resize(SettingsWindowSize)
}
