package model

// Phase represents where the window is in the download lifecycle
type Phase string

const (
	// PhaseIdle means no download has been attempted yet
	PhaseIdle Phase = "Idle"

	// PhaseDownloading means a request is in flight
	PhaseDownloading Phase = "Downloading"

	// PhaseCompleted means the last request finished successfully
	PhaseCompleted Phase = "Completed"

	// PhaseFailed means the last request ended with an error
	PhaseFailed Phase = "Failed"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsActive returns true while a request is in flight
func (p Phase) IsActive() bool {
	return p == PhaseDownloading
}

// IsFinished returns true if the last request reached a terminal state
func (p Phase) IsFinished() bool {
	return p == PhaseCompleted || p == PhaseFailed
}
