package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "tubeflow.png"
)

// LoadLogoResource loads the window icon from the working directory.
// A missing file only leaves the toolkit's default icon in place.
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
