package ui

// Package ui contains the Fyne desktop window: the download form, the console
// pane, the settings window and the themed widget tree the palette recolors.
// It renders session state through the session.View interface.
