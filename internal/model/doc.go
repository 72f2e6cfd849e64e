package model

// Package model defines the domain values shared across the app: the download
// request captured from the form, engine progress events, the UI state owned by
// the session controller, and playlist previews. Values are plain data and are
// passed by value between goroutines.
