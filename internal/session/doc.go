// Package session holds the window's single UIState value and applies the
// lifecycle of one download to it: disable controls, follow progress, re-enable
// and notify. Worker goroutines never touch the view directly; every update is
// handed to a Dispatcher that runs it on the event loop.
package session
