package download

// Package download runs a single download request against yt-dlp (driven through
// github.com/lrstanley/go-ytdlp). It validates the request, derives engine
// options, runs the engine on its own goroutine, projects progress events onto a
// percentage and classifies the outcome for display.
