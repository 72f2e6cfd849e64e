package platform

// Package platform contains OS integration: download folder helpers, revealing
// a folder in the system file manager, and playlist listing via the ytdlp library.
