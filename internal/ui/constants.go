package ui

import "fyne.io/fyne/v2"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconLanguage = "🌐"
)

// Social links
const (
	GitHubURL    = "https://www.github.com/el-guemra-br"
	InstagramURL = "https://www.instagram.com/el_guemra_br"
)

// Window sizing
var (
	MainWindowSize     = fyne.NewSize(600, 560)
	SettingsWindowSize = fyne.NewSize(460, 380)
)

// Console sizing
const (
	ConsoleMinRows         = 8
	SettingsConsoleMinRows = 10
)

// Playlist entries listed into the console
const (
	PlaylistPreviewLimit = 200
)

// Progress bar scale
const (
	ProgressMax = 100
)
