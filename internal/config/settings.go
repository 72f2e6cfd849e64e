package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/tubeflow/internal/model"
	"github.com/ytget/tubeflow/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir = "download_directory"
	KeyFormat      = "output_format"
	KeyQuality     = "quality"
	KeyPlaylist    = "download_as_playlist"
	KeyTheme       = "theme"
	KeyLanguage    = "app_language"
)

// Default values
const (
	DefaultPlaylist = false
	DefaultTheme    = model.ThemeLight
	DefaultLanguage = "system"
)

// Settings persists the form choices between runs
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the last chosen folder, or the user's Downloads
// directory when nothing was chosen yet
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir != "" {
		return dir
	}
	defaultDir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		return ""
	}
	return defaultDir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetFormat returns the persisted output format
func (s *Settings) GetFormat() model.Format {
	f, err := model.ParseFormat(s.app.Preferences().String(KeyFormat))
	if err != nil {
		return model.DefaultFormat
	}
	return f
}

// SetFormat persists the output format
func (s *Settings) SetFormat(f model.Format) {
	s.app.Preferences().SetString(KeyFormat, string(f))
}

// GetQuality returns the persisted quality
func (s *Settings) GetQuality() model.Quality {
	q, err := model.ParseQuality(s.app.Preferences().String(KeyQuality))
	if err != nil {
		return model.DefaultQuality
	}
	return q
}

// SetQuality persists the quality
func (s *Settings) SetQuality(q model.Quality) {
	s.app.Preferences().SetString(KeyQuality, string(q))
}

// GetPlaylist returns whether the playlist box was last checked
func (s *Settings) GetPlaylist() bool {
	return s.app.Preferences().BoolWithFallback(KeyPlaylist, DefaultPlaylist)
}

// SetPlaylist persists the playlist flag
func (s *Settings) SetPlaylist(playlist bool) {
	s.app.Preferences().SetBool(KeyPlaylist, playlist)
}

// GetTheme returns the persisted theme
func (s *Settings) GetTheme() model.Theme {
	return model.ParseTheme(s.app.Preferences().StringWithFallback(KeyTheme, string(DefaultTheme)))
}

// SetTheme persists the theme
func (s *Settings) SetTheme(theme model.Theme) {
	s.app.Preferences().SetString(KeyTheme, string(theme))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
