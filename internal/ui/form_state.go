package ui

import (
	"fyne.io/fyne/v2/data/binding"

	"github.com/ytget/tubeflow/internal/config"
	"github.com/ytget/tubeflow/internal/model"
)

// FormState holds what the user typed and picked in the main window
type FormState struct {
	URL      binding.String
	Folder   binding.String
	Playlist binding.Bool
	Format   binding.String
	Quality  binding.String
}

// NewFormState creates a form with default choices
func NewFormState() *FormState {
	f := &FormState{
		URL:      binding.NewString(),
		Folder:   binding.NewString(),
		Playlist: binding.NewBool(),
		Format:   binding.NewString(),
		Quality:  binding.NewString(),
	}
	_ = f.Format.Set(string(model.DefaultFormat))
	_ = f.Quality.Set(string(model.DefaultQuality))
	return f
}

// Load fills the form from persisted settings. The URL is never persisted.
func (f *FormState) Load(settings *config.Settings) {
	_ = f.Folder.Set(settings.GetDownloadDirectory())
	_ = f.Playlist.Set(settings.GetPlaylist())
	_ = f.Format.Set(string(settings.GetFormat()))
	_ = f.Quality.Set(string(settings.GetQuality()))
}

// Save persists the current choices
func (f *FormState) Save(settings *config.Settings) {
	req := f.Request()
	if req.Folder != "" {
		settings.SetDownloadDirectory(req.Folder)
	}
	settings.SetPlaylist(req.Playlist)
	settings.SetFormat(req.Format)
	settings.SetQuality(req.Quality)
}

// Request returns a snapshot of the form as a download request
func (f *FormState) Request() model.DownloadRequest {
	url, _ := f.URL.Get()
	folder, _ := f.Folder.Get()
	playlist, _ := f.Playlist.Get()
	format, _ := f.Format.Get()
	quality, _ := f.Quality.Get()

	req := model.DownloadRequest{
		URL:      url,
		Folder:   folder,
		Playlist: playlist,
		Format:   model.Format(format),
		Quality:  model.Quality(quality),
	}
	if parsed, err := model.ParseFormat(format); err == nil {
		req.Format = parsed
	}
	if parsed, err := model.ParseQuality(quality); err == nil {
		req.Quality = parsed
	}
	return req
}
