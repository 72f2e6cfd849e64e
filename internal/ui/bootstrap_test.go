package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ytget/tubeflow/internal/download"
	"github.com/ytget/tubeflow/internal/model"
	"github.com/ytget/tubeflow/internal/session"
)

type fakeInstaller struct {
	present bool
	result  download.EngineInstall
	err     error
}

func (f *fakeInstaller) Installed(context.Context) bool {
	return f.present
}

func (f *fakeInstaller) Ensure(context.Context) (download.EngineInstall, error) {
	return f.result, f.err
}

type noticeView struct {
	kinds    []session.NoticeKind
	messages []string
}

func (v *noticeView) SetControlsEnabled(bool) {}
func (v *noticeView) SetProgress(float64)     {}
func (v *noticeView) SetPhase(model.Phase)    {}
func (v *noticeView) Notify(kind session.NoticeKind, _, message string) {
	v.kinds = append(v.kinds, kind)
	v.messages = append(v.messages, message)
}

func TestBootstrapEngine(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		name      string
		installer *fakeInstaller
		kinds     []session.NoticeKind
		messages  []string
	}{
		{
			name: "cached engine shows nothing",
			installer: &fakeInstaller{
				present: true,
				result:  download.EngineInstall{Executable: "/cache/yt-dlp"},
			},
		},
		{
			name: "missing engine announces install",
			installer: &fakeInstaller{
				result: download.EngineInstall{Executable: "/cache/yt-dlp", Downloaded: true},
			},
			kinds:    []session.NoticeKind{session.NoticeInfo, session.NoticeInfo},
			messages: []string{l.GetText(KeyInstalling), l.GetText(KeyInstalled)},
		},
		{
			name: "install failure",
			installer: &fakeInstaller{
				err: errors.New("network down"),
			},
			kinds:    []session.NoticeKind{session.NoticeInfo, session.NoticeError},
			messages: []string{l.GetText(KeyInstalling), l.GetText(KeyInstallFailed)},
		},
		{
			name: "replaced engine reports the install",
			installer: &fakeInstaller{
				present: true,
				result:  download.EngineInstall{Executable: "/cache/yt-dlp", Downloaded: true},
			},
			kinds:    []session.NoticeKind{session.NoticeInfo},
			messages: []string{l.GetText(KeyInstalled)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := &noticeView{}
			bootstrapEngine(context.Background(), tt.installer, l, view, session.Serial(), zap.NewNop())

			assert.Equal(t, tt.kinds, view.kinds)
			assert.Equal(t, tt.messages, view.messages)
		})
	}
}
