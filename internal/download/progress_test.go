package download

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/tubeflow/internal/model"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name   string
		event  model.ProgressEvent
		want   float64
		wantOK bool
	}{
		{
			name:   "downloading with known total",
			event:  model.ProgressEvent{Status: model.ProgressDownloading, DownloadedBytes: 250, TotalBytes: 1000},
			want:   25,
			wantOK: true,
		},
		{
			name:   "downloading start",
			event:  model.ProgressEvent{Status: model.ProgressDownloading, DownloadedBytes: 0, TotalBytes: 1000},
			want:   0,
			wantOK: true,
		},
		{
			name:   "downloading complete",
			event:  model.ProgressEvent{Status: model.ProgressDownloading, DownloadedBytes: 1000, TotalBytes: 1000},
			want:   100,
			wantOK: true,
		},
		{
			name:   "downloading with unknown total",
			event:  model.ProgressEvent{Status: model.ProgressDownloading, DownloadedBytes: 500},
			wantOK: false,
		},
		{
			name:   "finished without byte fields",
			event:  model.ProgressEvent{Status: model.ProgressFinished},
			want:   100,
			wantOK: true,
		},
		{
			name:   "finished with partial byte fields",
			event:  model.ProgressEvent{Status: model.ProgressFinished, DownloadedBytes: 3, TotalBytes: 10},
			want:   100,
			wantOK: true,
		},
		{
			name:   "other status",
			event:  model.ProgressEvent{Status: "post_processing", DownloadedBytes: 3, TotalBytes: 10},
			wantOK: false,
		},
		{
			name:   "overshoot is clamped",
			event:  model.ProgressEvent{Status: model.ProgressDownloading, DownloadedBytes: 1200, TotalBytes: 1000},
			want:   100,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Project(tt.event)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestProject_Ratio(t *testing.T) {
	for total := int64(1); total <= 4096; total *= 3 {
		for _, downloaded := range []int64{0, total / 3, total / 2, total} {
			got, ok := Project(model.ProgressEvent{
				Status:          model.ProgressDownloading,
				DownloadedBytes: downloaded,
				TotalBytes:      total,
			})
			assert.True(t, ok)
			assert.InDelta(t, 100*float64(downloaded)/float64(total), got, 1e-9)
		}
	}
}
