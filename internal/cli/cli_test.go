package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_InvalidLogLevel(t *testing.T) {
	err := Run(context.Background(), []string{"tubeflow", "--log-level", "loud", "get", "--skip-install"})
	assert.Error(t, err)
}

func TestRun_GetWithoutURL(t *testing.T) {
	err := Run(context.Background(), []string{
		"tubeflow", "--log-level", "error",
		"get", "--skip-install", "--out", t.TempDir(),
	})
	assert.Error(t, err)
}

func TestRun_GetRejectsUnknownFormat(t *testing.T) {
	err := Run(context.Background(), []string{
		"tubeflow", "--log-level", "error",
		"get", "--skip-install", "--format", "avi", "https://example.com/v",
	})
	assert.Error(t, err)
}

func TestRun_GetRejectsBadProgressInterval(t *testing.T) {
	err := Run(context.Background(), []string{
		"tubeflow", "--log-level", "error",
		"get", "--skip-install", "--progress-interval", "soon", "https://example.com/v",
	})
	assert.Error(t, err)
}
