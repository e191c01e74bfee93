package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	md2cv "github.com/cvkit/md2cv"
	"github.com/cvkit/md2cv/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"browser connect", md2cv.ErrBrowserConnect, ExitBrowser},
		{"page load", md2cv.ErrPageLoad, ExitBrowser},
		{"pdf generation", md2cv.ErrPDFGeneration, ExitBrowser},
		{"input not found", md2cv.ErrInputNotFound, ExitIO},
		{"docx write", md2cv.ErrDocxWrite, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"os not exist", os.ErrNotExist, ExitIO},
		{"invalid format", md2cv.ErrInvalidFormat, ExitUsage},
		{"invalid metadata", md2cv.ErrInvalidMetadata, ExitUsage},
		{"empty markdown", md2cv.ErrEmptyMarkdown, ExitUsage},
		{"template not found", md2cv.ErrTemplateNotFound, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"unknown error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}

	t.Run("wrapped errors are unwrapped", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("converting cv.md: %w", md2cv.ErrTemplateNotFound)
		if got := exitCodeFor(err); got != ExitUsage {
			t.Errorf("exitCodeFor(wrapped) = %d, want %d", got, ExitUsage)
		}
	})
}
