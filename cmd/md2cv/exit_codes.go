package main

import (
	"errors"
	"os"

	md2cv "github.com/cvkit/md2cv"
	"github.com/cvkit/md2cv/internal/assets"
	"github.com/cvkit/md2cv/internal/config"
)

// Exit codes for md2cv CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, md2cv.ErrBrowserConnect) ||
		errors.Is(err, md2cv.ErrPageCreate) ||
		errors.Is(err, md2cv.ErrPageLoad) ||
		errors.Is(err, md2cv.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, md2cv.ErrInputNotFound) ||
		errors.Is(err, md2cv.ErrDocxWrite) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidFormat) ||
		errors.Is(err, md2cv.ErrInvalidFormat) ||
		errors.Is(err, md2cv.ErrInvalidMetadata) ||
		errors.Is(err, md2cv.ErrEmptyMarkdown) ||
		errors.Is(err, md2cv.ErrTemplateNotFound) ||
		errors.Is(err, md2cv.ErrTemplateFileMissing) ||
		errors.Is(err, assets.ErrInvalidTemplateName) ||
		errors.Is(err, assets.ErrInvalidBasePath) {
		return ExitUsage
	}

	return ExitGeneral
}
