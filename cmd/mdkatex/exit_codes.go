package main

import (
	"errors"
	"os"

	mdkatex "github.com/dbzhang800/md-katex"
	"github.com/dbzhang800/md-katex/internal/assets"
	"github.com/dbzhang800/md-katex/internal/config"
)

// Exit codes for the mdkatex CLI.
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
	if errors.Is(err, mdkatex.ErrBrowserConnect) ||
		errors.Is(err, mdkatex.ErrPageCreate) ||
		errors.Is(err, mdkatex.ErrPageLoad) ||
		errors.Is(err, mdkatex.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrFlagParse) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, mdkatex.ErrEmptyMarkdown) ||
		errors.Is(err, mdkatex.ErrInvalidPageSize) ||
		errors.Is(err, mdkatex.ErrInvalidOrientation) ||
		errors.Is(err, mdkatex.ErrInvalidMargin) ||
		errors.Is(err, mdkatex.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
