package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	mdkatex "github.com/dbzhang800/md-katex"
	"github.com/dbzhang800/md-katex/internal/assets"
	"github.com/dbzhang800/md-katex/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "generic error", err: errors.New("boom"), want: ExitGeneral},
		{name: "browser connect", err: mdkatex.ErrBrowserConnect, want: ExitBrowser},
		{name: "pdf generation", err: mdkatex.ErrPDFGeneration, want: ExitBrowser},
		{name: "wrapped browser error", err: fmt.Errorf("converting: %w", mdkatex.ErrPageLoad), want: ExitBrowser},
		{name: "file not found", err: os.ErrNotExist, want: ExitIO},
		{name: "read markdown", err: ErrReadMarkdown, want: ExitIO},
		{name: "write output", err: ErrWriteOutput, want: ExitIO},
		{name: "no input", err: ErrNoInput, want: ExitIO},
		{name: "flag parse", err: ErrFlagParse, want: ExitUsage},
		{name: "invalid extension", err: ErrInvalidExtension, want: ExitUsage},
		{name: "invalid workers", err: ErrInvalidWorkerCount, want: ExitUsage},
		{name: "invalid timeout", err: ErrInvalidTimeout, want: ExitUsage},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: fmt.Errorf("loading config: %w", config.ErrConfigParse), want: ExitUsage},
		{name: "style not found", err: assets.ErrStyleNotFound, want: ExitUsage},
		{name: "empty markdown", err: mdkatex.ErrEmptyMarkdown, want: ExitUsage},
		{name: "invalid page size", err: mdkatex.ErrInvalidPageSize, want: ExitUsage},
		{name: "invalid margin", err: mdkatex.ErrInvalidMargin, want: ExitUsage},
		{name: "invalid asset path", err: mdkatex.ErrInvalidAssetPath, want: ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
