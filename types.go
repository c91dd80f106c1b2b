package mdkatex

import (
	"fmt"
	"strings"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Katex overrides the KaTeX assets referenced from the generated page.
// Setting Version builds CDN URLs for that release; setting a URL replaces
// the corresponding asset outright. Either way the pinned integrity hashes
// are dropped, since they are only known for the built-in release.
type Katex struct {
	Version       string // CDN version, e.g. "0.16.11"
	StylesheetURL string // Full katex.min.css URL
	ScriptURL     string // Full katex.min.js URL
	AutoRenderURL string // Full auto-render.min.js URL
}

// Input contains conversion parameters.
type Input struct {
	Markdown  string        // Markdown content (required)
	Title     string        // Page title (optional, front matter or "Document" otherwise)
	CSS       string        // Extra CSS appended after the converter style (optional)
	SourceDir string        // Directory for resolving relative image/link paths (optional)
	Katex     *Katex        // KaTeX asset overrides (optional, nil = converter setting)
	Page      *PageSettings // Page settings (optional, nil = defaults)
	HTMLOnly  bool          // Skip PDF generation
}

// ConvertResult holds conversion output.
type ConvertResult struct {
	HTML []byte // Assembled HTML page, always present
	PDF  []byte // Printed document, empty when HTMLOnly was set
}
