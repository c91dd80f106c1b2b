package mdkatex

import "time"

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout       time.Duration
	styleInput    string // name, file path, or literal CSS
	resolvedStyle string // CSS content after resolution
	katex         Katex
	assetPath     string
}

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdkatex: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithStyle sets the document stylesheet. The value may be a built-in style
// name, a path to a CSS file, or literal CSS content; it is resolved once at
// construction time. A front matter style in a document overrides it.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithKatex overrides the KaTeX assets referenced from generated pages.
// Per-document overrides via Input.Katex take precedence field by field.
func WithKatex(k Katex) Option {
	return func(c *Converter) {
		c.cfg.katex = k
	}
}

// WithAssetPath loads styles and the page template from a directory instead
// of the embedded assets. The directory must contain styles/ and templates/
// subdirectories.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom asset loader. Takes precedence over
// WithAssetPath.
func WithAssetLoader(l AssetLoader) Option {
	return func(c *Converter) {
		if l != nil {
			c.assetLoader = l
		}
	}
}
