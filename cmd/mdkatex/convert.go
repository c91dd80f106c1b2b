package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	mdkatex "github.com/dbzhang800/md-katex"
	"github.com/dbzhang800/md-katex/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput        = errors.New("no input specified")
	ErrReadMarkdown   = errors.New("failed to read markdown file")
	ErrReadCSS        = errors.New("failed to read CSS file")
	ErrWriteOutput    = errors.New("failed to write output file")
	ErrFlagParse      = errors.New("invalid flags")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	title      string
	css        string
	katex      *mdkatex.Katex
	page       *mdkatex.PageSettings
	htmlOnly   bool
	htmlOutput bool
}

// runConvert orchestrates the conversion process with an already-built pool.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, cfg *config.Config, pool Pool, env *Environment) error {
	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	outputExt := ".pdf"
	if flags.outputMode.htmlOnly {
		outputExt = ".html"
	}

	files, err := discoverFiles(inputPath, outputDir, outputExt)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files under %s", ErrNoInput, inputPath)
	}

	// Extra CSS is read once and appended to every document's style.
	var cssContent string
	if flags.css != "" {
		data, err := os.ReadFile(flags.css) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		cssContent = string(data)
	}

	params := &conversionParams{
		title:      cfg.Document.Title,
		css:        cssContent,
		katex:      katexOverride(cfg.Katex),
		page:       pageSettings(cfg.Page),
		htmlOnly:   flags.outputMode.htmlOnly,
		htmlOutput: flags.outputMode.html,
	}

	results := convertBatch(ctx, pool, files, params)

	failedCount := printResultsWithWriter(results, flags.quiet, flags.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}

	return nil
}

// resolveInputPath picks the input from positional args or config.
func resolveInputPath(positionalArgs []string, cfg *config.Config) (string, error) {
	if len(positionalArgs) > 0 {
		return positionalArgs[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", fmt.Errorf("%w: pass a file or directory, or set input.defaultDir in config", ErrNoInput)
}

// loadConfig loads the named config, or defaults when none is given.
func loadConfig(flags *convertFlags) (*config.Config, error) {
	if flags.config == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(flags.config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.title != "" {
		cfg.Document.Title = flags.title
	}
	if flags.style != "" {
		cfg.CSS.Style = flags.style
	}

	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin != 0 {
		cfg.Page.Margin = flags.page.margin
	}

	if flags.katex.version != "" {
		cfg.Katex.Version = flags.katex.version
	}
	if flags.katex.stylesheetURL != "" {
		cfg.Katex.StylesheetURL = flags.katex.stylesheetURL
	}
	if flags.katex.scriptURL != "" {
		cfg.Katex.ScriptURL = flags.katex.scriptURL
	}
	if flags.katex.autoRenderURL != "" {
		cfg.Katex.AutoRenderURL = flags.katex.autoRenderURL
	}
}

// converterOptions builds the converter options shared by all pool workers.
func converterOptions(flags *convertFlags, cfg *config.Config) ([]mdkatex.Option, error) {
	var opts []mdkatex.Option

	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q (use formats like 30s or 2m)", ErrInvalidTimeout, flags.timeout)
		}
		opts = append(opts, mdkatex.WithTimeout(d))
	}

	if cfg.CSS.Style != "" {
		opts = append(opts, mdkatex.WithStyle(cfg.CSS.Style))
	}
	if flags.assetPath != "" {
		opts = append(opts, mdkatex.WithAssetPath(flags.assetPath))
	}
	if k := katexOverride(cfg.Katex); k != nil {
		opts = append(opts, mdkatex.WithKatex(*k))
	}

	return opts, nil
}

// katexOverride converts a config KaTeX section into an override, or nil
// when nothing is set.
func katexOverride(k config.KatexConfig) *mdkatex.Katex {
	if k.Version == "" && k.StylesheetURL == "" && k.ScriptURL == "" && k.AutoRenderURL == "" {
		return nil
	}
	return &mdkatex.Katex{
		Version:       k.Version,
		StylesheetURL: k.StylesheetURL,
		ScriptURL:     k.ScriptURL,
		AutoRenderURL: k.AutoRenderURL,
	}
}

// pageSettings converts a config page section into page settings, or nil
// when nothing is set. Partial sections are filled with defaults so that
// validation sees complete values.
func pageSettings(p config.PageConfig) *mdkatex.PageSettings {
	if p.Size == "" && p.Orientation == "" && p.Margin == 0 {
		return nil
	}
	settings := mdkatex.DefaultPageSettings()
	if p.Size != "" {
		settings.Size = p.Size
	}
	if p.Orientation != "" {
		settings.Orientation = p.Orientation
	}
	if p.Margin != 0 {
		settings.Margin = p.Margin
	}
	return settings
}
