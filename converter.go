package mdkatex

import (
	"context"
	"fmt"
	"html/template"
	"os"

	"github.com/dbzhang800/md-katex/internal/assets"
	"github.com/dbzhang800/md-katex/internal/fileutil"
	"github.com/dbzhang800/md-katex/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.KatexPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pdfConverter                  = (*rodConverter)(nil)
	_ pdfRenderer                   = (*rodRenderer)(nil)
)

// AssetLoader defines the contract for loading CSS styles and page templates.
// Implementations may load from the filesystem, object storage, a database, etc.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML page template by name (without .html extension).
	LoadTemplate(name string) (string, error)
}

// NewAssetLoader creates an AssetLoader reading {basePath}/styles/*.css and
// {basePath}/templates/*.html. For use with WithAssetLoader.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	return assets.NewFilesystemLoader(basePath)
}

// Converter orchestrates the markdown-to-page conversion pipeline.
// Create with NewConverter(), use Convert() for conversion, and Close()
// when done.
type Converter struct {
	cfg           converterConfig
	assetLoader   AssetLoader
	pageTemplate  string
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	pdfConverter  pdfConverter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithStyle,
// WithKatex). Returns error if asset loading fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:           converterConfig{timeout: defaultTimeout},
		assetLoader:   assets.NewEmbeddedLoader(),
		preprocessor:  &pipeline.KatexPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Handle WithAssetPath; WithAssetLoader wins if both are given.
	if c.cfg.assetPath != "" && isEmbeddedLoader(c.assetLoader) {
		loader, err := assets.NewFilesystemLoader(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = loader
	}

	// Resolve style input (name, path, or CSS content) to CSS content.
	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	// Custom loaders need not ship the built-ins; fall back to embedded.
	tmpl, err := c.assetLoader.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		tmpl, err = assets.LoadTemplate(assets.DefaultTemplateName)
		if err != nil {
			return nil, fmt.Errorf("loading page template: %w", err)
		}
	}
	c.pageTemplate = tmpl

	// Create PDF converter if not injected (e.g., by tests)
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

func isEmbeddedLoader(l AssetLoader) bool {
	_, ok := l.(*assets.EmbeddedLoader)
	return ok
}

// Convert runs the full pipeline and returns the result containing the HTML
// page and, unless input.HTMLOnly is set, the printed PDF.
// The context is used for cancellation and timeout.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}
	if err := input.Page.Validate(); err != nil {
		return nil, err
	}

	fm, body, err := pipeline.ExtractFrontMatter(input.Markdown)
	if err != nil {
		return nil, err
	}

	// Wrap math spans before any Markdown inline processing can touch them.
	mdContent := c.preprocessor.PreprocessMarkdown(ctx, body)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fragment, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// Rewrite relative paths to absolute file:// URLs (if source directory provided)
	if input.SourceDir != "" {
		fragment, err = pipeline.RewriteRelativePaths(fragment, input.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("rewriting relative paths: %w", err)
		}
	}

	// Build combined CSS. Order matters: converter or front matter style
	// first (base), per-conversion CSS last (can override).
	cssContent := c.cfg.resolvedStyle
	if fm.Style != "" {
		cssContent, err = c.resolveStyleInput(fm.Style)
		if err != nil {
			return nil, err
		}
	}
	if input.CSS != "" {
		cssContent += "\n" + input.CSS
	}

	title := input.Title
	if title == "" {
		title = fm.Title
	}

	page, err := pipeline.AssemblePage(c.pageTemplate, pipeline.PageData{
		Title: title,
		Katex: c.katexAssets(input.Katex),
		CSS:   template.CSS(cssContent), // #nosec G203 -- style content is operator-provided
		Body:  template.HTML(fragment),  // #nosec G203 -- fragment produced by our own pipeline
	})
	if err != nil {
		return nil, err
	}

	res := &ConvertResult{HTML: []byte(page)}

	// Skip PDF generation if HTMLOnly mode
	if input.HTMLOnly {
		return res, nil
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, page, &pdfOptions{Page: input.Page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// katexAssets merges the converter-level KaTeX setting with a per-document
// override, then resolves it to concrete asset references. Any URL override
// drops the pinned integrity hash for that asset.
func (c *Converter) katexAssets(override *Katex) pipeline.KatexAssets {
	merged := c.cfg.katex
	if override != nil {
		if override.Version != "" {
			merged.Version = override.Version
		}
		if override.StylesheetURL != "" {
			merged.StylesheetURL = override.StylesheetURL
		}
		if override.ScriptURL != "" {
			merged.ScriptURL = override.ScriptURL
		}
		if override.AutoRenderURL != "" {
			merged.AutoRenderURL = override.AutoRenderURL
		}
	}

	ka := pipeline.KatexAssetsForVersion(merged.Version)
	if merged.StylesheetURL != "" {
		ka.StylesheetURL = merged.StylesheetURL
		ka.StylesheetIntegrity = ""
	}
	if merged.ScriptURL != "" {
		ka.ScriptURL = merged.ScriptURL
		ka.ScriptIntegrity = ""
	}
	if merged.AutoRenderURL != "" {
		ka.AutoRenderURL = merged.AutoRenderURL
		ka.AutoRenderIntegrity = ""
	}
	return ka
}

// resolveStyle resolves the converter-level style setting to CSS content.
// Called during NewConverter() after options are applied and the asset
// loader is configured. An unset style falls back to the built-in default.
func (c *Converter) resolveStyle() error {
	if c.cfg.styleInput == "" {
		css, err := c.assetLoader.LoadStyle(assets.DefaultStyleName)
		if err != nil {
			css, err = assets.LoadStyle(assets.DefaultStyleName)
			if err != nil {
				return fmt.Errorf("loading default style: %w", err)
			}
		}
		c.cfg.resolvedStyle = css
		return nil
	}

	css, err := c.resolveStyleInput(c.cfg.styleInput)
	if err != nil {
		return err
	}
	c.cfg.resolvedStyle = css
	return nil
}

// resolveStyleInput resolves a style value (name, path, or CSS content) to
// CSS content. Also used at Convert time for front matter styles.
func (c *Converter) resolveStyleInput(input string) (string, error) {
	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("loading style file %q: %w", input, err)
		}
		return string(content), nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		return input, nil
	}

	// Style name -> use asset loader
	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return "", fmt.Errorf("loading style %q: %w", input, err)
	}
	return css, nil
}
