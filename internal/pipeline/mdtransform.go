package pipeline

import (
	"context"
	"regexp"
	"strings"

	"github.com/dbzhang800/md-katex/internal/mathspan"
)

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// CommonMark consumes a backslash before punctuation, which would strip the
// \( \) markers the client-side renderer scans for. Doubling the backslash
// inside the inline wrapper delimiters survives that pass. Block wrappers
// are HTML blocks, skip inline processing entirely, and need no armor.
var inlineDelimArmor = strings.NewReplacer(
	`<span class="math-inline">\(`, `<span class="math-inline">\\(`,
	`\)</span>`, `\\)</span>`,
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// KatexPreprocessor wraps math formula spans in marker elements before
// CommonMark conversion, so the generated page can hand the formulas to
// KaTeX's auto-render script untouched by Markdown inline processing.
type KatexPreprocessor struct{}

var _ MarkdownPreprocessor = (*KatexPreprocessor)(nil)

// PreprocessMarkdown normalizes line endings and rewrites math delimiter
// spans into wrapper markup, line by line.
func (p *KatexPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	normalized := crlfOrCR.ReplaceAllString(content, "\n")
	lines := mathspan.Transform(strings.Split(normalized, "\n"))
	return inlineDelimArmor.Replace(strings.Join(lines, "\n"))
}
