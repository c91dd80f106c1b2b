package mdkatex

import (
	"regexp"
	"strings"

	"github.com/dbzhang800/md-katex/internal/mathspan"
)

var lineEndings = regexp.MustCompile(`\r\n?`)

// Transform rewrites the math delimiter spans of an ordered line sequence
// into wrapper markup, returning the transformed sequence. Inline spans
// become <span class="math-inline">\(...\)</span> with the body
// backslash-escaped; display blocks become
// <div class="math-block">\[...\]</div>. Spans inside code spans and code
// fences are never touched, and unterminated constructs pass through
// unchanged.
//
// This is the raw delimiter rewriting stage; Converter.Convert applies it
// as part of the full pipeline.
func Transform(lines []string) []string {
	return mathspan.Transform(lines)
}

// Preprocess is the whole-document convenience form of Transform: it
// normalizes line endings to \n, transforms the math delimiter spans, and
// joins the result.
func Preprocess(content string) string {
	normalized := lineEndings.ReplaceAllString(content, "\n")
	return strings.Join(Transform(strings.Split(normalized, "\n")), "\n")
}
