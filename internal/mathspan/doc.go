// Package mathspan locates KaTeX formula spans in raw Markdown lines and
// rewrites them into wrapper markup a client-side math renderer can find
// after the rest of the document has been converted to HTML.
//
// Two delimiter conventions are recognized for inline math: bracket style
// \( ... \) and GitLab style $`...`$ (a code span of one or two backticks
// bounded by $ on each side). Display math is recognized as a fenced block
// with info string "math" or as a \[ ... \] bracket block. Ordinary code
// spans and plain fenced code blocks are never treated as math and pass
// through untouched.
//
// The transform runs before any generic inline-markup processing. Malformed
// or unterminated delimiters never fail; they degrade to literal text.
package mathspan
