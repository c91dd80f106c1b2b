package mathspan

import "regexp"

// Backslash followed by punctuation a Markdown inline-escape pass would
// otherwise swallow (https://daringfireball.net/projects/markdown/syntax#backslash).
var escapedPunctuation = regexp.MustCompile("\\\\([(){}\\[\\]*!`+\\-_#])")

// EscapeBackslashes doubles every backslash that precedes Markdown escape
// punctuation so the backslash survives the host's inline processing.
// It is applied exactly once, to inline math bodies, at wrapping time.
func EscapeBackslashes(text string) string {
	return escapedPunctuation.ReplaceAllString(text, `\\$1`)
}
