package mathspan

import (
	"regexp"
	"strings"
)

// Code span delimiter: a run of one or two backticks. A three-backtick run
// is a fence, which the block scanner intercepts before inline scanning.
var codeSpanDelim = regexp.MustCompile("`{1,2}")

// Span is an inline math region within one line. Start is the byte offset
// of the opening delimiter, End the offset just past the closing delimiter,
// and Body the text between them with both delimiters excluded.
type Span struct {
	Start int
	End   int
	Body  string
}

// ScanInline returns the inline math spans of a single line, non-overlapping
// and sorted by start offset.
//
// The line is scanned left to right. Bracket math \( ... \) is matched only
// in the region strictly before the next code span, so a formula can never
// straddle into literal code. A balanced code span bounded by $ on each side
// is reported as GitLab-style math; any other code span is skipped as plain
// code. Unterminated openings are abandoned and scanning continues past them.
//
// Callers must apply the spans to the line in reverse start order so earlier
// offsets stay valid while later ones are rewritten.
func ScanInline(line string) []Span {
	var spans []Span

	pos := 0
	for pos < len(line) {
		loc := codeSpanDelim.FindStringIndex(line[pos:])
		if loc == nil {
			// No code span remains; the rest of the line is plain text.
			spans = append(spans, scanBrackets(line, pos, len(line))...)
			break
		}

		delimStart := pos + loc[0]
		delimEnd := pos + loc[1]
		delim := line[delimStart:delimEnd]

		// Bracket math must open and close strictly before the code span.
		spans = append(spans, scanBrackets(line, pos, delimStart)...)

		rel := strings.Index(line[delimEnd:], delim)
		if rel < 0 {
			// Unbalanced run: not a code span, skip past the opening.
			pos = delimStart + len(delim)
			continue
		}
		closeStart := delimEnd + rel
		closeEnd := closeStart + len(delim)

		if delimStart > 0 && line[delimStart-1] == '$' &&
			closeEnd < len(line) && line[closeEnd] == '$' {
			// GitLab-style math: the reported span includes both $ bounds,
			// the body is the text strictly inside the backtick runs.
			spans = append(spans, Span{
				Start: delimStart - 1,
				End:   closeEnd + 1,
				Body:  line[delimEnd:closeStart],
			})
			pos = closeEnd + 1
			continue
		}

		// Ordinary code span: resume after it, nothing reported.
		pos = closeEnd
	}

	return spans
}

// scanBrackets finds bracket-style math pairs whose opening and closing both
// lie in line[from:to]. An opening with no in-region closing is abandoned and
// the search continues past it.
func scanBrackets(line string, from, to int) []Span {
	const opening = `\(`
	closing := closingDelim(opening)

	var spans []Span
	region := line[:to]

	pos := from
	for pos < to {
		i := strings.Index(region[pos:], opening)
		if i < 0 {
			break
		}
		start := pos + i
		bodyStart := start + len(opening)

		j := strings.Index(region[bodyStart:], closing)
		if j < 0 {
			pos = bodyStart
			continue
		}
		bodyEnd := bodyStart + j

		spans = append(spans, Span{
			Start: start,
			End:   bodyEnd + len(closing),
			Body:  line[bodyStart:bodyEnd],
		})
		pos = bodyEnd + len(closing)
	}

	return spans
}
