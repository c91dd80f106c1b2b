package mathspan

import (
	"regexp"
	"strings"
	"unicode"
)

// Fence opening: optional indent, a run of 3+ backticks or tildes, then the
// info string.
var fenceOpen = regexp.MustCompile("^([ \t]*)(`{3,}|~{3,})(.*)$")

// scanState tracks which multi-line construct the scanner is inside.
type scanState int

const (
	stateNormal scanState = iota
	stateInFence
	stateInFenceMath
	stateInBracketBlock
)

// blockScanner holds the per-document scan state. A fresh value is created
// for every Transform call, so concurrent transforms never share state.
type blockScanner struct {
	state scanState

	// Fence context recorded at the opening line.
	indent  string
	marker  byte
	markers int

	// Lines buffered since a block opening, including the opening line.
	buf []string

	out []string
}

// Transform rewrites the math delimiter spans of an ordered line sequence
// into wrapper markup, returning the transformed sequence. Most lines map
// 1:1; a closed math block collapses its buffered range into a single line.
// Plain fenced code passes through byte for byte, and unterminated blocks
// degrade to verbatim passthrough at end of document.
func Transform(lines []string) []string {
	s := &blockScanner{out: make([]string, 0, len(lines))}
	for _, line := range lines {
		s.scanLine(line)
	}
	// Unclosed block: flush the buffered lines unwrapped.
	s.out = append(s.out, s.buf...)
	return s.out
}

func (s *blockScanner) scanLine(line string) {
	switch s.state {
	case stateInFence:
		s.out = append(s.out, line)
		if s.closesFence(line) {
			s.state = stateNormal
		}

	case stateInFenceMath:
		s.buf = append(s.buf, line)
		if s.closesFence(line) {
			s.out = append(s.out, encloseFencedBlockMath(s.buf, s.indent))
			s.buf = nil
			s.state = stateNormal
		}

	case stateInBracketBlock:
		s.buf = append(s.buf, line)
		if strings.Contains(line, closingDelim(`\[`)) {
			s.out = append(s.out, encloseBracketBlockMath(s.buf))
			s.buf = nil
			s.state = stateNormal
		}

	default:
		s.scanNormal(line)
	}
}

// scanNormal classifies a line encountered outside any block construct.
func (s *blockScanner) scanNormal(line string) {
	if m := fenceOpen.FindStringSubmatch(line); m != nil {
		s.indent = m[1]
		s.marker = m[2][0]
		s.markers = len(m[2])

		if strings.TrimRight(m[3], " \t") == "math" {
			s.state = stateInFenceMath
			s.buf = append(s.buf, line)
			return
		}

		s.state = stateInFence
		s.out = append(s.out, line)
		return
	}

	if strings.HasPrefix(strings.TrimLeft(line, " \t"), `\[`) {
		s.state = stateInBracketBlock
		s.buf = append(s.buf, line)
		return
	}

	s.out = append(s.out, renderInlineMath(line))
}

// closesFence reports whether a line closes the currently open fence: the
// recorded indent, then the fence character repeated at least as many times
// as the opening run, and nothing else but trailing whitespace.
func (s *blockScanner) closesFence(line string) bool {
	trimmed := strings.TrimRight(line, " \t")
	if !strings.HasPrefix(trimmed, s.indent) {
		return false
	}
	run := trimmed[len(s.indent):]
	if len(run) < s.markers {
		return false
	}
	for i := 0; i < len(run); i++ {
		if run[i] != s.marker {
			return false
		}
	}
	return true
}

// renderInlineMath wraps every inline math span of a line, applying the
// replacements in reverse start order so earlier offsets stay valid.
func renderInlineMath(line string) string {
	spans := ScanInline(line)
	for i := len(spans) - 1; i >= 0; i-- {
		sp := spans[i]
		line = line[:sp.Start] + encloseInlineMath(sp.Body) + line[sp.End:]
	}
	return line
}

// encloseInlineMath wraps an inline math body, normalized to bracket
// delimiters, in the inline wrapper element. The literal \( \) survive
// inside the wrapper so the client-side renderer can find them.
func encloseInlineMath(body string) string {
	return `<span class="math-inline">\(` + EscapeBackslashes(body) + `\)</span>`
}

// encloseFencedBlockMath wraps the interior of a closed math fence. The
// opening indent is stripped from every interior line and trailing
// whitespace is dropped. Block bodies are not backslash-escaped: they are
// never fed back through inline Markdown processing.
func encloseFencedBlockMath(buf []string, indent string) string {
	interior := make([]string, 0, len(buf)-2)
	for _, line := range buf[1 : len(buf)-1] {
		interior = append(interior, strings.TrimPrefix(line, indent))
	}
	return encloseBlockMath(strings.Join(interior, "\n"))
}

// encloseBracketBlockMath wraps the interior of a closed \[ \] block,
// joined as-is.
func encloseBracketBlockMath(buf []string) string {
	return encloseBlockMath(strings.Join(buf[1:len(buf)-1], "\n"))
}

func encloseBlockMath(body string) string {
	body = strings.TrimRightFunc(body, unicode.IsSpace)
	return `<div class="math-block">\[` + "\n" + body + "\n" + `\]</div>`
}
