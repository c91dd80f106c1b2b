package mathspan

import (
	"reflect"
	"strings"
	"testing"
)

func TestTransform_InlineLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "plain lines unchanged",
			lines: []string{"# Title", "", "Some prose."},
			want:  []string{"# Title", "", "Some prose."},
		},
		{
			name:  "bracket inline math wrapped",
			lines: []string{`Formula: \(E=mc^2\)`},
			want:  []string{`Formula: <span class="math-inline">\(E=mc^2\)</span>`},
		},
		{
			name:  "gitlab inline math normalized to bracket form",
			lines: []string{"Gitlab: $`E=mc^2`$"},
			want:  []string{`Gitlab: <span class="math-inline">\(E=mc^2\)</span>`},
		},
		{
			name:  "inline body escaped at wrap time",
			lines: []string{`\(x \_ y\)`},
			want:  []string{`<span class="math-inline">\(x \\_ y\)</span>`},
		},
		{
			name:  "two spans on one line keep textual order",
			lines: []string{`\(a\) mid \(b\)`},
			want: []string{
				`<span class="math-inline">\(a\)</span> mid <span class="math-inline">\(b\)</span>`,
			},
		},
		{
			name:  "unterminated opening left literal",
			lines: []string{`\(no close`},
			want:  []string{`\(no close`},
		},
		{
			name:  "plain code span left literal",
			lines: []string{"`\\(not math\\)`"},
			want:  []string{"`\\(not math\\)`"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Transform(tt.lines)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Transform(%q) = %q, want %q", tt.lines, got, tt.want)
			}
		})
	}
}

func TestTransform_FencedBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "math fence collapses to a single wrapped line",
			lines: []string{"```math", "x+1=2", "```"},
			want:  []string{"<div class=\"math-block\">\\[\nx+1=2\n\\]</div>"},
		},
		{
			name:  "tilde math fence",
			lines: []string{"~~~math", "a=b", "~~~"},
			want:  []string{"<div class=\"math-block\">\\[\na=b\n\\]</div>"},
		},
		{
			name:  "multi-line math fence joined with newlines",
			lines: []string{"```math", "a", "b", "```"},
			want:  []string{"<div class=\"math-block\">\\[\na\nb\n\\]</div>"},
		},
		{
			name:  "indented math fence dedents interior",
			lines: []string{"  ```math", "  x=1", "  ```"},
			want:  []string{"<div class=\"math-block\">\\[\nx=1\n\\]</div>"},
		},
		{
			name:  "trailing whitespace trimmed from body",
			lines: []string{"```math", "x=1  ", "```"},
			want:  []string{"<div class=\"math-block\">\\[\nx=1\n\\]</div>"},
		},
		{
			name:  "longer closing run accepted",
			lines: []string{"```math", "x=1", "`````"},
			want:  []string{"<div class=\"math-block\">\\[\nx=1\n\\]</div>"},
		},
		{
			name:  "plain fence passes through byte for byte",
			lines: []string{"```go", `s := "\\(not math\\)"`, "```"},
			want:  []string{"```go", `s := "\\(not math\\)"`, "```"},
		},
		{
			name:  "fence without info string is plain code",
			lines: []string{"```", `\(x\)`, "```"},
			want:  []string{"```", `\(x\)`, "```"},
		},
		{
			name:  "info string must be exactly math",
			lines: []string{"```mathematica", `\(x\)`, "```"},
			want:  []string{"```mathematica", `\(x\)`, "```"},
		},
		{
			name:  "math fence info with trailing whitespace",
			lines: []string{"```math  ", "x=1", "```"},
			want:  []string{"<div class=\"math-block\">\\[\nx=1\n\\]</div>"},
		},
		{
			name:  "shorter closing run does not close",
			lines: []string{"````math", "```", "x=1", "````"},
			want:  []string{"<div class=\"math-block\">\\[\n```\nx=1\n\\]</div>"},
		},
		{
			name:  "unterminated math fence flushed verbatim",
			lines: []string{"```math", "x=1"},
			want:  []string{"```math", "x=1"},
		},
		{
			name:  "unterminated plain fence emitted verbatim",
			lines: []string{"```", "code"},
			want:  []string{"```", "code"},
		},
		{
			name:  "math delimiters inside plain fence untouched",
			lines: []string{"before", "```", "$`a`$", `\[`, `\]`, "```", "after"},
			want:  []string{"before", "```", "$`a`$", `\[`, `\]`, "```", "after"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Transform(tt.lines)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Transform(%q) = %q, want %q", tt.lines, got, tt.want)
			}
		})
	}
}

func TestTransform_BracketBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "bracket block collapses to a single wrapped line",
			lines: []string{`\[`, "x+1=2", `\]`},
			want:  []string{"<div class=\"math-block\">\\[\nx+1=2\n\\]</div>"},
		},
		{
			name:  "bracket block with leading whitespace opens",
			lines: []string{`  \[`, "x=1", `\]`},
			want:  []string{"<div class=\"math-block\">\\[\nx=1\n\\]</div>"},
		},
		{
			name:  "closing anywhere in a later line closes",
			lines: []string{`\[`, "a", `b \] tail`},
			want:  []string{"<div class=\"math-block\">\\[\na\n\\]</div>"},
		},
		{
			name:  "unterminated bracket block flushed verbatim",
			lines: []string{`\[`, "never closed"},
			want:  []string{`\[`, "never closed"},
		},
		{
			name:  "inline pair mid-line is not a block opening",
			lines: []string{`see \[ref\] here`},
			want:  []string{`see \[ref\] here`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Transform(tt.lines)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Transform(%q) = %q, want %q", tt.lines, got, tt.want)
			}
		})
	}
}

// Re-scanning transformed block and passthrough output must find no further
// math. Inline wrappers are excluded: they keep literal \( \) inside the
// wrapper so the client-side renderer can find them, which means the body
// stays discoverable on a re-scan.
func TestTransform_OutputStable(t *testing.T) {
	t.Parallel()

	inputs := [][]string{
		{"plain prose, nothing to find"},
		{"```math", "x+1=2", "```"},
		{`\[`, "x+1=2", `\]`},
		{"prose", "```", "code $`a`$", "```", "more prose"},
		{"~~~math", "a", "b", "~~~"},
	}

	for _, lines := range inputs {
		t.Run(strings.Join(lines, ";"), func(t *testing.T) {
			t.Parallel()

			once := Transform(lines)
			twice := Transform(once)
			if !reflect.DeepEqual(once, twice) {
				t.Errorf("re-scan changed output:\nonce:  %q\ntwice: %q", once, twice)
			}
		})
	}
}

func TestTransform_FreshStatePerCall(t *testing.T) {
	t.Parallel()

	// A document left in an open fence must not leak state into the next call.
	first := Transform([]string{"```", "code"})
	if !reflect.DeepEqual(first, []string{"```", "code"}) {
		t.Fatalf("Transform() = %q, want verbatim flush", first)
	}

	second := Transform([]string{`\(x\)`})
	want := []string{`<span class="math-inline">\(x\)</span>`}
	if !reflect.DeepEqual(second, want) {
		t.Errorf("Transform() after open fence = %q, want %q", second, want)
	}
}
