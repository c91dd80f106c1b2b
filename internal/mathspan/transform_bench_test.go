//go:build bench

package mathspan

import (
	"fmt"
	"strings"
	"testing"
)

// BenchmarkTransform benchmarks the line transform over representative inputs.
func BenchmarkTransform(b *testing.B) {
	inputs := []struct {
		name  string
		lines []string
	}{
		{"plain", generatePlainLines(100)},
		{"inline_heavy", generateInlineMathLines(100)},
		{"block_heavy", generateBlockMathLines(25)},
		{"code_heavy", generateCodeLines(25)},
		{"mixed", generateMixedLines(50)},
	}

	for _, input := range inputs {
		b.Run(input.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = Transform(input.lines)
			}
		})
	}
}

// BenchmarkTransformBySize benchmarks transform scaling with document size.
func BenchmarkTransformBySize(b *testing.B) {
	sizes := []int{10, 100, 1000, 5000}

	for _, size := range sizes {
		lines := generateMixedLines(size)
		b.Run(fmt.Sprintf("lines_%d", len(lines)), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = Transform(lines)
			}
		})
	}
}

func generatePlainLines(count int) []string {
	lines := make([]string, count)
	for i := range lines {
		lines[i] = fmt.Sprintf("Paragraph %d with some prose and no math at all.", i)
	}
	return lines
}

func generateInlineMathLines(count int) []string {
	lines := make([]string, count)
	for i := range lines {
		lines[i] = fmt.Sprintf(`Term %d: \(x_{%d}^2 + y_{%d}^2\) and $`+"`"+`z_%d`+"`"+`$ inline.`, i, i, i, i)
	}
	return lines
}

func generateBlockMathLines(blocks int) []string {
	var lines []string
	for i := 0; i < blocks; i++ {
		lines = append(lines,
			fmt.Sprintf("Equation %d:", i),
			"```math",
			fmt.Sprintf("a_%d^2 + b_%d^2 = c_%d^2", i, i, i),
			"```",
		)
	}
	return lines
}

func generateCodeLines(blocks int) []string {
	var lines []string
	for i := 0; i < blocks; i++ {
		lines = append(lines,
			"```go",
			fmt.Sprintf("func f%d() { return } // \\(not math\\)", i),
			"```",
			"Inline `code with \\(brackets\\)` stays put.",
		)
	}
	return lines
}

func generateMixedLines(sections int) []string {
	var lines []string
	for i := 0; i < sections; i++ {
		lines = append(lines,
			fmt.Sprintf("## Section %d", i),
			strings.Repeat("prose ", 10),
			fmt.Sprintf(`Inline \(e^{i\pi %d}\) here.`, i),
		)
		if i%3 == 0 {
			lines = append(lines, "\\[", fmt.Sprintf("\\sum_{k=0}^{%d} k", i), "\\]")
		}
		if i%5 == 0 {
			lines = append(lines, "```python", "print('hi')", "```")
		}
	}
	return lines
}
