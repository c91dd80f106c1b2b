package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dbzhang800/md-katex/internal/yamlutil"
)

// frontMatterPattern matches a YAML front matter header at the very start
// of a document: a --- line, the header body, and a closing --- line.
var frontMatterPattern = regexp.MustCompile(`(?s)\A---[ \t]*\n(.*?)\n---[ \t]*(\n|\z)`)

// FrontMatter holds per-document settings read from the YAML header.
// Unknown keys are tolerated so documents can carry metadata for other
// tools alongside ours.
type FrontMatter struct {
	Title string `yaml:"title"`
	Style string `yaml:"style"`
}

// ExtractFrontMatter splits the YAML front matter header from the document
// body. Documents without a header return a zero FrontMatter and the
// content unchanged.
func ExtractFrontMatter(content string) (FrontMatter, string, error) {
	var fm FrontMatter

	m := frontMatterPattern.FindStringSubmatchIndex(content)
	if m == nil {
		return fm, content, nil
	}

	header := content[m[2]:m[3]]
	body := content[m[1]:]

	if strings.TrimSpace(header) != "" {
		if err := yamlutil.Unmarshal([]byte(header), &fm); err != nil {
			return FrontMatter{}, "", fmt.Errorf("front matter: %w", err)
		}
	}
	return fm, body, nil
}
