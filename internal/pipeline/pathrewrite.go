package pipeline

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// urlAttrs maps elements to the attribute carrying a rewritable local path.
// Media elements stay untouched (PDFs cannot play them) and script[src] is
// never pointed at the local filesystem.
var urlAttrs = map[string]string{
	"img": "src",
	"a":   "href",
}

// RewriteRelativePaths resolves relative image and link paths against
// sourceDir and replaces them with file:// URLs, so a headless browser
// loading the assembled page finds assets next to the source document.
// An empty sourceDir returns the HTML unchanged. Paths escaping sourceDir
// are left as-is.
func RewriteRelativePaths(htmlContent, sourceDir string) (string, error) {
	if sourceDir == "" {
		return htmlContent, nil
	}

	absDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", fmt.Errorf("resolving source dir: %w", err)
	}

	root, fragment, err := parseDocument(htmlContent)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	rewriteTree(root, absDir)

	return renderDocument(root, fragment)
}

// parseDocument parses full documents and fragments alike. Fragments are
// collected under a synthetic document node so traversal and rendering stay
// uniform; the bool result records which form was parsed.
func parseDocument(content string) (*html.Node, bool, error) {
	lower := strings.ToLower(strings.TrimSpace(content))
	if strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	bodyCtx := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), bodyCtx)
	if err != nil {
		return nil, true, err
	}

	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, true, nil
}

// renderDocument serializes the tree. Fragment children are rendered
// directly so no <html><body> wrapper is introduced.
func renderDocument(root *html.Node, fragment bool) (string, error) {
	var buf strings.Builder

	if fragment {
		for c := root.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func rewriteTree(n *html.Node, absDir string) {
	if n.Type == html.ElementNode {
		if attr, ok := urlAttrs[n.Data]; ok {
			rewriteAttr(n, attr, absDir)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteTree(c, absDir)
	}
}

func rewriteAttr(n *html.Node, key, absDir string) {
	for i, attr := range n.Attr {
		if attr.Key != key || !shouldRewrite(attr.Val) {
			continue
		}
		abs := filepath.Join(absDir, attr.Val)
		if !containedIn(abs, absDir) {
			continue // traversal attempt, leave the original value
		}
		n.Attr[i].Val = fileURL(abs)
	}
}

// shouldRewrite reports whether a value is a relative local path, as opposed
// to a URL, data URI, anchor, or absolute path.
func shouldRewrite(val string) bool {
	if val == "" {
		return false
	}
	for _, prefix := range []string{"http://", "https://", "file://", "data:", "//", "#"} {
		if strings.HasPrefix(val, prefix) {
			return false
		}
	}
	return !filepath.IsAbs(val)
}

// containedIn reports whether path stays inside dir after cleaning.
func containedIn(path, dir string) bool {
	cleanPath := filepath.Clean(path)
	cleanDir := filepath.Clean(dir)
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// fileURL converts an absolute path to a file:// URL, percent-encoding as
// needed. filepath.ToSlash keeps Windows paths usable.
func fileURL(abs string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}
