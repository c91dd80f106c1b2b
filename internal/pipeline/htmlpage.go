package pipeline

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// DefaultKatexVersion is the pinned KaTeX release served from jsDelivr.
const DefaultKatexVersion = "0.16.11"

// Asset URLs and subresource integrity hashes for the pinned release.
// The hashes belong to this exact version; overriding the version or any
// URL drops them.
const (
	defaultKatexStylesheetURL = "https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/katex.min.css"
	defaultKatexScriptURL     = "https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/katex.min.js"
	defaultKatexAutoRenderURL = "https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/contrib/auto-render.min.js"

	defaultKatexStylesheetIntegrity = "sha384-nB0miv6/jRmo5UMMR1wu3Gz6NLsoTkbqJghGIsx//Rlm+ZU03BU6SQNC66uf4l5+"
	defaultKatexScriptIntegrity     = "sha384-7zkQWkzuo3B5mTepMUcHkMB5jZaolc2xDwL6VFqjFALcbeS9Ggm/Yr2r3Dy4lfFg"
	defaultKatexAutoRenderIntegrity = "sha384-43gviWU0YVjaDtb/GhzOouOXtZMP/7XUzwPTstBeZFe/+rCMvRwr4yROQP43s0Xk"
)

// ErrPageAssembly indicates the page template could not be parsed or executed.
var ErrPageAssembly = errors.New("page assembly failed")

// KatexAssets identifies the KaTeX stylesheet and scripts referenced from
// the generated page. Empty integrity fields omit the attribute.
type KatexAssets struct {
	StylesheetURL       string
	StylesheetIntegrity string
	ScriptURL           string
	ScriptIntegrity     string
	AutoRenderURL       string
	AutoRenderIntegrity string
}

// DefaultKatexAssets returns the pinned release with integrity hashes.
func DefaultKatexAssets() KatexAssets {
	return KatexAssets{
		StylesheetURL:       defaultKatexStylesheetURL,
		StylesheetIntegrity: defaultKatexStylesheetIntegrity,
		ScriptURL:           defaultKatexScriptURL,
		ScriptIntegrity:     defaultKatexScriptIntegrity,
		AutoRenderURL:       defaultKatexAutoRenderURL,
		AutoRenderIntegrity: defaultKatexAutoRenderIntegrity,
	}
}

// KatexAssetsForVersion builds CDN URLs for an arbitrary KaTeX version.
// Integrity hashes are only known for the pinned release, so any other
// version omits them.
func KatexAssetsForVersion(version string) KatexAssets {
	if version == "" || version == DefaultKatexVersion {
		return DefaultKatexAssets()
	}
	base := "https://cdn.jsdelivr.net/npm/katex@" + version + "/dist/"
	return KatexAssets{
		StylesheetURL: base + "katex.min.css",
		ScriptURL:     base + "katex.min.js",
		AutoRenderURL: base + "contrib/auto-render.min.js",
	}
}

// PageData feeds the HTML page template.
type PageData struct {
	Title string
	Katex KatexAssets
	CSS   template.CSS
	Body  template.HTML
}

// AssemblePage renders the HTML fragment and CSS into a complete page using
// the given template text. An empty title falls back to "Document".
func AssemblePage(tmplText string, data PageData) (string, error) {
	if data.Title == "" {
		data.Title = "Document"
	}

	tmpl, err := template.New("page").Parse(tmplText)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageAssembly, err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageAssembly, err)
	}
	return sb.String(), nil
}
