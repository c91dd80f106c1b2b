package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*
var styles embed.FS

//go:embed templates/*
var templates embed.FS

// EmbeddedLoader serves the assets compiled into the binary. It is the
// loader every Converter starts with; WithAssetPath or WithAssetLoader
// swap it out.
type EmbeddedLoader struct{}

// NewEmbeddedLoader returns a loader over the compiled-in asset set.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle returns the embedded CSS style with the given name
// (no .css extension).
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return readEmbedded(styles, "styles/"+name+".css", name, ErrStyleNotFound)
}

// LoadTemplate returns the embedded HTML page template with the given name
// (no .html extension).
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return readEmbedded(templates, "templates/"+name+".html", name, ErrTemplateNotFound)
}

func readEmbedded(fsys embed.FS, path, name string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := fsys.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %q", notFound, name)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
