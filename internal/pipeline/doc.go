// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// This package handles the stages between raw Markdown and a renderable page:
//   - YAML front matter extraction (per-document title and style)
//   - Math preprocessing (wrapping formula spans for client-side KaTeX)
//   - Markdown to HTML conversion via Goldmark
//   - Relative path rewriting for local images and links
//   - Page assembly from an HTML template with KaTeX assets
//
// PDF generation is handled separately by the root mdkatex package using
// headless Chrome (go-rod). This separation keeps the pipeline focused on
// document structure and content, while PDF rendering handles page layout,
// margins, and browser-based rendering concerns.
package pipeline
