// Package mdkatex converts Markdown with math notation into HTML pages
// (and optionally PDFs) that render formulas with KaTeX in the client.
//
// # Quick Start
//
// Create a converter, convert markdown, and close when done:
//
//	conv, err := mdkatex.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, mdkatex.Input{
//	    Markdown: `# Energy
//
//	Einstein: \(E=mc^2\)`,
//	    HTMLOnly: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", result.HTML, 0644)
//
// The result always contains the assembled HTML page (result.HTML); unless
// Input.HTMLOnly is set, result.PDF holds the printed document as well.
//
// # Math Notation
//
// Three delimiter styles are recognized outside code spans and code fences:
//
//	\(E=mc^2\)          inline, bracket style
//	$`E=mc^2`$          inline, GitLab style
//	\[ ... \]           display block, brackets on their own lines
//	```math ... ```     display block, fenced
//
// Formula spans are wrapped in marker elements before Markdown conversion,
// so emphasis, escaping, and other inline rules never touch the math text.
// The generated page loads KaTeX and its auto-render script from a pinned
// CDN release to typeset the preserved delimiters in the browser.
//
// Use Transform or Preprocess directly to run only the delimiter rewriting
// without the rest of the pipeline.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. YAML front matter extraction (title, style)
//  2. Math span preprocessing (delimiter scanning and wrapping)
//  3. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//  4. Page assembly (KaTeX assets, stylesheet, document shell)
//  5. Optional PDF rendering via headless Chrome (go-rod)
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := mdkatex.NewConverter(
//	    mdkatex.WithTimeout(2 * time.Minute),
//	    mdkatex.WithStyle("default"),
//	    mdkatex.WithKatex(mdkatex.Katex{Version: "0.16.11"}),
//	)
//
// Per-conversion options are passed via Input:
//
//	result, err := conv.Convert(ctx, mdkatex.Input{
//	    Markdown:  content,
//	    Title:     "Lecture Notes",
//	    SourceDir: "/path/to/markdown",  // for relative image paths
//	    CSS:       "body { font-size: 14px; }",
//	    Page:      &mdkatex.PageSettings{Size: "a4"},
//	})
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool to manage multiple browser
// instances:
//
//	pool := mdkatex.NewConverterPool(4)
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Release(conv)
//	result, err := conv.Convert(ctx, input)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
// Use ROD_BROWSER_BIN to specify a custom Chrome binary; CI environments get
// the sandbox disabled automatically. HTML output needs no browser.
package mdkatex
