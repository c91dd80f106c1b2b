package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// katexFlags overrides the KaTeX assets referenced from generated pages.
type katexFlags struct {
	version       string
	stylesheetURL string
	scriptURL     string
	autoRenderURL string
}

// outputFlags holds output mode flags.
type outputFlags struct {
	html     bool // write HTML alongside the PDF
	htmlOnly bool // write HTML only, skip the browser entirely
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	config  string
	output  string
	workers int
	timeout string
	quiet   bool
	verbose bool

	title     string
	style     string
	css       string
	assetPath string

	page       pageFlags
	katex      katexFlags
	outputMode outputFlags
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addKatexFlags adds KaTeX asset flags to a FlagSet.
func addKatexFlags(fs *flag.FlagSet, f *katexFlags) {
	fs.StringVar(&f.version, "katex-version", "", "KaTeX version on the CDN")
	fs.StringVar(&f.stylesheetURL, "katex-css-url", "", "full katex.min.css URL")
	fs.StringVar(&f.scriptURL, "katex-js-url", "", "full katex.min.js URL")
	fs.StringVar(&f.autoRenderURL, "katex-auto-render-url", "", "full auto-render.min.js URL")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.html, "html", false, "output HTML alongside PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML only, skip PDF")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")

	fs.StringVar(&f.title, "title", "", "page title (overrides front matter)")
	fs.StringVar(&f.style, "style", "", "style name, CSS file path, or literal CSS")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended to the style")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")

	addPageFlags(fs, &f.page)
	addKatexFlags(fs, &f.katex)
	addOutputFlags(fs, &f.outputMode)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
