package main

import (
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-blogen/internal/docread"
)

// commonFlags holds flags shared across modes.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds index page identity overrides.
type siteFlags struct {
	title        string
	tagline      string
	portfolioURL string
}

// buildFlags holds input/output location flags.
type buildFlags struct {
	articlesDir string
	output      string
	style       string
}

// cliFlags holds all flags for the blogen command.
type cliFlags struct {
	common  commonFlags
	site    siteFlags
	build   buildFlags
	convert string
	version bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addSiteFlags adds index identity flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.title, "site-title", "", "blog title on the index page")
	fs.StringVar(&f.tagline, "site-tagline", "", "intro line under the blog title")
	fs.StringVar(&f.portfolioURL, "portfolio-url", "", "back-link target on the index page")
}

// addBuildFlags adds input/output flags to a FlagSet.
func addBuildFlags(fs *flag.FlagSet, f *buildFlags) {
	fs.StringVar(&f.articlesDir, "articles-dir", "", "articles directory (default \"articles\")")
	fs.StringVarP(&f.output, "output", "o", "", "index output path (default \"index.html\")")
	fs.StringVar(&f.style, "style", "", "article CSS style name")
}

// parseFlags parses command-line flags and returns the remaining positional
// arguments (the article title words in convert mode).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("blogen", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVar(&f.convert, "convert", "",
		"source document to convert ("+strings.Join(docread.SupportedExtensions(), ", ")+")")
	fs.BoolVar(&f.version, "version", false, "show version information")

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	addBuildFlags(fs, &f.build)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
