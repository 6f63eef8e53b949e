package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-blogen/internal/docread"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogen [flags] [--convert <source-file> <title...>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Scans the articles directory and regenerates the blog index.")
	fmt.Fprintln(w, "With --convert, first converts a source document into a styled article.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintf(w, "      --convert <path>      Source document (%s)\n",
		strings.Join(docread.SupportedExtensions(), ", "))
	fmt.Fprintln(w, "                            Remaining arguments form the article title")
	fmt.Fprintln(w, "      --style <name>        Article CSS style: essay, plain")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "      --articles-dir <dir>  Articles directory (default \"articles\")")
	fmt.Fprintln(w, "  -o, --output <path>       Index output path (default \"index.html\")")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "      --site-title <s>      Blog title on the index page")
	fmt.Fprintln(w, "      --site-tagline <s>    Intro line under the blog title")
	fmt.Fprintln(w, "      --portfolio-url <s>   Back-link target on the index page")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
	fmt.Fprintln(w, "      --version             Show version information")
}
