package blogen

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// headingPattern matches rendered h1-h6 elements with an id attribute.
// Captures: 1=level, 2=id, 3=inner HTML (may contain inline tags)
var headingPattern = regexp.MustCompile(`(?is)<h([1-6])[^>]*\bid="([^"]*)"[^>]*>(.*?)</h[1-6]>`)

// htmlTagPattern matches HTML tags for stripping from heading text.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// markdownRenderer converts Markdown sources to body HTML using goldmark.
type markdownRenderer struct {
	md goldmark.Markdown
}

// newMarkdownRenderer creates a markdownRenderer with GFM extensions,
// auto heading IDs (required for the TOC), and syntax highlighting.
func newMarkdownRenderer() *markdownRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes instead of inline styles
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			htmlrenderer.WithXHTML(), // Self-closing tags
		),
	)
	return &markdownRenderer{md: md}
}

// RenderBody converts Markdown content to body HTML and collects the table
// of contents from the rendered heading elements, so TOC anchors always
// match the id attributes goldmark emitted.
func (r *markdownRenderer) RenderBody(ctx context.Context, text string) (bodyResult, error) {
	if err := ctx.Err(); err != nil {
		return bodyResult{}, err
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return bodyResult{}, fmt.Errorf("%w: %v", ErrBodyConversion, err)
	}

	body := buf.String()
	return bodyResult{html: body, toc: extractHeadings(body)}, nil
}

// extractHeadings parses rendered HTML and returns all identified headings
// in document order. Headings without IDs are skipped.
func extractHeadings(htmlContent string) []TOCEntry {
	matches := headingPattern.FindAllStringSubmatch(htmlContent, -1)
	if len(matches) == 0 {
		return nil
	}

	entries := make([]TOCEntry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, TOCEntry{
			Text: stripHTMLTags(m[3]),
			ID:   m[2],
		})
	}
	return entries
}

// stripHTMLTags removes HTML tags from a string and trims whitespace.
func stripHTMLTags(s string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(s, ""))
}
