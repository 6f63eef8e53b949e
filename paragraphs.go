package blogen

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Paragraph boundary: one or more blank (possibly whitespace-only) lines
	paragraphBoundary = regexp.MustCompile(`\n[ \t]*\n+`)

	// Inline emphasis markers
	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*]+)\*`)

	// Characters stripped from derived heading identifiers
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]`)
)

// bodyResult is the outcome of rendering source text into article body HTML.
type bodyResult struct {
	html string
	toc  []TOCEntry
}

// bodyRenderer abstracts source text to article body conversion.
type bodyRenderer interface {
	RenderBody(ctx context.Context, text string) (bodyResult, error)
}

// plaintextRenderer converts plain paragraphs into body HTML, promoting
// ALL-CAPS lines and "#"-prefixed paragraphs to headings.
type plaintextRenderer struct{}

// RenderBody splits text on blank-line boundaries, classifies each paragraph
// as heading or body text, and collects a table of contents in document order.
func (r *plaintextRenderer) RenderBody(ctx context.Context, text string) (bodyResult, error) {
	if err := ctx.Err(); err != nil {
		return bodyResult{}, err
	}

	var sb strings.Builder
	var toc []TOCEntry

	for _, para := range splitParagraphs(text) {
		if isHeading(para) {
			heading := headingText(para)
			id := headingID(heading)
			sb.WriteString(fmt.Sprintf("<h2 id=%q>%s</h2>\n\n", id, html.EscapeString(heading)))
			toc = append(toc, TOCEntry{Text: heading, ID: id})
			continue
		}
		sb.WriteString("<p>" + renderEmphasis(para) + "</p>\n\n")
	}

	return bodyResult{html: strings.TrimSuffix(sb.String(), "\n"), toc: toc}, nil
}

// splitParagraphs splits raw text into trimmed, non-empty paragraphs.
// Line endings are normalized first so CRLF sources behave like Unix text.
func splitParagraphs(text string) []string {
	text = crlfOrCR.ReplaceAllString(text, "\n")

	parts := paragraphBoundary.Split(text, -1)
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// isHeading reports whether a paragraph should become a heading element:
// either a markdown-style "#" marker, or entirely upper-case text shorter
// than MaxHeadingLength characters.
func isHeading(para string) bool {
	if strings.HasPrefix(para, "#") {
		return true
	}
	return isAllUpper(para) && utf8.RuneCountInString(para) < MaxHeadingLength
}

// isAllUpper reports whether s contains at least one cased letter and no
// lower-case letters.
func isAllUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

// headingText strips leading "#" markers and surrounding whitespace.
func headingText(para string) string {
	return strings.TrimSpace(strings.TrimLeft(para, "#"))
}

// headingID derives a URL-safe anchor identifier from heading text.
func headingID(text string) string {
	return Slugify(text)
}

// Slugify derives a URL-safe identifier: lower-cased, spaces replaced with
// hyphens, everything outside [a-z0-9-] stripped. The same derivation is
// used for heading anchors and converted article file names.
func Slugify(s string) string {
	slug := strings.ToLower(s)
	slug = strings.ReplaceAll(slug, " ", "-")
	return nonSlugChars.ReplaceAllString(slug, "")
}

// renderEmphasis escapes a body paragraph for HTML and converts **bold**
// and *italic* markers to emphasis markup. Bold runs first so the leftover
// single stars can only be italic markers.
func renderEmphasis(para string) string {
	escaped := html.EscapeString(para)
	escaped = boldPattern.ReplaceAllString(escaped, "<strong>$1</strong>")
	return italicPattern.ReplaceAllString(escaped, "<em>$1</em>")
}
