package blogen

import (
	"fmt"
	"html"
	"strings"

	"github.com/alnah/go-blogen/internal/assets"
)

// articlePage holds the values interpolated into the article shell.
type articlePage struct {
	Title string // escaped before interpolation
	Date  string // already formatted
	Style string // raw CSS content
	TOC   string // rendered nav markup, "" when no headings
	Body  string // rendered body markup
}

// renderArticlePage fills the embedded article shell by literal token
// replacement. The shell is plain HTML with {{token}} placeholders; there
// is no template engine involved.
func renderArticlePage(page articlePage) (string, error) {
	shell, err := assets.LoadShell("article")
	if err != nil {
		return "", fmt.Errorf("%w: article", ErrShellNotFound)
	}

	return replaceTokens(shell, map[string]string{
		"title": html.EscapeString(page.Title),
		"date":  html.EscapeString(page.Date),
		"style": page.Style,
		"toc":   page.TOC,
		"body":  page.Body,
	}), nil
}

// replaceTokens substitutes {{name}} placeholders with their values.
func replaceTokens(shell string, tokens map[string]string) string {
	pairs := make([]string, 0, len(tokens)*2)
	for name, value := range tokens {
		pairs = append(pairs, "{{"+name+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(shell)
}
