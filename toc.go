package blogen

import (
	"fmt"
	"html"
	"strings"
)

// buildTOCMarkup renders the table of contents as an ordered list of anchor
// links. Returns "" when there are no headings so the article shell carries
// no empty nav block.
func buildTOCMarkup(entries []TOCEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("        <nav class=\"toc\">\n            <ol>\n")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("                <li><a href=\"#%s\">%s</a></li>\n",
			e.ID, html.EscapeString(e.Text)))
	}
	sb.WriteString("            </ol>\n        </nav>")
	return sb.String()
}
