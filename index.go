package blogen

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-blogen/internal/assets"
)

// Index entry animation stagger: entry i appears at baseDelay + i*delayStep.
// Purely presentational.
const (
	baseDelay = 0.3
	delayStep = 0.2
)

// DefaultArticlesHref is the link prefix to article files when the index
// and the articles directory sit in their default locations.
const DefaultArticlesHref = "articles"

// RenderIndex assembles the landing page from extracted metadata records.
// Articles are expected in the order they should appear (newest first, as
// returned by ScanDir); each entry carries a staggered animation delay
// proportional to its position. articlesHref is the URL path from the index
// page to the articles directory ("" means DefaultArticlesHref); callers
// with a relocated articles directory or index output derive it from their
// configuration so entry links stay valid.
func RenderIndex(site Site, articles []Article, articlesHref string, now time.Time) (string, error) {
	shell, err := assets.LoadShell("index")
	if err != nil {
		return "", fmt.Errorf("%w: index", ErrShellNotFound)
	}

	entryShell, err := assets.LoadShell("entry")
	if err != nil {
		return "", fmt.Errorf("%w: entry", ErrShellNotFound)
	}

	if articlesHref == "" {
		articlesHref = DefaultArticlesHref
	}
	articlesHref = strings.TrimRight(articlesHref, "/")

	var entries strings.Builder
	for i, article := range articles {
		entries.WriteString(renderEntry(entryShell, article, articlesHref, i))
		entries.WriteByte('\n')
	}

	return replaceTokens(shell, map[string]string{
		"title":    html.EscapeString(site.Title),
		"tagline":  html.EscapeString(site.Tagline),
		"backlink": renderBacklink(site.PortfolioURL),
		"entries":  strings.TrimRight(entries.String(), "\n"),
		"year":     strconv.Itoa(now.Year()),
	}), nil
}

// renderEntry fills the entry shell for one article at position i.
func renderEntry(shell string, article Article, articlesHref string, i int) string {
	delay := baseDelay + delayStep*float64(i)

	return replaceTokens(shell, map[string]string{
		"delay":    fmt.Sprintf("%.1fs", delay),
		"dir":      html.EscapeString(articlesHref),
		"filename": html.EscapeString(article.Filename),
		"date":     html.EscapeString(article.Date),
		"title":    html.EscapeString(article.Title),
		"excerpt":  html.EscapeString(article.Excerpt),
		"tags":     renderTags(article.Tags),
	})
}

// renderTags renders the tag spans block, or "" when the article has none.
func renderTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("                <div class=\"article-tags\">")
	for _, tag := range tags {
		sb.WriteString("<span>" + html.EscapeString(tag) + "</span>")
	}
	sb.WriteString("</div>")
	return sb.String()
}

// renderBacklink renders the portfolio back-link, or "" when no URL is set.
func renderBacklink(url string) string {
	if url == "" {
		return ""
	}
	return fmt.Sprintf("            <a href=\"%s\" class=\"back-to-portfolio\">&larr; Back to Portfolio</a>",
		html.EscapeString(url))
}
