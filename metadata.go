package blogen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/alnah/go-blogen/internal/dateutil"
)

// Fallback values when an article file carries no usable markup.
const (
	FallbackTitle   = "Untitled"
	FallbackExcerpt = "Read more..."
	EmptyExcerpt    = "No excerpt available."
)

// Extractor reads article metadata from persisted HTML files.
//
// Extraction is a structured parse, not a regex scan, but it keeps the same
// fallback fields and priority order: title from <title> or an
// .archive-title container, excerpt from the first paragraph inside
// <article> or an .archive-excerpt container, tags from a data-tags
// attribute. The article date always comes from the file modification time;
// any date present in markup is ignored.
type Extractor struct {
	dateFormat string // dateutil token format for index dates
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithIndexDateFormat sets the date format using dateutil tokens.
func WithIndexDateFormat(format string) ExtractorOption {
	return func(e *Extractor) {
		e.dateFormat = format
	}
}

// NewExtractor creates an Extractor with default configuration.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{dateFormat: DefaultIndexDateFormat}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the metadata record for one article file.
// Malformed or unexpected HTML is never fatal: absent patterns degrade to
// the documented fallback values. Only an unreadable file or an invalid
// date format returns an error.
func (e *Extractor) Extract(path string) (Article, error) {
	layout, err := dateutil.ParseDateFormat(e.dateFormat)
	if err != nil {
		return Article{}, fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Article{}, fmt.Errorf("%w: %s: %v", ErrReadArticle, path, err)
	}

	content, err := os.ReadFile(path) // #nosec G304 -- article path comes from directory scan
	if err != nil {
		return Article{}, fmt.Errorf("%w: %s: %v", ErrReadArticle, path, err)
	}

	article := Article{
		Title:    FallbackTitle,
		Excerpt:  FallbackExcerpt,
		Date:     info.ModTime().Format(layout),
		Filename: filepath.Base(path),
		ModTime:  info.ModTime(),
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		// Unparseable input keeps the full fallback record.
		return article, nil
	}

	if title := findTitle(doc); title != "" {
		article.Title = title
	}
	article.Excerpt = truncateExcerpt(findExcerpt(doc))
	article.Tags = findTags(doc)

	return article, nil
}

// findTitle returns the article title, or "" when no pattern matches.
func findTitle(doc *goquery.Document) string {
	if title := normalizeText(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return normalizeText(doc.Find(".archive-title").First().Text())
}

// findExcerpt returns the excerpt text with fallbacks applied:
// first paragraph inside <article>, else an .archive-excerpt container.
// A present but empty container yields EmptyExcerpt; no container at all
// yields FallbackExcerpt.
func findExcerpt(doc *goquery.Document) string {
	if container := doc.Find("article"); container.Length() > 0 {
		if text := normalizeText(container.Find("p").First().Text()); text != "" {
			return text
		}
		return EmptyExcerpt
	}

	if container := doc.Find(".archive-excerpt").First(); container.Length() > 0 {
		if text := normalizeText(container.Text()); text != "" {
			return text
		}
		return EmptyExcerpt
	}

	return FallbackExcerpt
}

// findTags returns the comma-separated values of the first data-tags
// attribute, trimmed, with empties dropped. Absent attribute → nil.
func findTags(doc *goquery.Document) []string {
	value, ok := doc.Find("[data-tags]").First().Attr("data-tags")
	if !ok {
		return nil
	}

	var tags []string
	for _, tag := range strings.Split(value, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// truncateExcerpt limits an excerpt to MaxExcerptLength characters total,
// cutting at ExcerptCutLength and appending a 3-character ellipsis.
func truncateExcerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxExcerptLength {
		return text
	}
	return string(runes[:ExcerptCutLength]) + "..."
}

// normalizeText collapses runs of whitespace into single spaces and trims.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
