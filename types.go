package blogen

import (
	"time"
)

// Excerpt truncation bounds. An excerpt longer than MaxExcerptLength is cut
// to ExcerptCutLength characters and suffixed with "..." so the total stays
// exactly MaxExcerptLength.
const (
	MaxExcerptLength = 150
	ExcerptCutLength = 147
)

// Heading classification bounds. A paragraph that is entirely upper-case and
// shorter than MaxHeadingLength characters is promoted to a heading.
const MaxHeadingLength = 80

// Default date formats using dateutil tokens.
const (
	// DefaultIndexDateFormat renders article dates on the index ("March 2026").
	DefaultIndexDateFormat = "MMMM YYYY"
	// DefaultArticleDateFormat renders the byline inside articles ("March 3, 2026").
	DefaultArticleDateFormat = "MMMM D, YYYY"
)

// DefaultStyle is the name of the built-in article CSS style.
const DefaultStyle = "essay"

// Article holds the metadata extracted from one persisted HTML article.
// Records are created per scan and discarded after the index is rendered.
type Article struct {
	Title    string    // from <title> or an .archive-title container
	Excerpt  string    // first paragraph text, at most MaxExcerptLength chars
	Date     string    // formatted month-year, always derived from ModTime
	Filename string    // base name of the article file
	Tags     []string  // from a data-tags attribute, in source order
	ModTime  time.Time // file modification time, used for index ordering
}

// Input contains conversion parameters for a single article.
type Input struct {
	Text     string // raw source text (required)
	Title    string // article title (required)
	Markdown bool   // render Text as Markdown instead of classifying paragraphs
	Style    string // article CSS style name (optional, "" = DefaultStyle)
}

// TOCEntry is one table-of-contents link: the heading text and the anchor
// identifier of the heading element it points to. The identifier is always
// byte-identical to the id attribute emitted on the heading.
type TOCEntry struct {
	Text string
	ID   string
}

// Site holds the index page identity rendered into the header.
type Site struct {
	Title        string // blog title (h1)
	Tagline      string // intro line under the title
	PortfolioURL string // back-link target; empty hides the link
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	now        func() time.Time
	dateFormat string // dateutil token format for the article byline
	style      string // default style name when Input.Style is empty
}

// WithClock sets the time source used for article bylines.
// Panics if now is nil (programmer error).
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("blogen: WithClock time source must be non-nil")
	}
	return func(s *Service) {
		s.cfg.now = now
	}
}

// WithDateFormat sets the byline date format using dateutil tokens
// (YYYY, YY, MMMM, MMM, MM, M, DD, D). Validation happens at Convert time.
func WithDateFormat(format string) Option {
	return func(s *Service) {
		s.cfg.dateFormat = format
	}
}

// WithStyle sets the default article CSS style name.
func WithStyle(name string) Option {
	return func(s *Service) {
		s.cfg.style = name
	}
}
