package blogen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-blogen/internal/assets"
	"github.com/alnah/go-blogen/internal/dateutil"
	"github.com/alnah/go-blogen/internal/docread"
)

// Service orchestrates the source-to-article pipeline.
type Service struct {
	cfg      serviceConfig
	plain    bodyRenderer
	markdown bodyRenderer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithDateFormat).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			now:        time.Now,
			dateFormat: DefaultArticleDateFormat,
			style:      DefaultStyle,
		},
		plain:    &plaintextRenderer{},
		markdown: newMarkdownRenderer(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Convert runs the full pipeline and returns the article page as a string.
// The context is used for cancellation.
func (s *Service) Convert(ctx context.Context, input Input) (string, error) {
	if err := s.validateInput(input); err != nil {
		return "", err
	}

	layout, err := dateutil.ParseDateFormat(s.cfg.dateFormat)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}

	renderer := s.plain
	if input.Markdown {
		renderer = s.markdown
	}

	body, err := renderer.RenderBody(ctx, input.Text)
	if err != nil {
		return "", err
	}

	styleName := input.Style
	if styleName == "" {
		styleName = s.cfg.style
	}
	css, err := assets.LoadStyle(styleName)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, styleName)
	}

	return renderArticlePage(articlePage{
		Title: input.Title,
		Date:  s.cfg.now().Format(layout),
		Style: css,
		TOC:   buildTOCMarkup(body.toc),
		Body:  body.html,
	})
}

// ConvertFile extracts text from the source document at path and converts it.
// The file extension selects the reader; unsupported extensions and unreadable
// files surface as recoverable errors, never a process exit.
func (s *Service) ConvertFile(ctx context.Context, path, title string) (string, error) {
	text, format, err := docread.Extract(path)
	if err != nil {
		return "", convertDocreadError(err)
	}

	return s.Convert(ctx, Input{
		Text:     text,
		Title:    title,
		Markdown: format == docread.FormatMarkdown,
	})
}

// validateInput checks that required fields are present.
func (s *Service) validateInput(input Input) error {
	if strings.TrimSpace(input.Text) == "" {
		return ErrEmptyText
	}
	if strings.TrimSpace(input.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// convertDocreadError maps internal docread errors to public errors.
func convertDocreadError(err error) error {
	switch {
	case errors.Is(err, docread.ErrUnsupportedFormat):
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	case errors.Is(err, docread.ErrReadFailed):
		return fmt.Errorf("%w: %v", ErrReadSource, err)
	default:
		return err
	}
}
