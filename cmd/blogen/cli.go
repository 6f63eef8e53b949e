package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	blogen "github.com/alnah/go-blogen"
	"github.com/alnah/go-blogen/internal/config"
	"github.com/alnah/go-blogen/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingTitle = errors.New("usage: blogen --convert <source-file> <title...>")
	ErrWriteArticle = errors.New("failed to write article file")
	ErrWriteIndex   = errors.New("failed to write index file")
	ErrEmptySlug    = errors.New("title produces an empty file name")
)

// filePermissions for generated HTML output.
const filePermissions = 0o644

// run parses arguments, optionally converts a source document, then scans
// the articles directory and regenerates the index.
func run(ctx context.Context, args []string, env *Environment) error {
	flags, positionals, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "blogen %s\n", Version)
		return nil
	}

	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	mergeFlags(flags, cfg)

	if err := fileutil.EnsureDir(cfg.Articles.Dir); err != nil {
		return err
	}

	if flags.convert != "" {
		if err := runConvert(ctx, flags, positionals, cfg, env); err != nil {
			return err
		}
	}

	return runBuild(flags, cfg, env)
}

// mergeFlags applies CLI overrides onto the loaded config (CLI wins).
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.site.title != "" {
		cfg.Site.Title = flags.site.title
	}
	if flags.site.tagline != "" {
		cfg.Site.Tagline = flags.site.tagline
	}
	if flags.site.portfolioURL != "" {
		cfg.Site.PortfolioURL = flags.site.portfolioURL
	}
	if flags.build.articlesDir != "" {
		cfg.Articles.Dir = flags.build.articlesDir
	}
	if flags.build.output != "" {
		cfg.Output.Index = flags.build.output
	}
	if flags.build.style != "" {
		cfg.CSS.Style = flags.build.style
	}
}

// runConvert converts one source document into a styled HTML article.
// The title is joined from the remaining positional arguments, so it may
// contain spaces without shell quoting.
func runConvert(ctx context.Context, flags *cliFlags, positionals []string, cfg *config.Config, env *Environment) error {
	title := strings.TrimSpace(strings.Join(positionals, " "))
	if title == "" {
		return ErrMissingTitle
	}

	filename := blogen.Slugify(title)
	if filename == "" {
		return fmt.Errorf("%w: %q", ErrEmptySlug, title)
	}

	opts := []blogen.Option{
		blogen.WithClock(env.Now),
		blogen.WithDateFormat(cfg.Dates.ArticleFormat),
	}
	if cfg.CSS.Style != "" {
		opts = append(opts, blogen.WithStyle(cfg.CSS.Style))
	}

	svc := blogen.New(opts...)
	page, err := svc.ConvertFile(ctx, flags.convert, title)
	if err != nil {
		return err
	}

	outputPath := filepath.Join(cfg.Articles.Dir, filename+".html")
	if err := os.WriteFile(outputPath, []byte(page), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteArticle, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Converted %q to %q\n", flags.convert, outputPath)
		fmt.Fprintf(env.Stdout, "Title: %s\n", title)
	}

	return nil
}

// articlesHref derives the entry link prefix: the path from the generated
// index page to the articles directory. Falls back to the configured
// directory as-is when no relative path exists (different roots).
func articlesHref(cfg *config.Config) string {
	rel, err := filepath.Rel(filepath.Dir(cfg.Output.Index), cfg.Articles.Dir)
	if err != nil {
		return filepath.ToSlash(cfg.Articles.Dir)
	}
	return filepath.ToSlash(rel)
}

// runBuild scans the articles directory, reports findings, and writes the
// index. An empty directory is not an error: it reports and leaves any
// existing index untouched.
func runBuild(flags *cliFlags, cfg *config.Config, env *Environment) error {
	extractor := blogen.NewExtractor(blogen.WithIndexDateFormat(cfg.Dates.IndexFormat))

	articles, err := extractor.ScanDir(cfg.Articles.Dir)
	if err != nil {
		return err
	}

	if len(articles) == 0 {
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "No articles found in %s/ directory\n", cfg.Articles.Dir)
		}
		return nil
	}

	if !flags.common.quiet {
		for _, article := range articles {
			fmt.Fprintf(env.Stdout, "Found: %s\n", article.Title)
			if flags.common.verbose {
				fmt.Fprintf(env.Stdout, "  %s  %s  tags: %s\n",
					article.Filename, article.Date, strings.Join(article.Tags, ", "))
			}
		}
	}

	site := blogen.Site{
		Title:        cfg.Site.Title,
		Tagline:      cfg.Site.Tagline,
		PortfolioURL: cfg.Site.PortfolioURL,
	}

	index, err := blogen.RenderIndex(site, articles, articlesHref(cfg), env.Now())
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.Output.Index, []byte(index), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteIndex, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Generated %s with %d article(s)\n", cfg.Output.Index, len(articles))
	}

	return nil
}
