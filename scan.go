package blogen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanDir lists "*.html" files directly under dir, extracts metadata for
// each, and returns the records sorted by file modification time descending
// (newest first). A missing or empty directory returns an empty slice, not
// an error; the caller decides how to report "no articles found".
func (e *Extractor) ScanDir(dir string) ([]Article, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading articles directory: %w", err)
	}

	var articles []Article
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".html") {
			continue
		}
		article, err := e.Extract(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].ModTime.After(articles[j].ModTime)
	})

	return articles, nil
}
