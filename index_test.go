package blogen

import (
	"strings"
	"testing"
	"time"
)

func testSite() Site {
	return Site{
		Title:        "Essays",
		Tagline:      "Thoughts on technology.",
		PortfolioURL: "https://example.com/portfolio/",
	}
}

func testArticles() []Article {
	return []Article{
		{Title: "First Essay", Excerpt: "Opening thoughts.", Date: "March 2026", Filename: "first-essay.html"},
		{Title: "Second Essay", Excerpt: "More thoughts.", Date: "February 2026", Filename: "second-essay.html", Tags: []string{"go", "design"}},
		{Title: "Third Essay", Excerpt: "Final thoughts.", Date: "January 2026", Filename: "third-essay.html"},
	}
}

func TestRenderIndex(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	got, err := RenderIndex(testSite(), testArticles(), "", now)
	if err != nil {
		t.Fatalf("RenderIndex() error = %v", err)
	}

	wantContains := []string{
		"<title>Essays</title>",
		"<h1>Essays</h1>",
		"Thoughts on technology.",
		`href="https://example.com/portfolio/"`,
		"&copy; 2026",
		"First Essay",
		"Second Essay",
		"Third Essay",
		"articles/first-essay.html",
		"<span>go</span><span>design</span>",
	}
	for _, want := range wantContains {
		if !strings.Contains(got, want) {
			t.Errorf("RenderIndex() output missing %q", want)
		}
	}
}

// Entry i gets animation-delay 0.3 + 0.2*i seconds.
func TestRenderIndex_StaggeredDelays(t *testing.T) {
	t.Parallel()

	got, err := RenderIndex(testSite(), testArticles(), "", time.Now())
	if err != nil {
		t.Fatalf("RenderIndex() error = %v", err)
	}

	wantDelays := []string{
		`animation-delay: 0.3s`,
		`animation-delay: 0.5s`,
		`animation-delay: 0.7s`,
	}
	lastIdx := -1
	for _, want := range wantDelays {
		idx := strings.Index(got, want)
		if idx == -1 {
			t.Fatalf("RenderIndex() output missing %q", want)
		}
		if idx < lastIdx {
			t.Errorf("delay %q appears out of order", want)
		}
		lastIdx = idx
	}
}

func TestRenderIndex_EntriesInGivenOrder(t *testing.T) {
	t.Parallel()

	got, err := RenderIndex(testSite(), testArticles(), "", time.Now())
	if err != nil {
		t.Fatalf("RenderIndex() error = %v", err)
	}

	first := strings.Index(got, "First Essay")
	second := strings.Index(got, "Second Essay")
	third := strings.Index(got, "Third Essay")
	if !(first < second && second < third) {
		t.Errorf("entries out of order: %d, %d, %d", first, second, third)
	}
}

// Entry links follow the configured articles location, not a fixed
// "articles/" prefix, so a relocated articles directory still resolves.
func TestRenderIndex_ArticlesHref(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		href string
		want string
	}{
		{name: "default when empty", href: "", want: "window.location.href='articles/first-essay.html'"},
		{name: "custom relative dir", href: "posts", want: "window.location.href='posts/first-essay.html'"},
		{name: "nested dir", href: "content/essays", want: "window.location.href='content/essays/first-essay.html'"},
		{name: "trailing slash trimmed", href: "posts/", want: "window.location.href='posts/first-essay.html'"},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RenderIndex(testSite(), testArticles(), tt.href, time.Now())
			if err != nil {
				t.Fatalf("RenderIndex() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("RenderIndex() output missing %q", tt.want)
			}
		})
	}
}

func TestRenderIndex_NoPortfolioLink(t *testing.T) {
	t.Parallel()

	site := testSite()
	site.PortfolioURL = ""

	got, err := RenderIndex(site, nil, "", time.Now())
	if err != nil {
		t.Fatalf("RenderIndex() error = %v", err)
	}
	if strings.Contains(got, "back-to-portfolio") {
		t.Errorf("RenderIndex() should omit the portfolio back-link when no URL is set")
	}
}

func TestRenderIndex_EscapesMetadata(t *testing.T) {
	t.Parallel()

	articles := []Article{
		{Title: "Tools & Toys", Excerpt: "On <script> safety.", Date: "March 2026", Filename: "tools.html"},
	}

	got, err := RenderIndex(testSite(), articles, "", time.Now())
	if err != nil {
		t.Fatalf("RenderIndex() error = %v", err)
	}

	if !strings.Contains(got, "Tools &amp; Toys") {
		t.Errorf("title not escaped")
	}
	if !strings.Contains(got, "On &lt;script&gt; safety.") {
		t.Errorf("excerpt not escaped")
	}
}
