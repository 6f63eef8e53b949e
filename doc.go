// Package blogen generates a static essay blog from plain documents.
//
// # Quick Start
//
// Create a service, convert a source document, and write the result:
//
//	svc := blogen.New()
//	page, err := svc.Convert(ctx, blogen.Input{
//	    Text:  "# Intro\n\nHello world.",
//	    Title: "My Essay",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("articles/my-essay.html", []byte(page), 0644)
//
// The result is a complete, self-styled HTML article with a table of
// contents built from detected headings.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Source text extraction (plain text, Markdown, .docx, .pdf)
//  2. Paragraph splitting on blank-line boundaries
//  3. Heading classification (ALL-CAPS lines, "#" markers) and inline
//     emphasis rendering (**bold**, *italic*); Markdown sources are
//     rendered with Goldmark instead
//  4. Table of contents collection from detected headings
//  5. Interpolation into the embedded article page shell
//
// # Index Generation
//
// Scan an articles directory and render the landing page:
//
//	ext := blogen.NewExtractor()
//	articles, err := ext.ScanDir("articles")
//	index := blogen.RenderIndex(blogen.Site{Title: "Essays"}, articles, "", time.Now())
//
// Article metadata (title, excerpt, tags) is read from the generated HTML
// files themselves; the article date always reflects the file modification
// time, so touching a file moves it to the top of the index.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := blogen.New(
//	    blogen.WithDateFormat("DD/MM/YYYY"),
//	    blogen.WithStyle("plain"),
//	)
package blogen
