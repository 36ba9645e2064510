package export

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/resume-builder/internal/rendering"
)

// Letter paper size in inches.
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11.0
)

// DefaultTimeout bounds one PDF rendering run.
const DefaultTimeout = 60 * time.Second

// PDFExporter renders HTML to PDF through headless Chrome. Requires
// Chrome/Chromium on the system; ChromePath overrides discovery.
type PDFExporter struct {
	ChromePath string
	Timeout    time.Duration
	Verbose    bool
}

// NewPDFExporter returns an exporter with the default timeout.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{Timeout: DefaultTimeout}
}

// Export renders the given HTML document to PDF bytes. The document must
// contain the rendering anchor element; export refuses to run against a
// document without it rather than printing a blank page.
func (e *PDFExporter) Export(ctx context.Context, html string) ([]byte, error) {
	if err := verifyAnchor(html); err != nil {
		return nil, err
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// Chrome loads the document from disk; data URLs hit length limits on
	// large photos.
	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return nil, &ExportError{Message: "failed to create temp directory", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &ExportError{Message: "failed to write document", Cause: err}
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	if e.Verbose {
		log.Printf("[EXPORT] Printing %d bytes of HTML to PDF", len(html))
	}

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("#"+rendering.DocumentAnchorID, chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, &ExportError{Message: "browser rendering failed", Cause: err}
	}

	if e.Verbose {
		log.Printf("[EXPORT] Produced PDF: %d bytes", len(pdf))
	}
	return pdf, nil
}

// ExportToFile renders html to PDF and writes it into dir under the
// deterministic export filename. Returns the full output path.
func (e *PDFExporter) ExportToFile(ctx context.Context, html, dir, personalName string, tmpl rendering.Template, includeDate bool) (string, error) {
	pdf, err := e.Export(ctx, html)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &ExportError{Message: fmt.Sprintf("failed to create output directory %s", dir), Cause: err}
	}

	path := filepath.Join(dir, FileName(personalName, tmpl, includeDate))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", &ExportError{Message: fmt.Sprintf("failed to write %s", path), Cause: err}
	}
	return path, nil
}

// verifyAnchor confirms the rendered document carries the export anchor.
func verifyAnchor(html string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return &ExportError{Message: "failed to parse rendered document", Cause: err}
	}
	if doc.Find("#" + rendering.DocumentAnchorID).Length() == 0 {
		return &ExportError{Message: "rendered document is missing the export anchor"}
	}
	return nil
}
