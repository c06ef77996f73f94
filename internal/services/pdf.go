package services

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// PDFRenderer prints HTML to PDF with a headless Chromium instance. The
// browser is launched once and shared; page creation is serialized by rod.
type PDFRenderer struct {
	browser *rod.Browser
}

// NewPDFRenderer launches the headless browser. Callers should treat errors
// as non-fatal and run without PDF output.
func NewPDFRenderer() (*PDFRenderer, error) {
	u, err := launcher.New().
		Headless(true).
		NoSandbox(true).
		Launch()
	if err != nil {
		return nil, fmt.Errorf("launching headless browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	log.Println("✅ PDF renderer ready (headless Chromium)")
	return &PDFRenderer{browser: browser}, nil
}

// Render prints the given HTML document to PDF bytes.
func (r *PDFRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	page, err := r.browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("setting page content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("waiting for page load: %w", err)
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
	})
	if err != nil {
		return nil, fmt.Errorf("printing to PDF: %w", err)
	}

	pdfBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading PDF stream: %w", err)
	}
	return pdfBytes, nil
}

// Close shuts the browser down.
func (r *PDFRenderer) Close() error {
	return r.browser.Close()
}
