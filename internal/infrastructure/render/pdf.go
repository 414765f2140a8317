package render

import (
	"bytes"
	"fmt"
	"image/png"

	fitz "github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

// PDFRenderer converts a PDF document into one PNG image per page.
// Self-contained utility, not part of the analysis pipeline.
type PDFRenderer struct {
	logger *zap.Logger
}

// NewPDFRenderer creates a renderer
func NewPDFRenderer(logger *zap.Logger) *PDFRenderer {
	return &PDFRenderer{logger: logger}
}

// RenderPages renders every page of the document to PNG, in page order
func (r *PDFRenderer) RenderPages(document []byte) ([][]byte, error) {
	doc, err := fitz.NewFromMemory(document)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer doc.Close()

	pages := make([][]byte, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		img, err := doc.Image(n)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", n+1, err)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode page %d: %w", n+1, err)
		}
		pages = append(pages, buf.Bytes())
	}

	if r.logger != nil {
		r.logger.Info("document rendered", zap.Int("page_count", len(pages)))
	}
	return pages, nil
}
