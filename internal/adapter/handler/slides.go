package handler

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/orator-app/speech-coach/errors"
	dto "github.com/orator-app/speech-coach/internal/adapter/dto/analysis"
	"github.com/orator-app/speech-coach/internal/infrastructure/render"
)

// SlidesHandler exposes the PDF page rendering utility
type SlidesHandler struct {
	renderer *render.PDFRenderer
	logger   *zap.Logger
}

// NewSlidesHandler creates a new slides handler
func NewSlidesHandler(renderer *render.PDFRenderer, logger *zap.Logger) *SlidesHandler {
	return &SlidesHandler{renderer: renderer, logger: logger}
}

// Render accepts a PDF upload and returns one base64 PNG per page
func (h *SlidesHandler) Render(c echo.Context) error {
	fileHeader, err := c.FormFile("document")
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("No document file provided"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrUploadRead(err))
	}
	defer src.Close()

	document, err := io.ReadAll(src)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrUploadRead(err))
	}

	pages, err := h.renderer.RenderPages(document)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrRenderFailed(err))
	}

	encoded := make([]string, 0, len(pages))
	for _, page := range pages {
		encoded = append(encoded, base64.StdEncoding.EncodeToString(page))
	}

	return c.JSON(http.StatusOK, dto.RenderResponse{Pages: encoded})
}
