package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/orator-app/speech-coach/errors"
	dto "github.com/orator-app/speech-coach/internal/adapter/dto/analysis"
	"github.com/orator-app/speech-coach/internal/adapter/presenter"
	"github.com/orator-app/speech-coach/internal/domain/entities"
	"github.com/orator-app/speech-coach/internal/usecase/analysis"
)

// AnalysisHandler exposes the analysis pipeline over HTTP
type AnalysisHandler struct {
	svc    analysis.Service
	logger *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(svc analysis.Service, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{svc: svc, logger: logger}
}

// Analyze accepts a multipart audio upload plus optional slide context and
// runs the full coaching pipeline. Success is the complete report; any stage
// failure is a single error string.
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrMissingAudioFile())
	}

	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid form data"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid language code"))
	}

	format, ok := entities.AudioFormatFromMediaType(declaredMediaType(fileHeader))
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnsupportedMediaType(declaredMediaType(fileHeader)))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrUploadRead(err))
	}
	defer src.Close()

	audio, err := io.ReadAll(src)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrUploadRead(err))
	}
	if len(audio) == 0 {
		return HandleError(h.logger, c, apperrors.ErrMissingAudioFile())
	}

	report, err := h.svc.Analyze(c.Request().Context(), entities.AnalysisRequest{
		Audio:        audio,
		Format:       format,
		SlideContext: req.Slides,
		Language:     req.Language,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if h.logger != nil {
		h.logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}
	return c.JSON(http.StatusOK, presenter.ToAnalysisResponse(report))
}

// declaredMediaType reads the part's content type, falling back to the file
// extension when the client sent a generic type
func declaredMediaType(fh *multipart.FileHeader) string {
	ct := strings.ToLower(strings.TrimSpace(fh.Header.Get("Content-Type")))
	if ct != "" && ct != "application/octet-stream" {
		if i := strings.Index(ct, ";"); i >= 0 {
			ct = strings.TrimSpace(ct[:i])
		}
		return ct
	}
	return strings.ToLower(filepath.Ext(fh.Filename))
}
