package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/acad-service/internal/export"
	"github.com/stemsi/acad-service/internal/metrics"
	"github.com/stemsi/acad-service/internal/model"
	"github.com/stemsi/acad-service/internal/response"
	"github.com/stemsi/acad-service/internal/service"
)

type TranscriptHandler struct {
	transcriptService *service.TranscriptService
}

func NewTranscriptHandler(transcriptService *service.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{transcriptService: transcriptService}
}

// Get godoc
// GET /api/acad/ips/:nim
func (h *TranscriptHandler) Get(c *gin.Context) {
	t, ok := h.build(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, t)
}

// Export godoc
// GET /api/acad/ips/:nim/export?format=xlsx|pdf
func (h *TranscriptHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", string(export.FormatXLSX)))
	if err != nil {
		metrics.IncExport("unknown", metrics.ResultInvalid)
		response.FailWithFields(c, http.StatusBadRequest, response.ErrUnsupportedFormat, map[string]string{"format": err.Error()})
		return
	}

	t, ok := h.build(c)
	if !ok {
		return
	}

	data, err := export.Render(format, t)
	if err != nil {
		metrics.IncExport(string(format), metrics.ResultError)
		response.FailInternal(c, err)
		return
	}

	metrics.IncExport(string(format), metrics.ResultSuccess)
	c.Header("Content-Disposition", `attachment; filename="`+format.FileName(t.NIM)+`"`)
	c.Data(http.StatusOK, format.ContentType(), data)
}

// build writes the error response itself and reports false on failure.
func (h *TranscriptHandler) build(c *gin.Context) (*model.Transcript, bool) {
	t, err := h.transcriptService.Build(c.Request.Context(), c.Param("nim"))
	switch {
	case err == nil:
		return t, true
	case errors.Is(err, service.ErrEmptyNIM):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, map[string]string{"nim": err.Error()})
	case errors.Is(err, service.ErrMahasiswaNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrMahasiswaNotFound)
	default:
		response.FailInternal(c, err)
	}
	return nil, false
}
