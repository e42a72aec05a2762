package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/acad-service/internal/model"
	"github.com/stemsi/acad-service/internal/response"
	"github.com/stemsi/acad-service/internal/service"
	"github.com/stemsi/acad-service/internal/validator"
)

type KRSHandler struct {
	krsService *service.KRSService
}

func NewKRSHandler(krsService *service.KRSService) *KRSHandler {
	return &KRSHandler{krsService: krsService}
}

// Create godoc
// POST /api/acad/krs
func (h *KRSHandler) Create(c *gin.Context) {
	var req model.CreateKRSRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	k := &model.KRS{
		NIM:      req.NIM,
		KodeMK:   req.KodeMK,
		Semester: req.Semester,
		Nilai:    req.Nilai,
	}
	err := h.krsService.Record(c.Request.Context(), k)
	if err == nil {
		response.Success(c, http.StatusCreated, gin.H{"krs": k})
		return
	}

	var refErr *service.ReferenceError
	switch {
	case errors.Is(err, service.ErrUnknownGrade):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidGrade, map[string]string{"nilai": err.Error()})
	case errors.As(err, &refErr):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrReferenceNotFound, map[string]string{refErr.Field: refErr.Error()})
	default:
		response.FailInternal(c, err)
	}
}
