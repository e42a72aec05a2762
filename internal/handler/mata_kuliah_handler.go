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

type MataKuliahHandler struct {
	mataKuliahService *service.MataKuliahService
}

func NewMataKuliahHandler(mataKuliahService *service.MataKuliahService) *MataKuliahHandler {
	return &MataKuliahHandler{mataKuliahService: mataKuliahService}
}

// GetAll godoc
// GET /api/acad/matakuliah
func (h *MataKuliahHandler) GetAll(c *gin.Context) {
	list, err := h.mataKuliahService.List(c.Request.Context())
	if err != nil {
		response.FailInternal(c, err)
		return
	}

	if list == nil {
		list = []model.MataKuliah{}
	}

	response.Success(c, http.StatusOK, gin.H{"mata_kuliah": list})
}

// Create godoc
// POST /api/acad/matakuliah
func (h *MataKuliahHandler) Create(c *gin.Context) {
	var req model.CreateMataKuliahRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	mk := &model.MataKuliah{KodeMK: req.KodeMK, NamaMK: req.NamaMK, SKS: req.SKS}
	if err := h.mataKuliahService.Create(c.Request.Context(), mk); err != nil {
		if errors.Is(err, service.ErrDuplicateMataKuliah) {
			response.FailWithFields(c, http.StatusConflict, response.ErrConflict, map[string]string{"kode_mk": err.Error()})
			return
		}
		response.FailInternal(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"mata_kuliah": mk})
}
