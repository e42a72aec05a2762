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

type MahasiswaHandler struct {
	mahasiswaService *service.MahasiswaService
}

func NewMahasiswaHandler(mahasiswaService *service.MahasiswaService) *MahasiswaHandler {
	return &MahasiswaHandler{mahasiswaService: mahasiswaService}
}

// GetAll godoc
// GET /api/acad/mahasiswa
func (h *MahasiswaHandler) GetAll(c *gin.Context) {
	list, err := h.mahasiswaService.List(c.Request.Context())
	if err != nil {
		response.FailInternal(c, err)
		return
	}

	if list == nil {
		list = []model.Mahasiswa{}
	}

	response.Success(c, http.StatusOK, gin.H{"mahasiswa": list})
}

// Create godoc
// POST /api/acad/mahasiswa
func (h *MahasiswaHandler) Create(c *gin.Context) {
	var req model.CreateMahasiswaRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	m := &model.Mahasiswa{
		NIM:      req.NIM,
		Nama:     req.Nama,
		Jurusan:  req.Jurusan,
		Angkatan: req.Angkatan,
	}
	if err := h.mahasiswaService.Create(c.Request.Context(), m); err != nil {
		if errors.Is(err, service.ErrDuplicateMahasiswa) {
			response.FailWithFields(c, http.StatusConflict, response.ErrConflict, map[string]string{"nim": err.Error()})
			return
		}
		response.FailInternal(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"mahasiswa": m})
}
