package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/acad-service/internal/model"
	"github.com/stemsi/acad-service/internal/response"
	"github.com/stemsi/acad-service/internal/service"
)

type BobotNilaiHandler struct {
	bobotNilaiService *service.BobotNilaiService
}

func NewBobotNilaiHandler(bobotNilaiService *service.BobotNilaiService) *BobotNilaiHandler {
	return &BobotNilaiHandler{bobotNilaiService: bobotNilaiService}
}

// GetAll godoc
// GET /api/acad/bobot-nilai
func (h *BobotNilaiHandler) GetAll(c *gin.Context) {
	list, err := h.bobotNilaiService.List(c.Request.Context())
	if err != nil {
		response.FailInternal(c, err)
		return
	}

	if list == nil {
		list = []model.BobotNilai{}
	}

	response.Success(c, http.StatusOK, gin.H{"bobot_nilai": list})
}
