package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/acad-service/internal/response"
)

// Health godoc
// GET /health
func Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"status":    "Acad Service is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
