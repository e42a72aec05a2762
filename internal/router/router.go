package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/stemsi/acad-service/internal/config"
	"github.com/stemsi/acad-service/internal/handler"
	"github.com/stemsi/acad-service/internal/middleware"
	"github.com/stemsi/acad-service/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Mahasiswa  *handler.MahasiswaHandler
	MataKuliah *handler.MataKuliahHandler
	KRS        *handler.KRSHandler
	Transcript *handler.TranscriptHandler
	BobotNilai *handler.BobotNilaiHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// limiter may be nil.
func SetupRouter(
	verifier middleware.TokenVerifier,
	handlers *Handlers,
	limiter *middleware.RateLimiter,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID first so the logger and every envelope share it.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Metrics())
	router.Use(middleware.Brotli())

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	router.GET("/health", handler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ─── Academic API (bearer token) ───────────────────────────────────
	acad := router.Group("/api/acad")
	// Limit before verifying so rejected tokens are throttled too.
	if limiter != nil {
		acad.Use(limiter.Middleware())
	}
	acad.Use(middleware.RequireJWT(verifier))
	{
		acad.GET("/mahasiswa", handlers.Mahasiswa.GetAll)
		acad.POST("/mahasiswa", handlers.Mahasiswa.Create)

		acad.GET("/matakuliah", handlers.MataKuliah.GetAll)
		acad.POST("/matakuliah", handlers.MataKuliah.Create)

		acad.GET("/bobot-nilai", handlers.BobotNilai.GetAll)

		acad.POST("/krs", handlers.KRS.Create)

		acad.GET("/ips/:nim", handlers.Transcript.Get)
		acad.GET("/ips/:nim/export", handlers.Transcript.Export)
	}

	return router
}
