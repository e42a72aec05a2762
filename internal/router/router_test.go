package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/acad-service/internal/config"
	"github.com/stemsi/acad-service/internal/handler"
	"github.com/stemsi/acad-service/internal/metrics"
	"github.com/stemsi/acad-service/internal/middleware"
	"github.com/stemsi/acad-service/internal/repository"
	"github.com/stemsi/acad-service/internal/service"
)

// countingUoW records whether any handler reached storage.
type countingUoW struct {
	calls int
}

func (u *countingUoW) Do(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	u.calls++
	return repository.ErrNotFound
}

func newTestRouter(t *testing.T, uow repository.UnitOfWork, limiter *middleware.RateLimiter) (*gin.Engine, *service.AuthService) {
	t.Helper()
	metrics.Init(nil)

	cfg := &config.Config{GinMode: gin.TestMode, JWTSecret: "test-secret", JWTExpiry: time.Hour}
	auth := service.NewAuthService(cfg)
	log := zerolog.Nop()

	h := &Handlers{
		Mahasiswa:  handler.NewMahasiswaHandler(service.NewMahasiswaService(uow)),
		MataKuliah: handler.NewMataKuliahHandler(service.NewMataKuliahService(uow)),
		KRS:        handler.NewKRSHandler(service.NewKRSService(uow, log)),
		Transcript: handler.NewTranscriptHandler(service.NewTranscriptService(uow, log)),
		BobotNilai: handler.NewBobotNilaiHandler(service.NewBobotNilaiService(uow, nil, log)),
	}
	return SetupRouter(auth, h, limiter, cfg, log), auth
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	uow := &countingUoW{}
	r, _ := newTestRouter(t, uow, nil)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/acad/mahasiswa"},
		{http.MethodPost, "/api/acad/mahasiswa"},
		{http.MethodGet, "/api/acad/matakuliah"},
		{http.MethodPost, "/api/acad/matakuliah"},
		{http.MethodGet, "/api/acad/bobot-nilai"},
		{http.MethodPost, "/api/acad/krs"},
		{http.MethodGet, "/api/acad/ips/S1"},
		{http.MethodGet, "/api/acad/ips/S1/export"},
	}
	for _, rt := range routes {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(rt.method, rt.path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", rt.method, rt.path, rec.Code)
		}
	}
	if uow.calls != 0 {
		t.Fatalf("storage touched %d times without a token", uow.calls)
	}
}

func TestValidTokenReachesHandler(t *testing.T) {
	uow := &countingUoW{}
	r, auth := newTestRouter(t, uow, nil)

	token, err := auth.IssueToken("ops", "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/acad/ips/S1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	// countingUoW returns ErrNotFound, which is not a domain error.
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 from stub storage, got %d", rec.Code)
	}
	if uow.calls != 1 {
		t.Fatalf("expected one unit of work, got %d", uow.calls)
	}
}

func TestPublicEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, &countingUoW{}, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("health: got %d headers %v", rec.Code, rec.Header())
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "acad_http_requests_total") {
		t.Fatalf("metrics: got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), "NOT_FOUND") {
		t.Fatalf("no route: got %d %s", rec.Code, rec.Body.String())
	}
}

func TestRateLimiterAppliesToAPI(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r, auth := newTestRouter(t, &countingUoW{}, middleware.NewRateLimiter(ctx, 1, time.Hour))
	token, _ := auth.IssueToken("ops", "admin")

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/acad/ips/S1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	if codes[1] != http.StatusTooManyRequests {
		t.Fatalf("expected second request limited, got %v", codes)
	}
}

func TestRateLimiterThrottlesUnauthenticated(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r, _ := newTestRouter(t, &countingUoW{}, middleware.NewRateLimiter(ctx, 2, time.Hour))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/acad/mahasiswa", nil)
		req.Header.Set("Authorization", "Bearer forged")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusUnauthorized || codes[1] != http.StatusUnauthorized || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected 401, 401, 429 for bad tokens, got %v", codes)
	}
}
