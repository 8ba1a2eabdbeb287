package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSamvaadServer_ServiceInfo(t *testing.T) {
	server := SamvaadServer{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	server.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assertResponse[ServiceInfoResp](t, w, &ServiceInfoResp{
		Message: "GoodFoods AI Agent API is running!",
		Status:  "healthy",
		Version: "1.0.0",
		Agent:   "Samvaad - AI Reservation Assistant",
	}, nil)
}

func TestSamvaadServer_Health(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 1, 27, 15, 30, 0, 0, ist)

	timeProvider := domain.NewMockCurrentTimeProvider(t)
	timeProvider.EXPECT().Now().Return(now)

	server := SamvaadServer{TimeProvider: timeProvider}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	server.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assertResponse[HealthResp](t, w, &HealthResp{
		Status:    "healthy",
		Service:   "GoodFoods AI Agent",
		Timestamp: time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC),
	}, nil)
}

func TestSamvaadServer_UnknownRoute(t *testing.T) {
	server := SamvaadServer{}

	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	w := httptest.NewRecorder()

	server.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
