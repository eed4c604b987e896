package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contabilidad_orquestador/internal/adapter/http/handlers/mocks"
	"contabilidad_orquestador/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDebtUseCase(ctrl)
	router := NewRouter(uc, zap.NewNop())

	t.Run("root redirects to swagger", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusFound || w.Header().Get("Location") != PathSwaggerHome {
			t.Fatalf("unexpected redirect %d %q", w.Code, w.Header().Get("Location"))
		}
	})

	t.Run("liveness", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("customer debt route", func(t *testing.T) {
		uc.EXPECT().GetCustomerDebt(gomock.Any(), "10").Return(entities.CustomerDebtSummary{
			CustomerID:     "10",
			CurrentBalance: decimal.NewFromInt(900),
			State:          entities.DebtStateWatch,
		}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/contabilidad/deuda-cliente/10", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Fatalf("expected request id header")
		}
	})

	t.Run("diagnostics route", func(t *testing.T) {
		uc.EXPECT().DiagnoseSources(gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/diagnostico/estructura-datos", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "contabilidad_http_requests_total") {
			t.Fatalf("unexpected metrics response %d", w.Code)
		}
	})

	t.Run("swagger doc", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "/contabilidad/deuda-cliente/{ci}") {
			t.Fatalf("unexpected swagger response %d", w.Code)
		}
	})
}
