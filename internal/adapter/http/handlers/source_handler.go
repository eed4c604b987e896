package handlers

import (
	"net/http"
	"time"

	response "contabilidad_orquestador/internal/adapter/http/dto/response"
	"contabilidad_orquestador/internal/usecase"

	"github.com/gin-gonic/gin"
)

const serviceName = "contabilidad-orquestador"

// SourceHandler exposes the upstream collections as fetched, plus health and
// diagnostic views. None of these endpoints fail when an upstream is down; the
// affected collection is simply empty.
type SourceHandler struct {
	usecase usecase.IDebtUseCase
	now     func() time.Time
}

func NewSourceHandler(uc usecase.IDebtUseCase) *SourceHandler {
	return &SourceHandler{usecase: uc, now: func() time.Time { return time.Now().UTC() }}
}

// ListInvoices godoc
// @Summary  Facturas tal como las entrega el servicio de origen
// @Tags     fuentes
// @Produce  json
// @Success  200  {array}  response.InvoiceResponse
// @Router   /contabilidad/facturas [get]
func (h *SourceHandler) ListInvoices(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromInvoices(h.usecase.ListInvoices(c.Request.Context())))
}

// ListPayments godoc
// @Summary  Pagos tal como los entrega el servicio de origen
// @Tags     fuentes
// @Produce  json
// @Success  200  {array}  response.PaymentResponse
// @Router   /contabilidad/pagos [get]
func (h *SourceHandler) ListPayments(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPayments(h.usecase.ListPayments(c.Request.Context())))
}

// ListCustomers godoc
// @Summary  Clientes tal como los entrega el servicio de origen
// @Tags     fuentes
// @Produce  json
// @Success  200  {array}  response.CustomerResponse
// @Router   /contabilidad/clientes [get]
func (h *SourceHandler) ListCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCustomers(h.usecase.ListCustomers(c.Request.Context())))
}

// GetSample godoc
// @Summary  Conteos y primeros registros de cada fuente
// @Tags     fuentes
// @Produce  json
// @Success  200  {object}  response.SampleResponse
// @Router   /contabilidad/datos-reales [get]
func (h *SourceHandler) GetSample(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSourceSample(h.usecase.SampleSources(c.Request.Context())))
}

// Health godoc
// @Summary  Estado del servicio y endpoints consumidos
// @Tags     salud
// @Produce  json
// @Success  200  {object}  response.HealthResponse
// @Router   /contabilidad/health [get]
func (h *SourceHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{
		Status:    "healthy",
		Service:   serviceName,
		Timestamp: h.now(),
		Endpoints: h.usecase.Endpoints(),
	})
}

// Liveness answers without touching any upstream.
func (h *SourceHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{
		Status:    "healthy",
		Service:   serviceName,
		Timestamp: h.now(),
	})
}

// DataStructure godoc
// @Summary      Diagnóstico de las fuentes
// @Description  Devuelve el status y el contenido crudo de cada fuente, para revisar su esquema.
// @Tags         diagnostico
// @Produce      json
// @Success      200  {object}  response.DiagnosticResponse
// @Router       /diagnostico/estructura-datos [get]
func (h *SourceHandler) DataStructure(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSourceProbes(h.usecase.DiagnoseSources(c.Request.Context()), h.now()))
}
