package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"contabilidad_orquestador/internal/adapter/export"
	request "contabilidad_orquestador/internal/adapter/http/dto/request"
	response "contabilidad_orquestador/internal/adapter/http/dto/response"
	"contabilidad_orquestador/internal/domain/entities"
	"contabilidad_orquestador/internal/usecase"
	"contabilidad_orquestador/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidTop = pkg.NewDomainErrorSimple("INVALID_TOP", "top must be an integer between 1 and 50", http.StatusBadRequest)
)

// DebtHandler serves the customer debt and delinquency report endpoints.
type DebtHandler struct {
	usecase usecase.IDebtUseCase
	log     *zap.Logger
}

func NewDebtHandler(uc usecase.IDebtUseCase, log *zap.Logger) *DebtHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DebtHandler{usecase: uc, log: log.Named("http.handler")}
}

// GetCustomerDebt godoc
// @Summary      Deuda de un cliente
// @Description  Consolida facturas y pagos del cliente y clasifica su deuda.
// @Tags         contabilidad
// @Produce      json
// @Param        ci   path      string  true  "CI del cliente"
// @Success      200  {object}  response.CustomerDebtResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /contabilidad/deuda-cliente/{ci} [get]
func (h *DebtHandler) GetCustomerDebt(c *gin.Context) {
	ci := c.Param("ci")

	summary, err := h.usecase.GetCustomerDebt(c.Request.Context(), ci)
	if err != nil {
		appErr := mapDebtError(err)
		h.logFailure("customer debt failed", appErr, zap.String("customer_id", ci))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomerDebt(summary))
}

// GetDelinquencyReport godoc
// @Summary      Reporte de morosidad
// @Description  Calcula la deuda de todos los clientes, los totales por estado y el top de morosos.
// @Tags         contabilidad
// @Produce      json
// @Param        top  query     int  false  "Cantidad de morosos en el top (1-50, por defecto 5)"
// @Success      200  {object}  response.DelinquencyReportResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /contabilidad/reporte-morosidad [get]
func (h *DebtHandler) GetDelinquencyReport(c *gin.Context) {
	report, ok := h.buildReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromDelinquencyReport(report))
}

// ExportDelinquencyReport godoc
// @Summary      Reporte de morosidad en Excel
// @Tags         contabilidad
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        top  query     int  false  "Cantidad de morosos en el top (1-50, por defecto 5)"
// @Success      200  {file}    file
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /contabilidad/reporte-morosidad/xlsx [get]
func (h *DebtHandler) ExportDelinquencyReport(c *gin.Context) {
	report, ok := h.buildReport(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteDelinquencyReport(&buf, report); err != nil {
		appErr := pkg.NewDomainError("EXPORT_FAILED", "Could not render the report", err, http.StatusInternalServerError)
		h.logFailure("report export failed", appErr, zap.String("report_id", report.ID))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.FileName(report)+`"`)
	c.Data(http.StatusOK, export.ContentTypeXLSX, buf.Bytes())
}

func (h *DebtHandler) buildReport(c *gin.Context) (entities.DelinquencyReport, bool) {
	var q request.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidTop.HTTPStatus, errInvalidTop.ToHTTPError())
		return entities.DelinquencyReport{}, false
	}
	top, err := q.ResolveTop()
	if err != nil {
		c.JSON(errInvalidTop.HTTPStatus, errInvalidTop.ToHTTPError())
		return entities.DelinquencyReport{}, false
	}

	report, err := h.usecase.GetDelinquencyReport(c.Request.Context(), top)
	if err != nil {
		appErr := mapDebtError(err)
		h.logFailure("delinquency report failed", appErr, zap.Int("top", top))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.DelinquencyReport{}, false
	}
	return report, true
}

func (h *DebtHandler) logFailure(msg string, appErr *pkg.AppError, fields ...zap.Field) {
	fields = append(fields, zap.String("code", appErr.Code), zap.Error(appErr))
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error(msg, fields...)
		return
	}
	h.log.Info(msg, fields...)
}

func mapDebtError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_IDENTIFIER", "Customer id must be numeric", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTopN):
		return errInvalidTop
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAggregationFault):
		return pkg.NewDomainError("AGGREGATION_FAULT", "Debt aggregation failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
