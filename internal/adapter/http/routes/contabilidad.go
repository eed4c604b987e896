package routes

import (
	"contabilidad_orquestador/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathContabilidad = "/contabilidad"
	PathDiagnostico  = "/diagnostico"
)

func addContabilidadRoutes(rg *gin.RouterGroup, debtHandler *handlers.DebtHandler, sourceHandler *handlers.SourceHandler) {
	contabilidad := rg.Group(PathContabilidad)
	{
		contabilidad.GET("/deuda-cliente/:ci", debtHandler.GetCustomerDebt)
		contabilidad.GET("/reporte-morosidad", debtHandler.GetDelinquencyReport)
		contabilidad.GET("/reporte-morosidad/xlsx", debtHandler.ExportDelinquencyReport)

		// Fuentes tal como llegan, para depuración.
		contabilidad.GET("/facturas", sourceHandler.ListInvoices)
		contabilidad.GET("/pagos", sourceHandler.ListPayments)
		contabilidad.GET("/clientes", sourceHandler.ListCustomers)
		contabilidad.GET("/datos-reales", sourceHandler.GetSample)
		contabilidad.GET("/health", sourceHandler.Health)
	}

	diagnostico := rg.Group(PathDiagnostico)
	{
		diagnostico.GET("/estructura-datos", sourceHandler.DataStructure)
	}
}
