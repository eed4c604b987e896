package response

import (
	"encoding/json"
	"time"

	"contabilidad_orquestador/internal/domain/entities"
)

type StateCountsResponse struct {
	Current    int `json:"alDia"`
	Watch      int `json:"enObservacion"`
	Delinquent int `json:"morosos"`
}

// ReportRowResponse is one customer line of the report. It carries counts only,
// not the invoice and payment lists.
type ReportRowResponse struct {
	CustomerID     string      `json:"clienteCi"`
	CustomerName   string      `json:"nombreCliente"`
	Category       string      `json:"categoria"`
	TotalInvoiced  json.Number `json:"totalFacturado" swaggertype:"number"`
	TotalPaid      json.Number `json:"totalPagado" swaggertype:"number"`
	Balance        json.Number `json:"deuda" swaggertype:"number"`
	State          string      `json:"estado"`
	InvoiceCount   int         `json:"cantidadFacturas"`
	PaymentCount   int         `json:"cantidadPagos"`
}

type DelinquencyReportResponse struct {
	ID                string              `json:"reporteId"`
	GeneratedAt       time.Time           `json:"fechaGeneracion"`
	TotalCustomers    int                 `json:"totalClientes"`
	SkippedCustomers  int                 `json:"clientesOmitidos"`
	GrandTotalBalance json.Number         `json:"totalDeudaGeneral" swaggertype:"number"`
	StateCounts       StateCountsResponse `json:"resumen"`
	TopDelinquents    []ReportRowResponse `json:"topMorosos"`
	Detail            []ReportRowResponse `json:"detalle"`
}

func FromReportRow(s entities.CustomerDebtSummary) ReportRowResponse {
	return ReportRowResponse{
		CustomerID:    s.CustomerID,
		CustomerName:  s.Name,
		Category:      s.Category,
		TotalInvoiced: money(s.TotalInvoiced),
		TotalPaid:     money(s.TotalPaid),
		Balance:       money(s.CurrentBalance),
		State:         string(s.State),
		InvoiceCount:  s.InvoiceCount,
		PaymentCount:  s.PaymentCount,
	}
}

func fromReportRows(rows []entities.CustomerDebtSummary) []ReportRowResponse {
	out := make([]ReportRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromReportRow(r))
	}
	return out
}

func FromDelinquencyReport(r entities.DelinquencyReport) DelinquencyReportResponse {
	return DelinquencyReportResponse{
		ID:                r.ID,
		GeneratedAt:       r.GeneratedAt,
		TotalCustomers:    r.TotalCustomers,
		SkippedCustomers:  r.SkippedCustomers,
		GrandTotalBalance: money(r.GrandTotalBalance),
		StateCounts: StateCountsResponse{
			Current:    r.StateCounts.Current,
			Watch:      r.StateCounts.Watch,
			Delinquent: r.StateCounts.Delinquent,
		},
		TopDelinquents: fromReportRows(r.TopDelinquents),
		Detail:         fromReportRows(r.Detail),
	}
}
