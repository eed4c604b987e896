package response

import (
	"time"

	"contabilidad_orquestador/internal/domain/entities"
)

// SampleResponse shows collection sizes plus the first records of each source.
type SampleResponse struct {
	TotalCustomers int                `json:"totalClientes"`
	TotalInvoices  int                `json:"totalFacturas"`
	TotalPayments  int                `json:"totalPagos"`
	Customers      []CustomerResponse `json:"primerosClientes"`
	Invoices       []InvoiceResponse  `json:"primerasFacturas"`
	Payments       []PaymentResponse  `json:"primerosPagos"`
}

func FromSourceSample(s entities.SourceSample) SampleResponse {
	return SampleResponse{
		TotalCustomers: s.TotalCustomers,
		TotalInvoices:  s.TotalInvoices,
		TotalPayments:  s.TotalPayments,
		Customers:      FromCustomers(s.Customers),
		Invoices:       FromInvoices(s.Invoices),
		Payments:       FromPayments(s.Payments),
	}
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"servicio"`
	Timestamp time.Time `json:"timestamp"`
	Endpoints []string  `json:"endpointsConsumidos,omitempty"`
}

type ProbeResponse struct {
	Source     string `json:"fuente"`
	Endpoint   string `json:"endpoint"`
	StatusCode int    `json:"statusCode"`
	Content    string `json:"contenido"`
	Error      string `json:"error,omitempty"`
}

type DiagnosticResponse struct {
	Timestamp time.Time       `json:"timestamp"`
	Sources   []ProbeResponse `json:"fuentes"`
}

func FromSourceProbes(probes []entities.SourceProbe, now time.Time) DiagnosticResponse {
	out := DiagnosticResponse{Timestamp: now, Sources: make([]ProbeResponse, 0, len(probes))}
	for _, p := range probes {
		out.Sources = append(out.Sources, ProbeResponse{
			Source:     string(p.Source),
			Endpoint:   p.Endpoint,
			StatusCode: p.StatusCode,
			Content:    p.Content,
			Error:      p.Error,
		})
	}
	return out
}
