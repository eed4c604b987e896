package response

import (
	"encoding/json"
	"time"

	"contabilidad_orquestador/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Amounts are written as bare JSON numbers with the exact decimal digits.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

type InvoiceResponse struct {
	Code        int64       `json:"codigo"`
	CustomerID  int64       `json:"clienteCi"`
	IssueDate   string      `json:"fecha"`
	TotalAmount json.Number `json:"montoTotal" swaggertype:"number"`
	Paid        bool        `json:"pagada"`
}

type PaymentResponse struct {
	Code        int64       `json:"codigo"`
	InvoiceCode int64       `json:"facturaCodigo"`
	PaymentDate string      `json:"fechaPago"`
	AmountPaid  json.Number `json:"montoPagado" swaggertype:"number"`
}

type CustomerResponse struct {
	NationalID string `json:"ci"`
	Name       string `json:"nombre"`
	Category   string `json:"categoria"`
}

type CustomerDebtResponse struct {
	CustomerID     string            `json:"clienteCi"`
	CustomerName   string            `json:"nombreCliente"`
	Category       string            `json:"categoriaCliente"`
	TotalInvoiced  json.Number       `json:"totalFacturado" swaggertype:"number"`
	TotalPaid      json.Number       `json:"totalPagado" swaggertype:"number"`
	CurrentBalance json.Number       `json:"deudaActual" swaggertype:"number"`
	State          string            `json:"estadoDeuda"`
	InvoiceCount   int               `json:"cantidadFacturas"`
	PaymentCount   int               `json:"cantidadPagos"`
	ComputedAt     time.Time         `json:"fechaCalculo"`
	Invoices       []InvoiceResponse `json:"facturas"`
	Payments       []PaymentResponse `json:"pagos"`
}

func FromInvoice(i entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		Code:        i.Code,
		CustomerID:  i.CustomerID,
		IssueDate:   i.IssueDate,
		TotalAmount: money(i.TotalAmount),
		Paid:        i.Paid,
	}
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		Code:        p.Code,
		InvoiceCode: p.InvoiceCode,
		PaymentDate: p.PaymentDate,
		AmountPaid:  money(p.AmountPaid),
	}
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{NationalID: c.NationalID, Name: c.Name, Category: c.Category}
}

func FromInvoices(items []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromInvoice(i))
	}
	return out
}

func FromPayments(items []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPayment(p))
	}
	return out
}

func FromCustomers(items []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromCustomer(c))
	}
	return out
}

func FromCustomerDebt(s entities.CustomerDebtSummary) CustomerDebtResponse {
	return CustomerDebtResponse{
		CustomerID:     s.CustomerID,
		CustomerName:   s.Name,
		Category:       s.Category,
		TotalInvoiced:  money(s.TotalInvoiced),
		TotalPaid:      money(s.TotalPaid),
		CurrentBalance: money(s.CurrentBalance),
		State:          string(s.State),
		InvoiceCount:   s.InvoiceCount,
		PaymentCount:   s.PaymentCount,
		ComputedAt:     s.ComputedAt,
		Invoices:       FromInvoices(s.Invoices),
		Payments:       FromPayments(s.Payments),
	}
}
