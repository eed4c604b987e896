package entities

import "github.com/shopspring/decimal"

// Payment is money received (pago) against exactly one invoice.
//
// A payment is never attributed to a customer directly: it reaches the customer
// through the invoice referenced by InvoiceCode.
type Payment struct {
	Code        int64           `json:"codigo"`
	InvoiceCode int64           `json:"facturaCodigo"`
	PaymentDate string          `json:"fechaPago"`
	AmountPaid  decimal.Decimal `json:"montoPagado"`
}
