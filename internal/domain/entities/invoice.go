package entities

import "github.com/shopspring/decimal"

// Invoice is a billing record (factura) read from the invoices source.
//
// Domain notes:
//   - Code is unique across the source; payments reference it.
//   - CustomerID is the numeric form of Customer.NationalID.
//   - Paid is informational only. Balances are derived from payments.
//
// JSON names follow the upstream schema so raw collections can be returned as fetched.
type Invoice struct {
	Code        int64           `json:"codigo"`
	CustomerID  int64           `json:"clienteCi"`
	IssueDate   string          `json:"fecha"`
	TotalAmount decimal.Decimal `json:"montoTotal"`
	Paid        bool            `json:"pagada"`
}
