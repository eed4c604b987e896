package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtState classifies a customer's net balance.
//
// Business policy:
//   - balance <= 0           => DebtStateCurrent
//   - 0 < balance <= 1000    => DebtStateWatch
//   - balance > 1000         => DebtStateDelinquent
//
// The thresholds are fixed; they are not read from configuration.
type DebtState string

const (
	DebtStateCurrent    DebtState = "Al día"
	DebtStateWatch      DebtState = "En observación"
	DebtStateDelinquent DebtState = "Moroso"
)

var watchCeiling = decimal.NewFromInt(1000)

// ClassifyBalance maps a net balance onto its DebtState.
func ClassifyBalance(balance decimal.Decimal) DebtState {
	switch {
	case !balance.IsPositive():
		return DebtStateCurrent
	case balance.LessThanOrEqual(watchCeiling):
		return DebtStateWatch
	default:
		return DebtStateDelinquent
	}
}

// CustomerDebtSummary is the per-customer aggregate built for a single request.
//
// CurrentBalance is always TotalInvoiced - TotalPaid.
type CustomerDebtSummary struct {
	CustomerID     string
	Name           string
	Category       string
	TotalInvoiced  decimal.Decimal
	TotalPaid      decimal.Decimal
	CurrentBalance decimal.Decimal
	State          DebtState
	InvoiceCount   int
	PaymentCount   int
	ComputedAt     time.Time
	Invoices       []Invoice
	Payments       []Payment
}

// StateCounts holds how many customers fall in each DebtState.
type StateCounts struct {
	Current    int
	Watch      int
	Delinquent int
}

// DelinquencyReport is the fleet-wide debt report.
//
// TotalCustomers counts every fetched customer, including the ones skipped because
// their identifier is not numeric (SkippedCustomers). Detail keeps fetch order.
type DelinquencyReport struct {
	ID                string
	GeneratedAt       time.Time
	TotalCustomers    int
	SkippedCustomers  int
	GrandTotalBalance decimal.Decimal
	StateCounts       StateCounts
	TopDelinquents    []CustomerDebtSummary
	Detail            []CustomerDebtSummary
}
