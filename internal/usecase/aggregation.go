package usecase

import (
	"strconv"
	"strings"
	"time"

	"contabilidad_orquestador/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// parseCustomerID converts a customer CI into the numeric key invoices use.
func parseCustomerID(ci string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(ci), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ledgerIndex pre-joins a snapshot: invoices by customer, and payments routed to
// customers through the invoice code they reference.
type ledgerIndex struct {
	invoicesByCustomer map[int64][]entities.Invoice
	paymentsByCustomer map[int64][]entities.Payment
}

func newLedgerIndex(invoices []entities.Invoice, payments []entities.Payment) ledgerIndex {
	idx := ledgerIndex{
		invoicesByCustomer: make(map[int64][]entities.Invoice),
		paymentsByCustomer: make(map[int64][]entities.Payment),
	}

	// Invoice codes are expected to be unique; if the source ever repeats one with
	// different owners, the payment counts for every owner, same as a direct filter.
	owners := make(map[int64][]int64, len(invoices))
	for _, inv := range invoices {
		idx.invoicesByCustomer[inv.CustomerID] = append(idx.invoicesByCustomer[inv.CustomerID], inv)
		if !containsID(owners[inv.Code], inv.CustomerID) {
			owners[inv.Code] = append(owners[inv.Code], inv.CustomerID)
		}
	}

	for _, p := range payments {
		for _, customerID := range owners[p.InvoiceCode] {
			idx.paymentsByCustomer[customerID] = append(idx.paymentsByCustomer[customerID], p)
		}
	}
	return idx
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Aggregate builds one summary per customer whose CI is numeric, in fetch order.
// Customers with a non-numeric CI are skipped and counted.
func Aggregate(snap Snapshot, now time.Time) (summaries []entities.CustomerDebtSummary, skipped int) {
	idx := newLedgerIndex(snap.Invoices, snap.Payments)

	summaries = make([]entities.CustomerDebtSummary, 0, len(snap.Customers))
	for _, c := range snap.Customers {
		id, ok := parseCustomerID(c.NationalID)
		if !ok {
			skipped++
			continue
		}
		summaries = append(summaries, summarize(c, idx.invoicesByCustomer[id], idx.paymentsByCustomer[id], now))
	}
	return summaries, skipped
}

// AggregateOne selects the invoices and payments of a single customer by direct
// filtering. Payments are matched through the customer's invoices, never by CI.
func AggregateOne(customerID int64, snap Snapshot) ([]entities.Invoice, []entities.Payment) {
	invoices := make([]entities.Invoice, 0)
	codes := make(map[int64]struct{})
	for _, inv := range snap.Invoices {
		if inv.CustomerID == customerID {
			invoices = append(invoices, inv)
			codes[inv.Code] = struct{}{}
		}
	}

	payments := make([]entities.Payment, 0)
	for _, p := range snap.Payments {
		if _, ok := codes[p.InvoiceCode]; ok {
			payments = append(payments, p)
		}
	}
	return invoices, payments
}

func summarize(c entities.Customer, invoices []entities.Invoice, payments []entities.Payment, now time.Time) entities.CustomerDebtSummary {
	if invoices == nil {
		invoices = []entities.Invoice{}
	}
	if payments == nil {
		payments = []entities.Payment{}
	}

	invoiced := decimal.Zero
	for _, inv := range invoices {
		invoiced = invoiced.Add(inv.TotalAmount)
	}
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.AmountPaid)
	}
	balance := invoiced.Sub(paid)

	return entities.CustomerDebtSummary{
		CustomerID:     c.NationalID,
		Name:           c.Name,
		Category:       c.Category,
		TotalInvoiced:  invoiced,
		TotalPaid:      paid,
		CurrentBalance: balance,
		State:          entities.ClassifyBalance(balance),
		InvoiceCount:   len(invoices),
		PaymentCount:   len(payments),
		ComputedAt:     now,
		Invoices:       invoices,
		Payments:       payments,
	}
}
