package usecase

import (
	"slices"
	"strings"
	"time"

	"contabilidad_orquestador/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultTopDelinquents = 5
	MaxTopDelinquents     = 50
)

// findCustomer returns the first fetched customer whose CI matches.
func findCustomer(customers []entities.Customer, ci string) (entities.Customer, error) {
	ci = strings.TrimSpace(ci)
	for _, c := range customers {
		if strings.TrimSpace(c.NationalID) == ci {
			return c, nil
		}
	}
	return entities.Customer{}, ErrCustomerNotFound
}

// BuildCustomerResult assembles the single-customer summary from its matched records.
func BuildCustomerResult(customer entities.Customer, invoices []entities.Invoice, payments []entities.Payment, now time.Time) entities.CustomerDebtSummary {
	return summarize(customer, invoices, payments, now)
}

// BuildDelinquencyReport computes fleet totals, state counts and the top-N
// delinquent customers. Ties in balance keep fetch order.
func BuildDelinquencyReport(totalCustomers, skipped int, summaries []entities.CustomerDebtSummary, topN int, now time.Time) entities.DelinquencyReport {
	report := entities.DelinquencyReport{
		ID:                uuid.NewString(),
		GeneratedAt:       now,
		TotalCustomers:    totalCustomers,
		SkippedCustomers:  skipped,
		GrandTotalBalance: decimal.Zero,
		Detail:            summaries,
	}

	delinquents := make([]entities.CustomerDebtSummary, 0)
	for _, s := range summaries {
		report.GrandTotalBalance = report.GrandTotalBalance.Add(s.CurrentBalance)
		switch s.State {
		case entities.DebtStateCurrent:
			report.StateCounts.Current++
		case entities.DebtStateWatch:
			report.StateCounts.Watch++
		case entities.DebtStateDelinquent:
			report.StateCounts.Delinquent++
			delinquents = append(delinquents, s)
		}
	}

	slices.SortStableFunc(delinquents, func(a, b entities.CustomerDebtSummary) int {
		return b.CurrentBalance.Cmp(a.CurrentBalance)
	})
	if len(delinquents) > topN {
		delinquents = delinquents[:topN]
	}
	report.TopDelinquents = delinquents

	return report
}
