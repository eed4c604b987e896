package usecase

import (
	"errors"
	"testing"
	"time"

	"contabilidad_orquestador/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func summaryWithBalance(ci, balance string) entities.CustomerDebtSummary {
	b := decimal.RequireFromString(balance)
	return entities.CustomerDebtSummary{CustomerID: ci, CurrentBalance: b, State: entities.ClassifyBalance(b)}
}

func TestBuildDelinquencyReport(t *testing.T) {
	t.Run("stable ties and truncation", func(t *testing.T) {
		summaries := []entities.CustomerDebtSummary{
			summaryWithBalance("1", "2000"),
			summaryWithBalance("2", "5000"),
			summaryWithBalance("3", "2000"),
			summaryWithBalance("4", "1000"),
			summaryWithBalance("5", "0"),
			summaryWithBalance("6", "2000"),
		}
		now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		report := BuildDelinquencyReport(7, 1, summaries, 3, now)

		if _, err := uuid.Parse(report.ID); err != nil {
			t.Fatalf("expected uuid report id, got %q: %v", report.ID, err)
		}
		if !report.GeneratedAt.Equal(now) || report.TotalCustomers != 7 || report.SkippedCustomers != 1 {
			t.Fatalf("unexpected header: %+v", report)
		}
		if report.StateCounts != (entities.StateCounts{Current: 1, Watch: 1, Delinquent: 4}) {
			t.Fatalf("unexpected state counts: %+v", report.StateCounts)
		}
		if !report.GrandTotalBalance.Equal(dec("12000")) {
			t.Fatalf("unexpected grand total: %s", report.GrandTotalBalance)
		}
		if len(report.Detail) != 6 || report.Detail[0].CustomerID != "1" {
			t.Fatalf("detail must keep fetch order: %+v", report.Detail)
		}

		var top []string
		for _, s := range report.TopDelinquents {
			top = append(top, s.CustomerID)
		}
		if len(top) != 3 || top[0] != "2" || top[1] != "1" || top[2] != "3" {
			t.Fatalf("unexpected top delinquents: %v", top)
		}
	})

	t.Run("negative balances reduce grand total", func(t *testing.T) {
		summaries := []entities.CustomerDebtSummary{
			summaryWithBalance("1", "-500"),
			summaryWithBalance("2", "200"),
		}

		report := BuildDelinquencyReport(2, 0, summaries, 5, time.Now())

		if !report.GrandTotalBalance.Equal(dec("-300")) {
			t.Fatalf("unexpected grand total: %s", report.GrandTotalBalance)
		}
		if report.StateCounts.Current != 1 || report.StateCounts.Watch != 1 {
			t.Fatalf("unexpected state counts: %+v", report.StateCounts)
		}
		if report.TopDelinquents == nil || len(report.TopDelinquents) != 0 {
			t.Fatalf("expected empty non-nil top, got %#v", report.TopDelinquents)
		}
	})

	t.Run("empty", func(t *testing.T) {
		report := BuildDelinquencyReport(0, 0, []entities.CustomerDebtSummary{}, 5, time.Now())

		if !report.GrandTotalBalance.IsZero() || report.StateCounts != (entities.StateCounts{}) {
			t.Fatalf("unexpected totals: %+v", report)
		}
		if len(report.TopDelinquents) != 0 || len(report.Detail) != 0 {
			t.Fatalf("expected no rows, got %+v", report)
		}
	})
}

func TestFindCustomer(t *testing.T) {
	customers := []entities.Customer{{NationalID: " 10", Name: "first"}, {NationalID: "10", Name: "second"}}

	c, err := findCustomer(customers, "10")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Name != "first" {
		t.Fatalf("expected first match, got %q", c.Name)
	}

	if _, err := findCustomer(customers, "11"); !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}
