package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"contabilidad_orquestador/internal/domain/entities"
	mock_interfaces "contabilidad_orquestador/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expectSnapshot(gw *mock_interfaces.MockISourceGateway, invoices []entities.Invoice, payments []entities.Payment, customers []entities.Customer) {
	gw.EXPECT().ListInvoices(gomock.Any()).Return(invoices)
	gw.EXPECT().ListPayments(gomock.Any()).Return(payments)
	gw.EXPECT().ListCustomers(gomock.Any()).Return(customers)
}

func TestDebtUseCase_GetCustomerDebt(t *testing.T) {
	t.Run("invalid customer id does not call upstreams", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockISourceGateway(ctrl)
		uc := NewDebtUseCase(gw, nil, 5)

		_, err := uc.GetCustomerDebt(context.Background(), "abc")
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockISourceGateway(ctrl)
		uc := NewDebtUseCase(gw, nil, 5)

		expectSnapshot(gw, nil, nil, []entities.Customer{{NationalID: "10", Name: "Ana"}})

		_, err := uc.GetCustomerDebt(context.Background(), "999")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("customer in observation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockISourceGateway(ctrl)
		uc := NewDebtUseCase(gw, nil, 5)
		fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		expectSnapshot(gw,
			[]entities.Invoice{
				{Code: 1, CustomerID: 10, TotalAmount: dec("1500")},
				{Code: 2, CustomerID: 20, TotalAmount: dec("300")},
			},
			[]entities.Payment{
				{Code: 1, InvoiceCode: 1, AmountPaid: dec("600")},
				{Code: 2, InvoiceCode: 2, AmountPaid: dec("300")},
			},
			[]entities.Customer{{NationalID: "10", Name: "Ana", Category: "VIP"}, {NationalID: "20", Name: "Luis"}},
		)

		res, err := uc.GetCustomerDebt(context.Background(), " 10 ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.CustomerID != "10" || res.Name != "Ana" || res.Category != "VIP" {
			t.Fatalf("unexpected identity: %+v", res)
		}
		if !res.TotalInvoiced.Equal(dec("1500")) || !res.TotalPaid.Equal(dec("600")) || !res.CurrentBalance.Equal(dec("900")) {
			t.Fatalf("unexpected totals: %s %s %s", res.TotalInvoiced, res.TotalPaid, res.CurrentBalance)
		}
		if res.State != entities.DebtStateWatch {
			t.Fatalf("expected watch state, got %s", res.State)
		}
		if res.InvoiceCount != 1 || res.PaymentCount != 1 || len(res.Invoices) != 1 || len(res.Payments) != 1 {
			t.Fatalf("unexpected counts: %+v", res)
		}
		if !res.ComputedAt.Equal(fixed) {
			t.Fatalf("unexpected computed at: %v", res.ComputedAt)
		}
	})

	t.Run("all upstreams down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockISourceGateway(ctrl)
		uc := NewDebtUseCase(gw, nil, 5)

		expectSnapshot(gw, []entities.Invoice{}, []entities.Payment{}, []entities.Customer{})

		_, err := uc.GetCustomerDebt(context.Background(), "10")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("payments upstream down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockISourceGateway(ctrl)
		uc := NewDebtUseCase(gw, nil, 5)

		expectSnapshot(gw,
			[]entities.Invoice{{Code: 1, CustomerID: 10, TotalAmount: dec("1500")}},
			[]entities.Payment{},
			[]entities.Customer{{NationalID: "10", Name: "Ana"}},
		)

		res, err := uc.GetCustomerDebt(context.Background(), "10")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !res.CurrentBalance.Equal(dec("1500")) || res.State != entities.DebtStateDelinquent {
			t.Fatalf("unexpected result: %s %s", res.CurrentBalance, res.State)
		}
		if res.Payments == nil || len(res.Payments) != 0 {
			t.Fatalf("expected empty non-nil payments, got %#v", res.Payments)
		}
	})
}

func TestDebtUseCase_GetDelinquencyReport(t *testing.T) {
	t.Run("invalid top", func(t *testing.T) {
		uc := NewDebtUseCase(nil, nil, 5)
		for _, n := range []int{-1, MaxTopDelinquents + 1} {
			if _, err := uc.GetDelinquencyReport(context.Background(), n); !errors.Is(err, ErrInvalidTopN) {
				t.Fatalf("top %d: expected ErrInvalidTopN, got %v", n, err)
			}
		}
	})

	t.Run("default top and skipped customers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockISourceGateway(ctrl)
		uc := NewDebtUseCase(gw, nil, 2)

		expectSnapshot(gw,
			[]entities.Invoice{
				{Code: 1, CustomerID: 1, TotalAmount: dec("5000")},
				{Code: 2, CustomerID: 2, TotalAmount: dec("3000")},
				{Code: 3, CustomerID: 3, TotalAmount: dec("2000")},
				{Code: 4, CustomerID: 4, TotalAmount: dec("100")},
			},
			[]entities.Payment{{Code: 1, InvoiceCode: 4, AmountPaid: dec("100")}},
			[]entities.Customer{
				{NationalID: "1"}, {NationalID: "2"}, {NationalID: "3"}, {NationalID: "4"}, {NationalID: "X-9"},
			},
		)

		report, err := uc.GetDelinquencyReport(context.Background(), 0)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if report.ID == "" {
			t.Fatalf("expected report id")
		}
		if report.TotalCustomers != 5 || report.SkippedCustomers != 1 || len(report.Detail) != 4 {
			t.Fatalf("unexpected totals: %+v", report)
		}
		if report.StateCounts.Delinquent != 3 || report.StateCounts.Current != 1 {
			t.Fatalf("unexpected state counts: %+v", report.StateCounts)
		}
		if len(report.TopDelinquents) != 2 || report.TopDelinquents[0].CustomerID != "1" || report.TopDelinquents[1].CustomerID != "2" {
			t.Fatalf("unexpected top delinquents: %+v", report.TopDelinquents)
		}
		if !report.GrandTotalBalance.Equal(dec("10000")) {
			t.Fatalf("unexpected grand total: %s", report.GrandTotalBalance)
		}
	})

	t.Run("payments upstream down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockISourceGateway(ctrl)
		uc := NewDebtUseCase(gw, nil, 5)

		invoices := []entities.Invoice{
			{Code: 1, CustomerID: 1, TotalAmount: dec("1200.50")},
			{Code: 2, CustomerID: 1, TotalAmount: dec("300")},
			{Code: 3, CustomerID: 2, TotalAmount: dec("750")},
			{Code: 4, CustomerID: 3, TotalAmount: dec("0")},
		}
		expectSnapshot(gw, invoices, []entities.Payment{},
			[]entities.Customer{{NationalID: "1"}, {NationalID: "2"}, {NationalID: "3"}},
		)

		report, err := uc.GetDelinquencyReport(context.Background(), 0)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(report.Detail) != 3 {
			t.Fatalf("expected every customer in detail, got %+v", report.Detail)
		}
		for _, row := range report.Detail {
			if !row.TotalPaid.IsZero() || row.PaymentCount != 0 {
				t.Fatalf("customer %s: expected nothing paid, got %s", row.CustomerID, row.TotalPaid)
			}
		}

		invoiced := decimal.Zero
		for _, inv := range invoices {
			invoiced = invoiced.Add(inv.TotalAmount)
		}
		if !report.GrandTotalBalance.Equal(invoiced) {
			t.Fatalf("expected grand total %s, got %s", invoiced, report.GrandTotalBalance)
		}
		if report.StateCounts.Delinquent != 1 || report.StateCounts.Watch != 1 || report.StateCounts.Current != 1 {
			t.Fatalf("unexpected state counts: %+v", report.StateCounts)
		}
	})
}

func TestDebtUseCase_SampleAndDiagnose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockISourceGateway(ctrl)
	uc := NewDebtUseCase(gw, nil, 5)

	customers := make([]entities.Customer, 7)
	for i := range customers {
		customers[i] = entities.Customer{NationalID: string(rune('1' + i))}
	}
	expectSnapshot(gw, []entities.Invoice{{Code: 1}}, nil, customers)

	sample := uc.SampleSources(context.Background())
	if sample.TotalCustomers != 7 || len(sample.Customers) != 5 || sample.TotalInvoices != 1 || sample.TotalPayments != 0 {
		t.Fatalf("unexpected sample: %+v", sample)
	}

	gw.EXPECT().Probe(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, kind entities.SourceKind) entities.SourceProbe {
			return entities.SourceProbe{Source: kind, StatusCode: 200}
		},
	).Times(len(entities.SourceKinds))

	probes := uc.DiagnoseSources(context.Background())
	if len(probes) != len(entities.SourceKinds) {
		t.Fatalf("expected %d probes, got %d", len(entities.SourceKinds), len(probes))
	}
	for i, p := range probes {
		if p.Source != entities.SourceKinds[i] {
			t.Fatalf("probe %d out of order: %s", i, p.Source)
		}
	}
}

// sleepyGateway answers every list call after a fixed delay.
type sleepyGateway struct {
	delay time.Duration
	mu    sync.Mutex
	calls int
}

func (g *sleepyGateway) wait() {
	time.Sleep(g.delay)
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
}

func (g *sleepyGateway) ListInvoices(context.Context) []entities.Invoice {
	g.wait()
	return []entities.Invoice{{Code: 1, CustomerID: 10, TotalAmount: dec("10")}}
}

func (g *sleepyGateway) ListPayments(context.Context) []entities.Payment {
	g.wait()
	return []entities.Payment{}
}

func (g *sleepyGateway) ListCustomers(context.Context) []entities.Customer {
	g.wait()
	return []entities.Customer{{NationalID: "10"}}
}

func (g *sleepyGateway) Probe(_ context.Context, kind entities.SourceKind) entities.SourceProbe {
	return entities.SourceProbe{Source: kind}
}

func (g *sleepyGateway) Endpoints() []string { return nil }

func TestDebtUseCase_FetchesSourcesConcurrently(t *testing.T) {
	gw := &sleepyGateway{delay: 200 * time.Millisecond}
	uc := NewDebtUseCase(gw, nil, 5)

	start := time.Now()
	res, err := uc.GetCustomerDebt(context.Background(), "10")
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gw.calls != 3 {
		t.Fatalf("expected 3 upstream calls, got %d", gw.calls)
	}
	if elapsed >= 500*time.Millisecond {
		t.Fatalf("fetch took %v, expected concurrent calls", elapsed)
	}
	if !res.CurrentBalance.Equal(dec("10")) {
		t.Fatalf("unexpected balance: %s", res.CurrentBalance)
	}
}

func TestGuardAggregation(t *testing.T) {
	err := guardAggregation("test", func() {
		var m map[string]int
		m["x"]++
	})
	if !errors.Is(err, ErrAggregationFault) {
		t.Fatalf("expected ErrAggregationFault, got %v", err)
	}
	if err := guardAggregation("test", func() {}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
