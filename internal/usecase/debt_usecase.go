package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"contabilidad_orquestador/internal/domain/entities"
	"contabilidad_orquestador/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInvalidTopN       = errors.New("invalid top delinquents count")
	ErrAggregationFault  = errors.New("aggregation fault")
)

const sampleSize = 5

// IDebtUseCase exposes the customer debt operations.
//
//   - GetCustomerDebt => debt of one customer by CI
//   - GetDelinquencyReport => fleet-wide delinquency report
//   - List* => raw upstream collections (empty on upstream failure, never an error)
//   - SampleSources / DiagnoseSources => troubleshooting views of the upstreams

type IDebtUseCase interface {
	GetCustomerDebt(ctx context.Context, customerID string) (entities.CustomerDebtSummary, error)
	GetDelinquencyReport(ctx context.Context, topN int) (entities.DelinquencyReport, error)
	ListInvoices(ctx context.Context) []entities.Invoice
	ListPayments(ctx context.Context) []entities.Payment
	ListCustomers(ctx context.Context) []entities.Customer
	SampleSources(ctx context.Context) entities.SourceSample
	DiagnoseSources(ctx context.Context) []entities.SourceProbe
	Endpoints() []string
}

type DebtUseCase struct {
	gateway    interfaces.ISourceGateway
	log        *zap.Logger
	defaultTop int
	now        func() time.Time
}

var _ IDebtUseCase = (*DebtUseCase)(nil)

func NewDebtUseCase(gateway interfaces.ISourceGateway, log *zap.Logger, defaultTop int) *DebtUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if defaultTop < 1 || defaultTop > MaxTopDelinquents {
		defaultTop = DefaultTopDelinquents
	}
	return &DebtUseCase{
		gateway:    gateway,
		log:        log.Named("usecase.debt"),
		defaultTop: defaultTop,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *DebtUseCase) GetCustomerDebt(ctx context.Context, customerID string) (entities.CustomerDebtSummary, error) {
	customerID = strings.TrimSpace(customerID)
	numericID, ok := parseCustomerID(customerID)
	if !ok {
		u.log.Info("rejecting non-numeric customer id", zap.String("customer_id", customerID))
		return entities.CustomerDebtSummary{}, ErrInvalidCustomerID
	}

	snap := fetchAll(ctx, u.gateway)

	customer, err := findCustomer(snap.Customers, customerID)
	if err != nil {
		u.log.Info("customer not found", zap.String("customer_id", customerID), zap.Int("customers", len(snap.Customers)))
		return entities.CustomerDebtSummary{}, err
	}

	var summary entities.CustomerDebtSummary
	err = guardAggregation("customer debt", func() {
		invoices, payments := AggregateOne(numericID, snap)
		summary = BuildCustomerResult(customer, invoices, payments, u.now())
	})
	if err != nil {
		u.log.Error("customer debt aggregation failed", zap.String("customer_id", customerID), zap.Error(err))
		return entities.CustomerDebtSummary{}, err
	}

	u.log.Info("customer debt computed",
		zap.String("customer_id", customerID),
		zap.String("balance", summary.CurrentBalance.String()),
		zap.String("state", string(summary.State)),
		zap.Int("invoices", summary.InvoiceCount),
		zap.Int("payments", summary.PaymentCount),
	)
	return summary, nil
}

func (u *DebtUseCase) GetDelinquencyReport(ctx context.Context, topN int) (entities.DelinquencyReport, error) {
	if topN == 0 {
		topN = u.defaultTop
	}
	if topN < 1 || topN > MaxTopDelinquents {
		return entities.DelinquencyReport{}, ErrInvalidTopN
	}

	snap := fetchAll(ctx, u.gateway)

	var report entities.DelinquencyReport
	err := guardAggregation("delinquency report", func() {
		now := u.now()
		summaries, skipped := Aggregate(snap, now)
		report = BuildDelinquencyReport(len(snap.Customers), skipped, summaries, topN, now)
	})
	if err != nil {
		u.log.Error("delinquency report aggregation failed", zap.Error(err))
		return entities.DelinquencyReport{}, err
	}

	u.log.Info("delinquency report generated",
		zap.String("report_id", report.ID),
		zap.Int("customers", report.TotalCustomers),
		zap.Int("skipped", report.SkippedCustomers),
		zap.Int("delinquent", report.StateCounts.Delinquent),
		zap.String("grand_total", report.GrandTotalBalance.String()),
	)
	return report, nil
}

func (u *DebtUseCase) ListInvoices(ctx context.Context) []entities.Invoice {
	return u.gateway.ListInvoices(ctx)
}

func (u *DebtUseCase) ListPayments(ctx context.Context) []entities.Payment {
	return u.gateway.ListPayments(ctx)
}

func (u *DebtUseCase) ListCustomers(ctx context.Context) []entities.Customer {
	return u.gateway.ListCustomers(ctx)
}

func (u *DebtUseCase) SampleSources(ctx context.Context) entities.SourceSample {
	snap := fetchAll(ctx, u.gateway)
	return entities.SourceSample{
		TotalCustomers: len(snap.Customers),
		TotalInvoices:  len(snap.Invoices),
		TotalPayments:  len(snap.Payments),
		Customers:      head(snap.Customers, sampleSize),
		Invoices:       head(snap.Invoices, sampleSize),
		Payments:       head(snap.Payments, sampleSize),
	}
}

func (u *DebtUseCase) DiagnoseSources(ctx context.Context) []entities.SourceProbe {
	probes := make([]entities.SourceProbe, len(entities.SourceKinds))

	var g errgroup.Group
	for i, kind := range entities.SourceKinds {
		i, kind := i, kind
		g.Go(func() error {
			probes[i] = u.gateway.Probe(ctx, kind)
			return nil
		})
	}
	_ = g.Wait()
	return probes
}

func (u *DebtUseCase) Endpoints() []string {
	return u.gateway.Endpoints()
}

// guardAggregation turns a panic inside the join/report code into ErrAggregationFault.
func guardAggregation(op string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrAggregationFault, op, r)
		}
	}()
	fn()
	return nil
}

func head[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
