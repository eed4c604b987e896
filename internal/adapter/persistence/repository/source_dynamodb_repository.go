package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"contabilidad_orquestador/internal/config"
	"contabilidad_orquestador/internal/domain/entities"
	"contabilidad_orquestador/internal/metrics"
	"contabilidad_orquestador/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const probeItemLimit = 5

// Amounts are stored as decimal strings (S) to avoid float rounding.
type invoiceItem struct {
	Code        int64  `dynamodbav:"codigo"`
	CustomerID  int64  `dynamodbav:"clienteCi"`
	IssueDate   string `dynamodbav:"fecha"`
	TotalAmount string `dynamodbav:"montoTotal"`
	Paid        bool   `dynamodbav:"pagada"`
}

type paymentItem struct {
	Code        int64  `dynamodbav:"codigo"`
	InvoiceCode int64  `dynamodbav:"facturaCodigo"`
	PaymentDate string `dynamodbav:"fechaPago"`
	AmountPaid  string `dynamodbav:"montoPagado"`
}

type customerItem struct {
	NationalID string `dynamodbav:"ci"`
	Name       string `dynamodbav:"nombre"`
	Category   string `dynamodbav:"categoria"`
}

// SourceDynamoRepository reads the three collections from DynamoDB tables.
//
// Table requirements:
//   - facturas: PK codigo (number)
//   - pagos: PK codigo (number)
//   - clientes: PK ci (string)
//
// Access is read-only. Each table read is bounded by timeout; scan failures
// and deadlines degrade the collection to empty, same as the HTTP source.
type SourceDynamoRepository struct {
	ddb     dynamodb.ScanAPIClient
	tables  config.DynamoDBConfig
	timeout time.Duration
	log     *zap.Logger
}

var _ interfaces.ISourceGateway = (*SourceDynamoRepository)(nil)

// NewSourceDynamoRepository bounds every table read by timeout. A non-positive
// timeout leaves the caller's context as the only limit.
func NewSourceDynamoRepository(ddb dynamodb.ScanAPIClient, tables config.DynamoDBConfig, timeout time.Duration, log *zap.Logger) *SourceDynamoRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &SourceDynamoRepository{ddb: ddb, tables: tables, timeout: timeout, log: log.Named("source.dynamodb")}
}

func (r *SourceDynamoRepository) ListInvoices(ctx context.Context) []entities.Invoice {
	return scanSource(ctx, r, entities.SourceInvoices, fromInvoiceItem)
}

func (r *SourceDynamoRepository) ListPayments(ctx context.Context) []entities.Payment {
	return scanSource(ctx, r, entities.SourcePayments, fromPaymentItem)
}

func (r *SourceDynamoRepository) ListCustomers(ctx context.Context) []entities.Customer {
	return scanSource(ctx, r, entities.SourceCustomers, fromCustomerItem)
}

func (r *SourceDynamoRepository) Endpoints() []string {
	return []string{
		"dynamodb://" + r.tables.InvoicesTable,
		"dynamodb://" + r.tables.PaymentsTable,
		"dynamodb://" + r.tables.CustomersTable,
	}
}

// Probe scans the first items of the table and renders them as JSON.
func (r *SourceDynamoRepository) Probe(ctx context.Context, kind entities.SourceKind) entities.SourceProbe {
	table := r.tableFor(kind)
	probe := entities.SourceProbe{Source: kind, Endpoint: "dynamodb://" + table}

	items, err := r.scan(ctx, table, probeItemLimit)
	if err != nil {
		probe.Error = err.Error()
		return probe
	}

	var plain []map[string]any
	if err := attributevalue.UnmarshalListOfMaps(items, &plain); err != nil {
		probe.StatusCode = http.StatusOK
		probe.Error = fmt.Sprintf("decode items: %v", err)
		return probe
	}
	b, err := json.Marshal(plain)
	if err != nil {
		probe.StatusCode = http.StatusOK
		probe.Error = err.Error()
		return probe
	}
	probe.StatusCode = http.StatusOK
	probe.Content = string(b)
	return probe
}

func (r *SourceDynamoRepository) tableFor(kind entities.SourceKind) string {
	switch kind {
	case entities.SourceInvoices:
		return r.tables.InvoicesTable
	case entities.SourcePayments:
		return r.tables.PaymentsTable
	case entities.SourceCustomers:
		return r.tables.CustomersTable
	}
	return ""
}

func (r *SourceDynamoRepository) scan(ctx context.Context, table string, limit int32) ([]map[string]types.AttributeValue, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return scanAll(ctx, r.ddb, table, limit)
}

func scanSource[I any, T any](ctx context.Context, r *SourceDynamoRepository, kind entities.SourceKind, convert func(I) (T, error)) []T {
	table := r.tableFor(kind)
	start := time.Now()

	raw, err := r.scan(ctx, table, 0)
	if err != nil {
		metrics.ObserveSourceFetch(string(kind), metrics.OutcomeUnavailable, time.Since(start))
		r.log.Warn("source unavailable, using empty collection",
			zap.String("source", string(kind)),
			zap.String("table", table),
			zap.Error(err),
		)
		return make([]T, 0)
	}

	items := make([]T, 0, len(raw))
	skipped := 0
	for i, av := range raw {
		var it I
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			skipped++
			r.log.Warn("skipping malformed item", zap.String("source", string(kind)), zap.Int("index", i), zap.Error(err))
			continue
		}
		e, err := convert(it)
		if err != nil {
			skipped++
			r.log.Warn("skipping malformed item", zap.String("source", string(kind)), zap.Int("index", i), zap.Error(err))
			continue
		}
		items = append(items, e)
	}

	metrics.AddSkippedRecords(string(kind), skipped)
	metrics.ObserveSourceFetch(string(kind), metrics.OutcomeOK, time.Since(start))
	return items
}

func fromInvoiceItem(it invoiceItem) (entities.Invoice, error) {
	amount, err := parseAmount(it.TotalAmount)
	if err != nil {
		return entities.Invoice{}, fmt.Errorf("montoTotal: %w", err)
	}
	return entities.Invoice{
		Code:        it.Code,
		CustomerID:  it.CustomerID,
		IssueDate:   it.IssueDate,
		TotalAmount: amount,
		Paid:        it.Paid,
	}, nil
}

func fromPaymentItem(it paymentItem) (entities.Payment, error) {
	amount, err := parseAmount(it.AmountPaid)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("montoPagado: %w", err)
	}
	return entities.Payment{
		Code:        it.Code,
		InvoiceCode: it.InvoiceCode,
		PaymentDate: it.PaymentDate,
		AmountPaid:  amount,
	}, nil
}

func fromCustomerItem(it customerItem) (entities.Customer, error) {
	return entities.Customer{
		NationalID: it.NationalID,
		Name:       it.Name,
		Category:   it.Category,
	}, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
