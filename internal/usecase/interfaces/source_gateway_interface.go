package interfaces

import (
	"context"

	"contabilidad_orquestador/internal/domain/entities"
)

// ISourceGateway abstracts the upstream collections (HTTP list endpoints or DynamoDB tables).
//
// Contract:
//   - List* never fail. Transport errors, non-success statuses, malformed payloads
//     and timeouts degrade to an empty collection and are logged by the implementation.
//   - Each List* call is independent and safe to run concurrently with the others.
//   - Probe returns the raw upstream view of one collection for diagnostics.
//   - Endpoints describes what is consumed, for health output.

type ISourceGateway interface {
	ListInvoices(ctx context.Context) []entities.Invoice
	ListPayments(ctx context.Context) []entities.Payment
	ListCustomers(ctx context.Context) []entities.Customer
	Probe(ctx context.Context, kind entities.SourceKind) entities.SourceProbe
	Endpoints() []string
}
