package usecase

import (
	"context"
	"time"

	"contabilidad_orquestador/internal/domain/entities"
	"contabilidad_orquestador/internal/metrics"
	"contabilidad_orquestador/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

// Snapshot is one read of the three upstream collections, taken at roughly the same time.
type Snapshot struct {
	Invoices  []entities.Invoice
	Payments  []entities.Payment
	Customers []entities.Customer
}

// fetchAll issues the three gateway calls concurrently and returns only after all
// of them finished. Gateway calls never fail; the group is only a join barrier.
func fetchAll(ctx context.Context, gateway interfaces.ISourceGateway) Snapshot {
	start := time.Now()
	var snap Snapshot

	var g errgroup.Group
	g.Go(func() error {
		snap.Invoices = gateway.ListInvoices(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Payments = gateway.ListPayments(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Customers = gateway.ListCustomers(ctx)
		return nil
	})
	_ = g.Wait()

	metrics.ObserveFetchAll(time.Since(start))
	return snap
}
