package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"contabilidad_orquestador/internal/config"
	"contabilidad_orquestador/internal/domain/entities"
	"contabilidad_orquestador/internal/metrics"
	"contabilidad_orquestador/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const maxBodyBytes = 32 << 20

var ErrUnexpectedStatus = errors.New("unexpected upstream status")

// HTTPSourceGateway reads the three collections from the accounting REST
// services. Every failure degrades the affected collection to empty.
type HTTPSourceGateway struct {
	client  *http.Client
	sources config.SourcesConfig
	log     *zap.Logger
}

var _ interfaces.ISourceGateway = (*HTTPSourceGateway)(nil)

// NewHTTPSourceGateway uses client when given; otherwise a client with no
// overall timeout, since each call gets its own deadline from sources.Timeout.
func NewHTTPSourceGateway(sources config.SourcesConfig, client *http.Client, log *zap.Logger) *HTTPSourceGateway {
	if client == nil {
		client = &http.Client{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTPSourceGateway{client: client, sources: sources, log: log.Named("source.http")}
}

func (g *HTTPSourceGateway) ListInvoices(ctx context.Context) []entities.Invoice {
	return list(ctx, g, entities.SourceInvoices, decodeInvoice)
}

func (g *HTTPSourceGateway) ListPayments(ctx context.Context) []entities.Payment {
	return list(ctx, g, entities.SourcePayments, decodePayment)
}

func (g *HTTPSourceGateway) ListCustomers(ctx context.Context) []entities.Customer {
	return list(ctx, g, entities.SourceCustomers, decodeCustomer)
}

func (g *HTTPSourceGateway) Endpoints() []string {
	return []string{g.sources.InvoicesURL(), g.sources.PaymentsURL(), g.sources.CustomersURL()}
}

// Probe returns the upstream status and body as received, without decoding.
func (g *HTTPSourceGateway) Probe(ctx context.Context, kind entities.SourceKind) entities.SourceProbe {
	url := g.urlFor(kind)
	probe := entities.SourceProbe{Source: kind, Endpoint: url}

	status, body, err := g.get(ctx, url)
	probe.StatusCode = status
	probe.Content = string(body)
	if err != nil {
		probe.Error = err.Error()
	}
	return probe
}

func (g *HTTPSourceGateway) urlFor(kind entities.SourceKind) string {
	switch kind {
	case entities.SourceInvoices:
		return g.sources.InvoicesURL()
	case entities.SourcePayments:
		return g.sources.PaymentsURL()
	case entities.SourceCustomers:
		return g.sources.CustomersURL()
	}
	return ""
}

// get performs one GET bounded by the configured per-call timeout. The body is
// returned even on a non-2xx status so Probe can show it.
func (g *HTTPSourceGateway) get(ctx context.Context, url string) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, g.sources.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, body, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return resp.StatusCode, body, nil
}

func list[T any](ctx context.Context, g *HTTPSourceGateway, kind entities.SourceKind, decode func(json.RawMessage) (T, error)) []T {
	url := g.urlFor(kind)
	start := time.Now()
	items := make([]T, 0)

	_, body, err := g.get(ctx, url)
	if err == nil {
		var raws []json.RawMessage
		if err = json.Unmarshal(body, &raws); err != nil {
			err = fmt.Errorf("decode collection: %w", err)
		} else {
			skipped := 0
			for i, raw := range raws {
				item, derr := decode(raw)
				if derr != nil {
					skipped++
					g.log.Warn("skipping malformed record",
						zap.String("source", string(kind)),
						zap.Int("index", i),
						zap.Error(derr),
					)
					continue
				}
				items = append(items, item)
			}
			metrics.AddSkippedRecords(string(kind), skipped)
		}
	}

	if err != nil {
		metrics.ObserveSourceFetch(string(kind), metrics.OutcomeUnavailable, time.Since(start))
		g.log.Warn("source unavailable, using empty collection",
			zap.String("source", string(kind)),
			zap.String("url", url),
			zap.Error(err),
		)
		return make([]T, 0)
	}

	metrics.ObserveSourceFetch(string(kind), metrics.OutcomeOK, time.Since(start))
	g.log.Debug("source fetched",
		zap.String("source", string(kind)),
		zap.Int("records", len(items)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return items
}
