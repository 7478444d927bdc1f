package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/karlseguin/ccache/v3"

	"stayfront/internal/pkg/config"
	"stayfront/internal/pkg/metrics"
	"stayfront/internal/upstream"
)

//go:generate mockgen -source=property.go -destination=../../../tests/mock/queries/property.go -package=queriesmock

// Read model for the property detail page
type PropertyView struct {
	ID            string                     `json:"id"`
	Name          string                     `json:"name"`
	Description   string                     `json:"description"`
	PricePerNight float64                    `json:"price"`
	Extra         map[string]json.RawMessage `json:"-"`
}

type PropertyQueries interface {
	GetProperty(ctx context.Context, id string) (*PropertyView, error)
}

type propertyQueriesImpl struct {
	client  upstream.Client
	cache   *ccache.Cache[*PropertyView]
	ttl     time.Duration
	metrics *metrics.Metrics
}

func NewPropertyQueries(client upstream.Client, cfg config.CacheConfig, m *metrics.Metrics) PropertyQueries {
	return &propertyQueriesImpl{
		client:  client,
		cache:   ccache.New(ccache.Configure[*PropertyView]().MaxSize(cfg.MaxEntries)),
		ttl:     cfg.PropertyTTL,
		metrics: m,
	}
}

// GetProperty reads through a short-lived local cache so that the page
// render and the booking submit that follows it do not hit the upstream
// twice. Only successful reads are cached; not-found and failures always go
// back to the upstream.
func (q *propertyQueriesImpl) GetProperty(ctx context.Context, id string) (*PropertyView, error) {
	if item := q.cache.Get(id); item != nil && !item.Expired() {
		q.metrics.CacheHits.Inc()
		return item.Value(), nil
	}
	q.metrics.CacheMisses.Inc()

	prop, err := q.client.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &PropertyView{
		ID:            prop.ID,
		Name:          prop.Name,
		Description:   prop.Description,
		PricePerNight: prop.PricePerNight,
		Extra:         prop.Extra,
	}
	q.cache.Set(id, view, q.ttl)
	return view, nil
}
