package bootstrap

import (
	"stayfront/internal/pkg/config"
	"stayfront/internal/pkg/metrics"
	"stayfront/internal/upstream"

	"go.uber.org/fx"
)

var UpstreamModule = fx.Module("upstream",
	fx.Provide(
		metrics.NewDefault,
		fx.Annotate(
			NewUpstreamClient,
			fx.As(new(upstream.Client)),
		),
	),
)

func NewUpstreamClient(cfg config.Config, m *metrics.Metrics) *upstream.HTTPClient {
	return upstream.NewHTTPClient(cfg.Upstream, m)
}
