// Package upstream is the typed client for the external rentals API, the
// only collaborator this service talks to.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"stayfront/internal/domain/booking"
	"stayfront/internal/domain/property"
	"stayfront/internal/pkg/config"
	"stayfront/internal/pkg/errs"
	"stayfront/internal/pkg/metrics"
)

//go:generate mockgen -source=client.go -destination=../../tests/mock/upstream/client.go -package=upstreammock

type Client interface {
	GetProperty(ctx context.Context, id string) (*property.Property, error)
	CreateBooking(ctx context.Context, req *booking.Request, idempotencyKey uuid.UUID) error
}

// RejectedError carries the upstream's own rejection text, shown to the
// guest verbatim.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("booking rejected: %s", e.Message)
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

func NewHTTPClient(cfg config.UpstreamConfig, m *metrics.Metrics) *HTTPClient {
	return &HTTPClient{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		metrics:    m,
	}
}

func (c *HTTPClient) GetProperty(ctx context.Context, id string) (*property.Property, error) {
	endpoint := c.baseURL + "/api/properties/" + url.PathEscape(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.Wrap(err, "build property request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req, "get_property")
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "get property"), errs.ErrUpstreamUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.Mark(errs.Newf("property %s", id), errs.ErrPropertyNotFound)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		c.metrics.UpstreamErrors.Inc()
		return nil, errs.Mark(errs.Newf("get property: upstream returned %d", resp.StatusCode), errs.ErrUpstreamUnavailable)
	}

	var prop property.Property
	if err := json.NewDecoder(resp.Body).Decode(&prop); err != nil {
		c.metrics.UpstreamErrors.Inc()
		return nil, errs.Mark(errs.Wrap(err, "decode property"), errs.ErrUpstreamUnavailable)
	}
	prop.ID = id
	return &prop, nil
}

func (c *HTTPClient) CreateBooking(ctx context.Context, bookingReq *booking.Request, idempotencyKey uuid.UUID) error {
	body, err := json.Marshal(bookingReq)
	if err != nil {
		return errs.Wrap(err, "encode booking request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/bookings", bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "build booking request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", idempotencyKey.String())

	resp, err := c.do(req, "create_booking")
	if err != nil {
		return errs.Mark(errs.Wrap(err, "create booking"), errs.ErrUpstreamUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		// Success body is ignored
		return nil
	}

	c.metrics.UpstreamErrors.Inc()
	if msg := decodeRejectionMessage(resp.Body); msg != "" {
		return errs.Mark(&RejectedError{Message: msg}, errs.ErrBookingRejected)
	}
	return errs.Mark(errs.Newf("create booking: upstream returned %d", resp.StatusCode), errs.ErrBookingRejected)
}

func (c *HTTPClient) do(req *http.Request, endpoint string) (*http.Response, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.UpstreamErrors.Inc()
		return nil, err
	}
	return resp, nil
}

func decodeRejectionMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 64*1024)).Decode(&body); err != nil {
		return ""
	}
	return body.Message
}
