package commands

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"stayfront/internal/domain/booking"
	"stayfront/internal/pkg/clock"
	"stayfront/internal/pkg/errs"
	"stayfront/internal/pkg/metrics"
	"stayfront/internal/upstream"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

type SubmitBookingParams struct {
	Form        *booking.Form
	PropertyID  string
	NightlyRate float64
}

type SubmitResult struct {
	Reference   uuid.UUID
	TotalPrice  float64
	Currency    string
	SubmittedAt time.Time
}

type BookingCommands interface {
	Submit(ctx context.Context, params SubmitBookingParams) (*SubmitResult, error)
}

type bookingCommandsImpl struct {
	client  upstream.Client
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewBookingCommands(client upstream.Client, clk clock.Clock, m *metrics.Metrics) BookingCommands {
	return &bookingCommandsImpl{client: client, clock: clk, metrics: m}
}

// Submit projects the form into a booking request and posts it upstream.
// The total is derived from the nightly rate at this point, never taken from
// the caller, and every attempt carries a fresh idempotency key.
func (c *bookingCommandsImpl) Submit(ctx context.Context, params SubmitBookingParams) (*SubmitResult, error) {
	quote, err := booking.NewQuote(params.NightlyRate)
	if err != nil {
		c.metrics.BookingsTotal.WithLabelValues("invalid").Inc()
		return nil, errs.Mark(err, errs.ErrFormIncomplete)
	}

	req, err := booking.NewRequest(params.Form, params.PropertyID, quote)
	if err != nil {
		c.metrics.BookingsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	reference := uuid.New()
	if err := c.client.CreateBooking(ctx, req, reference); err != nil {
		c.metrics.BookingsTotal.WithLabelValues(resultLabel(err)).Inc()
		return nil, err
	}

	c.metrics.BookingsTotal.WithLabelValues("confirmed").Inc()
	return &SubmitResult{
		Reference:   reference,
		TotalPrice:  quote.Total(),
		Currency:    quote.Currency(),
		SubmittedAt: c.clock.Now(),
	}, nil
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, errs.ErrBookingRejected):
		return "rejected"
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
