//go:build unit

package upstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayfront/internal/domain/booking"
	"stayfront/internal/pkg/config"
	"stayfront/internal/pkg/errs"
	"stayfront/internal/pkg/metrics"
	"stayfront/internal/upstream"
	"stayfront/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, baseURL string) *upstream.HTTPClient {
	t.Helper()
	return upstream.NewHTTPClient(
		config.UpstreamConfig{BaseURL: baseURL, Timeout: 2 * time.Second},
		metrics.New(prometheus.NewRegistry()),
	)
}

func TestGetProperty(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes the property and keeps unknown fields", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/properties/prop-42", r.URL.Path)
			assert.Equal(t, http.MethodGet, r.Method)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"name":"Villa Azul","description":"Sea view","price":120,"rating":4.8}`))
		}))
		defer srv.Close()

		prop, err := newClient(t, srv.URL).GetProperty(ctx, "prop-42")
		require.NoError(t, err)

		assert.Equal(t, "prop-42", prop.ID)
		assert.Equal(t, "Villa Azul", prop.Name)
		assert.Equal(t, "Sea view", prop.Description)
		assert.Equal(t, float64(120), prop.PricePerNight)
		assert.Contains(t, prop.Extra, "rating")
	})

	t.Run("404 maps to not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := newClient(t, srv.URL).GetProperty(ctx, "missing")
		assert.ErrorIs(t, err, errs.ErrPropertyNotFound)
	})

	t.Run("server errors map to unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newClient(t, srv.URL).GetProperty(ctx, "prop-42")
		assert.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
		assert.NotErrorIs(t, err, errs.ErrPropertyNotFound)
	})

	t.Run("connection errors map to unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		srv.Close() // nothing listening anymore

		_, err := newClient(t, srv.URL).GetProperty(ctx, "prop-42")
		assert.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
	})

	t.Run("malformed body maps to unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"name":`))
		}))
		defer srv.Close()

		_, err := newClient(t, srv.URL).GetProperty(ctx, "prop-42")
		assert.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
	})
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	quote, err := booking.NewQuote(100)
	require.NoError(t, err)

	newRequest := func(t *testing.T) *booking.Request {
		t.Helper()
		req, err := booking.NewRequest(builder.NewBookingBuilder().BuildForm(), "prop-42", quote)
		require.NoError(t, err)
		return req
	}

	t.Run("posts the full payload with an idempotency key", func(t *testing.T) {
		var got map[string]any
		var gotKey string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/bookings", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			gotKey = r.Header.Get("Idempotency-Key")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		key := uuid.New()
		require.NoError(t, newClient(t, srv.URL).CreateBooking(ctx, newRequest(t), key))

		assert.Equal(t, key.String(), gotKey)

		want := map[string]any{
			"firstName":      "Ada",
			"lastName":       "Lovelace",
			"email":          "ada@example.com",
			"phoneNumber":    "+1 555 0100",
			"checkIn":        "2026-09-10",
			"checkOut":       "2026-09-17",
			"guests":         float64(2),
			"cardNumber":     "4242 4242 4242 4242",
			"expirationDate": "12/27",
			"cvv":            "123",
			"billingAddress": "1 Analytical Engine Way",
			"propertyId":     "prop-42",
			"totalPrice":     float64(700),
			"currency":       "USD",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("payload mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("any 2xx is success and the body is ignored", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte(`not json at all`))
		}))
		defer srv.Close()

		assert.NoError(t, newClient(t, srv.URL).CreateBooking(ctx, newRequest(t), uuid.New()))
	})

	t.Run("rejection message is carried verbatim", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = w.Write([]byte(`{"message":"Card declined"}`))
		}))
		defer srv.Close()

		err := newClient(t, srv.URL).CreateBooking(ctx, newRequest(t), uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBookingRejected)

		var rejected *upstream.RejectedError
		require.True(t, errors.As(err, &rejected))
		assert.Equal(t, "Card declined", rejected.Message)
	})

	t.Run("rejection without a message stays generic", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		err := newClient(t, srv.URL).CreateBooking(ctx, newRequest(t), uuid.New())
		assert.ErrorIs(t, err, errs.ErrBookingRejected)

		var rejected *upstream.RejectedError
		assert.False(t, errors.As(err, &rejected))
	})

	t.Run("connection errors map to unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		srv.Close()

		err := newClient(t, srv.URL).CreateBooking(ctx, newRequest(t), uuid.New())
		assert.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
	})
}
