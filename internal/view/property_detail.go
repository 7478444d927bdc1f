// Package view holds the two page components: the property detail view and
// the booking form. Both keep their state machines independent of the HTTP
// layer so they can be driven and observed directly in tests.
package view

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"stayfront/internal/domain/property"
	"stayfront/internal/pkg/clock"
	"stayfront/internal/pkg/errs"
	"stayfront/internal/usecase/queries"
)

// PropertySnapshot is an immutable copy of the view state for rendering.
type PropertySnapshot struct {
	ID            string
	State         property.FetchState
	Property      *queries.PropertyView
	FailureReason string
	ResolvedAt    time.Time
}

func (s PropertySnapshot) IsLoading() bool  { return s.State == property.StateLoading }
func (s PropertySnapshot) IsFound() bool    { return s.State == property.StateFound }
func (s PropertySnapshot) IsNotFound() bool { return s.State == property.StateNotFound }
func (s PropertySnapshot) IsFailed() bool   { return s.State == property.StateFailed }

// PropertyDetail fetches and holds one property record keyed by a changing
// identifier. While the identifier is unresolved no fetch is issued. Each
// identifier change starts exactly one fetch, tagged with a generation;
// a resolution whose generation has been superseded is discarded, so a slow
// response for a previous identifier can never clobber the current one.
type PropertyDetail struct {
	queries queries.PropertyQueries
	clock   clock.Clock
	logger  *slog.Logger

	mu         sync.Mutex
	id         string
	generation uint64
	state      property.FetchState
	prop       *queries.PropertyView
	failure    string
	resolvedAt time.Time
	changed    chan struct{}
}

func NewPropertyDetail(q queries.PropertyQueries, clk clock.Clock, logger *slog.Logger) *PropertyDetail {
	return &PropertyDetail{
		queries: q,
		clock:   clk,
		logger:  logger,
		state:   property.StateLoading,
		changed: make(chan struct{}),
	}
}

// SetID reacts to the navigation context. An empty id keeps the view in the
// loading state without touching the network; a changed id starts one fetch
// for that id; repeating the current id is a no-op.
func (v *PropertyDetail) SetID(ctx context.Context, id string) {
	v.mu.Lock()
	if id == v.id && id != "" {
		v.mu.Unlock()
		return
	}
	v.id = id
	if id == "" {
		v.state = property.StateLoading
		v.prop = nil
		v.failure = ""
		v.notifyLocked()
		v.mu.Unlock()
		return
	}
	gen := v.startFetchLocked()
	v.mu.Unlock()

	go v.fetch(ctx, id, gen)
}

// Refresh retries the fetch for the current identifier, for recovering from
// a transient upstream failure. No-op while the identifier is unresolved.
func (v *PropertyDetail) Refresh(ctx context.Context) {
	v.mu.Lock()
	id := v.id
	if id == "" {
		v.mu.Unlock()
		return
	}
	gen := v.startFetchLocked()
	v.mu.Unlock()

	go v.fetch(ctx, id, gen)
}

func (v *PropertyDetail) startFetchLocked() uint64 {
	v.generation++
	v.state = property.StateLoading
	v.notifyLocked()
	return v.generation
}

func (v *PropertyDetail) fetch(ctx context.Context, id string, gen uint64) {
	prop, err := v.queries.GetProperty(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.generation {
		// Superseded while in flight; latest request wins.
		return
	}

	v.resolvedAt = v.clock.Now()
	switch {
	case err == nil:
		v.state = property.StateFound
		v.prop = prop
		v.failure = ""
	case errors.Is(err, errs.ErrPropertyNotFound):
		v.state = property.StateNotFound
		v.prop = nil
		v.failure = ""
	default:
		v.logger.Error("property fetch failed", "property_id", id, "error", err)
		v.state = property.StateFailed
		v.prop = nil
		v.failure = "The listing is temporarily unavailable. Please try again."
	}
	v.notifyLocked()
}

// Snapshot returns the current render state.
func (v *PropertyDetail) Snapshot() PropertySnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

// Wait blocks until the view has left the loading state, the identifier is
// unresolved, or the context ends, and returns the state it settled on.
func (v *PropertyDetail) Wait(ctx context.Context) PropertySnapshot {
	for {
		v.mu.Lock()
		snap := v.snapshotLocked()
		ch := v.changed
		v.mu.Unlock()

		if snap.State != property.StateLoading || snap.ID == "" {
			return snap
		}
		select {
		case <-ctx.Done():
			return snap
		case <-ch:
		}
	}
}

func (v *PropertyDetail) snapshotLocked() PropertySnapshot {
	return PropertySnapshot{
		ID:            v.id,
		State:         v.state,
		Property:      v.prop,
		FailureReason: v.failure,
		ResolvedAt:    v.resolvedAt,
	}
}

func (v *PropertyDetail) notifyLocked() {
	close(v.changed)
	v.changed = make(chan struct{})
}
