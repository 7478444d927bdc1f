package booking

import "errors"

const (
	// Stay length is fixed; check-in/check-out dates are collected but do not
	// drive the price.
	Nights = 7

	Currency = "USD"

	MinGuests = 1
	MaxGuests = 6
)

var (
	ErrInvalidRate    = errors.New("nightly rate must be positive")
	ErrGuestsOutRange = errors.New("guests must be between 1 and 6")
)

// GuestCount is the party size, bounded to what the listing form offers.
type GuestCount struct {
	value int
}

func NewGuestCount(n int) (GuestCount, error) {
	if n < MinGuests || n > MaxGuests {
		return GuestCount{}, ErrGuestsOutRange
	}
	return GuestCount{value: n}, nil
}

func (g GuestCount) Int() int {
	return g.value
}

// Quote derives the total for a stay from the nightly rate. It is recomputed
// wherever it is needed and never stored, so the total can never drift from
// the rate it was derived from.
type Quote struct {
	nightlyRate float64
}

func NewQuote(nightlyRate float64) (Quote, error) {
	if nightlyRate <= 0 {
		return Quote{}, ErrInvalidRate
	}
	return Quote{nightlyRate: nightlyRate}, nil
}

func (q Quote) NightlyRate() float64 {
	return q.nightlyRate
}

func (q Quote) Nights() int {
	return Nights
}

func (q Quote) Total() float64 {
	return q.nightlyRate * Nights
}

func (q Quote) Currency() string {
	return Currency
}
