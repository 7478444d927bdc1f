package view

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"stayfront/internal/domain/booking"
	"stayfront/internal/pkg/errs"
	"stayfront/internal/upstream"
	"stayfront/internal/usecase/commands"
)

// Submission status of a BookingForm. Exactly one of loading, success and
// error is active at a time; idle only before the first submit.
type SubmitStatus int

const (
	StatusIdle SubmitStatus = iota
	StatusLoading
	StatusSuccess
	StatusError
)

const (
	// Shown when the upstream rejects a booking without its own message.
	genericSubmitError = "Failed to submit booking. Please try again."

	successMessage = "Booking confirmed! You'll receive an email shortly."
)

// BookingSnapshot is an immutable copy of the form state for rendering.
type BookingSnapshot struct {
	Form          booking.Form
	PropertyID    string
	PricePerNight float64
	Nights        int
	Total         float64
	Currency      string
	Status        SubmitStatus
	ErrorMessage  string
	Reference     string
}

func (s BookingSnapshot) SubmitLabel() string {
	if s.Status == StatusLoading {
		return "Processing..."
	}
	return "Confirm & Pay"
}

func (s BookingSnapshot) SubmitDisabled() bool {
	return s.Status == StatusLoading
}

func (s BookingSnapshot) SuccessMessage() string {
	if s.Status == StatusSuccess {
		return successMessage
	}
	return ""
}

// BookingForm collects booking and payment input for one property and
// submits it. The displayed total is derived from the current price on every
// read, never stored. Entered values survive both success and failure;
// double submits are prevented by the disabled control in the rendered page,
// not here.
type BookingForm struct {
	commands commands.BookingCommands
	logger   *slog.Logger

	mu         sync.Mutex
	form       *booking.Form
	propertyID string
	price      float64
	status     SubmitStatus
	errMsg     string
	reference  string
}

func NewBookingForm(cmds commands.BookingCommands, logger *slog.Logger, propertyID string, pricePerNight float64) *BookingForm {
	return &BookingForm{
		commands:   cmds,
		logger:     logger,
		form:       booking.NewForm(),
		propertyID: propertyID,
		price:      pricePerNight,
		status:     StatusIdle,
	}
}

// SetPrice follows the price input, as when the listing is re-rendered with
// a changed rate. The derived total picks it up with no user action.
func (b *BookingForm) SetPrice(pricePerNight float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.price = pricePerNight
}

// SetField updates a single named field, leaving all others unchanged.
func (b *BookingForm) SetField(field, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.form.Set(field, value)
}

// Submit builds the booking request from the current form state and posts
// it. Error and success are cleared on entry; loading is cleared on every
// path out. Form fields are kept as entered, also after a success.
func (b *BookingForm) Submit(ctx context.Context) BookingSnapshot {
	b.mu.Lock()
	b.status = StatusLoading
	b.errMsg = ""
	b.reference = ""
	params := commands.SubmitBookingParams{
		Form:        b.copyFormLocked(),
		PropertyID:  b.propertyID,
		NightlyRate: b.price,
	}
	b.mu.Unlock()

	result, err := b.commands.Submit(ctx, params)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.status = StatusError
		b.errMsg = submitErrorMessage(err)
		b.logger.Warn("booking submit failed", "property_id", b.propertyID, "error", err)
	} else {
		b.status = StatusSuccess
		b.reference = result.Reference.String()
	}
	return b.snapshotLocked()
}

// Snapshot returns the current render state.
func (b *BookingForm) Snapshot() BookingSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

func (b *BookingForm) snapshotLocked() BookingSnapshot {
	return BookingSnapshot{
		Form:          *b.form,
		PropertyID:    b.propertyID,
		PricePerNight: b.price,
		Nights:        booking.Nights,
		Total:         b.price * booking.Nights,
		Currency:      booking.Currency,
		Status:        b.status,
		ErrorMessage:  b.errMsg,
		Reference:     b.reference,
	}
}

func (b *BookingForm) copyFormLocked() *booking.Form {
	f := *b.form
	return &f
}

func submitErrorMessage(err error) string {
	var rejected *upstream.RejectedError
	if errors.As(err, &rejected) {
		return rejected.Message
	}
	if errors.Is(err, errs.ErrFormIncomplete) {
		return "Please fill in all required fields."
	}
	if errors.Is(err, errs.ErrInvalidGuests) {
		return "Guests must be between 1 and 6."
	}
	return genericSubmitError
}
