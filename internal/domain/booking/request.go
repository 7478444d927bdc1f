package booking

import (
	"github.com/go-playground/validator/v10"

	"stayfront/internal/pkg/errs"
)

var validate = validator.New()

// Request is the payload posted to the upstream bookings endpoint. It is a
// projection of the form plus the listing context, built fresh at submit
// time. Validation is presence-only; card formats are deliberately not
// checked here, the upstream owns payment semantics.
type Request struct {
	FirstName      string  `json:"firstName" validate:"required"`
	LastName       string  `json:"lastName" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	PhoneNumber    string  `json:"phoneNumber" validate:"required"`
	CheckIn        string  `json:"checkIn" validate:"required"`
	CheckOut       string  `json:"checkOut" validate:"required"`
	Guests         int     `json:"guests" validate:"required,min=1,max=6"`
	CardNumber     string  `json:"cardNumber" validate:"required"`
	ExpirationDate string  `json:"expirationDate" validate:"required"`
	CVV            string  `json:"cvv" validate:"required"`
	BillingAddress string  `json:"billingAddress" validate:"required"`
	PropertyID     string  `json:"propertyId" validate:"required"`
	TotalPrice     float64 `json:"totalPrice" validate:"required,gt=0"`
	Currency       string  `json:"currency" validate:"required,eq=USD"`
}

func NewRequest(form *Form, propertyID string, quote Quote) (*Request, error) {
	if _, err := NewGuestCount(form.Guests); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidGuests)
	}

	req := &Request{
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		Email:          form.Email,
		PhoneNumber:    form.PhoneNumber,
		CheckIn:        form.CheckIn,
		CheckOut:       form.CheckOut,
		Guests:         form.Guests,
		CardNumber:     form.CardNumber,
		ExpirationDate: form.ExpirationDate,
		CVV:            form.CVV,
		BillingAddress: form.BillingAddress,
		PropertyID:     propertyID,
		TotalPrice:     quote.Total(),
		Currency:       quote.Currency(),
	}
	if err := validate.Struct(req); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "booking request validation"), errs.ErrFormIncomplete)
	}
	return req, nil
}
