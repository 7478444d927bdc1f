package booking

import (
	"strconv"

	"stayfront/internal/pkg/errs"
)

// Form field names, matching the wire names of the booking request.
const (
	FieldFirstName      = "firstName"
	FieldLastName       = "lastName"
	FieldEmail          = "email"
	FieldPhoneNumber    = "phoneNumber"
	FieldCheckIn        = "checkIn"
	FieldCheckOut       = "checkOut"
	FieldGuests         = "guests"
	FieldCardNumber     = "cardNumber"
	FieldExpirationDate = "expirationDate"
	FieldCVV            = "cvv"
	FieldBillingAddress = "billingAddress"
)

// Form holds one booking session's input. Fields change only through Set,
// one named field per call; nothing else is derived into the form.
type Form struct {
	FirstName      string
	LastName       string
	Email          string
	PhoneNumber    string
	CheckIn        string
	CheckOut       string
	Guests         int
	CardNumber     string
	ExpirationDate string
	CVV            string
	BillingAddress string
}

func NewForm() *Form {
	return &Form{Guests: MinGuests}
}

// Set updates exactly the named field and leaves every other field untouched.
func (f *Form) Set(field, value string) error {
	switch field {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldEmail:
		f.Email = value
	case FieldPhoneNumber:
		f.PhoneNumber = value
	case FieldCheckIn:
		f.CheckIn = value
	case FieldCheckOut:
		f.CheckOut = value
	case FieldGuests:
		n, err := strconv.Atoi(value)
		if err != nil {
			return errs.Wrap(err, "guests must be a number")
		}
		f.Guests = n
	case FieldCardNumber:
		f.CardNumber = value
	case FieldExpirationDate:
		f.ExpirationDate = value
	case FieldCVV:
		f.CVV = value
	case FieldBillingAddress:
		f.BillingAddress = value
	default:
		return errs.Mark(errs.Newf("no such field: %q", field), errs.ErrUnknownField)
	}
	return nil
}
