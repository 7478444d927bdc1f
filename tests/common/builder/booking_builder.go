//go:build unit

package builder

import (
	"net/url"
	"strconv"

	"stayfront/internal/domain/booking"
	reqdto "stayfront/internal/handler/dto/request"
)

type BookingBuilder struct {
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
	PropertyID     string
	PricePerNight  float64
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		PhoneNumber:    "+1 555 0100",
		CheckIn:        "2026-09-10",
		CheckOut:       "2026-09-17",
		Guests:         2,
		CardNumber:     "4242 4242 4242 4242",
		ExpirationDate: "12/27",
		CVV:            "123",
		BillingAddress: "1 Analytical Engine Way",
		PropertyID:     "prop-42",
		PricePerNight:  100,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildForm() *booking.Form {
	return &booking.Form{
		FirstName:      b.FirstName,
		LastName:       b.LastName,
		Email:          b.Email,
		PhoneNumber:    b.PhoneNumber,
		CheckIn:        b.CheckIn,
		CheckOut:       b.CheckOut,
		Guests:         b.Guests,
		CardNumber:     b.CardNumber,
		ExpirationDate: b.ExpirationDate,
		CVV:            b.CVV,
		BillingAddress: b.BillingAddress,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		FirstName:      b.FirstName,
		LastName:       b.LastName,
		Email:          b.Email,
		PhoneNumber:    b.PhoneNumber,
		CheckIn:        b.CheckIn,
		CheckOut:       b.CheckOut,
		Guests:         b.Guests,
		CardNumber:     b.CardNumber,
		ExpirationDate: b.ExpirationDate,
		CVV:            b.CVV,
		BillingAddress: b.BillingAddress,
		PropertyID:     b.PropertyID,
		PricePerNight:  b.PricePerNight,
	}
}

func (b *BookingBuilder) BuildFormValues() url.Values {
	return url.Values{
		booking.FieldFirstName:      {b.FirstName},
		booking.FieldLastName:       {b.LastName},
		booking.FieldEmail:          {b.Email},
		booking.FieldPhoneNumber:    {b.PhoneNumber},
		booking.FieldCheckIn:        {b.CheckIn},
		booking.FieldCheckOut:       {b.CheckOut},
		booking.FieldGuests:         {strconv.Itoa(b.Guests)},
		booking.FieldCardNumber:     {b.CardNumber},
		booking.FieldExpirationDate: {b.ExpirationDate},
		booking.FieldCVV:            {b.CVV},
		booking.FieldBillingAddress: {b.BillingAddress},
	}
}
