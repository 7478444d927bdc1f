package request

import (
	"strings"

	"stayfront/internal/domain/booking"
)

type CreateBookingRequest struct {
	FirstName      string  `json:"firstName" binding:"required"`
	LastName       string  `json:"lastName" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	PhoneNumber    string  `json:"phoneNumber" binding:"required"`
	CheckIn        string  `json:"checkIn" binding:"required"`
	CheckOut       string  `json:"checkOut" binding:"required"`
	Guests         int     `json:"guests" binding:"required,min=1,max=6"`
	CardNumber     string  `json:"cardNumber" binding:"required"`
	ExpirationDate string  `json:"expirationDate" binding:"required"`
	CVV            string  `json:"cvv" binding:"required"`
	BillingAddress string  `json:"billingAddress" binding:"required"`
	PropertyID     string  `json:"propertyId" binding:"required"`
	PricePerNight  float64 `json:"pricePerNight" binding:"required,gt=0"`
}

func (r CreateBookingRequest) ToForm() *booking.Form {
	return &booking.Form{
		FirstName:      strings.TrimSpace(r.FirstName),
		LastName:       strings.TrimSpace(r.LastName),
		Email:          strings.TrimSpace(r.Email),
		PhoneNumber:    strings.TrimSpace(r.PhoneNumber),
		CheckIn:        r.CheckIn,
		CheckOut:       r.CheckOut,
		Guests:         r.Guests,
		CardNumber:     strings.TrimSpace(r.CardNumber),
		ExpirationDate: strings.TrimSpace(r.ExpirationDate),
		CVV:            strings.TrimSpace(r.CVV),
		BillingAddress: strings.TrimSpace(r.BillingAddress),
	}
}
