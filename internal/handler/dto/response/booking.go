package response

import (
	"time"

	"stayfront/internal/usecase/commands"
)

type BookingResponse struct {
	Reference   string    `json:"reference"`
	TotalPrice  float64   `json:"totalPrice"`
	Currency    string    `json:"currency"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func FromSubmitResult(result *commands.SubmitResult) *BookingResponse {
	return &BookingResponse{
		Reference:   result.Reference.String(),
		TotalPrice:  result.TotalPrice,
		Currency:    result.Currency,
		SubmittedAt: result.SubmittedAt,
	}
}
