package response

import (
	"github.com/jinzhu/copier"

	"stayfront/internal/usecase/queries"
)

type PropertyResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	PricePerNight float64 `json:"pricePerNight"`
}

func FromPropertyView(view *queries.PropertyView) *PropertyResponse {
	resp := &PropertyResponse{}
	_ = copier.Copy(resp, view)
	return resp
}
