package property

import "encoding/json"

// Property is a rentable listing as served by the upstream API. The view
// layer only relies on Name and Description; everything else the upstream
// sends is carried opaquely in Extra so unknown fields survive a round trip.
type Property struct {
	ID            string
	Name          string
	Description   string
	PricePerNight float64
	Extra         map[string]json.RawMessage
}

func (p *Property) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	known := struct {
		Name          string  `json:"name"`
		Description   string  `json:"description"`
		PricePerNight float64 `json:"price"`
	}{}
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	delete(raw, "name")
	delete(raw, "description")
	delete(raw, "price")

	p.Name = known.Name
	p.Description = known.Description
	p.PricePerNight = known.PricePerNight
	p.Extra = raw
	return nil
}

// FetchState is the tagged outcome of a property read. A missing property is
// terminal while a failed fetch is retryable, so the two are kept distinct.
type FetchState int

const (
	StateLoading FetchState = iota
	StateFound
	StateNotFound
	StateFailed
)

func (s FetchState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateFound:
		return "found"
	case StateNotFound:
		return "not_found"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
