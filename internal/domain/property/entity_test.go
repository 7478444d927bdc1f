//go:build unit

package property_test

import (
	"encoding/json"
	"testing"

	"stayfront/internal/domain/property"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyUnmarshalJSON(t *testing.T) {
	t.Run("maps the price key and keeps unknown fields", func(t *testing.T) {
		payload := []byte(`{
			"name": "Villa Azul",
			"description": "A quiet villa by the sea",
			"price": 120.5,
			"location": "Cartagena",
			"amenities": ["wifi", "pool"]
		}`)

		var prop property.Property
		require.NoError(t, json.Unmarshal(payload, &prop))

		assert.Equal(t, "Villa Azul", prop.Name)
		assert.Equal(t, "A quiet villa by the sea", prop.Description)
		assert.Equal(t, 120.5, prop.PricePerNight)

		assert.NotContains(t, prop.Extra, "name")
		assert.NotContains(t, prop.Extra, "price")
		assert.Contains(t, prop.Extra, "location")
		assert.Contains(t, prop.Extra, "amenities")
		assert.Equal(t, json.RawMessage(`"Cartagena"`), prop.Extra["location"])
	})

	t.Run("tolerates missing optional fields", func(t *testing.T) {
		var prop property.Property
		require.NoError(t, json.Unmarshal([]byte(`{"name": "Cabin"}`), &prop))

		assert.Equal(t, "Cabin", prop.Name)
		assert.Empty(t, prop.Description)
		assert.Zero(t, prop.PricePerNight)
		assert.Empty(t, prop.Extra)
	})

	t.Run("rejects non-object payloads", func(t *testing.T) {
		var prop property.Property
		assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &prop))
	})
}

func TestFetchStateString(t *testing.T) {
	cases := map[property.FetchState]string{
		property.StateLoading:  "loading",
		property.StateFound:    "found",
		property.StateNotFound: "not_found",
		property.StateFailed:   "failed",
	}
	for state, want := range cases {
		assert.Equal(t, want, state.String())
	}
	assert.Equal(t, "unknown", property.FetchState(99).String())
}
