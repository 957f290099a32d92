package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributes_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Attributes
	}{
		{
			name:  "All strings",
			input: `{"brand":"Nike","type":"shoes","color":"black","style":"casual","gender":"women","department":"Sport"}`,
			want:  Attributes{Brand: "Nike", Type: "shoes", Color: "black", Style: "casual", Gender: "women", Department: "Sport"},
		},
		{
			name:  "Null and missing values",
			input: `{"brand":null,"type":"shoes"}`,
			want:  Attributes{Type: "shoes"},
		},
		{
			name:  "Malformed values degrade to unspecified",
			input: `{"brand":42,"color":["red"],"type":{"x":1}}`,
			want:  Attributes{},
		},
		{
			name:  "Whitespace is trimmed",
			input: `{"brand":"  Nike "}`,
			want:  Attributes{Brand: "Nike"},
		},
		{
			name:  "Not an object",
			input: `"Nike"`,
			want:  Attributes{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Attributes
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsedQuery_Decode(t *testing.T) {
	input := `{
		"keywords": ["Nike", "running", "shoes"],
		"attributes": {"brand": "Nike", "type": 7},
		"filters": {"department": "Sport", "price_max": 100},
		"intent": "product_search"
	}`

	var q ParsedQuery
	require.NoError(t, json.Unmarshal([]byte(input), &q))

	assert.Equal(t, []string{"Nike", "running", "shoes"}, q.Keywords)
	assert.Equal(t, "Nike", q.Attributes.Brand)
	assert.Empty(t, q.Attributes.Type)
	require.NotNil(t, q.Filters)
	assert.Equal(t, "Sport", q.Filters.Department)
	require.NotNil(t, q.Filters.PriceMax)
	assert.Equal(t, 100.0, *q.Filters.PriceMax)
	assert.Equal(t, "product_search", q.Intent)
}

func TestNewPredicate(t *testing.T) {
	t.Run("Nil filters", func(t *testing.T) {
		p := NewPredicate([]string{"shirt"}, nil)
		assert.Equal(t, []string{"shirt"}, p.Keywords)
		assert.False(t, p.MatchesAll())
	})

	t.Run("Blank keywords dropped", func(t *testing.T) {
		p := NewPredicate([]string{" ", "", " denim "}, &Filters{})
		assert.Equal(t, []string{"denim"}, p.Keywords)
	})

	t.Run("Empty input matches all", func(t *testing.T) {
		assert.True(t, NewPredicate(nil, nil).MatchesAll())
		assert.True(t, NewPredicate([]string{}, &Filters{}).MatchesAll())
	})

	t.Run("Filters copied", func(t *testing.T) {
		p := NewPredicate(nil, &Filters{Department: "Sport", Color: "Black", Type: "Shoes"})
		assert.Equal(t, "Sport", p.Department)
		assert.Equal(t, "Black", p.Color)
		assert.Equal(t, "Shoes", p.Type)
		assert.False(t, p.MatchesAll())
	})
}

func TestStorageError(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("count: %w", NewStorageError("count articles", cause))

	assert.True(t, errors.Is(err, ErrStorage))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrNotFound))

	var storageErr *StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "count articles", storageErr.Op)
}
