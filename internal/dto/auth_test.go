package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     LoginRequest
		valid   bool
		message string
	}{
		{"valid", LoginRequest{Name: "Alice", Phone: "0812345678"}, true, ""},
		{"empty name", LoginRequest{Name: "", Phone: "0812345678"}, false, "Name is required"},
		{"whitespace name", LoginRequest{Name: "   ", Phone: "0812345678"}, false, "Name is required"},
		{"empty phone", LoginRequest{Name: "Alice", Phone: ""}, false, "Phone is required"},
		{"whitespace phone", LoginRequest{Name: "Alice", Phone: "\t "}, false, "Phone is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := tt.req.Validate()
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.message, msg)
		})
	}
}

func TestPageQuery_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		in        PageQuery
		wantPage  int
		wantLimit int
	}{
		{"defaults", PageQuery{}, 1, 10},
		{"negative page", PageQuery{Page: -2, Limit: 20}, 1, 20},
		{"limit capped", PageQuery{Page: 3, Limit: 500}, 3, 100},
		{"passthrough", PageQuery{Page: 2, Limit: 25}, 2, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantLimit, tt.in.Limit)
		})
	}
}

func TestPageQuery_Values(t *testing.T) {
	q := PageQuery{
		Page:  2,
		Limit: 25,
		Filters: map[string]string{
			"status": "confirmed",
			"empty":  "",
		},
	}

	v := q.Values()
	assert.Equal(t, "2", v.Get("page"))
	assert.Equal(t, "25", v.Get("limit"))
	assert.Equal(t, "confirmed", v.Get("status"))
	assert.False(t, v.Has("empty"), "empty filters must not be encoded")
}
