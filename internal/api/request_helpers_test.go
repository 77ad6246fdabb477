package api

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		want   int
	}{
		{name: "missing", target: "/articles", want: 1},
		{name: "page 1", target: "/articles?page=1", want: 1},
		{name: "page 2", target: "/articles?page=2", want: 2},
		{name: "zero", target: "/articles?page=0", want: 1},
		{name: "negative", target: "/articles?page=-5", want: 1},
		{name: "non-numeric", target: "/articles?page=abc", want: 1},
		{name: "empty value", target: "/articles?page=", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			assert.Equal(t, tt.want, pageFromRequest(req))
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("POST", "/signup", strings.NewReader(`{"name":"Jane"}`))
		var dst struct {
			Name any `json:"name"`
		}
		require.NoError(t, DecodeJSON(req, &dst))
		assert.Equal(t, "Jane", dst.Name)
	})

	t.Run("empty body decodes to the zero value", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("POST", "/signup", strings.NewReader(""))
		var dst struct {
			Name any `json:"name"`
		}
		require.NoError(t, DecodeJSON(req, &dst))
		assert.Nil(t, dst.Name)
	})

	t.Run("malformed body errors", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("POST", "/signup", strings.NewReader(`{"name":`))
		var dst struct {
			Name any `json:"name"`
		}
		assert.Error(t, DecodeJSON(req, &dst))
	})
}
