package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHomeHandler(t *testing.T) {
	t.Parallel()

	handler := NewHomeHandler()

	t.Run("root redirects to /home", func(t *testing.T) {
		t.Parallel()

		recorder := httptest.NewRecorder()
		handler.Root(recorder, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusFound, recorder.Code)
		assert.Equal(t, "/home", recorder.Header().Get("Location"))
	})

	t.Run("home greets", func(t *testing.T) {
		t.Parallel()

		recorder := httptest.NewRecorder()
		handler.Home(recorder, httptest.NewRequest("GET", "/home", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"hello":"world"}`, recorder.Body.String())
	})
}
