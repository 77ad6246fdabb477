package api

import (
	"net/http"

	"github.com/inkwell-api/inkwell/internal/api/shared"
)

// HomeHandler serves the landing routes.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Root redirects the bare root to /home.
func (h *HomeHandler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/home", http.StatusFound)
}

// Home answers the greeting probe.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"hello": "world"})
}
