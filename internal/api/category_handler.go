package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell-api/inkwell/internal/api/middleware"
	"github.com/inkwell-api/inkwell/internal/api/shared"
	"github.com/inkwell-api/inkwell/internal/domain"
	"github.com/inkwell-api/inkwell/internal/store"
)

// CategoryHandler handles the /categories routes.
type CategoryHandler struct {
	categories store.CategoryStore
}

// NewCategoryHandler creates a CategoryHandler over the store.
func NewCategoryHandler(categories store.CategoryStore) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

type categoryRequest struct {
	Category any `json:"category"`
}

// List handles GET /categories?page=N.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context(), pageFromRequest(r))
	if err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, categories)
}

// Get handles GET /categories/{identifier}. The body is a data array
// with one element, or none when nothing matches.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident, errs := domain.ResolveIdentifier(chi.URLParam(r, "identifier"), domain.CategoryNameMaxLength)
	if len(errs) > 0 {
		shared.RespondWithErrors(w, r, http.StatusBadRequest, errs)
		return
	}

	categories, err := h.categories.FindByIdentifier(r.Context(), ident)
	if err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, categories)
}

// Create handles POST /categories. The author is the authenticated
// admin, never a body field.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrors(w, r, http.StatusBadRequest, []string{"Invalid request body."})
		return
	}

	errs := domain.ValidateCategoryName(req.Category)

	if len(errs) == 0 {
		taken, err := h.categories.ExistsBySlug(r.Context(), domain.Slugify(domain.StringValue(req.Category)))
		if err != nil {
			shared.RespondInternalError(w, r, err)
			return
		}
		if taken {
			errs = append(errs, "The category already exists.")
		}
	}

	if len(errs) > 0 {
		shared.RespondWithErrors(w, r, http.StatusBadRequest, errs)
		return
	}

	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		shared.RespondWithErrors(w, r, http.StatusUnauthorized,
			[]string{"You must be logged in to access this route."})
		return
	}

	name := domain.StringValue(req.Category)
	category := &domain.Category{
		Category: name,
		AuthorID: identity.ID,
		Slug:     domain.Slugify(name),
	}
	if err := h.categories.Create(r.Context(), category); err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Update handles PATCH /categories/{identifier}: a full-field
// replacement, not a partial update. The slug-uniqueness re-check
// excludes the target row so a category can keep its own name.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrors(w, r, http.StatusBadRequest, []string{"Invalid request body."})
		return
	}

	ident, errs := domain.ResolveIdentifier(chi.URLParam(r, "identifier"), domain.CategoryNameMaxLength)
	errs = append(errs, domain.ValidateCategoryName(req.Category)...)

	if len(errs) == 0 {
		exists, err := h.categories.ExistsByIdentifier(r.Context(), ident)
		if err != nil {
			shared.RespondInternalError(w, r, err)
			return
		}
		if !exists {
			errs = append(errs, "The ID or slug doesn't exist.")
		}

		taken, err := h.categories.ExistsBySlugExcluding(
			r.Context(), domain.Slugify(domain.StringValue(req.Category)), ident)
		if err != nil {
			shared.RespondInternalError(w, r, err)
			return
		}
		if taken {
			errs = append(errs, "The category already exists.")
		}
	}

	if len(errs) > 0 {
		shared.RespondWithErrors(w, r, http.StatusBadRequest, errs)
		return
	}

	name := domain.StringValue(req.Category)
	category := &domain.Category{
		Category: name,
		Slug:     domain.Slugify(name),
	}
	if err := h.categories.Update(r.Context(), ident, category); err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Delete handles DELETE /categories/{identifier}: a soft delete. A
// second delete on the same identifier finds no non-deleted row and
// reports "doesn't exist".
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ident, errs := domain.ResolveIdentifier(chi.URLParam(r, "identifier"), domain.CategoryNameMaxLength)

	if len(errs) == 0 {
		exists, err := h.categories.ExistsByIdentifier(r.Context(), ident)
		if err != nil {
			shared.RespondInternalError(w, r, err)
			return
		}
		if !exists {
			errs = append(errs, "The ID or slug doesn't exist.")
		}
	}

	if len(errs) > 0 {
		shared.RespondWithErrors(w, r, http.StatusBadRequest, errs)
		return
	}

	if err := h.categories.SoftDelete(r.Context(), ident); err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
