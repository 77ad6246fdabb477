package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell-api/inkwell/internal/api/middleware"
	"github.com/inkwell-api/inkwell/internal/api/shared"
	"github.com/inkwell-api/inkwell/internal/domain"
	"github.com/inkwell-api/inkwell/internal/store"
)

// ArticleHandler handles the /articles routes. It depends on the
// category store as well: article writes must verify that the
// referenced category exists and is not deleted.
type ArticleHandler struct {
	articles   store.ArticleStore
	categories store.CategoryStore
}

// NewArticleHandler creates an ArticleHandler over both stores.
func NewArticleHandler(articles store.ArticleStore, categories store.CategoryStore) *ArticleHandler {
	return &ArticleHandler{articles: articles, categories: categories}
}

type articleRequest struct {
	Title       any `json:"title"`
	Description any `json:"description"`
	Article     any `json:"article"`
	CategoryID  any `json:"category_id"`
}

// List handles GET /articles?page=N.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articles.List(r.Context(), pageFromRequest(r))
	if err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, articles)
}

// Get handles GET /articles/{identifier}.
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident, errs := domain.ResolveIdentifier(chi.URLParam(r, "identifier"), domain.ArticleTitleMaxLength)
	if len(errs) > 0 {
		shared.RespondWithErrors(w, r, http.StatusBadRequest, errs)
		return
	}

	articles, err := h.articles.FindByIdentifier(r.Context(), ident)
	if err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, articles)
}

// Create handles POST /articles. Asynchronous checks run in order:
// category existence, then slug uniqueness; both messages can
// accumulate before the 400 goes out. Nothing is inserted unless the
// list is empty.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrors(w, r, http.StatusBadRequest, []string{"Invalid request body."})
		return
	}

	errs := domain.ValidateArticleFields(req.Title, req.Description, req.Article, req.CategoryID)

	var categoryID int64
	if len(errs) == 0 {
		categoryID, _ = domain.CategoryIDValue(req.CategoryID)

		exists, err := h.categories.ExistsByID(r.Context(), categoryID)
		if err != nil {
			shared.RespondInternalError(w, r, err)
			return
		}
		if !exists {
			errs = append(errs, "The article category doesn't exist.")
		}

		taken, err := h.articles.ExistsBySlug(r.Context(), domain.Slugify(domain.StringValue(req.Title)))
		if err != nil {
			shared.RespondInternalError(w, r, err)
			return
		}
		if taken {
			errs = append(errs, "The article title already exists.")
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

	title := domain.StringValue(req.Title)
	article := &domain.Article{
		Title:       title,
		Description: domain.StringValue(req.Description),
		Article:     domain.StringValue(req.Article),
		CategoryID:  categoryID,
		AuthorID:    identity.ID,
		Slug:        domain.Slugify(title),
	}
	if err := h.articles.Create(r.Context(), article); err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Update handles PATCH /articles/{identifier}: full-field replacement.
// Asynchronous checks run in order: target existence, category
// existence, then slug uniqueness excluding the target row.
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrors(w, r, http.StatusBadRequest, []string{"Invalid request body."})
		return
	}

	ident, errs := domain.ResolveIdentifier(chi.URLParam(r, "identifier"), domain.ArticleTitleMaxLength)
	errs = append(errs, domain.ValidateArticleFields(req.Title, req.Description, req.Article, req.CategoryID)...)

	var categoryID int64
	if len(errs) == 0 {
		exists, err := h.articles.ExistsByIdentifier(r.Context(), ident)
		if err != nil {
			shared.RespondInternalError(w, r, err)
			return
		}
		if !exists {
			errs = append(errs, "The ID or slug doesn't exist.")
		}

		categoryID, _ = domain.CategoryIDValue(req.CategoryID)
		categoryExists, err := h.categories.ExistsByID(r.Context(), categoryID)
		if err != nil {
			shared.RespondInternalError(w, r, err)
			return
		}
		if !categoryExists {
			errs = append(errs, "The article category doesn't exist.")
		}

		taken, err := h.articles.ExistsBySlugExcluding(
			r.Context(), domain.Slugify(domain.StringValue(req.Title)), ident)
		if err != nil {
			shared.RespondInternalError(w, r, err)
			return
		}
		if taken {
			errs = append(errs, "The article title already exists.")
		}
	}

	if len(errs) > 0 {
		shared.RespondWithErrors(w, r, http.StatusBadRequest, errs)
		return
	}

	title := domain.StringValue(req.Title)
	article := &domain.Article{
		Title:       title,
		Description: domain.StringValue(req.Description),
		Article:     domain.StringValue(req.Article),
		CategoryID:  categoryID,
		Slug:        domain.Slugify(title),
	}
	if err := h.articles.Update(r.Context(), ident, article); err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Delete handles DELETE /articles/{identifier}: a soft delete.
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ident, errs := domain.ResolveIdentifier(chi.URLParam(r, "identifier"), domain.ArticleTitleMaxLength)

	if len(errs) == 0 {
		exists, err := h.articles.ExistsByIdentifier(r.Context(), ident)
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

	if err := h.articles.SoftDelete(r.Context(), ident); err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
