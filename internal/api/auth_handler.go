package api

import (
	"errors"
	"net/http"

	"github.com/inkwell-api/inkwell/internal/api/shared"
	"github.com/inkwell-api/inkwell/internal/domain"
	"github.com/inkwell-api/inkwell/internal/service/auth"
	"github.com/inkwell-api/inkwell/internal/store"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	users      store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(
	users store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		users:      users,
		jwtService: jwtService,
		hasher:     hasher,
		verifier:   verifier,
	}
}

// signupRequest fields are `any` so missing values and wrong JSON
// types produce their distinct validation messages.
type signupRequest struct {
	Name            any `json:"name"`
	Email           any `json:"email"`
	ConfirmEmail    any `json:"confirmEmail"`
	Password        any `json:"password"`
	ConfirmPassword any `json:"confirmPassword"`
}

type loginRequest struct {
	Email    any `json:"email"`
	Password any `json:"password"`
}

// Signup handles POST /signup. Name-slug and email uniqueness are
// checked whenever the respective field is structurally valid, each
// independent of the other fields' errors, and the user row is only
// inserted when the accumulated list is empty. User uniqueness checks
// are not soft-delete filtered: a name or email stays taken forever.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrors(w, r, http.StatusBadRequest, []string{"Invalid request body."})
		return
	}

	errs := domain.ValidateSignup(req.Name, req.Email, req.ConfirmEmail, req.Password, req.ConfirmPassword)

	if name, ok := req.Name.(string); ok && name != "" {
		taken, err := h.users.ExistsBySlug(r.Context(), domain.Slugify(name))
		if err != nil {
			shared.RespondInternalError(w, r, err)
			return
		}
		if taken {
			errs = append(errs, "The name is already in use.")
		}
	}

	if email, ok := req.Email.(string); ok && email != "" {
		taken, err := h.users.ExistsByEmail(r.Context(), email)
		if err != nil {
			shared.RespondInternalError(w, r, err)
			return
		}
		if taken {
			errs = append(errs, "The e-mail is already in use.")
		}
	}

	if len(errs) > 0 {
		shared.RespondWithErrors(w, r, http.StatusBadRequest, errs)
		return
	}

	name := domain.StringValue(req.Name)
	hashed, err := h.hasher.Hash(domain.StringValue(req.Password))
	if err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	user := &domain.User{
		Name:           name,
		Email:          domain.StringValue(req.Email),
		HashedPassword: hashed,
		Slug:           domain.Slugify(name),
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Login handles POST /login. Unknown email and wrong password produce
// the identical message so a caller cannot probe which half failed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrors(w, r, http.StatusBadRequest, []string{"Invalid request body."})
		return
	}

	errs := domain.ValidateLogin(req.Email, req.Password)

	var user *domain.User
	if email, ok := req.Email.(string); ok && email != "" {
		found, err := h.users.GetByEmail(r.Context(), email)
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			errs = append(errs, "Incorrect e-mail or password.")
		case err != nil:
			shared.RespondInternalError(w, r, err)
			return
		default:
			user = found
			password := domain.StringValue(req.Password)
			if h.verifier.Compare(user.HashedPassword, password) != nil {
				errs = append(errs, "Incorrect e-mail or password.")
			}
		}
	}

	if len(errs) > 0 {
		shared.RespondWithErrors(w, r, http.StatusBadRequest, errs)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), auth.Identity{
		ID:      user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
	if err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.TokenResponse{Token: token})
}
