package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSignup(t *testing.T) {
	t.Parallel()

	valid := map[string]any{
		"name":            "Jane Doe",
		"email":           "jane@example.com",
		"confirmEmail":    "jane@example.com",
		"password":        "supersecret",
		"confirmPassword": "supersecret",
	}

	// with returns a copy of the valid payload with overrides applied.
	// A nil override removes the field.
	with := func(overrides map[string]any) map[string]any {
		p := make(map[string]any, len(valid))
		for k, v := range valid {
			p[k] = v
		}
		for k, v := range overrides {
			if v == nil {
				p[k] = nil
			} else {
				p[k] = v
			}
		}
		return p
	}

	tests := []struct {
		name     string
		payload  map[string]any
		wantErrs []string
	}{
		{
			name:     "valid payload",
			payload:  valid,
			wantErrs: nil,
		},
		{
			name:    "everything missing",
			payload: map[string]any{},
			wantErrs: []string{
				"The name can't be undefined.",
				"The e-mail can't be undefined.",
				"The e-mail confirmation can't be undefined.",
				"The password can't be undefined.",
				"The password confirmation can't be undefined.",
			},
		},
		{
			name:     "name wrong type",
			payload:  with(map[string]any{"name": float64(12)}),
			wantErrs: []string{"The name must be a string."},
		},
		{
			name:     "name too short",
			payload:  with(map[string]any{"name": "ab"}),
			wantErrs: []string{"The name is too short (must have at least 3 characters)."},
		},
		{
			name:     "name too long",
			payload:  with(map[string]any{"name": strings.Repeat("a", 21)}),
			wantErrs: []string{"The name is too long (must have a maximum of 20 characters)."},
		},
		{
			name:     "name with symbols",
			payload:  with(map[string]any{"name": "Jane_Doe"}),
			wantErrs: []string{"The name must have only alphanumerical characters and spaces."},
		},
		{
			name:    "short name with symbols collects both messages",
			payload: with(map[string]any{"name": "j!"}),
			wantErrs: []string{
				"The name is too short (must have at least 3 characters).",
				"The name must have only alphanumerical characters and spaces.",
			},
		},
		{
			name:     "email too short",
			payload:  with(map[string]any{"email": "a@", "confirmEmail": "a@"}),
			wantErrs: []string{"The e-mail is too short (must have at least 3 characters)."},
		},
		{
			name: "email too long",
			payload: with(map[string]any{
				"email":        strings.Repeat("a", 51),
				"confirmEmail": strings.Repeat("a", 51),
			}),
			wantErrs: []string{"The e-mail is too long (must have a maximum of 50 characters)."},
		},
		{
			name:     "emails not equal",
			payload:  with(map[string]any{"confirmEmail": "other@example.com"}),
			wantErrs: []string{"The e-mails aren't equal."},
		},
		{
			name:     "confirm email wrong type",
			payload:  with(map[string]any{"confirmEmail": true}),
			wantErrs: []string{"The e-mail confirmation must be a string."},
		},
		{
			name: "password too short",
			payload: with(map[string]any{
				"password":        "short",
				"confirmPassword": "short",
			}),
			wantErrs: []string{"The password is too short (must have at least 8 characters)."},
		},
		{
			name:     "passwords not equal",
			payload:  with(map[string]any{"confirmPassword": "different1"}),
			wantErrs: []string{"The passwords aren't equal."},
		},
		{
			name:     "false is treated as undefined",
			payload:  with(map[string]any{"name": false}),
			wantErrs: []string{"The name can't be undefined."},
		},
		{
			name:     "zero is treated as undefined",
			payload:  with(map[string]any{"password": float64(0), "confirmPassword": float64(0)}),
			wantErrs: []string{"The password can't be undefined.", "The password confirmation can't be undefined."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateSignup(
				tt.payload["name"],
				tt.payload["email"],
				tt.payload["confirmEmail"],
				tt.payload["password"],
				tt.payload["confirmPassword"],
			)
			assert.Equal(t, tt.wantErrs, errs)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    any
		password any
		wantErrs []string
	}{
		{
			name:     "valid",
			email:    "jane@example.com",
			password: "supersecret",
			wantErrs: nil,
		},
		{
			name:     "both missing",
			email:    nil,
			password: nil,
			wantErrs: []string{
				"The e-mail can't be undefined.",
				"The password can't be undefined.",
			},
		},
		{
			name:     "email wrong type",
			email:    float64(5),
			password: "supersecret",
			wantErrs: []string{"The e-mail must be a string."},
		},
		{
			name:     "password wrong type",
			email:    "jane@example.com",
			password: float64(5),
			wantErrs: []string{"The password must be a string."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErrs, ValidateLogin(tt.email, tt.password))
		})
	}
}
