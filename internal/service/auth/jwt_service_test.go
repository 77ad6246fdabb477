package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-api/inkwell/internal/config"
)

const (
	testSecret  = "test-secret-that-is-long-enough-for-testing"
	wrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

// newFixedTimeService builds an HS512 service whose clock is pinned.
func newFixedTimeService(secret string, lifetime time.Duration, now time.Time) *hmacJWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      func() time.Time { return now },
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("rejects short secrets", func(t *testing.T) {
		t.Parallel()
		_, err := NewJWTService(config.AuthConfig{Secret: "too-short", TokenExpiryHours: 48})
		assert.Error(t, err)
	})

	t.Run("accepts a 32-character secret", func(t *testing.T) {
		t.Parallel()
		svc, err := NewJWTService(config.AuthConfig{
			Secret:           "exactly-32-characters-long-okay!",
			TokenExpiryHours: 48,
		})
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 48 * time.Hour
	identity := Identity{ID: 7, Email: "admin@example.com", IsAdmin: true}

	svc := newFixedTimeService(testSecret, lifetime, fixedTime)

	token, err := svc.GenerateToken(context.Background(), identity)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, identity.ID, got.ID)
	assert.Equal(t, identity.Email, got.Email)
	assert.True(t, got.IsAdmin)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 48 * time.Hour
	identity := Identity{ID: 7, Email: "admin@example.com"}

	tests := []struct {
		name      string
		setupFunc func() (JWTService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func() (JWTService, string) {
				svc := newFixedTimeService(testSecret, lifetime, fixedTime)
				token, _ := svc.GenerateToken(context.Background(), identity)
				return svc, token
			},
			wantErr: nil,
		},
		{
			name: "expired token",
			setupFunc: func() (JWTService, string) {
				genSvc := newFixedTimeService(testSecret, lifetime, fixedTime)
				token, _ := genSvc.GenerateToken(context.Background(), identity)

				valSvc := newFixedTimeService(testSecret, lifetime, fixedTime.Add(lifetime+time.Hour))
				return valSvc, token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "invalid signature",
			setupFunc: func() (JWTService, string) {
				genSvc := newFixedTimeService(testSecret, lifetime, fixedTime)
				token, _ := genSvc.GenerateToken(context.Background(), identity)

				valSvc := newFixedTimeService(wrongSecret, lifetime, fixedTime)
				return valSvc, token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func() (JWTService, string) {
				svc := newFixedTimeService(testSecret, lifetime, fixedTime)
				return svc, "this.is.not.a.valid.jwt.token"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "empty token",
			setupFunc: func() (JWTService, string) {
				svc := newFixedTimeService(testSecret, lifetime, fixedTime)
				return svc, ""
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, token := tt.setupFunc()
			got, err := svc.ValidateToken(context.Background(), token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, identity.ID, got.ID)
		})
	}
}

func TestTokensCarryUniqueIDs(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newFixedTimeService(testSecret, time.Hour, fixedTime)

	first, err := svc.GenerateToken(context.Background(), Identity{ID: 1})
	require.NoError(t, err)
	second, err := svc.GenerateToken(context.Background(), Identity{ID: 1})
	require.NoError(t, err)

	// Same identity and clock still produce distinct tokens via jti.
	assert.NotEqual(t, first, second)
}

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()
	verifier := NewBcryptVerifier()

	hashed, err := hasher.Hash("supersecret")
	require.NoError(t, err)
	assert.NotEqual(t, "supersecret", hashed)

	assert.NoError(t, verifier.Compare(hashed, "supersecret"))
	assert.Error(t, verifier.Compare(hashed, "wrongpassword"))
}
