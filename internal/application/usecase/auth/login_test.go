package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/adapters/persistence"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/auth"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func newLogin(t *testing.T, secret string) *LoginUseCase {
	t.Helper()
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	repo := persistence.NewConfigUserRepo("owner@example.com", hash)
	return NewLoginUseCase(repo, auth.NewJWTService(secret, time.Hour), logger.NewNop())
}

func TestLogin_IssuesValidToken(t *testing.T) {
	uc := newLogin(t, "s3cret")

	out, err := uc.Execute(context.Background(), LoginInput{Email: " Owner@Example.com ", Password: "correct horse"})
	require.NoError(t, err)
	require.NotEmpty(t, out.AccessToken)

	claims, err := auth.NewJWTService("s3cret", time.Hour).ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, claims.OwnerID.String(), claims.Subject)
}

func TestLogin_Rejects(t *testing.T) {
	uc := newLogin(t, "s3cret")

	tests := []struct {
		name  string
		input LoginInput
	}{
		{"wrong password", LoginInput{Email: "owner@example.com", Password: "nope"}},
		{"unknown account", LoginInput{Email: "someone@example.com", Password: "correct horse"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperror.ErrUnauthorized))
		})
	}
}

func TestLogin_MissingSecretIsInternal(t *testing.T) {
	uc := newLogin(t, "")

	_, err := uc.Execute(context.Background(), LoginInput{Email: "owner@example.com", Password: "correct horse"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInternal))
	assert.True(t, errors.Is(err, auth.ErrEmptySecret))
}
