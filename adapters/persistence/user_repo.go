package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio/internal/domain/user"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

// configUserRepo serves the single owner account configured through
// auth.owner_email and auth.owner_password_hash.
type configUserRepo struct {
	owner *user.User
}

func NewConfigUserRepo(email, passwordHash string) user.Repository {
	if email == "" || passwordHash == "" {
		return &configUserRepo{}
	}
	return &configUserRepo{owner: &user.User{
		ID:           uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(email))),
		Email:        email,
		PasswordHash: passwordHash,
	}}
}

func (r *configUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if r.owner == nil || !strings.EqualFold(r.owner.Email, strings.TrimSpace(email)) {
		return nil, apperror.NewUnauthorized("unknown account", nil)
	}
	u := *r.owner
	return &u, nil
}
