package user

import (
	"context"

	"github.com/google/uuid"
)

// User is the site owner account used for the admin API. There is exactly one.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
}

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
}
