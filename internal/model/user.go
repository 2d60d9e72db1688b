package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User is an account that owns decks.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash []byte
	PasswordSalt []byte
	KDF          KDFParams
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the public view of a signed-in user.
type Identity struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
}

// Identity returns the public view of u.
func (u User) Identity() Identity {
	return Identity{UserID: u.ID, Email: u.Email, Name: u.Name}
}

// KDFParams are argon2id cost parameters stored next to each hash.
type KDFParams struct {
	Time    uint32 `json:"time"`
	MemKiB  uint32 `json:"memKiB"`
	Threads uint8  `json:"threads"`
}

// AuthEvent is delivered to auth state subscribers.
type AuthEvent struct {
	Identity Identity
	SignedIn bool
}
