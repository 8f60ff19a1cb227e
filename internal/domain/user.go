package domain

import (
	"context"
	"strings"
	"time"
)

// MaxDisplayNameLength bounds the name shown on a designer's sessions.
const MaxDisplayNameLength = 100

// User is a designer account. Sessions, profiles and custom stitch
// patterns all belong to exactly one user.
type User struct {
	ID           int64
	Email        string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail trims and lowercases an address so lookups match however
// the designer typed it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
