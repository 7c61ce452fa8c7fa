package repo

import (
	"context"
	"errors"

	"blog_api/biz/model/domain"
)

var (
	// ErrDuplicateKey is returned by Create when the email is already taken.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrMalformedID is returned when a lookup id has the wrong shape for the backend.
	ErrMalformedID = errors.New("malformed id")
)

// UserRepository persists users. Lookups return (nil, nil) when nothing matches.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUserID(ctx context.Context, userID string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}
