package auth

import (
	"context"

	"aacorner/internal/domain"
)

// UserRepositoryInterface — only the methods auth service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByIdent(ctx context.Context, ident string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

// CartStore — logout resets the caller's server-side cart
type CartStore interface {
	Clear(ctx context.Context, userID int64) error
}
