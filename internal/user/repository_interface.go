package user

import "context"

type Repository interface {
	// Create inserts u unless a user with the same email exists. created
	// reports whether a row was written.
	Create(ctx context.Context, u *User) (created bool, err error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	GetRole(ctx context.Context, email string) (string, error)
	List(ctx context.Context) ([]User, error)
	// UpdateRole reports false when no user has that email or the role is unchanged.
	UpdateRole(ctx context.Context, email, role string) (bool, error)
	Delete(ctx context.Context, email string) (bool, error)
}
