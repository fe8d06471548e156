package user

import (
	"context"
	"errors"
	"fmt"

	"clubsphere/internal/audit"
	"clubsphere/internal/auth"
	"clubsphere/internal/logger"
)

var (
	// ErrUserNotFound also satisfies errors.Is(err, auth.ErrNoRole) so the
	// role guard can tell an unregistered caller from a storage failure.
	ErrUserNotFound  = fmt.Errorf("user not found: %w", auth.ErrNoRole)
	ErrInvalidRole   = errors.New("invalid role")
	ErrRoleUnchanged = errors.New("user not found or role already set")
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (role string, created bool, err error)
	GetRole(ctx context.Context, email string) (string, error)
	List(ctx context.Context) ([]User, error)
	UpdateRole(ctx context.Context, actor, email, role string) error
	// Delete reports whether an identity-provider account was removed too.
	Delete(ctx context.Context, actor, email string) (identityDeleted bool, err error)
}

type service struct {
	repo     Repository
	identity auth.IdentityAdmin
	audit    *audit.Logger
}

func NewService(repo Repository, identity auth.IdentityAdmin, auditLog *audit.Logger) Service {
	return &service{
		repo:     repo,
		identity: identity,
		audit:    auditLog,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (string, bool, error) {
	u := &User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     auth.RoleMember,
	}

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return "", false, err
	}
	if created {
		return auth.RoleMember, true, nil
	}

	role, err := s.repo.GetRole(ctx, req.Email)
	if err != nil {
		return "", false, err
	}
	return role, false, nil
}

func (s *service) GetRole(ctx context.Context, email string) (string, error) {
	return s.repo.GetRole(ctx, email)
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateRole(ctx context.Context, actor, email, role string) error {
	if !auth.IsValidRole(role) {
		return ErrInvalidRole
	}

	updated, err := s.repo.UpdateRole(ctx, email, role)
	if err != nil {
		return err
	}
	if !updated {
		return ErrRoleUnchanged
	}

	s.audit.RoleChanged(ctx, actor, email, role)
	return nil
}

// Delete removes the identity-provider account and then the user row. An
// account already missing at the provider is not an error.
func (s *service) Delete(ctx context.Context, actor, email string) (bool, error) {
	if _, err := s.repo.FindByEmail(ctx, email); err != nil {
		return false, err
	}

	identityDeleted := true
	if err := s.identity.DeleteUserByEmail(ctx, email); err != nil {
		if !errors.Is(err, auth.ErrIdentityNotFound) {
			return false, fmt.Errorf("delete identity: %w", err)
		}
		logger.Warn("identity account already absent", "email", email)
		identityDeleted = false
	}

	deleted, err := s.repo.Delete(ctx, email)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, ErrUserNotFound
	}

	s.audit.UserDeleted(ctx, actor, email)
	return identityDeleted, nil
}
