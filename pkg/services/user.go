package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/ent/user"
	"github.com/docrouter-ce/docrouter/pkg/models"
)

// UserService implements user lookup and the bootstrap admin path.
type UserService struct {
	client *ent.Client
	orgs   *OrganizationService
}

// NewUserService creates a UserService.
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client, orgs: NewOrganizationService(client)}
}

// Get returns one user.
func (s *UserService) Get(ctx context.Context, userID string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("querying user %s: %w", userID, err)
	}
	return u, nil
}

// GetByEmail returns one user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*ent.User, error) {
	u, err := s.client.User.Query().
		Where(user.EmailEQ(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("querying user %s: %w", email, err)
	}
	return u, nil
}

// IsSystemAdmin reports whether the user carries the system admin role.
func IsSystemAdmin(u *ent.User) bool {
	return u != nil && u.Role == user.RoleAdmin
}

// BootstrapAdmin ensures the system admin user exists with the configured
// credentials, along with an individual organization for it. Both email and
// password empty disables bootstrap.
func (s *UserService) BootstrapAdmin(ctx context.Context, email, password string) error {
	if email == "" && password == "" {
		return nil
	}
	if email == "" || password == "" {
		return Validationf("admin bootstrap requires both ADMIN_EMAIL and ADMIN_PASSWORD")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	existing, err := s.client.User.Query().
		Where(user.EmailEQ(email)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		u, err := s.client.User.Create().
			SetEmail(email).
			SetName("Admin").
			SetPasswordHash(string(hash)).
			SetRole(user.RoleAdmin).
			SetEmailVerified(true).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("creating admin user: %w", err)
		}
		if _, err := s.orgs.Create(ctx, u.ID, true, "Admin", models.OrgTypeIndividual); err != nil {
			return err
		}
		slog.Info("Bootstrapped admin user", "email", email)
	case err != nil:
		return fmt.Errorf("querying admin user: %w", err)
	default:
		if err := existing.Update().
			SetPasswordHash(string(hash)).
			SetRole(user.RoleAdmin).
			Exec(ctx); err != nil {
			return fmt.Errorf("updating admin user: %w", err)
		}
		slog.Info("Refreshed admin credentials", "email", email)
	}
	return nil
}

// CheckPassword verifies a login attempt.
func CheckPassword(u *ent.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
