package auth

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/agromarket-cm/agromarket/internal/domain"
)

// Registry is the in-memory account store. Emails are case-insensitive.
type Registry struct {
	mu    sync.RWMutex
	users map[string]*record
}

type record struct {
	user domain.User
	hash string
}

// NewRegistry creates an empty account registry.
func NewRegistry() *Registry {
	return &Registry{users: make(map[string]*record)}
}

// Register adds an account. The user's ID is assigned here when empty.
func (r *Registry) Register(user domain.User, password string) (*domain.User, error) {
	const op = "auth.register"

	email := normalizeEmail(user.Email)
	if email == "" {
		return nil, domain.Invalid(op, "email is required")
	}

	hash, err := HashPassword(password)
	if err != nil {
		if errors.Is(err, ErrPasswordTooShort) {
			return nil, domain.Invalid(op, "Password must be at least 8 characters")
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "Could not create the account")
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.Email = email

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[email]; exists {
		return nil, domain.ErrDuplicateEmail
	}
	r.users[email] = &record{user: user, hash: hash}

	u := user
	return &u, nil
}

// Authenticate verifies the credentials and returns a copy of the account.
// Unknown email and wrong password are indistinguishable to the caller.
func (r *Registry) Authenticate(email, password string) (*domain.User, error) {
	r.mu.RLock()
	rec, ok := r.users[normalizeEmail(email)]
	r.mu.RUnlock()

	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if err := VerifyPassword(password, rec.hash); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	u := rec.user
	return &u, nil
}

// SeedDemo loads the demo accounts shipped with the storefront.
func (r *Registry) SeedDemo() error {
	demos := []struct {
		user     domain.User
		password string
	}{
		{
			user: domain.User{
				Email:     "jean.mbarga@example.cm",
				FirstName: "Jean",
				LastName:  "Mbarga",
				Phone:     "+237 670 00 00 01",
				Region:    "Centre",
			},
			password: "agromarket",
		},
		{
			user: domain.User{
				Email:     "amina.sali@example.cm",
				FirstName: "Amina",
				LastName:  "Sali",
				Phone:     "+237 690 00 00 02",
				Region:    "Extrême-Nord",
			},
			password: "agromarket",
		},
	}

	for _, d := range demos {
		if _, err := r.Register(d.user, d.password); err != nil {
			return err
		}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
