// internal/identity/provider.go
package identity

import (
	"context"

	"github.com/jaepaama/Employeehub/internal/domain"
	"github.com/jaepaama/Employeehub/internal/model"
)

// Provider resolves submitted credentials to an identity. The hub treats it
// as an external collaborator; the default implementation is a static table
// compared by exact string match, with no hashing and no rate limiting.
type Provider interface {
	FindByCredentials(ctx context.Context, email, password string) (*model.Identity, error)
}

// StaticProvider serves a fixed in-memory directory.
type StaticProvider struct {
	users []model.Identity
}

func NewStaticProvider(users []model.Identity) *StaticProvider {
	return &StaticProvider{users: users}
}

func (p *StaticProvider) FindByCredentials(ctx context.Context, email, password string) (*model.Identity, error) {
	for i := range p.users {
		u := &p.users[i]
		if u.Email == email && u.Password == password {
			found := *u
			return &found, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// FindByEmail looks a directory user up without checking credentials. Used by
// the password-reset flow and the hubctl token command.
func (p *StaticProvider) FindByEmail(ctx context.Context, email string) (*model.Identity, error) {
	for i := range p.users {
		if p.users[i].Email == email {
			found := p.users[i]
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

// DefaultDirectory returns the mock user table the hub ships with.
func DefaultDirectory() []model.Identity {
	return []model.Identity{
		{Email: "employee@gmail.com", Password: "1234", Role: model.RoleEmployee, Country: "NZ", Department: "Operations"},
		{Email: "admin@gmail.com", Password: "admin", Role: model.RoleAdmin, Country: "AU", Department: "HR"},
	}
}
