// internal/store/hub.go
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/jaepaama/Employeehub/internal/domain"
	"github.com/jaepaama/Employeehub/internal/identity"
	"github.com/jaepaama/Employeehub/internal/model"
)

// Hub holds the current authenticated identity and the two mutable catalogs.
// Catalogs are seeded once at construction and live for the process lifetime;
// logout clears the identity but never touches catalog state.
type Hub struct {
	mu       sync.Mutex
	provider identity.Provider

	current  *model.Identity
	training []*model.TrainingModule
	policies []*model.Policy

	nextTrainingID int64
	nextPolicyID   int64
}

func NewHub(provider identity.Provider) *Hub {
	h := &Hub{provider: provider}
	h.seed()
	return h
}

// Authenticate checks submitted credentials against the identity provider and
// replaces the current identity on success.
func (h *Hub) Authenticate(ctx context.Context, email, password string) (*model.Identity, error) {
	ident, err := h.provider.FindByCredentials(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("finding identity: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = ident

	found := *ident
	return &found, nil
}

// CurrentIdentity returns the active identity, or nil when logged out.
func (h *Hub) CurrentIdentity() *model.Identity {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == nil {
		return nil
	}
	found := *h.current
	return &found
}

// Logout clears the current identity. Catalogs are left intact.
func (h *Hub) Logout() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = nil
}

// canMutate is the single authorization rule for catalog mutations.
func canMutate(ident *model.Identity) bool {
	return ident.IsAdmin()
}

// UpsertTrainingModule creates or replaces a module. An ID of zero allocates
// a fresh unique ID. Non-admin callers are a silent no-op and get nil back.
func (h *Hub) UpsertTrainingModule(m *model.TrainingModule) *model.TrainingModule {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !canMutate(h.current) {
		return nil
	}

	stored := m.Clone()
	if stored.ID == 0 {
		stored.ID = h.nextTrainingID
		h.nextTrainingID++
		h.training = append(h.training, stored)
		return stored.Clone()
	}

	for i, existing := range h.training {
		if existing.ID == stored.ID {
			h.training[i] = stored
			return stored.Clone()
		}
	}

	if stored.ID >= h.nextTrainingID {
		h.nextTrainingID = stored.ID + 1
	}
	h.training = append(h.training, stored)
	return stored.Clone()
}

// DeleteTrainingModule removes a module by ID. Missing IDs and non-admin
// callers are both silent no-ops.
func (h *Hub) DeleteTrainingModule(id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !canMutate(h.current) {
		return
	}

	kept := h.training[:0]
	for _, m := range h.training {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	h.training = kept
}

// UpsertPolicy creates or replaces a policy; same contract as the training
// variant.
func (h *Hub) UpsertPolicy(p *model.Policy) *model.Policy {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !canMutate(h.current) {
		return nil
	}

	stored := p.Clone()
	if stored.ID == 0 {
		stored.ID = h.nextPolicyID
		h.nextPolicyID++
		h.policies = append(h.policies, stored)
		return stored.Clone()
	}

	for i, existing := range h.policies {
		if existing.ID == stored.ID {
			h.policies[i] = stored
			return stored.Clone()
		}
	}

	if stored.ID >= h.nextPolicyID {
		h.nextPolicyID = stored.ID + 1
	}
	h.policies = append(h.policies, stored)
	return stored.Clone()
}

func (h *Hub) DeletePolicy(id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !canMutate(h.current) {
		return
	}

	kept := h.policies[:0]
	for _, p := range h.policies {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	h.policies = kept
}

// MarkCompleted adds the email to the module's completion set. Idempotent:
// the returned bool reports whether the set actually changed, so callers can
// fire the completion notification exactly once.
func (h *Hub) MarkCompleted(moduleID int64, email string) (*model.TrainingModule, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == nil {
		return nil, false, domain.ErrNotAuthenticated
	}

	for _, m := range h.training {
		if m.ID != moduleID {
			continue
		}
		if m.CompletedByEmail(email) {
			return m.Clone(), false, nil
		}
		m.CompletedBy = append(m.CompletedBy, email)
		return m.Clone(), true, nil
	}

	return nil, false, domain.ErrModuleNotFound
}

// TrainingModules returns a deep copy of the catalog in insertion order.
func (h *Hub) TrainingModules() []*model.TrainingModule {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]*model.TrainingModule, 0, len(h.training))
	for _, m := range h.training {
		out = append(out, m.Clone())
	}
	return out
}

// Policies returns a deep copy of the catalog in insertion order.
func (h *Hub) Policies() []*model.Policy {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]*model.Policy, 0, len(h.policies))
	for _, p := range h.policies {
		out = append(out, p.Clone())
	}
	return out
}

func (h *Hub) FindTrainingModule(id int64) (*model.TrainingModule, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, m := range h.training {
		if m.ID == id {
			return m.Clone(), nil
		}
	}
	return nil, domain.ErrModuleNotFound
}

func (h *Hub) FindPolicy(id int64) (*model.Policy, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, p := range h.policies {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return nil, domain.ErrPolicyNotFound
}
