// internal/model/training.go
package model

import "slices"

// TrainingModule is a catalog entry visible only to identities whose country
// and department both match its eligibility sets. CompletedBy is a
// unique-valued set of employee emails that only ever grows.
type TrainingModule struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	Countries   []string `json:"countries"`
	Departments []string `json:"departments"`
	CompletedBy []string `json:"completed_by"`
}

// VisibleTo reports whether the identity may see this module.
func (m *TrainingModule) VisibleTo(identity *Identity) bool {
	if identity == nil {
		return false
	}
	return slices.Contains(m.Countries, identity.Country) &&
		slices.Contains(m.Departments, identity.Department)
}

// CompletedByEmail reports whether the email already marked this module done.
func (m *TrainingModule) CompletedByEmail(email string) bool {
	return slices.Contains(m.CompletedBy, email)
}

// Clone returns a deep copy so callers can't alias the store's slices.
func (m *TrainingModule) Clone() *TrainingModule {
	c := *m
	c.Countries = slices.Clone(m.Countries)
	c.Departments = slices.Clone(m.Departments)
	c.CompletedBy = slices.Clone(m.CompletedBy)
	return &c
}
