// internal/store/seed.go
package store

import "github.com/jaepaama/Employeehub/internal/model"

// DefaultCountries and DefaultDepartments are the eligibility sets applied to
// training modules created through the editor.
var (
	DefaultCountries   = []string{"NZ", "AU", "SG", "BE"}
	DefaultDepartments = []string{"Operations", "HR"}
)

func (h *Hub) seed() {
	h.training = []*model.TrainingModule{
		{
			ID:          1,
			Title:       "Induction",
			Body:        "Welcome to company induction.",
			Countries:   []string{"NZ", "AU", "SG", "BE"},
			Departments: []string{"Operations", "HR"},
			CompletedBy: []string{},
		},
		{
			ID:          2,
			Title:       "Health & Safety",
			Body:        "Mandatory safety training.",
			Countries:   []string{"NZ", "AU"},
			Departments: []string{"Operations"},
			CompletedBy: []string{},
		},
	}
	h.policies = []*model.Policy{
		{ID: 1, Title: "Health & Safety Policy", Body: "Follow company safety rules."},
		{ID: 2, Title: "Code of Conduct", Body: "Maintain professional behavior."},
	}

	h.nextTrainingID = 3
	h.nextPolicyID = 3
}
