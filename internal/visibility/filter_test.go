package visibility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaepaama/Employeehub/internal/model"
	"github.com/jaepaama/Employeehub/internal/visibility"
)

func induction() *model.TrainingModule {
	return &model.TrainingModule{
		ID:          1,
		Title:       "Induction",
		Body:        "Welcome to company induction.",
		Countries:   []string{"NZ", "AU", "SG", "BE"},
		Departments: []string{"Operations", "HR"},
		CompletedBy: []string{},
	}
}

func TestTrainingModules(t *testing.T) {
	modules := []*model.TrainingModule{induction()}

	tests := []struct {
		name    string
		ident   *model.Identity
		visible bool
	}{
		{"country and department match", &model.Identity{Country: "NZ", Department: "Operations"}, true},
		{"department mismatch", &model.Identity{Country: "NZ", Department: "Finance"}, false},
		{"country mismatch", &model.Identity{Country: "US", Department: "Operations"}, false},
		{"both mismatch", &model.Identity{Country: "US", Department: "Finance"}, false},
		{"nil identity", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible := visibility.TrainingModules(tt.ident, modules)
			if tt.visible {
				assert.Len(t, visible, 1)
			} else {
				assert.Empty(t, visible)
			}
		})
	}
}

func TestTrainingModulesPreserveOrder(t *testing.T) {
	modules := []*model.TrainingModule{
		{ID: 1, Countries: []string{"NZ"}, Departments: []string{"Operations"}},
		{ID: 2, Countries: []string{"AU"}, Departments: []string{"Operations"}},
		{ID: 3, Countries: []string{"NZ"}, Departments: []string{"Operations"}},
	}
	ident := &model.Identity{Country: "NZ", Department: "Operations"}

	visible := visibility.TrainingModules(ident, modules)
	assert.Len(t, visible, 2)
	assert.Equal(t, int64(1), visible[0].ID)
	assert.Equal(t, int64(3), visible[1].ID)
}

func TestPolicies(t *testing.T) {
	policies := []*model.Policy{
		{ID: 1, Title: "Health & Safety Policy"},
		{ID: 2, Title: "Code of Conduct"},
	}

	t.Run("any authenticated identity sees every policy", func(t *testing.T) {
		for _, ident := range []*model.Identity{
			{Email: "employee@gmail.com", Country: "NZ", Department: "Operations"},
			{Email: "admin@gmail.com", Role: model.RoleAdmin, Country: "AU", Department: "HR"},
		} {
			visible := visibility.Policies(ident, policies)
			assert.Len(t, visible, 2)
			assert.Equal(t, int64(1), visible[0].ID)
		}
	})

	t.Run("no identity sees nothing", func(t *testing.T) {
		assert.Empty(t, visibility.Policies(nil, policies))
	})
}
