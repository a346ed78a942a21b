// internal/visibility/filter.go

// Package visibility implements the eligibility rule deciding which catalog
// entries an identity may see. Both filters are pure and are re-evaluated on
// every render since catalogs change between calls.
package visibility

import "github.com/jaepaama/Employeehub/internal/model"

// TrainingModules returns, in catalog order, exactly the modules whose
// country and department sets both contain the identity's attributes.
func TrainingModules(ident *model.Identity, modules []*model.TrainingModule) []*model.TrainingModule {
	visible := make([]*model.TrainingModule, 0, len(modules))
	for _, m := range modules {
		if m.VisibleTo(ident) {
			visible = append(visible, m)
		}
	}
	return visible
}

// Policies returns all policies in catalog order. Policies carry no
// eligibility filter; any authenticated identity sees every one.
func Policies(ident *model.Identity, policies []*model.Policy) []*model.Policy {
	if ident == nil {
		return []*model.Policy{}
	}
	visible := make([]*model.Policy, 0, len(policies))
	visible = append(visible, policies...)
	return visible
}
