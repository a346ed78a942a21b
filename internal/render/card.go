// internal/render/card.go

// Package render turns filtered catalogs into display cards. Title and body
// are carried as plain text and must never be interpreted as markup; admin
// entered content reaches the client verbatim.
package render

import (
	"github.com/jaepaama/Employeehub/internal/model"
	"github.com/jaepaama/Employeehub/internal/visibility"
)

type CardKind string

const (
	KindTraining    CardKind = "training"
	KindPolicy      CardKind = "policy"
	KindPlaceholder CardKind = "placeholder"
)

const (
	noTrainingMessage = "No training modules available for your location/department."
	noPoliciesMessage = "No policies available."
)

// Card is one rendered catalog entry plus the affordances the current
// identity is allowed to act on.
type Card struct {
	Kind  CardKind `json:"kind"`
	ID    int64    `json:"id,omitempty"`
	Title string   `json:"title,omitempty"`
	Body  string   `json:"body"`

	Completed   bool `json:"completed,omitempty"`
	CanComplete bool `json:"can_complete,omitempty"`
	CanEdit     bool `json:"can_edit,omitempty"`
	CanDelete   bool `json:"can_delete,omitempty"`
}

// TrainingCards renders the training catalog for the given identity.
func TrainingCards(ident *model.Identity, modules []*model.TrainingModule) []Card {
	visible := visibility.TrainingModules(ident, modules)
	if len(visible) == 0 {
		return []Card{{Kind: KindPlaceholder, Body: noTrainingMessage}}
	}

	isAdmin := ident.IsAdmin()
	cards := make([]Card, 0, len(visible))
	for _, m := range visible {
		completed := m.CompletedByEmail(ident.Email)
		cards = append(cards, Card{
			Kind:        KindTraining,
			ID:          m.ID,
			Title:       m.Title,
			Body:        m.Body,
			Completed:   completed,
			CanComplete: !completed,
			CanEdit:     isAdmin,
			CanDelete:   isAdmin,
		})
	}
	return cards
}

// PolicyCards renders the policy catalog for the given identity.
func PolicyCards(ident *model.Identity, policies []*model.Policy) []Card {
	visible := visibility.Policies(ident, policies)
	if len(visible) == 0 {
		return []Card{{Kind: KindPlaceholder, Body: noPoliciesMessage}}
	}

	isAdmin := ident.IsAdmin()
	cards := make([]Card, 0, len(visible))
	for _, p := range visible {
		cards = append(cards, Card{
			Kind:      KindPolicy,
			ID:        p.ID,
			Title:     p.Title,
			Body:      p.Body,
			CanEdit:   isAdmin,
			CanDelete: isAdmin,
		})
	}
	return cards
}
