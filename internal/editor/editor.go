// internal/editor/editor.go

// Package editor implements the single reusable add/edit form shared by both
// catalogs, as a state machine: Closed, or Open with a target kind and a
// create/edit mode.
package editor

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jaepaama/Employeehub/internal/domain"
	"github.com/jaepaama/Employeehub/internal/model"
	"github.com/jaepaama/Employeehub/internal/store"
)

type Kind string

const (
	KindTraining Kind = "training"
	KindPolicy   Kind = "policy"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// State is a snapshot of the editor. The zero value is Closed.
type State struct {
	Open     bool   `json:"open"`
	Kind     Kind   `json:"kind,omitempty"`
	Mode     Mode   `json:"mode,omitempty"`
	TargetID int64  `json:"target_id,omitempty"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

type saveInput struct {
	Title string `validate:"required"`
	Body  string `validate:"required"`
}

// Editor drives the modal form against the hub. It exists only between open
// and close/save; nothing here is persisted.
type Editor struct {
	mu       sync.Mutex
	hub      *store.Hub
	validate *validator.Validate
	state    State
}

func New(hub *store.Hub) *Editor {
	return &Editor{
		hub:      hub,
		validate: validator.New(),
	}
}

// State returns a snapshot of the editor.
func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Open transitions to Open for the given kind. A nil targetID means create
// mode with blank fields; otherwise the target's title/body are preloaded.
// Non-admin identities are a no-op and the editor stays Closed, as does an
// edit target that no longer exists.
func (e *Editor) Open(kind Kind, targetID *int64) {
	if !e.hub.CurrentIdentity().IsAdmin() {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if targetID == nil {
		e.state = State{Open: true, Kind: kind, Mode: ModeCreate}
		return
	}

	title, body, err := e.loadTarget(kind, *targetID)
	if err != nil {
		e.state = State{}
		return
	}

	e.state = State{
		Open:     true,
		Kind:     kind,
		Mode:     ModeEdit,
		TargetID: *targetID,
		Title:    title,
		Body:     body,
	}
}

// SaveResult describes the item a successful Save wrote, for audit purposes.
// A nil result with a nil error means the edit target vanished and the editor
// simply closed.
type SaveResult struct {
	Kind  Kind
	Mode  Mode
	ID    int64
	Title string
}

// Save validates the submitted fields and upserts into the hub. Validation
// failures keep the editor Open with the submitted draft retained; success
// transitions to Closed. Saving onto a target deleted in the meantime closes
// the editor without error.
func (e *Editor) Save(title, body string) (*SaveResult, error) {
	if !e.hub.CurrentIdentity().IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.Open {
		return nil, domain.ErrEditorClosed
	}

	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)

	if err := e.validate.Struct(saveInput{Title: title, Body: body}); err != nil {
		e.state.Title = title
		e.state.Body = body
		return nil, fmt.Errorf("%w: title and body are required", domain.ErrMissingField)
	}

	var result *SaveResult

	switch e.state.Kind {
	case KindTraining:
		if e.state.Mode == ModeEdit {
			existing, err := e.hub.FindTrainingModule(e.state.TargetID)
			if err != nil {
				break
			}
			existing.Title = title
			existing.Body = body
			saved := e.hub.UpsertTrainingModule(existing)
			result = &SaveResult{Kind: KindTraining, Mode: ModeEdit, ID: saved.ID, Title: saved.Title}
			break
		}
		saved := e.hub.UpsertTrainingModule(&model.TrainingModule{
			Title:       title,
			Body:        body,
			Countries:   append([]string(nil), store.DefaultCountries...),
			Departments: append([]string(nil), store.DefaultDepartments...),
			CompletedBy: []string{},
		})
		result = &SaveResult{Kind: KindTraining, Mode: ModeCreate, ID: saved.ID, Title: saved.Title}

	case KindPolicy:
		if e.state.Mode == ModeEdit {
			existing, err := e.hub.FindPolicy(e.state.TargetID)
			if err != nil {
				break
			}
			existing.Title = title
			existing.Body = body
			saved := e.hub.UpsertPolicy(existing)
			result = &SaveResult{Kind: KindPolicy, Mode: ModeEdit, ID: saved.ID, Title: saved.Title}
			break
		}
		saved := e.hub.UpsertPolicy(&model.Policy{Title: title, Body: body})
		result = &SaveResult{Kind: KindPolicy, Mode: ModeCreate, ID: saved.ID, Title: saved.Title}
	}

	e.state = State{}
	return result, nil
}

// Close discards any edits from any Open state.
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = State{}
}

func (e *Editor) loadTarget(kind Kind, id int64) (title, body string, err error) {
	switch kind {
	case KindTraining:
		m, err := e.hub.FindTrainingModule(id)
		if err != nil {
			return "", "", err
		}
		return m.Title, m.Body, nil
	case KindPolicy:
		p, err := e.hub.FindPolicy(id)
		if err != nil {
			return "", "", err
		}
		return p.Title, p.Body, nil
	}
	return "", "", domain.ErrInvalidInput
}
