// internal/service/hub.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jaepaama/Employeehub/internal/audit"
	"github.com/jaepaama/Employeehub/internal/auth"
	"github.com/jaepaama/Employeehub/internal/domain"
	"github.com/jaepaama/Employeehub/internal/editor"
	"github.com/jaepaama/Employeehub/internal/email"
	"github.com/jaepaama/Employeehub/internal/email/mailer"
	"github.com/jaepaama/Employeehub/internal/identity"
	"github.com/jaepaama/Employeehub/internal/model"
	"github.com/jaepaama/Employeehub/internal/notify"
	"github.com/jaepaama/Employeehub/internal/render"
	"github.com/jaepaama/Employeehub/internal/store"
	"github.com/jaepaama/Employeehub/internal/theme"
)

// HubService orchestrates the session store, catalog renderer, modal editor
// and the external notification and audit hooks.
type HubService struct {
	hub          *store.Hub
	editor       *editor.Editor
	directory    *identity.StaticProvider
	tokenManager *auth.TokenManager
	sessions     *SessionCache
	notifier     notify.Notifier
	auditLog     audit.Logger
	themes       *theme.Store
	emailService *email.Service
	logger       *slog.Logger
	validate     *validator.Validate
}

func NewHubService(
	hub *store.Hub,
	ed *editor.Editor,
	directory *identity.StaticProvider,
	tokenManager *auth.TokenManager,
	sessions *SessionCache,
	notifier notify.Notifier,
	auditLog audit.Logger,
	themes *theme.Store,
	emailService *email.Service,
	logger *slog.Logger,
) *HubService {
	return &HubService{
		hub:          hub,
		editor:       ed,
		directory:    directory,
		tokenManager: tokenManager,
		sessions:     sessions,
		notifier:     notifier,
		auditLog:     auditLog,
		themes:       themes,
		emailService: emailService,
		logger:       logger,
		validate:     validator.New(),
	}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	Identity *model.Identity `json:"identity"`
	Token    string          `json:"token"`
}

// Login authenticates against the identity provider and issues a session
// token for the new current identity.
func (s *HubService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	ident, err := s.hub.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	token, tokenID, err := s.tokenManager.Generate(ident.Email, string(ident.Role))
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	if err := s.sessions.Put(ctx, tokenID, ident.Email); err != nil {
		return nil, fmt.Errorf("registering session: %w", err)
	}

	return &LoginOutput{
		Identity: ident,
		Token:    token,
	}, nil
}

type LogoutInput struct {
	TokenID string
}

// Logout revokes the session token and clears the current identity. Catalogs
// survive logout.
func (s *HubService) Logout(ctx context.Context, input LogoutInput) error {
	s.sessions.Revoke(ctx, input.TokenID)
	s.hub.Logout()
	s.editor.Close()
	return nil
}

type CatalogOutput struct {
	Cards []render.Card `json:"cards"`
}

// ListTraining renders the training catalog for the current identity.
func (s *HubService) ListTraining(ctx context.Context) (*CatalogOutput, error) {
	ident := s.hub.CurrentIdentity()
	if ident == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return &CatalogOutput{Cards: render.TrainingCards(ident, s.hub.TrainingModules())}, nil
}

// ListPolicies renders the policy catalog for the current identity.
func (s *HubService) ListPolicies(ctx context.Context) (*CatalogOutput, error) {
	ident := s.hub.CurrentIdentity()
	if ident == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return &CatalogOutput{Cards: render.PolicyCards(ident, s.hub.Policies())}, nil
}

type CompleteTrainingInput struct {
	ModuleID int64 `json:"module_id"`
}

// CompleteTraining marks the module done for the current identity and fires
// the HR notification once per actual state change. Re-marking is a no-op.
func (s *HubService) CompleteTraining(ctx context.Context, input CompleteTrainingInput) (*CatalogOutput, error) {
	ident := s.hub.CurrentIdentity()
	if ident == nil {
		return nil, domain.ErrNotAuthenticated
	}

	module, changed, err := s.hub.MarkCompleted(input.ModuleID, ident.Email)
	if err != nil {
		return nil, err
	}

	if changed {
		event := notify.CompletionEvent{
			EmployeeEmail: ident.Email,
			ModuleTitle:   module.Title,
			OccurredAt:    time.Now().UTC(),
		}
		// Fire and forget: delivery failures never surface to the user action.
		if err := s.notifier.CompletionRecorded(ctx, event); err != nil {
			s.logger.ErrorContext(ctx, "completion notification failed", "error", err, "module", module.Title)
		}
	}

	return s.ListTraining(ctx)
}

type DeleteTrainingInput struct {
	ModuleID int64
	// Confirmed carries the result of the blocking yes/no prompt shown
	// before any destructive delete. False leaves the catalog unchanged.
	Confirmed bool
}

func (s *HubService) DeleteTraining(ctx context.Context, input DeleteTrainingInput) (*CatalogOutput, error) {
	ident := s.hub.CurrentIdentity()
	if ident == nil {
		return nil, domain.ErrNotAuthenticated
	}

	if input.Confirmed {
		target, err := s.hub.FindTrainingModule(input.ModuleID)
		s.hub.DeleteTrainingModule(input.ModuleID)
		if err == nil && ident.IsAdmin() {
			s.auditLog.LogCatalogChange(ctx, ident.Email, "delete", "training", target.ID, target.Title)
		}
	}

	return s.ListTraining(ctx)
}

type DeletePolicyInput struct {
	PolicyID  int64
	Confirmed bool
}

func (s *HubService) DeletePolicy(ctx context.Context, input DeletePolicyInput) (*CatalogOutput, error) {
	ident := s.hub.CurrentIdentity()
	if ident == nil {
		return nil, domain.ErrNotAuthenticated
	}

	if input.Confirmed {
		target, err := s.hub.FindPolicy(input.PolicyID)
		s.hub.DeletePolicy(input.PolicyID)
		if err == nil && ident.IsAdmin() {
			s.auditLog.LogCatalogChange(ctx, ident.Email, "delete", "policy", target.ID, target.Title)
		}
	}

	return s.ListPolicies(ctx)
}

type OpenEditorInput struct {
	Kind     string `json:"kind" validate:"required,oneof=training policy"`
	TargetID *int64 `json:"target_id"`
}

type EditorOutput struct {
	State editor.State `json:"state"`
}

// OpenEditor targets the modal editor at a catalog entry, or at a blank
// create form when no target is given.
func (s *HubService) OpenEditor(ctx context.Context, input OpenEditorInput) (*EditorOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	s.editor.Open(editor.Kind(input.Kind), input.TargetID)
	return &EditorOutput{State: s.editor.State()}, nil
}

type SaveEditorInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// SaveEditor validates and commits the modal form. Validation errors keep the
// editor open; a successful save closes it and re-renders the catalog.
func (s *HubService) SaveEditor(ctx context.Context, input SaveEditorInput) (*EditorOutput, error) {
	result, err := s.editor.Save(input.Title, input.Body)
	if err != nil {
		return &EditorOutput{State: s.editor.State()}, err
	}

	if result != nil {
		if ident := s.hub.CurrentIdentity(); ident != nil {
			action := "create"
			if result.Mode == editor.ModeEdit {
				action = "edit"
			}
			s.auditLog.LogCatalogChange(ctx, ident.Email, action, string(result.Kind), result.ID, result.Title)
		}
	}

	return &EditorOutput{State: s.editor.State()}, nil
}

func (s *HubService) CloseEditor(ctx context.Context) *EditorOutput {
	s.editor.Close()
	return &EditorOutput{State: s.editor.State()}
}

func (s *HubService) EditorState(ctx context.Context) *EditorOutput {
	return &EditorOutput{State: s.editor.State()}
}

// AuditTrail returns the recorded catalog mutations, admins only.
func (s *HubService) AuditTrail(ctx context.Context) ([]audit.Entry, error) {
	if !s.hub.CurrentIdentity().IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}
	return s.auditLog.Entries(), nil
}

type PasswordResetInput struct {
	Email string `json:"email" validate:"required,email"`
}

// RequestPasswordReset sends the simulated reset email. The response is the
// same whether or not the address exists in the directory.
func (s *HubService) RequestPasswordReset(ctx context.Context, input PasswordResetInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, err := s.directory.FindByEmail(ctx, input.Email); err != nil {
		s.logger.InfoContext(ctx, "password reset requested for unknown email", "email", input.Email)
		return nil
	}

	if s.emailService == nil {
		s.logger.InfoContext(ctx, "password reset email sent (simulated)", "email", input.Email)
		return nil
	}

	if err := mailer.SendPasswordReset(s.emailService, input.Email); err != nil {
		s.logger.ErrorContext(ctx, "sending password reset email", "error", err, "email", input.Email)
	}
	return nil
}

type ThemeOutput struct {
	Theme string `json:"theme"`
}

func (s *HubService) Theme(ctx context.Context) *ThemeOutput {
	return &ThemeOutput{Theme: s.themes.Theme()}
}

type SetThemeInput struct {
	Theme string `json:"theme" validate:"required,oneof=dark light"`
}

func (s *HubService) SetTheme(ctx context.Context, input SetThemeInput) (*ThemeOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTheme, input.Theme)
	}
	if err := s.themes.SetTheme(input.Theme); err != nil {
		return nil, err
	}
	return &ThemeOutput{Theme: s.themes.Theme()}, nil
}
