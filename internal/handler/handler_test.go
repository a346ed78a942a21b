package handler_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaepaama/Employeehub/internal/audit"
	"github.com/jaepaama/Employeehub/internal/auth"
	"github.com/jaepaama/Employeehub/internal/editor"
	"github.com/jaepaama/Employeehub/internal/handler"
	"github.com/jaepaama/Employeehub/internal/identity"
	"github.com/jaepaama/Employeehub/internal/middleware"
	"github.com/jaepaama/Employeehub/internal/notify"
	"github.com/jaepaama/Employeehub/internal/service"
	"github.com/jaepaama/Employeehub/internal/store"
	"github.com/jaepaama/Employeehub/internal/theme"
)

type testServer struct {
	router *chi.Mux
	hub    *store.Hub
}

// newTestServer wires the handlers through the same route layout and
// middleware chain the api binary uses.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.Default()
	directory := identity.NewStaticProvider(identity.DefaultDirectory())
	hub := store.NewHub(directory)
	ed := editor.New(hub)

	tokenManager := auth.NewTokenManager("test_secret", time.Hour)
	sessions := service.NewSessionCache(service.SessionConfig{
		TTL:         time.Hour,
		CleanupFreq: time.Minute,
	})
	t.Cleanup(sessions.Close)

	themes, err := theme.NewStore(filepath.Join(t.TempDir(), "theme.json"))
	require.NoError(t, err)

	hubService := service.NewHubService(
		hub,
		ed,
		directory,
		tokenManager,
		sessions,
		notify.NewLog(logger),
		audit.NewMemoryLogger(logger),
		themes,
		nil,
		logger,
	)

	authHandler := handler.NewAuthHandler(hubService)
	catalogHandler := handler.NewCatalogHandler(hubService)
	editorHandler := handler.NewEditorHandler(hubService)
	themeHandler := handler.NewThemeHandler(hubService)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.LoginHandler)
		r.Post("/auth/password/reset", authHandler.PasswordResetHandler)

		r.Get("/theme", themeHandler.GetHandler)
		r.Put("/theme", themeHandler.PutHandler)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokenManager, sessions, hub))

			r.Post("/auth/logout", authHandler.LogoutHandler)

			r.Get("/training", catalogHandler.ListTraining)
			r.Post("/training/{id}/complete", catalogHandler.CompleteTraining)
			r.Get("/policies", catalogHandler.ListPolicies)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(hub))

				r.Delete("/training/{id}", catalogHandler.DeleteTraining)
				r.Delete("/policies/{id}", catalogHandler.DeletePolicy)

				r.Route("/editor", func(r chi.Router) {
					r.Get("/", editorHandler.StateHandler)
					r.Post("/open", editorHandler.OpenHandler)
					r.Post("/save", editorHandler.SaveHandler)
					r.Post("/close", editorHandler.CloseHandler)
				})

				r.Get("/audit", catalogHandler.AuditTrail)
			})
		})
	})

	return &testServer{router: r, hub: hub}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) login(t *testing.T, email, password string) string {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeCards(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var resp struct {
		Ok    bool                     `json:"ok"`
		Cards []map[string]interface{} `json:"cards"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Cards
}

func TestLoginEndpoint(t *testing.T) {
	ts := newTestServer(t)

	t.Run("valid credentials", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "admin@gmail.com",
			"password": "admin",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handler.LoginResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Ok)
		assert.NotEmpty(t, resp.Token)
		require.NotNil(t, resp.Identity)
		assert.Equal(t, "admin@gmail.com", resp.Identity.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "admin@gmail.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed payload", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	ts := newTestServer(t)

	t.Run("no token", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/training", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/training", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("revoked after logout", func(t *testing.T) {
		token := ts.login(t, "employee@gmail.com", "1234")

		rec := ts.do(t, http.MethodPost, "/api/auth/logout", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = ts.do(t, http.MethodGet, "/api/training", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestTrainingEndpoints(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "employee@gmail.com", "1234")

	rec := ts.do(t, http.MethodGet, "/api/training", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cards := decodeCards(t, rec)
	require.Len(t, cards, 2)

	rec = ts.do(t, http.MethodPost, "/api/training/1/complete", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cards = decodeCards(t, rec)
	for _, card := range cards {
		if card["id"].(float64) == 1 {
			assert.Equal(t, true, card["completed"])
		}
	}

	rec = ts.do(t, http.MethodPost, "/api/training/999/complete", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminRoutesForbiddenForEmployee(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "employee@gmail.com", "1234")

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/api/policies/1?confirm=true"},
		{http.MethodDelete, "/api/training/1?confirm=true"},
		{http.MethodPost, "/api/editor/open"},
		{http.MethodGet, "/api/audit"},
	} {
		rec := ts.do(t, tc.method, tc.path, token, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code, "%s %s", tc.method, tc.path)
	}

	assert.Len(t, ts.hub.Policies(), 2)
	assert.Len(t, ts.hub.TrainingModules(), 2)
}

func TestDeleteConfirmation(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		ts := newTestServer(t)
		token := ts.login(t, "admin@gmail.com", "admin")

		rec := ts.do(t, http.MethodDelete, "/api/policies/1?confirm=true", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeCards(t, rec), 1)
		assert.Len(t, ts.hub.Policies(), 1)
	})

	t.Run("declined", func(t *testing.T) {
		ts := newTestServer(t)
		token := ts.login(t, "admin@gmail.com", "admin")

		rec := ts.do(t, http.MethodDelete, "/api/policies/1", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeCards(t, rec), 2)
		assert.Len(t, ts.hub.Policies(), 2)
	})
}

func TestEditorEndpoints(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "admin@gmail.com", "admin")

	rec := ts.do(t, http.MethodPost, "/api/editor/open", token, map[string]string{"kind": "policy"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.EditorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.State.Open)

	// Blank title: 422, editor still open, body draft retained.
	rec = ts.do(t, http.MethodPost, "/api/editor/save", token, map[string]string{
		"title": "",
		"body":  "draft body",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp = handler.EditorResponse{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.State.Open)
	assert.Equal(t, "draft body", resp.State.Body)

	rec = ts.do(t, http.MethodPost, "/api/editor/save", token, map[string]string{
		"title": "Expenses",
		"body":  "How to claim expenses.",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	resp = handler.EditorResponse{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.State.Open)
	assert.Len(t, ts.hub.Policies(), 3)

	// Saving again with the editor closed conflicts.
	rec = ts.do(t, http.MethodPost, "/api/editor/save", token, map[string]string{
		"title": "X",
		"body":  "Y",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/editor/open", token, map[string]string{"kind": "banana"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestThemeEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/theme", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.ThemeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, theme.Light, resp.Theme)

	rec = ts.do(t, http.MethodPut, "/api/theme", "", map[string]string{"theme": "dark"})
	require.Equal(t, http.StatusOK, rec.Code)
	resp = handler.ThemeResponse{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, theme.Dark, resp.Theme)

	rec = ts.do(t, http.MethodPut, "/api/theme", "", map[string]string{"theme": "sepia"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPasswordResetEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/auth/password/reset", "", map[string]string{
		"email": "employee@gmail.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Unknown addresses get the same response.
	rec = ts.do(t, http.MethodPost, "/api/auth/password/reset", "", map[string]string{
		"email": "nobody@example.com",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}
