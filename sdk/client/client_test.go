package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	// Test with nil config
	client := NewClient(nil)
	if client.config.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected default BaseURL, got %s", client.config.BaseURL)
	}
	if client.client != http.DefaultClient {
		t.Error("Expected default HTTP client")
	}

	// Test with custom config
	customConfig := &Config{
		BaseURL:    "http://example.com",
		Timeout:    5 * time.Second,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
	client = NewClient(customConfig)
	if client.config.BaseURL != "http://example.com" {
		t.Errorf("Expected custom BaseURL, got %s", client.config.BaseURL)
	}
	if client.config.Timeout != 5*time.Second {
		t.Errorf("Expected custom timeout, got %v", client.config.Timeout)
	}
	if client.client != customConfig.HTTPClient {
		t.Error("Expected custom HTTP client")
	}
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("Expected /api/auth/login path, got %s", r.URL.Path)
		}

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		if req.Email != "admin@gmail.com" || req.Password != "admin" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid email or password"})
			return
		}

		resp := LoginResponse{
			Ok:       true,
			Identity: &Identity{Email: req.Email, Role: "admin", Country: "AU", Department: "HR"},
			Token:    "session-token",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(&Config{
		BaseURL: server.URL,
	})

	// Test valid credentials
	resp, err := client.Login(context.Background(), "admin@gmail.com", "admin")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Identity.Email != "admin@gmail.com" {
		t.Errorf("Unexpected identity: %+v", resp.Identity)
	}
	if client.Token() != "session-token" {
		t.Errorf("Expected stored token, got %q", client.Token())
	}

	// Test wrong credentials
	if _, err := client.Login(context.Background(), "admin@gmail.com", "wrong"); err == nil {
		t.Error("Expected error for wrong credentials")
	}

	// Test missing fields
	if _, err := client.Login(context.Background(), "", "admin"); err == nil {
		t.Error("Expected error for missing email")
	}
}

func TestListTraining(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		if r.URL.Path != "/api/training" {
			t.Errorf("Expected /api/training path, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer session-token" {
			t.Errorf("Expected bearer token header, got %q", r.Header.Get("Authorization"))
		}

		resp := CatalogResponse{
			Ok: true,
			Cards: []Card{
				{Kind: "training", ID: 1, Title: "Induction", Body: "Welcome.", CanComplete: true},
				{Kind: "training", ID: 2, Title: "Health & Safety", Body: "Stay safe.", Completed: true},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(&Config{
		BaseURL: server.URL,
	})
	client.SetToken("session-token")

	resp, err := client.ListTraining(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(resp.Cards) != 2 {
		t.Errorf("Expected 2 cards, got %d", len(resp.Cards))
	}
	if resp.Cards[0].Title != "Induction" || !resp.Cards[0].CanComplete {
		t.Errorf("Unexpected card: %+v", resp.Cards[0])
	}
	if !resp.Cards[1].Completed {
		t.Errorf("Unexpected card: %+v", resp.Cards[1])
	}
}

func TestDeleteTraining(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("Expected DELETE request, got %s", r.Method)
		}
		if r.URL.Path != "/api/training/1" {
			t.Errorf("Expected /api/training/1 path, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("confirm") != "true" {
			t.Errorf("Expected confirm=true, got %q", r.URL.Query().Get("confirm"))
		}

		resp := CatalogResponse{Ok: true, Cards: []Card{}}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(&Config{
		BaseURL: server.URL,
	})
	client.SetToken("session-token")

	if _, err := client.DeleteTraining(context.Background(), 1, true); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Test missing id
	if _, err := client.DeleteTraining(context.Background(), 0, true); err == nil {
		t.Error("Expected error for missing module id")
	}
}

func TestSaveEditorValidation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/editor/save" {
			t.Errorf("Expected /api/editor/save path, got %s", r.URL.Path)
		}

		var req SaveEditorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if req.Title == "" {
			// Editor stays open with the retained draft.
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(EditorResponse{
				State: EditorState{Open: true, Kind: "policy", Mode: "create", Body: req.Body},
			})
			return
		}

		json.NewEncoder(w).Encode(EditorResponse{Ok: true, State: EditorState{Open: false}})
	}))
	defer server.Close()

	client := NewClient(&Config{
		BaseURL: server.URL,
	})
	client.SetToken("session-token")

	// Blank title: error carries the retained editor state
	resp, err := client.SaveEditor(context.Background(), "", "draft body")
	if err == nil {
		t.Fatal("Expected validation error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422 APIError, got %v", err)
	}
	if resp == nil || !resp.State.Open || resp.State.Body != "draft body" {
		t.Errorf("Expected retained editor state, got %+v", resp)
	}

	// Valid save closes the editor
	resp, err = client.SaveEditor(context.Background(), "Expenses", "How to claim expenses.")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.State.Open {
		t.Error("Expected editor to close after save")
	}
}

func TestAuditTrail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/audit" {
			t.Errorf("Expected /api/audit path, got %s", r.URL.Path)
		}

		resp := AuditResponse{
			Ok: true,
			Entries: []AuditEntry{
				{ID: "a", Actor: "admin@gmail.com", Action: "delete", Kind: "policy", TargetID: 1, Title: "Code of Conduct", OccurredAt: time.Now()},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(&Config{
		BaseURL: server.URL,
	})
	client.SetToken("session-token")

	entries, err := client.AuditTrail(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(entries) != 1 || entries[0].Action != "delete" {
		t.Errorf("Unexpected entries: %+v", entries)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	current := "light"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/theme" {
			t.Errorf("Expected /api/theme path, got %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(ThemeResponse{Ok: true, Theme: current})
		case http.MethodPut:
			var req map[string]string
			json.NewDecoder(r.Body).Decode(&req)
			if req["theme"] != "dark" && req["theme"] != "light" {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "Theme must be dark or light"})
				return
			}
			current = req["theme"]
			json.NewEncoder(w).Encode(ThemeResponse{Ok: true, Theme: current})
		}
	}))
	defer server.Close()

	client := NewClient(&Config{
		BaseURL: server.URL,
	})

	if err := client.SetTheme(context.Background(), "dark"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	theme, err := client.Theme(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if theme != "dark" {
		t.Errorf("Expected dark theme, got %s", theme)
	}

	if err := client.SetTheme(context.Background(), "sepia"); err == nil {
		t.Error("Expected error for unknown theme")
	}
}

func TestErrorHandling(t *testing.T) {
	// Test server error with invalid JSON response
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("{invalid json"))
	}))
	defer server.Close()

	client := NewClient(&Config{
		BaseURL: server.URL,
	})
	client.SetToken("session-token")

	if _, err := client.ListPolicies(context.Background()); err == nil {
		t.Error("Expected error for invalid JSON response")
	}

	// Test unauthorized response
	unauthServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Please log in again"})
	}))
	defer unauthServer.Close()

	unauthClient := NewClient(&Config{
		BaseURL: unauthServer.URL,
	})

	_, err := unauthClient.ListTraining(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Please log in again" {
		t.Errorf("Unexpected message: %s", apiErr.Message)
	}
}
