// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/jaepaama/Employeehub/internal/audit"
	"github.com/jaepaama/Employeehub/internal/auth"
	"github.com/jaepaama/Employeehub/internal/config"
	"github.com/jaepaama/Employeehub/internal/editor"
	"github.com/jaepaama/Employeehub/internal/email"
	"github.com/jaepaama/Employeehub/internal/handler"
	"github.com/jaepaama/Employeehub/internal/identity"
	"github.com/jaepaama/Employeehub/internal/middleware"
	"github.com/jaepaama/Employeehub/internal/notify"
	"github.com/jaepaama/Employeehub/internal/service"
	"github.com/jaepaama/Employeehub/internal/store"
	"github.com/jaepaama/Employeehub/internal/theme"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	_ = godotenv.Load()
	cfg := config.Load()

	// Theme preference store, read once at startup
	themeStore, err := theme.NewStore(cfg.Theme.Path)
	if err != nil {
		return fmt.Errorf("opening theme store: %w", err)
	}

	// Identity provider and session store
	directory := identity.NewStaticProvider(identity.DefaultDirectory())
	hub := store.NewHub(directory)
	ed := editor.New(hub)

	// Auth services
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)
	sessions := service.NewSessionCache(service.SessionConfig{
		TTL:         cfg.JWT.ExpiryPeriod,
		CleanupFreq: 1 * time.Minute,
	})
	defer sessions.Close()

	// Notification hook: log-only unless an email provider is configured
	notifier, emailService, err := setupNotifier(cfg, logger)
	if err != nil {
		return fmt.Errorf("setting up notifier: %w", err)
	}

	// Audit trail for admin catalog mutations
	auditLog := audit.NewMemoryLogger(logger)

	// Hub service
	hubService := service.NewHubService(
		hub,
		ed,
		directory,
		tokenManager,
		sessions,
		notifier,
		auditLog,
		themeStore,
		emailService,
		logger,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(hubService)
	catalogHandler := handler.NewCatalogHandler(hubService)
	editorHandler := handler.NewEditorHandler(hubService)
	themeHandler := handler.NewThemeHandler(hubService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))

			r.Post("/auth/login", authHandler.LoginHandler)
			r.Post("/auth/password/reset", authHandler.PasswordResetHandler)
		})

		// Theme preference is independent of the session
		r.Get("/theme", themeHandler.GetHandler)
		r.Put("/theme", themeHandler.PutHandler)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokenManager, sessions, hub))

			r.Post("/auth/logout", authHandler.LogoutHandler)

			r.Get("/training", catalogHandler.ListTraining)
			r.Post("/training/{id}/complete", catalogHandler.CompleteTraining)
			r.Get("/policies", catalogHandler.ListPolicies)

			// Admin-only routes
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

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupNotifier(cfg *config.Config, logger *slog.Logger) (notify.Notifier, *email.Service, error) {
	switch cfg.Notify.Provider {
	case "sendgrid", "smtp":
		emailService, err := email.NewEmailService(cfg, email.Provider(cfg.Notify.Provider))
		if err != nil {
			return nil, nil, fmt.Errorf("initializing email service: %w", err)
		}
		return notify.NewEmail(emailService, cfg.Notify.HRAddress), emailService, nil
	default:
		return notify.NewLog(logger), nil, nil
	}
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Write([]byte(`{"error":"error encountered"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
