package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dashsoft/identity-api/internal/config"
	"github.com/dashsoft/identity-api/internal/platform/logger"
	"github.com/dashsoft/identity-api/internal/service/auth"
	"github.com/dashsoft/identity-api/internal/store"
)

// newRouter assembles the HTTP surface: the configured health-check
// endpoint and the token issuance endpoint.
func newRouter(cfg *config.CompleteConfiguration, db *sql.DB, users store.UserStore, log *slog.Logger) (http.Handler, error) {
	tokens, err := auth.NewTokenService(cfg.JWT)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(logger.WithLogger(req.Context(), log)))
		})
	})

	hc := cfg.Application.HealthCheck
	if hc == nil || hc.Enabled {
		endpoint := "/health"
		if hc != nil && hc.Endpoint != "" {
			endpoint = hc.Endpoint
		}
		r.Get(endpoint, healthHandler(db, hc))
	}

	r.Post("/auth/token", tokenHandler(users, tokens, auth.NewBcryptVerifier()))

	return r, nil
}

// healthHandler reports liveness by pinging the database within the
// configured timeout.
func healthHandler(db *sql.DB, hc *config.HealthCheckConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		if hc != nil && hc.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, hc.Timeout)
			defer cancel()
		}

		if err := db.PingContext(ctx); err != nil {
			logger.FromContext(req.Context()).Error("health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// tokenHandler authenticates a user by email and password and issues a
// signed access token. Lookup misses and password mismatches produce the
// same response so the endpoint does not leak which emails exist.
func tokenHandler(users store.UserStore, tokens *auth.TokenService, verifier auth.PasswordVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		log := logger.FromContext(req.Context())

		var body tokenRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Email == "" || body.Password == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email and password are required"})
			return
		}

		user, err := users.GetByEmail(req.Context(), body.Email)
		if err != nil {
			if !errors.Is(err, store.ErrUserNotFound) {
				log.Error("user lookup failed", "error", err)
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
				return
			}
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			return
		}

		if err := verifier.Compare(user.HashedPassword, body.Password); err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			return
		}

		token, err := tokens.GenerateToken(req.Context(), user.ID)
		if err != nil {
			log.Error("token issuance failed", "error", err, "user_id", user.ID)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
			return
		}

		writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "Bearer"})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
