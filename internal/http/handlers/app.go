package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"

	"medcamp/internal/domain"
	"medcamp/internal/infra"
	"medcamp/internal/middleware"
	"medcamp/internal/providers/payment"
)

// App is the handler container. Every dependency is injected at startup;
// handlers never reach for process-global state.
type App struct {
	SQL       infra.TxSQLExecutor
	Logger    infra.Logger
	JWTSecret string
	Payments  payment.IntentCreator
}

func NewApp(sql infra.TxSQLExecutor, logger infra.Logger, jwtSecret string, payments payment.IntentCreator) *App {
	return &App{SQL: sql, Logger: logger, JWTSecret: jwtSecret, Payments: payments}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, msg string) {
	a.json(w, status, map[string]string{"error": code, "message": msg})
}

// fail maps domain error sentinels onto the HTTP surface. Single-row store
// lookups surface pgx.ErrNoRows, which classifies as a missing resource.
func (a *App) fail(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		a.error(w, http.StatusBadRequest, "bad_request", msg)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, pgx.ErrNoRows):
		a.error(w, http.StatusNotFound, "not_found", msg)
	case errors.Is(err, domain.ErrUnauthorized):
		a.error(w, http.StatusUnauthorized, "unauthorized", msg)
	case errors.Is(err, domain.ErrForbidden):
		a.error(w, http.StatusForbidden, "forbidden", msg)
	case errors.Is(err, domain.ErrProviderFailure):
		a.error(w, http.StatusInternalServerError, "processing", msg)
	default:
		a.error(w, http.StatusInternalServerError, "internal", msg)
	}
}

func (a *App) currentEmail(r *http.Request) string {
	return middleware.EmailFromContext(r.Context())
}
