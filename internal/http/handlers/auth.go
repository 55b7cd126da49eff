package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"medcamp/internal/domain"
	"medcamp/internal/middleware"
)

type issueTokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// IssueToken signs a 7-day bearer token for the posted identity.
func (a *App) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req issueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, domain.ErrValidation, "invalid payload")
		return
	}
	if req.Email == "" {
		a.fail(w, domain.ErrValidation, "Email is required")
		return
	}
	token, err := middleware.SignToken(a.JWTSecret, req.Email, req.Name, time.Now())
	if err != nil {
		a.Logger.Error().Err(err).Msg("sign token failed")
		a.fail(w, err, "failed to sign token")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"token": token})
}
