package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"

	"medcamp/internal/domain"
	"medcamp/internal/sqlinline"
)

type userUpsertRequest struct {
	Email      string         `json:"email"`
	Name       string         `json:"name"`
	PhotoURL   string         `json:"photoURL"`
	Properties map[string]any `json:"properties"`
}

// UsersCreate inserts the user on first sign-in and is a no-op for known
// emails.
func (a *App) UsersCreate(w http.ResponseWriter, r *http.Request) {
	var req userUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, domain.ErrValidation, "invalid payload")
		return
	}
	if req.Email == "" {
		a.fail(w, domain.ErrValidation, "Email is required")
		return
	}

	props := propsJSON(req.Properties)
	var id string
	err := a.SQL.QueryRow(r.Context(), sqlinline.QInsertUserIfAbsent,
		req.Email, req.Name, req.PhotoURL, string(domain.UserRoleUser), props).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		a.json(w, http.StatusOK, map[string]any{"message": "User already exists", "inserted": false})
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Msg("insert user failed")
		a.fail(w, err, "Internal server error")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"message":    "User inserted successfully",
		"inserted":   true,
		"insertedId": id,
	})
}

func (a *App) UsersGet(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		a.fail(w, domain.ErrValidation, "Email query is required")
		return
	}

	var u domain.User
	var props []byte
	err := a.SQL.QueryRow(r.Context(), sqlinline.QSelectUserByEmail, email).
		Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.Role, &props, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		a.fail(w, domain.ErrNotFound, "User not found")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Msg("fetch user failed")
		a.fail(w, err, "Internal server error")
		return
	}
	u.Properties = unmarshalProps(props)
	a.json(w, http.StatusOK, u)
}

// UsersRole reports the stored role, defaulting to "user".
func (a *App) UsersRole(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		a.fail(w, domain.ErrValidation, "Email is required.")
		return
	}

	var role domain.UserRole
	err := a.SQL.QueryRow(r.Context(), sqlinline.QSelectUserRoleByEmail, email).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		a.fail(w, domain.ErrNotFound, "User not found.")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Msg("fetch role failed")
		a.fail(w, err, "Failed to fetch user role.")
		return
	}
	a.json(w, http.StatusOK, map[string]domain.UserRole{"role": role})
}

type userPatchRequest struct {
	Name       *string        `json:"name"`
	PhotoURL   *string        `json:"photoURL"`
	Properties map[string]any `json:"properties"`
}

// UsersPatch updates only the fields the caller actually sent: absent fields
// stay untouched, explicit values (empty string included) replace the stored
// ones. A patch that changes nothing reports success=false.
func (a *App) UsersPatch(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		a.fail(w, domain.ErrValidation, "Email query required")
		return
	}
	var req userPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, domain.ErrValidation, "invalid payload")
		return
	}

	tag, err := a.SQL.Exec(r.Context(), sqlinline.QUpdateUserProfile, email, req.Name, req.PhotoURL, propsJSON(req.Properties))
	if err != nil {
		a.Logger.Error().Err(err).Msg("patch user failed")
		a.fail(w, err, "Internal server error")
		return
	}
	if tag.RowsAffected() > 0 {
		a.json(w, http.StatusOK, map[string]any{"success": true, "message": "Profile updated"})
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": false, "message": "No changes made"})
}

func propsJSON(props map[string]any) json.RawMessage {
	if len(props) == 0 {
		return json.RawMessage(`{}`)
	}
	b, err := json.Marshal(props)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return b
}

func unmarshalProps(b []byte) map[string]any {
	if len(b) == 0 {
		return nil
	}
	props := map[string]any{}
	if err := json.Unmarshal(b, &props); err != nil {
		return nil
	}
	return props
}
