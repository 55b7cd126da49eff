package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"medcamp/internal/domain"
	"medcamp/internal/sqlinline"
)

type volunteerRequest struct {
	Name         string `json:"name"`
	Contact      string `json:"contact"`
	Role         string `json:"role"`
	Availability string `json:"availability"`
}

func (a *App) VolunteersList(w http.ResponseWriter, r *http.Request) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListVolunteers)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list volunteers failed")
		a.fail(w, err, "Internal Server Error")
		return
	}
	defer rows.Close()

	items := []domain.Volunteer{}
	for rows.Next() {
		var v domain.Volunteer
		if err := rows.Scan(&v.ID, &v.Name, &v.Contact, &v.Role, &v.Availability, &v.CreatedAt); err != nil {
			a.fail(w, err, "Internal Server Error")
			return
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		a.fail(w, err, "Internal Server Error")
		return
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) VolunteersCreate(w http.ResponseWriter, r *http.Request) {
	var req volunteerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, domain.ErrValidation, "invalid payload")
		return
	}
	if req.Name == "" || req.Contact == "" || req.Role == "" || req.Availability == "" {
		a.fail(w, domain.ErrValidation, "All fields required")
		return
	}

	var id string
	err := a.SQL.QueryRow(r.Context(), sqlinline.QInsertVolunteer,
		req.Name, req.Contact, req.Role, req.Availability).Scan(&id)
	if err != nil {
		a.Logger.Error().Err(err).Msg("insert volunteer failed")
		a.fail(w, err, "Internal Server Error")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"insertedId": id})
}

func (a *App) VolunteersDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		a.fail(w, domain.ErrValidation, "Invalid volunteer ID")
		return
	}

	tag, err := a.SQL.Exec(r.Context(), sqlinline.QDeleteVolunteer, id)
	if err != nil {
		a.Logger.Error().Err(err).Msg("delete volunteer failed")
		a.fail(w, err, "Internal Server Error")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"deletedCount": tag.RowsAffected()})
}
