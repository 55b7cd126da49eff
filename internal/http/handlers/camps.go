package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"medcamp/internal/domain"
	"medcamp/internal/sqlinline"
)

type campRequest struct {
	CampName               string `json:"camp_name"`
	DateTime               string `json:"date_time"`
	Location               string `json:"location"`
	HealthcareProfessional string `json:"healthcare_professional"`
	CampFees               string `json:"camp_fees"`
	Description            string `json:"description"`
	Image                  string `json:"image"`
	// Honored only on update, and only when explicitly provided.
	ParticipantCount *int `json:"participant_count"`
}

// CampsSearch lists camps, optionally filtered by a case-insensitive
// substring across name, date and professional.
func (a *App) CampsSearch(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	rows, err := a.SQL.Query(r.Context(), sqlinline.QSearchCamps, search)
	if err != nil {
		a.Logger.Error().Err(err).Msg("search camps failed")
		a.fail(w, err, "Internal Server Error")
		return
	}
	defer rows.Close()

	camps, err := collectCamps(rows)
	if err != nil {
		a.fail(w, err, "Internal Server Error")
		return
	}
	a.json(w, http.StatusOK, camps)
}

func (a *App) CampsGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		a.fail(w, domain.ErrValidation, "Invalid camp ID")
		return
	}

	var c domain.Camp
	err := a.SQL.QueryRow(r.Context(), sqlinline.QSelectCampByID, id).
		Scan(&c.ID, &c.CampName, &c.DateTime, &c.Location, &c.HealthcareProfessional,
			&c.CampFees, &c.Description, &c.Image, &c.ParticipantCount, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		a.fail(w, domain.ErrNotFound, "Camp not found")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Msg("fetch camp failed")
		a.fail(w, err, "Internal Server Error")
		return
	}
	a.json(w, http.StatusOK, c)
}

// CampsPopular returns the six camps with the most participants.
func (a *App) CampsPopular(w http.ResponseWriter, r *http.Request) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QSelectPopularCamps)
	if err != nil {
		a.Logger.Error().Err(err).Msg("fetch popular camps failed")
		a.fail(w, err, "Internal Server Error")
		return
	}
	defer rows.Close()

	camps, err := collectCamps(rows)
	if err != nil {
		a.fail(w, err, "Internal Server Error")
		return
	}
	a.json(w, http.StatusOK, camps)
}

// CampsCreate inserts a camp with its participant count forced to zero.
func (a *App) CampsCreate(w http.ResponseWriter, r *http.Request) {
	var req campRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, domain.ErrValidation, "invalid payload")
		return
	}

	var id string
	err := a.SQL.QueryRow(r.Context(), sqlinline.QInsertCamp,
		req.CampName, req.DateTime, req.Location, req.HealthcareProfessional,
		req.CampFees, req.Description, req.Image).Scan(&id)
	if err != nil {
		a.Logger.Error().Err(err).Msg("insert camp failed")
		a.json(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Failed to add camp",
		})
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"success":    true,
		"message":    "Camp added successfully",
		"insertedId": id,
	})
}

func (a *App) CampsUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		a.fail(w, domain.ErrValidation, "Invalid camp ID")
		return
	}
	var req campRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, domain.ErrValidation, "invalid payload")
		return
	}

	tag, err := a.SQL.Exec(r.Context(), sqlinline.QUpdateCamp, id,
		req.CampName, req.Image, req.CampFees, req.DateTime, req.Location,
		req.HealthcareProfessional, req.Description, req.ParticipantCount)
	if err != nil {
		a.Logger.Error().Err(err).Msg("update camp failed")
		a.json(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Server error while updating camp",
		})
		return
	}
	if tag.RowsAffected() == 0 {
		a.json(w, http.StatusNotFound, map[string]any{
			"success": false,
			"message": "No camp found or data unchanged",
		})
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Camp updated successfully",
	})
}

func (a *App) CampsDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		a.fail(w, domain.ErrValidation, "Invalid camp ID")
		return
	}

	tag, err := a.SQL.Exec(r.Context(), sqlinline.QDeleteCamp, id)
	if err != nil {
		a.Logger.Error().Err(err).Msg("delete camp failed")
		a.fail(w, err, "Internal Server Error")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"deletedCount": tag.RowsAffected()})
}

func collectCamps(rows pgx.Rows) ([]domain.Camp, error) {
	camps := []domain.Camp{}
	for rows.Next() {
		var c domain.Camp
		if err := rows.Scan(&c.ID, &c.CampName, &c.DateTime, &c.Location, &c.HealthcareProfessional,
			&c.CampFees, &c.Description, &c.Image, &c.ParticipantCount, &c.CreatedAt); err != nil {
			return nil, err
		}
		camps = append(camps, c)
	}
	return camps, rows.Err()
}
