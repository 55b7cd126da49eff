package handlers

import (
	"encoding/json"
	"net/http"

	"medcamp/internal/domain"
	"medcamp/internal/sqlinline"
)

type feedbackRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	CampName string `json:"camp_name"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

func (a *App) FeedbackCreate(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, domain.ErrValidation, "invalid payload")
		return
	}

	var id string
	err := a.SQL.QueryRow(r.Context(), sqlinline.QInsertFeedback,
		req.Name, req.Email, req.CampName, req.Rating, req.Comment).Scan(&id)
	if err != nil {
		a.Logger.Error().Err(err).Msg("insert feedback failed")
		a.fail(w, err, "Internal Server Error")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"insertedId": id})
}

func (a *App) FeedbackList(w http.ResponseWriter, r *http.Request) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListFeedback)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list feedback failed")
		a.fail(w, err, "Failed to load feedbacks")
		return
	}
	defer rows.Close()

	items := []domain.Feedback{}
	for rows.Next() {
		var f domain.Feedback
		if err := rows.Scan(&f.ID, &f.Name, &f.Email, &f.CampName, &f.Rating, &f.Comment, &f.CreatedAt); err != nil {
			a.fail(w, err, "Failed to load feedbacks")
			return
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		a.fail(w, err, "Failed to load feedbacks")
		return
	}
	a.json(w, http.StatusOK, items)
}
