package handlers

import (
	"net/http"

	"medcamp/internal/domain"
	"medcamp/internal/sqlinline"
)

// AdminStats aggregates platform-wide counts for the dashboard.
func (a *App) AdminStats(w http.ResponseWriter, r *http.Request) {
	var totalCamps, totalParticipants int64
	var totalPayments float64
	err := a.SQL.QueryRow(r.Context(), sqlinline.QAdminStatsSummary).
		Scan(&totalCamps, &totalParticipants, &totalPayments)
	if err != nil {
		a.Logger.Error().Err(err).Msg("load admin stats failed")
		a.fail(w, err, "Internal Server Error")
		return
	}

	rows, err := a.SQL.Query(r.Context(), sqlinline.QRecentParticipants)
	if err != nil {
		a.Logger.Error().Err(err).Msg("load recent participants failed")
		a.fail(w, err, "Internal Server Error")
		return
	}
	defer rows.Close()

	recent, err := collectParticipants(rows)
	if err != nil {
		a.fail(w, err, "Internal Server Error")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"totalCamps":         totalCamps,
		"totalParticipants":  totalParticipants,
		"totalPayments":      totalPayments,
		"recentParticipants": recent,
	})
}

// UserStats counts one user's registrations and how many are confirmed.
func (a *App) UserStats(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		a.fail(w, domain.ErrValidation, "Email is required")
		return
	}

	var totalRegistered, confirmed int64
	err := a.SQL.QueryRow(r.Context(), sqlinline.QUserStats,
		email, string(domain.ConfirmationConfirmed)).Scan(&totalRegistered, &confirmed)
	if err != nil {
		a.Logger.Error().Err(err).Msg("load user stats failed")
		a.fail(w, err, "Failed to load user stats")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"totalRegisteredCamps": totalRegistered,
		"confirmedCamps":       confirmed,
	})
}
