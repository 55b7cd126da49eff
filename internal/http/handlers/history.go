package handlers

import (
	"net/http"

	"medcamp/internal/domain"
	"medcamp/internal/sqlinline"
)

// History defaults used when a payment references a participant that no
// longer exists. The payment row itself is never dropped from the statement.
const (
	historyNameDefault = "N/A"
	historyFeesDefault = "0"
)

type participantSummary struct {
	campName           string
	campFees           string
	confirmationStatus string
	paymentStatus      string
}

// PaymentHistory joins a user's payments against their originating
// participant records, one entry per payment.
func (a *App) PaymentHistory(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		a.fail(w, domain.ErrValidation, "Email is required")
		return
	}

	payments, err := a.paymentsForEmail(r, email)
	if err != nil {
		a.Logger.Error().Err(err).Msg("load payments failed")
		a.fail(w, err, "Server Error")
		return
	}

	participantIDs := make([]string, 0, len(payments))
	seen := make(map[string]struct{}, len(payments))
	for _, p := range payments {
		if _, ok := seen[p.ParticipantID]; ok {
			continue
		}
		seen[p.ParticipantID] = struct{}{}
		participantIDs = append(participantIDs, p.ParticipantID)
	}

	summaries := map[string]participantSummary{}
	if len(participantIDs) > 0 {
		summaries, err = a.participantSummaries(r, participantIDs)
		if err != nil {
			a.Logger.Error().Err(err).Msg("load participants failed")
			a.fail(w, err, "Server Error")
			return
		}
	}

	history := make([]domain.HistoryEntry, 0, len(payments))
	for _, p := range payments {
		entry := domain.HistoryEntry{
			TransactionID:      p.TransactionID,
			PaidAt:             p.PaidAt,
			CampName:           historyNameDefault,
			CampFees:           historyFeesDefault,
			ConfirmationStatus: string(domain.ConfirmationPending),
			PaymentStatus:      string(domain.PaymentPending),
		}
		if s, ok := summaries[p.ParticipantID]; ok {
			entry.CampName = s.campName
			entry.CampFees = s.campFees
			entry.ConfirmationStatus = s.confirmationStatus
			entry.PaymentStatus = s.paymentStatus
		}
		history = append(history, entry)
	}

	a.json(w, http.StatusOK, history)
}

func (a *App) paymentsForEmail(r *http.Request, email string) ([]domain.Payment, error) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QSelectPaymentsByEmail, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.ParticipantID, &p.Email, &p.Amount, &p.PaymentMethod,
			&p.TransactionID, &p.PaidAt, &p.PaidAtString); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (a *App) participantSummaries(r *http.Request, ids []string) (map[string]participantSummary, error) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QSelectParticipantsByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make(map[string]participantSummary, len(ids))
	for rows.Next() {
		var id string
		var s participantSummary
		if err := rows.Scan(&id, &s.campName, &s.campFees, &s.confirmationStatus, &s.paymentStatus); err != nil {
			return nil, err
		}
		summaries[id] = s
	}
	return summaries, rows.Err()
}
