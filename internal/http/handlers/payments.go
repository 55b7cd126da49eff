package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"medcamp/internal/domain"
	"medcamp/internal/infra"
	"medcamp/internal/sqlinline"
)

type paymentIntentRequest struct {
	AmountInCents int64 `json:"amountInCents"`
}

// PaymentIntentCreate delegates to the payment processor and returns the
// client secret the frontend confirms.
func (a *App) PaymentIntentCreate(w http.ResponseWriter, r *http.Request) {
	var req paymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, domain.ErrValidation, "invalid payload")
		return
	}
	if req.AmountInCents <= 0 {
		a.fail(w, domain.ErrValidation, "amountInCents must be positive")
		return
	}

	secret, err := a.Payments.CreateIntent(r.Context(), req.AmountInCents)
	if err != nil {
		a.Logger.Error().Err(err).Msg("create payment intent failed")
		a.fail(w, err, "Failed to create payment intent")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"clientSecret": secret})
}

type recordPaymentRequest struct {
	ParticipantID string  `json:"participantId"`
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	TransactionID string  `json:"transactionId"`
}

// PaymentsRecord stores the captured payment and flips the participant's
// payment status to Paid in the same transaction. The payment row carries
// both a machine-sortable timestamp and its ISO string form.
func (a *App) PaymentsRecord(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, domain.ErrValidation, "invalid payload")
		return
	}
	if req.ParticipantID == "" {
		a.fail(w, domain.ErrValidation, "Missing participantId")
		return
	}
	if _, err := uuid.Parse(req.ParticipantID); err != nil {
		a.fail(w, domain.ErrValidation, "Invalid participantId")
		return
	}

	var paymentID, paidAtString string
	var paidAt time.Time
	var statusUpdated bool
	err := a.SQL.WithTx(r.Context(), func(tx infra.SQLExecutor) error {
		err := tx.QueryRow(r.Context(), sqlinline.QInsertPayment,
			req.ParticipantID, req.Email, req.Amount, req.PaymentMethod, req.TransactionID).
			Scan(&paymentID, &paidAt, &paidAtString)
		if err != nil {
			return err
		}
		tag, err := tx.Exec(r.Context(), sqlinline.QSetParticipantPaid, req.ParticipantID, string(domain.PaymentPaid))
		if err != nil {
			return err
		}
		statusUpdated = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("record payment failed")
		a.fail(w, err, "Payment processing failed")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"insertedId":           paymentID,
		"paid_at":              paidAt,
		"paid_at_string":       paidAtString,
		"paymentStatusUpdated": statusUpdated,
	})
}
