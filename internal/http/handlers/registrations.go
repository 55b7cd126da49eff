package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"medcamp/internal/domain"
	"medcamp/internal/infra"
	"medcamp/internal/sqlinline"
)

type registerRequest struct {
	CampID                 string         `json:"camp_id"`
	ParticipantEmail       string         `json:"participant_email"`
	ParticipantName        string         `json:"participant_name"`
	CampName               string         `json:"camp_name"`
	CampFees               string         `json:"camp_fees"`
	HealthcareProfessional string         `json:"healthcare_professional"`
	DateTime               string         `json:"date_time"`
	Properties             map[string]any `json:"properties"`
}

// ParticipantRegister inserts a registration and bumps the camp's
// participant count in the same transaction. A registration against a camp
// id that no longer exists still commits; the response flag tells the caller
// the counter was not touched.
func (a *App) ParticipantRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, domain.ErrValidation, "invalid payload")
		return
	}
	if req.CampID == "" || req.ParticipantEmail == "" {
		a.fail(w, domain.ErrValidation, "Missing camp_id or participant_email")
		return
	}
	if _, err := uuid.Parse(req.CampID); err != nil {
		a.fail(w, domain.ErrValidation, "Invalid camp_id")
		return
	}

	var insertedID string
	var counterUpdated bool
	err := a.SQL.WithTx(r.Context(), func(tx infra.SQLExecutor) error {
		err := tx.QueryRow(r.Context(), sqlinline.QInsertParticipant,
			req.CampID, req.ParticipantEmail, req.ParticipantName, req.CampName,
			req.CampFees, req.HealthcareProfessional, req.DateTime,
			string(domain.ConfirmationPending), string(domain.PaymentPending),
			propsJSON(req.Properties)).Scan(&insertedID)
		if err != nil {
			return err
		}
		tag, err := tx.Exec(r.Context(), sqlinline.QIncrementCampCount, req.CampID)
		if err != nil {
			return err
		}
		counterUpdated = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("register participant failed")
		a.fail(w, err, "Internal Server Error")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"message":                 "Participant added successfully",
		"insertedId":              insertedID,
		"participantCountUpdated": counterUpdated,
	})
}

func (a *App) ParticipantGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "participantId")
	if _, err := uuid.Parse(id); err != nil {
		a.fail(w, domain.ErrValidation, "Invalid participant ID")
		return
	}

	p, err := scanParticipant(a.SQL.QueryRow(r.Context(), sqlinline.QSelectParticipantByID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		a.fail(w, domain.ErrNotFound, "Participant not found")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Msg("fetch participant failed")
		a.fail(w, err, "Server error")
		return
	}
	a.json(w, http.StatusOK, p)
}

// ParticipantsList returns one user's registrations, optionally narrowed by
// a case-insensitive substring across the display fields.
func (a *App) ParticipantsList(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	search := r.URL.Query().Get("search")
	if email == "" {
		a.fail(w, domain.ErrValidation, "Email required")
		return
	}

	rows, err := a.SQL.Query(r.Context(), sqlinline.QListParticipantsByEmail, email, search)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list participants failed")
		a.fail(w, err, "Internal Server Error")
		return
	}
	defer rows.Close()

	participants, err := collectParticipants(rows)
	if err != nil {
		a.fail(w, err, "Internal Server Error")
		return
	}
	a.json(w, http.StatusOK, participants)
}

// RegisteredCampsList is the administrative listing of every registration.
func (a *App) RegisteredCampsList(w http.ResponseWriter, r *http.Request) {
	campName := r.URL.Query().Get("camp_name")

	rows, err := a.SQL.Query(r.Context(), sqlinline.QListParticipantsAdmin, campName)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list registrations failed")
		a.fail(w, err, "Internal Server Error")
		return
	}
	defer rows.Close()

	participants, err := collectParticipants(rows)
	if err != nil {
		a.fail(w, err, "Internal Server Error")
		return
	}
	a.json(w, http.StatusOK, participants)
}

// RegistrationConfirm sets confirmation_status to Confirmed. Re-confirming a
// confirmed registration is a no-op write.
func (a *App) RegistrationConfirm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		a.fail(w, domain.ErrValidation, "Invalid participant ID")
		return
	}

	tag, err := a.SQL.Exec(r.Context(), sqlinline.QConfirmParticipant, id, string(domain.ConfirmationConfirmed))
	if err != nil {
		a.Logger.Error().Err(err).Msg("confirm registration failed")
		a.fail(w, err, "Internal Server Error")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"success":       true,
		"modifiedCount": tag.RowsAffected(),
	})
}

// RegistrationCancel deletes the registration and decrements the camp's
// participant count in the same transaction. The decrement clamps at zero.
func (a *App) RegistrationCancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		a.fail(w, domain.ErrValidation, "Invalid participant ID")
		return
	}

	var counterUpdated bool
	err := a.SQL.WithTx(r.Context(), func(tx infra.SQLExecutor) error {
		var campID string
		if err := tx.QueryRow(r.Context(), sqlinline.QSelectParticipantCampID, id).Scan(&campID); err != nil {
			return err
		}
		if _, err := tx.Exec(r.Context(), sqlinline.QDeleteParticipant, id); err != nil {
			return err
		}
		tag, err := tx.Exec(r.Context(), sqlinline.QDecrementCampCount, campID)
		if err != nil {
			return err
		}
		counterUpdated = tag.RowsAffected() > 0
		return nil
	})
	if errors.Is(err, pgx.ErrNoRows) {
		a.fail(w, domain.ErrNotFound, "Participant not found")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Msg("cancel registration failed")
		a.fail(w, err, "Internal Server Error")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"message":                 "Registration canceled and camp updated",
		"deleted":                 true,
		"participantCountUpdated": counterUpdated,
	})
}

func scanParticipant(row pgx.Row) (domain.Participant, error) {
	var p domain.Participant
	var props []byte
	err := row.Scan(&p.ID, &p.CampID, &p.ParticipantEmail, &p.ParticipantName, &p.CampName,
		&p.CampFees, &p.HealthcareProfessional, &p.DateTime, &p.ConfirmationStatus,
		&p.PaymentStatus, &props, &p.CreatedAt)
	if err != nil {
		return domain.Participant{}, err
	}
	p.Properties = unmarshalProps(props)
	return p, nil
}

func collectParticipants(rows pgx.Rows) ([]domain.Participant, error) {
	participants := []domain.Participant{}
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}
