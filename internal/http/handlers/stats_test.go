package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"medcamp/internal/domain"
	"medcamp/internal/sqlinline"
)

func recentParticipantScan(id, campName string, createdAt time.Time) func(dest ...any) error {
	return func(dest ...any) error {
		setString(dest[0], id)
		setString(dest[1], testCampID)
		setString(dest[2], "alice@example.com")
		setString(dest[3], "Alice")
		setString(dest[4], campName)
		setString(dest[5], "120")
		setString(dest[6], "Dr. Rahman")
		setString(dest[7], "2025-06-01")
		*(dest[8].(*domain.ConfirmationStatus)) = domain.ConfirmationPending
		*(dest[9].(*domain.PaymentStatus)) = domain.PaymentPending
		*(dest[10].(*[]byte)) = nil
		*(dest[11].(*time.Time)) = createdAt
		return nil
	}
}

func TestAdminStatsAggregates(t *testing.T) {
	now := time.Now()
	sql := &fakeSQL{
		queryRowFn: func(query string, args ...any) pgx.Row {
			if query != sqlinline.QAdminStatsSummary {
				t.Fatalf("unexpected query row: %q", query)
			}
			return rowStub(func(dest ...any) error {
				*(dest[0].(*int64)) = 4
				*(dest[1].(*int64)) = 12
				*(dest[2].(*float64)) = 600
				return nil
			})
		},
		queryFn: func(query string, args ...any) (pgx.Rows, error) {
			if query != sqlinline.QRecentParticipants {
				t.Fatalf("unexpected query: %q", query)
			}
			return &scanRows{rows: []func(dest ...any) error{
				recentParticipantScan(testParticipantID, "Eye Camp", now),
			}}, nil
		},
	}
	app := &App{SQL: sql}

	req := httptest.NewRequest("GET", "/admin-stats", nil)
	rr := httptest.NewRecorder()

	app.AdminStats(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		TotalCamps         int64                `json:"totalCamps"`
		TotalParticipants  int64                `json:"totalParticipants"`
		TotalPayments      float64              `json:"totalPayments"`
		RecentParticipants []domain.Participant `json:"recentParticipants"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TotalCamps != 4 || resp.TotalParticipants != 12 || resp.TotalPayments != 600 {
		t.Fatalf("totals = %+v", resp)
	}
	if len(resp.RecentParticipants) != 1 || resp.RecentParticipants[0].CampName != "Eye Camp" {
		t.Fatalf("recentParticipants = %+v", resp.RecentParticipants)
	}
}

func TestUserStatsRequiresEmail(t *testing.T) {
	app := &App{SQL: &fakeSQL{}}

	req := httptest.NewRequest("GET", "/user-stats", nil)
	rr := httptest.NewRecorder()

	app.UserStats(rr, req)

	if rr.Code != 400 {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestUserStatsCountsConfirmed(t *testing.T) {
	app := &App{SQL: &fakeSQL{
		queryRowFn: func(query string, args ...any) pgx.Row {
			if query != sqlinline.QUserStats {
				t.Fatalf("unexpected query row: %q", query)
			}
			if args[0] != "alice@example.com" {
				t.Fatalf("email arg = %v", args[0])
			}
			if args[1] != string(domain.ConfirmationConfirmed) {
				t.Fatalf("status arg = %v, want Confirmed", args[1])
			}
			return rowStub(func(dest ...any) error {
				*(dest[0].(*int64)) = 3
				*(dest[1].(*int64)) = 2
				return nil
			})
		},
	}}

	req := httptest.NewRequest("GET", "/user-stats?email=alice@example.com", nil)
	rr := httptest.NewRecorder()

	app.UserStats(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp struct {
		TotalRegisteredCamps int64 `json:"totalRegisteredCamps"`
		ConfirmedCamps       int64 `json:"confirmedCamps"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TotalRegisteredCamps != 3 || resp.ConfirmedCamps != 2 {
		t.Fatalf("counts = %+v", resp)
	}
}
