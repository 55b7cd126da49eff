package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"medcamp/internal/domain"
	"medcamp/internal/sqlinline"
)

func TestUsersCreateRequiresEmail(t *testing.T) {
	app := &App{SQL: &fakeSQL{}}

	req := httptest.NewRequest("POST", "/users", strings.NewReader(`{"name":"Alice"}`))
	rr := httptest.NewRecorder()

	app.UsersCreate(rr, req)

	if rr.Code != 400 {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestUsersCreateInsertsNewUser(t *testing.T) {
	sql := &fakeSQL{
		queryRowFn: func(query string, args ...any) pgx.Row {
			if query != sqlinline.QInsertUserIfAbsent {
				t.Fatalf("unexpected query row: %q", query)
			}
			if args[3] != string(domain.UserRoleUser) {
				t.Fatalf("role arg = %v, want %q", args[3], domain.UserRoleUser)
			}
			return rowStub(func(dest ...any) error {
				setString(dest[0], "3c2b1a09-8877-4665-9443-322110ffeedd")
				return nil
			})
		},
	}
	app := &App{SQL: sql}

	req := httptest.NewRequest("POST", "/users", strings.NewReader(`{"email":"alice@example.com","name":"Alice"}`))
	rr := httptest.NewRecorder()

	app.UsersCreate(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp struct {
		Inserted   bool   `json:"inserted"`
		InsertedID string `json:"insertedId"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Inserted || resp.InsertedID == "" {
		t.Fatalf("response = %+v, want inserted with id", resp)
	}
}

func TestUsersCreateIsNoopForKnownEmail(t *testing.T) {
	app := &App{SQL: &fakeSQL{
		queryRowFn: func(query string, args ...any) pgx.Row {
			// on conflict do nothing returns no row for an existing email.
			return rowStub(nil)
		},
	}}

	req := httptest.NewRequest("POST", "/users", strings.NewReader(`{"email":"alice@example.com"}`))
	rr := httptest.NewRecorder()

	app.UsersCreate(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp struct {
		Inserted bool   `json:"inserted"`
		Message  string `json:"message"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Inserted {
		t.Fatal("inserted = true for an existing email")
	}
	if resp.Message != "User already exists" {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestUsersGetUnknownEmail(t *testing.T) {
	app := &App{SQL: &fakeSQL{
		queryRowFn: func(query string, args ...any) pgx.Row {
			return rowStub(nil)
		},
	}}

	req := httptest.NewRequest("GET", "/users?email=ghost@example.com", nil)
	rr := httptest.NewRecorder()

	app.UsersGet(rr, req)

	if rr.Code != 404 {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestUsersPatchReportsNoChanges(t *testing.T) {
	app := &App{SQL: &fakeSQL{
		execFn: func(query string, args ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		},
	}}

	req := httptest.NewRequest("PATCH", "/users?email=alice@example.com", strings.NewReader(`{"name":"Alice"}`))
	rr := httptest.NewRecorder()

	app.UsersPatch(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Fatal("success = true for a no-op patch")
	}
}

func TestUsersPatchDistinguishesOmittedAndEmptyFields(t *testing.T) {
	var captured []any
	app := &App{SQL: &fakeSQL{
		execFn: func(query string, args ...any) (pgconn.CommandTag, error) {
			if query != sqlinline.QUpdateUserProfile {
				t.Fatalf("unexpected exec: %q", query)
			}
			captured = args
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}}

	// name is omitted, photoURL is explicitly cleared.
	req := httptest.NewRequest("PATCH", "/users?email=alice@example.com", strings.NewReader(`{"photoURL":""}`))
	rr := httptest.NewRecorder()

	app.UsersPatch(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if name := captured[1].(*string); name != nil {
		t.Fatalf("omitted name arg = %q, want null", *name)
	}
	photo := captured[2].(*string)
	if photo == nil || *photo != "" {
		t.Fatalf("cleared photoURL arg = %v, want pointer to empty string", photo)
	}
	var resp struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatal("success = false for a changed patch")
	}
}

func TestUsersRoleDefaultsToUser(t *testing.T) {
	app := &App{SQL: &fakeSQL{
		queryRowFn: func(query string, args ...any) pgx.Row {
			if query != sqlinline.QSelectUserRoleByEmail {
				t.Fatalf("unexpected query row: %q", query)
			}
			return rowStub(func(dest ...any) error {
				*(dest[0].(*domain.UserRole)) = domain.UserRoleUser
				return nil
			})
		},
	}}

	req := httptest.NewRequest("GET", "/users/role?email=alice@example.com", nil)
	rr := httptest.NewRecorder()

	app.UsersRole(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Role != "user" {
		t.Fatalf("role = %q, want %q", resp.Role, "user")
	}
}
