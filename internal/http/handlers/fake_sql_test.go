package handlers

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"medcamp/internal/infra"
)

// fakeSQL is a programmable TxSQLExecutor. WithTx simply runs the function
// against the same fake, matching how a transaction-scoped runner behaves.
type fakeSQL struct {
	execFn     func(query string, args ...any) (pgconn.CommandTag, error)
	queryRowFn func(query string, args ...any) pgx.Row
	queryFn    func(query string, args ...any) (pgx.Rows, error)
	txErr      error
}

func (f *fakeSQL) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	if f.execFn == nil {
		return pgconn.CommandTag{}, errors.New("unexpected exec")
	}
	return f.execFn(query, args...)
}

func (f *fakeSQL) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	if f.queryRowFn == nil {
		return rowStub(nil)
	}
	return f.queryRowFn(query, args...)
}

// rowStub satisfies pgx.Row from a bare scan function; the nil stub reports
// no rows, matching a miss on a single-row query.
type rowStub func(dest ...any) error

func (f rowStub) Scan(dest ...any) error {
	if f == nil {
		return pgx.ErrNoRows
	}
	return f(dest...)
}

// rowsStubBase fills in the pgx.Rows surface the handler scans never touch.
type rowsStubBase struct{}

func (rowsStubBase) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (rowsStubBase) Conn() *pgx.Conn { return nil }

func (rowsStubBase) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (rowsStubBase) Values() ([]any, error) {
	return nil, errors.New("values not supported in row stubs")
}

func (rowsStubBase) RawValues() [][]byte { return nil }

func (f *fakeSQL) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	if f.queryFn == nil {
		return nil, errors.New("unexpected query")
	}
	return f.queryFn(query, args...)
}

func (f *fakeSQL) WithTx(ctx context.Context, fn func(infra.SQLExecutor) error) error {
	if f.txErr != nil {
		return f.txErr
	}
	return fn(f)
}

var _ infra.TxSQLExecutor = (*fakeSQL)(nil)

// scanRows serves pre-baked rows to pgx.Rows consumers.
type scanRows struct {
	rowsStubBase
	idx  int
	rows []func(dest ...any) error
}

func (r *scanRows) Next() bool { return r.idx < len(r.rows) }

func (r *scanRows) Scan(dest ...any) error {
	fn := r.rows[r.idx]
	r.idx++
	return fn(dest...)
}

func (r *scanRows) Close() {}

func (r *scanRows) Err() error { return nil }

func setString(dest any, v string) { *(dest.(*string)) = v }
