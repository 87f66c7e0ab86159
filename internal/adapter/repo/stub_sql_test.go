package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rahmanshaon/A10-civic-clean-server/internal/domain"
)

type call struct {
	query string
	args  []any
}

// stubSQL records every call and answers from canned issues.
type stubSQL struct {
	calls    []call
	issues   []domain.Issue
	affected int64
	execErr  error
}

func (s *stubSQL) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	s.calls = append(s.calls, call{query: query, args: args})
	if s.execErr != nil {
		return pgconn.CommandTag{}, s.execErr
	}
	return pgconn.NewCommandTag(fmt.Sprintf("UPDATE %d", s.affected)), nil
}

func (s *stubSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	s.calls = append(s.calls, call{query: query, args: args})
	if len(s.issues) == 0 {
		return stubRow{err: pgx.ErrNoRows}
	}
	issue := s.issues[0]
	return stubRow{scan: func(dest ...any) error { return scanIssueInto(issue, dest) }}
}

func (s *stubSQL) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	s.calls = append(s.calls, call{query: query, args: args})
	return &issueRows{issues: s.issues}, nil
}

type stubRow struct {
	scan func(dest ...any) error
	err  error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return r.scan(dest...)
}

func scanIssueInto(issue domain.Issue, dest []any) error {
	if len(dest) != 10 {
		return fmt.Errorf("unexpected scan args: %d", len(dest))
	}
	*dest[0].(*string) = issue.ID
	*dest[1].(**string) = issue.Title
	*dest[2].(**string) = issue.Category
	*dest[3].(**string) = issue.Description
	*dest[4].(**float64) = issue.Amount
	*dest[5].(**string) = issue.Location
	*dest[6].(**string) = issue.Image
	*dest[7].(**string) = issue.Status
	*dest[8].(*string) = issue.Email
	*dest[9].(*time.Time) = issue.Date
	return nil
}

type issueRows struct {
	issues []domain.Issue
	idx    int
}

func (r *issueRows) Next() bool {
	if r.idx >= len(r.issues) {
		return false
	}
	r.idx++
	return true
}

func (r *issueRows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.issues) {
		return pgx.ErrNoRows
	}
	return scanIssueInto(r.issues[r.idx-1], dest)
}

func (r *issueRows) Err() error { return nil }

func (r *issueRows) Close() {}

func (r *issueRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (r *issueRows) Conn() *pgx.Conn { return nil }

func (r *issueRows) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (r *issueRows) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

func (r *issueRows) RawValues() [][]byte { return nil }
