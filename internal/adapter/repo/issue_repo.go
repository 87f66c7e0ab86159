package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rahmanshaon/A10-civic-clean-server/internal/domain"
	"github.com/rahmanshaon/A10-civic-clean-server/internal/infra"
	"github.com/rahmanshaon/A10-civic-clean-server/internal/sqlinline"
)

// IssueRepositoryPG implements domain.IssueRepository using PostgreSQL.
type IssueRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewIssueRepository creates a new issue repo.
func NewIssueRepository(sql infra.SQLExecutor) *IssueRepositoryPG {
	return &IssueRepositoryPG{sql: sql}
}

// Find lists issues matching q.
func (r *IssueRepositoryPG) Find(ctx context.Context, q domain.IssueQuery) ([]domain.Issue, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListIssues, q.Status, q.Email, q.NewestBy, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Issue, 0)
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan issue: %w", err)
		}
		items = append(items, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	return items, nil
}

// FindByID returns nil without error when the issue does not exist.
func (r *IssueRepositoryPG) FindByID(ctx context.Context, id string) (*domain.Issue, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	issue, err := scanIssue(r.sql.QueryRow(ctx, sqlinline.QSelectIssueByID, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get issue: %w", err)
	}
	return &issue, nil
}

// Insert assigns a new id to issue and stores it.
func (r *IssueRepositoryPG) Insert(ctx context.Context, issue *domain.Issue) (domain.InsertResult, error) {
	id := uuid.NewString()
	_, err := r.sql.Exec(ctx, sqlinline.QInsertIssue, id, issue.Title, issue.Category, issue.Description,
		issue.Amount, issue.Location, issue.Image, issue.Status, issue.Email, issue.Date)
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert issue: %w", err)
	}
	issue.ID = id
	return domain.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// Update replaces the whitelisted columns of the issue with id.
func (r *IssueRepositoryPG) Update(ctx context.Context, id string, upd domain.IssueUpdate) (domain.UpdateResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.UpdateResult{}, domain.ErrInvalidID
	}
	tag, err := r.sql.Exec(ctx, sqlinline.QReplaceIssue, id, upd.Title, upd.Category, upd.Description,
		upd.Amount, upd.Status, upd.Location, upd.Image, upd.Date)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("update issue: %w", err)
	}
	n := tag.RowsAffected()
	return domain.UpdateResult{Acknowledged: true, MatchedCount: n, ModifiedCount: n}, nil
}

// Delete removes the issue with id. Deleting a missing issue is not an error.
func (r *IssueRepositoryPG) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.DeleteResult{}, domain.ErrInvalidID
	}
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteIssue, id)
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("delete issue: %w", err)
	}
	return domain.DeleteResult{Acknowledged: true, DeletedCount: tag.RowsAffected()}, nil
}

// Ping checks connectivity through the same executor the queries use.
func (r *IssueRepositoryPG) Ping(ctx context.Context) error {
	var one int
	return r.sql.QueryRow(ctx, sqlinline.QPing).Scan(&one)
}

func scanIssue(row pgx.Row) (domain.Issue, error) {
	var issue domain.Issue
	err := row.Scan(&issue.ID, &issue.Title, &issue.Category, &issue.Description, &issue.Amount,
		&issue.Location, &issue.Image, &issue.Status, &issue.Email, &issue.Date)
	return issue, err
}

var _ domain.IssueRepository = (*IssueRepositoryPG)(nil)
