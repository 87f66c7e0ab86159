package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rahmanshaon/A10-civic-clean-server/internal/domain"
	"github.com/rahmanshaon/A10-civic-clean-server/internal/infra"
	"github.com/rahmanshaon/A10-civic-clean-server/internal/sqlinline"
)

// ContributionRepositoryPG implements domain.ContributionRepository using PostgreSQL.
type ContributionRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewContributionRepository creates a new contribution repo.
func NewContributionRepository(sql infra.SQLExecutor) *ContributionRepositoryPG {
	return &ContributionRepositoryPG{sql: sql}
}

// Insert assigns a new id to c and stores it.
func (r *ContributionRepositoryPG) Insert(ctx context.Context, c *domain.Contribution) (domain.InsertResult, error) {
	id := uuid.NewString()
	_, err := r.sql.Exec(ctx, sqlinline.QInsertContribution, id, c.IssueID, c.IssueTitle, c.Amount, c.Name,
		c.Phone, c.Address, c.AdditionalInfo, c.Email, c.Date)
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert contribution: %w", err)
	}
	c.ID = id
	return domain.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// Find lists contributions matching q.
func (r *ContributionRepositoryPG) Find(ctx context.Context, q domain.ContributionQuery) ([]domain.Contribution, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListContributions, q.IssueID, q.Email, q.NewestBy)
	if err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Contribution, 0)
	for rows.Next() {
		var c domain.Contribution
		if err := rows.Scan(&c.ID, &c.IssueID, &c.IssueTitle, &c.Amount, &c.Name, &c.Phone, &c.Address,
			&c.AdditionalInfo, &c.Email, &c.Date); err != nil {
			return nil, fmt.Errorf("scan contribution: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}
	return items, nil
}

var _ domain.ContributionRepository = (*ContributionRepositoryPG)(nil)
