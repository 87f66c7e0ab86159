package domain

import "context"

// IssueRepository persists issues. FindByID returns (nil, nil) when no issue
// matches; malformed identifiers yield ErrInvalidID.
type IssueRepository interface {
	Find(ctx context.Context, q IssueQuery) ([]Issue, error)
	FindByID(ctx context.Context, id string) (*Issue, error)
	Insert(ctx context.Context, issue *Issue) (InsertResult, error)
	Update(ctx context.Context, id string, upd IssueUpdate) (UpdateResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
}

// ContributionRepository persists contributions. Contributions are
// append-only.
type ContributionRepository interface {
	Find(ctx context.Context, q ContributionQuery) ([]Contribution, error)
	Insert(ctx context.Context, c *Contribution) (InsertResult, error)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
