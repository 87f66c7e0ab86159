// Package memrepo keeps issues and contributions in process memory. It backs
// local development runs and the HTTP tests; data is lost on restart.
package memrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/rahmanshaon/A10-civic-clean-server/internal/domain"
)

// Store holds both collections behind one lock. Documents keep their
// insertion order, which is the store order of unsorted listings.
type Store struct {
	mu            sync.Mutex
	issues        []domain.Issue
	contributions []domain.Contribution

	issueCalls        int
	contributionCalls int
}

func New() *Store {
	return &Store{}
}

// Issues returns the issue repository view of s.
func (s *Store) Issues() *IssueRepository {
	return &IssueRepository{s: s}
}

// Contributions returns the contribution repository view of s.
func (s *Store) Contributions() *ContributionRepository {
	return &ContributionRepository{s: s}
}

// Calls reports how many repository operations reached each collection.
func (s *Store) Calls() (issues, contributions int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issueCalls, s.contributionCalls
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

type IssueRepository struct {
	s *Store
}

func (r *IssueRepository) Find(ctx context.Context, q domain.IssueQuery) ([]domain.Issue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.issueCalls++

	items := make([]domain.Issue, 0, len(r.s.issues))
	for _, issue := range r.s.issues {
		if q.Status != "" && (issue.Status == nil || *issue.Status != q.Status) {
			continue
		}
		if q.Email != "" && issue.Email != q.Email {
			continue
		}
		items = append(items, issue)
	}
	if q.NewestBy {
		sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	}
	if q.Limit > 0 && len(items) > q.Limit {
		items = items[:q.Limit]
	}
	return items, nil
}

func (r *IssueRepository) FindByID(ctx context.Context, id string) (*domain.Issue, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.issueCalls++

	if i := r.s.issueIndex(id); i >= 0 {
		issue := r.s.issues[i]
		return &issue, nil
	}
	return nil, nil
}

func (r *IssueRepository) Insert(ctx context.Context, issue *domain.Issue) (domain.InsertResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.InsertResult{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.issueCalls++

	issue.ID = uuid.NewString()
	r.s.issues = append(r.s.issues, *issue)
	return domain.InsertResult{Acknowledged: true, InsertedID: issue.ID}, nil
}

func (r *IssueRepository) Update(ctx context.Context, id string, upd domain.IssueUpdate) (domain.UpdateResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.UpdateResult{}, domain.ErrInvalidID
	}
	if err := ctx.Err(); err != nil {
		return domain.UpdateResult{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.issueCalls++

	i := r.s.issueIndex(id)
	if i < 0 {
		return domain.UpdateResult{Acknowledged: true}, nil
	}
	stored := &r.s.issues[i]
	stored.Title = upd.Title
	stored.Category = upd.Category
	stored.Description = upd.Description
	stored.Amount = upd.Amount
	stored.Status = upd.Status
	stored.Location = upd.Location
	stored.Image = upd.Image
	stored.Date = upd.Date
	return domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *IssueRepository) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.DeleteResult{}, domain.ErrInvalidID
	}
	if err := ctx.Err(); err != nil {
		return domain.DeleteResult{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.issueCalls++

	i := r.s.issueIndex(id)
	if i < 0 {
		return domain.DeleteResult{Acknowledged: true}, nil
	}
	r.s.issues = append(r.s.issues[:i], r.s.issues[i+1:]...)
	return domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (s *Store) issueIndex(id string) int {
	for i := range s.issues {
		if s.issues[i].ID == id {
			return i
		}
	}
	return -1
}

type ContributionRepository struct {
	s *Store
}

func (r *ContributionRepository) Find(ctx context.Context, q domain.ContributionQuery) ([]domain.Contribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.contributionCalls++

	items := make([]domain.Contribution, 0, len(r.s.contributions))
	for _, c := range r.s.contributions {
		if q.IssueID != "" && c.IssueID != q.IssueID {
			continue
		}
		if q.Email != "" && c.Email != q.Email {
			continue
		}
		items = append(items, c)
	}
	if q.NewestBy {
		sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	}
	return items, nil
}

func (r *ContributionRepository) Insert(ctx context.Context, c *domain.Contribution) (domain.InsertResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.InsertResult{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.contributionCalls++

	c.ID = uuid.NewString()
	r.s.contributions = append(r.s.contributions, *c)
	return domain.InsertResult{Acknowledged: true, InsertedID: c.ID}, nil
}

var (
	_ domain.IssueRepository        = (*IssueRepository)(nil)
	_ domain.ContributionRepository = (*ContributionRepository)(nil)
	_ domain.Pinger                 = (*Store)(nil)
)
