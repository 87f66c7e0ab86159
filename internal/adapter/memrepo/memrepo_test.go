package memrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rahmanshaon/A10-civic-clean-server/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestIssueLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := New().Issues()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	issue := &domain.Issue{Title: strPtr("Pothole"), Status: strPtr("ongoing"), Email: "a@example.com", Date: base}
	res, err := repo.Insert(ctx, issue)
	if err != nil || !res.Acknowledged || res.InsertedID != issue.ID {
		t.Fatalf("Insert() = %+v, %v", res, err)
	}

	upd, err := repo.Update(ctx, issue.ID, domain.IssueUpdate{Title: strPtr("Big pothole"), Date: base.Add(time.Hour)})
	if err != nil || upd.MatchedCount != 1 {
		t.Fatalf("Update() = %+v, %v", upd, err)
	}
	got, err := repo.FindByID(ctx, issue.ID)
	if err != nil || got == nil {
		t.Fatalf("FindByID() = %v, %v", got, err)
	}
	if *got.Title != "Big pothole" || got.Status != nil || got.Email != "a@example.com" {
		t.Fatalf("after update = %+v", got)
	}

	for i, want := range []int64{1, 0} {
		del, err := repo.Delete(ctx, issue.ID)
		if err != nil || del.DeletedCount != want {
			t.Fatalf("Delete() #%d = %+v, %v", i, del, err)
		}
	}
	if got, err := repo.FindByID(ctx, issue.ID); err != nil || got != nil {
		t.Fatalf("FindByID() after delete = %v, %v", got, err)
	}
	if _, err := repo.FindByID(ctx, "nope"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("FindByID(bad) = %v", err)
	}
}

func TestRecentIssues(t *testing.T) {
	ctx := context.Background()
	repo := New().Issues()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 9; i++ {
		status := "ongoing"
		if i%3 == 0 {
			status = "ended"
		}
		_, _ = repo.Insert(ctx, &domain.Issue{Status: strPtr(status), Date: base.Add(time.Duration(i) * time.Hour)})
	}

	items, err := repo.Find(ctx, domain.RecentIssuesQuery())
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if len(items) != 6 {
		t.Fatalf("len = %d, want 6", len(items))
	}
	for i, item := range items {
		if *item.Status != "ongoing" {
			t.Fatalf("item %d status = %s", i, *item.Status)
		}
		if i > 0 && item.Date.After(items[i-1].Date) {
			t.Fatalf("items not newest first")
		}
	}
}

func TestContributionsFilters(t *testing.T) {
	ctx := context.Background()
	store := New()
	repo := store.Contributions()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, _ = repo.Insert(ctx, &domain.Contribution{IssueID: "i1", Email: "a@example.com", Date: base})
	_, _ = repo.Insert(ctx, &domain.Contribution{IssueID: "i2", Email: "a@example.com", Date: base.Add(time.Hour)})
	_, _ = repo.Insert(ctx, &domain.Contribution{IssueID: "i1", Email: "b@example.com", Date: base.Add(2 * time.Hour)})

	byIssue, _ := repo.Find(ctx, domain.IssueContributionsQuery("i1"))
	if len(byIssue) != 2 || byIssue[0].Email != "a@example.com" {
		t.Fatalf("by issue = %+v", byIssue)
	}
	mine, _ := repo.Find(ctx, domain.OwnedContributionsQuery("a@example.com"))
	if len(mine) != 2 || mine[0].IssueID != "i2" {
		t.Fatalf("owned = %+v", mine)
	}
	if _, contributions := store.Calls(); contributions != 5 {
		t.Fatalf("contribution calls = %d, want 5", contributions)
	}
}
