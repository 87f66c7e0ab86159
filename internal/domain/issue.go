package domain

import "time"

// StatusOngoing marks issues that are still open. It is the only status the
// service attaches meaning to; any other value is stored as given.
const StatusOngoing = "ongoing"

// RecentIssuesLimit caps the home page listing.
const RecentIssuesLimit = 6

// Issue represents a reported civic problem.
type Issue struct {
	ID          string    `json:"_id"`
	Title       *string   `json:"title,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Description *string   `json:"description,omitempty"`
	Amount      *float64  `json:"amount,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Email       string    `json:"email"`
	Date        time.Time `json:"date"`
}

// IssueInput is the client-writable part of an issue. Fields outside this set
// are never read from a request body.
type IssueInput struct {
	Title       *string  `json:"title"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Location    *string  `json:"location"`
	Image       *string  `json:"image"`
	Status      *string  `json:"status"`
}

// IssueUpdate replaces every whitelisted field of a stored issue. A nil field
// clears the stored value.
type IssueUpdate struct {
	Title       *string
	Category    *string
	Description *string
	Amount      *float64
	Status      *string
	Location    *string
	Image       *string
	Date        time.Time
}

// IssueQuery filters and orders an issue listing. Zero values mean no
// constraint.
type IssueQuery struct {
	Status   string
	Email    string
	NewestBy bool
	Limit    int
}

// PrepareIssueCreate builds the document persisted for a new issue. The owner
// always comes from the verified caller.
func PrepareIssueCreate(in IssueInput, caller Identity, now time.Time) Issue {
	return Issue{
		Title:       in.Title,
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		Location:    in.Location,
		Image:       in.Image,
		Status:      in.Status,
		Email:       caller.Email,
		Date:        now.UTC(),
	}
}

// PrepareIssueUpdate projects a payload onto the update whitelist. Omitted
// fields are cleared, not kept.
func PrepareIssueUpdate(in IssueInput, now time.Time) IssueUpdate {
	return IssueUpdate{
		Title:       in.Title,
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		Status:      in.Status,
		Location:    in.Location,
		Image:       in.Image,
		Date:        now.UTC(),
	}
}

// RecentIssuesQuery selects the newest ongoing issues.
func RecentIssuesQuery() IssueQuery {
	return IssueQuery{Status: StatusOngoing, NewestBy: true, Limit: RecentIssuesLimit}
}

// OwnedIssuesQuery selects issues reported by email, in store order.
func OwnedIssuesQuery(email string) IssueQuery {
	return IssueQuery{Email: email}
}
