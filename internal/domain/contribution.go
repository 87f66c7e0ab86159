package domain

import "time"

// Contribution records support pledged toward an issue. IssueID is a weak
// reference: it is never checked against stored issues.
type Contribution struct {
	ID             string    `json:"_id"`
	IssueID        string    `json:"issueId"`
	IssueTitle     *string   `json:"issueTitle,omitempty"`
	Amount         *float64  `json:"amount,omitempty"`
	Name           *string   `json:"name,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	Address        *string   `json:"address,omitempty"`
	AdditionalInfo *string   `json:"additionalInfo,omitempty"`
	Email          string    `json:"email"`
	Date           time.Time `json:"date"`
}

// ContributionInput is the client-writable part of a contribution.
type ContributionInput struct {
	IssueID        string   `json:"issueId"`
	IssueTitle     *string  `json:"issueTitle"`
	Amount         *float64 `json:"amount"`
	Name           *string  `json:"name"`
	Phone          *string  `json:"phone"`
	Address        *string  `json:"address"`
	AdditionalInfo *string  `json:"additionalInfo"`
}

// ContributionQuery filters a contribution listing.
type ContributionQuery struct {
	IssueID  string
	Email    string
	NewestBy bool
}

// PrepareContributionCreate stamps the caller and server time onto a new
// contribution.
func PrepareContributionCreate(in ContributionInput, caller Identity, now time.Time) Contribution {
	return Contribution{
		IssueID:        in.IssueID,
		IssueTitle:     in.IssueTitle,
		Amount:         in.Amount,
		Name:           in.Name,
		Phone:          in.Phone,
		Address:        in.Address,
		AdditionalInfo: in.AdditionalInfo,
		Email:          caller.Email,
		Date:           now.UTC(),
	}
}

// IssueContributionsQuery lists contributions made toward one issue.
func IssueContributionsQuery(issueID string) ContributionQuery {
	return ContributionQuery{IssueID: issueID}
}

// OwnedContributionsQuery lists a contributor's pledges, newest first.
func OwnedContributionsQuery(email string) ContributionQuery {
	return ContributionQuery{Email: email, NewestBy: true}
}
