package mongorepo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahmanshaon/A10-civic-clean-server/internal/domain"
)

const (
	issuesCollection        = "issues"
	contributionsCollection = "contributions"
)

type issueDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       *string            `bson:"title,omitempty"`
	Category    *string            `bson:"category,omitempty"`
	Description *string            `bson:"description,omitempty"`
	Amount      *float64           `bson:"amount,omitempty"`
	Location    *string            `bson:"location,omitempty"`
	Image       *string            `bson:"image,omitempty"`
	Status      *string            `bson:"status,omitempty"`
	Email       string             `bson:"email"`
	Date        time.Time          `bson:"date"`
}

func issueToDoc(i *domain.Issue) issueDoc {
	return issueDoc{
		Title:       i.Title,
		Category:    i.Category,
		Description: i.Description,
		Amount:      i.Amount,
		Location:    i.Location,
		Image:       i.Image,
		Status:      i.Status,
		Email:       i.Email,
		Date:        i.Date,
	}
}

func (d issueDoc) toDomain() domain.Issue {
	return domain.Issue{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Category:    d.Category,
		Description: d.Description,
		Amount:      d.Amount,
		Location:    d.Location,
		Image:       d.Image,
		Status:      d.Status,
		Email:       d.Email,
		Date:        d.Date.UTC(),
	}
}

type contributionDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	IssueID        string             `bson:"issueId"`
	IssueTitle     *string            `bson:"issueTitle,omitempty"`
	Amount         *float64           `bson:"amount,omitempty"`
	Name           *string            `bson:"name,omitempty"`
	Phone          *string            `bson:"phone,omitempty"`
	Address        *string            `bson:"address,omitempty"`
	AdditionalInfo *string            `bson:"additionalInfo,omitempty"`
	Email          string             `bson:"email"`
	Date           time.Time          `bson:"date"`
}

func contributionToDoc(c *domain.Contribution) contributionDoc {
	return contributionDoc{
		IssueID:        c.IssueID,
		IssueTitle:     c.IssueTitle,
		Amount:         c.Amount,
		Name:           c.Name,
		Phone:          c.Phone,
		Address:        c.Address,
		AdditionalInfo: c.AdditionalInfo,
		Email:          c.Email,
		Date:           c.Date,
	}
}

func (d contributionDoc) toDomain() domain.Contribution {
	return domain.Contribution{
		ID:             d.ID.Hex(),
		IssueID:        d.IssueID,
		IssueTitle:     d.IssueTitle,
		Amount:         d.Amount,
		Name:           d.Name,
		Phone:          d.Phone,
		Address:        d.Address,
		AdditionalInfo: d.AdditionalInfo,
		Email:          d.Email,
		Date:           d.Date.UTC(),
	}
}

func insertedHex(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}
