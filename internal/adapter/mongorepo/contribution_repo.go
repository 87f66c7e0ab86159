package mongorepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rahmanshaon/A10-civic-clean-server/internal/domain"
)

// ContributionRepository implements domain.ContributionRepository on the
// contributions collection.
type ContributionRepository struct {
	coll *mongo.Collection
}

func NewContributionRepository(db *mongo.Database) *ContributionRepository {
	return &ContributionRepository{coll: db.Collection(contributionsCollection)}
}

func (r *ContributionRepository) Insert(ctx context.Context, c *domain.Contribution) (domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, contributionToDoc(c))
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert contribution: %w", err)
	}
	c.ID = insertedHex(res.InsertedID)
	return domain.InsertResult{Acknowledged: true, InsertedID: c.ID}, nil
}

func (r *ContributionRepository) Find(ctx context.Context, q domain.ContributionQuery) ([]domain.Contribution, error) {
	filter := bson.M{}
	if q.IssueID != "" {
		filter["issueId"] = q.IssueID
	}
	if q.Email != "" {
		filter["email"] = q.Email
	}
	opts := options.Find()
	if q.NewestBy {
		opts.SetSort(bson.D{{Key: "date", Value: -1}})
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find contributions: %w", err)
	}
	var docs []contributionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode contributions: %w", err)
	}
	items := make([]domain.Contribution, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toDomain())
	}
	return items, nil
}

var _ domain.ContributionRepository = (*ContributionRepository)(nil)
