// Package mongorepo stores issues and contributions as MongoDB documents, one
// collection per resource type.
package mongorepo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/rahmanshaon/A10-civic-clean-server/internal/domain"
)

// IssueRepository implements domain.IssueRepository on the issues collection.
type IssueRepository struct {
	coll *mongo.Collection
}

func NewIssueRepository(db *mongo.Database) *IssueRepository {
	return &IssueRepository{coll: db.Collection(issuesCollection)}
}

func (r *IssueRepository) Find(ctx context.Context, q domain.IssueQuery) ([]domain.Issue, error) {
	cur, err := r.coll.Find(ctx, issueFilter(q), issueFindOptions(q))
	if err != nil {
		return nil, fmt.Errorf("find issues: %w", err)
	}
	var docs []issueDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode issues: %w", err)
	}
	items := make([]domain.Issue, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toDomain())
	}
	return items, nil
}

// FindByID returns nil without error when the issue does not exist.
func (r *IssueRepository) FindByID(ctx context.Context, id string) (*domain.Issue, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	var doc issueDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find issue: %w", err)
	}
	issue := doc.toDomain()
	return &issue, nil
}

func (r *IssueRepository) Insert(ctx context.Context, issue *domain.Issue) (domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, issueToDoc(issue))
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert issue: %w", err)
	}
	issue.ID = insertedHex(res.InsertedID)
	return domain.InsertResult{Acknowledged: true, InsertedID: issue.ID}, nil
}

func (r *IssueRepository) Update(ctx context.Context, id string, upd domain.IssueUpdate) (domain.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.UpdateResult{}, domain.ErrInvalidID
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, issueReplacement(upd))
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("update issue: %w", err)
	}
	return domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}, nil
}

// Delete removes the issue with id. Deleting a missing issue is not an error.
func (r *IssueRepository) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.DeleteResult{}, domain.ErrInvalidID
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("delete issue: %w", err)
	}
	return domain.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (r *IssueRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}

func issueFilter(q domain.IssueQuery) bson.M {
	filter := bson.M{}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.Email != "" {
		filter["email"] = q.Email
	}
	return filter
}

func issueFindOptions(q domain.IssueQuery) *options.FindOptions {
	opts := options.Find()
	if q.NewestBy {
		opts.SetSort(bson.D{{Key: "date", Value: -1}})
	}
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}
	return opts
}

// issueReplacement sets present whitelisted fields and unsets absent ones so
// an omitted field ends up missing from the stored document.
func issueReplacement(upd domain.IssueUpdate) bson.M {
	set := bson.M{"date": upd.Date}
	unset := bson.M{}
	put := func(name string, present bool, value any) {
		if present {
			set[name] = value
		} else {
			unset[name] = ""
		}
	}
	put("title", upd.Title != nil, upd.Title)
	put("category", upd.Category != nil, upd.Category)
	put("description", upd.Description != nil, upd.Description)
	put("amount", upd.Amount != nil, upd.Amount)
	put("status", upd.Status != nil, upd.Status)
	put("location", upd.Location != nil, upd.Location)
	put("image", upd.Image != nil, upd.Image)

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

var _ domain.IssueRepository = (*IssueRepository)(nil)
