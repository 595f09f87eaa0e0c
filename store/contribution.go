package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifeline-net/lifeline-api/schema"
)

type ContributionOperator interface {
	AppendContribution(entry schema.ContributionLog) error
	ListContributions(accountNumber string, limit int64) ([]schema.ContributionLog, error)
	TotalCreditsEarned(accountNumber string) (int, error)
}

// AppendContribution writes one immutable audit entry. Entries are
// never updated or removed.
func (m *mongoDB) AppendContribution(entry schema.ContributionLog) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	c := m.client.Database(m.database).Collection(schema.ContributionCollection)
	_, err := c.InsertOne(ctx, entry)
	return err
}

// ListContributions returns the latest entries of an account, newest
// first.
func (m *mongoDB) ListContributions(accountNumber string, limit int64) ([]schema.ContributionLog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if limit <= 0 {
		limit = 10
	}

	c := m.client.Database(m.database).Collection(schema.ContributionCollection)
	cursor, err := c.Find(ctx,
		bson.M{"account_number": accountNumber},
		options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}

	entries := []schema.ContributionLog{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// TotalCreditsEarned sums every credit award of an account over the
// full audit trail.
func (m *mongoDB) TotalCreditsEarned(accountNumber string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ContributionCollection)
	cursor, err := c.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"account_number": accountNumber}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$account_number",
			"total": bson.M{"$sum": "$credits_earned"},
		}}},
	})
	if err != nil {
		return 0, err
	}

	var results []struct {
		Total int `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
