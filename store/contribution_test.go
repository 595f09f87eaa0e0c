package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifeline-net/lifeline-api/schema"
)

type ContributionTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewContributionTestSuite(connURI, dbName string) *ContributionTestSuite {
	return &ContributionTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ContributionTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexContributionCollection()
}

// CleanMongoDB drop the whole test mongodb
func (s *ContributionTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *ContributionTestSuite) TestAppendContribution() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	err := store.AppendContribution(schema.ContributionLog{
		AccountNumber: "append-test",
		RequestID:     "req-1",
		Type:          schema.ContributionFulfillment,
		CreditsEarned: 23,
		Description:   "blood delivered",
	})
	s.NoError(err)

	collection := s.testDatabase.Collection(schema.ContributionCollection)
	var stored schema.ContributionLog
	err = collection.FindOne(context.Background(), bson.M{"account_number": "append-test"}).Decode(&stored)
	s.NoError(err)
	s.NotEmpty(stored.ID, "an id should be assigned on insert")
	s.False(stored.CreatedAt.IsZero(), "a timestamp should be assigned on insert")
	s.Equal(23, stored.CreditsEarned)
	s.Equal(schema.ContributionFulfillment, stored.Type)
}

func (s *ContributionTestSuite) TestListContributionsNewestFirst() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	base := time.Now().Add(-time.Hour)
	for i, credits := range []int{10, 20, 30} {
		err := store.AppendContribution(schema.ContributionLog{
			AccountNumber: "list-test",
			Type:          schema.ContributionFulfillment,
			CreditsEarned: credits,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		})
		s.NoError(err)
	}

	entries, err := store.ListContributions("list-test", 2)
	s.NoError(err)
	s.Equal(2, len(entries))
	s.Equal(30, entries[0].CreditsEarned)
	s.Equal(20, entries[1].CreditsEarned)
}

func (s *ContributionTestSuite) TestTotalCreditsEarned() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	for _, credits := range []int{13, 17, 8} {
		err := store.AppendContribution(schema.ContributionLog{
			AccountNumber: "total-test",
			Type:          schema.ContributionFulfillment,
			CreditsEarned: credits,
		})
		s.NoError(err)
	}

	total, err := store.TotalCreditsEarned("total-test")
	s.NoError(err)
	s.Equal(38, total)

	total, err = store.TotalCreditsEarned("no-such-account")
	s.NoError(err)
	s.Equal(0, total)
}

func TestContributionTestSuite(t *testing.T) {
	suite.Run(t, NewContributionTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
