package store

import (
	"github.com/jinzhu/gorm"

	"github.com/lifeline-net/lifeline-api/match"
	"github.com/lifeline-net/lifeline-api/schema"
	"github.com/lifeline-net/lifeline-api/score"
)

// lifeline main datastore
type LifelineCore interface {
	Ping() error

	// Contributor
	CreateContributor(accountNumber string, params ContributorParams) (*schema.Contributor, error)
	GetContributor(accountNumber string) (*schema.Contributor, error)
	UpdateContributorProfile(accountNumber string, update ProfileUpdate) error
	ToggleAvailability(accountNumber string) (bool, error)

	// Request lifecycle
	CreateRequest(requester string, params RequestParams) (*schema.EmergencyRequest, error)
	GetRequest(requestID string) (*schema.EmergencyRequest, error)
	ListRequests(filter RequestFilter) ([]schema.EmergencyRequest, error)
	ListEligibleRequests(c *schema.Contributor, limit int) ([]schema.EmergencyRequest, error)
	ListResponses(requestID string) ([]schema.Response, error)
	GetResponse(requestID, responder string) (*schema.Response, error)
	Respond(requestID, responder string, action ResponseAction, unitsOffered int) (*schema.Response, error)
	CompleteResponse(requestID, requester, responder string, unitsProvided, rating int) (*schema.EmergencyRequest, error)

	// Matching
	MatchContributors(req *schema.EmergencyRequest) (match.Result, error)
	RecordNotifications(requestID string, accountNumbers []string) error

	// Network
	TopOrganizations(limit int) ([]schema.Contributor, error)
	TopIndividuals(limit int) ([]schema.Contributor, error)
	NetworkStats() (*NetworkStats, error)

	// Partnership
	CreatePartnership(accountNumber, partner string, partnershipType schema.PartnershipType) (*schema.Partnership, error)
	ListPartnerships(accountNumber string) ([]schema.Partnership, error)
}

// LifelineStore is an implementation of LifelineCore
type LifelineStore struct {
	ormDB  *gorm.DB
	mongo  MongoStore
	policy match.Policy
	params score.Params
}

func NewLifelineStore(ormDB *gorm.DB, mongo MongoStore) *LifelineStore {
	return &LifelineStore{
		ormDB:  ormDB,
		mongo:  mongo,
		policy: match.DefaultPolicy,
		params: score.DefaultParams,
	}
}

// Ping is to check the storage health status
func (s *LifelineStore) Ping() error {
	return s.ormDB.DB().Ping()
}
