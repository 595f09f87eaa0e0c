package schema

import (
	"time"
)

const (
	ContributionCollection = "contributionLog"
)

type ContributionType string

const (
	ContributionFulfillment  ContributionType = "fulfillment"
	ContributionVerification ContributionType = "verification"
	ContributionReferral     ContributionType = "referral"
	ContributionPartnership  ContributionType = "partnership"
)

// ContributionLog is an append-only audit record of a credit-earning
// event. Entries are never mutated or deleted.
type ContributionLog struct {
	ID            string           `json:"id" bson:"id"`
	AccountNumber string           `json:"account_number" bson:"account_number"`
	RequestID     string           `json:"request_id" bson:"request_id"`
	Type          ContributionType `json:"contribution_type" bson:"contribution_type"`
	CreditsEarned int              `json:"credits_earned" bson:"credits_earned"`
	Description   string           `json:"description" bson:"description"`
	CreatedAt     time.Time        `json:"created_at" bson:"created_at"`
}
