package schema

import (
	"time"

	"github.com/google/uuid"
)

type PartnershipType string

const (
	PartnershipFormal   PartnershipType = "formal"
	PartnershipInformal PartnershipType = "informal"
	PartnershipNetwork  PartnershipType = "network"
)

type PartnershipStatus string

const (
	PartnershipPending  PartnershipStatus = "pending"
	PartnershipActive   PartnershipStatus = "active"
	PartnershipInactive PartnershipStatus = "inactive"
)

// Partnership links two organization accounts. Stored directionally,
// symmetric in spirit.
type Partnership struct {
	ID            uuid.UUID         `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	OrganizationA string            `json:"organization_a"`
	OrganizationB string            `json:"organization_b"`
	Type          PartnershipType   `json:"partnership_type" sql:"default:'network'"`
	Status        PartnershipStatus `json:"status" sql:"default:'pending'"`

	SuccessfulCollaborations int `json:"successful_collaborations"`

	CreatedAt time.Time `json:"created_at"`
}
