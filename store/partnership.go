package store

import (
	"github.com/lifeline-net/lifeline-api/schema"
)

// CreatePartnership links two organization accounts. New partnerships
// start pending; collaboration workflows beyond data capture live
// outside this service.
func (s *LifelineStore) CreatePartnership(accountNumber, partner string, partnershipType schema.PartnershipType) (*schema.Partnership, error) {
	a, err := s.GetContributor(accountNumber)
	if err != nil {
		return nil, err
	}
	b, err := s.GetContributor(partner)
	if err != nil {
		return nil, err
	}

	if !a.Role.IsOrganization() || !b.Role.IsOrganization() {
		return nil, ErrOrganizationNeeded
	}

	if partnershipType == "" {
		partnershipType = schema.PartnershipNetwork
	}

	p := schema.Partnership{
		OrganizationA: a.AccountNumber,
		OrganizationB: b.AccountNumber,
		Type:          partnershipType,
		Status:        schema.PartnershipPending,
	}

	if err := s.ormDB.Create(&p).Error; err != nil {
		return nil, err
	}

	return &p, nil
}

// ListPartnerships returns the partnerships an organization appears
// in, on either side of the link.
func (s *LifelineStore) ListPartnerships(accountNumber string) ([]schema.Partnership, error) {
	partnerships := []schema.Partnership{}
	if err := s.ormDB.
		Where("organization_a = ? OR organization_b = ?", accountNumber, accountNumber).
		Order("created_at desc").
		Find(&partnerships).Error; err != nil {
		return nil, err
	}
	return partnerships, nil
}
