package store

import (
	"github.com/lifeline-net/lifeline-api/schema"
)

var organizationRoles = []schema.Role{
	schema.RoleHospital,
	schema.RoleBloodBank,
	schema.RoleNgo,
	schema.RoleAmbulance,
}

var individualRoles = []schema.Role{
	schema.RoleDonor,
	schema.RoleVolunteer,
}

// NetworkStats is the aggregate view of the whole network.
type NetworkStats struct {
	TotalOrganizations int `json:"total_organizations"`
	TotalDonors        int `json:"total_donors"`
	TotalVolunteers    int `json:"total_volunteers"`
	RequestsFulfilled  int `json:"requests_fulfilled"`
	ActiveRequests     int `json:"active_requests"`
}

// TopOrganizations ranks verified organizations by credit balance.
func (s *LifelineStore) TopOrganizations(limit int) ([]schema.Contributor, error) {
	if limit <= 0 {
		limit = 10
	}

	orgs := []schema.Contributor{}
	if err := s.ormDB.
		Where("role IN (?) AND is_verified = ?", organizationRoles, true).
		Order("credit_balance desc").Limit(limit).
		Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// TopIndividuals ranks donors and volunteers by reliability index.
func (s *LifelineStore) TopIndividuals(limit int) ([]schema.Contributor, error) {
	if limit <= 0 {
		limit = 10
	}

	individuals := []schema.Contributor{}
	if err := s.ormDB.
		Where("role IN (?)", individualRoles).
		Order("reliability_index desc").Limit(limit).
		Find(&individuals).Error; err != nil {
		return nil, err
	}
	return individuals, nil
}

func (s *LifelineStore) NetworkStats() (*NetworkStats, error) {
	var stats NetworkStats

	if err := s.ormDB.Model(schema.Contributor{}).
		Where("role IN (?)", organizationRoles).
		Count(&stats.TotalOrganizations).Error; err != nil {
		return nil, err
	}
	if err := s.ormDB.Model(schema.Contributor{}).
		Where("role = ?", schema.RoleDonor).
		Count(&stats.TotalDonors).Error; err != nil {
		return nil, err
	}
	if err := s.ormDB.Model(schema.Contributor{}).
		Where("role = ?", schema.RoleVolunteer).
		Count(&stats.TotalVolunteers).Error; err != nil {
		return nil, err
	}
	if err := s.ormDB.Model(schema.EmergencyRequest{}).
		Where("status = ?", schema.RequestFulfilled).
		Count(&stats.RequestsFulfilled).Error; err != nil {
		return nil, err
	}
	if err := s.ormDB.Model(schema.EmergencyRequest{}).
		Where("status = ?", schema.RequestOpen).
		Count(&stats.ActiveRequests).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
