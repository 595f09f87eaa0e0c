package store

import (
	"fmt"

	"github.com/lib/pq"

	"github.com/lifeline-net/lifeline-api/schema"
)

var (
	ErrContributorTaken   = fmt.Errorf("the account has already been registered")
	ErrInvalidRole        = fmt.Errorf("unknown contributor role")
	ErrInvalidBloodGroup  = fmt.Errorf("invalid blood group")
	ErrDonorWithoutGroup  = fmt.Errorf("a donor account needs a blood group")
	ErrOrganizationNeeded = fmt.Errorf("this action requires an organization account")
)

type ContributorParams struct {
	Name       string            `json:"name"`
	Phone      string            `json:"phone"`
	Role       schema.Role       `json:"role"`
	City       string            `json:"city"`
	District   string            `json:"district"`
	Address    string            `json:"address"`
	BloodGroup schema.BloodGroup `json:"blood_group"`
}

// ProfileUpdate carries optional profile edits. Nil fields are left
// untouched.
type ProfileUpdate struct {
	Phone      *string            `json:"phone"`
	City       *string            `json:"city"`
	District   *string            `json:"district"`
	Address    *string            `json:"address"`
	BloodGroup *schema.BloodGroup `json:"blood_group"`
}

// CreateContributor registers a stakeholder. Organizations start
// unverified, individuals start verified.
func (s *LifelineStore) CreateContributor(accountNumber string, params ContributorParams) (*schema.Contributor, error) {
	if !params.Role.Valid() {
		return nil, ErrInvalidRole
	}

	bloodGroup := schema.BloodGroup("")
	if params.Role == schema.RoleDonor {
		if !params.BloodGroup.Valid() {
			return nil, ErrDonorWithoutGroup
		}
		bloodGroup = params.BloodGroup
	}

	c := schema.Contributor{
		AccountNumber:    accountNumber,
		Name:             params.Name,
		Phone:            params.Phone,
		Role:             params.Role,
		City:             params.City,
		District:         params.District,
		Address:          params.Address,
		BloodGroup:       bloodGroup,
		IsAvailable:      true,
		IsVerified:       !params.Role.IsOrganization(),
		ReliabilityIndex: 50,
	}

	if err := s.ormDB.Create(&c).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrContributorTaken
		}
		return nil, err
	}

	return &c, nil
}

// GetContributor returns the contributor of a given account number
func (s *LifelineStore) GetContributor(accountNumber string) (*schema.Contributor, error) {
	var c schema.Contributor
	if err := s.ormDB.Where("account_number = ?", accountNumber).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateContributorProfile applies profile edits. The blood group is
// only editable on donor accounts.
func (s *LifelineStore) UpdateContributorProfile(accountNumber string, update ProfileUpdate) error {
	var c schema.Contributor
	if err := s.ormDB.Where("account_number = ?", accountNumber).First(&c).Error; err != nil {
		return err
	}

	if update.Phone != nil {
		c.Phone = *update.Phone
	}
	if update.City != nil {
		c.City = *update.City
	}
	if update.District != nil {
		c.District = *update.District
	}
	if update.Address != nil {
		c.Address = *update.Address
	}
	if update.BloodGroup != nil && c.Role == schema.RoleDonor {
		if !update.BloodGroup.Valid() {
			return ErrInvalidBloodGroup
		}
		c.BloodGroup = *update.BloodGroup
	}

	return s.ormDB.Save(&c).Error
}

// ToggleAvailability flips the availability flag and returns the new
// state. Accounts are never deleted; this is how contributors leave
// the matching pool.
func (s *LifelineStore) ToggleAvailability(accountNumber string) (bool, error) {
	var c schema.Contributor
	if err := s.ormDB.Where("account_number = ?", accountNumber).First(&c).Error; err != nil {
		return false, err
	}

	c.IsAvailable = !c.IsAvailable
	if err := s.ormDB.Save(&c).Error; err != nil {
		return false, err
	}

	return c.IsAvailable, nil
}
