package schema

import (
	"time"
)

// Role of a contributor account. Organizations raise requests and
// accrue credits; individuals respond and carry a reliability index.
type Role string

const (
	RoleHospital  Role = "hospital"
	RoleBloodBank Role = "blood_bank"
	RoleNgo       Role = "ngo"
	RoleAmbulance Role = "ambulance"
	RoleVolunteer Role = "volunteer"
	RoleDonor     Role = "donor"
)

// IsOrganization reports whether the role is an organization account.
func (r Role) IsOrganization() bool {
	switch r {
	case RoleHospital, RoleBloodBank, RoleNgo, RoleAmbulance:
		return true
	}
	return false
}

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleHospital, RoleBloodBank, RoleNgo, RoleAmbulance, RoleVolunteer, RoleDonor:
		return true
	}
	return false
}

type BloodGroup string

const (
	BloodAPositive  BloodGroup = "A+"
	BloodANegative  BloodGroup = "A-"
	BloodBPositive  BloodGroup = "B+"
	BloodBNegative  BloodGroup = "B-"
	BloodABPositive BloodGroup = "AB+"
	BloodABNegative BloodGroup = "AB-"
	BloodOPositive  BloodGroup = "O+"
	BloodONegative  BloodGroup = "O-"
)

func (g BloodGroup) Valid() bool {
	switch g {
	case BloodAPositive, BloodANegative, BloodBPositive, BloodBNegative,
		BloodABPositive, BloodABNegative, BloodOPositive, BloodONegative:
		return true
	}
	return false
}

// Contributor is a registered stakeholder. Accounts are never deleted;
// they drop out of matching through the availability flag.
type Contributor struct {
	AccountNumber string `json:"account_number" gorm:"primary_key"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Role          Role   `json:"role"`

	City     string `json:"city"`
	District string `json:"district"`
	Address  string `json:"address"`

	// donors only
	BloodGroup     BloodGroup `json:"blood_group"`
	LastDonationAt *time.Time `json:"last_donation_at"`

	IsAvailable bool `json:"is_available" sql:"default:true"`
	IsVerified  bool `json:"is_verified"`

	// trust metrics
	ReliabilityIndex float64 `json:"reliability_index" sql:"default:50"`
	CreditBalance    int     `json:"credit_balance"`

	TotalReceived   int     `json:"total_requests_received"`
	TotalFulfilled  int     `json:"total_requests_fulfilled"`
	TotalDeclined   int     `json:"total_requests_declined"`
	ResponseTimeAvg float64 `json:"response_time_avg"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanDonateBlood reports whether the donation cooldown has elapsed.
// A contributor who never donated is eligible.
func (c *Contributor) CanDonateBlood(now time.Time, cooldown time.Duration) bool {
	if c.LastDonationAt == nil {
		return true
	}
	return now.Sub(*c.LastDonationAt) >= cooldown
}
