package match

import (
	"time"

	"github.com/lifeline-net/lifeline-api/schema"
)

// Policy holds the tunable matching rules. Tests override single
// fields; production uses DefaultPolicy.
type Policy struct {
	// DonationCooldown is the minimum gap between blood donations.
	DonationCooldown time.Duration

	// MinLocalCandidates is the city-level candidate count below which
	// the search may expand to the district.
	MinLocalCandidates int

	// MaxNotified caps how many contributors are notified per request.
	MaxNotified         int
	MaxNotifiedCritical int
}

var DefaultPolicy = Policy{
	DonationCooldown:    56 * 24 * time.Hour,
	MinLocalCandidates:  3,
	MaxNotified:         5,
	MaxNotifiedCritical: 10,
}

// IsEligible reports whether a contributor may respond to a request.
// Rules short-circuit in order: availability, then for blood requests
// the donor role, the donation cooldown and blood compatibility. Other
// resource types need availability only; their role fit is applied by
// the matcher.
func (p Policy) IsEligible(c *schema.Contributor, r *schema.EmergencyRequest, now time.Time) bool {
	if !c.IsAvailable {
		return false
	}

	if r.ResourceType == schema.ResourceBlood {
		if c.Role != schema.RoleDonor {
			return false
		}
		if !c.CanDonateBlood(now, p.DonationCooldown) {
			return false
		}
		if r.BloodGroup != "" && !CanSupply(c.BloodGroup, r.BloodGroup) {
			return false
		}
	}

	return true
}
