package match

import (
	"sort"
	"time"

	"github.com/lifeline-net/lifeline-api/schema"
)

// rolesForResource keys the role filter on the requested resource.
var rolesForResource = map[schema.ResourceType][]schema.Role{
	schema.ResourceBlood:     {schema.RoleDonor},
	schema.ResourceAmbulance: {schema.RoleAmbulance},
	schema.ResourceVolunteer: {schema.RoleVolunteer},
	schema.ResourcePlasma:    {schema.RoleBloodBank, schema.RoleHospital, schema.RoleNgo},
	schema.ResourceOxygen:    {schema.RoleBloodBank, schema.RoleHospital, schema.RoleNgo},
}

// RankKey orders match candidates. Fields compare in declared order;
// each later field is a tie-break for the one before it.
type RankKey struct {
	Eligible    bool
	Verified    bool
	Reliability float64
}

// Before reports whether k ranks ahead of other.
func (k RankKey) Before(other RankKey) bool {
	if k.Eligible != other.Eligible {
		return k.Eligible
	}
	if k.Verified != other.Verified {
		return k.Verified
	}
	return k.Reliability > other.Reliability
}

// RankOf computes the ranking tuple of a contributor for a request.
// The eligible flag only drops for donors inside the donation
// cooldown; they stay in the list, ranked below eligible donors.
// Reliability is the reliability index for individuals and the credit
// balance capped at 100 for organizations, keeping the scales
// comparable.
func (p Policy) RankOf(c *schema.Contributor, now time.Time) RankKey {
	eligible := c.Role != schema.RoleDonor || c.CanDonateBlood(now, p.DonationCooldown)

	reliability := c.ReliabilityIndex
	if c.Role.IsOrganization() {
		reliability = float64(c.CreditBalance)
		if reliability > 100 {
			reliability = 100
		}
	}

	return RankKey{
		Eligible:    eligible,
		Verified:    c.IsVerified,
		Reliability: reliability,
	}
}

// Result of a match run.
type Result struct {
	Contributors []schema.Contributor
	Expanded     bool
}

// AccountNumbers returns the ordered contributor identifiers.
func (r Result) AccountNumbers() []string {
	accounts := make([]string, 0, len(r.Contributors))
	for _, c := range r.Contributors {
		accounts = append(accounts, c.AccountNumber)
	}
	return accounts
}

// Match builds the ranked candidate list for a request out of a pool
// of contributors. The pool may span the request's city and district;
// Match applies the role, compatibility and location rules, expands
// from city to district when local candidates are scarce or the
// request is critical, ranks the combined list and truncates it to
// the notification cap. An empty pool yields an empty result.
func (p Policy) Match(req *schema.EmergencyRequest, pool []schema.Contributor, now time.Time) Result {
	var local, district []schema.Contributor

	for _, c := range pool {
		if !c.IsAvailable || c.AccountNumber == req.Requester {
			continue
		}
		if !roleMatches(c.Role, req.ResourceType) {
			continue
		}
		if req.ResourceType == schema.ResourceBlood && req.BloodGroup != "" &&
			!CanSupply(c.BloodGroup, req.BloodGroup) {
			continue
		}

		switch {
		case c.City == req.City:
			local = append(local, c)
		case c.District == req.District:
			district = append(district, c)
		}
	}

	contributors := local
	expanded := false

	// District expansion appends, it never replaces city results.
	if len(local) < p.MinLocalCandidates || req.Urgency == schema.UrgencyCritical {
		if IsRare(req.BloodGroup) || req.Urgency == schema.UrgencyCritical {
			contributors = append(contributors, district...)
			expanded = true
		}
	}

	sort.SliceStable(contributors, func(i, j int) bool {
		return p.RankOf(&contributors[i], now).Before(p.RankOf(&contributors[j], now))
	})

	max := p.MaxNotified
	if req.Urgency == schema.UrgencyCritical {
		max = p.MaxNotifiedCritical
	}
	if len(contributors) > max {
		contributors = contributors[:max]
	}

	return Result{Contributors: contributors, Expanded: expanded}
}

func roleMatches(role schema.Role, resource schema.ResourceType) bool {
	for _, r := range rolesForResource[resource] {
		if r == role {
			return true
		}
	}
	return false
}
