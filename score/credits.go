package score

import (
	"github.com/lifeline-net/lifeline-api/match"
	"github.com/lifeline-net/lifeline-api/schema"
)

// CreditsEarned computes the credits an organization earns for a
// completed response: base credits scaled by urgency, plus a rare
// blood group bonus, plus a rating adjustment around the neutral
// rating (an unset rating counts as neutral). Credits only ever
// accumulate; the rating adjustment can reduce a single award but
// never produces a negative total.
func (p Params) CreditsEarned(req *schema.EmergencyRequest, resp *schema.Response) int {
	multiplier, ok := p.UrgencyMultipliers[req.Urgency]
	if !ok {
		multiplier = 1
	}

	rareBonus := 0
	if match.IsRare(req.BloodGroup) {
		rareBonus = p.RareBonus
	}

	rating := resp.Rating
	if rating == 0 {
		rating = p.DefaultRating
	}

	return p.BaseCredits*multiplier + rareBonus + (rating - p.DefaultRating)
}
