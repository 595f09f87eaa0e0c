package score

import (
	"github.com/lifeline-net/lifeline-api/schema"
)

// Params holds the tunable scoring constants. Tests override single
// fields; production uses DefaultParams.
type Params struct {
	// FulfillmentBonus is the reliability gain per fulfillment, capped
	// so the index never exceeds 100.
	FulfillmentBonus float64

	// TimeBonusMax is the extra reliability for an immediate response.
	// The bonus decays linearly to zero at TimeBonusWindow minutes.
	TimeBonusMax    float64
	TimeBonusWindow float64

	// DeclinePenalty is the reliability loss per decline, floored at 0.
	DeclinePenalty float64

	// credit formula
	BaseCredits        int
	RareBonus          int
	DefaultRating      int
	UrgencyMultipliers map[schema.Urgency]int
}

var DefaultParams = Params{
	FulfillmentBonus: 5,
	TimeBonusMax:     2,
	TimeBonusWindow:  60,
	DeclinePenalty:   3,

	BaseCredits:   10,
	RareBonus:     5,
	DefaultRating: 3,
	UrgencyMultipliers: map[schema.Urgency]int{
		schema.UrgencyCritical: 3,
		schema.UrgencyUrgent:   2,
		schema.UrgencyNormal:   1,
	},
}

// OnResponse updates a contributor's reliability index and counters
// after a response outcome. The index is clamped to [0, 100] no matter
// the inputs. A positive response time also folds into the running
// average response time across all fulfillments and declines.
func (p Params) OnResponse(c *schema.Contributor, fulfilled bool, responseTimeMinutes float64) {
	c.TotalReceived++

	if fulfilled {
		c.TotalFulfilled++

		bonus := p.FulfillmentBonus
		if headroom := 100 - c.ReliabilityIndex; bonus > headroom {
			bonus = headroom
		}
		timeBonus := float64(0)
		if p.TimeBonusWindow > 0 {
			timeBonus = p.TimeBonusMax * (1 - responseTimeMinutes/p.TimeBonusWindow)
		}
		if timeBonus < 0 {
			timeBonus = 0
		}

		c.ReliabilityIndex = clamp(c.ReliabilityIndex + bonus + timeBonus)
	} else {
		c.TotalDeclined++
		c.ReliabilityIndex = clamp(c.ReliabilityIndex - p.DeclinePenalty)
	}

	if responseTimeMinutes > 0 {
		n := float64(c.TotalFulfilled + c.TotalDeclined)
		c.ResponseTimeAvg = (c.ResponseTimeAvg*(n-1) + responseTimeMinutes) / n
	}
}

func clamp(index float64) float64 {
	if index < 0 {
		return 0
	}
	if index > 100 {
		return 100
	}
	return index
}
