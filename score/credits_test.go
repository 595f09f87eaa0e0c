package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lifeline-net/lifeline-api/schema"
)

func creditRequest(urgency schema.Urgency, group schema.BloodGroup) *schema.EmergencyRequest {
	return &schema.EmergencyRequest{
		ResourceType: schema.ResourceBlood,
		BloodGroup:   group,
		Urgency:      urgency,
	}
}

func TestCreditsEarnedBaseline(t *testing.T) {
	resp := &schema.Response{Rating: 3}

	assert.Equal(t, 10, DefaultParams.CreditsEarned(creditRequest(schema.UrgencyNormal, schema.BloodOPositive), resp))
	assert.Equal(t, 20, DefaultParams.CreditsEarned(creditRequest(schema.UrgencyUrgent, schema.BloodOPositive), resp))
	assert.Equal(t, 30, DefaultParams.CreditsEarned(creditRequest(schema.UrgencyCritical, schema.BloodOPositive), resp))
}

func TestCreditsMonotonicInUrgency(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		for _, group := range []schema.BloodGroup{schema.BloodOPositive, schema.BloodONegative} {
			resp := &schema.Response{Rating: rating}
			normal := DefaultParams.CreditsEarned(creditRequest(schema.UrgencyNormal, group), resp)
			urgent := DefaultParams.CreditsEarned(creditRequest(schema.UrgencyUrgent, group), resp)
			critical := DefaultParams.CreditsEarned(creditRequest(schema.UrgencyCritical, group), resp)

			assert.True(t, critical >= urgent && urgent >= normal,
				"rating=%d group=%s: %d/%d/%d", rating, group, critical, urgent, normal)
		}
	}
}

func TestCreditsRareGroupBonus(t *testing.T) {
	resp := &schema.Response{Rating: 3}

	common := DefaultParams.CreditsEarned(creditRequest(schema.UrgencyNormal, schema.BloodOPositive), resp)
	rare := DefaultParams.CreditsEarned(creditRequest(schema.UrgencyNormal, schema.BloodONegative), resp)
	assert.Equal(t, common+5, rare)
}

func TestCreditsRatingAdjustment(t *testing.T) {
	req := creditRequest(schema.UrgencyNormal, schema.BloodOPositive)

	assert.Equal(t, 8, DefaultParams.CreditsEarned(req, &schema.Response{Rating: 1}))
	assert.Equal(t, 12, DefaultParams.CreditsEarned(req, &schema.Response{Rating: 5}))

	// unset rating counts as neutral
	assert.Equal(t, 10, DefaultParams.CreditsEarned(req, &schema.Response{}))
}

func TestCreditsCriticalRareTopRating(t *testing.T) {
	req := creditRequest(schema.UrgencyCritical, schema.BloodABNegative)
	assert.Equal(t, 37, DefaultParams.CreditsEarned(req, &schema.Response{Rating: 5}))
}

func TestCreditsUnknownUrgencyFallsBack(t *testing.T) {
	req := creditRequest(schema.Urgency("unknown"), schema.BloodOPositive)
	assert.Equal(t, 10, DefaultParams.CreditsEarned(req, &schema.Response{Rating: 3}))
}
