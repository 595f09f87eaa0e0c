package match

import (
	"github.com/lifeline-net/lifeline-api/schema"
)

// BloodCompatibility maps a donor blood group to the recipient groups
// it can supply, standard ABO/Rh rules. O- is the universal donor and
// AB+ the universal recipient.
var BloodCompatibility = map[schema.BloodGroup][]schema.BloodGroup{
	schema.BloodONegative:  {schema.BloodONegative, schema.BloodOPositive, schema.BloodANegative, schema.BloodAPositive, schema.BloodBNegative, schema.BloodBPositive, schema.BloodABNegative, schema.BloodABPositive},
	schema.BloodOPositive:  {schema.BloodOPositive, schema.BloodAPositive, schema.BloodBPositive, schema.BloodABPositive},
	schema.BloodANegative:  {schema.BloodANegative, schema.BloodAPositive, schema.BloodABNegative, schema.BloodABPositive},
	schema.BloodAPositive:  {schema.BloodAPositive, schema.BloodABPositive},
	schema.BloodBNegative:  {schema.BloodBNegative, schema.BloodBPositive, schema.BloodABNegative, schema.BloodABPositive},
	schema.BloodBPositive:  {schema.BloodBPositive, schema.BloodABPositive},
	schema.BloodABNegative: {schema.BloodABNegative, schema.BloodABPositive},
	schema.BloodABPositive: {schema.BloodABPositive},
}

// RareBloodGroups receive bonus weight in credit and matching logic.
var RareBloodGroups = []schema.BloodGroup{
	schema.BloodABNegative,
	schema.BloodBNegative,
	schema.BloodANegative,
	schema.BloodONegative,
}

// CanSupply reports whether blood from a donor group may be given to
// a recipient group.
func CanSupply(donor, recipient schema.BloodGroup) bool {
	for _, g := range BloodCompatibility[donor] {
		if g == recipient {
			return true
		}
	}
	return false
}

// CompatibleDonors is the inverse lookup: all donor groups that can
// supply the given recipient group.
func CompatibleDonors(recipient schema.BloodGroup) []schema.BloodGroup {
	donors := make([]schema.BloodGroup, 0, len(BloodCompatibility))
	for donor := range BloodCompatibility {
		if CanSupply(donor, recipient) {
			donors = append(donors, donor)
		}
	}
	return donors
}

// IsRare reports whether the group is one of the rare set.
func IsRare(g schema.BloodGroup) bool {
	for _, rare := range RareBloodGroups {
		if g == rare {
			return true
		}
	}
	return false
}
