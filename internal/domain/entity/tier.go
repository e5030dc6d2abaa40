// Package entity contains the core business objects of the project.
package entity

import "strings"

// MembershipTier represents a user's membership package, ordered from the
// free base tier up through the paid tiers.
type MembershipTier string

const (
	// TierBronze is the base tier every user starts on. It is not a paid subscription.
	TierBronze MembershipTier = "bronze"
	// TierSilver is the first paid tier.
	TierSilver MembershipTier = "silver"
	// TierGold is the second paid tier.
	TierGold MembershipTier = "gold"
	// TierPlatinum is the highest paid tier.
	TierPlatinum MembershipTier = "platinum"
)

// String returns the string representation of the MembershipTier.
func (t MembershipTier) String() string {
	return string(t)
}

// IsValid checks if the MembershipTier is a valid value.
func (t MembershipTier) IsValid() bool {
	switch t {
	case TierBronze, TierSilver, TierGold, TierPlatinum:
		return true
	default:
		return false
	}
}

// IsPremium reports whether the tier is one of the paid tiers.
// Only premium members may request meals or like upcoming meals.
func (t MembershipTier) IsPremium() bool {
	switch t {
	case TierSilver, TierGold, TierPlatinum:
		return true
	default:
		return false
	}
}

// ParseMembershipTier normalizes a raw tier string (case-insensitive).
// Unknown values fall back to the base tier.
func ParseMembershipTier(s string) MembershipTier {
	tier := MembershipTier(strings.ToLower(strings.TrimSpace(s)))
	if !tier.IsValid() {
		return TierBronze
	}

	return tier
}
