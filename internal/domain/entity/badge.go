package entity

// Badge is a milestone marker awarded to donors.
type Badge string

const (
	// BadgeNone means no badge was awarded.
	BadgeNone Badge = ""
	// BadgeFirstDonation is awarded at the first verified donation.
	BadgeFirstDonation Badge = "First Donation"
	// BadgeFiveDonations is awarded at the fifth verified donation.
	BadgeFiveDonations Badge = "5 Donations Club"
	// BadgeBloodHero is awarded at the tenth verified donation.
	BadgeBloodHero Badge = "Blood Hero"
)

// milestones maps exact donation counts to badges.
var milestones = map[int64]Badge{
	1:  BadgeFirstDonation,
	5:  BadgeFiveDonations,
	10: BadgeBloodHero,
}

// MilestoneFor returns the badge for an exact donation count, or BadgeNone.
func MilestoneFor(count int64) Badge {
	return milestones[count]
}

// String returns the string representation of the Badge.
func (b Badge) String() string {
	return string(b)
}
