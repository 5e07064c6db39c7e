package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Account is a participant in the system. Accounts are created by the
// identity service; this service only mutates location, last donation and badges.
type Account struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	PushToken string     `json:"-"`
	Role      Role       `json:"role"`
	City      string     `json:"city,omitempty"`
	BloodType BloodType  `json:"bloodType,omitempty"`
	Location  *orb.Point `json:"location,omitempty"`

	// Donor-only fields
	LastDonationAt *time.Time `json:"lastDonationDate,omitempty"`
	Badges         []Badge    `json:"badges,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasLocation reports whether a point is stored for the account.
func (a *Account) HasLocation() bool {
	return a != nil && a.Location != nil
}

// HasBadge reports whether the badge is already in the account's set.
func (a *Account) HasBadge(badge Badge) bool {
	return slices.Contains(a.Badges, badge)
}

// Summary returns the id and display name used when attaching an account to a request.
func (a *Account) Summary() *AccountSummary {
	if a == nil {
		return nil
	}

	return &AccountSummary{ID: a.ID, Name: a.Name}
}

// AccountSummary is the minimal view of an account embedded in other responses.
type AccountSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
