package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAcceptModeFor(t *testing.T) {
	tests := []struct {
		role   Role
		mode   AcceptMode
		status RequestStatus
	}{
		{RoleDonor, AcceptAsDonor, StatusInProgress},
		{RolePatient, AcceptAsDonor, StatusInProgress},
		{RoleAdmin, AcceptAsDonor, StatusInProgress},
		{RoleHospital, AcceptAsHospital, StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			mode := AcceptModeFor(tt.role)
			assert.Equal(t, tt.mode, mode)
			assert.Equal(t, tt.status, mode.TargetStatus())
		})
	}
}

func TestMilestoneFor(t *testing.T) {
	expected := map[int64]Badge{
		1:  BadgeFirstDonation,
		5:  BadgeFiveDonations,
		10: BadgeBloodHero,
	}

	for count := int64(0); count <= 12; count++ {
		assert.Equal(t, expected[count], MilestoneFor(count), "count %d", count)
	}
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole(" Hospital ")
	assert.True(t, ok)
	assert.Equal(t, RoleHospital, role)

	_, ok = ParseRole("merchant")
	assert.False(t, ok)
}

func TestBloodType_IsValid(t *testing.T) {
	for _, bt := range []BloodType{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"} {
		assert.True(t, bt.IsValid(), bt.String())
	}
	assert.False(t, BloodType("C+").IsValid())
	assert.False(t, BloodType("").IsValid())
}

func TestAlert_Body(t *testing.T) {
	alert := Alert{RequestID: uuid.New(), BloodType: BloodTypeONegative, HospitalName: "Ruby Hall", City: "Pune"}

	assert.Equal(t,
		"Urgent need for O- blood at Ruby Hall, Pune. Can you help? Log in to your LifeFlow account to respond.",
		alert.Body(),
	)
}

func TestAccount_HasBadge(t *testing.T) {
	account := &Account{Badges: []Badge{BadgeFirstDonation}}

	assert.True(t, account.HasBadge(BadgeFirstDonation))
	assert.False(t, account.HasBadge(BadgeBloodHero))
	assert.False(t, (&Account{}).HasLocation())
}
