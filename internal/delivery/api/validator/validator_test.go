package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	BloodType string   `json:"bloodType" validate:"required,bloodtype"`
	Units     int      `json:"units" validate:"gt=0"`
	Urgency   string   `json:"urgency" validate:"urgency"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

func TestValidator_Valid(t *testing.T) {
	v := New()
	lon := 73.85

	assert.NoError(t, v.Validate(&sample{BloodType: "O+", Units: 2, Longitude: &lon}))
	assert.NoError(t, v.Validate(&sample{BloodType: "AB-", Units: 1, Urgency: "Scheduled"}))
}

func TestValidator_DescribeUsesJSONNames(t *testing.T) {
	v := New()
	lon := 200.0

	err := v.Validate(&sample{BloodType: "Z+", Units: 0, Urgency: "Whenever", Longitude: &lon})
	require.Error(t, err)

	msg := Describe(err)
	assert.Contains(t, msg, "bloodType must be one of")
	assert.Contains(t, msg, "units must be greater than 0")
	assert.Contains(t, msg, "urgency must be Urgent or Scheduled")
	assert.Contains(t, msg, "longitude must be at most 180")
}

func TestDescribe_NonValidationError(t *testing.T) {
	assert.Equal(t, "boom", Describe(errors.New("boom")))
}
