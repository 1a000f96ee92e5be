package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsurancePolicy_DaysUntilExpiry(t *testing.T) {
	now := time.Date(2026, time.August, 28, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry time.Time
		want   int
	}{
		{"expires today", day(2026, time.August, 28), 0},
		{"expires in thirty days", day(2026, time.September, 27), 30},
		{"lapsed last week", day(2026, time.August, 21), -7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := InsurancePolicy{ExpiryDate: tt.expiry}
			assert.Equal(t, tt.want, p.DaysUntilExpiry(now))
		})
	}
}

func TestInsurancePolicy_Expired(t *testing.T) {
	now := day(2026, time.August, 28)
	assert.True(t, InsurancePolicy{ExpiryDate: day(2026, time.August, 27)}.Expired(now))
	assert.False(t, InsurancePolicy{ExpiryDate: day(2026, time.August, 28)}.Expired(now))
}

func TestCreateInsurancePolicyRequest_Validate(t *testing.T) {
	valid := CreateInsurancePolicyRequest{
		PatientID:    "p1",
		Provider:     "Blue Shield",
		PolicyNumber: "BS-12345",
		HolderName:   "John Smith",
		Relationship: "self",
		ExpiryDate:   day(2027, time.January, 1),
	}
	require.NoError(t, valid.Validate())

	missing := valid
	missing.PolicyNumber = " "
	err := missing.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "policy_number is required")

	noExpiry := valid
	noExpiry.ExpiryDate = time.Time{}
	require.Error(t, noExpiry.Validate())
}
