package model

import (
	"errors"
	"strings"
	"time"
)

// InsurancePolicy is a patient's insurance coverage record subject to
// verification by front-desk staff. PatientName is denormalized on read.
type InsurancePolicy struct {
	ID              string     `json:"id"                         db:"id"`
	PatientID       string     `json:"patient_id"                 db:"patient_id"`
	PatientName     string     `json:"patient_name"               db:"patient_name"`
	Provider        string     `json:"provider"                   db:"provider"`
	PolicyNumber    string     `json:"policy_number"              db:"policy_number"`
	GroupNumber     *string    `json:"group_number,omitempty"     db:"group_number"`
	HolderName      string     `json:"holder_name"                db:"holder_name"`
	Relationship    string     `json:"relationship"               db:"relationship"`
	ExpiryDate      time.Time  `json:"expiry_date"                db:"expiry_date"`
	CoverageDetails *string    `json:"coverage_details,omitempty" db:"coverage_details"`
	Verified        bool       `json:"verified"                   db:"verified"`
	VerifiedBy      *string    `json:"verified_by,omitempty"      db:"verified_by"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"      db:"verified_at"`
	CreatedAt       time.Time  `json:"created_at"                 db:"created_at"`
}

// DaysUntilExpiry returns the number of whole days between now and the expiry
// date. Negative values mean the policy has lapsed.
func (p InsurancePolicy) DaysUntilExpiry(now time.Time) int {
	return int(p.ExpiryDate.Truncate(24*time.Hour).Sub(now.Truncate(24*time.Hour)).Hours() / 24)
}

// Expired reports whether the policy has lapsed as of now.
func (p InsurancePolicy) Expired(now time.Time) bool {
	return p.DaysUntilExpiry(now) < 0
}

// CreateInsurancePolicyRequest represents parameters to register a policy.
type CreateInsurancePolicyRequest struct {
	PatientID       string    `json:"patient_id"`
	Provider        string    `json:"provider"`
	PolicyNumber    string    `json:"policy_number"`
	GroupNumber     *string   `json:"group_number,omitempty"`
	HolderName      string    `json:"holder_name"`
	Relationship    string    `json:"relationship"`
	ExpiryDate      time.Time `json:"expiry_date"`
	CoverageDetails *string   `json:"coverage_details,omitempty"`
}

// Validate validates CreateInsurancePolicyRequest.
func (r *CreateInsurancePolicyRequest) Validate() error {
	if strings.TrimSpace(r.PatientID) == "" {
		return errors.New("patient_id is required")
	}
	if strings.TrimSpace(r.Provider) == "" {
		return errors.New("provider is required and cannot be empty")
	}
	if strings.TrimSpace(r.PolicyNumber) == "" {
		return errors.New("policy_number is required and cannot be empty")
	}
	if strings.TrimSpace(r.HolderName) == "" {
		return errors.New("holder_name is required and cannot be empty")
	}
	if strings.TrimSpace(r.Relationship) == "" {
		return errors.New("relationship is required and cannot be empty")
	}
	if r.ExpiryDate.IsZero() {
		return errors.New("expiry_date is required")
	}
	return nil
}

// InsuranceListOptions controls paging and filtering for listing policies.
// ExpiringWithinDays keeps policies whose expiry falls inside the window.
type InsuranceListOptions struct {
	Limit              int
	Offset             int
	PatientID          *string
	Verified           *bool
	ExpiringWithinDays *int
}
