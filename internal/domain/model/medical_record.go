package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxDiagnosisLen = 1000

// MedicalRecord is a clinical entry for a patient authored by a doctor.
// PatientName and DoctorName are denormalized from profiles on read.
type MedicalRecord struct {
	ID           string    `json:"id"                     db:"id"`
	PatientID    string    `json:"patient_id"             db:"patient_id"`
	PatientName  string    `json:"patient_name"           db:"patient_name"`
	DoctorID     string    `json:"doctor_id"              db:"doctor_id"`
	DoctorName   string    `json:"doctor_name"            db:"doctor_name"`
	Diagnosis    string    `json:"diagnosis"              db:"diagnosis"`
	Symptoms     string    `json:"symptoms"               db:"symptoms"`
	Prescription *string   `json:"prescription,omitempty" db:"prescription"`
	Notes        *string   `json:"notes,omitempty"        db:"notes"`
	CreatedAt    time.Time `json:"created_at"             db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"             db:"updated_at"`
}

// CreateMedicalRecordRequest represents parameters to create a medical record.
// DoctorID is taken from the authenticated principal, never the request body.
type CreateMedicalRecordRequest struct {
	PatientID    string  `json:"patient_id"`
	Diagnosis    string  `json:"diagnosis"`
	Symptoms     string  `json:"symptoms"`
	Prescription *string `json:"prescription,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// Validate validates CreateMedicalRecordRequest.
func (r *CreateMedicalRecordRequest) Validate() error {
	if strings.TrimSpace(r.PatientID) == "" {
		return errors.New("patient_id is required")
	}
	diagnosis := strings.TrimSpace(r.Diagnosis)
	if diagnosis == "" {
		return errors.New("diagnosis is required and cannot be empty")
	}
	if utf8.RuneCountInString(diagnosis) > maxDiagnosisLen {
		return errors.New("diagnosis cannot exceed 1000 characters")
	}
	if strings.TrimSpace(r.Symptoms) == "" {
		return errors.New("symptoms is required and cannot be empty")
	}
	return nil
}

// UpdateMedicalRecordRequest represents parameters to update a medical record.
type UpdateMedicalRecordRequest struct {
	Diagnosis    *string `json:"diagnosis,omitempty"`
	Symptoms     *string `json:"symptoms,omitempty"`
	Prescription *string `json:"prescription,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// Validate validates UpdateMedicalRecordRequest.
func (r *UpdateMedicalRecordRequest) Validate() error {
	if r.Diagnosis == nil && r.Symptoms == nil && r.Prescription == nil && r.Notes == nil {
		return errors.New("at least one field must be provided")
	}
	if r.Diagnosis != nil && strings.TrimSpace(*r.Diagnosis) == "" {
		return errors.New("diagnosis cannot be empty")
	}
	if r.Symptoms != nil && strings.TrimSpace(*r.Symptoms) == "" {
		return errors.New("symptoms cannot be empty")
	}
	return nil
}

// MedicalRecordsListOptions controls paging and filtering for listing records.
type MedicalRecordsListOptions struct {
	Limit     int
	Offset    int
	PatientID *string
	DoctorID  *string
	Q         *string // substring match on diagnosis (ILIKE)
}
