package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxPurposeLen = 500

// AppointmentStatus tracks an appointment through its lifecycle.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// Valid reports whether the appointment status is supported.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	default:
		return false
	}
}

// ParseAppointmentStatus normalizes a status string and reports whether it is supported.
func ParseAppointmentStatus(value string) (AppointmentStatus, bool) {
	s := AppointmentStatus(strings.ToLower(strings.TrimSpace(value)))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// Terminal reports whether the status admits no further transitions.
func (s AppointmentStatus) Terminal() bool {
	switch s {
	case AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	default:
		return false
	}
}

// Appointment is a scheduled visit between a patient and a doctor.
// PatientName and DoctorName are denormalized from profiles on read.
type Appointment struct {
	ID          string            `json:"id"                    db:"id"`
	PatientID   string            `json:"patient_id"            db:"patient_id"`
	PatientName string            `json:"patient_name"          db:"patient_name"`
	DoctorID    string            `json:"doctor_id"             db:"doctor_id"`
	DoctorName  string            `json:"doctor_name"           db:"doctor_name"`
	ScheduledAt time.Time         `json:"scheduled_at"          db:"scheduled_at"`
	Status      AppointmentStatus `json:"status"                db:"status"`
	Purpose     string            `json:"purpose"               db:"purpose"`
	Notes       *string           `json:"notes,omitempty"       db:"notes"`
	CreatedAt   time.Time         `json:"created_at"            db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"            db:"updated_at"`
}

// CreateAppointmentRequest represents parameters to schedule an appointment.
type CreateAppointmentRequest struct {
	PatientID   string    `json:"patient_id"`
	DoctorID    string    `json:"doctor_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Purpose     string    `json:"purpose"`
	Notes       *string   `json:"notes,omitempty"`
}

// Validate validates CreateAppointmentRequest.
func (r *CreateAppointmentRequest) Validate() error {
	if strings.TrimSpace(r.PatientID) == "" {
		return errors.New("patient_id is required")
	}
	if strings.TrimSpace(r.DoctorID) == "" {
		return errors.New("doctor_id is required")
	}
	if r.ScheduledAt.IsZero() {
		return errors.New("scheduled_at is required")
	}
	purpose := strings.TrimSpace(r.Purpose)
	if purpose == "" {
		return errors.New("purpose is required and cannot be empty")
	}
	if utf8.RuneCountInString(purpose) > maxPurposeLen {
		return errors.New("purpose cannot exceed 500 characters")
	}
	return nil
}

// UpdateAppointmentRequest represents parameters to update an appointment.
type UpdateAppointmentRequest struct {
	ScheduledAt *time.Time         `json:"scheduled_at,omitempty"`
	Status      *AppointmentStatus `json:"status,omitempty"`
	Purpose     *string            `json:"purpose,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
}

// Validate validates UpdateAppointmentRequest.
func (r *UpdateAppointmentRequest) Validate() error {
	if r.ScheduledAt == nil && r.Status == nil && r.Purpose == nil && r.Notes == nil {
		return errors.New("at least one field must be provided")
	}
	if r.Status != nil && !r.Status.Valid() {
		return errors.New("status must be one of: scheduled, confirmed, completed, cancelled, no_show")
	}
	if r.Purpose != nil {
		p := strings.TrimSpace(*r.Purpose)
		if p == "" {
			return errors.New("purpose cannot be empty")
		}
		if utf8.RuneCountInString(p) > maxPurposeLen {
			return errors.New("purpose cannot exceed 500 characters")
		}
	}
	return nil
}

// AppointmentsListOptions controls paging and filtering for listing appointments.
// Notes:
// - PatientID, DoctorID and Status match exactly.
// - From/To bound scheduled_at (inclusive lower, exclusive upper).
// - Sort supports: "scheduled_at", "created_at"; Dir: "asc", "desc".
type AppointmentsListOptions struct {
	Limit     int
	Offset    int
	PatientID *string
	DoctorID  *string
	Status    *AppointmentStatus
	From      *time.Time
	To        *time.Time
	Sort      string
	Dir       string
}
