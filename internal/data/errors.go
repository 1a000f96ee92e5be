package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	ErrProfileNotFound       = errors.New("profile not found")
	ErrProfileExists         = errors.New("profile already exists")
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrMedicalRecordNotFound = errors.New("medical record not found")
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveNotPending       = errors.New("leave request is not pending")
	ErrInsuranceNotFound     = errors.New("insurance policy not found")
)
