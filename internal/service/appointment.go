package service

import (
	"context"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
	"github.com/medflow/medflow/internal/domain/model"
	apperrors "github.com/medflow/medflow/internal/errors"
	"github.com/medflow/medflow/internal/ports"
)

// AppointmentServiceOptions groups dependencies for AppointmentService.
type AppointmentServiceOptions struct {
	Appointments ports.AppointmentRepository
}

// AppointmentService orchestrates appointment scheduling. Patients only ever
// see their own appointments; scoping happens here so no handler can forget.
type AppointmentService struct {
	appointments ports.AppointmentRepository
}

// NewAppointmentService constructs a new AppointmentService.
func NewAppointmentService(opts AppointmentServiceOptions) *AppointmentService {
	return &AppointmentService{appointments: opts.Appointments}
}

// Create schedules an appointment. A patient can only book for themselves.
func (s *AppointmentService) Create(ctx context.Context, principal domainauth.Principal, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if principal.Role == domainauth.RolePatient {
		if req == nil || req.PatientID != principal.ID {
			return nil, apperrors.Forbidden("patients can only book their own appointments")
		}
	}
	return s.appointments.Create(ctx, req)
}

// GetByID retrieves an appointment, restricted to participants for patients.
func (s *AppointmentService) GetByID(ctx context.Context, principal domainauth.Principal, id string) (*model.Appointment, error) {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if principal.Role == domainauth.RolePatient && appt.PatientID != principal.ID {
		// Reveal nothing about other patients' bookings.
		return nil, apperrors.NotFound("appointment not found")
	}
	return appt, nil
}

// List retrieves appointments. For patients the filter is forced to their own
// id regardless of what the request asked for.
func (s *AppointmentService) List(ctx context.Context, principal domainauth.Principal, opts model.AppointmentsListOptions) ([]*model.Appointment, error) {
	if principal.Role == domainauth.RolePatient {
		id := principal.ID
		opts.PatientID = &id
	}
	return s.appointments.List(ctx, opts)
}

// Update modifies an appointment. Patients may only cancel their own.
func (s *AppointmentService) Update(ctx context.Context, principal domainauth.Principal, id string, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	if principal.Role == domainauth.RolePatient {
		if err := s.checkPatientUpdate(ctx, principal, id, req); err != nil {
			return nil, err
		}
	}
	return s.appointments.Update(ctx, id, req)
}

func (s *AppointmentService) checkPatientUpdate(ctx context.Context, principal domainauth.Principal, id string, req *model.UpdateAppointmentRequest) error {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appt.PatientID != principal.ID {
		return apperrors.NotFound("appointment not found")
	}
	if req == nil || req.Status == nil || *req.Status != model.AppointmentCancelled ||
		req.ScheduledAt != nil || req.Purpose != nil || req.Notes != nil {
		return apperrors.Forbidden("patients can only cancel their appointments")
	}
	return nil
}
