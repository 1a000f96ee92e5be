package ports

import (
	"context"
	"time"

	"github.com/medflow/medflow/internal/domain/model"
)

// ProfileRepository provides database operations for profiles.
type ProfileRepository interface {
	Create(ctx context.Context, req *model.CreateProfileRequest) (*model.Profile, error)
	GetByID(ctx context.Context, id string) (*model.Profile, error)
	List(ctx context.Context, opts model.ProfilesListOptions) ([]*model.Profile, error)
	SetRole(ctx context.Context, id string, role string) (*model.Profile, error)
}

// AppointmentRepository provides database operations for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	List(ctx context.Context, opts model.AppointmentsListOptions) ([]*model.Appointment, error)
	Update(ctx context.Context, id string, req *model.UpdateAppointmentRequest) (*model.Appointment, error)
}

// MedicalRecordRepository provides database operations for medical records.
type MedicalRecordRepository interface {
	Create(ctx context.Context, doctorID string, req *model.CreateMedicalRecordRequest) (*model.MedicalRecord, error)
	GetByID(ctx context.Context, id string) (*model.MedicalRecord, error)
	List(ctx context.Context, opts model.MedicalRecordsListOptions) ([]*model.MedicalRecord, error)
	Update(ctx context.Context, id string, req *model.UpdateMedicalRecordRequest) (*model.MedicalRecord, error)
}

// LeaveRequestRepository provides database operations for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, employeeID string, req *model.CreateLeaveRequest) (*model.LeaveRequest, error)
	GetByID(ctx context.Context, id string) (*model.LeaveRequest, error)
	List(ctx context.Context, opts model.LeaveRequestsListOptions) ([]*model.LeaveRequest, error)
	SetStatus(ctx context.Context, id string, status model.LeaveStatus, decision *model.LeaveDecisionAudit) (*model.LeaveRequest, error)
	CountOverlapping(ctx context.Context, employeeID string, start, end time.Time) (int, error)
}

// InsuranceRepository provides database operations for insurance policies.
type InsuranceRepository interface {
	Create(ctx context.Context, req *model.CreateInsurancePolicyRequest) (*model.InsurancePolicy, error)
	GetByID(ctx context.Context, id string) (*model.InsurancePolicy, error)
	List(ctx context.Context, opts model.InsuranceListOptions) ([]*model.InsurancePolicy, error)
	SetVerified(ctx context.Context, id string, verified bool, verifiedBy string) (*model.InsurancePolicy, error)
}

// StatsRepository provides the dashboard counters.
type StatsRepository interface {
	CountAppointmentsBetween(ctx context.Context, from, to time.Time) (int, error)
	CountAppointmentsAfter(ctx context.Context, from time.Time) (int, error)
	CountLeaveRequestsByStatus(ctx context.Context, status model.LeaveStatus) (int, error)
	CountProfilesByRole(ctx context.Context, role string) (int, error)
	CountUnverifiedInsurance(ctx context.Context) (int, error)
}
