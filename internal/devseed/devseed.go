// Package devseed populates a development database with a small set of
// profiles and sample clinic data so a fresh checkout is usable immediately.
// It is idempotent: records that already exist are left alone.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/medflow/medflow/internal/data"
	"github.com/medflow/medflow/internal/domain/auth"
	"github.com/medflow/medflow/internal/domain/model"
)

// Services bundles the repositories needed for development seeding.
type Services struct {
	DB           *sql.DB
	profiles     *data.ProfileRepo
	appointments *data.AppointmentRepo
	records      *data.MedicalRecordRepo
	leave        *data.LeaveRequestRepo
	insurance    *data.InsuranceRepo
}

// NewServices constructs the repositories for seeding using the provided DB.
func NewServices(db *sql.DB) Services {
	return Services{
		DB:           db,
		profiles:     data.NewProfileRepo(db),
		appointments: data.NewAppointmentRepo(db),
		records:      data.NewMedicalRecordRepo(db),
		leave:        data.NewLeaveRequestRepo(db),
		insurance:    data.NewInsuranceRepo(db),
	}
}

// Stable IDs so DEV_AUTH_USERS entries can reference seeded profiles.
const (
	SeedAdminID        = "dev-admin"
	SeedDoctorID       = "dev-doctor"
	SeedNurseID        = "dev-nurse"
	SeedReceptionistID = "dev-receptionist"
	SeedPatientID      = "dev-patient"
)

type seedProfile struct {
	ID       string
	FullName string
	Role     auth.Role
}

func seedProfiles() []seedProfile {
	return []seedProfile{
		{ID: SeedAdminID, FullName: "Dev Admin", Role: auth.RoleAdmin},
		{ID: SeedDoctorID, FullName: "Dev Doctor", Role: auth.RoleDoctor},
		{ID: SeedNurseID, FullName: "Dev Nurse", Role: auth.RoleNurse},
		{ID: SeedReceptionistID, FullName: "Dev Receptionist", Role: auth.RoleReceptionist},
		{ID: SeedPatientID, FullName: "Dev Patient", Role: auth.RolePatient},
	}
}

// Run executes the full development seeding workflow against the provided DB.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	created, err := ensureProfiles(ctx, svcs.profiles, logger)
	if err != nil {
		return err
	}
	if !created {
		// Profiles already present; assume sample data was seeded with them.
		logger.InfoContext(ctx, "development profiles already seeded, skipping sample data")
		return nil
	}

	if err := seedSampleData(ctx, svcs, logger); err != nil {
		return err
	}

	logger.InfoContext(ctx, "development seeding complete")
	return nil
}

// ensureProfiles creates the seed profiles and reports whether any profile
// was newly created.
func ensureProfiles(ctx context.Context, repo *data.ProfileRepo, logger *slog.Logger) (bool, error) {
	createdAny := false
	for _, p := range seedProfiles() {
		_, err := repo.Create(ctx, &model.CreateProfileRequest{
			ID:       p.ID,
			FullName: p.FullName,
			Role:     p.Role,
		})
		switch {
		case err == nil:
			createdAny = true
			logger.InfoContext(ctx, "seeded profile", "id", p.ID, "role", p.Role)
		case errors.Is(err, data.ErrProfileExists):
			// idempotent re-run
		default:
			return createdAny, fmt.Errorf("seed profile %s: %w", p.ID, err)
		}
	}
	return createdAny, nil
}

func seedSampleData(ctx context.Context, svcs Services, logger *slog.Logger) error {
	now := time.Now().UTC()
	tomorrow := now.Add(24 * time.Hour).Truncate(time.Hour)

	if _, err := svcs.appointments.Create(ctx, &model.CreateAppointmentRequest{
		PatientID:   SeedPatientID,
		DoctorID:    SeedDoctorID,
		ScheduledAt: tomorrow,
		Purpose:     "Annual checkup",
	}); err != nil {
		return fmt.Errorf("seed appointment: %w", err)
	}

	prescription := "Lisinopril 10mg daily"
	if _, err := svcs.records.Create(ctx, SeedDoctorID, &model.CreateMedicalRecordRequest{
		PatientID:    SeedPatientID,
		Diagnosis:    "Hypertension, stage 1",
		Symptoms:     "Elevated blood pressure on two consecutive visits",
		Prescription: &prescription,
	}); err != nil {
		return fmt.Errorf("seed medical record: %w", err)
	}

	leaveStart := now.Add(14 * 24 * time.Hour).Truncate(24 * time.Hour)
	if _, err := svcs.leave.Create(ctx, SeedNurseID, &model.CreateLeaveRequest{
		StartDate: leaveStart,
		EndDate:   leaveStart.Add(4 * 24 * time.Hour),
		Type:      model.LeaveVacation,
		Reason:    "Family trip",
	}); err != nil {
		return fmt.Errorf("seed leave request: %w", err)
	}

	if _, err := svcs.insurance.Create(ctx, &model.CreateInsurancePolicyRequest{
		PatientID:    SeedPatientID,
		Provider:     "Acme Health",
		PolicyNumber: "ACME-0001",
		HolderName:   "Dev Patient",
		Relationship: "self",
		ExpiryDate:   now.Add(365 * 24 * time.Hour),
	}); err != nil {
		return fmt.Errorf("seed insurance policy: %w", err)
	}

	logger.InfoContext(ctx, "seeded sample clinic data")
	return nil
}
