package service

import (
	"context"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
	"github.com/medflow/medflow/internal/domain/model"
	apperrors "github.com/medflow/medflow/internal/errors"
	"github.com/medflow/medflow/internal/ports"
)

// MedicalRecordServiceOptions groups dependencies for MedicalRecordService.
type MedicalRecordServiceOptions struct {
	Records ports.MedicalRecordRepository
}

// MedicalRecordService orchestrates clinical record access. Authoring is
// restricted to doctors; the author id always comes from the principal.
type MedicalRecordService struct {
	records ports.MedicalRecordRepository
}

// NewMedicalRecordService constructs a new MedicalRecordService.
func NewMedicalRecordService(opts MedicalRecordServiceOptions) *MedicalRecordService {
	return &MedicalRecordService{records: opts.Records}
}

// Create creates a record authored by the principal, who must be a doctor.
func (s *MedicalRecordService) Create(ctx context.Context, principal domainauth.Principal, req *model.CreateMedicalRecordRequest) (*model.MedicalRecord, error) {
	if principal.Role != domainauth.RoleDoctor {
		return nil, apperrors.Forbidden("only doctors can author medical records")
	}
	return s.records.Create(ctx, principal.ID, req)
}

// GetByID retrieves a medical record.
func (s *MedicalRecordService) GetByID(ctx context.Context, id string) (*model.MedicalRecord, error) {
	return s.records.GetByID(ctx, id)
}

// List retrieves medical records matching the filters.
func (s *MedicalRecordService) List(ctx context.Context, opts model.MedicalRecordsListOptions) ([]*model.MedicalRecord, error) {
	return s.records.List(ctx, opts)
}

// Update modifies a record. Only the authoring doctor may edit it.
func (s *MedicalRecordService) Update(ctx context.Context, principal domainauth.Principal, id string, req *model.UpdateMedicalRecordRequest) (*model.MedicalRecord, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if principal.Role != domainauth.RoleDoctor || rec.DoctorID != principal.ID {
		return nil, apperrors.Forbidden("only the authoring doctor can edit a medical record")
	}
	return s.records.Update(ctx, id, req)
}
