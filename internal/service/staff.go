package service

import (
	"context"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
	"github.com/medflow/medflow/internal/domain/model"
	apperrors "github.com/medflow/medflow/internal/errors"
	"github.com/medflow/medflow/internal/ports"
)

// StaffServiceOptions groups dependencies for StaffService.
type StaffServiceOptions struct {
	Profiles ports.ProfileRepository
}

// StaffService manages profile administration: listing users and changing
// roles. Routes using it are admin-only; the invariants here are the ones a
// guard cannot express.
type StaffService struct {
	profiles ports.ProfileRepository
}

// NewStaffService constructs a new StaffService.
func NewStaffService(opts StaffServiceOptions) *StaffService {
	return &StaffService{profiles: opts.Profiles}
}

// Create registers a profile for an existing provider subject.
func (s *StaffService) Create(ctx context.Context, req *model.CreateProfileRequest) (*model.Profile, error) {
	return s.profiles.Create(ctx, req)
}

// GetByID retrieves a profile.
func (s *StaffService) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

// List retrieves profiles matching the filters.
func (s *StaffService) List(ctx context.Context, opts model.ProfilesListOptions) ([]*model.Profile, error) {
	return s.profiles.List(ctx, opts)
}

// SetRole changes a profile's role. The new role must be a member of the
// closed enumeration, and an admin cannot demote themselves: losing the last
// admin locks everyone out of this very operation.
func (s *StaffService) SetRole(ctx context.Context, principal domainauth.Principal, id string, role string) (*model.Profile, error) {
	parsed := domainauth.ParseRole(role)
	if !parsed.Known() {
		return nil, apperrors.ValidationField("role", "unknown role")
	}
	if id == principal.ID && parsed != domainauth.RoleAdmin {
		return nil, apperrors.Forbidden("cannot remove your own admin role")
	}
	return s.profiles.SetRole(ctx, id, parsed.StorageString())
}
