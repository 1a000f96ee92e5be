package service

import (
	"context"
	"time"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
	"github.com/medflow/medflow/internal/domain/model"
	apperrors "github.com/medflow/medflow/internal/errors"
	"github.com/medflow/medflow/internal/ports"
)

// InsuranceServiceOptions groups dependencies for InsuranceService.
type InsuranceServiceOptions struct {
	Insurance ports.InsuranceRepository
	Now       func() time.Time // defaults to time.Now
}

// InsuranceService orchestrates policy registration and verification at the
// front desk.
type InsuranceService struct {
	insurance ports.InsuranceRepository
	now       func() time.Time
}

// NewInsuranceService constructs a new InsuranceService.
func NewInsuranceService(opts InsuranceServiceOptions) *InsuranceService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &InsuranceService{insurance: opts.Insurance, now: now}
}

// Create registers a new policy, unverified.
func (s *InsuranceService) Create(ctx context.Context, req *model.CreateInsurancePolicyRequest) (*model.InsurancePolicy, error) {
	return s.insurance.Create(ctx, req)
}

// GetByID retrieves a policy.
func (s *InsuranceService) GetByID(ctx context.Context, id string) (*model.InsurancePolicy, error) {
	return s.insurance.GetByID(ctx, id)
}

// List retrieves policies matching the filters.
func (s *InsuranceService) List(ctx context.Context, opts model.InsuranceListOptions) ([]*model.InsurancePolicy, error) {
	return s.insurance.List(ctx, opts)
}

// Verify marks a policy verified by the principal. A lapsed policy cannot be
// verified; it has to be re-registered with a new expiry first.
func (s *InsuranceService) Verify(ctx context.Context, principal domainauth.Principal, id string) (*model.InsurancePolicy, error) {
	policy, err := s.insurance.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if policy.Expired(s.now()) {
		return nil, apperrors.Conflict("cannot verify an expired policy")
	}
	return s.insurance.SetVerified(ctx, id, true, principal.ID)
}

// Unverify clears a prior verification, e.g. after a policy change.
func (s *InsuranceService) Unverify(ctx context.Context, principal domainauth.Principal, id string) (*model.InsurancePolicy, error) {
	return s.insurance.SetVerified(ctx, id, false, principal.ID)
}
