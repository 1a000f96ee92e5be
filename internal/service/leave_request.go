package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/medflow/medflow/internal/data"
	domainauth "github.com/medflow/medflow/internal/domain/auth"
	"github.com/medflow/medflow/internal/domain/model"
	apperrors "github.com/medflow/medflow/internal/errors"
	"github.com/medflow/medflow/internal/ports"
)

const maxLeaveDays = 60

// LeaveRequestServiceOptions groups dependencies for LeaveRequestService.
type LeaveRequestServiceOptions struct {
	Leave ports.LeaveRequestRepository
}

// LeaveRequestService orchestrates the staff leave workflow: filing, listing,
// deciding and cancelling. Deciding requires an admin; nobody approves their
// own request.
type LeaveRequestService struct {
	leave ports.LeaveRequestRepository
}

// NewLeaveRequestService constructs a new LeaveRequestService.
func NewLeaveRequestService(opts LeaveRequestServiceOptions) *LeaveRequestService {
	return &LeaveRequestService{leave: opts.Leave}
}

// Create files a leave request for the principal. Overlapping pending or
// approved requests are rejected before hitting the reviewer queue.
func (s *LeaveRequestService) Create(ctx context.Context, principal domainauth.Principal, req *model.CreateLeaveRequest) (*model.LeaveRequest, error) {
	if principal.Role == domainauth.RolePatient {
		return nil, apperrors.Forbidden("leave requests are for staff members")
	}
	if req == nil {
		return nil, apperrors.Validation("create leave request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	days := model.LeaveRequest{StartDate: req.StartDate, EndDate: req.EndDate}.DurationDays()
	if days > maxLeaveDays {
		return nil, apperrors.ValidationField(
			"end_date", fmt.Sprintf("leave cannot exceed %d days", maxLeaveDays))
	}

	overlapping, err := s.leave.CountOverlapping(ctx, principal.ID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, apperrors.Conflict("an overlapping leave request already exists")
	}

	return s.leave.Create(ctx, principal.ID, req)
}

// GetByID retrieves a leave request. Non-admin staff only see their own.
func (s *LeaveRequestService) GetByID(ctx context.Context, principal domainauth.Principal, id string) (*model.LeaveRequest, error) {
	lr, err := s.leave.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if principal.Role != domainauth.RoleAdmin && lr.EmployeeID != principal.ID {
		return nil, apperrors.NotFound("leave request not found")
	}
	return lr, nil
}

// List retrieves leave requests. Non-admin staff are scoped to their own.
func (s *LeaveRequestService) List(ctx context.Context, principal domainauth.Principal, opts model.LeaveRequestsListOptions) ([]*model.LeaveRequest, error) {
	if principal.Role != domainauth.RoleAdmin {
		id := principal.ID
		opts.EmployeeID = &id
	}
	return s.leave.List(ctx, opts)
}

// Decide approves or rejects a pending request. Only admins decide, and never
// their own requests. A request already out of pending maps to a conflict.
func (s *LeaveRequestService) Decide(ctx context.Context, principal domainauth.Principal, id string, decision model.LeaveDecision) (*model.LeaveRequest, error) {
	if principal.Role != domainauth.RoleAdmin {
		return nil, apperrors.Forbidden("only admins can decide leave requests")
	}

	lr, err := s.leave.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lr.EmployeeID == principal.ID {
		return nil, apperrors.Forbidden("cannot decide your own leave request")
	}

	status := model.LeaveRejected
	if decision.Approve {
		status = model.LeaveApproved
	}
	updated, err := s.leave.SetStatus(ctx, id, status, &model.LeaveDecisionAudit{
		DecidedBy: principal.ID,
		Notes:     decision.Notes,
	})
	if err != nil {
		if errors.Is(err, data.ErrLeaveNotPending) {
			return nil, apperrors.Conflict("leave request has already been decided")
		}
		return nil, err
	}
	return updated, nil
}

// Cancel withdraws the principal's own pending request.
func (s *LeaveRequestService) Cancel(ctx context.Context, principal domainauth.Principal, id string) (*model.LeaveRequest, error) {
	lr, err := s.leave.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lr.EmployeeID != principal.ID {
		return nil, apperrors.Forbidden("only the requester can cancel a leave request")
	}

	updated, err := s.leave.SetStatus(ctx, id, model.LeaveCancelled, nil)
	if err != nil {
		if errors.Is(err, data.ErrLeaveNotPending) {
			return nil, apperrors.Conflict("only pending leave requests can be cancelled")
		}
		return nil, err
	}
	return updated, nil
}
