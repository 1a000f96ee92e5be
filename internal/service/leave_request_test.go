package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/medflow/medflow/internal/data"
	"github.com/medflow/medflow/internal/domain/model"
	apperrors "github.com/medflow/medflow/internal/errors"
	"github.com/medflow/medflow/internal/mocks"
)

// newLeaveRequestService creates a mock repository and service for testing.
func newLeaveRequestService(t *testing.T) (*mocks.MockLeaveRequestRepository, *LeaveRequestService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockLeaveRequestRepository(ctrl)
	service := NewLeaveRequestService(LeaveRequestServiceOptions{Leave: repo})
	return repo, service
}

func validLeaveRequest() *model.CreateLeaveRequest {
	return &model.CreateLeaveRequest{
		StartDate: time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		Type:      model.LeaveVacation,
		Reason:    "spring break",
	}
}

func TestLeaveRequestService_Create_Success(t *testing.T) {
	t.Parallel()
	repo, service := newLeaveRequestService(t)

	ctx := context.Background()
	principal := nursePrincipal()
	req := validLeaveRequest()

	expected := &model.LeaveRequest{
		ID:         "leave-1",
		EmployeeID: principal.ID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Type:       req.Type,
		Reason:     req.Reason,
		Status:     model.LeavePending,
	}

	repo.EXPECT().
		CountOverlapping(ctx, principal.ID, req.StartDate, req.EndDate).
		Return(0, nil).
		Times(1)
	repo.EXPECT().
		Create(ctx, principal.ID, req).
		Return(expected, nil).
		Times(1)

	result, err := service.Create(ctx, principal, req)
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestLeaveRequestService_Create_PatientForbidden(t *testing.T) {
	t.Parallel()
	_, service := newLeaveRequestService(t)

	_, err := service.Create(context.Background(), patientPrincipal(), validLeaveRequest())
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeForbidden))
}

func TestLeaveRequestService_Create_Overlap(t *testing.T) {
	t.Parallel()
	repo, service := newLeaveRequestService(t)

	ctx := context.Background()
	principal := nursePrincipal()
	req := validLeaveRequest()

	repo.EXPECT().
		CountOverlapping(ctx, principal.ID, req.StartDate, req.EndDate).
		Return(1, nil).
		Times(1)

	_, err := service.Create(ctx, principal, req)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeConflict))
}

func TestLeaveRequestService_Create_TooLong(t *testing.T) {
	t.Parallel()
	_, service := newLeaveRequestService(t)

	req := validLeaveRequest()
	req.EndDate = req.StartDate.AddDate(0, 0, 90)

	_, err := service.Create(context.Background(), nursePrincipal(), req)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidation))
}

func TestLeaveRequestService_Create_InvalidDates(t *testing.T) {
	t.Parallel()
	_, service := newLeaveRequestService(t)

	req := validLeaveRequest()
	req.EndDate = req.StartDate.AddDate(0, 0, -1)

	_, err := service.Create(context.Background(), nursePrincipal(), req)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidation))
}

func TestLeaveRequestService_GetByID_ScopedToOwner(t *testing.T) {
	t.Parallel()
	repo, service := newLeaveRequestService(t)

	ctx := context.Background()
	lr := &model.LeaveRequest{ID: "leave-1", EmployeeID: "someone-else", Status: model.LeavePending}

	repo.EXPECT().GetByID(ctx, "leave-1").Return(lr, nil).Times(2)

	// A nurse cannot see another employee's request; the response does not
	// even confirm it exists.
	_, err := service.GetByID(ctx, nursePrincipal(), "leave-1")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))

	// Admins see everything.
	got, err := service.GetByID(ctx, adminPrincipal(), "leave-1")
	require.NoError(t, err)
	assert.Equal(t, lr, got)
}

func TestLeaveRequestService_List_ForcesEmployeeScope(t *testing.T) {
	t.Parallel()
	repo, service := newLeaveRequestService(t)

	ctx := context.Background()
	principal := nursePrincipal()

	repo.EXPECT().
		List(ctx, gomock.Cond(func(opts model.LeaveRequestsListOptions) bool {
			return opts.EmployeeID != nil && *opts.EmployeeID == principal.ID
		})).
		Return([]*model.LeaveRequest{}, nil).
		Times(1)

	otherID := "someone-else"
	_, err := service.List(ctx, principal, model.LeaveRequestsListOptions{EmployeeID: &otherID})
	require.NoError(t, err)
}

func TestLeaveRequestService_Decide_Approve(t *testing.T) {
	t.Parallel()
	repo, service := newLeaveRequestService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	notes := stringPtr("enjoy")

	pending := &model.LeaveRequest{ID: "leave-1", EmployeeID: "nurse-1", Status: model.LeavePending}
	approved := &model.LeaveRequest{ID: "leave-1", EmployeeID: "nurse-1", Status: model.LeaveApproved}

	repo.EXPECT().GetByID(ctx, "leave-1").Return(pending, nil).Times(1)
	repo.EXPECT().
		SetStatus(ctx, "leave-1", model.LeaveApproved, &model.LeaveDecisionAudit{
			DecidedBy: admin.ID,
			Notes:     notes,
		}).
		Return(approved, nil).
		Times(1)

	result, err := service.Decide(ctx, admin, "leave-1", model.LeaveDecision{Approve: true, Notes: notes})
	require.NoError(t, err)
	assert.Equal(t, model.LeaveApproved, result.Status)
}

func TestLeaveRequestService_Decide_NonAdminForbidden(t *testing.T) {
	t.Parallel()
	_, service := newLeaveRequestService(t)

	_, err := service.Decide(context.Background(), doctorPrincipal(), "leave-1", model.LeaveDecision{Approve: true})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeForbidden))
}

func TestLeaveRequestService_Decide_OwnRequestForbidden(t *testing.T) {
	t.Parallel()
	repo, service := newLeaveRequestService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	own := &model.LeaveRequest{ID: "leave-1", EmployeeID: admin.ID, Status: model.LeavePending}

	repo.EXPECT().GetByID(ctx, "leave-1").Return(own, nil).Times(1)

	_, err := service.Decide(ctx, admin, "leave-1", model.LeaveDecision{Approve: true})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeForbidden))
}

func TestLeaveRequestService_Decide_AlreadyDecided(t *testing.T) {
	t.Parallel()
	repo, service := newLeaveRequestService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	pending := &model.LeaveRequest{ID: "leave-1", EmployeeID: "nurse-1", Status: model.LeavePending}

	repo.EXPECT().GetByID(ctx, "leave-1").Return(pending, nil).Times(1)
	repo.EXPECT().
		SetStatus(ctx, "leave-1", model.LeaveRejected, gomock.Any()).
		Return(nil, data.ErrLeaveNotPending).
		Times(1)

	_, err := service.Decide(ctx, admin, "leave-1", model.LeaveDecision{Approve: false})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeConflict))
}

func TestLeaveRequestService_Cancel_RequesterOnly(t *testing.T) {
	t.Parallel()
	repo, service := newLeaveRequestService(t)

	ctx := context.Background()
	principal := nursePrincipal()
	lr := &model.LeaveRequest{ID: "leave-1", EmployeeID: "someone-else", Status: model.LeavePending}

	repo.EXPECT().GetByID(ctx, "leave-1").Return(lr, nil).Times(1)

	_, err := service.Cancel(ctx, principal, "leave-1")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeForbidden))
}

func TestLeaveRequestService_Cancel_NotPending(t *testing.T) {
	t.Parallel()
	repo, service := newLeaveRequestService(t)

	ctx := context.Background()
	principal := nursePrincipal()
	lr := &model.LeaveRequest{ID: "leave-1", EmployeeID: principal.ID, Status: model.LeaveApproved}

	repo.EXPECT().GetByID(ctx, "leave-1").Return(lr, nil).Times(1)
	repo.EXPECT().
		SetStatus(ctx, "leave-1", model.LeaveCancelled, nil).
		Return(nil, data.ErrLeaveNotPending).
		Times(1)

	_, err := service.Cancel(ctx, principal, "leave-1")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeConflict))
}
