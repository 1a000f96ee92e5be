package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/medflow/medflow/internal/domain/model"
	apperrors "github.com/medflow/medflow/internal/errors"
	"github.com/medflow/medflow/internal/mocks"
)

func newStaffService(t *testing.T) (*mocks.MockProfileRepository, *StaffService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockProfileRepository(ctrl)
	service := NewStaffService(StaffServiceOptions{Profiles: repo})
	return repo, service
}

func TestStaffService_SetRole_Success(t *testing.T) {
	t.Parallel()
	repo, service := newStaffService(t)

	ctx := context.Background()
	expected := &model.Profile{ID: "nurse-1", FullName: "Nina Nurse"}

	// The stored form is lowercase regardless of input casing.
	repo.EXPECT().SetRole(ctx, "nurse-1", "doctor").Return(expected, nil).Times(1)

	result, err := service.SetRole(ctx, adminPrincipal(), "nurse-1", "DOCTOR")
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestStaffService_SetRole_UnknownRole(t *testing.T) {
	t.Parallel()
	_, service := newStaffService(t)

	_, err := service.SetRole(context.Background(), adminPrincipal(), "nurse-1", "superuser")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidation))
}

func TestStaffService_SetRole_SelfDemotionBlocked(t *testing.T) {
	t.Parallel()
	repo, service := newStaffService(t)

	ctx := context.Background()
	admin := adminPrincipal()

	_, err := service.SetRole(ctx, admin, admin.ID, "nurse")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeForbidden))

	// Re-asserting admin on yourself is a no-op worth allowing.
	repo.EXPECT().SetRole(ctx, admin.ID, "admin").
		Return(&model.Profile{ID: admin.ID}, nil).
		Times(1)
	_, err = service.SetRole(ctx, admin, admin.ID, "admin")
	require.NoError(t, err)
}
