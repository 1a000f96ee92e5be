package data

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/medflow/medflow/internal/data/pgxutil"
	"github.com/medflow/medflow/internal/domain/model"
	apperrors "github.com/medflow/medflow/internal/errors"
)

// StatsRepo provides the aggregate counters behind the dashboard.
type StatsRepo struct {
	DB *sql.DB
}

// NewStatsRepo creates a new StatsRepo.
func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{DB: db}
}

func (r *StatsRepo) count(ctx context.Context, label, query string, args ...any) (int, error) {
	var n int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query, args...).Scan(&n)
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", label, apperrors.MapDBError(err))
	}
	return n, nil
}

// CountAppointmentsBetween counts non-cancelled appointments scheduled in [from, to).
func (r *StatsRepo) CountAppointmentsBetween(ctx context.Context, from, to time.Time) (int, error) {
	return r.count(ctx, "count appointments between", `
		SELECT COUNT(*) FROM appointments
		WHERE scheduled_at >= $1 AND scheduled_at < $2 AND status NOT IN ($3, $4)`,
		from.UTC(), to.UTC(),
		string(model.AppointmentCancelled), string(model.AppointmentNoShow))
}

// CountAppointmentsAfter counts upcoming non-terminal appointments from the given instant.
func (r *StatsRepo) CountAppointmentsAfter(ctx context.Context, from time.Time) (int, error) {
	return r.count(ctx, "count upcoming appointments", `
		SELECT COUNT(*) FROM appointments
		WHERE scheduled_at >= $1 AND status IN ($2, $3)`,
		from.UTC(),
		string(model.AppointmentScheduled), string(model.AppointmentConfirmed))
}

// CountLeaveRequestsByStatus counts leave requests in the given status.
func (r *StatsRepo) CountLeaveRequestsByStatus(ctx context.Context, status model.LeaveStatus) (int, error) {
	return r.count(ctx, "count leave requests", `
		SELECT COUNT(*) FROM leave_requests WHERE status = $1`, string(status))
}

// CountProfilesByRole counts profiles holding the given storage-form role.
func (r *StatsRepo) CountProfilesByRole(ctx context.Context, role string) (int, error) {
	return r.count(ctx, "count profiles by role", `
		SELECT COUNT(*) FROM profiles WHERE role = $1`, role)
}

// CountUnverifiedInsurance counts policies awaiting verification.
func (r *StatsRepo) CountUnverifiedInsurance(ctx context.Context) (int, error) {
	return r.count(ctx, "count unverified insurance", `
		SELECT COUNT(*) FROM insurance_policies WHERE verified = FALSE`)
}
