package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/medflow/medflow/internal/data/database"
	"github.com/medflow/medflow/internal/data/pgxutil"
	"github.com/medflow/medflow/internal/domain/model"
	apperrors "github.com/medflow/medflow/internal/errors"
)

const leaveRequestSelect = `
	SELECT l.id, l.employee_id, e.full_name AS employee_name,
	       l.start_date, l.end_date, l.type, l.reason, l.status,
	       l.decided_by, l.decided_at, l.notes, l.created_at
	FROM leave_requests l
	JOIN profiles e ON e.id = l.employee_id`

// LeaveRequestRepo provides database operations for staff leave requests.
type LeaveRequestRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewLeaveRequestRepo creates a new LeaveRequestRepo with real time provider.
func NewLeaveRequestRepo(db *sql.DB) *LeaveRequestRepo {
	return &LeaveRequestRepo{DB: db, timeProvider: RealTimeProvider{}}
}

// NewLeaveRequestRepoWithTimeProvider creates a new LeaveRequestRepo with a custom time provider (useful for tests).
func NewLeaveRequestRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *LeaveRequestRepo {
	return &LeaveRequestRepo{DB: db, timeProvider: tp}
}

// Create inserts a new leave request in pending status for employeeID.
func (r *LeaveRequestRepo) Create(ctx context.Context, employeeID string, req *model.CreateLeaveRequest) (*model.LeaveRequest, error) {
	if req == nil {
		return nil, errors.New("create leave request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	now := r.timeProvider.Now().UTC()
	var id string
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			INSERT INTO leave_requests (employee_id, start_date, end_date, type, reason, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			employeeID, req.StartDate.UTC(), req.EndDate.UTC(),
			string(req.Type), req.Reason,
			string(model.LeavePending), now,
		).Scan(&id)
	})
	if err != nil {
		return nil, fmt.Errorf("create leave request: %w", apperrors.MapDBError(err))
	}
	return r.GetByID(ctx, id)
}

// GetByID retrieves a leave request by id, including the employee name.
func (r *LeaveRequestRepo) GetByID(ctx context.Context, id string) (*model.LeaveRequest, error) {
	var out model.LeaveRequest
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, leaveRequestSelect+` WHERE l.id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.LeaveRequest])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeaveRequestNotFound
		}
		return nil, fmt.Errorf("get leave request: %w", apperrors.MapDBError(err))
	}
	return &out, nil
}

// listLeaveRequestsQuery renders the filtered list statement. Condition
// columns must match the leave_requests schema exactly; a typo here surfaces
// as undefined_column at runtime.
func listLeaveRequestsQuery(opts model.LeaveRequestsListOptions) (string, []any) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	q := database.ListQuery{
		Select:   leaveRequestSelect,
		OrderBy:  "l.created_at",
		OrderDir: "desc",
		Limit:    limit,
		Offset:   offset,
	}
	if opts.EmployeeID != nil {
		q.Conditions = append(q.Conditions, database.Where("l.employee_id", database.Equal, *opts.EmployeeID))
	}
	if opts.Status != nil {
		q.Conditions = append(q.Conditions, database.Where("l.status", database.Equal, string(*opts.Status)))
	}
	if opts.Type != nil {
		q.Conditions = append(q.Conditions, database.Where("l.type", database.Equal, string(*opts.Type)))
	}
	return q.Build()
}

// List retrieves leave requests matching the given filters, newest first.
func (r *LeaveRequestRepo) List(ctx context.Context, opts model.LeaveRequestsListOptions) ([]*model.LeaveRequest, error) {
	query, args := listLeaveRequestsQuery(opts)
	var rowsOut []model.LeaveRequest
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.LeaveRequest])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.LeaveRequest, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// SetStatus transitions a leave request out of pending. The current status is
// locked and checked inside the transaction so two reviewers cannot both
// decide the same request. decision carries the reviewer audit fields and is
// required for approved/rejected transitions.
func (r *LeaveRequestRepo) SetStatus(ctx context.Context, id string, status model.LeaveStatus, decision *model.LeaveDecisionAudit) (*model.LeaveRequest, error) {
	if !status.Valid() || status == model.LeavePending {
		return nil, apperrors.Validation(fmt.Sprintf("invalid leave status transition target %q", status))
	}

	err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		var current string
		if err := tx.QueryRow(ctx, `SELECT status FROM leave_requests WHERE id = $1 FOR UPDATE`, id).Scan(&current); err != nil {
			return err
		}
		if model.LeaveStatus(current) != model.LeavePending {
			return ErrLeaveNotPending
		}

		if decision != nil {
			_, err := tx.Exec(ctx, `
				UPDATE leave_requests
				SET status = $2, decided_by = $3, decided_at = $4, notes = $5
				WHERE id = $1`,
				id, string(status), decision.DecidedBy, r.timeProvider.Now().UTC(), decision.Notes)
			return err
		}
		_, err := tx.Exec(ctx, `UPDATE leave_requests SET status = $2 WHERE id = $1`,
			id, string(status))
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeaveRequestNotFound
		}
		if errors.Is(err, ErrLeaveNotPending) {
			return nil, ErrLeaveNotPending
		}
		return nil, fmt.Errorf("set leave request status: %w", apperrors.MapDBError(err))
	}
	return r.GetByID(ctx, id)
}

// CountOverlapping counts the employee's pending or approved requests whose
// date range intersects [start, end].
func (r *LeaveRequestRepo) CountOverlapping(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	var n int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			SELECT COUNT(*) FROM leave_requests
			WHERE employee_id = $1
			  AND status IN ($2, $3)
			  AND NOT (end_date < $4 OR start_date > $5)`,
			employeeID,
			string(model.LeavePending), string(model.LeaveApproved),
			start.UTC(), end.UTC(),
		).Scan(&n)
	})
	if err != nil {
		return 0, fmt.Errorf("count overlapping leave: %w", apperrors.MapDBError(err))
	}
	return n, nil
}
