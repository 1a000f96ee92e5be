package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/medflow/medflow/internal/data/database"
	"github.com/medflow/medflow/internal/data/pgxutil"
	"github.com/medflow/medflow/internal/domain/model"
	apperrors "github.com/medflow/medflow/internal/errors"
)

// appointmentSelect joins the profiles table twice so every appointment row
// carries the denormalized patient and doctor display names.
const appointmentSelect = `
	SELECT a.id, a.patient_id, p.full_name AS patient_name,
	       a.doctor_id, d.full_name AS doctor_name,
	       a.scheduled_at, a.status, a.purpose, a.notes,
	       a.created_at, a.updated_at
	FROM appointments a
	JOIN profiles p ON p.id = a.patient_id
	JOIN profiles d ON d.id = a.doctor_id`

// AppointmentRepo provides database operations for appointments.
type AppointmentRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewAppointmentRepo creates a new AppointmentRepo with real time provider.
func NewAppointmentRepo(db *sql.DB) *AppointmentRepo {
	return &AppointmentRepo{DB: db, timeProvider: RealTimeProvider{}}
}

// NewAppointmentRepoWithTimeProvider creates a new AppointmentRepo with a custom time provider (useful for tests).
func NewAppointmentRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *AppointmentRepo {
	return &AppointmentRepo{DB: db, timeProvider: tp}
}

// Create inserts a new appointment in scheduled status.
func (r *AppointmentRepo) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if req == nil {
		return nil, errors.New("create appointment request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	now := r.timeProvider.Now().UTC()
	var id string
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			INSERT INTO appointments (patient_id, doctor_id, scheduled_at, status, purpose, notes, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
			RETURNING id`,
			req.PatientID, req.DoctorID, req.ScheduledAt.UTC(),
			string(model.AppointmentScheduled),
			strings.TrimSpace(req.Purpose), req.Notes, now,
		).Scan(&id)
	})
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", apperrors.MapDBError(err))
	}
	return r.GetByID(ctx, id)
}

// GetByID retrieves an appointment by id, including participant names.
func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	var out model.Appointment
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, appointmentSelect+` WHERE a.id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Appointment])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", apperrors.MapDBError(err))
	}
	return &out, nil
}

// List retrieves appointments matching the given filters.
func (r *AppointmentRepo) List(ctx context.Context, opts model.AppointmentsListOptions) ([]*model.Appointment, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	orderBy := "a.scheduled_at"
	if opts.Sort == "created_at" {
		orderBy = "a.created_at"
	}
	orderDir := "asc"
	if strings.EqualFold(opts.Dir, "desc") {
		orderDir = "desc"
	}

	q := database.ListQuery{
		Select:   appointmentSelect,
		OrderBy:  orderBy,
		OrderDir: orderDir,
		Limit:    limit,
		Offset:   offset,
	}
	if opts.PatientID != nil {
		q.Conditions = append(q.Conditions, database.Where("a.patient_id", database.Equal, *opts.PatientID))
	}
	if opts.DoctorID != nil {
		q.Conditions = append(q.Conditions, database.Where("a.doctor_id", database.Equal, *opts.DoctorID))
	}
	if opts.Status != nil {
		q.Conditions = append(q.Conditions, database.Where("a.status", database.Equal, string(*opts.Status)))
	}
	if opts.From != nil {
		q.Conditions = append(q.Conditions, database.Where("a.scheduled_at", database.GreaterThanOrEqual, opts.From.UTC()))
	}
	if opts.To != nil {
		q.Conditions = append(q.Conditions, database.Where("a.scheduled_at", database.LessThan, opts.To.UTC()))
	}

	query, args := q.Build()
	var rowsOut []model.Appointment
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Appointment])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.Appointment, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update applies the non-nil fields of req to an existing appointment.
// Status transitions out of a terminal state are rejected.
func (r *AppointmentRepo) Update(ctx context.Context, id string, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	if req == nil {
		return nil, errors.New("update appointment request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		var current string
		if err := tx.QueryRow(ctx, `SELECT status FROM appointments WHERE id = $1 FOR UPDATE`, id).Scan(&current); err != nil {
			return err
		}
		if req.Status != nil && model.AppointmentStatus(current).Terminal() {
			return apperrors.Conflict(fmt.Sprintf("appointment is already %s", current))
		}

		set := []string{"updated_at = $2"}
		args := []any{id, r.timeProvider.Now().UTC()}
		appendSet := func(col string, v any) {
			args = append(args, v)
			set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
		}
		if req.ScheduledAt != nil {
			appendSet("scheduled_at", req.ScheduledAt.UTC())
		}
		if req.Status != nil {
			appendSet("status", string(*req.Status))
		}
		if req.Purpose != nil {
			appendSet("purpose", strings.TrimSpace(*req.Purpose))
		}
		if req.Notes != nil {
			appendSet("notes", *req.Notes)
		}

		_, err := tx.Exec(ctx, `UPDATE appointments SET `+strings.Join(set, ", ")+` WHERE id = $1`, args...)
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, fmt.Errorf("update appointment: %w", apperrors.MapDBError(err))
	}
	return r.GetByID(ctx, id)
}

// UpcomingFor returns the next appointments for a participant (patient or
// doctor), soonest first.
func (r *AppointmentRepo) UpcomingFor(ctx context.Context, profileID string, limit int) ([]*model.Appointment, error) {
	if limit <= 0 {
		limit = 5
	}
	now := r.timeProvider.Now().UTC()
	var rowsOut []model.Appointment
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, appointmentSelect+`
			WHERE (a.patient_id = $1 OR a.doctor_id = $1)
			  AND a.scheduled_at >= $2
			  AND a.status IN ($3, $4)
			ORDER BY a.scheduled_at ASC
			LIMIT $5`,
			profileID, now,
			string(model.AppointmentScheduled), string(model.AppointmentConfirmed),
			limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Appointment])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("upcoming appointments: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.Appointment, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
