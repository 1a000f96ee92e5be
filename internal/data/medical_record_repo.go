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

const medicalRecordSelect = `
	SELECT m.id, m.patient_id, p.full_name AS patient_name,
	       m.doctor_id, d.full_name AS doctor_name,
	       m.diagnosis, m.symptoms, m.prescription, m.notes,
	       m.created_at, m.updated_at
	FROM medical_records m
	JOIN profiles p ON p.id = m.patient_id
	JOIN profiles d ON d.id = m.doctor_id`

// MedicalRecordRepo provides database operations for medical records.
type MedicalRecordRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewMedicalRecordRepo creates a new MedicalRecordRepo with real time provider.
func NewMedicalRecordRepo(db *sql.DB) *MedicalRecordRepo {
	return &MedicalRecordRepo{DB: db, timeProvider: RealTimeProvider{}}
}

// NewMedicalRecordRepoWithTimeProvider creates a new MedicalRecordRepo with a custom time provider (useful for tests).
func NewMedicalRecordRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *MedicalRecordRepo {
	return &MedicalRecordRepo{DB: db, timeProvider: tp}
}

// Create inserts a new medical record authored by doctorID.
func (r *MedicalRecordRepo) Create(ctx context.Context, doctorID string, req *model.CreateMedicalRecordRequest) (*model.MedicalRecord, error) {
	if req == nil {
		return nil, errors.New("create medical record request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	now := r.timeProvider.Now().UTC()
	var id string
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			INSERT INTO medical_records (patient_id, doctor_id, diagnosis, symptoms, prescription, notes, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
			RETURNING id`,
			req.PatientID, doctorID,
			strings.TrimSpace(req.Diagnosis), strings.TrimSpace(req.Symptoms),
			req.Prescription, req.Notes, now,
		).Scan(&id)
	})
	if err != nil {
		return nil, fmt.Errorf("create medical record: %w", apperrors.MapDBError(err))
	}
	return r.GetByID(ctx, id)
}

// GetByID retrieves a medical record by id, including participant names.
func (r *MedicalRecordRepo) GetByID(ctx context.Context, id string) (*model.MedicalRecord, error) {
	var out model.MedicalRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, medicalRecordSelect+` WHERE m.id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.MedicalRecord])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMedicalRecordNotFound
		}
		return nil, fmt.Errorf("get medical record: %w", apperrors.MapDBError(err))
	}
	return &out, nil
}

// List retrieves medical records matching the given filters, most recent first.
func (r *MedicalRecordRepo) List(ctx context.Context, opts model.MedicalRecordsListOptions) ([]*model.MedicalRecord, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	q := database.ListQuery{
		Select:   medicalRecordSelect,
		OrderBy:  "m.created_at",
		OrderDir: "desc",
		Limit:    limit,
		Offset:   offset,
	}
	if opts.PatientID != nil {
		q.Conditions = append(q.Conditions, database.Where("m.patient_id", database.Equal, *opts.PatientID))
	}
	if opts.DoctorID != nil {
		q.Conditions = append(q.Conditions, database.Where("m.doctor_id", database.Equal, *opts.DoctorID))
	}
	if opts.Q != nil && strings.TrimSpace(*opts.Q) != "" {
		q.Conditions = append(q.Conditions, database.Where("m.diagnosis", database.ILike, "%"+strings.TrimSpace(*opts.Q)+"%"))
	}

	query, args := q.Build()
	var rowsOut []model.MedicalRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.MedicalRecord])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list medical records: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.MedicalRecord, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update applies the non-nil fields of req to an existing medical record.
func (r *MedicalRecordRepo) Update(ctx context.Context, id string, req *model.UpdateMedicalRecordRequest) (*model.MedicalRecord, error) {
	if req == nil {
		return nil, errors.New("update medical record request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	set := []string{"updated_at = $2"}
	args := []any{id, r.timeProvider.Now().UTC()}
	appendSet := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if req.Diagnosis != nil {
		appendSet("diagnosis", strings.TrimSpace(*req.Diagnosis))
	}
	if req.Symptoms != nil {
		appendSet("symptoms", strings.TrimSpace(*req.Symptoms))
	}
	if req.Prescription != nil {
		appendSet("prescription", *req.Prescription)
	}
	if req.Notes != nil {
		appendSet("notes", *req.Notes)
	}

	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `UPDATE medical_records SET `+strings.Join(set, ", ")+` WHERE id = $1`, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMedicalRecordNotFound
		}
		return nil, fmt.Errorf("update medical record: %w", apperrors.MapDBError(err))
	}
	return r.GetByID(ctx, id)
}
