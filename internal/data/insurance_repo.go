package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/medflow/medflow/internal/data/database"
	"github.com/medflow/medflow/internal/data/pgxutil"
	"github.com/medflow/medflow/internal/domain/model"
	apperrors "github.com/medflow/medflow/internal/errors"
)

const insuranceSelect = `
	SELECT i.id, i.patient_id, p.full_name AS patient_name,
	       i.provider, i.policy_number, i.group_number,
	       i.holder_name, i.relationship, i.expiry_date, i.coverage_details,
	       i.verified, i.verified_by, i.verified_at, i.created_at
	FROM insurance_policies i
	JOIN profiles p ON p.id = i.patient_id`

// InsuranceRepo provides database operations for insurance policies.
type InsuranceRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewInsuranceRepo creates a new InsuranceRepo with real time provider.
func NewInsuranceRepo(db *sql.DB) *InsuranceRepo {
	return &InsuranceRepo{DB: db, timeProvider: RealTimeProvider{}}
}

// NewInsuranceRepoWithTimeProvider creates a new InsuranceRepo with a custom time provider (useful for tests).
func NewInsuranceRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *InsuranceRepo {
	return &InsuranceRepo{DB: db, timeProvider: tp}
}

// Create registers a new unverified policy.
func (r *InsuranceRepo) Create(ctx context.Context, req *model.CreateInsurancePolicyRequest) (*model.InsurancePolicy, error) {
	if req == nil {
		return nil, errors.New("create insurance policy request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	var id string
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			INSERT INTO insurance_policies
				(patient_id, provider, policy_number, group_number, holder_name,
				 relationship, expiry_date, coverage_details, verified, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, $9)
			RETURNING id`,
			req.PatientID,
			strings.TrimSpace(req.Provider), strings.TrimSpace(req.PolicyNumber),
			req.GroupNumber,
			strings.TrimSpace(req.HolderName), strings.TrimSpace(req.Relationship),
			req.ExpiryDate.UTC(), req.CoverageDetails,
			r.timeProvider.Now().UTC(),
		).Scan(&id)
	})
	if err != nil {
		return nil, fmt.Errorf("create insurance policy: %w", apperrors.MapDBError(err))
	}
	return r.GetByID(ctx, id)
}

// GetByID retrieves a policy by id, including the patient name.
func (r *InsuranceRepo) GetByID(ctx context.Context, id string) (*model.InsurancePolicy, error) {
	var out model.InsurancePolicy
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, insuranceSelect+` WHERE i.id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.InsurancePolicy])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInsuranceNotFound
		}
		return nil, fmt.Errorf("get insurance policy: %w", apperrors.MapDBError(err))
	}
	return &out, nil
}

// List retrieves policies matching the given filters, soonest expiry first.
func (r *InsuranceRepo) List(ctx context.Context, opts model.InsuranceListOptions) ([]*model.InsurancePolicy, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	q := database.ListQuery{
		Select:   insuranceSelect,
		OrderBy:  "i.expiry_date",
		OrderDir: "asc",
		Limit:    limit,
		Offset:   offset,
	}
	if opts.PatientID != nil {
		q.Conditions = append(q.Conditions, database.Where("i.patient_id", database.Equal, *opts.PatientID))
	}
	if opts.Verified != nil {
		q.Conditions = append(q.Conditions, database.Where("i.verified", database.Equal, *opts.Verified))
	}
	if opts.ExpiringWithinDays != nil {
		now := r.timeProvider.Now().UTC()
		cutoff := now.AddDate(0, 0, *opts.ExpiringWithinDays)
		q.Conditions = append(q.Conditions,
			database.Where("i.expiry_date", database.GreaterThanOrEqual, now.Truncate(24*time.Hour)),
			database.Where("i.expiry_date", database.LessThanOrEqual, cutoff))
	}

	query, args := q.Build()
	var rowsOut []model.InsurancePolicy
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.InsurancePolicy])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list insurance policies: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.InsurancePolicy, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// SetVerified marks a policy verified or clears a prior verification.
// verifiedBy records the reviewing staff member when verified is true.
func (r *InsuranceRepo) SetVerified(ctx context.Context, id string, verified bool, verifiedBy string) (*model.InsurancePolicy, error) {
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		var tag string
		if verified {
			return conn.QueryRow(ctx, `
				UPDATE insurance_policies
				SET verified = TRUE, verified_by = $2, verified_at = $3
				WHERE id = $1
				RETURNING id`,
				id, verifiedBy, r.timeProvider.Now().UTC()).Scan(&tag)
		}
		return conn.QueryRow(ctx, `
			UPDATE insurance_policies
			SET verified = FALSE, verified_by = NULL, verified_at = NULL
			WHERE id = $1
			RETURNING id`, id).Scan(&tag)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInsuranceNotFound
		}
		return nil, fmt.Errorf("set insurance verification: %w", apperrors.MapDBError(err))
	}
	return r.GetByID(ctx, id)
}
