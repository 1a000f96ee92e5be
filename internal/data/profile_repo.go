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
	domainauth "github.com/medflow/medflow/internal/domain/auth"
	"github.com/medflow/medflow/internal/domain/model"
	apperrors "github.com/medflow/medflow/internal/errors"
)

// profileRow is the raw storage shape; role stays a lowercase string until it
// crosses the domain boundary through ParseRole.
type profileRow struct {
	ID        string    `db:"id"`
	FullName  string    `db:"full_name"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

func (r profileRow) toModel() *model.Profile {
	return &model.Profile{
		ID:        r.ID,
		FullName:  r.FullName,
		Role:      domainauth.ParseRole(r.Role),
		CreatedAt: r.CreatedAt,
	}
}

// ProfileRepo provides database operations for profiles.
type ProfileRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewProfileRepo creates a new ProfileRepo with real time provider.
func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{DB: db, timeProvider: RealTimeProvider{}}
}

// NewProfileRepoWithTimeProvider creates a new ProfileRepo with a custom time provider (useful for tests).
func NewProfileRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ProfileRepo {
	return &ProfileRepo{DB: db, timeProvider: tp}
}

const profileColumns = `id, full_name, role, created_at`

// Create inserts a new profile row keyed by the provider subject id.
func (r *ProfileRepo) Create(ctx context.Context, req *model.CreateProfileRequest) (*model.Profile, error) {
	if req == nil {
		return nil, errors.New("create profile request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	var out profileRow
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO profiles (id, full_name, role, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING `+profileColumns,
			strings.TrimSpace(req.ID),
			strings.TrimSpace(req.FullName),
			req.Role.StorageString(),
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[profileRow])
		return err
	})
	if err != nil {
		if apperrors.IsCode(apperrors.MapDBError(err), apperrors.ErrCodeConflict) {
			return nil, ErrProfileExists
		}
		return nil, fmt.Errorf("create profile: %w", apperrors.MapDBError(err))
	}
	return out.toModel(), nil
}

// GetByID retrieves a profile by its subject id.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	row, err := r.getRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

// GetProfile implements ports.ProfileSource: it returns the raw storage-layer
// name and role string for the identity resolver to normalize.
func (r *ProfileRepo) GetProfile(ctx context.Context, id string) (string, string, error) {
	row, err := r.getRow(ctx, id)
	if err != nil {
		return "", "", err
	}
	return row.FullName, row.Role, nil
}

func (r *ProfileRepo) getRow(ctx context.Context, id string) (profileRow, error) {
	var out profileRow
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[profileRow])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profileRow{}, ErrProfileNotFound
		}
		return profileRow{}, fmt.Errorf("get profile: %w", apperrors.MapDBError(err))
	}
	return out, nil
}

// List retrieves profiles with optional role/name filters.
func (r *ProfileRepo) List(ctx context.Context, opts model.ProfilesListOptions) ([]*model.Profile, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	q := database.ListQuery{
		Select:   `SELECT ` + profileColumns + ` FROM profiles`,
		OrderBy:  "full_name",
		OrderDir: "asc",
		Limit:    limit,
		Offset:   offset,
	}
	if opts.Role != nil {
		q.Conditions = append(q.Conditions, database.Where("role", database.Equal, opts.Role.StorageString()))
	}
	if opts.Q != nil && strings.TrimSpace(*opts.Q) != "" {
		q.Conditions = append(q.Conditions, database.Where("full_name", database.ILike, "%"+strings.TrimSpace(*opts.Q)+"%"))
	}

	query, args := q.Build()
	var rowsOut []profileRow
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[profileRow])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.Profile, len(rowsOut))
	for i := range rowsOut {
		res[i] = rowsOut[i].toModel()
	}
	return res, nil
}

// SetRole updates a profile's role. The raw role string is validated at the
// service layer; the stored form is always lowercase.
func (r *ProfileRepo) SetRole(ctx context.Context, id string, role string) (*model.Profile, error) {
	var out profileRow
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE profiles SET role = $2 WHERE id = $1
			RETURNING `+profileColumns,
			id, strings.ToLower(strings.TrimSpace(role)))
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[profileRow])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("set profile role: %w", apperrors.MapDBError(err))
	}
	return out.toModel(), nil
}
