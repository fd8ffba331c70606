package repository

import (
	"context"
	"fmt"

	"foodtrucks-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the record store interfaces for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const facilityColumns = `
	locationid,
	applicant,
	facility_type,
	cnn,
	address,
	status,
	food_items,
	latitude,
	longitude,
	approved,
	expiration_date,
	location
`

// SearchByApplicant performs a case-insensitive substring match against the
// applicant name. A non-empty status further restricts results to an exact,
// case-insensitive status match; the status value is used verbatim, with no
// sentinel handling at this layer.
func (r *Repository) SearchByApplicant(ctx context.Context, query, status string) ([]models.FacilityRecord, error) {
	sql := `
		SELECT ` + facilityColumns + `
		FROM food_facilities
		WHERE applicant ILIKE '%' || $1 || '%'
	`
	args := []any{query}
	if status != "" {
		sql += ` AND LOWER(status) = LOWER($2)`
		args = append(args, status)
	}
	sql += ` ORDER BY locationid`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute applicant search: %w", err)
	}
	defer rows.Close()

	return scanFacilities(rows)
}

// SearchByStreet performs a case-insensitive substring match against the
// street address. No status filtering applies to street search.
func (r *Repository) SearchByStreet(ctx context.Context, query string) ([]models.FacilityRecord, error) {
	sql := `
		SELECT ` + facilityColumns + `
		FROM food_facilities
		WHERE address ILIKE '%' || $1 || '%'
		ORDER BY locationid
	`

	rows, err := r.db.Query(ctx, sql, query)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute street search: %w", err)
	}
	defer rows.Close()

	return scanFacilities(rows)
}

// FindGeocoded returns every record with both coordinates present, optionally
// restricted to an exact, case-insensitive status match. The locationid
// ordering makes the candidate sequence deterministic; proximity ranking
// relies on it as the stable-sort base for distance ties.
func (r *Repository) FindGeocoded(ctx context.Context, status string) ([]models.FacilityRecord, error) {
	sql := `
		SELECT ` + facilityColumns + `
		FROM food_facilities
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
	`
	args := []any{}
	if status != "" {
		sql += ` AND LOWER(status) = LOWER($1)`
		args = append(args, status)
	}
	sql += ` ORDER BY locationid`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute geocoded query: %w", err)
	}
	defer rows.Close()

	return scanFacilities(rows)
}

func scanFacilities(rows pgx.Rows) ([]models.FacilityRecord, error) {
	facilities := []models.FacilityRecord{}
	for rows.Next() {
		var f models.FacilityRecord
		err := rows.Scan(
			&f.LocationID,
			&f.Applicant,
			&f.FacilityType,
			&f.Cnn,
			&f.Address,
			&f.Status,
			&f.FoodItems,
			&f.Latitude,
			&f.Longitude,
			&f.Approved,
			&f.ExpirationDate,
			&f.Location,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan facility: %w", err)
		}
		facilities = append(facilities, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return facilities, nil
}
