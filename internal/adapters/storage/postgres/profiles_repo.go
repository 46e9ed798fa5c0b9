package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-match/internal/domain/profiles"
)

type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

func (r *ProfilesRepo) Create(ctx context.Context, p profiles.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (
			id, owner_user_id,
			name, breed, age, gender, size,
			temperament, looking_for, description, is_active,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		p.Breed,
		p.Age,
		p.Gender,
		p.Size,
		p.Temperament,
		p.LookingFor,
		p.Description,
		p.IsActive,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *ProfilesRepo) Update(ctx context.Context, p profiles.Profile) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE profiles
		SET
			name = $2,
			breed = $3,
			age = $4,
			gender = $5,
			size = $6,
			temperament = $7,
			looking_for = $8,
			description = $9,
			is_active = $10,
			updated_at = $11
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Breed,
		p.Age,
		p.Gender,
		p.Size,
		p.Temperament,
		p.LookingFor,
		p.Description,
		p.IsActive,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProfilesRepo) GetByID(ctx context.Context, id string) (profiles.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return profiles.Profile{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, owner_user_id,
			name, breed, age, gender, size,
			temperament, looking_for, description, is_active,
			created_at, updated_at
		FROM profiles
		WHERE id = $1
	`, id)

	p, err := scanProfile(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return profiles.Profile{}, ErrNotFound
		}
		return profiles.Profile{}, err
	}
	return p, nil
}

func (r *ProfilesRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]profiles.Profile, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_user_id,
			name, breed, age, gender, size,
			temperament, looking_for, description, is_active,
			created_at, updated_at
		FROM profiles
		WHERE owner_user_id = $1
		ORDER BY created_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProfiles(rows)
}

func (r *ProfilesRepo) ListActive(ctx context.Context, excludeOwnerUserID string) ([]profiles.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_user_id,
			name, breed, age, gender, size,
			temperament, looking_for, description, is_active,
			created_at, updated_at
		FROM profiles
		WHERE is_active AND owner_user_id <> $1
		ORDER BY created_at DESC
	`, excludeOwnerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProfiles(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (profiles.Profile, error) {
	var p profiles.Profile
	err := row.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&p.Breed,
		&p.Age,
		&p.Gender,
		&p.Size,
		&p.Temperament,
		&p.LookingFor,
		&p.Description,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func collectProfiles(rows *sql.Rows) ([]profiles.Profile, error) {
	out := make([]profiles.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
