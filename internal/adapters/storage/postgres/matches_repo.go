package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-match/internal/domain/matches"
)

type MatchesRepo struct {
	db *sql.DB
}

func NewMatchesRepo(db *sql.DB) *MatchesRepo {
	return &MatchesRepo{db: db}
}

func (r *MatchesRepo) Create(ctx context.Context, m matches.Match) error {
	// La unicidad del par ordenado la garantiza el índice único
	// (from_profile_id, to_profile_id).
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO matches (
			id, from_profile_id, to_profile_id, status,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		m.ID,
		m.FromProfileID,
		m.ToProfileID,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return err
}

func (r *MatchesRepo) Update(ctx context.Context, m matches.Match) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE matches
		SET status = $2, updated_at = $3
		WHERE id = $1
	`, m.ID, m.Status, m.UpdatedAt)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePair ejecuta ambos UPDATEs dentro de una transacción:
// se confirman los dos registros o ninguno.
func (r *MatchesRepo) UpdatePair(ctx context.Context, a, b matches.Match) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, m := range []matches.Match{a, b} {
		res, err := tx.ExecContext(ctx, `
			UPDATE matches
			SET status = $2, updated_at = $3
			WHERE id = $1
		`, m.ID, m.Status, m.UpdatedAt)
		if err != nil {
			return err
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			return ErrNotFound
		}
	}

	return tx.Commit()
}

func (r *MatchesRepo) GetByID(ctx context.Context, id string) (matches.Match, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return matches.Match{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, from_profile_id, to_profile_id, status, created_at, updated_at
		FROM matches
		WHERE id = $1
	`, id)

	return scanMatch(row)
}

func (r *MatchesRepo) FindByPair(ctx context.Context, fromProfileID, toProfileID string) (matches.Match, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, from_profile_id, to_profile_id, status, created_at, updated_at
		FROM matches
		WHERE from_profile_id = $1 AND to_profile_id = $2
	`, fromProfileID, toProfileID)

	return scanMatch(row)
}

func (r *MatchesRepo) ListByProfiles(ctx context.Context, profileIDs []string, status matches.Status) ([]matches.Match, error) {
	if len(profileIDs) == 0 {
		return []matches.Match{}, nil
	}

	query := `
		SELECT id, from_profile_id, to_profile_id, status, created_at, updated_at
		FROM matches
		WHERE (from_profile_id = ANY($1) OR to_profile_id = ANY($1))
	`
	args := []any{profileIDs}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matches.Match, 0)
	for rows.Next() {
		var m matches.Match
		if err := rows.Scan(
			&m.ID,
			&m.FromProfileID,
			&m.ToProfileID,
			&m.Status,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMatch(row *sql.Row) (matches.Match, error) {
	var m matches.Match
	if err := row.Scan(
		&m.ID,
		&m.FromProfileID,
		&m.ToProfileID,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return matches.Match{}, ErrNotFound
		}
		return matches.Match{}, err
	}
	return m, nil
}
