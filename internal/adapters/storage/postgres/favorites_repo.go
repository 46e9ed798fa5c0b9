package postgres

import (
	"context"
	"database/sql"

	"pet-match/internal/domain/favorites"
)

type FavoritesRepo struct {
	db *sql.DB
}

func NewFavoritesRepo(db *sql.DB) *FavoritesRepo {
	return &FavoritesRepo{db: db}
}

func (r *FavoritesRepo) Create(ctx context.Context, f favorites.Favorite) error {
	// Unicidad por (user_id, profile_id) vía índice único.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO favorites (id, user_id, profile_id, created_at)
		VALUES ($1,$2,$3,$4)
	`, f.ID, f.UserID, f.ProfileID, f.CreatedAt)
	return err
}

func (r *FavoritesRepo) Delete(ctx context.Context, userID, profileID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM favorites
		WHERE user_id = $1 AND profile_id = $2
	`, userID, profileID)
	return err
}

func (r *FavoritesRepo) GetByUserAndProfile(ctx context.Context, userID, profileID string) (favorites.Favorite, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, profile_id, created_at
		FROM favorites
		WHERE user_id = $1 AND profile_id = $2
	`, userID, profileID)

	var f favorites.Favorite
	if err := row.Scan(&f.ID, &f.UserID, &f.ProfileID, &f.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return favorites.Favorite{}, ErrNotFound
		}
		return favorites.Favorite{}, err
	}
	return f, nil
}

func (r *FavoritesRepo) ListByUser(ctx context.Context, userID string) ([]favorites.Favorite, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, profile_id, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]favorites.Favorite, 0)
	for rows.Next() {
		var f favorites.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.ProfileID, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
