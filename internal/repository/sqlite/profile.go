package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/knit-designer/internal/domain"
)

// profileRepo implements domain.ProfileRepository using SQLite.
type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Create(ctx context.Context, p *domain.Profile) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (id, user_id, kind, name, data, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.Kind, p.Name, string(p.Data), now,
	)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	p.CreatedAt = now
	return nil
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	var p domain.Profile
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, kind, name, data, created_at FROM profiles WHERE id = ?`, id,
	).Scan(&p.ID, &p.UserID, &p.Kind, &p.Name, &data, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	p.Data = []byte(data)
	return &p, nil
}

func (r *profileRepo) ListByUser(ctx context.Context, userID int64, kind domain.ProfileKind) ([]domain.Profile, error) {
	query := `SELECT id, user_id, kind, name, data, created_at FROM profiles WHERE user_id = ?`
	args := []any{userID}
	if kind != "" {
		query += ` AND kind = ?`
		args = append(args, kind)
	}
	query += ` ORDER BY kind, name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		var data string
		if err := rows.Scan(&p.ID, &p.UserID, &p.Kind, &p.Name, &data, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		p.Data = []byte(data)
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *profileRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM profiles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
