package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/knit-designer/internal/domain"
)

const stitchPatternColumns = `id, name, category, description, repeat_width, repeat_height, is_custom, user_id, created_at`

// stitchPatternRepo implements domain.StitchPatternRepository using SQLite.
type stitchPatternRepo struct {
	db *sql.DB
}

func (r *stitchPatternRepo) ListPredefined(ctx context.Context) ([]domain.StitchPatternRef, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+stitchPatternColumns+`
		 FROM stitch_patterns WHERE is_custom = FALSE ORDER BY category, name`)
	if err != nil {
		return nil, fmt.Errorf("list predefined stitch patterns: %w", err)
	}
	defer rows.Close()
	return scanStitchPatterns(rows)
}

func (r *stitchPatternRepo) ListByUser(ctx context.Context, userID int64) ([]domain.StitchPatternRef, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+stitchPatternColumns+`
		 FROM stitch_patterns WHERE is_custom = TRUE AND user_id = ? ORDER BY name`, userID)
	if err != nil {
		return nil, fmt.Errorf("list user stitch patterns: %w", err)
	}
	defer rows.Close()
	return scanStitchPatterns(rows)
}

func (r *stitchPatternRepo) GetByID(ctx context.Context, id int64) (*domain.StitchPatternRef, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+stitchPatternColumns+` FROM stitch_patterns WHERE id = ?`, id)
	ref, err := scanStitchPattern(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get stitch pattern by id: %w", err)
	}
	return ref, nil
}

func (r *stitchPatternRepo) GetByName(ctx context.Context, name string, userID *int64) (*domain.StitchPatternRef, error) {
	var row *sql.Row
	if userID == nil {
		row = r.db.QueryRowContext(ctx,
			`SELECT `+stitchPatternColumns+` FROM stitch_patterns WHERE name = ? AND user_id IS NULL`, name)
	} else {
		row = r.db.QueryRowContext(ctx,
			`SELECT `+stitchPatternColumns+` FROM stitch_patterns WHERE name = ? AND user_id = ?`, name, *userID)
	}

	ref, err := scanStitchPattern(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get stitch pattern by name: %w", err)
	}
	return ref, nil
}

func (r *stitchPatternRepo) Create(ctx context.Context, ref *domain.StitchPatternRef) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO stitch_patterns (name, category, description, repeat_width, repeat_height, is_custom, user_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ref.Name, ref.Category, ref.Description, ref.RepeatWidth, ref.RepeatHeight,
		ref.IsCustom, ref.UserID, now,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert stitch pattern: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	ref.ID = id
	ref.CreatedAt = now
	return nil
}

func (r *stitchPatternRepo) Update(ctx context.Context, ref *domain.StitchPatternRef) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE stitch_patterns SET name = ?, category = ?, description = ?, repeat_width = ?, repeat_height = ?
		 WHERE id = ?`,
		ref.Name, ref.Category, ref.Description, ref.RepeatWidth, ref.RepeatHeight, ref.ID,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update stitch pattern: %w", err)
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

func (r *stitchPatternRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM stitch_patterns WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete stitch pattern: %w", err)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStitchPattern(row rowScanner) (*domain.StitchPatternRef, error) {
	var s domain.StitchPatternRef
	if err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.RepeatWidth, &s.RepeatHeight,
		&s.IsCustom, &s.UserID, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanStitchPatterns(rows *sql.Rows) ([]domain.StitchPatternRef, error) {
	var refs []domain.StitchPatternRef
	for rows.Next() {
		s, err := scanStitchPattern(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stitch pattern: %w", err)
		}
		refs = append(refs, *s)
	}
	return refs, rows.Err()
}
