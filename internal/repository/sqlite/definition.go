package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/knit-designer/internal/domain"
)

// definitionSessionRepo implements domain.DefinitionSessionRepository using
// SQLite. Snapshots are stored as JSON text.
type definitionSessionRepo struct {
	db *sql.DB
}

func (r *definitionSessionRepo) Create(ctx context.Context, s *domain.DefinitionSession) error {
	snapshot, err := encodeSnapshot(s.Snapshot)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO definition_sessions (id, user_id, name, garment_type, snapshot, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.Name, s.Snapshot.GarmentType, snapshot, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	s.CreatedAt = now
	s.UpdatedAt = now
	return nil
}

func (r *definitionSessionRepo) GetByID(ctx context.Context, id string) (*domain.DefinitionSession, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, snapshot, created_at, updated_at
		 FROM definition_sessions WHERE id = ?`, id)
	s, err := scanDefinitionSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return s, nil
}

func (r *definitionSessionRepo) ListByUser(ctx context.Context, userID int64) ([]domain.DefinitionSession, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, snapshot, created_at, updated_at
		 FROM definition_sessions WHERE user_id = ? ORDER BY updated_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.DefinitionSession
	for rows.Next() {
		s, err := scanDefinitionSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

func (r *definitionSessionRepo) Update(ctx context.Context, s *domain.DefinitionSession) error {
	snapshot, err := encodeSnapshot(s.Snapshot)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE definition_sessions SET name = ?, garment_type = ?, snapshot = ?, updated_at = ?
		 WHERE id = ?`,
		s.Name, s.Snapshot.GarmentType, snapshot, now, s.ID,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	s.UpdatedAt = now
	return nil
}

func (r *definitionSessionRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM definition_sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
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

func encodeSnapshot(snapshot *domain.SessionSnapshot) (string, error) {
	if snapshot == nil {
		return "", fmt.Errorf("%w: session has no snapshot", domain.ErrInvalidInput)
	}
	b, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return string(b), nil
}

func scanDefinitionSession(row rowScanner) (*domain.DefinitionSession, error) {
	var s domain.DefinitionSession
	var raw string
	if err := row.Scan(&s.ID, &s.UserID, &s.Name, &raw, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Snapshot = &domain.SessionSnapshot{}
	if err := json.Unmarshal([]byte(raw), s.Snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot for session %s: %w", s.ID, err)
	}
	return &s, nil
}
