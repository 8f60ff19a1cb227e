package domain

import (
	"context"
	"time"
)

// DefinitionSession is one user's in-progress pattern definition.
type DefinitionSession struct {
	ID        string
	UserID    int64
	Name      string
	Snapshot  *SessionSnapshot
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DefinitionSessionRepository interface {
	Create(ctx context.Context, session *DefinitionSession) error
	GetByID(ctx context.Context, id string) (*DefinitionSession, error)
	ListByUser(ctx context.Context, userID int64) ([]DefinitionSession, error)
	Update(ctx context.Context, session *DefinitionSession) error
	Delete(ctx context.Context, id string) error
}
