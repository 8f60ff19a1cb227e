package domain

import (
	"context"
	"time"
)

// StitchPatternRef is a catalog entry describing a repeating stitch pattern.
type StitchPatternRef struct {
	ID           int64
	Name         string
	Category     string // "knit-purl", "rib", "texture", "cable", "lace", "colorwork", "custom"
	Description  string
	RepeatWidth  int // stitches in one horizontal repeat
	RepeatHeight int // rows in one vertical repeat
	IsCustom     bool
	UserID       *int64
	CreatedAt    time.Time
}

// StitchPatternRepository defines persistence operations for the catalog.
type StitchPatternRepository interface {
	ListPredefined(ctx context.Context) ([]StitchPatternRef, error)
	ListByUser(ctx context.Context, userID int64) ([]StitchPatternRef, error)
	GetByID(ctx context.Context, id int64) (*StitchPatternRef, error)
	GetByName(ctx context.Context, name string, userID *int64) (*StitchPatternRef, error)
	Create(ctx context.Context, ref *StitchPatternRef) error
	Update(ctx context.Context, ref *StitchPatternRef) error
	Delete(ctx context.Context, id int64) error
}
