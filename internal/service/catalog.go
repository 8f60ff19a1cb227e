package service

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/msomdec/knit-designer/internal/domain"
)

const (
	maxRepeatWidth  = 200
	maxRepeatHeight = 200
)

// StitchPatternService handles the stitch pattern catalog.
type StitchPatternService struct {
	patterns domain.StitchPatternRepository
	cache    *lru.Cache[int64, domain.StitchPatternRef]
}

// NewStitchPatternService creates a StitchPatternService whose lookups by ID
// go through an LRU cache holding up to cacheSize entries.
func NewStitchPatternService(patterns domain.StitchPatternRepository, cacheSize int) (*StitchPatternService, error) {
	if cacheSize < 1 {
		cacheSize = 1
	}
	cache, err := lru.New[int64, domain.StitchPatternRef](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create catalog cache: %w", err)
	}
	return &StitchPatternService{patterns: patterns, cache: cache}, nil
}

// ListPredefined returns all predefined stitch patterns.
func (s *StitchPatternService) ListPredefined(ctx context.Context) ([]domain.StitchPatternRef, error) {
	return s.patterns.ListPredefined(ctx)
}

// ListByUser returns a user's custom stitch patterns.
func (s *StitchPatternService) ListByUser(ctx context.Context, userID int64) ([]domain.StitchPatternRef, error) {
	return s.patterns.ListByUser(ctx, userID)
}

// ListAll returns predefined patterns followed by the user's custom ones.
func (s *StitchPatternService) ListAll(ctx context.Context, userID int64) ([]domain.StitchPatternRef, error) {
	predefined, err := s.patterns.ListPredefined(ctx)
	if err != nil {
		return nil, fmt.Errorf("list predefined: %w", err)
	}

	custom, err := s.patterns.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user stitch patterns: %w", err)
	}

	return append(predefined, custom...), nil
}

// GetByID returns a stitch pattern by ID.
func (s *StitchPatternService) GetByID(ctx context.Context, id int64) (*domain.StitchPatternRef, error) {
	if ref, ok := s.cache.Get(id); ok {
		return &ref, nil
	}
	ref, err := s.patterns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Add(id, *ref)
	return ref, nil
}

// Visible returns the stitch pattern if the user may use it: predefined
// patterns are visible to everyone, custom ones only to their owner.
func (s *StitchPatternService) Visible(ctx context.Context, userID, id int64) (*domain.StitchPatternRef, error) {
	ref, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ref.IsCustom && (ref.UserID == nil || *ref.UserID != userID) {
		return nil, domain.ErrNotFound
	}
	return ref, nil
}

// CreateCustom adds a custom stitch pattern owned by userID.
func (s *StitchPatternService) CreateCustom(ctx context.Context, userID int64, ref *domain.StitchPatternRef) error {
	if err := validateStitchPattern(ref); err != nil {
		return err
	}

	_, err := s.patterns.GetByName(ctx, ref.Name, &userID)
	if err == nil {
		return fmt.Errorf("%w: you already have a stitch pattern named '%s'", domain.ErrDuplicateName, ref.Name)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("check stitch pattern name: %w", err)
	}

	if ref.Category == "" {
		ref.Category = "custom"
	}
	ref.IsCustom = true
	ref.UserID = &userID

	if err := s.patterns.Create(ctx, ref); err != nil {
		return fmt.Errorf("create custom stitch pattern: %w", err)
	}
	return nil
}

// DeleteCustom deletes a custom stitch pattern. Only the owner can delete it.
func (s *StitchPatternService) DeleteCustom(ctx context.Context, userID int64, id int64) error {
	ref, err := s.patterns.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !ref.IsCustom || ref.UserID == nil || *ref.UserID != userID {
		return domain.ErrUnauthorized
	}

	if err := s.patterns.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Remove(id)
	return nil
}

// SeedPredefined inserts the built-in catalog. Existing entries are kept.
func (s *StitchPatternService) SeedPredefined(ctx context.Context) error {
	_, _, err := s.Import(ctx, predefinedStitchPatterns)
	return err
}

// Import upserts predefined stitch patterns by name and reports how many
// were created and updated.
func (s *StitchPatternService) Import(ctx context.Context, refs []domain.StitchPatternRef) (created, updated int, err error) {
	for _, ref := range refs {
		if err := validateStitchPattern(&ref); err != nil {
			return created, updated, fmt.Errorf("stitch pattern %q: %w", ref.Name, err)
		}
		ref.IsCustom = false
		ref.UserID = nil

		existing, err := s.patterns.GetByName(ctx, ref.Name, nil)
		switch {
		case err == nil:
			if existing.RepeatWidth == ref.RepeatWidth && existing.RepeatHeight == ref.RepeatHeight &&
				existing.Category == ref.Category && existing.Description == ref.Description {
				continue
			}
			ref.ID = existing.ID
			if err := s.patterns.Update(ctx, &ref); err != nil {
				return created, updated, fmt.Errorf("update stitch pattern %s: %w", ref.Name, err)
			}
			s.cache.Remove(ref.ID)
			updated++
		case errors.Is(err, domain.ErrNotFound):
			if err := s.patterns.Create(ctx, &ref); err != nil {
				return created, updated, fmt.Errorf("seed stitch pattern %s: %w", ref.Name, err)
			}
			created++
		default:
			return created, updated, fmt.Errorf("check stitch pattern %s: %w", ref.Name, err)
		}
	}
	return created, updated, nil
}

func validateStitchPattern(ref *domain.StitchPatternRef) error {
	if ref.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if len(ref.Name) > 100 {
		return fmt.Errorf("%w: name must be 100 characters or fewer", domain.ErrInvalidInput)
	}
	if len(ref.Description) > 1000 {
		return fmt.Errorf("%w: description must be 1000 characters or fewer", domain.ErrInvalidInput)
	}
	if ref.RepeatWidth < 1 || ref.RepeatWidth > maxRepeatWidth {
		return fmt.Errorf("%w: repeat width must be between 1 and %d", domain.ErrInvalidInput, maxRepeatWidth)
	}
	if ref.RepeatHeight == 0 {
		ref.RepeatHeight = 1
	}
	if ref.RepeatHeight < 1 || ref.RepeatHeight > maxRepeatHeight {
		return fmt.Errorf("%w: repeat height must be between 1 and %d", domain.ErrInvalidInput, maxRepeatHeight)
	}
	return nil
}

var predefinedStitchPatterns = []domain.StitchPatternRef{
	// Knit / purl
	{Name: "Stockinette", Category: "knit-purl", RepeatWidth: 1, RepeatHeight: 2},
	{Name: "Garter", Category: "knit-purl", RepeatWidth: 1, RepeatHeight: 2},
	{Name: "Reverse Stockinette", Category: "knit-purl", RepeatWidth: 1, RepeatHeight: 2},
	// Ribbing
	{Name: "1x1 Rib", Category: "rib", RepeatWidth: 2, RepeatHeight: 1},
	{Name: "2x2 Rib", Category: "rib", RepeatWidth: 4, RepeatHeight: 1},
	{Name: "3x1 Rib", Category: "rib", RepeatWidth: 4, RepeatHeight: 1},
	{Name: "Twisted Rib", Category: "rib", RepeatWidth: 2, RepeatHeight: 1},
	// Texture
	{Name: "Seed Stitch", Category: "texture", RepeatWidth: 2, RepeatHeight: 2},
	{Name: "Moss Stitch", Category: "texture", RepeatWidth: 2, RepeatHeight: 4},
	{Name: "Basketweave", Category: "texture", RepeatWidth: 8, RepeatHeight: 10},
	{Name: "Waffle", Category: "texture", RepeatWidth: 3, RepeatHeight: 4},
	// Cables
	{Name: "Six-Stitch Cable", Category: "cable", RepeatWidth: 10, RepeatHeight: 8},
	{Name: "Honeycomb Cable", Category: "cable", RepeatWidth: 8, RepeatHeight: 8},
	// Lace
	{Name: "Feather and Fan", Category: "lace", RepeatWidth: 18, RepeatHeight: 4},
	{Name: "Eyelet Rows", Category: "lace", RepeatWidth: 2, RepeatHeight: 6},
	// Colorwork
	{Name: "Two-Colour Check", Category: "colorwork", RepeatWidth: 4, RepeatHeight: 4},
	{Name: "Small Fair Isle Peerie", Category: "colorwork", RepeatWidth: 6, RepeatHeight: 5},
}
