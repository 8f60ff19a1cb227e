package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/knit-designer/internal/domain"
)

func TestStitchPatternRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := db.StitchPatterns()
	ctx := context.Background()

	ref := &domain.StitchPatternRef{
		Name:         "Seed Stitch",
		Category:     "texture",
		Description:  "Alternate knit and purl, offset every row",
		RepeatWidth:  2,
		RepeatHeight: 2,
	}

	if err := repo.Create(ctx, ref); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if ref.ID == 0 {
		t.Fatal("expected stitch pattern ID to be set")
	}
	if ref.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	got, err := repo.GetByID(ctx, ref.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.RepeatWidth != 2 || got.RepeatHeight != 2 {
		t.Fatalf("expected 2x2 repeat, got %dx%d", got.RepeatWidth, got.RepeatHeight)
	}
	if got.UserID != nil {
		t.Fatalf("expected nil UserID for predefined pattern, got %v", *got.UserID)
	}
}

func TestStitchPatternRepository_DuplicatePredefinedName(t *testing.T) {
	db := newTestDB(t)
	repo := db.StitchPatterns()
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.StitchPatternRef{Name: "Garter", RepeatWidth: 1, RepeatHeight: 2}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(ctx, &domain.StitchPatternRef{Name: "Garter", RepeatWidth: 1, RepeatHeight: 2})
	if !errors.Is(err, domain.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestStitchPatternRepository_CustomNameMayShadowPredefined(t *testing.T) {
	db := newTestDB(t)
	repo := db.StitchPatterns()
	ctx := context.Background()

	user := &domain.User{Email: "shadow@example.com", DisplayName: "Knitter", PasswordHash: "hash"}
	if err := db.Users().Create(ctx, user); err != nil {
		t.Fatalf("Create user: %v", err)
	}

	if err := repo.Create(ctx, &domain.StitchPatternRef{Name: "Garter", RepeatWidth: 1, RepeatHeight: 2}); err != nil {
		t.Fatalf("Create predefined: %v", err)
	}
	custom := &domain.StitchPatternRef{Name: "Garter", RepeatWidth: 1, RepeatHeight: 2, IsCustom: true, UserID: &user.ID}
	if err := repo.Create(ctx, custom); err != nil {
		t.Fatalf("Create custom: %v", err)
	}

	got, err := repo.GetByName(ctx, "Garter", &user.ID)
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if got.ID != custom.ID {
		t.Fatalf("expected custom pattern %d, got %d", custom.ID, got.ID)
	}

	predefined, err := repo.GetByName(ctx, "Garter", nil)
	if err != nil {
		t.Fatalf("GetByName predefined: %v", err)
	}
	if predefined.IsCustom {
		t.Fatal("expected predefined pattern")
	}
}

func TestStitchPatternRepository_ListPredefinedAndByUser(t *testing.T) {
	db := newTestDB(t)
	repo := db.StitchPatterns()
	ctx := context.Background()

	user := &domain.User{Email: "list@example.com", DisplayName: "Lister", PasswordHash: "hash"}
	if err := db.Users().Create(ctx, user); err != nil {
		t.Fatalf("Create user: %v", err)
	}

	for _, ref := range []*domain.StitchPatternRef{
		{Name: "2x2 Rib", Category: "rib", RepeatWidth: 4, RepeatHeight: 1},
		{Name: "Basketweave", Category: "texture", RepeatWidth: 8, RepeatHeight: 10},
		{Name: "My Lattice", Category: "custom", RepeatWidth: 12, RepeatHeight: 16, IsCustom: true, UserID: &user.ID},
	} {
		if err := repo.Create(ctx, ref); err != nil {
			t.Fatalf("Create %s: %v", ref.Name, err)
		}
	}

	predefined, err := repo.ListPredefined(ctx)
	if err != nil {
		t.Fatalf("ListPredefined: %v", err)
	}
	if len(predefined) != 2 {
		t.Fatalf("expected 2 predefined patterns, got %d", len(predefined))
	}
	if predefined[0].Name != "2x2 Rib" {
		t.Fatalf("expected patterns ordered by category, got %q first", predefined[0].Name)
	}

	custom, err := repo.ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(custom) != 1 || custom[0].Name != "My Lattice" {
		t.Fatalf("expected only 'My Lattice', got %+v", custom)
	}
}

func TestStitchPatternRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := db.StitchPatterns()
	ctx := context.Background()

	ref := &domain.StitchPatternRef{Name: "Waffle", Category: "texture", RepeatWidth: 3, RepeatHeight: 4}
	if err := repo.Create(ctx, ref); err != nil {
		t.Fatalf("Create: %v", err)
	}

	ref.RepeatWidth = 4
	if err := repo.Update(ctx, ref); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.GetByID(ctx, ref.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.RepeatWidth != 4 {
		t.Fatalf("expected repeat width 4, got %d", got.RepeatWidth)
	}

	if err := repo.Delete(ctx, ref.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, ref.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, ref.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}
}
