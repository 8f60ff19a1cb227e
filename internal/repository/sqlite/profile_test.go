package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/knit-designer/internal/domain"
)

func seedUser(t *testing.T, repo domain.UserRepository, email string) int64 {
	t.Helper()
	u := &domain.User{Email: email, DisplayName: "Knitter", PasswordHash: "hash"}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u.ID
}

func TestProfileRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := db.Profiles()
	ctx := context.Background()
	userID := seedUser(t, db.Users(), "profile@example.com")

	p := &domain.Profile{
		ID:     "6f1c2d3e-0000-4000-8000-000000000001",
		UserID: userID,
		Kind:   domain.ProfileGauge,
		Name:   "Worsted swatch",
		Data:   []byte(`{"stitches":18,"rows":24,"unit":"cm"}`),
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Kind != domain.ProfileGauge || got.Name != "Worsted swatch" {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if string(got.Data) != `{"stitches":18,"rows":24,"unit":"cm"}` {
		t.Fatalf("unexpected data: %s", got.Data)
	}
}

func TestProfileRepository_ListByUser_FilterByKind(t *testing.T) {
	db := newTestDB(t)
	repo := db.Profiles()
	ctx := context.Background()
	userID := seedUser(t, db.Users(), "kinds@example.com")

	for i, kind := range []domain.ProfileKind{domain.ProfileGauge, domain.ProfileYarn, domain.ProfileYarn} {
		p := &domain.Profile{
			ID:     "00000000-0000-4000-8000-00000000000" + string(rune('1'+i)),
			UserID: userID,
			Kind:   kind,
			Name:   "profile",
			Data:   []byte("{}"),
		}
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	all, err := repo.ListByUser(ctx, userID, "")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 profiles, got %d", len(all))
	}

	yarns, err := repo.ListByUser(ctx, userID, domain.ProfileYarn)
	if err != nil {
		t.Fatalf("ListByUser yarn: %v", err)
	}
	if len(yarns) != 2 {
		t.Fatalf("expected 2 yarn profiles, got %d", len(yarns))
	}
}

func TestProfileRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := db.Profiles()
	ctx := context.Background()
	userID := seedUser(t, db.Users(), "delete@example.com")

	p := &domain.Profile{ID: "del-1", UserID: userID, Kind: domain.ProfileMeasurements, Name: "Me", Data: []byte("{}")}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, p.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
