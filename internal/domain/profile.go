package domain

import (
	"context"
	"encoding/json"
	"time"
)

type ProfileKind string

const (
	ProfileGauge        ProfileKind = "gauge"
	ProfileMeasurements ProfileKind = "measurements"
	ProfileYarn         ProfileKind = "yarn"
)

func (k ProfileKind) Valid() bool {
	return k == ProfileGauge || k == ProfileMeasurements || k == ProfileYarn
}

// Profile is a reusable saved set of values (a gauge swatch, a measurement
// set, a yarn) that definition sections reference by ID.
type Profile struct {
	ID        string
	UserID    int64
	Kind      ProfileKind
	Name      string
	Data      json.RawMessage
	CreatedAt time.Time
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	// ListByUser returns the user's profiles; an empty kind lists all kinds.
	ListByUser(ctx context.Context, userID int64, kind ProfileKind) ([]Profile, error)
	Delete(ctx context.Context, id string) error
}
