package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/msomdec/knit-designer/internal/domain"
)

// ProfileService manages saved gauge, measurement and yarn profiles and
// resolves the references definition sections make to them.
type ProfileService struct {
	profiles domain.ProfileRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profiles domain.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Create saves a new profile for the user.
func (s *ProfileService) Create(ctx context.Context, userID int64, kind domain.ProfileKind, name string, data []byte) (*domain.Profile, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: profile kind must be gauge, measurements, or yarn", domain.ErrInvalidInput)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: profile name is required", domain.ErrInvalidInput)
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("%w: profile name must be 100 characters or fewer", domain.ErrInvalidInput)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		data = []byte("{}")
	}
	if data[0] != '{' {
		return nil, fmt.Errorf("%w: profile data must be a JSON object", domain.ErrInvalidInput)
	}

	p := &domain.Profile{
		ID:     uuid.NewString(),
		UserID: userID,
		Kind:   kind,
		Name:   name,
		Data:   data,
	}
	if err := s.profiles.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

// GetByID returns the user's profile. Profiles of other users are reported
// as not found.
func (s *ProfileService) GetByID(ctx context.Context, userID int64, id string) (*domain.Profile, error) {
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// ListByUser returns the user's profiles, optionally filtered by kind.
func (s *ProfileService) ListByUser(ctx context.Context, userID int64, kind domain.ProfileKind) ([]domain.Profile, error) {
	if kind != "" && !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown profile kind %q", domain.ErrInvalidInput, kind)
	}
	return s.profiles.ListByUser(ctx, userID, kind)
}

// Delete removes a profile. Only the owner can delete it.
func (s *ProfileService) Delete(ctx context.Context, userID int64, id string) error {
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.UserID != userID {
		return domain.ErrUnauthorized
	}
	return s.profiles.Delete(ctx, id)
}

// Resolve checks that id names one of the user's profiles of the given kind.
func (s *ProfileService) Resolve(ctx context.Context, userID int64, kind domain.ProfileKind, id string) error {
	p, err := s.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: %s profile %s does not exist", domain.ErrInvalidInput, kind, id)
		}
		return fmt.Errorf("resolve %s profile: %w", kind, err)
	}
	if p.Kind != kind {
		return fmt.Errorf("%w: profile %s is a %s profile, not %s", domain.ErrInvalidInput, id, p.Kind, kind)
	}
	return nil
}
