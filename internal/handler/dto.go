package handler

import (
	"encoding/json"
	"time"

	"github.com/msomdec/knit-designer/internal/domain"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   u.UpdatedAt.Format(time.RFC3339),
	}
}

// StitchPatternDTO is the JSON representation of a catalog entry.
type StitchPatternDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	RepeatWidth  int    `json:"repeatWidth"`
	RepeatHeight int    `json:"repeatHeight"`
	IsCustom     bool   `json:"isCustom"`
	UserID       *int64 `json:"userId"`
	CreatedAt    string `json:"createdAt"`
}

func toStitchPatternDTO(p domain.StitchPatternRef) StitchPatternDTO {
	return StitchPatternDTO{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Description:  p.Description,
		RepeatWidth:  p.RepeatWidth,
		RepeatHeight: p.RepeatHeight,
		IsCustom:     p.IsCustom,
		UserID:       p.UserID,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

func toStitchPatternDTOs(patterns []domain.StitchPatternRef) []StitchPatternDTO {
	dtos := make([]StitchPatternDTO, len(patterns))
	for i, p := range patterns {
		dtos[i] = toStitchPatternDTO(p)
	}
	return dtos
}

// ProfileDTO is the JSON representation of a saved profile.
type ProfileDTO struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Name      string          `json:"name"`
	Data      json.RawMessage `json:"data"`
	CreatedAt string          `json:"createdAt"`
}

func toProfileDTO(p *domain.Profile) ProfileDTO {
	return ProfileDTO{
		ID:        p.ID,
		Kind:      string(p.Kind),
		Name:      p.Name,
		Data:      p.Data,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

func toProfileDTOs(profiles []domain.Profile) []ProfileDTO {
	dtos := make([]ProfileDTO, len(profiles))
	for i := range profiles {
		dtos[i] = toProfileDTO(&profiles[i])
	}
	return dtos
}

// SessionDTO is the JSON representation of a definition session.
type SessionDTO struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Snapshot  *domain.SessionSnapshot `json:"snapshot"`
	CreatedAt string                  `json:"createdAt"`
	UpdatedAt string                  `json:"updatedAt"`
}

func toSessionDTO(s *domain.DefinitionSession) SessionDTO {
	return SessionDTO{
		ID:        s.ID,
		Name:      s.Name,
		Snapshot:  s.Snapshot,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

// SessionSummaryDTO is the list-view representation of a session.
type SessionSummaryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	GarmentType string `json:"garmentType"`
	UpdatedAt   string `json:"updatedAt"`
}

func toSessionSummaryDTOs(sessions []domain.DefinitionSession) []SessionSummaryDTO {
	dtos := make([]SessionSummaryDTO, len(sessions))
	for i, s := range sessions {
		var garment string
		if s.Snapshot != nil {
			garment = string(s.Snapshot.GarmentType)
		}
		dtos[i] = SessionSummaryDTO{
			ID:          s.ID,
			Name:        s.Name,
			GarmentType: garment,
			UpdatedAt:   s.UpdatedAt.Format(time.RFC3339),
		}
	}
	return dtos
}

// ReadinessDTO pairs a completion summary with the steps it was evaluated over.
type ReadinessDTO struct {
	Steps []domain.SectionKey `json:"steps"`
	*domain.CompletionSummary
}
