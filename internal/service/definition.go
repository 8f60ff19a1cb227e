package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/msomdec/knit-designer/internal/domain"
)

// DefinitionService owns users' pattern-definition sessions: it persists
// their snapshots and runs the readiness, defaulting and integration logic
// over them.
type DefinitionService struct {
	sessions domain.DefinitionSessionRepository
	profiles *ProfileService
	catalog  *StitchPatternService
	policy   Policy
}

// NewDefinitionService creates a new DefinitionService.
func NewDefinitionService(sessions domain.DefinitionSessionRepository, profiles *ProfileService, catalog *StitchPatternService, policy Policy) *DefinitionService {
	return &DefinitionService{sessions: sessions, profiles: profiles, catalog: catalog, policy: policy}
}

// Policy returns the readiness and defaulting policy in force.
func (s *DefinitionService) Policy() Policy {
	return s.policy
}

// Start creates a new session whose snapshot holds only the garment type.
func (s *DefinitionService) Start(ctx context.Context, userID int64, name string, garment domain.GarmentType) (*domain.DefinitionSession, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: session name is required", domain.ErrInvalidInput)
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("%w: session name must be 100 characters or fewer", domain.ErrInvalidInput)
	}
	if !garment.Valid() {
		return nil, fmt.Errorf("%w: unknown garment type %q", domain.ErrInvalidInput, garment)
	}

	session := &domain.DefinitionSession{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     name,
		Snapshot: &domain.SessionSnapshot{GarmentType: garment},
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	slog.Info("definition session started", "session", session.ID, "user", userID, "garment", garment)
	return session, nil
}

// GetByID returns the user's session. Sessions of other users are reported
// as not found.
func (s *DefinitionService) GetByID(ctx context.Context, userID int64, id string) (*domain.DefinitionSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

// ListByUser returns all sessions for a user, most recently updated first.
func (s *DefinitionService) ListByUser(ctx context.Context, userID int64) ([]domain.DefinitionSession, error) {
	return s.sessions.ListByUser(ctx, userID)
}

// Delete removes a session with ownership check.
func (s *DefinitionService) Delete(ctx context.Context, userID int64, id string) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, id)
}

// UpdateSnapshot replaces the session's snapshot after checking that every
// profile and stitch pattern it references exists and belongs to the user.
func (s *DefinitionService) UpdateSnapshot(ctx context.Context, userID int64, id string, snapshot *domain.SessionSnapshot) (*domain.DefinitionSession, error) {
	session, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.validateSnapshot(ctx, userID, snapshot); err != nil {
		return nil, err
	}
	next, err := s.reconcileIntegration(ctx, userID, session.Snapshot, snapshot)
	if err != nil {
		return nil, err
	}

	session.Snapshot = next
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	slog.Debug("definition snapshot updated", "session", id, "garment", snapshot.GarmentType)
	return session, nil
}

// Reset discards everything but the garment type.
func (s *DefinitionService) Reset(ctx context.Context, userID int64, id string) (*domain.DefinitionSession, error) {
	session, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	session.Snapshot = &domain.SessionSnapshot{GarmentType: session.Snapshot.GarmentType}
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("reset session: %w", err)
	}
	slog.Info("definition session reset", "session", id)
	return session, nil
}

// Readiness evaluates the session against the steps for its garment type.
func (s *DefinitionService) Readiness(ctx context.Context, userID int64, id string) (*domain.CompletionSummary, []domain.SectionKey, error) {
	session, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}
	steps := StepsFor(session.Snapshot.GarmentType)
	summary, err := s.policy.Evaluate(session.Snapshot, steps)
	if err != nil {
		return nil, nil, err
	}
	return summary, steps, nil
}

// Prepare returns the snapshot with policy defaults applied, ready to hand
// to the calculation engine. It fails with ErrNotReady below the threshold.
func (s *DefinitionService) Prepare(ctx context.Context, userID int64, id string) (*domain.SessionSnapshot, error) {
	session, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	summary, err := s.policy.Evaluate(session.Snapshot, StepsFor(session.Snapshot.GarmentType))
	if err != nil {
		return nil, err
	}
	if !summary.ReadyForCalculation {
		return nil, fmt.Errorf("%w: %d%% complete, %d%% required",
			domain.ErrNotReady, summary.CompletionPercentage, s.policy.ReadyThreshold)
	}
	slog.Info("definition prepared for calculation", "session", id, "completion", summary.CompletionPercentage)
	return s.policy.ApplyDefaults(session.Snapshot), nil
}

// AnalyzeIntegration fits the session's chosen stitch pattern into
// targetStitches with edges stitches on each side.
func (s *DefinitionService) AnalyzeIntegration(ctx context.Context, userID int64, id string, targetStitches, edges int) (*domain.IntegrationAnalysis, error) {
	session, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.analyze(ctx, userID, session.Snapshot.StitchPattern, targetStitches, edges)
}

// ApplyIntegration records the chosen option on the stitch pattern section.
func (s *DefinitionService) ApplyIntegration(ctx context.Context, userID int64, id string, targetStitches, edges int, kind domain.OptionKind) (*domain.DefinitionSession, error) {
	session, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	analysis, err := s.analyze(ctx, userID, session.Snapshot.StitchPattern, targetStitches, edges)
	if err != nil {
		return nil, err
	}
	if analysis.Fit == domain.FitDoesNotFit {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, analysis.Notice)
	}
	option, ok := analysis.Option(kind)
	if !ok {
		return nil, fmt.Errorf("%w: option %q is not available", domain.ErrInvalidInput, kind)
	}

	snapshot := session.Snapshot.Clone()
	snapshot.StitchPattern.Integration = &domain.IntegrationChoice{
		TargetStitchCount:   targetStitches,
		EdgeStitchesPerSide: edges,
		Option:              option,
	}
	session.Snapshot = snapshot
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	slog.Info("integration option applied", "session", id, "option", kind)
	return session, nil
}

func (s *DefinitionService) analyze(ctx context.Context, userID int64, sp *domain.StitchPatternSection, targetStitches, edges int) (*domain.IntegrationAnalysis, error) {
	if sp == nil || sp.StitchPatternID == 0 {
		return nil, fmt.Errorf("%w: choose a stitch pattern first", domain.ErrInvalidInput)
	}
	ref, err := s.catalog.Visible(ctx, userID, sp.StitchPatternID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: stitch pattern %d no longer exists", domain.ErrInvalidInput, sp.StitchPatternID)
		}
		return nil, fmt.Errorf("get stitch pattern: %w", err)
	}
	return AnalyzeIntegration(domain.IntegrationRequest{
		TargetStitchCount:          targetStitches,
		RepeatWidth:                ref.RepeatWidth,
		DesiredEdgeStitchesPerSide: edges,
	})
}

// reconcileIntegration returns a copy of next whose integration choice is
// consistent with its stitch pattern. A submitted choice must match one of
// the options analysis offers for its target and edges. Without one, the
// stored choice is kept while the stitch pattern stays the same.
func (s *DefinitionService) reconcileIntegration(ctx context.Context, userID int64, prev, next *domain.SessionSnapshot) (*domain.SessionSnapshot, error) {
	out := next.Clone()
	sp := out.StitchPattern
	if sp == nil {
		return out, nil
	}

	if choice := sp.Integration; choice != nil {
		analysis, err := s.analyze(ctx, userID, sp, choice.TargetStitchCount, choice.EdgeStitchesPerSide)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidRequest) {
				return nil, fmt.Errorf("%w: integration choice: %v", domain.ErrInvalidInput, err)
			}
			return nil, err
		}
		option, ok := analysis.Option(choice.Option.Kind)
		if !ok || option != choice.Option {
			return nil, fmt.Errorf("%w: integration option %q does not match %d stitches with %d edge stitches per side",
				domain.ErrInvalidInput, choice.Option.Kind, choice.TargetStitchCount, choice.EdgeStitchesPerSide)
		}
		return out, nil
	}

	if prev != nil && prev.StitchPattern != nil && prev.StitchPattern.Integration != nil &&
		prev.StitchPattern.StitchPatternID == sp.StitchPatternID {
		kept := *prev.StitchPattern.Integration
		sp.Integration = &kept
	}
	return out, nil
}

func (s *DefinitionService) validateSnapshot(ctx context.Context, userID int64, snapshot *domain.SessionSnapshot) error {
	if snapshot == nil {
		return fmt.Errorf("%w: snapshot is required", domain.ErrInvalidInput)
	}
	if !snapshot.GarmentType.Valid() {
		return fmt.Errorf("%w: unknown garment type %q", domain.ErrInvalidInput, snapshot.GarmentType)
	}
	if g := snapshot.Gauge; g != nil {
		if g.ProfileID != "" {
			if err := s.profiles.Resolve(ctx, userID, domain.ProfileGauge, g.ProfileID); err != nil {
				return err
			}
		}
		if g.Stitches < 0 || g.Rows < 0 {
			return fmt.Errorf("%w: gauge counts cannot be negative", domain.ErrInvalidInput)
		}
		if g.Unit != "" && g.Unit != "cm" && g.Unit != "in" {
			return fmt.Errorf("%w: gauge unit must be cm or in", domain.ErrInvalidInput)
		}
	}
	if m := snapshot.Measurements; m != nil && m.MeasurementSetID != "" {
		if err := s.profiles.Resolve(ctx, userID, domain.ProfileMeasurements, m.MeasurementSetID); err != nil {
			return err
		}
	}
	if y := snapshot.Yarn; y != nil && y.YarnProfileID != "" {
		if err := s.profiles.Resolve(ctx, userID, domain.ProfileYarn, y.YarnProfileID); err != nil {
			return err
		}
	}
	if sp := snapshot.StitchPattern; sp != nil && sp.StitchPatternID != 0 {
		if _, err := s.catalog.Visible(ctx, userID, sp.StitchPatternID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: stitch pattern %d does not exist", domain.ErrInvalidInput, sp.StitchPatternID)
			}
			return fmt.Errorf("resolve stitch pattern: %w", err)
		}
	}
	if snapshot.Accessory != nil && !snapshot.GarmentType.IsAccessory() {
		return fmt.Errorf("%w: accessory attributes only apply to beanies, scarves and cowls", domain.ErrInvalidInput)
	}
	return nil
}
