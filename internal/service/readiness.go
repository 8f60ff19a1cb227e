package service

import (
	"fmt"

	"github.com/msomdec/knit-designer/internal/domain"
)

// EvaluateSectionReadiness reports which of the available steps are complete
// under the built-in policy. The snapshot is never modified.
func EvaluateSectionReadiness(snapshot *domain.SessionSnapshot, availableSteps []domain.SectionKey) (*domain.CompletionSummary, error) {
	return DefaultPolicy().Evaluate(snapshot, availableSteps)
}

// Evaluate computes the completion summary for snapshot over availableSteps.
// Sweater-like garments count structure, neckline and sleeves as complete
// even when unset because a default exists for them.
func (p Policy) Evaluate(snapshot *domain.SessionSnapshot, availableSteps []domain.SectionKey) (*domain.CompletionSummary, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("%w: no snapshot", domain.ErrIncompleteSnapshot)
	}
	if len(availableSteps) == 0 {
		return nil, fmt.Errorf("%w: no available steps", domain.ErrIncompleteSnapshot)
	}
	seen := make(map[domain.SectionKey]bool, len(availableSteps))
	for _, k := range availableSteps {
		if !k.Valid() {
			return nil, fmt.Errorf("%w: unknown section %q", domain.ErrIncompleteSnapshot, k)
		}
		if seen[k] {
			return nil, fmt.Errorf("%w: duplicate section %q", domain.ErrIncompleteSnapshot, k)
		}
		seen[k] = true
	}

	summary := &domain.CompletionSummary{CompletedSteps: []domain.SectionKey{}}
	others := 0
	for _, k := range availableSteps {
		if k == domain.SectionSummary {
			continue
		}
		if p.sectionComplete(snapshot, k) {
			summary.CompletedSteps = append(summary.CompletedSteps, k)
			others++
		}
	}
	// The summary step is the review page: it is done once everything else is.
	if seen[domain.SectionSummary] && others == len(availableSteps)-1 {
		summary.CompletedSteps = orderLike(availableSteps, append(summary.CompletedSteps, domain.SectionSummary))
	}

	summary.CompletionPercentage = percentage(len(summary.CompletedSteps), len(availableSteps))
	summary.ReadyForCalculation = summary.CompletionPercentage >= p.ReadyThreshold
	return summary, nil
}

func (p Policy) sectionComplete(s *domain.SessionSnapshot, key domain.SectionKey) bool {
	switch key {
	case domain.SectionGarmentType:
		return s.GarmentType != ""
	case domain.SectionGauge:
		g := s.Gauge
		return g != nil && (g.ProfileID != "" || (g.Stitches > 0 && g.Rows > 0 && g.Unit != ""))
	case domain.SectionMeasurements:
		return s.Measurements != nil && s.Measurements.MeasurementSetID != ""
	case domain.SectionEase:
		return s.Ease != nil && s.Ease.EaseType != ""
	case domain.SectionYarn:
		return s.Yarn != nil && s.Yarn.YarnProfileID != ""
	case domain.SectionStitchPattern:
		return s.StitchPattern != nil && s.StitchPattern.StitchPatternID != 0
	case domain.SectionGarmentStructure:
		return (s.GarmentStructure != nil && s.GarmentStructure.ConstructionMethod != "") || p.defaults(s.GarmentType)
	case domain.SectionNeckline:
		return (s.Neckline != nil && s.Neckline.Style != "") || p.defaults(s.GarmentType)
	case domain.SectionSleeves:
		sl := s.Sleeves
		return (sl != nil && (sl.Style != "" || sl.Length != "" || sl.CuffStyle != "")) || p.defaults(s.GarmentType)
	case domain.SectionAccessoryDefinition:
		return !s.GarmentType.IsAccessory() || (s.Accessory != nil && *s.Accessory != (domain.AccessorySection{}))
	case domain.SectionSummary:
		return false
	}
	panic(fmt.Sprintf("unhandled section key %q", key))
}

// StepsFor returns the ordered workspace steps shown for a garment type.
func StepsFor(g domain.GarmentType) []domain.SectionKey {
	common := []domain.SectionKey{
		domain.SectionGarmentType,
		domain.SectionGauge,
		domain.SectionMeasurements,
		domain.SectionEase,
		domain.SectionYarn,
		domain.SectionStitchPattern,
	}
	switch {
	case g.IsAccessory():
		return append(common, domain.SectionAccessoryDefinition, domain.SectionSummary)
	case g == domain.GarmentVest:
		return append(common, domain.SectionGarmentStructure, domain.SectionNeckline, domain.SectionSummary)
	case g.Valid():
		return append(common, domain.SectionGarmentStructure, domain.SectionNeckline, domain.SectionSleeves, domain.SectionSummary)
	}
	return []domain.SectionKey{domain.SectionGarmentType, domain.SectionSummary}
}

// percentage rounds half up.
func percentage(n, total int) int {
	return (200*n + total) / (2 * total)
}

func orderLike(order, keys []domain.SectionKey) []domain.SectionKey {
	in := make(map[domain.SectionKey]bool, len(keys))
	for _, k := range keys {
		in[k] = true
	}
	out := make([]domain.SectionKey, 0, len(keys))
	for _, k := range order {
		if in[k] {
			out = append(out, k)
		}
	}
	return out
}
