package service

import (
	"fmt"

	"github.com/msomdec/knit-designer/internal/domain"
)

// oddStitchSide receives the single leftover stitch when a remainder is
// split across both edges.
const oddStitchSide = "left"

// DoesNotFitNotice is returned when not even one repeat fits.
const DoesNotFitNotice = "pattern does not fit; consider a smaller repeat or more stitches"

// AnalyzeIntegration works out how many full repeats of a stitch pattern fit
// between the requested edge stitches and how the leftover can be absorbed.
// Options come back in a fixed order: absorb into edges, plain panel, then
// fewer repeats when that widens the edges.
func AnalyzeIntegration(req domain.IntegrationRequest) (*domain.IntegrationAnalysis, error) {
	if req.TargetStitchCount <= 0 {
		return nil, fmt.Errorf("%w: target stitch count must be positive", domain.ErrInvalidRequest)
	}
	if req.RepeatWidth <= 0 {
		return nil, fmt.Errorf("%w: repeat width must be positive", domain.ErrInvalidRequest)
	}
	if req.DesiredEdgeStitchesPerSide < 0 {
		return nil, fmt.Errorf("%w: edge stitches cannot be negative", domain.ErrInvalidRequest)
	}

	edges := req.DesiredEdgeStitchesPerSide
	if edges > (req.TargetStitchCount-1)/2 {
		return nil, fmt.Errorf("%w: %d stitches leave no room for repeats between %d edge stitches per side",
			domain.ErrInvalidRequest, req.TargetStitchCount, edges)
	}
	available := req.TargetStitchCount - 2*edges

	width := req.RepeatWidth
	full := available / width
	used := full * width
	remaining := available - used

	a := &domain.IntegrationAnalysis{
		Request:               req,
		AvailableForRepeats:   available,
		FullRepeats:           full,
		StitchesUsedByRepeats: used,
		RemainingStitches:     remaining,
		EdgeStitches:          2 * edges,
		Options:               []domain.IntegrationOption{},
	}

	if full == 0 {
		a.Fit = domain.FitDoesNotFit
		a.Notice = DoesNotFitNotice
		return a, nil
	}

	a.Fit = domain.FitRemainder
	if remaining == 0 {
		a.Fit = domain.FitExact
	}

	absorb := absorbIntoEdges(req, full, remaining)
	a.Options = append(a.Options, absorb, plainPanel(req, full, remaining))
	if c, ok := fewerRepeats(req, full, remaining); ok && c.EdgeStitchesEachSide > absorb.EdgeStitchesEachSide {
		a.Options = append(a.Options, c)
	}
	return a, nil
}

func absorbIntoEdges(req domain.IntegrationRequest, full, remaining int) domain.IntegrationOption {
	o := splitIntoEdges(req, full, remaining)
	o.Kind = domain.OptionAbsorbEdges
	switch {
	case remaining == 0:
		o.Description = fmt.Sprintf("Pattern fits exactly: no adjustment needed. %d repeats of %d with %d edge stitches each side, %d stitches total.",
			full, req.RepeatWidth, o.EdgeStitchesEachSide, o.TotalStitches)
	case o.ExtraEdgeStitches > 0:
		o.Description = fmt.Sprintf("Add %d edge stitches to each side and 1 more on the %s: %d repeats of %d with %d and %d edge stitches, %d stitches total.",
			remaining/2, o.ExtraEdgeSide, full, req.RepeatWidth,
			o.EdgeStitchesEachSide+o.ExtraEdgeStitches, o.EdgeStitchesEachSide, o.TotalStitches)
	default:
		o.Description = fmt.Sprintf("Add %d edge stitches to each side: %d repeats of %d with %d edge stitches each side, %d stitches total.",
			remaining/2, full, req.RepeatWidth, o.EdgeStitchesEachSide, o.TotalStitches)
	}
	return o
}

func plainPanel(req domain.IntegrationRequest, full, remaining int) domain.IntegrationOption {
	o := domain.IntegrationOption{
		Kind:                 domain.OptionPlainPanel,
		TotalStitches:        req.TargetStitchCount,
		EdgeStitchesEachSide: req.DesiredEdgeStitchesPerSide,
		Repeats:              full,
		PanelStitches:        remaining,
	}
	if remaining == 0 {
		o.Description = fmt.Sprintf("Pattern fits exactly: no plain panel needed. %d repeats of %d with %d edge stitches each side, %d stitches total.",
			full, req.RepeatWidth, o.EdgeStitchesEachSide, o.TotalStitches)
		return o
	}
	o.Description = fmt.Sprintf("Work a %d-stitch stockinette panel at the centre: %d repeats of %d with %d edge stitches each side, %d stitches total.",
		remaining, full, req.RepeatWidth, o.EdgeStitchesEachSide, o.TotalStitches)
	return o
}

// fewerRepeats drops one repeat and moves the freed stitches into the edges.
// At least one repeat must remain.
func fewerRepeats(req domain.IntegrationRequest, full, remaining int) (domain.IntegrationOption, bool) {
	if full < 2 {
		return domain.IntegrationOption{}, false
	}
	freed := remaining + req.RepeatWidth
	o := splitIntoEdges(req, full-1, freed)
	o.Kind = domain.OptionFewerRepeats
	if o.ExtraEdgeStitches > 0 {
		o.Description = fmt.Sprintf("Drop to %d repeats and widen the edges: %d and %d edge stitches (extra on the %s), %d stitches total.",
			o.Repeats, o.EdgeStitchesEachSide+o.ExtraEdgeStitches, o.EdgeStitchesEachSide, o.ExtraEdgeSide, o.TotalStitches)
	} else {
		o.Description = fmt.Sprintf("Drop to %d repeats and widen the edges to %d stitches each side, %d stitches total.",
			o.Repeats, o.EdgeStitchesEachSide, o.TotalStitches)
	}
	return o, true
}

func splitIntoEdges(req domain.IntegrationRequest, repeats, spare int) domain.IntegrationOption {
	o := domain.IntegrationOption{
		TotalStitches:        req.TargetStitchCount,
		EdgeStitchesEachSide: req.DesiredEdgeStitchesPerSide + spare/2,
		Repeats:              repeats,
	}
	if spare%2 == 1 {
		o.ExtraEdgeStitches = 1
		o.ExtraEdgeSide = oddStitchSide
	}
	return o
}
