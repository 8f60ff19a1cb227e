package domain

// IntegrationRequest asks how a stitch pattern's repeat fits into a piece.
type IntegrationRequest struct {
	TargetStitchCount          int `json:"targetStitchCount"`
	RepeatWidth                int `json:"repeatWidth"`
	DesiredEdgeStitchesPerSide int `json:"desiredEdgeStitchesPerSide"`
}

type FitStatus string

const (
	FitExact      FitStatus = "exact"
	FitRemainder  FitStatus = "remainder"
	FitDoesNotFit FitStatus = "does-not-fit"
)

type OptionKind string

const (
	OptionAbsorbEdges  OptionKind = "absorb-edges"
	OptionPlainPanel   OptionKind = "plain-panel"
	OptionFewerRepeats OptionKind = "fewer-repeats"
)

// IntegrationAnalysis is recomputed on every request and never persisted.
type IntegrationAnalysis struct {
	Request               IntegrationRequest  `json:"request"`
	AvailableForRepeats   int                 `json:"availableForRepeats"`
	FullRepeats           int                 `json:"fullRepeats"`
	StitchesUsedByRepeats int                 `json:"stitchesUsedByRepeats"`
	RemainingStitches     int                 `json:"remainingStitches"`
	EdgeStitches          int                 `json:"edgeStitches"` // both sides combined
	Fit                   FitStatus           `json:"fit"`
	Notice                string              `json:"notice,omitempty"`
	Options               []IntegrationOption `json:"options"`
}

// Option returns the option of the given kind, if the analysis offers it.
func (a *IntegrationAnalysis) Option(kind OptionKind) (IntegrationOption, bool) {
	for _, o := range a.Options {
		if o.Kind == kind {
			return o, true
		}
	}
	return IntegrationOption{}, false
}

// IntegrationOption is one suggested partition of the target width.
// 2*EdgeStitchesEachSide + ExtraEdgeStitches + Repeats*width + PanelStitches
// always equals TotalStitches.
type IntegrationOption struct {
	Kind                 OptionKind `json:"kind"`
	Description          string     `json:"description"`
	TotalStitches        int        `json:"totalStitches"`
	EdgeStitchesEachSide int        `json:"edgeStitchesEachSide"`
	ExtraEdgeStitches    int        `json:"extraEdgeStitches,omitempty"`
	ExtraEdgeSide        string     `json:"extraEdgeSide,omitempty"`
	Repeats              int        `json:"repeats"`
	PanelStitches        int        `json:"panelStitches,omitempty"`
}

// IntegrationChoice records the option a user applied to a definition.
type IntegrationChoice struct {
	TargetStitchCount   int               `json:"targetStitchCount"`
	EdgeStitchesPerSide int               `json:"edgeStitchesPerSide"`
	Option              IntegrationOption `json:"option"`
}
