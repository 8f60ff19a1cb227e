package domain

// SessionSnapshot holds whatever the user has filled in so far while
// defining a pattern. A nil section means the section has not been touched.
type SessionSnapshot struct {
	GarmentType      GarmentType              `json:"garmentType"`
	Gauge            *GaugeSection            `json:"gauge,omitempty"`
	Measurements     *MeasurementsSection     `json:"measurements,omitempty"`
	Ease             *EaseSection             `json:"ease,omitempty"`
	Yarn             *YarnSection             `json:"yarn,omitempty"`
	StitchPattern    *StitchPatternSection    `json:"stitchPattern,omitempty"`
	GarmentStructure *GarmentStructureSection `json:"garmentStructure,omitempty"`
	Neckline         *NecklineSection         `json:"neckline,omitempty"`
	Sleeves          *SleevesSection          `json:"sleeves,omitempty"`
	Accessory        *AccessorySection        `json:"accessory,omitempty"`
}

// GaugeSection is satisfied either by a saved gauge profile or by manual counts.
type GaugeSection struct {
	ProfileID string  `json:"profileId,omitempty"`
	Stitches  float64 `json:"stitches,omitempty"` // per 10 units
	Rows      float64 `json:"rows,omitempty"`     // per 10 units
	Unit      string  `json:"unit,omitempty"`     // "cm" or "in"
}

type MeasurementsSection struct {
	MeasurementSetID string `json:"measurementSetId,omitempty"`
}

type EaseSection struct {
	EaseType string  `json:"easeType,omitempty"` // "negative", "zero", "classic", "relaxed", "oversized"
	AmountCm float64 `json:"amountCm,omitempty"`
}

type YarnSection struct {
	YarnProfileID string `json:"yarnProfileId,omitempty"`
}

type StitchPatternSection struct {
	StitchPatternID int64              `json:"stitchPatternId,omitempty"`
	Integration     *IntegrationChoice `json:"integration,omitempty"`
}

type GarmentStructureSection struct {
	ConstructionMethod string `json:"constructionMethod,omitempty" yaml:"construction_method"`
	BodyShape          string `json:"bodyShape,omitempty" yaml:"body_shape"`
}

type NecklineSection struct {
	Style   string  `json:"style,omitempty" yaml:"style"`
	DepthCm float64 `json:"depthCm,omitempty" yaml:"depth_cm"`
	WidthCm float64 `json:"widthCm,omitempty" yaml:"width_cm"`
}

type SleevesSection struct {
	Style        string  `json:"style,omitempty" yaml:"style"`
	Length       string  `json:"length,omitempty" yaml:"length"`
	CuffStyle    string  `json:"cuffStyle,omitempty" yaml:"cuff_style"`
	CuffLengthCm float64 `json:"cuffLengthCm,omitempty" yaml:"cuff_length_cm"`
}

// AccessorySection carries the attributes for beanies, scarves and cowls.
type AccessorySection struct {
	CircumferenceCm float64 `json:"circumferenceCm,omitempty"`
	LengthCm        float64 `json:"lengthCm,omitempty"`
	WidthCm         float64 `json:"widthCm,omitempty"`
	BrimStyle       string  `json:"brimStyle,omitempty"`
	CrownStyle      string  `json:"crownStyle,omitempty"`
}

// Clone returns a deep copy of the snapshot. A nil snapshot clones to nil.
func (s *SessionSnapshot) Clone() *SessionSnapshot {
	if s == nil {
		return nil
	}
	c := &SessionSnapshot{GarmentType: s.GarmentType}
	if s.Gauge != nil {
		v := *s.Gauge
		c.Gauge = &v
	}
	if s.Measurements != nil {
		v := *s.Measurements
		c.Measurements = &v
	}
	if s.Ease != nil {
		v := *s.Ease
		c.Ease = &v
	}
	if s.Yarn != nil {
		v := *s.Yarn
		c.Yarn = &v
	}
	if s.StitchPattern != nil {
		v := *s.StitchPattern
		if v.Integration != nil {
			ic := *v.Integration
			v.Integration = &ic
		}
		c.StitchPattern = &v
	}
	if s.GarmentStructure != nil {
		v := *s.GarmentStructure
		c.GarmentStructure = &v
	}
	if s.Neckline != nil {
		v := *s.Neckline
		c.Neckline = &v
	}
	if s.Sleeves != nil {
		v := *s.Sleeves
		c.Sleeves = &v
	}
	if s.Accessory != nil {
		v := *s.Accessory
		c.Accessory = &v
	}
	return c
}

// CompletionSummary is derived from a snapshot and never stored.
type CompletionSummary struct {
	CompletedSteps       []SectionKey `json:"completedSteps"`
	CompletionPercentage int          `json:"completionPercentage"`
	ReadyForCalculation  bool         `json:"readyForCalculation"`
}

// Completed reports whether key is among the completed steps.
func (c *CompletionSummary) Completed(key SectionKey) bool {
	for _, k := range c.CompletedSteps {
		if k == key {
			return true
		}
	}
	return false
}
