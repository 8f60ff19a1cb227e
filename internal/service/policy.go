package service

import (
	"fmt"
	"os"
	"slices"

	"github.com/msomdec/knit-designer/internal/domain"
	"gopkg.in/yaml.v3"
)

// ReadyThreshold is the completion percentage at which a definition may be
// sent for calculation. Product policy, not a derived value.
const ReadyThreshold = 80

// Default section values used for garments whose structure, neckline and
// sleeves may be left unspecified. Product policy, subject to change.
const (
	DefaultConstructionMethod = "drop-shoulder"
	DefaultBodyShape          = "straight"

	DefaultNecklineStyle   = "crew"
	DefaultNecklineDepthCm = 8.0
	DefaultNecklineWidthCm = 20.0

	DefaultSleeveStyle  = "straight"
	DefaultSleeveLength = "long"
	DefaultCuffStyle    = "ribbed"
	DefaultCuffLengthCm = 5.0
)

// Policy bundles the readiness threshold and the default substitutions.
type Policy struct {
	ReadyThreshold        int                            `yaml:"ready_threshold"`
	DefaultedGarmentTypes []domain.GarmentType           `yaml:"defaulted_garment_types"`
	Structure             domain.GarmentStructureSection `yaml:"structure"`
	Neckline              domain.NecklineSection         `yaml:"neckline"`
	Sleeves               domain.SleevesSection          `yaml:"sleeves"`
}

// DefaultPolicy returns the built-in policy.
func DefaultPolicy() Policy {
	return Policy{
		ReadyThreshold:        ReadyThreshold,
		DefaultedGarmentTypes: []domain.GarmentType{domain.GarmentSweater, domain.GarmentCardigan},
		Structure: domain.GarmentStructureSection{
			ConstructionMethod: DefaultConstructionMethod,
			BodyShape:          DefaultBodyShape,
		},
		Neckline: domain.NecklineSection{
			Style:   DefaultNecklineStyle,
			DepthCm: DefaultNecklineDepthCm,
			WidthCm: DefaultNecklineWidthCm,
		},
		Sleeves: domain.SleevesSection{
			Style:        DefaultSleeveStyle,
			Length:       DefaultSleeveLength,
			CuffStyle:    DefaultCuffStyle,
			CuffLengthCm: DefaultCuffLengthCm,
		},
	}
}

// LoadPolicy reads a YAML policy file. Keys absent from the file keep their
// built-in values.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read policy file: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse policy file: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// Validate checks that the policy can be applied.
func (p Policy) Validate() error {
	if p.ReadyThreshold < 1 || p.ReadyThreshold > 100 {
		return fmt.Errorf("%w: ready threshold must be between 1 and 100, got %d", domain.ErrInvalidInput, p.ReadyThreshold)
	}
	for _, g := range p.DefaultedGarmentTypes {
		if !g.Valid() {
			return fmt.Errorf("%w: unknown garment type %q in policy", domain.ErrInvalidInput, g)
		}
		if g.IsAccessory() {
			return fmt.Errorf("%w: accessory %q cannot take garment defaults", domain.ErrInvalidInput, g)
		}
	}
	if p.Structure.ConstructionMethod == "" {
		return fmt.Errorf("%w: default construction method is required", domain.ErrInvalidInput)
	}
	if p.Neckline.Style == "" {
		return fmt.Errorf("%w: default neckline style is required", domain.ErrInvalidInput)
	}
	if p.Sleeves.Style == "" && p.Sleeves.Length == "" && p.Sleeves.CuffStyle == "" {
		return fmt.Errorf("%w: default sleeves need at least one attribute", domain.ErrInvalidInput)
	}
	return nil
}

func (p Policy) defaults(g domain.GarmentType) bool {
	return slices.Contains(p.DefaultedGarmentTypes, g)
}
