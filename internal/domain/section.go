package domain

// SectionKey identifies one logical section of a pattern definition.
type SectionKey string

const (
	SectionGarmentType         SectionKey = "garment-type"
	SectionGauge               SectionKey = "gauge"
	SectionMeasurements        SectionKey = "measurements"
	SectionEase                SectionKey = "ease"
	SectionYarn                SectionKey = "yarn"
	SectionStitchPattern       SectionKey = "stitch-pattern"
	SectionGarmentStructure    SectionKey = "garment-structure"
	SectionNeckline            SectionKey = "neckline"
	SectionSleeves             SectionKey = "sleeves"
	SectionAccessoryDefinition SectionKey = "accessory-definition"
	SectionSummary             SectionKey = "summary"
)

var allSectionKeys = []SectionKey{
	SectionGarmentType,
	SectionGauge,
	SectionMeasurements,
	SectionEase,
	SectionYarn,
	SectionStitchPattern,
	SectionGarmentStructure,
	SectionNeckline,
	SectionSleeves,
	SectionAccessoryDefinition,
	SectionSummary,
}

// AllSectionKeys returns every section key in canonical workspace order.
func AllSectionKeys() []SectionKey {
	keys := make([]SectionKey, len(allSectionKeys))
	copy(keys, allSectionKeys)
	return keys
}

// Valid reports whether k is one of the known section keys.
func (k SectionKey) Valid() bool {
	for _, known := range allSectionKeys {
		if k == known {
			return true
		}
	}
	return false
}

type GarmentType string

const (
	GarmentSweater  GarmentType = "sweater"
	GarmentCardigan GarmentType = "cardigan"
	GarmentVest     GarmentType = "vest"
	GarmentBeanie   GarmentType = "beanie"
	GarmentScarf    GarmentType = "scarf"
	GarmentCowl     GarmentType = "cowl"
)

// Valid reports whether g is a supported garment type.
func (g GarmentType) Valid() bool {
	switch g {
	case GarmentSweater, GarmentCardigan, GarmentVest, GarmentBeanie, GarmentScarf, GarmentCowl:
		return true
	}
	return false
}

// IsAccessory reports whether g is defined through the accessory section
// instead of body, neckline and sleeve sections.
func (g GarmentType) IsAccessory() bool {
	return g == GarmentBeanie || g == GarmentScarf || g == GarmentCowl
}
