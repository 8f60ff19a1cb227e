package service

import "github.com/msomdec/knit-designer/internal/domain"

// ApplyDefaultParameters returns a copy of snapshot with the built-in
// defaults filled into absent structure, neckline and sleeve sections.
func ApplyDefaultParameters(snapshot *domain.SessionSnapshot) *domain.SessionSnapshot {
	return DefaultPolicy().ApplyDefaults(snapshot)
}

// ApplyDefaults fills the sections that Evaluate excuses through default
// substitution, so the calculation engine never receives them empty. A
// section with any field set is left untouched. The input is not modified.
func (p Policy) ApplyDefaults(snapshot *domain.SessionSnapshot) *domain.SessionSnapshot {
	out := snapshot.Clone()
	if out == nil || !p.defaults(out.GarmentType) {
		return out
	}
	if out.GarmentStructure == nil || *out.GarmentStructure == (domain.GarmentStructureSection{}) {
		v := p.Structure
		out.GarmentStructure = &v
	}
	if out.Neckline == nil || *out.Neckline == (domain.NecklineSection{}) {
		v := p.Neckline
		out.Neckline = &v
	}
	if out.Sleeves == nil || *out.Sleeves == (domain.SleevesSection{}) {
		v := p.Sleeves
		out.Sleeves = &v
	}
	return out
}
