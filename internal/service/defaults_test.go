package service_test

import (
	"reflect"
	"testing"

	"github.com/msomdec/knit-designer/internal/domain"
	"github.com/msomdec/knit-designer/internal/service"
)

func TestApplyDefaultParameters_FillsAbsentSections(t *testing.T) {
	in := &domain.SessionSnapshot{GarmentType: domain.GarmentSweater}

	out := service.ApplyDefaultParameters(in)

	if out.GarmentStructure == nil || out.GarmentStructure.ConstructionMethod != service.DefaultConstructionMethod {
		t.Fatalf("expected default structure, got %+v", out.GarmentStructure)
	}
	if out.Neckline == nil || out.Neckline.Style != service.DefaultNecklineStyle || out.Neckline.DepthCm != service.DefaultNecklineDepthCm {
		t.Fatalf("expected default neckline, got %+v", out.Neckline)
	}
	if out.Sleeves == nil || out.Sleeves.CuffStyle != service.DefaultCuffStyle || out.Sleeves.Length != service.DefaultSleeveLength {
		t.Fatalf("expected default sleeves, got %+v", out.Sleeves)
	}
	if in.Neckline != nil || in.Sleeves != nil || in.GarmentStructure != nil {
		t.Fatalf("expected input unchanged, got %+v", in)
	}
}

func TestApplyDefaultParameters_EmptySectionCountsAsAbsent(t *testing.T) {
	in := &domain.SessionSnapshot{GarmentType: domain.GarmentCardigan, Neckline: &domain.NecklineSection{}}

	out := service.ApplyDefaultParameters(in)
	if out.Neckline.Style != service.DefaultNecklineStyle {
		t.Fatalf("expected default neckline style, got %q", out.Neckline.Style)
	}
}

func TestApplyDefaultParameters_KeepsPartialSections(t *testing.T) {
	in := &domain.SessionSnapshot{
		GarmentType: domain.GarmentSweater,
		Neckline:    &domain.NecklineSection{Style: "v-neck"},
		Sleeves:     &domain.SleevesSection{Length: "three-quarter"},
	}

	out := service.ApplyDefaultParameters(in)

	if !reflect.DeepEqual(out.Neckline, in.Neckline) {
		t.Fatalf("expected neckline untouched, got %+v", out.Neckline)
	}
	if !reflect.DeepEqual(out.Sleeves, in.Sleeves) {
		t.Fatalf("expected sleeves untouched, got %+v", out.Sleeves)
	}
	if out.Neckline == in.Neckline {
		t.Fatal("expected output to hold its own copy of the neckline")
	}
}

func TestApplyDefaultParameters_Idempotent(t *testing.T) {
	once := service.ApplyDefaultParameters(&domain.SessionSnapshot{GarmentType: domain.GarmentSweater})
	twice := service.ApplyDefaultParameters(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected idempotent result, got %+v then %+v", once, twice)
	}
}

func TestApplyDefaultParameters_AccessoriesUntouched(t *testing.T) {
	for _, g := range []domain.GarmentType{domain.GarmentScarf, domain.GarmentBeanie, domain.GarmentCowl, domain.GarmentVest} {
		t.Run(string(g), func(t *testing.T) {
			in := &domain.SessionSnapshot{GarmentType: g}
			out := service.ApplyDefaultParameters(in)
			if !reflect.DeepEqual(in, out) {
				t.Fatalf("expected no defaults for %s, got %+v", g, out)
			}
		})
	}
}

func TestApplyDefaultParameters_ReadinessAgrees(t *testing.T) {
	// Every section readiness excuses through defaults is filled in.
	in := &domain.SessionSnapshot{GarmentType: domain.GarmentSweater}
	steps := []domain.SectionKey{domain.SectionGarmentStructure, domain.SectionNeckline, domain.SectionSleeves}

	before, err := service.EvaluateSectionReadiness(in, steps)
	if err != nil {
		t.Fatalf("EvaluateSectionReadiness: %v", err)
	}
	after, err := service.EvaluateSectionReadiness(service.ApplyDefaultParameters(in), steps)
	if err != nil {
		t.Fatalf("EvaluateSectionReadiness: %v", err)
	}
	if before.CompletionPercentage != 100 || after.CompletionPercentage != 100 {
		t.Fatalf("expected 100%% before and after, got %d and %d", before.CompletionPercentage, after.CompletionPercentage)
	}
}
