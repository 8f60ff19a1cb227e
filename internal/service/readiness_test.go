package service_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/msomdec/knit-designer/internal/domain"
	"github.com/msomdec/knit-designer/internal/service"
)

func fullSweater() *domain.SessionSnapshot {
	return &domain.SessionSnapshot{
		GarmentType:      domain.GarmentSweater,
		Gauge:            &domain.GaugeSection{Stitches: 22, Rows: 30, Unit: "cm"},
		Measurements:     &domain.MeasurementsSection{MeasurementSetID: "m-1"},
		Ease:             &domain.EaseSection{EaseType: "classic"},
		Yarn:             &domain.YarnSection{YarnProfileID: "y-1"},
		StitchPattern:    &domain.StitchPatternSection{StitchPatternID: 4},
		GarmentStructure: &domain.GarmentStructureSection{ConstructionMethod: "raglan"},
		Neckline:         &domain.NecklineSection{Style: "v-neck"},
		Sleeves:          &domain.SleevesSection{Style: "bishop"},
	}
}

func TestEvaluateSectionReadiness_SweaterDefaultsCount(t *testing.T) {
	snapshot := &domain.SessionSnapshot{GarmentType: domain.GarmentSweater}
	steps := service.StepsFor(domain.GarmentSweater)

	summary, err := service.EvaluateSectionReadiness(snapshot, steps)
	if err != nil {
		t.Fatalf("EvaluateSectionReadiness: %v", err)
	}

	want := []domain.SectionKey{
		domain.SectionGarmentType,
		domain.SectionGarmentStructure,
		domain.SectionNeckline,
		domain.SectionSleeves,
	}
	if !reflect.DeepEqual(summary.CompletedSteps, want) {
		t.Fatalf("expected %v, got %v", want, summary.CompletedSteps)
	}
	if summary.CompletionPercentage != 40 {
		t.Fatalf("expected 40%%, got %d", summary.CompletionPercentage)
	}
	if summary.ReadyForCalculation {
		t.Fatal("did not expect ready at 40%")
	}
}

func TestEvaluateSectionReadiness_ScarfHasNoDefaults(t *testing.T) {
	snapshot := &domain.SessionSnapshot{GarmentType: domain.GarmentScarf}
	steps := []domain.SectionKey{
		domain.SectionGarmentType,
		domain.SectionGarmentStructure,
		domain.SectionNeckline,
		domain.SectionSleeves,
	}

	summary, err := service.EvaluateSectionReadiness(snapshot, steps)
	if err != nil {
		t.Fatalf("EvaluateSectionReadiness: %v", err)
	}
	if len(summary.CompletedSteps) != 1 || summary.CompletedSteps[0] != domain.SectionGarmentType {
		t.Fatalf("expected only garment-type complete, got %v", summary.CompletedSteps)
	}
	if summary.CompletionPercentage != 25 {
		t.Fatalf("expected 25%%, got %d", summary.CompletionPercentage)
	}
}

func TestEvaluateSectionReadiness_AccessoryNeedsAValue(t *testing.T) {
	steps := []domain.SectionKey{domain.SectionGarmentType, domain.SectionAccessoryDefinition}

	for _, tt := range []struct {
		name      string
		accessory *domain.AccessorySection
		want      int
	}{
		{"absent", nil, 50},
		{"empty", &domain.AccessorySection{}, 50},
		{"circumference", &domain.AccessorySection{CircumferenceCm: 54}, 100},
		{"crown only", &domain.AccessorySection{CrownStyle: "decrease"}, 100},
	} {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := &domain.SessionSnapshot{GarmentType: domain.GarmentBeanie, Accessory: tt.accessory}
			summary, err := service.EvaluateSectionReadiness(snapshot, steps)
			if err != nil {
				t.Fatalf("EvaluateSectionReadiness: %v", err)
			}
			if summary.CompletionPercentage != tt.want {
				t.Fatalf("expected %d%%, got %d%% (%v)", tt.want, summary.CompletionPercentage, summary.CompletedSteps)
			}
		})
	}
}

func TestEvaluateSectionReadiness_RoundsHalfUp(t *testing.T) {
	snapshot := &domain.SessionSnapshot{GarmentType: domain.GarmentScarf}

	summary, err := service.EvaluateSectionReadiness(snapshot, service.StepsFor(domain.GarmentScarf))
	if err != nil {
		t.Fatalf("EvaluateSectionReadiness: %v", err)
	}
	// 1 of 8 steps is 12.5%.
	if summary.CompletionPercentage != 13 {
		t.Fatalf("expected 13%%, got %d", summary.CompletionPercentage)
	}
}

func TestEvaluateSectionReadiness_SummaryCompletesLast(t *testing.T) {
	steps := service.StepsFor(domain.GarmentSweater)

	snapshot := fullSweater()
	snapshot.Yarn = nil
	summary, err := service.EvaluateSectionReadiness(snapshot, steps)
	if err != nil {
		t.Fatalf("EvaluateSectionReadiness: %v", err)
	}
	if summary.Completed(domain.SectionSummary) {
		t.Fatal("summary should not be complete while yarn is missing")
	}
	if summary.CompletionPercentage != 80 || !summary.ReadyForCalculation {
		t.Fatalf("expected 80%% and ready, got %d%% ready=%v", summary.CompletionPercentage, summary.ReadyForCalculation)
	}

	summary, err = service.EvaluateSectionReadiness(fullSweater(), steps)
	if err != nil {
		t.Fatalf("EvaluateSectionReadiness: %v", err)
	}
	if !summary.Completed(domain.SectionSummary) || summary.CompletionPercentage != 100 {
		t.Fatalf("expected everything complete, got %+v", summary)
	}
	if !reflect.DeepEqual(summary.CompletedSteps, steps) {
		t.Fatalf("expected completed steps in step order, got %v", summary.CompletedSteps)
	}
}

func TestEvaluateSectionReadiness_GaugeProfileOrValues(t *testing.T) {
	steps := []domain.SectionKey{domain.SectionGauge}
	tests := []struct {
		name  string
		gauge *domain.GaugeSection
		want  bool
	}{
		{"missing", nil, false},
		{"empty", &domain.GaugeSection{}, false},
		{"profile", &domain.GaugeSection{ProfileID: "g-1"}, true},
		{"values", &domain.GaugeSection{Stitches: 20, Rows: 28, Unit: "in"}, true},
		{"no unit", &domain.GaugeSection{Stitches: 20, Rows: 28}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := &domain.SessionSnapshot{GarmentType: domain.GarmentVest, Gauge: tt.gauge}
			summary, err := service.EvaluateSectionReadiness(snapshot, steps)
			if err != nil {
				t.Fatalf("EvaluateSectionReadiness: %v", err)
			}
			if got := summary.Completed(domain.SectionGauge); got != tt.want {
				t.Fatalf("expected complete=%v, got %v", tt.want, got)
			}
		})
	}
}

func TestEvaluateSectionReadiness_Monotonic(t *testing.T) {
	steps := service.StepsFor(domain.GarmentCardigan)
	snapshot := &domain.SessionSnapshot{GarmentType: domain.GarmentCardigan}
	full := fullSweater()

	fill := []func(){
		func() { snapshot.Gauge = full.Gauge },
		func() { snapshot.Measurements = full.Measurements },
		func() { snapshot.Ease = full.Ease },
		func() { snapshot.Yarn = full.Yarn },
		func() { snapshot.StitchPattern = full.StitchPattern },
	}

	last := -1
	for i, f := range append([]func(){func() {}}, fill...) {
		f()
		summary, err := service.EvaluateSectionReadiness(snapshot, steps)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if summary.CompletionPercentage < last {
			t.Fatalf("step %d: percentage dropped from %d to %d", i, last, summary.CompletionPercentage)
		}
		last = summary.CompletionPercentage
	}
	if last != 100 {
		t.Fatalf("expected 100%% once all sections are filled, got %d", last)
	}
}

func TestEvaluateSectionReadiness_DoesNotModifySnapshot(t *testing.T) {
	snapshot := &domain.SessionSnapshot{GarmentType: domain.GarmentSweater}
	if _, err := service.EvaluateSectionReadiness(snapshot, service.StepsFor(domain.GarmentSweater)); err != nil {
		t.Fatalf("EvaluateSectionReadiness: %v", err)
	}
	if snapshot.Neckline != nil || snapshot.Sleeves != nil || snapshot.GarmentStructure != nil {
		t.Fatalf("expected snapshot unchanged, got %+v", snapshot)
	}
}

func TestEvaluateSectionReadiness_Errors(t *testing.T) {
	snapshot := &domain.SessionSnapshot{GarmentType: domain.GarmentSweater}
	tests := []struct {
		name     string
		snapshot *domain.SessionSnapshot
		steps    []domain.SectionKey
	}{
		{"nil snapshot", nil, []domain.SectionKey{domain.SectionGauge}},
		{"no steps", snapshot, nil},
		{"unknown step", snapshot, []domain.SectionKey{"pockets"}},
		{"duplicate step", snapshot, []domain.SectionKey{domain.SectionGauge, domain.SectionGauge}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.EvaluateSectionReadiness(tt.snapshot, tt.steps)
			if !errors.Is(err, domain.ErrIncompleteSnapshot) {
				t.Fatalf("expected ErrIncompleteSnapshot, got %v", err)
			}
		})
	}
}

func TestStepsFor(t *testing.T) {
	tests := []struct {
		garment domain.GarmentType
		count   int
		has     domain.SectionKey
		lacks   domain.SectionKey
	}{
		{domain.GarmentSweater, 10, domain.SectionSleeves, domain.SectionAccessoryDefinition},
		{domain.GarmentVest, 9, domain.SectionNeckline, domain.SectionSleeves},
		{domain.GarmentBeanie, 8, domain.SectionAccessoryDefinition, domain.SectionNeckline},
	}
	for _, tt := range tests {
		t.Run(string(tt.garment), func(t *testing.T) {
			steps := service.StepsFor(tt.garment)
			if len(steps) != tt.count {
				t.Fatalf("expected %d steps, got %d", tt.count, len(steps))
			}
			if steps[len(steps)-1] != domain.SectionSummary {
				t.Fatalf("expected summary last, got %s", steps[len(steps)-1])
			}
			var has, lacks bool
			for _, k := range steps {
				has = has || k == tt.has
				lacks = lacks || k == tt.lacks
			}
			if !has || lacks {
				t.Fatalf("expected %s present and %s absent in %v", tt.has, tt.lacks, steps)
			}
		})
	}
}
