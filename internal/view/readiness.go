// Package view holds the HTML fragments patched into the workspace page
// over datastar server-sent events.
package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/msomdec/knit-designer/internal/domain"
)

// ReadinessPanelID is the element the readiness panel replaces.
const ReadinessPanelID = "readiness-panel"

var sectionLabels = map[domain.SectionKey]string{
	domain.SectionGarmentType:         "Garment type",
	domain.SectionGauge:               "Gauge",
	domain.SectionMeasurements:        "Measurements",
	domain.SectionEase:                "Ease",
	domain.SectionYarn:                "Yarn",
	domain.SectionStitchPattern:       "Stitch pattern",
	domain.SectionGarmentStructure:    "Garment structure",
	domain.SectionNeckline:            "Neckline",
	domain.SectionSleeves:             "Sleeves",
	domain.SectionAccessoryDefinition: "Accessory details",
	domain.SectionSummary:             "Summary",
}

// SectionLabel returns the display name for a section key.
func SectionLabel(k domain.SectionKey) string {
	if l, ok := sectionLabels[k]; ok {
		return l
	}
	return string(k)
}

// ReadinessPanel renders the step checklist and completion bar.
func ReadinessPanel(summary *domain.CompletionSummary, steps []domain.SectionKey) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		state := "incomplete"
		if summary.ReadyForCalculation {
			state = "ready"
		}
		if _, err := fmt.Fprintf(w, `<section id="%s" class="readiness readiness-%s">`, ReadinessPanelID, state); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<progress max="100" value="%d">%d%%</progress><p class="readiness-percent">%d%% complete</p><ol class="steps">`,
			summary.CompletionPercentage, summary.CompletionPercentage, summary.CompletionPercentage); err != nil {
			return err
		}
		for _, k := range steps {
			class := "step"
			if summary.Completed(k) {
				class = "step step-done"
			}
			if _, err := fmt.Fprintf(w, `<li class="%s" data-step="%s">%s</li>`,
				class, templ.EscapeString(string(k)), templ.EscapeString(SectionLabel(k))); err != nil {
				return err
			}
		}
		msg := "Fill in more sections before calculating."
		if summary.ReadyForCalculation {
			msg = "Ready for calculation."
		}
		_, err := fmt.Fprintf(w, `</ol><p class="readiness-status">%s</p></section>`, msg)
		return err
	})
}
