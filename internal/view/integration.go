package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/msomdec/knit-designer/internal/domain"
)

// IntegrationOptionsID is the element the options fragment replaces.
const IntegrationOptionsID = "integration-options"

// IntegrationOptions renders the fitter result. A does-not-fit result shows
// its notice instead of an option list; an invalid request shows errMsg.
func IntegrationOptions(analysis *domain.IntegrationAnalysis, errMsg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="%s">`, IntegrationOptionsID); err != nil {
			return err
		}
		switch {
		case errMsg != "":
			if _, err := fmt.Fprintf(w, `<p class="error">%s</p>`, templ.EscapeString(errMsg)); err != nil {
				return err
			}
		case analysis.Fit == domain.FitDoesNotFit:
			if _, err := fmt.Fprintf(w, `<p class="notice notice-does-not-fit">%s</p>`, templ.EscapeString(analysis.Notice)); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w,
				`<p class="fit-summary" data-fit="%s">%d full repeats use %d stitches; %d left over.</p><ul class="options">`,
				analysis.Fit, analysis.FullRepeats, analysis.StitchesUsedByRepeats, analysis.RemainingStitches); err != nil {
				return err
			}
			for _, o := range analysis.Options {
				if _, err := fmt.Fprintf(w, `<li data-option="%s">%s</li>`,
					templ.EscapeString(string(o.Kind)), templ.EscapeString(o.Description)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</ul>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
