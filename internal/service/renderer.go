package service

import (
	"fmt"
	"strings"

	"github.com/msomdec/knit-designer/internal/domain"
)

// RenderOptionText renders an integration option as a set-up row in
// standard knitting shorthand, e.g.
// "k4, *Seed Stitch (8 sts)* 12 times, k3 (103 sts)". Edge and panel
// stitches are worked in stockinette. An empty patternName renders as
// "repeat".
func RenderOptionText(option domain.IntegrationOption, patternName string, repeatWidth int) string {
	if option.TotalStitches == 0 {
		return ""
	}
	if patternName == "" {
		patternName = "repeat"
	}

	left := option.EdgeStitchesEachSide
	right := option.EdgeStitchesEachSide
	if option.ExtraEdgeSide == "left" {
		left += option.ExtraEdgeStitches
	} else {
		right += option.ExtraEdgeStitches
	}

	var parts []string
	if left > 0 {
		parts = append(parts, fmt.Sprintf("k%d", left))
	}
	if option.PanelStitches > 0 {
		before := option.Repeats / 2
		after := option.Repeats - before
		parts = appendRepeats(parts, patternName, repeatWidth, before)
		parts = append(parts, fmt.Sprintf("k%d", option.PanelStitches))
		parts = appendRepeats(parts, patternName, repeatWidth, after)
	} else {
		parts = appendRepeats(parts, patternName, repeatWidth, option.Repeats)
	}
	if right > 0 {
		parts = append(parts, fmt.Sprintf("k%d", right))
	}

	return fmt.Sprintf("%s (%d sts)", strings.Join(parts, ", "), option.TotalStitches)
}

func appendRepeats(parts []string, name string, width, n int) []string {
	switch {
	case n == 0:
		return parts
	case n == 1:
		return append(parts, fmt.Sprintf("%s (%d sts)", name, width))
	}
	return append(parts, fmt.Sprintf("*%s (%d sts)* %d times", name, width, n))
}

// RenderSummaryText renders a completion summary as a checklist, one step
// per line, followed by the percentage and readiness.
func RenderSummaryText(summary *domain.CompletionSummary, steps []domain.SectionKey) string {
	if summary == nil {
		return ""
	}
	var sb strings.Builder
	for _, k := range steps {
		mark := " "
		if summary.Completed(k) {
			mark = "x"
		}
		fmt.Fprintf(&sb, "[%s] %s\n", mark, k)
	}
	fmt.Fprintf(&sb, "%d%% complete", summary.CompletionPercentage)
	if summary.ReadyForCalculation {
		sb.WriteString(", ready for calculation")
	}
	return sb.String()
}
