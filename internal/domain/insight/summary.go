package insight

import (
	"fmt"
	"math"
	"strings"
)

// Summary thresholds. A correlation must clear correlationThreshold to be
// reported; average mood outside ±moodThreshold picks the positive or
// low-mood message, anything between is neutral.
const (
	correlationThreshold = 0.1
	moodThreshold        = 0.2
)

const noDataSummary = "Add more data to get personalized insights."

// buildSummary assembles the natural-language summary from fixed clauses
// in a fixed order. Exactly one mood-bucket clause always fires, so the
// summary is never empty; when every aggregate was computed from zero
// records the generic prompt replaces it entirely.
func buildSummary(avgMood, fitnessCorr, medicationCorr, predicted float64, noData bool) string {
	if noData {
		return noDataSummary
	}

	var parts []string

	if fitnessCorr > correlationThreshold {
		parts = append(parts, fmt.Sprintf("Exercise correlates with %d%% mood improvement.", percent(fitnessCorr)))
	}
	if medicationCorr > correlationThreshold {
		parts = append(parts, fmt.Sprintf("Medication adherence shows %d%% positive mood link.", percent(medicationCorr)))
	}

	switch {
	case avgMood > moodThreshold:
		parts = append(parts, "Your mood has been positive this week. Keep it up!")
	case avgMood < -moodThreshold:
		parts = append(parts, "Your mood has been lower this week. Consider reaching out for support.")
	default:
		parts = append(parts, "Your mood has been neutral this week.")
	}

	if predicted > avgMood {
		parts = append(parts, "Trend suggests improvement tomorrow.")
	}

	return strings.Join(parts, " ")
}

func percent(v float64) int {
	return int(math.Round(v * 100))
}
