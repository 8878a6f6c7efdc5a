package insight

import "testing"

func TestBuildSummary(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		avgMood        float64
		fitnessCorr    float64
		medicationCorr float64
		predicted      float64
		noData         bool
		expected       string
	}{
		{
			name:     "no data at all",
			noData:   true,
			expected: "Add more data to get personalized insights.",
		},
		{
			name:     "neutral week",
			avgMood:  0.1,
			expected: "Your mood has been neutral this week.",
		},
		{
			name:     "positive week",
			avgMood:  0.5,
			expected: "Your mood has been positive this week. Keep it up!",
		},
		{
			name:     "low week",
			avgMood:  -0.5,
			expected: "Your mood has been lower this week. Consider reaching out for support.",
		},
		{
			name:        "fitness link reported as percentage",
			avgMood:     0.1,
			fitnessCorr: 0.42,
			expected:    "Exercise correlates with 42% mood improvement. Your mood has been neutral this week.",
		},
		{
			name:           "medication link reported as percentage",
			avgMood:        0.1,
			medicationCorr: 0.67,
			expected:       "Medication adherence shows 67% positive mood link. Your mood has been neutral this week.",
		},
		{
			name:        "correlation at threshold is not reported",
			avgMood:     0.1,
			fitnessCorr: 0.1,
			expected:    "Your mood has been neutral this week.",
		},
		{
			name:      "improvement clause when forecast beats average",
			avgMood:   0.1,
			predicted: 0.2,
			expected:  "Your mood has been neutral this week. Trend suggests improvement tomorrow.",
		},
		{
			name:           "all clauses in fixed order",
			avgMood:        0.5,
			fitnessCorr:    0.3,
			medicationCorr: 0.2,
			predicted:      0.6,
			expected: "Exercise correlates with 30% mood improvement. " +
				"Medication adherence shows 20% positive mood link. " +
				"Your mood has been positive this week. Keep it up! " +
				"Trend suggests improvement tomorrow.",
		},
		{
			name:     "mood exactly at threshold stays neutral",
			avgMood:  0.2,
			expected: "Your mood has been neutral this week.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := buildSummary(tc.avgMood, tc.fitnessCorr, tc.medicationCorr, tc.predicted, tc.noData)

			if got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}
