package insight

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/manodhithyaa-cs/mindful-companion/internal/domain"
)

// A fixed evaluation instant in a non-UTC zone so local-day bucketing is
// actually exercised: Sunday 2024-03-10 12:00 in UTC-5.
var (
	testZone = time.FixedZone("UTC-5", -5*3600)
	testNow  = time.Date(2024, 3, 10, 12, 0, 0, 0, testZone)
)

func entryAt(score float64, at time.Time) *domain.JournalEntry {
	return &domain.JournalEntry{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		Content:        "entry",
		SentimentScore: score,
		EmotionLabel:   "Neutral",
		CreatedAt:      at,
	}
}

// entryDaysAgo places an entry at noon local time n days before testNow.
func entryDaysAgo(score float64, n int) *domain.JournalEntry {
	return entryAt(score, testNow.AddDate(0, 0, -n))
}

func fitnessOn(day string, minutes int) *domain.FitnessLog {
	return &domain.FitnessLog{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		LogDate:          day,
		MinutesExercised: minutes,
		Intensity:        domain.IntensityMedium,
	}
}

func medLogOn(medID uuid.UUID, day string) *domain.MedicationLog {
	return &domain.MedicationLog{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		MedicationID: medID,
		TakenDate:    day,
		Taken:        true,
	}
}

func dayKey(daysAgo int) string {
	return testNow.AddDate(0, 0, -daysAgo).Format(domain.DayFormat)
}

func TestComputeEmptyInputs(t *testing.T) {
	t.Parallel()

	got := Compute(nil, nil, nil, nil, testNow)

	if got.AvgMood != 0 {
		t.Errorf("Expected avg mood 0, got %v", got.AvgMood)
	}
	if got.FitnessCorrelation != 0 || got.MedicationCorrelation != 0 {
		t.Errorf("Expected zero correlations, got %v and %v",
			got.FitnessCorrelation, got.MedicationCorrelation)
	}
	if got.PredictedNextMood != 0 {
		t.Errorf("Expected forecast 0, got %v", got.PredictedNextMood)
	}
	if len(got.MoodTrend) != 7 {
		t.Fatalf("Expected 7 trend points, got %d", len(got.MoodTrend))
	}
	for i, p := range got.MoodTrend {
		if p.Score != 0 {
			t.Errorf("Expected trend point %d to be 0, got %v", i, p.Score)
		}
	}
	if got.Summary != noDataSummary {
		t.Errorf("Expected no-data summary, got %q", got.Summary)
	}
}

func TestComputeAverageMoodAndTrend(t *testing.T) {
	t.Parallel()

	journals := []*domain.JournalEntry{
		entryDaysAgo(0.5, 3),
		entryDaysAgo(0.5, 2),
		entryDaysAgo(-0.5, 1),
	}

	got := Compute(journals, nil, nil, nil, testNow)

	// Mean of the three entries, not of all 7 days.
	if got.AvgMood != 0.17 {
		t.Errorf("Expected avg mood 0.17, got %v", got.AvgMood)
	}

	if len(got.MoodTrend) != 7 {
		t.Fatalf("Expected 7 trend points, got %d", len(got.MoodTrend))
	}

	// Oldest first: indices 3..5 hold the entries, everything else is 0.
	expected := []float64{0, 0, 0, 0.5, 0.5, -0.5, 0}
	for i, want := range expected {
		if got.MoodTrend[i].Score != want {
			t.Errorf("Trend point %d: expected %v, got %v", i, want, got.MoodTrend[i].Score)
		}
	}
}

func TestComputeTrendLabels(t *testing.T) {
	t.Parallel()

	got := Compute(nil, nil, nil, nil, testNow)

	// testNow is a Sunday, so the series runs Mon..Sun.
	expected := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, want := range expected {
		if got.MoodTrend[i].Day != want {
			t.Errorf("Trend label %d: expected %q, got %q", i, want, got.MoodTrend[i].Day)
		}
	}
}

func TestComputeTrendAveragesMultipleEntriesPerDay(t *testing.T) {
	t.Parallel()

	journals := []*domain.JournalEntry{
		entryAt(0.8, testNow.Add(-2*time.Hour)),
		entryAt(0.4, testNow.Add(-3*time.Hour)),
	}

	got := Compute(journals, nil, nil, nil, testNow)

	today := got.MoodTrend[6]
	if today.Score != 0.6 {
		t.Errorf("Expected today's trend score 0.6, got %v", today.Score)
	}
}

func TestComputeWindowExcludesOldEntries(t *testing.T) {
	t.Parallel()

	journals := []*domain.JournalEntry{
		entryDaysAgo(1.0, 8),                        // before the window
		entryAt(1.0, testNow.AddDate(0, 0, -7)),     // exactly at the boundary, excluded
		entryAt(-0.4, testNow.Add(-1*time.Hour)),    // today
		entryAt(-0.4, testNow.AddDate(0, 0, -8620)), // ancient
	}

	got := Compute(journals, nil, nil, nil, testNow)

	if got.AvgMood != -0.4 {
		t.Errorf("Expected avg mood -0.4 from the single in-window entry, got %v", got.AvgMood)
	}
}

func TestComputeBucketsByLocalDay(t *testing.T) {
	t.Parallel()

	// 03:00 UTC on March 10 is 22:00 on March 9 in UTC-5. The entry must
	// land in yesterday's bucket, not today's.
	utcEntry := entryAt(0.9, time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC))

	got := Compute([]*domain.JournalEntry{utcEntry}, nil, nil, nil, testNow)

	if got.MoodTrend[5].Score != 0.9 {
		t.Errorf("Expected yesterday's trend score 0.9, got %v", got.MoodTrend[5].Score)
	}
	if got.MoodTrend[6].Score != 0 {
		t.Errorf("Expected today's trend score 0, got %v", got.MoodTrend[6].Score)
	}
}

func TestComputeFitnessCorrelation(t *testing.T) {
	t.Parallel()

	journals := []*domain.JournalEntry{
		entryDaysAgo(0.1, 3),
		entryDaysAgo(0.2, 2),
		entryDaysAgo(0.3, 1),
	}
	fitness := []*domain.FitnessLog{
		fitnessOn(dayKey(3), 10),
		fitnessOn(dayKey(2), 20),
		fitnessOn(dayKey(1), 30),
	}

	got := Compute(journals, fitness, nil, nil, testNow)

	if got.FitnessCorrelation != 1.0 {
		t.Errorf("Expected perfect fitness correlation, got %v", got.FitnessCorrelation)
	}
}

func TestComputeFitnessCorrelationDegenerateCases(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		journals []*domain.JournalEntry
		fitness  []*domain.FitnessLog
	}{
		{
			name: "fewer than three paired days",
			journals: []*domain.JournalEntry{
				entryDaysAgo(0.1, 2),
				entryDaysAgo(0.9, 1),
			},
			fitness: []*domain.FitnessLog{
				fitnessOn(dayKey(2), 10),
				fitnessOn(dayKey(1), 50),
			},
		},
		{
			name: "zero variance in exercise minutes",
			journals: []*domain.JournalEntry{
				entryDaysAgo(0.1, 3),
				entryDaysAgo(0.5, 2),
				entryDaysAgo(0.9, 1),
			},
			fitness: []*domain.FitnessLog{
				fitnessOn(dayKey(3), 30),
				fitnessOn(dayKey(2), 30),
				fitnessOn(dayKey(1), 30),
			},
		},
		{
			name: "journal days without fitness logs pair with zero minutes",
			journals: []*domain.JournalEntry{
				entryDaysAgo(0.1, 3),
				entryDaysAgo(0.5, 2),
				entryDaysAgo(0.9, 1),
			},
			fitness: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Compute(tc.journals, tc.fitness, nil, nil, testNow)
			if got.FitnessCorrelation != 0 {
				t.Errorf("Expected correlation 0, got %v", got.FitnessCorrelation)
			}
		})
	}
}

func TestComputeSkipsDaysWithoutJournals(t *testing.T) {
	t.Parallel()

	// Fitness data exists on day 4, but no journal entry that day, so the
	// day must be skipped from both series rather than paired with a
	// zero mood.
	journals := []*domain.JournalEntry{
		entryDaysAgo(0.1, 3),
		entryDaysAgo(0.2, 2),
		entryDaysAgo(0.3, 1),
	}
	fitness := []*domain.FitnessLog{
		fitnessOn(dayKey(4), 500),
		fitnessOn(dayKey(3), 10),
		fitnessOn(dayKey(2), 20),
		fitnessOn(dayKey(1), 30),
	}

	got := Compute(journals, fitness, nil, nil, testNow)

	if got.FitnessCorrelation != 1.0 {
		t.Errorf("Expected correlation 1.0 over the three journaled days, got %v",
			got.FitnessCorrelation)
	}
}

func TestComputeMedicationCorrelation(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	medA := &domain.Medication{
		ID: uuid.New(), UserID: userID, Name: "A",
		FrequencyPerDay: 1, ReminderTime: "08:00",
	}
	medB := &domain.Medication{
		ID: uuid.New(), UserID: userID, Name: "B",
		FrequencyPerDay: 1, ReminderTime: "20:00",
	}
	meds := []*domain.Medication{medA, medB}

	journals := []*domain.JournalEntry{
		entryDaysAgo(-0.5, 3),
		entryDaysAgo(0, 2),
		entryDaysAgo(0.5, 1),
	}

	// Adherence 0, 0.5, 1.0 tracks mood exactly.
	medLogs := []*domain.MedicationLog{
		medLogOn(medA.ID, dayKey(2)),
		medLogOn(medA.ID, dayKey(1)),
		medLogOn(medB.ID, dayKey(1)),
	}

	got := Compute(journals, nil, medLogs, meds, testNow)

	if got.MedicationCorrelation != 1.0 {
		t.Errorf("Expected perfect medication correlation, got %v", got.MedicationCorrelation)
	}
}

func TestComputeMedicationCorrelationWithoutMedications(t *testing.T) {
	t.Parallel()

	journals := []*domain.JournalEntry{
		entryDaysAgo(0.1, 3),
		entryDaysAgo(0.5, 2),
		entryDaysAgo(0.9, 1),
	}

	got := Compute(journals, nil, nil, nil, testNow)

	if got.MedicationCorrelation != 0 {
		t.Errorf("Expected correlation 0 with no medications, got %v", got.MedicationCorrelation)
	}
}

func TestComputeForecast(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		journals []*domain.JournalEntry
		expected float64
	}{
		{
			name: "rising trend lifts forecast above average",
			journals: []*domain.JournalEntry{
				entryDaysAgo(0.2, 2),
				entryDaysAgo(0.8, 1),
			},
			// avg = 0.5, delta = 0.6, forecast = 0.5 + 0.18 = 0.68
			expected: 0.68,
		},
		{
			name: "falling trend drags forecast below average",
			journals: []*domain.JournalEntry{
				entryDaysAgo(0.5, 3),
				entryDaysAgo(0.5, 2),
				entryDaysAgo(-0.5, 1),
			},
			// avg = 0.17, delta = -1.0, forecast = 0.17 - 0.3 = -0.13
			expected: -0.13,
		},
		{
			name: "single non-zero trend point keeps forecast at average",
			journals: []*domain.JournalEntry{
				entryDaysAgo(0.4, 1),
			},
			expected: 0.4,
		},
		{
			name: "forecast clamped to 1",
			journals: []*domain.JournalEntry{
				entryDaysAgo(0.4, 1),
				entryAt(1.0, testNow.Add(-time.Hour)),
				entryAt(1.0, testNow.Add(-2*time.Hour)),
				entryAt(1.0, testNow.Add(-3*time.Hour)),
			},
			// avg = 0.85, delta = 0.6, raw forecast 1.03 clamps to 1
			expected: 1.0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Compute(tc.journals, nil, nil, nil, testNow)
			if got.PredictedNextMood != tc.expected {
				t.Errorf("Expected forecast %v, got %v", tc.expected, got.PredictedNextMood)
			}
		})
	}
}

func TestComputeSkipsMalformedDayFields(t *testing.T) {
	t.Parallel()

	journals := []*domain.JournalEntry{
		entryDaysAgo(0.1, 3),
		entryDaysAgo(0.2, 2),
		entryDaysAgo(0.3, 1),
	}
	fitness := []*domain.FitnessLog{
		fitnessOn("not-a-date", 999),
		fitnessOn(dayKey(3), 10),
		fitnessOn(dayKey(2), 20),
		fitnessOn(dayKey(1), 30),
	}

	// Malformed records are treated as absent, never an error.
	got := Compute(journals, fitness, nil, nil, testNow)

	if got.FitnessCorrelation != 1.0 {
		t.Errorf("Expected malformed log to be ignored, correlation %v", got.FitnessCorrelation)
	}
}

func TestComputeIdempotent(t *testing.T) {
	t.Parallel()

	journals := []*domain.JournalEntry{
		entryDaysAgo(0.7, 4),
		entryDaysAgo(-0.2, 2),
		entryDaysAgo(0.3, 1),
	}
	fitness := []*domain.FitnessLog{fitnessOn(dayKey(2), 45)}

	first := Compute(journals, fitness, nil, nil, testNow)
	second := Compute(journals, fitness, nil, nil, testNow)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical output for identical inputs:\n%+v\n%+v", first, second)
	}
}
