package insight

import (
	"math"
	"time"

	"github.com/manodhithyaa-cs/mindful-companion/internal/domain"
)

// forecastTrendWeight dampens the last observed day-to-day mood delta
// before it is added to the weekly average.
const forecastTrendWeight = 0.3

// TrendPoint is one (day, mood-score) pair in the 7-day mood series.
type TrendPoint struct {
	// Day is the short weekday name of the bucket ("Mon", "Tue", ...).
	Day string `json:"day"`

	// Score is the mean sentiment of the day's journal entries, rounded
	// to 2 decimal places, or 0 when the day has no entries.
	Score float64 `json:"score"`
}

// WeeklyInsight is the derived weekly report. It is computed fresh on
// every request and never persisted or cached.
type WeeklyInsight struct {
	AvgMood               float64      `json:"avg_mood"`
	FitnessCorrelation    float64      `json:"fitness_correlation"`
	MedicationCorrelation float64      `json:"medication_correlation"`
	PredictedNextMood     float64      `json:"predicted_next_mood"`
	Summary               string       `json:"summary"`
	MoodTrend             []TrendPoint `json:"mood_trend"`
}

// Compute aggregates the trailing 7 calendar days of records into a
// WeeklyInsight: average mood, a daily trend line, mood/exercise and
// mood/adherence correlations, a one-step forecast, and a summary.
//
// It is a pure function of its inputs and the injected now; output for
// identical inputs is identical. Day bucketing uses now's location, so
// "today" means the viewer's local calendar day. Input slices are never
// mutated, and absence of data degrades to zeros and neutral defaults
// rather than errors.
func Compute(
	journals []*domain.JournalEntry,
	fitnessLogs []*domain.FitnessLog,
	medicationLogs []*domain.MedicationLog,
	medications []*domain.Medication,
	now time.Time,
) WeeklyInsight {
	loc := now.Location()
	weekAgo := now.AddDate(0, 0, -7)

	weekJournals := filterJournals(journals, weekAgo, loc)
	weekFitness := filterByDay(fitnessLogs, func(f *domain.FitnessLog) string { return f.LogDate }, weekAgo, loc)
	weekMedLogs := filterByDay(medicationLogs, func(l *domain.MedicationLog) string { return l.TakenDate }, weekAgo, loc)

	avgMood := averageMood(weekJournals)
	trend := moodTrend(weekJournals, now, loc)
	fitnessCorr := fitnessCorrelation(weekJournals, weekFitness, now, loc)
	medicationCorr := medicationCorrelation(weekJournals, weekMedLogs, medications, now, loc)
	predicted := forecast(trend, avgMood)

	noData := len(weekJournals) == 0 && len(weekFitness) == 0 &&
		len(weekMedLogs) == 0 && len(medications) == 0

	return WeeklyInsight{
		AvgMood:               avgMood,
		FitnessCorrelation:    fitnessCorr,
		MedicationCorrelation: medicationCorr,
		PredictedNextMood:     predicted,
		Summary:               buildSummary(avgMood, fitnessCorr, medicationCorr, predicted, noData),
		MoodTrend:             trend,
	}
}

// filterJournals keeps entries whose timestamp falls strictly after weekAgo.
func filterJournals(journals []*domain.JournalEntry, weekAgo time.Time, loc *time.Location) []*domain.JournalEntry {
	var out []*domain.JournalEntry
	for _, j := range journals {
		if j.CreatedAt.In(loc).After(weekAgo) {
			out = append(out, j)
		}
	}
	return out
}

// filterByDay keeps day-keyed records whose calendar day falls strictly
// after weekAgo. Records with an unparseable day field are treated as
// absent rather than failing the whole computation.
func filterByDay[T any](records []T, dayOf func(T) string, weekAgo time.Time, loc *time.Location) []T {
	var out []T
	for _, rec := range records {
		day, err := time.ParseInLocation(domain.DayFormat, dayOf(rec), loc)
		if err != nil {
			continue
		}
		if day.After(weekAgo) {
			out = append(out, rec)
		}
	}
	return out
}

// averageMood is the mean sentiment over the windowed journal entries,
// 0 when there are none.
func averageMood(journals []*domain.JournalEntry) float64 {
	if len(journals) == 0 {
		return 0
	}
	var sum float64
	for _, j := range journals {
		sum += j.SentimentScore
	}
	return round2(sum / float64(len(journals)))
}

// journalsOn selects windowed entries whose local calendar day equals day.
func journalsOn(journals []*domain.JournalEntry, day string, loc *time.Location) []*domain.JournalEntry {
	var out []*domain.JournalEntry
	for _, j := range journals {
		if domain.DayKey(j.CreatedAt.In(loc)) == day {
			out = append(out, j)
		}
	}
	return out
}

func meanScore(journals []*domain.JournalEntry) float64 {
	var sum float64
	for _, j := range journals {
		sum += j.SentimentScore
	}
	return sum / float64(len(journals))
}

// moodTrend builds exactly 7 points, oldest first: 6 days ago through
// today. Days without journal entries score 0.
func moodTrend(journals []*domain.JournalEntry, now time.Time, loc *time.Location) []TrendPoint {
	trend := make([]TrendPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		day := domain.DayKey(date.In(loc))

		score := 0.0
		if entries := journalsOn(journals, day, loc); len(entries) > 0 {
			score = round2(meanScore(entries))
		}

		trend = append(trend, TrendPoint{
			Day:   date.In(loc).Format("Mon"),
			Score: score,
		})
	}
	return trend
}

// fitnessCorrelation pairs per-day mean sentiment with that day's minutes
// exercised. Only days with at least one journal entry contribute; a day
// without a fitness log contributes 0 minutes. Days with no journal entry
// are skipped from both series to keep them aligned.
func fitnessCorrelation(
	journals []*domain.JournalEntry,
	fitnessLogs []*domain.FitnessLog,
	now time.Time,
	loc *time.Location,
) float64 {
	var moods, minutes []float64
	for i := 6; i >= 0; i-- {
		day := domain.DayKey(now.AddDate(0, 0, -i).In(loc))
		entries := journalsOn(journals, day, loc)
		if len(entries) == 0 {
			continue
		}

		moods = append(moods, meanScore(entries))
		minutes = append(minutes, minutesExercisedOn(fitnessLogs, day))
	}
	return pearson(moods, minutes)
}

// minutesExercisedOn returns the first matching log's minutes for the day,
// or 0 when the day has no fitness log.
func minutesExercisedOn(fitnessLogs []*domain.FitnessLog, day string) float64 {
	for _, f := range fitnessLogs {
		if f.LogDate == day {
			return float64(f.MinutesExercised)
		}
	}
	return 0
}

// medicationCorrelation pairs per-day mean sentiment with that day's
// adherence fraction (taken count over total medications). A day
// contributes only when it has at least one journal entry and the user
// has at least one medication at all.
func medicationCorrelation(
	journals []*domain.JournalEntry,
	medicationLogs []*domain.MedicationLog,
	medications []*domain.Medication,
	now time.Time,
	loc *time.Location,
) float64 {
	if len(medications) == 0 {
		return 0
	}

	var moods, adherence []float64
	for i := 6; i >= 0; i-- {
		day := domain.DayKey(now.AddDate(0, 0, -i).In(loc))
		entries := journalsOn(journals, day, loc)
		if len(entries) == 0 {
			continue
		}

		taken := 0
		for _, l := range medicationLogs {
			if l.TakenDate == day && l.Taken {
				taken++
			}
		}

		moods = append(moods, meanScore(entries))
		adherence = append(adherence, float64(taken)/float64(len(medications)))
	}
	return pearson(moods, adherence)
}

// forecast predicts the next mood from the trend series. Zero-valued
// trend points are dropped as "no data" before taking the last-step
// delta; this conflates a genuinely neutral day with a day that had no
// journal entries, which is a known precision trade-off kept for output
// stability. Fewer than 2 usable points leaves the forecast at avgMood.
func forecast(trend []TrendPoint, avgMood float64) float64 {
	var scores []float64
	for _, p := range trend {
		if p.Score != 0 {
			scores = append(scores, p.Score)
		}
	}

	if len(scores) < 2 {
		return avgMood
	}

	delta := scores[len(scores)-1] - scores[len(scores)-2]
	return round2(clamp(avgMood+delta*forecastTrendWeight, -1, 1))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
