// Package insight implements the weekly behavioral-analytics aggregator.
// It folds a trailing 7-day window of journal entries, fitness logs, and
// medication logs into average mood, a daily trend line, cross-metric
// Pearson correlations, a one-step mood forecast, and a natural-language
// summary. All computation is pure: inputs plus an injected clock instant
// fully determine the output.
package insight
