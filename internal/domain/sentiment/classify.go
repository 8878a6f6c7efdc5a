package sentiment

import (
	"math"
	"strings"
)

// NeutralEmotion is the label used when no emotion keywords match.
const NeutralEmotion = "Neutral"

// Result holds the classification of a single piece of journal text.
// The fields are embedded into the persisted journal entry.
type Result struct {
	// Score is the polarity score in [-1, 1], rounded to 2 decimal places.
	Score float64 `json:"score"`

	// Emotion is the dominant emotion label, or "Neutral" when no
	// emotion keywords match.
	Emotion string `json:"emotion"`

	// RiskFlag indicates the text matched a crisis phrase. It is
	// independent of the polarity score.
	RiskFlag bool `json:"risk_flag"`
}

// Classify analyzes free-text journal content and returns its polarity
// score, dominant emotion, and safety-risk flag.
//
// It is a total function: any string input, including empty strings,
// unicode text, and arbitrarily long text, produces a result without
// error. It performs no I/O, has no side effects, and is safe to call
// concurrently.
func Classify(text string) Result {
	lower := strings.ToLower(text)
	tokens := tokenize(lower)

	// Risk detection runs on the whole lowered string so phrases that
	// span token boundaries ("kill myself") still match.
	riskFlag := false
	for _, phrase := range riskPhrases {
		if strings.Contains(lower, phrase) {
			riskFlag = true
			break
		}
	}

	var pos, neg int
	for _, tok := range tokens {
		if _, ok := positiveWords[tok]; ok {
			pos++
		}
		if _, ok := negativeWords[tok]; ok {
			neg++
		}
	}

	// Denominator floor of 1 keeps affect-free text at score 0 instead
	// of dividing by zero.
	total := pos + neg
	if total == 0 {
		total = 1
	}
	score := clamp(round2(float64(pos-neg)/float64(total)), -1, 1)

	return Result{
		Score:    score,
		Emotion:  dominantEmotion(tokens),
		RiskFlag: riskFlag,
	}
}

// tokenize splits lowered text on runs of non-word characters, discarding
// empty tokens. Word characters are ASCII letters, digits, and underscore.
func tokenize(lower string) []string {
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !isWordRune(r)
	})
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '_'
}

// dominantEmotion scans the fixed category order and returns the label
// with the most keyword hits. Only a strictly greater count displaces the
// current best, so ties resolve to the earlier category.
func dominantEmotion(tokens []string) string {
	emotion := NeutralEmotion
	maxMatch := 0

	for _, category := range emotionCategories {
		count := 0
		for _, tok := range tokens {
			if _, ok := category.keywords[tok]; ok {
				count++
			}
		}
		if count > maxMatch {
			maxMatch = count
			emotion = category.label
		}
	}

	return emotion
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
