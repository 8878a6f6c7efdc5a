package sentiment

// Fixed lexicons for keyword-based classification. These are constant
// lookup tables; there is no dynamic registration and no learned model.

// positiveWords and negativeWords are matched against exact tokens.
var positiveWords = wordSet(
	"happy", "great", "wonderful", "amazing", "good", "love", "excited", "grateful",
	"blessed", "joy", "peaceful", "calm", "relaxed", "proud", "accomplished",
	"motivated", "energetic", "hopeful", "confident", "content", "cheerful",
	"fantastic", "brilliant", "excellent", "better", "improved", "smile", "laugh",
)

var negativeWords = wordSet(
	"sad", "angry", "depressed", "anxious", "stressed", "tired", "exhausted",
	"lonely", "frustrated", "worried", "overwhelmed", "hopeless", "miserable",
	"terrible", "awful", "bad", "worse", "pain", "hurt", "cry", "crying",
	"fear", "scared", "nervous", "upset", "annoyed", "irritated", "drained",
)

// riskPhrases are matched as substrings of the whole lowered text, not as
// tokens, because phrases span token boundaries.
var riskPhrases = []string{
	"self-harm", "suicide", "kill myself", "end it all", "don't want to live",
	"no reason to live", "better off dead", "want to die", "hurt myself",
}

// emotionCategory pairs an emotion label with its keyword set.
type emotionCategory struct {
	label    string
	keywords map[string]struct{}
}

// emotionCategories is an ordered slice, not a map: the scan order decides
// ties (strictly greater wins, so the earlier category keeps a tie) and
// must stay deterministic.
var emotionCategories = []emotionCategory{
	{"Joy", wordSet("happy", "joy", "excited", "cheerful", "love", "fantastic", "brilliant", "laugh", "smile")},
	{"Gratitude", wordSet("grateful", "blessed", "thankful", "appreciate")},
	{"Calm", wordSet("peaceful", "calm", "relaxed", "content", "serene")},
	{"Sadness", wordSet("sad", "lonely", "cry", "crying", "miserable", "depressed")},
	{"Anxiety", wordSet("anxious", "worried", "nervous", "stressed", "overwhelmed", "fear", "scared")},
	{"Anger", wordSet("angry", "frustrated", "annoyed", "irritated", "upset")},
	{"Fatigue", wordSet("tired", "exhausted", "drained")},
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
