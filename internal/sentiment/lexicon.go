package sentiment

// Fixed lexicons and modifier tables. These literals are behavioral
// contracts: scoring tests are written against them, so additions are
// fine but changes to existing entries shift every downstream threshold.

var positiveWords = wordSet(
	"happy", "joy", "good", "great", "excellent", "amazing", "wonderful",
	"fantastic", "awesome", "brilliant", "perfect", "love", "like", "enjoy",
	"pleased", "satisfied", "content", "grateful", "thankful", "blessed",
	"lucky", "fortunate", "optimistic", "hopeful", "confident", "excited",
	"enthusiastic", "proud", "accomplished", "successful", "better",
	"improved", "progress", "healing", "recovery", "positive", "calm",
	"peaceful", "relaxed", "motivated", "inspired", "energetic",
)

var negativeWords = wordSet(
	"sad", "depressed", "unhappy", "miserable", "terrible", "awful",
	"horrible", "bad", "worse", "worst", "hate", "dislike", "angry",
	"furious", "mad", "annoyed", "frustrated", "irritated", "upset",
	"worried", "anxious", "nervous", "scared", "afraid", "fearful",
	"terrified", "panic", "stressed", "overwhelmed", "exhausted", "tired",
	"drained", "hopeless", "helpless", "worthless", "useless", "guilty",
	"ashamed", "embarrassed", "lonely", "isolated", "rejected", "abandoned",
	"betrayed", "hurt", "pain", "suffering", "struggling", "difficult",
	"hard", "challenging", "impossible", "failure", "failed", "broken",
	"damaged", "destroyed", "ruined", "devastated", "crushed",
)

// emotionKeywords maps each emotion category to its curated keyword list.
// Matching is per-token, so the multi-word entries carried over from the
// curated lists ("on edge", "racing heart", ...) only document intent;
// single tokens are what actually match.
var emotionKeywords = map[string][]string{
	"anxiety": {
		"anxious", "worried", "nervous", "panic", "fear", "scared", "afraid",
		"terrified", "overwhelmed", "stressed", "tense", "uneasy", "restless",
		"jittery", "on edge", "butterflies", "racing heart", "sweating",
		"trembling", "what if", "catastrophe", "disaster", "doom",
	},
	"depression": {
		"depressed", "sad", "down", "low", "blue", "hopeless", "helpless",
		"worthless", "empty", "numb", "tired", "exhausted", "drained",
		"unmotivated", "apathetic", "withdrawn", "isolated", "lonely",
		"crying", "tears", "sleep all day", "no energy", "pointless",
	},
	"happiness": {
		"happy", "joy", "joyful", "cheerful", "glad", "pleased", "content",
		"satisfied", "delighted", "thrilled", "excited", "elated", "ecstatic",
		"blissful", "euphoric", "optimistic", "hopeful", "grateful",
		"thankful", "blessed", "lucky", "smile", "laugh", "celebration",
	},
	"anger": {
		"angry", "mad", "furious", "rage", "enraged", "livid", "irate",
		"annoyed", "irritated", "frustrated", "aggravated", "pissed",
		"outraged", "indignant", "resentful", "bitter", "hostile",
		"aggressive", "violent", "explosive", "seething", "boiling",
	},
	"fear": {
		"fear", "scared", "afraid", "terrified", "frightened", "petrified",
		"horrified", "alarmed", "startled", "threatened", "vulnerable",
		"insecure", "paranoid", "phobia", "nightmare", "terror", "dread",
	},
}

// negationWords flip and dampen the base score when any appears as a
// substring of the lowered text.
var negationWords = []string{
	"not", "no", "never", "nothing", "nobody", "nowhere", "neither", "nor",
}

// modifier pairs a phrase with its score multiplier. Order matters:
// the first phrase found in the text wins.
type modifier struct {
	phrase     string
	multiplier float64
}

var intensifiers = []modifier{
	{"very", 1.3},
	{"extremely", 1.5},
	{"really", 1.2},
	{"so", 1.2},
	{"quite", 1.1},
	{"totally", 1.4},
	{"completely", 1.4},
	{"absolutely", 1.5},
	{"incredibly", 1.4},
	{"amazingly", 1.3},
}

var diminishers = []modifier{
	{"a little", 0.7},
	{"somewhat", 0.8},
	{"kind of", 0.7},
	{"sort of", 0.7},
	{"rather", 0.8},
	{"fairly", 0.8},
	{"slightly", 0.6},
	{"barely", 0.5},
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
