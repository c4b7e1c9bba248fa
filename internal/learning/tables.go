package learning

// Keyword lookup tables driving the detector. They are versioned as a
// unit so a future classifier can swap them out without touching the
// detection control flow.

const TableVersion = 1

// patternKeywords maps each pattern type to its trigger keywords.
// Matching is case-insensitive substring containment over the full
// transcript.
var patternKeywords = map[PatternType][]string{
	PatternTopicInterest: {
		"tell me about", "what is", "how does", "why does", "explain",
		"curious", "interesting", "summarize", "learn more",
	},
	PatternCommunicationStyle: {
		"please", "thank", "thank you", "could you", "would you",
		"appreciate", "sorry", "excuse me",
	},
	PatternEmotionalResponse: {
		"feel", "happy", "sad", "excited", "worried", "love",
		"afraid", "angry", "proud",
	},
	PatternProblemSolving: {
		"solve", "figure out", "solution", "problem", "fix",
		"work through", "approach", "step by step",
	},
	PatternMemoryRetention: {
		"remember", "recall", "last time", "you said", "earlier",
		"we talked about", "before",
	},
	PatternRelationshipBuilding: {
		"friend", "together", "trust", "share", "miss you",
		"care about", "between us",
	},
}

// Sentiment indicator tables for the conversation-wide outcome.
// "thank" and "thank you" overlap on purpose: a plain thanks counts
// twice, which is what pushes a single grateful message past the
// neutral margin.
var positiveKeywords = []string{
	"thank", "thank you", "great", "good", "love", "wonderful",
	"awesome", "helpful", "amazing", "perfect", "yes",
}

var negativeKeywords = []string{
	"no", "wrong", "bad", "hate", "terrible", "useless",
	"confused", "frustrat", "annoying", "stop",
}

// strategyKeywords maps each learning strategy to its indicators
var strategyKeywords = map[Strategy][]string{
	StrategyExploration: {
		"explore", "discover", "what if", "try something", "new",
		"wonder", "never seen",
	},
	StrategyExploitation: {
		"again", "worked before", "repeat", "same as", "like before",
		"reliable", "stick with",
	},
	StrategyImitation: {
		"like you", "copy", "follow your", "for example", "show me",
		"the way you",
	},
	StrategyExperimentation: {
		"experiment", "test", "hypothesis", "measure", "compare",
		"variant", "trial",
	},
	StrategyReflection: {
		"reflect", "think about", "looking back", "realize",
		"learned that", "in hindsight",
	},
}
