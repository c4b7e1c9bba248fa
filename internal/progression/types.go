package progression

import (
	"time"
)

// Rarity classifies how hard an achievement is to earn
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

// Category groups achievements by the behavior they reward
type Category string

const (
	CategoryConversation Category = "CONVERSATION"
	CategoryKnowledge    Category = "KNOWLEDGE"
	CategoryEmotional    Category = "EMOTIONAL"
	CategorySocial       Category = "SOCIAL"
	CategoryCreative     Category = "CREATIVE"
	CategoryDedication   Category = "DEDICATION"
	CategoryMilestone    Category = "MILESTONE"
)

// RequirementKind defines how a requirement is evaluated
type RequirementKind string

const (
	RequirementCount       RequirementKind = "COUNT"
	RequirementThreshold   RequirementKind = "THRESHOLD"
	RequirementCombination RequirementKind = "COMBINATION"
)

// Comparison is the operator used by THRESHOLD requirements
type Comparison string

const (
	CompareGreater Comparison = "GREATER"
	CompareLess    Comparison = "LESS"
	CompareEqual   Comparison = "EQUAL"
)

// Metric names a numeric field of the agent snapshot
type Metric string

const (
	MetricConversationCount   Metric = "conversation_count"
	MetricTotalMessages       Metric = "total_messages"
	MetricUniqueTopics        Metric = "unique_topics"
	MetricVocabularySize      Metric = "vocabulary_size"
	MetricQuestionsAsked      Metric = "questions_asked"
	MetricEmotionsRecognized  Metric = "emotions_recognized"
	MetricRelationshipsFormed Metric = "relationships_formed"
	MetricDreamCount          Metric = "dream_count"
	MetricCreativeWorkCount   Metric = "creative_work_count"
	MetricJournalEntryCount   Metric = "journal_entry_count"
	MetricScienceTopics       Metric = "science_topics"
	MetricArtTopics           Metric = "art_topics"
	MetricPhilosophyTopics    Metric = "philosophy_topics"
	MetricHelpfulResponses    Metric = "helpful_responses"
	MetricLongestConversation Metric = "longest_conversation"
	MetricConsecutiveDays     Metric = "consecutive_days"
	MetricLevel               Metric = "level"
)

// CombinationID names a hard-coded composite predicate.
// This is a closed set: extending it is a code change, not data.
type CombinationID string

const (
	CombinationRenaissanceSoul CombinationID = "renaissance_soul"
	CombinationDeepThinker     CombinationID = "deep_thinker"
	CombinationSocialCircle    CombinationID = "social_circle"
)

// Requirement is the unlock predicate of a catalog entry
type Requirement struct {
	Kind        RequirementKind `json:"kind"`
	Metric      Metric          `json:"metric,omitempty"`
	Target      float64         `json:"target,omitempty"`
	Compare     Comparison      `json:"compare,omitempty"`
	Combination CombinationID   `json:"combination,omitempty"`
}

// Achievement is an immutable catalog entry
type Achievement struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    Category    `json:"category"`
	Rarity      Rarity      `json:"rarity"`
	Requirement Requirement `json:"requirement"`
	XPReward    int         `json:"xp_reward"`
}

// Snapshot is the read-only view of an agent's counters the
// requirement evaluator works against. Callers build it from the
// stored stats row plus the current level.
type Snapshot struct {
	ConversationCount   int `json:"conversation_count"`
	TotalMessages       int `json:"total_messages"`
	UniqueTopics        int `json:"unique_topics"`
	VocabularySize      int `json:"vocabulary_size"`
	QuestionsAsked      int `json:"questions_asked"`
	EmotionsRecognized  int `json:"emotions_recognized"`
	RelationshipsFormed int `json:"relationships_formed"`
	DreamCount          int `json:"dream_count"`
	CreativeWorkCount   int `json:"creative_work_count"`
	JournalEntryCount   int `json:"journal_entry_count"`
	ScienceTopics       int `json:"science_topics"`
	ArtTopics           int `json:"art_topics"`
	PhilosophyTopics    int `json:"philosophy_topics"`
	HelpfulResponses    int `json:"helpful_responses"`
	LongestConversation int `json:"longest_conversation"`
	ConsecutiveDays     int `json:"consecutive_days"`
	Level               int `json:"level"`
}

// Progress is the mutable progression record of one agent.
// Achievements maps achievement id to unlock time; keys are never removed.
type Progress struct {
	Level            int                  `json:"level"`
	ExperiencePoints int                  `json:"experience_points"`
	NextLevelXP      int                  `json:"next_level_xp"`
	SkillPoints      int                  `json:"skill_points"`
	Achievements     map[string]time.Time `json:"achievements"`
	AllocatedSkills  map[string]int       `json:"allocated_skills"`
}

// NewProgress returns the starting progression state for a fresh agent
func NewProgress() Progress {
	return Progress{
		Level:            1,
		ExperiencePoints: 0,
		NextLevelXP:      NextLevelXP(1),
		SkillPoints:      0,
		Achievements:     map[string]time.Time{},
		AllocatedSkills:  map[string]int{},
	}
}

// UnlockResult reports the outcome of an unlock batch
type UnlockResult struct {
	Progress  Progress `json:"progress"`
	LeveledUp bool     `json:"leveled_up"`
	OldLevel  int      `json:"old_level"`
	NewLevel  int      `json:"new_level"`
	XPGained  int      `json:"xp_gained"`
	Unlocked  []string `json:"unlocked"`
}
