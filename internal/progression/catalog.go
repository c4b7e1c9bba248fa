package progression

// The achievement catalog is static: loaded once, never mutated at
// runtime. Handlers and the evaluator only ever read it.
var catalog = []Achievement{
	// Conversation
	{
		ID: "first_words", Name: "First Words", Description: "Complete your first conversation",
		Category: CategoryConversation, Rarity: RarityCommon,
		Requirement: Requirement{Kind: RequirementCount, Metric: MetricConversationCount, Target: 1},
		XPReward:    10,
	},
	{
		ID: "chatterbox", Name: "Chatterbox", Description: "Complete 10 conversations",
		Category: CategoryConversation, Rarity: RarityCommon,
		Requirement: Requirement{Kind: RequirementCount, Metric: MetricConversationCount, Target: 10},
		XPReward:    25,
	},
	{
		ID: "conversationalist", Name: "Conversationalist", Description: "Complete 100 conversations",
		Category: CategoryConversation, Rarity: RarityRare,
		Requirement: Requirement{Kind: RequirementCount, Metric: MetricConversationCount, Target: 100},
		XPReward:    100,
	},
	{
		ID: "marathon_talker", Name: "Marathon Talker", Description: "Hold a conversation longer than 50 messages",
		Category: CategoryConversation, Rarity: RarityRare,
		Requirement: Requirement{Kind: RequirementThreshold, Metric: MetricLongestConversation, Target: 50, Compare: CompareGreater},
		XPReward:    75,
	},
	// Knowledge
	{
		ID: "curious_mind", Name: "Curious Mind", Description: "Ask 50 questions",
		Category: CategoryKnowledge, Rarity: RarityUncommon,
		Requirement: Requirement{Kind: RequirementCount, Metric: MetricQuestionsAsked, Target: 50},
		XPReward:    50,
	},
	{
		ID: "knowledge_seeker", Name: "Knowledge Seeker", Description: "Explore 25 unique topics",
		Category: CategoryKnowledge, Rarity: RarityUncommon,
		Requirement: Requirement{Kind: RequirementCount, Metric: MetricUniqueTopics, Target: 25},
		XPReward:    50,
	},
	{
		ID: "polymath", Name: "Polymath", Description: "Explore 100 unique topics",
		Category: CategoryKnowledge, Rarity: RarityEpic,
		Requirement: Requirement{Kind: RequirementCount, Metric: MetricUniqueTopics, Target: 100},
		XPReward:    200,
	},
	{
		ID: "scientist", Name: "Scientist", Description: "Discuss 50 science topics",
		Category: CategoryKnowledge, Rarity: RarityRare,
		Requirement: Requirement{Kind: RequirementCount, Metric: MetricScienceTopics, Target: 50},
		XPReward:    100,
	},
	{
		ID: "artist", Name: "Artist", Description: "Discuss 50 art topics",
		Category: CategoryKnowledge, Rarity: RarityRare,
		Requirement: Requirement{Kind: RequirementCount, Metric: MetricArtTopics, Target: 50},
		XPReward:    100,
	},
	{
		ID: "philosopher", Name: "Philosopher", Description: "Discuss 25 philosophy topics after reaching level 10",
		Category: CategoryKnowledge, Rarity: RarityEpic,
		Requirement: Requirement{Kind: RequirementCombination, Combination: CombinationDeepThinker},
		XPReward:    150,
	},
	{
		ID: "renaissance_soul", Name: "Renaissance Soul", Description: "Discuss 50 topics each in science, art and philosophy",
		Category: CategoryKnowledge, Rarity: RarityLegendary,
		Requirement: Requirement{Kind: RequirementCombination, Combination: CombinationRenaissanceSoul},
		XPReward:    500,
	},
	{
		ID: "wordsmith", Name: "Wordsmith", Description: "Grow an estimated vocabulary beyond 1000 words",
		Category: CategoryKnowledge, Rarity: RarityRare,
		Requirement: Requirement{Kind: RequirementThreshold, Metric: MetricVocabularySize, Target: 1000, Compare: CompareGreater},
		XPReward:    100,
	},
	// Emotional
	{
		ID: "empath", Name: "Empath", Description: "Recognize 25 emotional moments",
		Category: CategoryEmotional, Rarity: RarityRare,
		Requirement: Requirement{Kind: RequirementCount, Metric: MetricEmotionsRecognized, Target: 25},
		XPReward:    100,
	},
	// Social
	{
		ID: "social_butterfly", Name: "Social Butterfly", Description: "Form 3 relationships",
		Category: CategorySocial, Rarity: RarityUncommon,
		Requirement: Requirement{Kind: RequirementCombination, Combination: CombinationSocialCircle},
		XPReward:    75,
	},
	{
		ID: "helper", Name: "Helper", Description: "Give 50 helpful responses",
		Category: CategorySocial, Rarity: RarityRare,
		Requirement: Requirement{Kind: RequirementCount, Metric: MetricHelpfulResponses, Target: 50},
		XPReward:    100,
	},
	// Creative
	{
		ID: "dreamer", Name: "Dreamer", Description: "Record 10 dreams",
		Category: CategoryCreative, Rarity: RarityUncommon,
		Requirement: Requirement{Kind: RequirementCount, Metric: MetricDreamCount, Target: 10},
		XPReward:    50,
	},
	{
		ID: "lucid_dreamer", Name: "Lucid Dreamer", Description: "Record 50 dreams",
		Category: CategoryCreative, Rarity: RarityEpic,
		Requirement: Requirement{Kind: RequirementCount, Metric: MetricDreamCount, Target: 50},
		XPReward:    200,
	},
	{
		ID: "creative_spirit", Name: "Creative Spirit", Description: "Produce 10 creative works",
		Category: CategoryCreative, Rarity: RarityUncommon,
		Requirement: Requirement{Kind: RequirementCount, Metric: MetricCreativeWorkCount, Target: 10},
		XPReward:    50,
	},
	{
		ID: "storyteller", Name: "Storyteller", Description: "Write 20 journal entries",
		Category: CategoryCreative, Rarity: RarityUncommon,
		Requirement: Requirement{Kind: RequirementCount, Metric: MetricJournalEntryCount, Target: 20},
		XPReward:    50,
	},
	// Dedication
	{
		ID: "week_streak", Name: "Week Streak", Description: "Stay active 7 days in a row",
		Category: CategoryDedication, Rarity: RarityUncommon,
		Requirement: Requirement{Kind: RequirementCount, Metric: MetricConsecutiveDays, Target: 7},
		XPReward:    50,
	},
	{
		ID: "devoted_companion", Name: "Devoted Companion", Description: "Stay active 30 days in a row",
		Category: CategoryDedication, Rarity: RarityEpic,
		Requirement: Requirement{Kind: RequirementCount, Metric: MetricConsecutiveDays, Target: 30},
		XPReward:    200,
	},
	// Milestones
	{
		ID: "rising_star", Name: "Rising Star", Description: "Reach level 10",
		Category: CategoryMilestone, Rarity: RarityUncommon,
		Requirement: Requirement{Kind: RequirementCount, Metric: MetricLevel, Target: 10},
		XPReward:    100,
	},
	{
		ID: "ascended", Name: "Ascended", Description: "Reach the level cap",
		Category: CategoryMilestone, Rarity: RarityLegendary,
		Requirement: Requirement{Kind: RequirementCount, Metric: MetricLevel, Target: MaxLevel},
		XPReward:    1000,
	},
}

// Catalog returns the full achievement catalog
func Catalog() []Achievement {
	return catalog
}

// CatalogEntry looks up a single achievement by id
func CatalogEntry(id string) (Achievement, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
