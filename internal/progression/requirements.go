package progression

import (
	"log"
)

// metricValue resolves a metric name against the snapshot.
// Unknown metrics resolve to -1 so no requirement can match them.
func metricValue(s Snapshot, m Metric) float64 {
	switch m {
	case MetricConversationCount:
		return float64(s.ConversationCount)
	case MetricTotalMessages:
		return float64(s.TotalMessages)
	case MetricUniqueTopics:
		return float64(s.UniqueTopics)
	case MetricVocabularySize:
		return float64(s.VocabularySize)
	case MetricQuestionsAsked:
		return float64(s.QuestionsAsked)
	case MetricEmotionsRecognized:
		return float64(s.EmotionsRecognized)
	case MetricRelationshipsFormed:
		return float64(s.RelationshipsFormed)
	case MetricDreamCount:
		return float64(s.DreamCount)
	case MetricCreativeWorkCount:
		return float64(s.CreativeWorkCount)
	case MetricJournalEntryCount:
		return float64(s.JournalEntryCount)
	case MetricScienceTopics:
		return float64(s.ScienceTopics)
	case MetricArtTopics:
		return float64(s.ArtTopics)
	case MetricPhilosophyTopics:
		return float64(s.PhilosophyTopics)
	case MetricHelpfulResponses:
		return float64(s.HelpfulResponses)
	case MetricLongestConversation:
		return float64(s.LongestConversation)
	case MetricConsecutiveDays:
		return float64(s.ConsecutiveDays)
	case MetricLevel:
		return float64(s.Level)
	}
	return -1
}

// combinations is the closed dispatch table of composite predicates.
// Deliberately not a rule language: adding one is a code change.
var combinations = map[CombinationID]func(Snapshot) bool{
	CombinationRenaissanceSoul: func(s Snapshot) bool {
		return s.ScienceTopics >= 50 && s.ArtTopics >= 50 && s.PhilosophyTopics >= 50
	},
	CombinationDeepThinker: func(s Snapshot) bool {
		return s.PhilosophyTopics >= 25 && s.Level >= 10
	},
	CombinationSocialCircle: func(s Snapshot) bool {
		return s.RelationshipsFormed >= 3
	},
}

// Satisfied evaluates a requirement against the snapshot.
// Malformed requirements evaluate to false rather than erroring, so a
// bad catalog entry can never be unlocked by accident.
func (r Requirement) Satisfied(s Snapshot) bool {
	switch r.Kind {
	case RequirementCount:
		return metricValue(s, r.Metric) >= r.Target
	case RequirementThreshold:
		v := metricValue(s, r.Metric)
		switch r.Compare {
		case CompareGreater:
			return v > r.Target
		case CompareLess:
			return v < r.Target
		case CompareEqual:
			return v == r.Target
		}
		return false
	case RequirementCombination:
		fn, ok := combinations[r.Combination]
		if !ok {
			log.Printf("[Progression] Unknown combination id %q, treating as unsatisfied", r.Combination)
			return false
		}
		return fn(s)
	}
	return false
}

// CheckAchievements returns the catalog entries whose requirement the
// snapshot satisfies and which the progress record has not unlocked yet.
func CheckAchievements(s Snapshot, p Progress) []Achievement {
	var newly []Achievement
	for _, a := range catalog {
		if _, unlocked := p.Achievements[a.ID]; unlocked {
			continue
		}
		if a.Requirement.Satisfied(s) {
			newly = append(newly, a)
		}
	}
	return newly
}
