package agent

import (
	"strings"
	"time"
)

// Interaction describes one chat message as seen by the stats
// accumulator. Flags are set by the chat collaborator; missing fields
// simply contribute nothing.
type Interaction struct {
	Message         string   `json:"message"`
	Role            string   `json:"role"`
	Topics          []string `json:"topics"`
	IsQuestion      bool     `json:"is_question"`
	WasHelpful      bool     `json:"was_helpful"`
	EmotionDetected bool     `json:"emotion_detected"`
}

// Curated keyword lists mapping topics onto knowledge domains.
// Matching is case-insensitive substring containment.
var scienceKeywords = []string{
	"science", "physics", "chemistry", "biology", "math", "astronomy",
	"quantum", "evolution", "space", "technology", "neuroscience",
}

var artKeywords = []string{
	"art", "music", "paint", "poetry", "dance", "sculpture", "design",
	"literature", "drawing", "film", "photography",
}

var philosophyKeywords = []string{
	"philosophy", "meaning", "ethics", "consciousness", "existence",
	"morality", "truth", "wisdom", "metaphysics", "logic",
}

func matchesDomain(topic string, keywords []string) bool {
	lower := strings.ToLower(topic)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// estimateVocabularyGrowth counts 30% of the tokens longer than 3
// characters. This is a proxy for vocabulary exposure, not a distinct
// word count.
func estimateVocabularyGrowth(message string) int {
	long := 0
	for _, tok := range strings.Fields(message) {
		if len(tok) > 3 {
			long++
		}
	}
	return int(float64(long) * 0.3)
}

const dateLayout = "2006-01-02"

// touchActivity maintains the consecutive-day streak. A gap of exactly
// one day extends the streak, a longer gap resets it to 1, and repeated
// activity on the same day changes nothing.
func touchActivity(s *Stats, now time.Time) {
	today := now.Format(dateLayout)
	if s.LastActiveDate == today {
		return
	}
	last, err := time.Parse(dateLayout, s.LastActiveDate)
	if err != nil {
		// No recorded activity yet
		s.ConsecutiveDays = 1
		s.LastActiveDate = today
		return
	}
	todayMidnight, _ := time.Parse(dateLayout, today)
	gap := int(todayMidnight.Sub(last).Hours() / 24)
	if gap == 1 {
		s.ConsecutiveDays++
	} else if gap > 1 {
		s.ConsecutiveDays = 1
	}
	s.LastActiveDate = today
}

// ApplyInteraction folds one interaction into the stats row. It never
// fails: missing fields contribute defaults and every counter only
// moves the way the rules allow.
func ApplyInteraction(s *Stats, in Interaction, now time.Time) *Stats {
	s.TotalMessages++
	s.VocabularySize += estimateVocabularyGrowth(in.Message)

	if len(in.Topics) > 0 {
		known := s.TopicList()
		seen := make(map[string]bool, len(known))
		for _, t := range known {
			seen[strings.ToLower(t)] = true
		}
		changed := false
		for _, topic := range in.Topics {
			topic = strings.TrimSpace(topic)
			if topic == "" || seen[strings.ToLower(topic)] {
				continue
			}
			known = append(known, topic)
			seen[strings.ToLower(topic)] = true
			changed = true
			if matchesDomain(topic, scienceKeywords) {
				s.ScienceTopics++
			}
			if matchesDomain(topic, artKeywords) {
				s.ArtTopics++
			}
			if matchesDomain(topic, philosophyKeywords) {
				s.PhilosophyTopics++
			}
		}
		if changed {
			s.SetTopics(known)
		}
	}

	if in.IsQuestion {
		s.QuestionsAsked++
	}
	if in.WasHelpful {
		s.HelpfulResponses++
	}
	if in.EmotionDetected {
		s.EmotionsRecognized++
	}

	touchActivity(s, now)
	s.UpdatedAt = now
	return s
}

// The record* helpers below are thin wrappers used by the dream,
// journal, creative-work and relationship generators. They share the
// activity-streak bookkeeping with ApplyInteraction.

func RecordDream(s *Stats, now time.Time) {
	s.DreamCount++
	touchActivity(s, now)
	s.UpdatedAt = now
}

func RecordCreativeWork(s *Stats, now time.Time) {
	s.CreativeWorkCount++
	touchActivity(s, now)
	s.UpdatedAt = now
}

func RecordJournalEntry(s *Stats, now time.Time) {
	s.JournalEntryCount++
	touchActivity(s, now)
	s.UpdatedAt = now
}

func RecordRelationship(s *Stats, now time.Time) {
	s.RelationshipsFormed++
	touchActivity(s, now)
	s.UpdatedAt = now
}

func StartConversation(s *Stats, now time.Time) {
	s.ConversationCount++
	touchActivity(s, now)
	s.UpdatedAt = now
}

// UpdateLongestConversation records a new personal best, ignoring
// shorter conversations.
func UpdateLongestConversation(s *Stats, length int, now time.Time) {
	if length > s.LongestConversation {
		s.LongestConversation = length
		s.UpdatedAt = now
	}
}
