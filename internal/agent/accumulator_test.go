package agent

import (
	"testing"
	"time"
)

func TestApplyInteraction_Counters(t *testing.T) {
	s := NewStats("a1")
	now := time.Now()

	ApplyInteraction(s, Interaction{
		Message:         "Could you explain how quantum entanglement works in detail?",
		Role:            "user",
		Topics:          []string{"quantum physics"},
		IsQuestion:      true,
		EmotionDetected: true,
	}, now)

	if s.TotalMessages != 1 {
		t.Errorf("expected 1 message, got %d", s.TotalMessages)
	}
	if s.QuestionsAsked != 1 || s.EmotionsRecognized != 1 || s.HelpfulResponses != 0 {
		t.Errorf("flag counters wrong: %+v", s)
	}
	if s.VocabularySize == 0 {
		t.Error("expected vocabulary growth")
	}
	if len(s.TopicList()) != 1 {
		t.Errorf("expected 1 topic, got %v", s.TopicList())
	}
	if s.ScienceTopics != 1 {
		t.Errorf("quantum physics should count as science, got %d", s.ScienceTopics)
	}
	if s.LastActiveDate != now.Format("2006-01-02") {
		t.Errorf("last active date not stamped: %s", s.LastActiveDate)
	}
}

func TestApplyInteraction_TopicDeduplication(t *testing.T) {
	s := NewStats("a1")
	now := time.Now()

	ApplyInteraction(s, Interaction{Topics: []string{"Philosophy of mind", "oil painting"}}, now)
	ApplyInteraction(s, Interaction{Topics: []string{"philosophy of mind", "astronomy"}}, now)

	if got := len(s.TopicList()); got != 3 {
		t.Errorf("expected 3 unique topics, got %d: %v", got, s.TopicList())
	}
	if s.PhilosophyTopics != 1 {
		t.Errorf("repeated topic must not re-count, got %d", s.PhilosophyTopics)
	}
	if s.ArtTopics != 1 {
		t.Errorf("oil painting should count as art, got %d", s.ArtTopics)
	}
	if s.ScienceTopics != 1 {
		t.Errorf("astronomy should count as science, got %d", s.ScienceTopics)
	}
}

func TestVocabularyEstimate(t *testing.T) {
	// 11 tokens longer than 3 characters -> 30% -> 3
	msg := "wonderful creatures wander through ancient forests seeking knowledge about everything interesting"
	if got := estimateVocabularyGrowth(msg); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if got := estimateVocabularyGrowth("a an it"); got != 0 {
		t.Errorf("short tokens contribute nothing, got %d", got)
	}
}

func TestStreak(t *testing.T) {
	s := NewStats("a1")
	day1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	touchActivity(s, day1)
	if s.ConsecutiveDays != 1 {
		t.Fatalf("first activity should start streak at 1, got %d", s.ConsecutiveDays)
	}

	// Same day: no change
	touchActivity(s, day1.Add(5*time.Hour))
	if s.ConsecutiveDays != 1 {
		t.Errorf("same-day activity must not change streak, got %d", s.ConsecutiveDays)
	}

	// Next day: increment
	touchActivity(s, day1.AddDate(0, 0, 1))
	if s.ConsecutiveDays != 2 {
		t.Errorf("next-day activity should extend streak, got %d", s.ConsecutiveDays)
	}

	// Gap of 3 days: reset
	touchActivity(s, day1.AddDate(0, 0, 4))
	if s.ConsecutiveDays != 1 {
		t.Errorf("gap should reset streak to 1, got %d", s.ConsecutiveDays)
	}
	if s.LastActiveDate != "2026-03-05" {
		t.Errorf("last active date not updated, got %s", s.LastActiveDate)
	}
}

func TestRecordWrappers(t *testing.T) {
	s := NewStats("a1")
	now := time.Now()

	RecordDream(s, now)
	RecordCreativeWork(s, now)
	RecordJournalEntry(s, now)
	RecordRelationship(s, now)
	StartConversation(s, now)
	UpdateLongestConversation(s, 12, now)
	UpdateLongestConversation(s, 8, now) // shorter, ignored

	if s.DreamCount != 1 || s.CreativeWorkCount != 1 || s.JournalEntryCount != 1 ||
		s.RelationshipsFormed != 1 || s.ConversationCount != 1 {
		t.Errorf("wrapper counters wrong: %+v", s)
	}
	if s.LongestConversation != 12 {
		t.Errorf("longest conversation should keep the max, got %d", s.LongestConversation)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewStats("a1")
	s.ConversationCount = 3
	s.SetTopics([]string{"music", "space"})
	snap := s.Snapshot(4)
	if snap.ConversationCount != 3 || snap.UniqueTopics != 2 || snap.Level != 4 {
		t.Errorf("snapshot mismatch: %+v", snap)
	}
}
