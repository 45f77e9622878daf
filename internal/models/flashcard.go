package models

import (
	"slices"
	"time"
)

// Tags maintained by the review engine.
const (
	TagRecentlyLearned = "recently_learned"
	TagMastered        = "mastered"
)

// FlashcardMastery holds the mastery fields of a flashcard. These are
// written exclusively by the review engine.
type FlashcardMastery struct {
	ReviewCount     int      `json:"review_count"`
	MasteryLevel    int      `json:"mastery_level"`
	LastPerformance int      `json:"last_performance"`
	Tags            []string `json:"tags"`
}

// HasTag reports whether the tag is present.
func (m FlashcardMastery) HasTag(tag string) bool {
	return slices.Contains(m.Tags, tag)
}

// WithTag returns the mastery with the tag present. Adding an existing
// tag is a no-op.
func (m FlashcardMastery) WithTag(tag string) FlashcardMastery {
	if m.HasTag(tag) {
		return m
	}
	tags := make([]string, 0, len(m.Tags)+1)
	tags = append(tags, m.Tags...)
	tags = append(tags, tag)
	m.Tags = tags
	return m
}

// WithoutTag returns the mastery with the tag absent. Removing a missing
// tag is a no-op.
func (m FlashcardMastery) WithoutTag(tag string) FlashcardMastery {
	if !m.HasTag(tag) {
		return m
	}
	tags := make([]string, 0, len(m.Tags))
	for _, t := range m.Tags {
		if t != tag {
			tags = append(tags, t)
		}
	}
	m.Tags = tags
	return m
}

type Flashcard struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	FlashcardMastery
	CreatedAt time.Time `json:"created_at"`
}
