package srs

import "github.com/Oleksiy-Zhukov/studentsai/internal/models"

// Mastery adjustment thresholds on the 0-100 performance scale.
const (
	strongPerformance = 80
	weakPerformance   = 50

	masteryGain = 20
	masteryLoss = 10

	// Successful repetitions needed before a strong review marks the
	// card recently learned.
	learnedStreak = 3
)

// UpdateMastery folds one review's performance score into the card's
// mastery fields. repetitions is the streak after the schedule update.
// Scores in [50,80) change nothing besides the counters.
func UpdateMastery(m models.FlashcardMastery, performanceScore, repetitions int) models.FlashcardMastery {
	m.ReviewCount++
	m.LastPerformance = performanceScore

	switch {
	case performanceScore >= strongPerformance:
		m.MasteryLevel += masteryGain
		if m.MasteryLevel > 100 {
			m.MasteryLevel = 100
		}
	case performanceScore < weakPerformance:
		m.MasteryLevel -= masteryLoss
		if m.MasteryLevel < 0 {
			m.MasteryLevel = 0
		}
	}

	if performanceScore >= strongPerformance && repetitions >= learnedStreak {
		m = m.WithTag(models.TagRecentlyLearned)
	} else if performanceScore < weakPerformance {
		m = m.WithoutTag(models.TagRecentlyLearned)
	}
	return m
}
