package srs

import (
	"sort"
	"time"

	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
)

// MasteredEFactor is the ease (in hundredths) at or above which a card
// counts as mastered for archiving.
const MasteredEFactor = 300

// DueCards returns the ids of cards due on or before today, oldest due
// date first, ties broken by flashcard id, truncated to limit. A
// non-positive limit returns nothing.
func DueCards(schedules []models.FlashcardSchedule, today time.Time, limit int) []int64 {
	if limit <= 0 {
		return nil
	}
	cutoff := models.DateOnly(today)

	due := make([]models.FlashcardSchedule, 0, len(schedules))
	for _, s := range schedules {
		if !s.DueDate.After(cutoff) {
			due = append(due, s)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if !due[i].DueDate.Equal(due[j].DueDate) {
			return due[i].DueDate.Before(due[j].DueDate)
		}
		return due[i].FlashcardID < due[j].FlashcardID
	})
	if len(due) > limit {
		due = due[:limit]
	}

	ids := make([]int64, len(due))
	for i, s := range due {
		ids[i] = s.FlashcardID
	}
	return ids
}

// FindMastered returns the ids of cards whose streak and ease have both
// crossed the archiving thresholds. The caller decides what archiving
// means for the matched cards.
func FindMastered(schedules []models.FlashcardSchedule, minRepetitions int) []int64 {
	var ids []int64
	for _, s := range schedules {
		if s.Repetitions >= minRepetitions && s.EFactor >= MasteredEFactor {
			ids = append(ids, s.FlashcardID)
		}
	}
	return ids
}
