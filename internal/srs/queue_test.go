package srs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
	"github.com/Oleksiy-Zhukov/studentsai/internal/srs"
)

func scheduleDue(id int64, due time.Time) models.FlashcardSchedule {
	return models.FlashcardSchedule{FlashcardID: id, UserID: 1, DueDate: due}
}

func TestDueCards_Ordering(t *testing.T) {
	now := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	schedules := []models.FlashcardSchedule{
		scheduleDue(1, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)),
		scheduleDue(2, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		scheduleDue(3, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
	}

	got := srs.DueCards(schedules, now, 10)

	assert.Equal(t, []int64{2, 3, 1}, got, "oldest due date comes first")
}

func TestDueCards_ExcludesFuture(t *testing.T) {
	now := time.Date(2024, 1, 3, 23, 59, 0, 0, time.UTC)
	schedules := []models.FlashcardSchedule{
		scheduleDue(1, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)),
		scheduleDue(2, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)),
	}

	got := srs.DueCards(schedules, now, 10)

	assert.Equal(t, []int64{1}, got, "due today counts, due tomorrow does not")
}

func TestDueCards_TieBreakByID(t *testing.T) {
	now := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	due := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	schedules := []models.FlashcardSchedule{
		scheduleDue(9, due),
		scheduleDue(4, due),
		scheduleDue(7, due),
	}

	got := srs.DueCards(schedules, now, 10)

	assert.Equal(t, []int64{4, 7, 9}, got)
}

func TestDueCards_Limit(t *testing.T) {
	now := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	schedules := []models.FlashcardSchedule{
		scheduleDue(1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		scheduleDue(2, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
		scheduleDue(3, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)),
	}

	assert.Equal(t, []int64{1, 2}, srs.DueCards(schedules, now, 2))
	assert.Empty(t, srs.DueCards(schedules, now, 0))
	assert.Empty(t, srs.DueCards(schedules, now, -1))
}

func TestDueCards_Empty(t *testing.T) {
	now := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, srs.DueCards(nil, now, 10))
}

func TestFindMastered(t *testing.T) {
	schedules := []models.FlashcardSchedule{
		{FlashcardID: 1, Repetitions: 5, EFactor: 300},
		{FlashcardID: 2, Repetitions: 5, EFactor: 299},
		{FlashcardID: 3, Repetitions: 4, EFactor: 310},
		{FlashcardID: 4, Repetitions: 5, EFactor: 330},
	}

	got := srs.FindMastered(schedules, 5)

	assert.Equal(t, []int64{1, 4}, got, "both thresholds must hold, ease boundary inclusive")
}

func TestFindMastered_None(t *testing.T) {
	schedules := []models.FlashcardSchedule{
		{FlashcardID: 1, Repetitions: 2, EFactor: 250},
	}

	assert.Empty(t, srs.FindMastered(schedules, 5))
}
