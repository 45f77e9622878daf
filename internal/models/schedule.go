package models

import "time"

// E-factor is stored as integer hundredths so repeated updates stay exact
// across platforms (2.5 -> 250).
const (
	DefaultEFactor = 250
	MinEFactor     = 130
)

// FlashcardSchedule is the per-card spaced-repetition record.
type FlashcardSchedule struct {
	FlashcardID  int64     `json:"flashcard_id"`
	UserID       int64     `json:"user_id"`
	EFactor      int       `json:"e_factor"` // hundredths, >= MinEFactor
	IntervalDays int       `json:"interval_days"`
	DueDate      time.Time `json:"due_date"`
	Repetitions  int       `json:"repetitions"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewSchedule returns the schedule a card gets on first review: due today,
// default ease, one-day interval, no successful repetitions yet.
func NewSchedule(flashcardID, userID int64, today time.Time) FlashcardSchedule {
	return FlashcardSchedule{
		FlashcardID:  flashcardID,
		UserID:       userID,
		EFactor:      DefaultEFactor,
		IntervalDays: 1,
		DueDate:      DateOnly(today),
		Repetitions:  0,
	}
}

// EFactorValue returns the ease as a decimal for display and logging.
func (s FlashcardSchedule) EFactorValue() float64 {
	return float64(s.EFactor) / 100
}

// DateOnly truncates t to a UTC calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
