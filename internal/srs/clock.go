// Package srs implements the spaced-repetition scheduling core: the SM-2
// style interval clock, mastery tracking, due-card ranking, and the
// mastered-card scan. Everything here is a pure function over the records
// in internal/models, so concurrent request handlers can call in freely;
// serializing writes to a given card is the repository's job.
package srs

import (
	"time"

	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
)

// SuccessThreshold is the lowest quality rating counted as a successful
// recall. Below it the repetition streak resets.
const SuccessThreshold = 3

// Advance returns the schedule after one review at the given quality
// (clamped to 0..5). The returned schedule always satisfies
// EFactor >= MinEFactor, IntervalDays >= 1 and DueDate == today + interval.
func Advance(s models.FlashcardSchedule, quality int, today time.Time) models.FlashcardSchedule {
	if quality < 0 {
		quality = 0
	}
	if quality > 5 {
		quality = 5
	}

	if quality < SuccessThreshold {
		s.Repetitions = 0
		s.IntervalDays = 1
	} else {
		s.Repetitions++
		switch {
		case s.Repetitions == 1:
			s.IntervalDays = 1
		case s.Repetitions == 2:
			s.IntervalDays = 6
		default:
			// Previous interval times the ease as it stood before this
			// review, rounded to whole days.
			s.IntervalDays = (s.IntervalDays*s.EFactor + 50) / 100
			if s.IntervalDays < 1 {
				s.IntervalDays = 1
			}
		}
	}

	// SM-2 ease adaptation, in hundredths so the arithmetic is exact:
	// delta = 0.1 - (5-q)*(0.08 + (5-q)*0.02).
	miss := 5 - quality
	s.EFactor += 10 - miss*(8+2*miss)
	if s.EFactor < models.MinEFactor {
		s.EFactor = models.MinEFactor
	}

	s.DueDate = models.DateOnly(today).AddDate(0, 0, s.IntervalDays)
	return s
}
