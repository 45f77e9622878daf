package srs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
	"github.com/Oleksiy-Zhukov/studentsai/internal/srs"
)

func TestUpdateMastery_Adjustments(t *testing.T) {
	tests := []struct {
		name        string
		mastery     int
		performance int
		expected    int
	}{
		{"strong review gains 20", 40, 80, 60},
		{"perfect review gains 20", 40, 100, 60},
		{"gain is capped at 100", 90, 95, 100},
		{"weak review loses 10", 40, 49, 30},
		{"zero score loses 10", 40, 0, 30},
		{"loss is floored at 0", 5, 10, 0},
		{"middling score leaves mastery alone", 40, 50, 40},
		{"79 is still middling", 40, 79, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := models.FlashcardMastery{MasteryLevel: tt.mastery}

			updated := srs.UpdateMastery(m, tt.performance, 1)

			assert.Equal(t, tt.expected, updated.MasteryLevel)
		})
	}
}

func TestUpdateMastery_Counters(t *testing.T) {
	m := models.FlashcardMastery{ReviewCount: 3, LastPerformance: 20}

	updated := srs.UpdateMastery(m, 65, 1)

	assert.Equal(t, 4, updated.ReviewCount)
	assert.Equal(t, 65, updated.LastPerformance)
}

func TestUpdateMastery_RecentlyLearnedTag(t *testing.T) {
	t.Run("strong review with enough streak adds the tag", func(t *testing.T) {
		m := srs.UpdateMastery(models.FlashcardMastery{}, 90, 3)
		assert.True(t, m.HasTag(models.TagRecentlyLearned))
	})

	t.Run("strong review with a short streak does not tag", func(t *testing.T) {
		m := srs.UpdateMastery(models.FlashcardMastery{}, 90, 2)
		assert.False(t, m.HasTag(models.TagRecentlyLearned))
	})

	t.Run("weak review removes the tag", func(t *testing.T) {
		m := models.FlashcardMastery{Tags: []string{models.TagRecentlyLearned}}
		m = srs.UpdateMastery(m, 30, 0)
		assert.False(t, m.HasTag(models.TagRecentlyLearned))
	})

	t.Run("middling review leaves the tag in place", func(t *testing.T) {
		m := models.FlashcardMastery{Tags: []string{models.TagRecentlyLearned}}
		m = srs.UpdateMastery(m, 60, 4)
		assert.True(t, m.HasTag(models.TagRecentlyLearned))
	})

	t.Run("tagging twice does not duplicate", func(t *testing.T) {
		m := models.FlashcardMastery{}
		m = srs.UpdateMastery(m, 90, 3)
		m = srs.UpdateMastery(m, 90, 4)
		assert.Equal(t, []string{models.TagRecentlyLearned}, m.Tags)
	})

	t.Run("other tags survive removal", func(t *testing.T) {
		m := models.FlashcardMastery{Tags: []string{"biology", models.TagRecentlyLearned}}
		m = srs.UpdateMastery(m, 10, 0)
		assert.Equal(t, []string{"biology"}, m.Tags)
	})
}
