package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oleksiy-Zhukov/studentsai/internal/models"
	"github.com/Oleksiy-Zhukov/studentsai/internal/repository"
	"github.com/Oleksiy-Zhukov/studentsai/internal/repository/sqlite"
	"github.com/Oleksiy-Zhukov/studentsai/internal/testutil"
)

func newHistoryTestEnv(t *testing.T) (repository.FlashcardRepository, repository.ReviewHistoryRepository) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return sqlite.NewFlashcardRepository(database.DB), sqlite.NewReviewHistoryRepository(database.DB)
}

func TestReviewHistoryRepository_InsertAndList(t *testing.T) {
	cards, history := newHistoryTestEnv(t)
	ctx := context.Background()

	cardID, err := cards.Insert(ctx, models.Flashcard{UserID: 1, Question: "Q", Answer: "A"})
	require.NoError(t, err)

	for _, quality := range []int{2, 4, 5} {
		id, err := history.Insert(ctx, models.ReviewHistory{
			FlashcardID:      cardID,
			Quality:          quality,
			PerformanceScore: quality * 20,
			Verdict:          models.VerdictCorrect,
			GradedBy:         models.GradedByScorer,
		})
		require.NoError(t, err)
		require.Positive(t, id)
	}

	got, err := history.ListRecent(ctx, cardID, 10)

	require.NoError(t, err)
	require.Len(t, got, 3)
	// Same timestamp for all three, so the id tiebreak puts newest first.
	assert.Equal(t, 5, got[0].Quality)
	assert.Equal(t, 2, got[2].Quality)
	assert.False(t, got[0].ReviewedAt.IsZero())
}

func TestReviewHistoryRepository_ListLimit(t *testing.T) {
	cards, history := newHistoryTestEnv(t)
	ctx := context.Background()

	cardID, err := cards.Insert(ctx, models.Flashcard{UserID: 1, Question: "Q", Answer: "A"})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := history.Insert(ctx, models.ReviewHistory{
			FlashcardID: cardID, Quality: 3, PerformanceScore: 60,
			Verdict: models.VerdictPartial, GradedBy: models.GradedByManual,
		})
		require.NoError(t, err)
	}

	got, err := history.ListRecent(ctx, cardID, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// A non-positive limit falls back to the default rather than erroring.
	got, err = history.ListRecent(ctx, cardID, 0)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestReviewHistoryRepository_ListEmpty(t *testing.T) {
	_, history := newHistoryTestEnv(t)

	got, err := history.ListRecent(context.Background(), 42, 10)

	require.NoError(t, err)
	assert.Empty(t, got)
}
