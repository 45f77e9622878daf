package grading_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oleksiy-Zhukov/studentsai/internal/grading"
)

func TestParseGradeResponse_Valid(t *testing.T) {
	raw := `{
		"score": 85,
		"quality_rating": 4,
		"verdict": "correct",
		"feedback": "Good answer, you missed the year.",
		"key_points_covered": 2,
		"key_points_missing": ["the year it happened"],
		"confidence": 90
	}`

	result, err := grading.ParseGradeResponse(raw)

	require.NoError(t, err)
	assert.Equal(t, 85, result.Score)
	assert.Equal(t, 4, result.Quality)
	assert.Equal(t, "correct", result.Verdict)
	assert.Equal(t, "Good answer, you missed the year.", result.Feedback)
	assert.Equal(t, 2, result.KeyPointsCovered)
	assert.Equal(t, []string{"the year it happened"}, result.KeyPointsMissing)
	assert.Equal(t, 90, result.Confidence)
}

func TestParseGradeResponse_TrimsWhitespace(t *testing.T) {
	raw := "\n  {\"score\": 50, \"quality_rating\": 3, \"verdict\": \"partial\", \"feedback\": \"ok\"}  \n"

	result, err := grading.ParseGradeResponse(raw)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Quality)
}

func TestParseGradeResponse_Malformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"not json at all",
		`{"score": 85, "quality_rating":`,
		`"just a string"`,
	} {
		_, err := grading.ParseGradeResponse(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestParseGradeResponse_QualityOutOfRange(t *testing.T) {
	for _, quality := range []string{"0", "6", "-1", "100"} {
		raw := `{"score": 50, "quality_rating": ` + quality + `, "verdict": "partial", "feedback": "x"}`

		_, err := grading.ParseGradeResponse(raw)

		assert.ErrorContains(t, err, "quality_rating out of range")
	}
}

func TestParseGradeResponse_UnknownVerdict(t *testing.T) {
	raw := `{"score": 50, "quality_rating": 3, "verdict": "maybe", "feedback": "x"}`

	_, err := grading.ParseGradeResponse(raw)

	assert.ErrorContains(t, err, "verdict unknown")
}

func TestParseGradeResponse_ClampsScores(t *testing.T) {
	raw := `{"score": 250, "quality_rating": 5, "verdict": "correct", "feedback": "x", "confidence": -10}`

	result, err := grading.ParseGradeResponse(raw)

	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 0, result.Confidence)
}

func TestNewOpenAIGrader_Defaults(t *testing.T) {
	g := grading.NewOpenAIGrader("test-key", "", 0)

	assert.NotNil(t, g)
}
