package grading

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Oleksiy-Zhukov/studentsai/internal/logger"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout bounds a single grading call. The caller never
	// waits longer than this before falling back to the scorer.
	DefaultTimeout = 10 * time.Second
)

const systemPrompt = `You grade a student's typed flashcard answer against the reference answer.
Respond with a single JSON object with exactly these keys:
"score" (integer 0-100), "quality_rating" (integer 1-5),
"verdict" ("correct", "partial" or "incorrect"), "feedback" (one or two sentences for the student),
"key_points_covered" (integer), "key_points_missing" (array of short strings),
"confidence" (integer 0-100).`

// OpenAIGrader grades answers through the OpenAI chat completions API.
type OpenAIGrader struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	log     *logger.Logger
}

var _ Grader = (*OpenAIGrader)(nil)

// NewOpenAIGrader creates a grader for the given API key. Model and
// timeout fall back to the package defaults when zero.
func NewOpenAIGrader(apiKey, model string, timeout time.Duration) *OpenAIGrader {
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OpenAIGrader{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
		log:     logger.Default().WithPrefix("grader"),
	}
}

func (g *OpenAIGrader) Grade(ctx context.Context, question, referenceAnswer, typedAnswer string) (*GradeResult, error) {
	log := logger.FromContext(ctx).WithPrefix("grader")

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := fmt.Sprintf("Question: %s\n\nReference answer: %s\n\nStudent's answer: %s",
		question, referenceAnswer, typedAnswer)

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		log.Warn("grading call failed after %v: %v", time.Since(start), err)
		return nil, fmt.Errorf("grade answer: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("grade answer: empty response from %s", g.model)
	}

	result, err := ParseGradeResponse(resp.Choices[0].Message.Content)
	if err != nil {
		log.Warn("grading response rejected: %v", err)
		return nil, err
	}

	log.Debug("graded answer in %v: quality=%d score=%d verdict=%s",
		time.Since(start), result.Quality, result.Score, result.Verdict)
	return result, nil
}

// ParseGradeResponse decodes and validates a grader JSON payload. Scores
// and confidence are clamped to their ranges; a quality rating outside
// 1-5 or an unknown verdict rejects the whole response.
func ParseGradeResponse(raw string) (*GradeResult, error) {
	var result GradeResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &result); err != nil {
		return nil, fmt.Errorf("malformed grading response: %w", err)
	}

	if result.Quality < 1 || result.Quality > 5 {
		return nil, fmt.Errorf("grading response quality_rating out of range: %d", result.Quality)
	}
	switch result.Verdict {
	case "correct", "partial", "incorrect":
	default:
		return nil, fmt.Errorf("grading response verdict unknown: %q", result.Verdict)
	}

	result.Score = clamp(result.Score, 0, 100)
	result.Confidence = clamp(result.Confidence, 0, 100)
	return &result, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
