package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Oleksiy-Zhukov/studentsai/internal/grading"
)

// MockGrader is a mock implementation of grading.Grader
type MockGrader struct {
	mock.Mock
}

func (m *MockGrader) Grade(ctx context.Context, question, referenceAnswer, typedAnswer string) (*grading.GradeResult, error) {
	args := m.Called(ctx, question, referenceAnswer, typedAnswer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*grading.GradeResult), args.Error(1)
}
