package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExamTypeValid(t *testing.T) {
	for _, e := range []ExamType{ExamMidTerm, ExamEndTerm, ExamInternal, ExamPractical, ExamAssignment} {
		assert.True(t, e.Valid(), string(e))
	}
	assert.False(t, ExamType("Quiz").Valid())
	assert.False(t, ExamType("endterm").Valid(), "exam types are case sensitive")
}
