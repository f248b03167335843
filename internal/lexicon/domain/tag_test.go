package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTag(t *testing.T) {
	tag := NewTag("仕事")
	assert.Equal(t, "仕事", tag.Name)
	assert.Equal(t, TagStateSuggested, tag.State)
	assert.Equal(t, 0, tag.UsageCount)
	assert.Nil(t, tag.LastUsedAt)
	assert.NotEqual(t, tag.ID, NewTag("仕事").ID)
}

func TestTag_PriorityScore(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		tag      Tag
		expected int
	}{
		{
			name:     "zero usage, never used",
			tag:      Tag{UsageCount: 0},
			expected: 0,
		},
		{
			name:     "usage only",
			tag:      Tag{UsageCount: 3},
			expected: 3,
		},
		{
			name:     "recency bonus",
			tag:      Tag{UsageCount: 3, LastUsedAt: &now},
			expected: 4,
		},
		{
			name:     "recency bonus without usage",
			tag:      Tag{UsageCount: 0, LastUsedAt: &now},
			expected: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.tag.PriorityScore())
		})
	}
}
