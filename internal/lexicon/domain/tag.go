package domain

import (
	"time"

	"github.com/google/uuid"
)

// TagState describes where a tag sits in its suggestion lifecycle on the
// current memo draft. Dismissed is session-local and never persisted.
type TagState string

const (
	TagStateSuggested TagState = "suggested"
	TagStateAdopted   TagState = "adopted"
	TagStateDismissed TagState = "dismissed"
)

// Tag is a label attached to memos. Names are unique within the user's
// persisted lexicon; UsageCount only grows, on adoption.
type Tag struct {
	ID         uuid.UUID
	Name       string
	State      TagState
	UsageCount int
	LastUsedAt *time.Time
}

// NewTag creates a tag in the suggested state.
func NewTag(name string) Tag {
	return Tag{
		ID:    uuid.New(),
		Name:  name,
		State: TagStateSuggested,
	}
}

// PriorityScore is the ranking key derived from usage and recency.
// It is recomputed on read, never stored.
func (t Tag) PriorityScore() int {
	score := t.UsageCount
	if t.LastUsedAt != nil {
		score++
	}
	return score
}
