// Package eventbus delivers suggestion and adoption events to observers.
// The UI layer subscribes in process; a RabbitMQ publisher variant
// forwards adoption events toward external destinations.
package eventbus

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event names published by the suggestion core.
const (
	EventTagSuggestionsUpdated = "suggestion.tags.updated"
	EventTemplateUpdated       = "suggestion.template.updated"
	EventTagAdopted            = "tag.adopted"
	EventTagDismissed          = "tag.dismissed"
)

// Event is a single occurrence on the bus.
type Event struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

// NewEvent builds an event with a fresh ID.
func NewEvent(name string, payload any) Event {
	return Event{
		ID:         uuid.New(),
		Name:       name,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Publisher sends events to interested parties. Publish failures must
// never propagate into the scoring path; implementations log and move on.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
