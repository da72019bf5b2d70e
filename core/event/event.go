package event

import (
	"time"

	"github.com/google/uuid"
)

// Event is a named occurrence with an ordered argument list.
// The arguments are opaque to the bus; consumers type-assert what they need.
type Event struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Args []any     `json:"args,omitempty"`
	At   time.Time `json:"at"`
}

// New creates an Event with an auto-generated ID and timestamp.
//
// Example:
//
//	evt := event.New("command", invocationCtx)
//	// evt.ID is a UUID, evt.At is time.Now()
func New(name string, args ...any) Event {
	return Event{
		ID:   uuid.New().String(),
		Name: name,
		Args: args,
		At:   time.Now(),
	}
}
