package core

import (
	"github.com/google/uuid"
)

// SessionID identifies one dashboard session. Each browser session gets its
// own ID via a cookie and holds its own view of the table.
type SessionID string

// NewSessionID creates a new unique session identifier using UUID v7 for
// time-ordered generation, falling back to v4.
func NewSessionID() SessionID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return SessionID(id.String())
}

// String returns the string representation.
func (id SessionID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty.
func (id SessionID) IsEmpty() bool {
	return id == ""
}
