package types

import (
	"fmt"

	"github.com/google/uuid"
)

// TopicID represents a topic identifier assigned by the knowledge backend
type TopicID int

// String returns the string representation
func (id TopicID) String() string {
	return fmt.Sprintf("%d", id)
}

// Int returns the int representation
func (id TopicID) Int() int {
	return int(id)
}

// DocumentID represents a document identifier assigned by the knowledge backend
type DocumentID int

// String returns the string representation
func (id DocumentID) String() string {
	return fmt.Sprintf("%d", id)
}

// Int returns the int representation
func (id DocumentID) Int() int {
	return int(id)
}

// PersonID represents a person identifier assigned by the knowledge backend
type PersonID int

// String returns the string representation
func (id PersonID) String() string {
	return fmt.Sprintf("%d", id)
}

// SnapshotID identifies one fetch cycle's projected result
type SnapshotID string

// String returns the string representation
func (id SnapshotID) String() string {
	return string(id)
}

// NewSnapshotID creates a new SnapshotID using UUID v7
func NewSnapshotID() (SnapshotID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return SnapshotID(id.String()), nil
}
