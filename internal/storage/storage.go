package storage

import (
	"context"
	"errors"

	"miniEvents/internal/models"
)

// ErrEventNotFound signals an absent key. Absence is a normal outcome for
// Get, not a storage failure.
var ErrEventNotFound = errors.New("event not found")

// Storage is the keyed persistence port for event records. Implementations
// perform no validation and no read-modify-write serialization; callers that
// do get-then-put sequences must hold the per-event lock owned by the
// service layer.
type Storage interface {
	// Put inserts or overwrites the record at event.ID.
	Put(ctx context.Context, event *models.Event) error
	// Get returns the record at id, or ErrEventNotFound.
	Get(ctx context.Context, id string) (*models.Event, error)
	// List returns all records in unspecified order.
	List(ctx context.Context) ([]models.Event, error)
}
