package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"miniEvents/internal/models"
	"miniEvents/internal/storage"

	"github.com/google/uuid"
)

// Repository owns validated access to event records. Every mutation of a
// stored record goes through the per-event lock, so concurrent writers to
// the same id are serialized.
type Repository struct {
	store storage.Storage
	locks *keyedMutex
}

func NewRepository(store storage.Storage) *Repository {
	return &Repository{
		store: store,
		locks: newKeyedMutex(),
	}
}

// CreateEvent validates the input, allocates the id and createdAt and
// persists the new record with an empty attendee list.
func (r *Repository) CreateEvent(ctx context.Context, input models.CreateEventInput, creatorFid int64, creatorName string) (*models.Event, error) {
	if err := validateInput(input, creatorFid); err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:           uuid.New().String(),
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Date:         input.Date,
		Location:     strings.TrimSpace(input.Location),
		ImageURL:     input.ImageURL,
		CreatorFid:   creatorFid,
		CreatorName:  creatorName,
		Attendees:    []int64{},
		Category:     input.Category,
		MaxAttendees: input.MaxAttendees,
		Price:        input.Price,
		CreatedAt:    time.Now().UTC(),
	}

	if err := r.store.Put(ctx, event); err != nil {
		return nil, fmt.Errorf("put event: %w", err)
	}

	return event, nil
}

func (r *Repository) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, err := r.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	return event, nil
}

// UpdateEvent replaces the stored record with the given one. The id,
// creatorFid and createdAt of the stored record are kept; the caller must
// supply the complete desired state for everything else. Attendee invariants
// are not checked here, the RSVP coordinator is the only writer of the
// attendee list.
func (r *Repository) UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	return r.mutate(ctx, event.ID, func(current *models.Event) error {
		updated := *event
		updated.ID = current.ID
		updated.CreatorFid = current.CreatorFid
		updated.CreatedAt = current.CreatedAt
		if updated.Attendees == nil {
			updated.Attendees = []int64{}
		}

		*current = updated

		return nil
	})
}

// ListFilter narrows ListEvents results. The zero value selects everything.
type ListFilter struct {
	Upcoming bool
	Category string
}

// ListEvents returns matching events sorted by date ascending. Pure read,
// never mutates state.
func (r *Repository) ListEvents(ctx context.Context, filter ListFilter) ([]models.Event, error) {
	events, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	now := time.Now()

	filtered := make([]models.Event, 0, len(events))
	for _, event := range events {
		if filter.Upcoming && event.Date.Before(now) {
			continue
		}
		if filter.Category != "" && event.Category != filter.Category {
			continue
		}

		filtered = append(filtered, event)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})

	return filtered, nil
}

// mutate runs fn on the current record under the per-event lock and persists
// the result. fn sees a private copy owned by the store, never shared state.
func (r *Repository) mutate(ctx context.Context, id string, fn func(event *models.Event) error) (*models.Event, error) {
	unlock := r.locks.lock(id)
	defer unlock()

	event, err := r.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	if err = fn(event); err != nil {
		return nil, err
	}

	if err = r.store.Put(ctx, event); err != nil {
		return nil, fmt.Errorf("put event: %w", err)
	}

	return event, nil
}

func validateInput(input models.CreateEventInput, creatorFid int64) error {
	switch {
	case strings.TrimSpace(input.Title) == "":
		return fmt.Errorf("%w: title is required", ErrValidation)
	case strings.TrimSpace(input.Description) == "":
		return fmt.Errorf("%w: description is required", ErrValidation)
	case strings.TrimSpace(input.Location) == "":
		return fmt.Errorf("%w: location is required", ErrValidation)
	case input.Date.IsZero():
		return fmt.Errorf("%w: date is required", ErrValidation)
	case !input.Date.After(time.Now()):
		return fmt.Errorf("%w: event date must be in the future", ErrValidation)
	case creatorFid <= 0:
		return fmt.Errorf("%w: creatorFid is required", ErrValidation)
	case input.MaxAttendees < 0:
		return fmt.Errorf("%w: maxAttendees must be positive", ErrValidation)
	case input.Price < 0:
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	return nil
}
