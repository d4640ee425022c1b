package service

import (
	"context"

	"miniEvents/internal/models"
)

// Coordinator is the sole writer of the attendee list. Join and Leave run
// under the repository's per-event lock, so two concurrent joins can never
// both pass the capacity check.
type Coordinator struct {
	repo *Repository
}

func NewCoordinator(repo *Repository) *Coordinator {
	return &Coordinator{repo: repo}
}

// Join registers userFid for the event. Fails with ErrAlreadyRegistered for
// duplicate RSVPs and ErrEventFull when the capacity limit is reached.
func (c *Coordinator) Join(ctx context.Context, eventID string, userFid int64) (*models.Event, error) {
	return c.repo.mutate(ctx, eventID, func(event *models.Event) error {
		if event.IsAttending(userFid) {
			return ErrAlreadyRegistered
		}
		if event.IsFull() {
			return ErrEventFull
		}

		event.Attendees = append(event.Attendees, userFid)

		return nil
	})
}

// Leave removes userFid from the event. Removing a non-member is a no-op
// that still returns the event; the order of the remaining attendees is
// preserved.
func (c *Coordinator) Leave(ctx context.Context, eventID string, userFid int64) (*models.Event, error) {
	return c.repo.mutate(ctx, eventID, func(event *models.Event) error {
		attendees := event.Attendees[:0]
		for _, fid := range event.Attendees {
			if fid != userFid {
				attendees = append(attendees, fid)
			}
		}

		event.Attendees = attendees

		return nil
	})
}
