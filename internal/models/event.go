package models

import "time"

// Event is the off-chain record of a single event. Attendees holds FIDs in
// RSVP order and never contains duplicates. MaxAttendees == 0 means the
// event has no capacity limit.
type Event struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Date           time.Time `json:"date"`
	Location       string    `json:"location"`
	ImageURL       string    `json:"imageUrl,omitempty"`
	CreatorFid     int64     `json:"creatorFid"`
	CreatorName    string    `json:"creatorName,omitempty"`
	CreatorAddress string    `json:"creatorAddress,omitempty"`
	Attendees      []int64   `json:"attendees"`
	Category       string    `json:"category,omitempty"`
	MaxAttendees   int       `json:"maxAttendees,omitempty"`
	Price          float64   `json:"price,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CreateEventInput carries the caller-supplied fields of a new event.
// ID, attendees and createdAt are always allocated server-side.
type CreateEventInput struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	Location     string    `json:"location"`
	ImageURL     string    `json:"imageUrl"`
	Category     string    `json:"category"`
	MaxAttendees int       `json:"maxAttendees"`
	Price        float64   `json:"price"`
}

// IsAttending reports whether fid is already in the attendee list.
func (e *Event) IsAttending(fid int64) bool {
	for _, a := range e.Attendees {
		if a == fid {
			return true
		}
	}
	return false
}

// IsFull reports whether the event has a capacity limit and has reached it.
func (e *Event) IsFull() bool {
	return e.MaxAttendees > 0 && len(e.Attendees) >= e.MaxAttendees
}
