package domain_models

import (
	"time"
)

// DefaultAttendeeImage is used when an attendee has no profile photo.
const DefaultAttendeeImage = "/assets/user.png"

type Activity struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	City        string    `json:"city"`
	Venue       string    `json:"venue"`

	Attendees []Attendee `json:"attendees"`

	// Session-local flags derived against the logged-in user.
	// Never sent to the remote service.
	IsGoing bool `json:"-"`
	IsHost  bool `json:"-"`
}

type Attendee struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Image       string `json:"image,omitempty"`
	IsHost      bool   `json:"is_host"`
}

// HasAttendee reports whether username already appears in the attendee list.
func (a *Activity) HasAttendee(username string) bool {
	for _, attendee := range a.Attendees {
		if attendee.Username == username {
			return true
		}
	}
	return false
}

// Clone returns a copy of the activity with its own attendee slice, so
// callers can hand entities across ownership boundaries safely.
func (a *Activity) Clone() *Activity {
	clone := *a
	clone.Attendees = make([]Attendee, len(a.Attendees))
	copy(clone.Attendees, a.Attendees)
	return &clone
}
