package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Speaker is an owned value embedded in an Event, not a referenced entity.
type Speaker struct {
	Name        string `bson:"name" json:"name"`
	Designation string `bson:"designation" json:"designation"`
}

type Event struct {
	ID          bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string          `bson:"title" json:"title"`
	Description string          `bson:"description,omitempty" json:"description,omitempty"`
	Date        time.Time       `bson:"date" json:"date"`
	Venue       string          `bson:"venue" json:"venue"`
	Agenda      string          `bson:"agenda,omitempty" json:"agenda,omitempty"`
	Speakers    []Speaker       `bson:"speakers" json:"speakers"`
	Capacity    int             `bson:"capacity" json:"capacity"`
	CreatedBy   bson.ObjectID   `bson:"created_by" json:"created_by"`
	Attendees   []bson.ObjectID `bson:"attendees" json:"attendees"`
	Guests      []bson.ObjectID `bson:"guests" json:"guests"`
	CreatedAt   time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `bson:"updated_at" json:"updated_at"`
}

// HasAttendee reports whether userID is in the attendee set.
func (e *Event) HasAttendee(userID bson.ObjectID) bool {
	for _, id := range e.Attendees {
		if id == userID {
			return true
		}
	}
	return false
}

// IsFull reports whether the attendee set has reached capacity.
func (e *Event) IsFull() bool {
	return len(e.Attendees) >= e.Capacity
}

// EventView is an Event with creator, attendee, and guest references expanded
// into full records for display. The join is performed by the lifecycle
// service before returning results.
type EventView struct {
	Event
	Creator      *UserRef  `json:"creator,omitempty"`
	AttendeeList []UserRef `json:"attendee_list"`
	GuestList    []Guest   `json:"guest_list"`
}

// EventPatch carries a partial update. Zero-valued fields are left unchanged,
// mirroring the field-if-provided update semantics of the edit operation.
type EventPatch struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	Agenda      string    `json:"agenda"`
	Speakers    []Speaker `json:"speakers"`
	Capacity    int       `json:"capacity"`
}
