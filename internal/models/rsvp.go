package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// RSVP statuses.
const (
	RSVPGoing      = "Going"
	RSVPNotGoing   = "Not Going"
	RSVPInterested = "Interested"
)

// ValidRSVPStatus reports whether s is one of the accepted statuses.
func ValidRSVPStatus(s string) bool {
	return s == RSVPGoing || s == RSVPNotGoing || s == RSVPInterested
}

// RSVP is a user's declared intent for an event, one record per (event, user)
// pair, updated in place on change.
type RSVP struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	User      bson.ObjectID `bson:"user" json:"user"`
	Event     bson.ObjectID `bson:"event" json:"event"`
	Status    string        `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}
