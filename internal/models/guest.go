package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Guest is an ad-hoc invitee without an account, tied to exactly one event.
// Duplicate guest emails per event are permitted.
type Guest struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Event     bson.ObjectID `bson:"event" json:"event"`
	InvitedBy bson.ObjectID `bson:"invited_by" json:"invited_by"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}
