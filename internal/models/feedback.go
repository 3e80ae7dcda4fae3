package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Feedback holds the single rating+comment record for an (event, user) pair.
// Resubmission by the same user overwrites rating and comment in place.
type Feedback struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Event     bson.ObjectID `bson:"event" json:"event"`
	User      bson.ObjectID `bson:"user" json:"user"`
	Rating    int           `bson:"rating" json:"rating"`
	Comment   string        `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

// FeedbackEntry is a feedback record with the submitter's name attached, as
// returned by the aggregate view.
type FeedbackEntry struct {
	Feedback
	UserName string `json:"user_name"`
}

// FeedbackSummary is the aggregate view for one event: every record with
// submitter names, the arithmetic mean rating (0 when empty), and the count.
type FeedbackSummary struct {
	Feedback      []FeedbackEntry `json:"feedback"`
	AverageRating float64         `json:"averageRating"`
	TotalFeedback int             `json:"totalFeedback"`
}
