package service

import (
	"context"
	"testing"
	"time"

	"eventhub-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestSetRSVP(t *testing.T) {
	rsvps := &fakeRSVPStore{}
	events := &fakeEventStore{}
	svc := NewRSVPService(rsvps, events)
	user := bson.NewObjectID()
	event := events.add(&models.Event{Title: "Summit", Venue: "Hall", Date: time.Now(), CreatedBy: bson.NewObjectID(), Capacity: 5})

	_, err := svc.Set(context.Background(), user, event.ID, "Maybe")
	assert.ErrorIs(t, err, ErrInvalidRSVPStatus)

	_, err = svc.Set(context.Background(), user, bson.NewObjectID(), models.RSVPGoing)
	assert.ErrorIs(t, err, ErrEventNotFound)

	rsvp, err := svc.Set(context.Background(), user, event.ID, models.RSVPInterested)
	require.NoError(t, err)
	assert.Equal(t, models.RSVPInterested, rsvp.Status)

	// Changing the answer updates the same record.
	updated, err := svc.Set(context.Background(), user, event.ID, models.RSVPNotGoing)
	require.NoError(t, err)
	assert.Equal(t, rsvp.ID, updated.ID)
	require.Len(t, rsvps.records, 1)
	assert.Equal(t, models.RSVPNotGoing, rsvps.records[0].Status)
}

func TestGetMyRSVP(t *testing.T) {
	rsvps := &fakeRSVPStore{}
	events := &fakeEventStore{}
	svc := NewRSVPService(rsvps, events)
	user := bson.NewObjectID()
	event := events.add(&models.Event{Title: "Summit", Venue: "Hall", Date: time.Now(), CreatedBy: bson.NewObjectID(), Capacity: 5})

	_, err := svc.GetMine(context.Background(), user, event.ID)
	assert.ErrorIs(t, err, ErrRSVPNotFound)

	_, err = svc.Set(context.Background(), user, event.ID, models.RSVPGoing)
	require.NoError(t, err)

	mine, err := svc.GetMine(context.Background(), user, event.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RSVPGoing, mine.Status)
}
