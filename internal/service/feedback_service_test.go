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

func newTestFeedbackService() (*FeedbackService, *fakeFeedbackStore, *fakeEventStore, *fakeUserStore) {
	feedback := &fakeFeedbackStore{}
	events := &fakeEventStore{}
	users := &fakeUserStore{}
	svc := NewFeedbackService(feedback, events, users)
	return svc, feedback, events, users
}

// endedEvent returns an event whose date is in the past with the given
// attendees registered.
func endedEvent(events *fakeEventStore, creator bson.ObjectID, attendees ...bson.ObjectID) *models.Event {
	return events.add(&models.Event{
		Title: "Retro", Venue: "Hall", Date: time.Now().Add(-24 * time.Hour),
		CreatedBy: creator, Capacity: 10, Attendees: attendees,
	})
}

func TestSubmitFeedbackValidation(t *testing.T) {
	svc, _, events, _ := newTestFeedbackService()
	user := bson.NewObjectID()
	event := endedEvent(events, bson.NewObjectID(), user)

	for _, rating := range []int{0, -1, 6} {
		_, _, err := svc.Submit(context.Background(), user, event.ID, rating, "")
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}

	_, _, err := svc.Submit(context.Background(), user, bson.NewObjectID(), 4, "")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestSubmitFeedbackWindow(t *testing.T) {
	svc, _, events, _ := newTestFeedbackService()
	user := bson.NewObjectID()
	future := events.add(&models.Event{
		Title: "Upcoming", Venue: "Hall", Date: time.Now().Add(24 * time.Hour),
		CreatedBy: bson.NewObjectID(), Capacity: 10, Attendees: []bson.ObjectID{user},
	})

	// Before the event date the window is closed even for attendees.
	_, _, err := svc.Submit(context.Background(), user, future.ID, 5, "great")
	assert.ErrorIs(t, err, ErrEventNotEnded)

	// An event dated exactly now is not strictly in the past.
	fixed := time.Now()
	svc.now = func() time.Time { return fixed }
	boundary := events.add(&models.Event{
		Title: "Boundary", Venue: "Hall", Date: fixed,
		CreatedBy: bson.NewObjectID(), Capacity: 10, Attendees: []bson.ObjectID{user},
	})
	_, _, err = svc.Submit(context.Background(), user, boundary.ID, 5, "great")
	assert.ErrorIs(t, err, ErrEventNotEnded)
}

func TestSubmitFeedbackAttendeeOnly(t *testing.T) {
	svc, _, events, _ := newTestFeedbackService()
	event := endedEvent(events, bson.NewObjectID())

	_, _, err := svc.Submit(context.Background(), bson.NewObjectID(), event.ID, 4, "")
	assert.ErrorIs(t, err, ErrNotAttendee)
}

func TestSubmitFeedbackUpsert(t *testing.T) {
	svc, feedback, events, _ := newTestFeedbackService()
	user := bson.NewObjectID()
	event := endedEvent(events, bson.NewObjectID(), user)

	created, first, err := svc.Submit(context.Background(), user, event.ID, 5, "excellent")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 5, first.Rating)

	created, second, err := svc.Submit(context.Background(), user, event.ID, 2, "on reflection")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	// Exactly one stored record, carrying the second call's values.
	require.Len(t, feedback.records, 1)
	assert.Equal(t, 2, feedback.records[0].Rating)
	assert.Equal(t, "on reflection", feedback.records[0].Comment)
}

func TestGetMine(t *testing.T) {
	svc, _, events, _ := newTestFeedbackService()
	user := bson.NewObjectID()
	event := endedEvent(events, bson.NewObjectID(), user)

	_, err := svc.GetMine(context.Background(), user, event.ID)
	assert.ErrorIs(t, err, ErrFeedbackNotFound)

	_, _, err = svc.Submit(context.Background(), user, event.ID, 3, "fine")
	require.NoError(t, err)

	mine, err := svc.GetMine(context.Background(), user, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, mine.Rating)
	assert.Equal(t, "fine", mine.Comment)
}

func TestGetAllAggregates(t *testing.T) {
	svc, _, events, users := newTestFeedbackService()
	creator := users.add("Owner", "owner@corp.test")
	alice := users.add("Alice", "alice@corp.test")
	bob := users.add("Bob", "bob@corp.test")
	event := endedEvent(events, creator.ID, alice.ID, bob.ID)

	summary, err := svc.GetAll(context.Background(), creator.ID, event.ID)
	require.NoError(t, err)
	assert.Zero(t, summary.AverageRating, "mean is 0 with no feedback")
	assert.Zero(t, summary.TotalFeedback)

	_, _, err = svc.Submit(context.Background(), alice.ID, event.ID, 5, "")
	require.NoError(t, err)
	_, _, err = svc.Submit(context.Background(), bob.ID, event.ID, 2, "")
	require.NoError(t, err)

	summary, err = svc.GetAll(context.Background(), creator.ID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalFeedback)
	assert.InDelta(t, 3.5, summary.AverageRating, 1e-9)
	require.Len(t, summary.Feedback, 2)
	names := []string{summary.Feedback[0].UserName, summary.Feedback[1].UserName}
	assert.ElementsMatch(t, []string{"Alice", "Bob"}, names)
}

func TestGetAllCreatorOnly(t *testing.T) {
	svc, _, events, users := newTestFeedbackService()
	creator := users.add("Owner", "owner@corp.test")
	event := endedEvent(events, creator.ID)

	_, err := svc.GetAll(context.Background(), bson.NewObjectID(), event.ID)
	assert.ErrorIs(t, err, ErrNotEventCreator)

	_, err = svc.GetAll(context.Background(), creator.ID, bson.NewObjectID())
	assert.ErrorIs(t, err, ErrEventNotFound)
}
