package service

import (
	"context"
	"time"

	"eventhub-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// FeedbackService enforces the feedback rules: the event must have ended, the
// submitter must be an attendee, and there is exactly one record per
// (event, user) pair — resubmission overwrites in place.
type FeedbackService struct {
	feedback FeedbackStore
	events   EventStore
	users    UserStore
	now      func() time.Time
}

func NewFeedbackService(feedback FeedbackStore, events EventStore, users UserStore) *FeedbackService {
	return &FeedbackService{
		feedback: feedback,
		events:   events,
		users:    users,
		now:      time.Now,
	}
}

// Submit records or overwrites the caller's feedback for an event. Returns
// true when a new record was created, false when an existing one was updated.
func (s *FeedbackService) Submit(ctx context.Context, userID, eventID bson.ObjectID, rating int, comment string) (bool, *models.Feedback, error) {
	if rating < 1 || rating > 5 {
		return false, nil, ErrInvalidRating
	}

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return false, nil, err
	}
	if event == nil {
		return false, nil, ErrEventNotFound
	}

	// Feedback window opens once the event date is strictly in the past.
	if !event.Date.Before(s.now()) {
		return false, nil, ErrEventNotEnded
	}

	if !event.HasAttendee(userID) {
		return false, nil, ErrNotAttendee
	}

	existing, err := s.feedback.FindByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return false, nil, err
	}
	if existing != nil {
		if err := s.feedback.UpdateRatingComment(ctx, existing.ID, rating, comment); err != nil {
			return false, nil, err
		}
		existing.Rating = rating
		existing.Comment = comment
		return false, existing, nil
	}

	feedback := &models.Feedback{
		Event:   eventID,
		User:    userID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		return false, nil, err
	}
	return true, feedback, nil
}

// GetMine returns the caller's own feedback for an event.
func (s *FeedbackService) GetMine(ctx context.Context, userID, eventID bson.ObjectID) (*models.Feedback, error) {
	feedback, err := s.feedback.FindByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, ErrFeedbackNotFound
	}
	return feedback, nil
}

// GetAll returns every feedback record for an event with submitter names,
// the mean rating (0 when there are no records), and the count. Restricted
// to the event creator.
func (s *FeedbackService) GetAll(ctx context.Context, requesterID, eventID bson.ObjectID) (*models.FeedbackSummary, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	if event.CreatedBy != requesterID {
		return nil, ErrNotEventCreator
	}

	records, err := s.feedback.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]bson.ObjectID, 0, len(records))
	for _, f := range records {
		userIDs = append(userIDs, f.User)
	}
	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	namesByID := make(map[bson.ObjectID]string, len(users))
	for _, u := range users {
		namesByID[u.ID] = u.Name
	}

	summary := &models.FeedbackSummary{
		Feedback: make([]models.FeedbackEntry, 0, len(records)),
	}
	total := 0
	for _, f := range records {
		summary.Feedback = append(summary.Feedback, models.FeedbackEntry{
			Feedback: f,
			UserName: namesByID[f.User],
		})
		total += f.Rating
	}
	summary.TotalFeedback = len(records)
	if len(records) > 0 {
		summary.AverageRating = float64(total) / float64(len(records))
	}
	return summary, nil
}
