package service

import (
	"context"
	"log"
	"time"

	"eventhub-backend/internal/mailer"
	"eventhub-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// EventService enforces the event lifecycle rules: creation, creator-only
// edits, attendee membership under capacity, and guest management.
//
// Mutations follow a read-check-write pattern with no transactional wrapping;
// concurrent requests against the same event can race on the capacity check.
// This matches the store's consistency model and is accepted behavior.
type EventService struct {
	events EventStore
	users  UserStore
	guests GuestStore
	mailer mailer.Mailer
}

func NewEventService(events EventStore, users UserStore, guests GuestStore, m mailer.Mailer) *EventService {
	return &EventService{
		events: events,
		users:  users,
		guests: guests,
		mailer: m,
	}
}

type CreateEventInput struct {
	Title       string
	Description string
	Date        time.Time
	Venue       string
	Agenda      string
	Speakers    []models.Speaker
	Capacity    int
}

// Create makes a new event owned by creatorID. Title, date, venue, a positive
// capacity, and at least one speaker are required.
func (s *EventService) Create(ctx context.Context, creatorID bson.ObjectID, in CreateEventInput) (*models.Event, error) {
	if in.Title == "" || in.Date.IsZero() || in.Venue == "" || in.Capacity <= 0 || len(in.Speakers) == 0 {
		return nil, ErrMissingFields
	}

	event := &models.Event{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Venue:       in.Venue,
		Agenda:      in.Agenda,
		Speakers:    in.Speakers,
		Capacity:    in.Capacity,
		CreatedBy:   creatorID,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Edit applies a partial update. Only the creator may edit; zero-valued patch
// fields leave the stored value unchanged.
func (s *EventService) Edit(ctx context.Context, requesterID, eventID bson.ObjectID, patch models.EventPatch) (*models.Event, error) {
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

	fields := bson.M{}
	if patch.Title != "" {
		fields["title"] = patch.Title
		event.Title = patch.Title
	}
	if patch.Description != "" {
		fields["description"] = patch.Description
		event.Description = patch.Description
	}
	if !patch.Date.IsZero() {
		fields["date"] = patch.Date
		event.Date = patch.Date
	}
	if patch.Venue != "" {
		fields["venue"] = patch.Venue
		event.Venue = patch.Venue
	}
	if patch.Agenda != "" {
		fields["agenda"] = patch.Agenda
		event.Agenda = patch.Agenda
	}
	if len(patch.Speakers) > 0 {
		fields["speakers"] = patch.Speakers
		event.Speakers = patch.Speakers
	}
	if patch.Capacity > 0 {
		fields["capacity"] = patch.Capacity
		event.Capacity = patch.Capacity
	}

	if len(fields) > 0 {
		if err := s.events.SetFields(ctx, eventID, fields); err != nil {
			return nil, err
		}
	}
	return event, nil
}

// AddAttendeeByEmail resolves email to a user and appends them to the
// attendee set. Creator-only; rejects duplicates and full events.
func (s *EventService) AddAttendeeByEmail(ctx context.Context, requesterID, eventID bson.ObjectID, email string) (*models.User, error) {
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

	attendee, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if attendee == nil {
		return nil, ErrUserNotFound
	}

	if event.HasAttendee(attendee.ID) {
		return nil, ErrAlreadyAttendee
	}
	if event.IsFull() {
		return nil, ErrEventFull
	}

	if err := s.events.AddAttendee(ctx, eventID, attendee.ID); err != nil {
		return nil, err
	}
	return attendee, nil
}

// RemoveAttendee removes userID from the attendee set. Creator-only.
// Removing a user who is not in the set succeeds without error.
func (s *EventService) RemoveAttendee(ctx context.Context, requesterID, eventID, userID bson.ObjectID) error {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}
	if event.CreatedBy != requesterID {
		return ErrNotEventCreator
	}
	return s.events.RemoveAttendee(ctx, eventID, userID)
}

// SelfRegister adds the acting user to the attendee set, subject to the same
// duplicate and capacity checks as creator-driven adds.
func (s *EventService) SelfRegister(ctx context.Context, userID, eventID bson.ObjectID) error {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}
	if event.HasAttendee(userID) {
		return ErrAlreadyRegistered
	}
	if event.IsFull() {
		return ErrEventFull
	}
	return s.events.AddAttendee(ctx, eventID, userID)
}

// AddGuest creates a guest record and appends its reference to the event.
// Duplicate guest emails per event are allowed. The invite email is sent in
// the background and never fails the request.
func (s *EventService) AddGuest(ctx context.Context, requesterID, eventID bson.ObjectID, name, email string) (*models.Guest, error) {
	if name == "" || email == "" {
		return nil, ErrMissingFields
	}
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	guest := &models.Guest{
		Name:      name,
		Email:     email,
		Event:     eventID,
		InvitedBy: requesterID,
	}
	if err := s.guests.Create(ctx, guest); err != nil {
		return nil, err
	}
	if err := s.events.AddGuestRef(ctx, eventID, guest.ID); err != nil {
		return nil, err
	}

	go func() {
		if err := s.mailer.SendGuestInvite(context.Background(), guest, event); err != nil {
			log.Printf("Error sending guest invite: %v", err)
		}
	}()

	return guest, nil
}

// RemoveGuest detaches the guest from the event and deletes the guest record.
func (s *EventService) RemoveGuest(ctx context.Context, eventID, guestID bson.ObjectID) error {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}

	guest, err := s.guests.FindByID(ctx, guestID)
	if err != nil {
		return err
	}
	if guest == nil {
		return ErrGuestNotFound
	}

	if err := s.events.RemoveGuestRef(ctx, eventID, guestID); err != nil {
		return err
	}
	return s.guests.Delete(ctx, guestID)
}

// SearchUsers returns at most 10 users whose name or email contains query,
// case-insensitively. Only name and email are exposed.
func (s *EventService) SearchUsers(ctx context.Context, query string) ([]models.UserRef, error) {
	return s.users.Search(ctx, query, 10)
}

// Get returns one event with creator, attendees, and guests expanded.
func (s *EventService) Get(ctx context.Context, eventID bson.ObjectID) (*models.EventView, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	views, err := s.expand(ctx, []models.Event{*event})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// List returns all events, newest date first, expanded for display.
func (s *EventService) List(ctx context.Context) ([]models.EventView, error) {
	events, err := s.events.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, events)
}

// expand joins creator/attendee/guest references into full records. One batch
// lookup per collection regardless of how many events are expanded.
func (s *EventService) expand(ctx context.Context, events []models.Event) ([]models.EventView, error) {
	var userIDs, guestIDs []bson.ObjectID
	seen := map[bson.ObjectID]bool{}
	addUser := func(id bson.ObjectID) {
		if !seen[id] {
			seen[id] = true
			userIDs = append(userIDs, id)
		}
	}
	for _, e := range events {
		addUser(e.CreatedBy)
		for _, id := range e.Attendees {
			addUser(id)
		}
		guestIDs = append(guestIDs, e.Guests...)
	}

	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	guests, err := s.guests.FindByIDs(ctx, guestIDs)
	if err != nil {
		return nil, err
	}

	usersByID := make(map[bson.ObjectID]models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}
	guestsByID := make(map[bson.ObjectID]models.Guest, len(guests))
	for _, g := range guests {
		guestsByID[g.ID] = g
	}

	views := make([]models.EventView, 0, len(events))
	for _, e := range events {
		view := models.EventView{
			Event:        e,
			AttendeeList: []models.UserRef{},
			GuestList:    []models.Guest{},
		}
		if creator, ok := usersByID[e.CreatedBy]; ok {
			ref := creator.Ref()
			view.Creator = &ref
		}
		for _, id := range e.Attendees {
			if u, ok := usersByID[id]; ok {
				view.AttendeeList = append(view.AttendeeList, u.Ref())
			}
		}
		for _, id := range e.Guests {
			if g, ok := guestsByID[id]; ok {
				view.GuestList = append(view.GuestList, g)
			}
		}
		views = append(views, view)
	}
	return views, nil
}
