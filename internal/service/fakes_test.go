package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"eventhub-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// In-memory stores for service tests. They mirror the repository contracts:
// finders return (nil, nil) on a miss, mutations succeed silently.

type fakeUserStore struct {
	users      []*models.User
	lastSearch struct {
		query string
		limit int
	}
}

func (s *fakeUserStore) add(name, email string) *models.User {
	u := &models.User{ID: bson.NewObjectID(), Name: name, Email: email, Role: models.RoleEmployee}
	s.users = append(s.users, u)
	return u
}

func (s *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	user.ID = bson.NewObjectID()
	s.users = append(s.users, user)
	return nil
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		for _, u := range s.users {
			if u.ID == id {
				out = append(out, *u)
				break
			}
		}
	}
	return out, nil
}

func (s *fakeUserStore) Search(ctx context.Context, query string, limit int) ([]models.UserRef, error) {
	s.lastSearch.query = query
	s.lastSearch.limit = limit
	q := strings.ToLower(query)
	var refs []models.UserRef
	for _, u := range s.users {
		if len(refs) == limit {
			break
		}
		if strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Email), q) {
			refs = append(refs, u.Ref())
		}
	}
	return refs, nil
}

type fakeEventStore struct {
	events []*models.Event
}

func (s *fakeEventStore) add(event *models.Event) *models.Event {
	event.ID = bson.NewObjectID()
	if event.Attendees == nil {
		event.Attendees = []bson.ObjectID{}
	}
	if event.Guests == nil {
		event.Guests = []bson.ObjectID{}
	}
	s.events = append(s.events, event)
	return event
}

func (s *fakeEventStore) get(id bson.ObjectID) *models.Event {
	for _, e := range s.events {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (s *fakeEventStore) Create(ctx context.Context, event *models.Event) error {
	s.add(event)
	return nil
}

func (s *fakeEventStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Event, error) {
	e := s.get(id)
	if e == nil {
		return nil, nil
	}
	clone := *e
	clone.Attendees = append([]bson.ObjectID{}, e.Attendees...)
	clone.Guests = append([]bson.ObjectID{}, e.Guests...)
	return &clone, nil
}

func (s *fakeEventStore) ListAll(ctx context.Context) ([]models.Event, error) {
	out := make([]models.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *fakeEventStore) SetFields(ctx context.Context, id bson.ObjectID, fields bson.M) error {
	e := s.get(id)
	for k, v := range fields {
		switch k {
		case "title":
			e.Title = v.(string)
		case "description":
			e.Description = v.(string)
		case "date":
			e.Date = v.(time.Time)
		case "venue":
			e.Venue = v.(string)
		case "agenda":
			e.Agenda = v.(string)
		case "speakers":
			e.Speakers = v.([]models.Speaker)
		case "capacity":
			e.Capacity = v.(int)
		}
	}
	return nil
}

func (s *fakeEventStore) AddAttendee(ctx context.Context, eventID, userID bson.ObjectID) error {
	e := s.get(eventID)
	e.Attendees = append(e.Attendees, userID)
	return nil
}

func (s *fakeEventStore) RemoveAttendee(ctx context.Context, eventID, userID bson.ObjectID) error {
	e := s.get(eventID)
	kept := e.Attendees[:0]
	for _, id := range e.Attendees {
		if id != userID {
			kept = append(kept, id)
		}
	}
	e.Attendees = kept
	return nil
}

func (s *fakeEventStore) AddGuestRef(ctx context.Context, eventID, guestID bson.ObjectID) error {
	e := s.get(eventID)
	e.Guests = append(e.Guests, guestID)
	return nil
}

func (s *fakeEventStore) RemoveGuestRef(ctx context.Context, eventID, guestID bson.ObjectID) error {
	e := s.get(eventID)
	kept := e.Guests[:0]
	for _, id := range e.Guests {
		if id != guestID {
			kept = append(kept, id)
		}
	}
	e.Guests = kept
	return nil
}

type fakeGuestStore struct {
	guests []*models.Guest
}

func (s *fakeGuestStore) Create(ctx context.Context, guest *models.Guest) error {
	guest.ID = bson.NewObjectID()
	s.guests = append(s.guests, guest)
	return nil
}

func (s *fakeGuestStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Guest, error) {
	for _, g := range s.guests {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

func (s *fakeGuestStore) FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.Guest, error) {
	var out []models.Guest
	for _, id := range ids {
		for _, g := range s.guests {
			if g.ID == id {
				out = append(out, *g)
				break
			}
		}
	}
	return out, nil
}

func (s *fakeGuestStore) Delete(ctx context.Context, id bson.ObjectID) error {
	kept := s.guests[:0]
	for _, g := range s.guests {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	s.guests = kept
	return nil
}

type fakeFeedbackStore struct {
	records []*models.Feedback
}

func (s *fakeFeedbackStore) Create(ctx context.Context, feedback *models.Feedback) error {
	feedback.ID = bson.NewObjectID()
	s.records = append(s.records, feedback)
	return nil
}

func (s *fakeFeedbackStore) FindByEventAndUser(ctx context.Context, eventID, userID bson.ObjectID) (*models.Feedback, error) {
	for _, f := range s.records {
		if f.Event == eventID && f.User == userID {
			clone := *f
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *fakeFeedbackStore) ListByEvent(ctx context.Context, eventID bson.ObjectID) ([]models.Feedback, error) {
	var out []models.Feedback
	for _, f := range s.records {
		if f.Event == eventID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (s *fakeFeedbackStore) UpdateRatingComment(ctx context.Context, id bson.ObjectID, rating int, comment string) error {
	for _, f := range s.records {
		if f.ID == id {
			f.Rating = rating
			f.Comment = comment
		}
	}
	return nil
}

type fakeRSVPStore struct {
	records []*models.RSVP
}

func (s *fakeRSVPStore) Create(ctx context.Context, rsvp *models.RSVP) error {
	rsvp.ID = bson.NewObjectID()
	s.records = append(s.records, rsvp)
	return nil
}

func (s *fakeRSVPStore) FindByEventAndUser(ctx context.Context, eventID, userID bson.ObjectID) (*models.RSVP, error) {
	for _, r := range s.records {
		if r.Event == eventID && r.User == userID {
			clone := *r
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *fakeRSVPStore) UpdateStatus(ctx context.Context, id bson.ObjectID, status string) error {
	for _, r := range s.records {
		if r.ID == id {
			r.Status = status
		}
	}
	return nil
}

// noopMailer satisfies the mailer interface for tests and counts sends.
type noopMailer struct {
	sent int
}

func (m *noopMailer) SendGuestInvite(ctx context.Context, guest *models.Guest, event *models.Event) error {
	m.sent++
	return nil
}
