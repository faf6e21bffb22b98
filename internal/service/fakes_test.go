package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/eventra/eventra-backend/internal/model"
	"github.com/eventra/eventra-backend/internal/repository"
)

// In-memory stores mirroring the repository contracts, including the atomic
// seat accounting and the (event, phone) uniqueness rule.

type fakeEventStore struct {
	mu     sync.Mutex
	events map[string]*model.Event
}

func newFakeEventStore(events ...*model.Event) *fakeEventStore {
	s := &fakeEventStore{events: make(map[string]*model.Event)}
	for _, e := range events {
		cp := *e
		s.events[e.ID] = &cp
	}
	return s
}

func (s *fakeEventStore) Create(_ context.Context, e *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *e
	s.events[e.ID] = &cp
	return nil
}

func (s *fakeEventStore) GetByID(_ context.Context, id string) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (s *fakeEventStore) Update(_ context.Context, e *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[e.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *e
	s.events[e.ID] = &cp
	return nil
}

func (s *fakeEventStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.events, id)
	return nil
}

func (s *fakeEventStore) List(_ context.Context, f model.EventFilter) ([]model.Event, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Event
	for _, e := range s.events {
		if f.HosterID != "" && e.HosterID != f.HosterID {
			continue
		}
		if len(f.Statuses) > 0 {
			match := false
			for _, st := range f.Statuses {
				if e.Status == st {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, *e)
	}
	return out, len(out), nil
}

func (s *fakeEventStore) Categories(context.Context) ([]string, error) { return nil, nil }

func (s *fakeEventStore) IncrementViews(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.events[id]; ok {
		e.Views++
	}
	return nil
}

func (s *fakeEventStore) ReserveSeats(_ context.Context, eventID string, count int) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[eventID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if !e.Status.Bookable() {
		return nil, repository.ErrNotBookable
	}
	if count > e.AvailableSeats() {
		return nil, repository.ErrCapacityExceeded
	}
	e.BookedSeats += count
	cp := *e
	return &cp, nil
}

func (s *fakeEventStore) ReleaseSeats(_ context.Context, eventID string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[eventID]
	if !ok {
		return repository.ErrNotFound
	}
	e.BookedSeats -= count
	if e.BookedSeats < 0 {
		e.BookedSeats = 0
	}
	return nil
}

type fakeReservationStore struct {
	mu           sync.Mutex
	reservations map[string]*model.Reservation
	failCreate   error
}

func newFakeReservationStore() *fakeReservationStore {
	return &fakeReservationStore{reservations: make(map[string]*model.Reservation)}
}

func (s *fakeReservationStore) Create(_ context.Context, res *model.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failCreate != nil {
		return s.failCreate
	}
	cp := *res
	s.reservations[res.ID] = &cp
	return nil
}

func (s *fakeReservationStore) GetByID(_ context.Context, id string) (*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.reservations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *res
	return &cp, nil
}

func (s *fakeReservationStore) SetStatus(_ context.Context, id string, status model.ReservationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.reservations[id]
	if !ok {
		return repository.ErrNotFound
	}
	res.Status = status
	return nil
}

func (s *fakeReservationStore) SetPaymentStatus(_ context.Context, id string, status model.PaymentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.reservations[id]
	if !ok {
		return repository.ErrNotFound
	}
	res.PaymentStatus = status
	return nil
}

func (s *fakeReservationStore) List(_ context.Context, f model.ReservationFilter) ([]model.Reservation, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Reservation
	for _, res := range s.reservations {
		if f.EventID != "" && res.EventID != f.EventID {
			continue
		}
		if f.HosterID != "" && res.HosterID != f.HosterID {
			continue
		}
		if f.Phone != "" && res.Phone != f.Phone {
			continue
		}
		if f.Status != "" && res.Status != f.Status {
			continue
		}
		out = append(out, *res)
	}
	return out, len(out), nil
}

func (s *fakeReservationStore) CountActiveByEvent(_ context.Context, eventID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, res := range s.reservations {
		if res.EventID == eventID && res.Status != model.ReservationCancelled {
			n++
		}
	}
	return n, nil
}

type fakeGuestStore struct {
	mu     sync.Mutex
	guests map[string]*model.GuestEntry
}

func newFakeGuestStore() *fakeGuestStore {
	return &fakeGuestStore{guests: make(map[string]*model.GuestEntry)}
}

func (s *fakeGuestStore) Create(_ context.Context, g *model.GuestEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.guests {
		if existing.EventID == g.EventID && existing.Phone == g.Phone {
			return repository.ErrDuplicateGuest
		}
	}
	// Mirrors the schema: only reservation-linked entries may exceed the cap.
	if g.GroupSize > model.MaxGroupSize && g.ReservationID == nil {
		return fmt.Errorf("group size %d exceeds cap", g.GroupSize)
	}
	cp := *g
	s.guests[g.ID] = &cp
	return nil
}

func (s *fakeGuestStore) GetByReservation(_ context.Context, reservationID string) (*model.GuestEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.guests {
		if g.ReservationID != nil && *g.ReservationID == reservationID {
			cp := *g
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeGuestStore) GetByID(_ context.Context, id string) (*model.GuestEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.guests[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (s *fakeGuestStore) Update(_ context.Context, g *model.GuestEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.guests[g.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *g
	s.guests[g.ID] = &cp
	return nil
}

func (s *fakeGuestStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.guests[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.guests, id)
	return nil
}

func (s *fakeGuestStore) List(_ context.Context, f model.GuestFilter) ([]model.GuestEntry, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.GuestEntry
	for _, g := range s.guests {
		if f.EventID != "" && g.EventID != f.EventID {
			continue
		}
		out = append(out, *g)
	}
	return out, len(out), nil
}

func (s *fakeGuestStore) StatsByEvent(_ context.Context, eventID string) (*model.GuestStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var stats model.GuestStats
	for _, g := range s.guests {
		if g.EventID != eventID {
			continue
		}
		stats.Total++
		switch g.RSVPStatus {
		case model.RSVPConfirmed:
			stats.Confirmed++
		case model.RSVPPending:
			stats.Pending++
		case model.RSVPDeclined:
			stats.Declined++
		}
		if g.CheckedIn {
			stats.CheckedIn++
		}
	}
	return &stats, nil
}

type fakeHosterStore struct {
	mu      sync.Mutex
	hosters map[string]*model.Hoster
}

func newFakeHosterStore(hosters ...*model.Hoster) *fakeHosterStore {
	s := &fakeHosterStore{hosters: make(map[string]*model.Hoster)}
	for _, h := range hosters {
		cp := *h
		s.hosters[h.ID] = &cp
	}
	return s
}

func (s *fakeHosterStore) Create(_ context.Context, h *model.Hoster) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.hosters {
		if existing.Email == h.Email {
			return repository.ErrEmailTaken
		}
	}
	cp := *h
	s.hosters[h.ID] = &cp
	return nil
}

func (s *fakeHosterStore) GetByID(_ context.Context, id string) (*model.Hoster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.hosters[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (s *fakeHosterStore) GetByEmail(_ context.Context, email string) (*model.Hoster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.hosters {
		if h.Email == email {
			cp := *h
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeHosterStore) Update(_ context.Context, h *model.Hoster) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hosters[h.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *h
	s.hosters[h.ID] = &cp
	return nil
}

func (s *fakeHosterStore) List(_ context.Context, status model.HosterStatus, _ string, _, _ int) ([]model.Hoster, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Hoster
	for _, h := range s.hosters {
		if status != "" && h.Status != status {
			continue
		}
		out = append(out, *h)
	}
	return out, len(out), nil
}

type fakeAdminStore struct {
	mu     sync.Mutex
	admins map[string]*model.Admin
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[string]*model.Admin)}
}

func (s *fakeAdminStore) Create(_ context.Context, a *model.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *a
	s.admins[a.ID] = &cp
	return nil
}

func (s *fakeAdminStore) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeAdminStore) TouchLogin(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.admins[id]; ok {
		a.LastLogin = &at
	}
	return nil
}
