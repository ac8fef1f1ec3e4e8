package roster

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zhouzirui/roster/backend/internal/model/activity"
	"github.com/zhouzirui/roster/backend/internal/model/person"
)

// DefaultActivityLimit bounds the in-memory activity log when no limit is configured.
const DefaultActivityLimit = 100

// Service coordinates roster mutations, the activity log and change subscribers.
type Service struct {
	store person.Store

	mu            sync.RWMutex
	events        []activity.Event
	activityLimit int
	subscribers   map[chan struct{}]struct{}
}

// NewService wraps the store. A non-positive activityLimit falls back to DefaultActivityLimit.
func NewService(store person.Store, activityLimit int) *Service {
	if activityLimit <= 0 {
		activityLimit = DefaultActivityLimit
	}
	return &Service{
		store:         store,
		events:        make([]activity.Event, 0, activityLimit),
		activityLimit: activityLimit,
		subscribers:   make(map[chan struct{}]struct{}),
	}
}

// List returns the current roster ordered by ID.
func (s *Service) List(_ context.Context) []person.Person {
	return s.store.List()
}

// Get retrieves a single record.
func (s *Service) Get(_ context.Context, id int) (person.Person, error) {
	item, ok := s.store.FindByID(id)
	if !ok {
		return person.Person{}, fmt.Errorf("get person %d: %w", id, person.ErrPersonNotFound)
	}
	return item, nil
}

// Create adds a record when the fields pass validation.
func (s *Service) Create(_ context.Context, fields person.Fields) (person.Person, error) {
	item, err := s.store.Create(fields)
	s.record(activity.ActionCreate, item.ID, err)
	if err != nil {
		return person.Person{}, fmt.Errorf("create person: %w", err)
	}

	log.Printf("[roster] created person id=%d", item.ID)
	s.notify()
	return item, nil
}

// Update overwrites an existing record.
func (s *Service) Update(_ context.Context, id int, fields person.Fields) (person.Person, error) {
	item, err := s.store.Update(id, fields)
	s.record(activity.ActionUpdate, id, err)
	if err != nil {
		return person.Person{}, fmt.Errorf("update person %d: %w", id, err)
	}

	log.Printf("[roster] updated person id=%d", id)
	s.notify()
	return item, nil
}

// Delete removes a record.
func (s *Service) Delete(_ context.Context, id int) error {
	err := s.store.Delete(id)
	s.record(activity.ActionDelete, id, err)
	if err != nil {
		return fmt.Errorf("delete person %d: %w", id, err)
	}

	log.Printf("[roster] deleted person id=%d", id)
	s.notify()
	return nil
}

// Activity returns up to limit of the newest events, oldest first.
func (s *Service) Activity(_ context.Context, limit int) []activity.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := 0
	if limit > 0 && limit < len(s.events) {
		start = len(s.events) - limit
	}
	copied := make([]activity.Event, len(s.events)-start)
	copy(copied, s.events[start:])
	return copied
}

// Subscribe registers for change notifications. The returned channel receives a
// signal after each successful mutation; pending signals coalesce. Call cancel
// to stop receiving.
func (s *Service) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, ch)
			s.mu.Unlock()
		})
	}
	return ch, cancel
}

func (s *Service) record(action activity.Action, personID int, err error) {
	outcome := activity.OutcomeOK
	switch {
	case errors.Is(err, person.ErrInvalidPerson):
		outcome = activity.OutcomeInvalid
	case errors.Is(err, person.ErrPersonNotFound):
		outcome = activity.OutcomeNotFound
	}

	event := activity.Event{
		ID:        uuid.NewString(),
		Action:    action,
		PersonID:  personID,
		Outcome:   outcome,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.events) == s.activityLimit {
		copy(s.events, s.events[1:])
		s.events = s.events[:len(s.events)-1]
	}
	s.events = append(s.events, event)
}

func (s *Service) notify() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for ch := range s.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
