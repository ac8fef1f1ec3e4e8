package person

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrInvalidPerson  = errors.New("name is required and age must be positive")
	ErrPersonNotFound = errors.New("person not found")
)

// Store exposes roster records to the service layer.
type Store interface {
	List() []Person
	FindByID(id int) (Person, bool)
	Create(fields Fields) (Person, error)
	Update(id int, fields Fields) (Person, error)
	Delete(id int) error
}

// MemoryStore implements Store with a map keyed by ID. Nothing survives a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	items  map[int]Person
	nextID int
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied records.
// The ID counter starts above the highest seeded ID.
func NewMemoryStore(items []Person) *MemoryStore {
	s := &MemoryStore{
		items:  make(map[int]Person, len(items)),
		nextID: 1,
	}
	for _, item := range items {
		s.items[item.ID] = item
		if item.ID >= s.nextID {
			s.nextID = item.ID + 1
		}
	}
	return s
}

// List returns every record ordered by ID.
func (s *MemoryStore) List() []Person {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Person, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FindByID looks up a record by identifier.
func (s *MemoryStore) FindByID(id int) (Person, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	return item, ok
}

// Create stores a new record under the next counter value. Invalid fields
// leave the store untouched.
func (s *MemoryStore) Create(fields Fields) (Person, error) {
	if !fields.Valid() {
		return Person{}, ErrInvalidPerson
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := fields.apply(s.nextID)
	s.items[item.ID] = item
	s.nextID++
	return item, nil
}

// Update overwrites every mutable field of an existing record.
func (s *MemoryStore) Update(id int, fields Fields) (Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return Person{}, ErrPersonNotFound
	}
	item := fields.apply(id)
	s.items[id] = item
	return item, nil
}

// Delete removes a record. IDs are never handed out again.
func (s *MemoryStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrPersonNotFound
	}
	delete(s.items, id)
	return nil
}
