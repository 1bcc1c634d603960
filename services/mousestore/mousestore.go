package mousestore

import (
	"sync"

	"Asteria/models"
)

// Store is the in-memory, list-backed mock store for the mouse demo
// resource. Contents are lost on restart.
type Store struct {
	mu     sync.Mutex
	mouses []models.Mouse
	nextID int
}

func New() *Store {
	return &Store{nextID: 1}
}

// List returns a copy of every stored mouse.
func (s *Store) List() []models.Mouse {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Mouse, len(s.mouses))
	copy(out, s.mouses)
	return out
}

// Create stores the mouse under a fresh server-assigned id.
func (s *Store) Create(mouse models.Mouse) models.Mouse {
	s.mu.Lock()
	defer s.mu.Unlock()
	mouse.ID = s.nextID
	s.nextID++
	s.mouses = append(s.mouses, mouse)
	return mouse
}

// Update replaces the mouse with the given id. Returns false when no such
// mouse exists.
func (s *Store) Update(id int, mouse models.Mouse) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.mouses {
		if s.mouses[i].ID == id {
			mouse.ID = id
			s.mouses[i] = mouse
			return true
		}
	}
	return false
}

// Delete removes the mouse with the given id. Returns false when no such
// mouse exists.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.mouses {
		if s.mouses[i].ID == id {
			s.mouses = append(s.mouses[:i], s.mouses[i+1:]...)
			return true
		}
	}
	return false
}
