package favorites

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps favorites in memory. It backs local development and
// tests when no DATABASE_URL is configured; contents vanish on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]Favorite // by favorite id
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]Favorite)}
}

func (s *MemoryStore) ListByUser(_ context.Context, userID string) ([]Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Favorite, 0)
	for _, f := range s.items {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) Create(_ context.Context, fav Favorite) (Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.items {
		if f.UserID == fav.UserID && f.MovieID == fav.MovieID {
			return Favorite{}, ErrDuplicate
		}
	}

	fav.ID = uuid.NewString()
	fav.CreatedAt = time.Now().UTC()
	s.items[fav.ID] = fav
	return fav, nil
}

func (s *MemoryStore) Update(_ context.Context, userID, id string, upd Update) (Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.items[id]
	if !ok || f.UserID != userID {
		return Favorite{}, ErrNotFound
	}
	if upd.CustomTitle != nil {
		f.CustomTitle = *upd.CustomTitle
	}
	if upd.PersonalNotes != nil {
		f.PersonalNotes = *upd.PersonalNotes
	}
	s.items[id] = f
	return f, nil
}

func (s *MemoryStore) Delete(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.items[id]
	if !ok || f.UserID != userID {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}
