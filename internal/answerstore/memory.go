package answerstore

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/ARROM2405/hero-search-bot/internal/models"
	"github.com/patrickmn/go-cache"
)

// DefaultTTL matches the 30 minutes the user has to complete the questionnaire.
const DefaultTTL = 30 * time.Minute

// entry is the cached value. The answers map is mutated in place under the
// store mutex so that writes after the first never touch the cache entry's
// expiration.
type entry struct {
	answers map[models.QuestionKey]string
}

// MemoryStore is an in-process Store backed by an expiring cache.
type MemoryStore struct {
	mu  sync.Mutex
	c   *cache.Cache
	ttl time.Duration
}

// NewMemoryStore creates a MemoryStore with the given TTL. Expired entries
// are purged in the background at the cache's cleanup interval; reads treat
// expired-but-unpurged entries as absent.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	cleanupInterval := time.Minute
	return &MemoryStore{
		c:   cache.New(ttl, cleanupInterval),
		ttl: ttl,
	}
}

func cacheKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (s *MemoryStore) Get(_ context.Context, id int64) (map[models.QuestionKey]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(id), nil
}

func (s *MemoryStore) Create(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Set(cacheKey(id), &entry{answers: make(map[models.QuestionKey]string)}, s.ttl)
	return nil
}

func (s *MemoryStore) SetInitial(_ context.Context, id int64, key models.QuestionKey, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Set(cacheKey(id), &entry{answers: map[models.QuestionKey]string{key: value}}, s.ttl)
	return nil
}

func (s *MemoryStore) Set(_ context.Context, id int64, key models.QuestionKey, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.get(id)
	if !ok {
		return ErrNotFound
	}
	e.answers[key] = value
	return nil
}

func (s *MemoryStore) Update(_ context.Context, id int64, fn UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.get(id)
	key, value, err := fn(s.snapshot(id), exists)
	if err != nil {
		return err
	}
	if e, ok := s.get(id); ok {
		e.answers[key] = value
		return nil
	}
	s.c.Set(cacheKey(id), &entry{answers: map[models.QuestionKey]string{key: value}}, s.ttl)
	return nil
}

func (s *MemoryStore) Exists(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.get(id)
	return ok, nil
}

func (s *MemoryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Delete(cacheKey(id))
	return nil
}

// get returns the live entry. Callers must hold s.mu.
func (s *MemoryStore) get(id int64) (*entry, bool) {
	v, ok := s.c.Get(cacheKey(id))
	if !ok {
		return nil, false
	}
	return v.(*entry), true
}

// snapshot copies the stored answers so callers cannot mutate the entry
// outside the lock. Callers must hold s.mu.
func (s *MemoryStore) snapshot(id int64) map[models.QuestionKey]string {
	answers := make(map[models.QuestionKey]string)
	if e, ok := s.get(id); ok {
		for k, v := range e.answers {
			answers[k] = v
		}
	}
	return answers
}
