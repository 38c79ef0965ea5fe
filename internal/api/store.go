package api

import (
	"sync"
)

// ResultStore keeps the most recent successful inspections so clients can
// fetch them again by id. The oldest entry is evicted once capacity is
// reached.
type ResultStore struct {
	mu       sync.Mutex
	capacity int
	results  map[string]HeaderResponse
	order    []string
}

func NewResultStore(capacity int) *ResultStore {
	if capacity <= 0 {
		capacity = defaultMaxResults
	}
	return &ResultStore{
		capacity: capacity,
		results:  make(map[string]HeaderResponse),
	}
}

func (s *ResultStore) Put(resp HeaderResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.results[resp.ID]; !ok {
		s.order = append(s.order, resp.ID)
	}
	s.results[resp.ID] = resp
	for len(s.order) > s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.results, oldest)
	}
}

func (s *ResultStore) Get(id string) (HeaderResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp, ok := s.results[id]
	return resp, ok
}

func (s *ResultStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.results[id]; !ok {
		return false
	}
	delete(s.results, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *ResultStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}
