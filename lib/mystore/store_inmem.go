package mystore

import (
	"context"
	"sort"
	"sync"
)

// InMemoryStore keeps values in a map. RunInTransaction holds the store lock for the
// duration of the callback, so at most one transaction runs at a time.
type InMemoryStore[T any] struct {
	sync.Mutex
	Items map[string]T
}

func NewInMemoryStore[T any](c context.Context) (*InMemoryStore[T], func(), error) {
	return &InMemoryStore[T]{
		Items: make(map[string]T),
	}, func() {}, nil
}

func (s *InMemoryStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	if isTransactional(c) {
		// nested: already holding the lock
		return f(c)
	}

	s.Lock()
	defer s.Unlock()

	return f(context.WithValue(c, ctxTransactionKey{}, true))
}

func (s *InMemoryStore[T]) Put(c context.Context, uid string, value T) error {
	if !isTransactional(c) {
		s.Lock()
		defer s.Unlock()
	}

	s.Items[uid] = value

	return nil
}

func (s *InMemoryStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	if !isTransactional(c) {
		s.Lock()
		defer s.Unlock()
	}

	result, exists := s.Items[uid]

	return result, exists, nil
}

// List returns all values ordered by uid.
func (s *InMemoryStore[T]) List(c context.Context) ([]T, error) {
	if !isTransactional(c) {
		s.Lock()
		defer s.Unlock()
	}

	uids := make([]string, 0, len(s.Items))
	for uid := range s.Items {
		uids = append(uids, uid)
	}
	sort.Strings(uids)

	result := make([]T, 0, len(s.Items))
	for _, uid := range uids {
		result = append(result, s.Items[uid])
	}

	return result, nil
}

func isTransactional(c context.Context) bool {
	return c.Value(ctxTransactionKey{}) != nil
}
