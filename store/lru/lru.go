// Package lru bounds the resident entry count with hashicorp/golang-lru.
// The cache's unbounded keyspace is fine for a single user session, but a
// long-lived process serving many subjects wants an upper bound; least
// recently read readings go first.
package lru

import (
	"context"
	"errors"
	"time"

	hlru "github.com/hashicorp/golang-lru/v2"

	st "github.com/dinaypatil-web/whatmystarssays/store"
)

type Store struct {
	c *hlru.Cache[string, []byte]
}

var _ st.Store = (*Store)(nil)

// New creates an LRU-bounded store holding at most size entries.
func New(size int) (*Store, error) {
	if size <= 0 {
		return nil, errors.New("lru: size must be positive")
	}
	c, err := hlru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	return &Store{c: c}, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	b, ok := s.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	return b, true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte, _ int64, _ time.Duration) (bool, error) {
	// expiry is enforced by the envelope on read
	s.c.Add(key, value)
	return true, nil
}

func (s *Store) Del(_ context.Context, key string) error {
	s.c.Remove(key)
	return nil
}

func (s *Store) Close(_ context.Context) error {
	s.c.Purge()
	return nil
}
