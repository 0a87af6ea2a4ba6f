// Package userstore holds the signed-in user of one browser session.
package userstore

import (
	"sync"
)

// User is what the header and account menu show about the signed-in user.
type User struct {
	UID         string  `json:"uid"`
	DisplayName *string `json:"displayName"`
	PhotoURL    *string `json:"photoURL"`
}

// Store has a single owner that mutates it through Login and Logout. Readers
// either poll Current or Subscribe to changes.
type Store struct {
	mu          sync.Mutex
	user        *User
	subscribers map[int]chan *User
	nextID      int
}

func New() *Store {
	return &Store{subscribers: map[int]chan *User{}}
}

// Current returns the signed-in user, or nil.
func (s *Store) Current() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) Login(u User) {
	s.set(&u)
}

func (s *Store) Logout() {
	s.set(nil)
}

// Subscribe returns a channel that receives the current user immediately and
// again after every change, plus a function that ends the subscription. Slow
// readers only ever see the latest value.
func (s *Store) Subscribe() (<-chan *User, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan *User, 1)
	ch <- s.copyLocked()
	s.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subscribers, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (s *Store) set(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = u
	for _, ch := range s.subscribers {
		// Drop a value nobody read yet so the channel always holds the latest.
		select {
		case <-ch:
		default:
		}
		ch <- s.copyLocked()
	}
}

func (s *Store) copyLocked() *User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}
