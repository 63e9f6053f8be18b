// Package keysource is the document-wide key event source notifications
// subscribe to for their dismissal key.
//
// Every subscription is independent: cancelling one never affects another,
// and cancelling twice is harmless.
package keysource

import "slices"

// Handler receives a key string such as "esc" or "ctrl+c".
type Handler func(key string)

// Source fans key presses out to its subscribers. It is meant to be driven
// from a single goroutine (the bubbletea update loop).
type Source struct {
	next uint64
	subs map[uint64]Handler
}

// Subscription is a revocable registration on a Source.
type Subscription struct {
	src *Source
	id  uint64
}

// New creates an empty Source.
func New() *Source {
	return &Source{subs: make(map[uint64]Handler)}
}

// Subscribe registers h and returns its subscription token.
func (s *Source) Subscribe(h Handler) *Subscription {
	s.next++
	id := s.next
	s.subs[id] = h
	return &Subscription{src: s, id: id}
}

// Dispatch delivers key to every current subscriber in subscription order.
// Handlers may cancel their own or other subscriptions while running;
// a subscription cancelled mid-dispatch is not called afterwards.
func (s *Source) Dispatch(key string) int {
	ids := make([]uint64, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	delivered := 0
	for _, id := range ids {
		h, ok := s.subs[id]
		if !ok {
			continue
		}
		delivered++
		h(key)
	}
	return delivered
}

// Len returns the number of active subscriptions.
func (s *Source) Len() int {
	return len(s.subs)
}

// Cancel removes the subscription. It reports whether it was still active.
func (sub *Subscription) Cancel() bool {
	if sub == nil || sub.src == nil {
		return false
	}
	if _, ok := sub.src.subs[sub.id]; !ok {
		return false
	}
	delete(sub.src.subs, sub.id)
	return true
}

// Active reports whether the subscription is still registered.
func (sub *Subscription) Active() bool {
	if sub == nil || sub.src == nil {
		return false
	}
	_, ok := sub.src.subs[sub.id]
	return ok
}
