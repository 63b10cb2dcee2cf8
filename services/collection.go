// Package services holds the in-memory content state of the portal and the
// policies layered on top of it.
// File: services/collection.go
package services

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// ---------------- change notification ----------------

// Op names the kind of mutation that produced an Event.
type Op string

const (
	OpAdd     Op = "add"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
	OpReplace Op = "replace"
)

// Event describes one mutation of a container.
type Event struct {
	Collection string `json:"collection"`
	Op         Op     `json:"op"`
	Key        string `json:"key,omitempty"`
}

// Listener receives events synchronously, in the order mutations were issued.
// A listener must not mutate the container it observes.
type Listener func(Event)

// Observable is implemented by every container.
type Observable interface {
	Name() string
	Subscribe(l Listener) (unsubscribe func())
}

type notifier struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener
}

// Subscribe registers l and returns a function that removes it.
func (n *notifier) Subscribe(l Listener) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.listeners == nil {
		n.listeners = make(map[int]Listener)
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.listeners, id)
			n.mu.Unlock()
		})
	}
}

func (n *notifier) notify(e Event) {
	n.mu.Lock()
	ids := make([]int, 0, len(n.listeners))
	for id := range n.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	ls := make([]Listener, 0, len(ids))
	for _, id := range ids {
		ls = append(ls, n.listeners[id])
	}
	n.mu.Unlock()

	for _, l := range ls {
		l(e)
	}
}

// ---------------- keyed collection ----------------

// Placement decides where Add inserts a record.
type Placement int

const (
	// Append keeps insertion order.
	Append Placement = iota
	// Prepend puts the newest record first.
	Prepend
)

// Collection is an ordered, keyed, mutable sequence of records.
type Collection[T any] struct {
	notifier

	name      string
	key       func(T) string
	placement Placement
	prepare   func(T) T

	mu    sync.RWMutex
	items []T

	// emitMu is taken before mu is released so listeners observe events in issue order.
	emitMu sync.Mutex
}

// CollectionOption configures a Collection.
type CollectionOption[T any] func(*Collection[T])

// WithPrepare runs fn on every record before it is stored by Add or Update.
func WithPrepare[T any](fn func(T) T) CollectionOption[T] {
	return func(c *Collection[T]) { c.prepare = fn }
}

// NewCollection builds a collection seeded with records in the given order.
func NewCollection[T any](name string, key func(T) string, placement Placement, seed []T, opts ...CollectionOption[T]) *Collection[T] {
	c := &Collection[T]{name: name, key: key, placement: placement}
	for _, opt := range opts {
		opt(c)
	}
	c.items = make([]T, 0, len(seed))
	for _, rec := range seed {
		if c.prepare != nil {
			rec = c.prepare(rec)
		}
		c.items = append(c.items, rec)
	}
	return c
}

// Name identifies the collection in events.
func (c *Collection[T]) Name() string { return c.name }

// Key returns the key of rec.
func (c *Collection[T]) Key(rec T) string { return c.key(rec) }

// List returns a snapshot of the records in collection order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len is the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get looks a record up by key.
func (c *Collection[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(key); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Add inserts rec according to the collection placement.
func (c *Collection[T]) Add(rec T) error {
	if c.prepare != nil {
		rec = c.prepare(rec)
	}
	key := c.key(rec)

	c.mu.Lock()
	if c.indexOf(key) >= 0 {
		c.mu.Unlock()
		return errors.Wrapf(ErrDuplicateKey, "%s %q", c.name, key)
	}
	if c.placement == Prepend {
		c.items = append([]T{rec}, c.items...)
	} else {
		c.items = append(c.items, rec)
	}
	c.emit(Event{Collection: c.name, Op: OpAdd, Key: key})
	return nil
}

// Update replaces the record with the same key. A missing key is a no-op
// and reports false.
func (c *Collection[T]) Update(rec T) bool {
	if c.prepare != nil {
		rec = c.prepare(rec)
	}
	key := c.key(rec)

	c.mu.Lock()
	i := c.indexOf(key)
	if i < 0 {
		c.mu.Unlock()
		return false
	}
	c.items[i] = rec
	c.emit(Event{Collection: c.name, Op: OpUpdate, Key: key})
	return true
}

// Modify rewrites the record with key through fn while holding the lock, so
// concurrent read-modify-write calls on one record never lose an update.
// fn must keep the key and must not call back into c. An error from fn
// leaves the record untouched and emits nothing.
func (c *Collection[T]) Modify(key string, fn func(T) (T, error)) (T, error) {
	var zero T
	c.mu.Lock()
	i := c.indexOf(key)
	if i < 0 {
		c.mu.Unlock()
		return zero, errors.Wrapf(ErrNotFound, "%s %q", c.name, key)
	}
	rec, err := fn(c.items[i])
	if err != nil {
		c.mu.Unlock()
		return zero, err
	}
	if c.prepare != nil {
		rec = c.prepare(rec)
	}
	if got := c.key(rec); got != key {
		c.mu.Unlock()
		return zero, errors.Errorf("%s: modify changed key %q to %q", c.name, key, got)
	}
	c.items[i] = rec
	c.emit(Event{Collection: c.name, Op: OpUpdate, Key: key})
	return rec, nil
}

// Delete removes the record with key. A missing key is a no-op and reports false.
func (c *Collection[T]) Delete(key string) bool {
	c.mu.Lock()
	i := c.indexOf(key)
	if i < 0 {
		c.mu.Unlock()
		return false
	}
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	c.emit(Event{Collection: c.name, Op: OpDelete, Key: key})
	return true
}

// emit must be called with c.mu held; it releases it.
func (c *Collection[T]) emit(e Event) {
	c.emitMu.Lock()
	c.mu.Unlock()
	defer c.emitMu.Unlock()
	c.notify(e)
}

func (c *Collection[T]) indexOf(key string) int {
	for i, rec := range c.items {
		if c.key(rec) == key {
			return i
		}
	}
	return -1
}

// ---------------- singleton record ----------------

// Singleton holds at most one record, replaced wholesale.
type Singleton[T any] struct {
	notifier

	name    string
	mu      sync.RWMutex
	value   T
	present bool
	emitMu  sync.Mutex
}

// NewSingleton creates an empty singleton.
func NewSingleton[T any](name string) *Singleton[T] {
	return &Singleton[T]{name: name}
}

// NewSingletonWith creates a singleton that starts with initial.
func NewSingletonWith[T any](name string, initial T) *Singleton[T] {
	return &Singleton[T]{name: name, value: initial, present: true}
}

// Name identifies the singleton in events.
func (s *Singleton[T]) Name() string { return s.name }

// Get returns the record and whether one has been set.
func (s *Singleton[T]) Get() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.present
}

// Replace swaps in rec.
func (s *Singleton[T]) Replace(rec T) {
	s.mu.Lock()
	s.value = rec
	s.present = true
	s.emitMu.Lock()
	s.mu.Unlock()
	defer s.emitMu.Unlock()
	s.notify(Event{Collection: s.name, Op: OpReplace})
}
