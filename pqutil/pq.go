// Package pqutil exposes a generic priority queue implemented using an array backed binary max-heap.
package pqutil

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/couchbase/tools-pq/log"
)

// ErrEmptyQueue is returned when attempting to extract an item from a queue which contains no items.
var ErrEmptyQueue = errors.New("priority queue is empty")

// PriorityQueue implements a basic priority queue which accepts a generic payload with a generic priority, items with
// the highest priority are extracted first.
//
// NOTE: The 'PriorityQueue' is not thread safe and must be wrapped in a lock to be shared between goroutines.
type PriorityQueue[T, P any] struct {
	inner heap[T, P]
}

// NewPriorityQueue creates a new priority queue ordered using the natural ordering of the priority type, where the
// underlying capacity is set to the given value.
//
// NOTE: The 'PriorityQueue' capacity has the same behavior as a slices capacity meaning it may grow beyond the given
// capacity, the capacity is there for performance optimizations.
func NewPriorityQueue[T any, P constraints.Ordered](capacity int) *PriorityQueue[T, P] {
	return NewPriorityQueueFunc[T](capacity, func(a, b P) bool { return a > b })
}

// NewPriorityQueueFunc creates a new priority queue ordered using the given function, which should return a boolean
// indicating whether 'a' has a strictly higher priority than 'b'. A negative capacity is treated as zero.
func NewPriorityQueueFunc[T, P any](capacity int, higher func(a, b P) bool) *PriorityQueue[T, P] {
	if higher == nil {
		log.Panicf("(PQ) Priority queue created without a comparison function")
	}

	if capacity < 0 {
		capacity = 0
	}

	return &PriorityQueue[T, P]{inner: heap[T, P]{items: make([]Item[T, P], 0, capacity), higher: higher}}
}

// Insert adds the given payload to the priority queue with the given priority.
func (p *PriorityQueue[T, P]) Insert(payload T, priority P) {
	p.inner.push(Item[T, P]{Payload: payload, Priority: priority})
}

// Enqueue adds the given item to the priority queue.
func (p *PriorityQueue[T, P]) Enqueue(item Item[T, P]) {
	p.inner.push(item)
}

// ExtractMax removes and returns the item from the queue with the highest priority, where multiple items have the same
// priority, they're returned in an arbitrary order. An 'ErrEmptyQueue' error is returned if the queue is empty.
func (p *PriorityQueue[T, P]) ExtractMax() (Item[T, P], error) {
	if p.inner.len() == 0 {
		log.Tracef("(PQ) Attempted to extract an item from an empty queue")
		return Item[T, P]{}, ErrEmptyQueue
	}

	return p.inner.pop(), nil
}

// Dequeue is an alias of 'ExtractMax'.
func (p *PriorityQueue[T, P]) Dequeue() (Item[T, P], error) {
	return p.ExtractMax()
}

// Len returns the number of items in the priority queue.
func (p *PriorityQueue[T, P]) Len() int {
	return p.inner.len()
}

// Drain removes all items from the queue running the given function on each item. In the event of an error, dequeuing
// stops early, and returns the error.
func (p *PriorityQueue[T, P]) Drain(fn func(item Item[T, P]) error) error {
	for p.Len() > 0 {
		item, _ := p.ExtractMax()

		if err := fn(item); err != nil {
			log.Debugf("(PQ) Stopped draining with %d item(s) remaining: %v", p.Len(), err)
			return err
		}
	}

	return nil
}
