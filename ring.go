// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

import "code.hybscloud.com/atomix"

// Ring is a single-producer single-consumer bounded circular buffer.
//
// Both cursors wrap to [0, capacity) on every publish, and one slot is
// reserved as a sentinel to distinguish empty (head == tail) from full
// ((tail+1)&mask == head). Usable capacity is therefore Cap()-1.
//
// The producer is the sole writer of tail, the consumer the sole writer
// of head. Cursor publishes use release ordering and reads of the
// opposite cursor use acquire ordering, so a consumer that observes an
// advanced tail also observes the fully stored element, and the producer
// never reuses a slot before the consumer is done with it.
//
// ForceEnqueue and Clear mutate the opposite role's cursor and are not
// safe against concurrent use of that role; see their docs.
//
// Memory: O(capacity) with no per-slot overhead
type Ring[T any] struct {
	_      pad
	head   atomix.Uint64 // Consumer reads from here
	_      pad
	tail   atomix.Uint64 // Producer writes here
	_      pad
	buffer []T
	mask   uint64
}

// NewRing creates a new SPSC ring buffer.
// Capacity rounds up to the next power of 2.
//
// A capacity of 1 is a degenerate buffer with zero usable slots: every
// Enqueue fails and every Dequeue finds it empty.
// Panics if capacity < 1.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		panic("ringbuf: capacity must be >= 1")
	}

	n := uint64(roundToPow2(capacity))
	return &Ring[T]{
		buffer: make([]T, n),
		mask:   n - 1,
	}
}

// Enqueue adds an element to the buffer (producer only).
// Returns ErrWouldBlock if the buffer is full.
func (r *Ring[T]) Enqueue(elem *T) error {
	tail := r.tail.LoadRelaxed()
	next := (tail + 1) & r.mask
	if next == r.head.LoadAcquire() {
		return ErrWouldBlock
	}

	r.buffer[tail] = *elem
	r.tail.StoreRelease(next)
	return nil
}

// ForceEnqueue adds an element unconditionally (producer only).
// When the buffer is full it first advances head by one slot, discarding
// the oldest unread element. Intended for drop-oldest telemetry where
// losing old data beats losing new data.
//
// Advancing head from the producer side breaks the single-writer-per-cursor
// discipline: callers must serialize ForceEnqueue against a concurrently
// dequeueing consumer.
func (r *Ring[T]) ForceEnqueue(elem *T) {
	tail := r.tail.LoadRelaxed()
	next := (tail + 1) & r.mask
	if next == r.head.LoadAcquire() {
		r.head.StoreRelease((r.head.LoadRelaxed() + 1) & r.mask)
	}

	r.buffer[tail] = *elem
	r.tail.StoreRelease(next)
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the buffer is empty.
func (r *Ring[T]) Dequeue() (T, error) {
	head := r.head.LoadRelaxed()
	if head == r.tail.LoadAcquire() {
		var zero T
		return zero, ErrWouldBlock
	}

	elem := r.buffer[head]
	var zero T
	r.buffer[head] = zero
	r.head.StoreRelease((head + 1) & r.mask)
	return elem, nil
}

// Empty reports whether the buffer holds no elements.
// Advisory: the result may be stale as soon as it returns if the other
// side is concurrently active.
func (r *Ring[T]) Empty() bool {
	return r.head.LoadAcquire() == r.tail.LoadAcquire()
}

// Full reports whether the buffer holds Cap()-1 elements. Advisory.
func (r *Ring[T]) Full() bool {
	return (r.tail.LoadAcquire()+1)&r.mask == r.head.LoadAcquire()
}

// Len returns the occupied-slot count, in [0, Cap()-1].
// The cursors are loaded independently, so under concurrent activity the
// snapshot may be inconsistent; use for monitoring, not control decisions.
func (r *Ring[T]) Len() int {
	return int((r.tail.LoadAcquire() - r.head.LoadAcquire()) & r.mask)
}

// Cap returns the buffer capacity (power of 2; one slot is reserved).
func (r *Ring[T]) Cap() int {
	return int(r.mask + 1)
}

// Clear discards all queued elements by moving head to the current tail.
// Buffer slots are not zeroed; dequeued references stay reachable until
// overwritten.
//
// Not safe against a concurrent Enqueue or Dequeue: Clear writes the
// consumer's cursor, so only call it while the opposite role is quiescent.
func (r *Ring[T]) Clear() {
	r.head.StoreRelease(r.tail.LoadAcquire())
}

// Usage returns Len()/Cap() as a ratio in [0, 1).
// It never reaches 1.0 because of the reserved sentinel slot.
func (r *Ring[T]) Usage() float64 {
	return float64(r.Len()) / float64(r.Cap())
}
