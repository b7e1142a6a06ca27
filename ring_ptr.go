// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// RingPtr is an SPSC ring buffer for unsafe.Pointer values.
// Useful for zero-copy object handoff between two goroutines; same cursor
// protocol as Ring.
type RingPtr struct {
	_      pad
	head   atomix.Uint64
	_      pad
	tail   atomix.Uint64
	_      pad
	buffer []unsafe.Pointer
	mask   uint64
}

// NewRingPtr creates a new SPSC ring buffer for unsafe.Pointer values.
// Capacity rounds up to the next power of 2.
// Panics if capacity < 1.
func NewRingPtr(capacity int) *RingPtr {
	if capacity < 1 {
		panic("ringbuf: capacity must be >= 1")
	}

	n := uint64(roundToPow2(capacity))
	return &RingPtr{
		buffer: make([]unsafe.Pointer, n),
		mask:   n - 1,
	}
}

// Enqueue adds an element (producer only).
// Returns ErrWouldBlock if the buffer is full.
func (r *RingPtr) Enqueue(elem unsafe.Pointer) error {
	tail := r.tail.LoadRelaxed()
	next := (tail + 1) & r.mask
	if next == r.head.LoadAcquire() {
		return ErrWouldBlock
	}

	r.buffer[tail] = elem
	r.tail.StoreRelease(next)
	return nil
}

// ForceEnqueue adds an element unconditionally (producer only),
// discarding the oldest unread element when full.
// Must be serialized against a concurrently dequeueing consumer.
func (r *RingPtr) ForceEnqueue(elem unsafe.Pointer) {
	tail := r.tail.LoadRelaxed()
	next := (tail + 1) & r.mask
	if next == r.head.LoadAcquire() {
		r.head.StoreRelease((r.head.LoadRelaxed() + 1) & r.mask)
	}

	r.buffer[tail] = elem
	r.tail.StoreRelease(next)
}

// Dequeue removes and returns an element (consumer only).
// Returns (nil, ErrWouldBlock) if the buffer is empty.
func (r *RingPtr) Dequeue() (unsafe.Pointer, error) {
	head := r.head.LoadRelaxed()
	if head == r.tail.LoadAcquire() {
		return nil, ErrWouldBlock
	}

	elem := r.buffer[head]
	r.buffer[head] = nil
	r.head.StoreRelease((head + 1) & r.mask)
	return elem, nil
}

// Empty reports whether the buffer holds no elements. Advisory.
func (r *RingPtr) Empty() bool {
	return r.head.LoadAcquire() == r.tail.LoadAcquire()
}

// Full reports whether the buffer holds Cap()-1 elements. Advisory.
func (r *RingPtr) Full() bool {
	return (r.tail.LoadAcquire()+1)&r.mask == r.head.LoadAcquire()
}

// Len returns the occupied-slot count, in [0, Cap()-1]. Advisory.
func (r *RingPtr) Len() int {
	return int((r.tail.LoadAcquire() - r.head.LoadAcquire()) & r.mask)
}

// Cap returns the buffer capacity (power of 2; one slot is reserved).
func (r *RingPtr) Cap() int {
	return int(r.mask + 1)
}

// Clear discards all queued elements by moving head to the current tail.
// Buffer slots keep their pointers until overwritten, so cleared objects
// stay reachable for up to Cap() further enqueues.
// Not safe against a concurrent Enqueue or Dequeue.
func (r *RingPtr) Clear() {
	r.head.StoreRelease(r.tail.LoadAcquire())
}

// Usage returns Len()/Cap() as a ratio in [0, 1).
func (r *RingPtr) Usage() float64 {
	return float64(r.Len()) / float64(r.Cap())
}
