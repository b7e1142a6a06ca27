// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// RingIndirect is an SPSC ring buffer for uintptr values.
// Useful for pool indices and handles; same cursor protocol as Ring.
type RingIndirect struct {
	_      pad
	head   atomix.Uint64
	_      pad
	tail   atomix.Uint64
	_      pad
	buffer []uintptr
	mask   uint64
}

// NewRingIndirect creates a new SPSC ring buffer for uintptr values.
// Capacity rounds up to the next power of 2.
// Panics if capacity < 1.
func NewRingIndirect(capacity int) *RingIndirect {
	if capacity < 1 {
		panic("ringbuf: capacity must be >= 1")
	}

	n := uint64(roundToPow2(capacity))
	return &RingIndirect{
		buffer: make([]uintptr, n),
		mask:   n - 1,
	}
}

// Enqueue adds an element (producer only).
// Returns ErrWouldBlock if the buffer is full.
func (r *RingIndirect) Enqueue(elem uintptr) error {
	tail := r.tail.LoadRelaxed()
	next := (tail + 1) & r.mask
	if next == r.head.LoadAcquire() {
		return ErrWouldBlock
	}

	// Bounds check eliminated: tail is always < len(buffer)
	// because cursors wrap at publish time
	*(*uintptr)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(r.buffer)), int(tail)*ptrSize)) = elem
	r.tail.StoreRelease(next)
	return nil
}

// ForceEnqueue adds an element unconditionally (producer only),
// discarding the oldest unread element when full.
// Must be serialized against a concurrently dequeueing consumer.
func (r *RingIndirect) ForceEnqueue(elem uintptr) {
	tail := r.tail.LoadRelaxed()
	next := (tail + 1) & r.mask
	if next == r.head.LoadAcquire() {
		r.head.StoreRelease((r.head.LoadRelaxed() + 1) & r.mask)
	}

	*(*uintptr)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(r.buffer)), int(tail)*ptrSize)) = elem
	r.tail.StoreRelease(next)
}

// Dequeue removes and returns an element (consumer only).
// Returns (0, ErrWouldBlock) if the buffer is empty.
func (r *RingIndirect) Dequeue() (uintptr, error) {
	head := r.head.LoadRelaxed()
	if head == r.tail.LoadAcquire() {
		return 0, ErrWouldBlock
	}

	// Bounds check eliminated: head is always < len(buffer)
	elem := *(*uintptr)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(r.buffer)), int(head)*ptrSize))
	r.head.StoreRelease((head + 1) & r.mask)
	return elem, nil
}

// Empty reports whether the buffer holds no elements. Advisory.
func (r *RingIndirect) Empty() bool {
	return r.head.LoadAcquire() == r.tail.LoadAcquire()
}

// Full reports whether the buffer holds Cap()-1 elements. Advisory.
func (r *RingIndirect) Full() bool {
	return (r.tail.LoadAcquire()+1)&r.mask == r.head.LoadAcquire()
}

// Len returns the occupied-slot count, in [0, Cap()-1]. Advisory.
func (r *RingIndirect) Len() int {
	return int((r.tail.LoadAcquire() - r.head.LoadAcquire()) & r.mask)
}

// Cap returns the buffer capacity (power of 2; one slot is reserved).
func (r *RingIndirect) Cap() int {
	return int(r.mask + 1)
}

// Clear discards all queued elements.
// Not safe against a concurrent Enqueue or Dequeue.
func (r *RingIndirect) Clear() {
	r.head.StoreRelease(r.tail.LoadAcquire())
}

// Usage returns Len()/Cap() as a ratio in [0, 1).
func (r *RingIndirect) Usage() float64 {
	return float64(r.Len()) / float64(r.Cap())
}
