// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

import "unsafe"

// Buffer is the combined producer-consumer interface for an SPSC ring.
//
// Buffer provides non-blocking Enqueue and Dequeue plus the advisory state
// queries. Enqueue and Dequeue return ErrWouldBlock when they cannot
// proceed (buffer full or empty); ForceEnqueue never fails.
//
// The state queries (Len, Empty, Full, Usage) are snapshots taken from
// independently loaded cursors. They are suitable for monitoring and
// logging, not for control decisions: the answer may be stale by the time
// the caller acts on it.
//
// Example:
//
//	r := ringbuf.NewRing[Frame](4096)
//
//	// Producer side
//	if err := r.Enqueue(&frame); err != nil {
//	    // Buffer full - drop, retry, or ForceEnqueue
//	}
//
//	// Consumer side
//	frame, err := r.Dequeue()
//	if err == nil {
//	    handle(frame)
//	}
type Buffer[T any] interface {
	Producer[T]
	Consumer[T]

	// Empty reports whether the buffer holds no elements. Advisory.
	Empty() bool
	// Full reports whether the buffer holds Cap()-1 elements. Advisory.
	Full() bool
	// Len returns the occupied-slot count, in [0, Cap()-1]. Advisory.
	Len() int
	// Cap returns the power-of-2 capacity. One slot is reserved, so the
	// buffer holds at most Cap()-1 elements.
	Cap() int
	// Clear discards all queued elements. Not safe against concurrent
	// Enqueue or Dequeue.
	Clear()
	// Usage returns Len()/Cap(), a ratio in [0, 1).
	Usage() float64
}

// Producer is the interface for the enqueueing side.
//
// The element is passed by pointer to avoid copying large structs. The
// buffer stores a copy of the pointed-to value, so the original can be
// modified after Enqueue returns.
//
// Single producer only: exactly one goroutine may enqueue at a time.
type Producer[T any] interface {
	// Enqueue adds an element to the buffer (non-blocking).
	// Returns nil on success, ErrWouldBlock if the buffer is full.
	Enqueue(elem *T) error

	// ForceEnqueue adds an element unconditionally (non-blocking),
	// discarding the oldest unread element when the buffer is full.
	// Must be serialized against a concurrently dequeueing consumer.
	ForceEnqueue(elem *T)
}

// Consumer is the interface for the dequeueing side.
//
// The element is returned by value (copied from the internal buffer). The
// vacated slot is cleared to allow garbage collection of referenced
// objects.
//
// Single consumer only: exactly one goroutine may dequeue at a time.
type Consumer[T any] interface {
	// Dequeue removes and returns the oldest element (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the buffer is empty.
	Dequeue() (T, error)
}

// BufferIndirect is the combined interface for uintptr rings.
//
// BufferIndirect passes indices or handles instead of full objects. This
// is useful for buffer pools, object pools, or any index-based structure.
//
// Example (frame pool):
//
//	pool := make([][]byte, 1024)
//	free := ringbuf.NewRingIndirect(1024)
//
//	for i := range pool {
//	    pool[i] = make([]byte, 4096)
//	    free.Enqueue(uintptr(i))
//	}
//
//	idx, _ := free.Dequeue()
//	buf := pool[idx]
type BufferIndirect interface {
	ProducerIndirect
	ConsumerIndirect

	Empty() bool
	Full() bool
	Len() int
	Cap() int
	Clear()
	Usage() float64
}

// ProducerIndirect enqueues uintptr values (non-blocking, single producer).
type ProducerIndirect interface {
	// Enqueue adds an element to the buffer.
	// Returns ErrWouldBlock immediately if the buffer is full.
	Enqueue(elem uintptr) error

	// ForceEnqueue adds an element unconditionally, discarding the oldest
	// unread element when the buffer is full.
	ForceEnqueue(elem uintptr)
}

// ConsumerIndirect dequeues uintptr values (non-blocking, single consumer).
type ConsumerIndirect interface {
	// Dequeue removes and returns the oldest element.
	// Returns (0, ErrWouldBlock) immediately if the buffer is empty.
	Dequeue() (uintptr, error)
}

// BufferPtr is the combined interface for unsafe.Pointer rings.
//
// BufferPtr passes pointers directly without copying, enabling zero-copy
// transfer between the producer and consumer goroutines.
//
// Ownership semantics: the producer transfers ownership to the consumer.
// After enqueueing, the producer should not access the object.
type BufferPtr interface {
	ProducerPtr
	ConsumerPtr

	Empty() bool
	Full() bool
	Len() int
	Cap() int
	Clear()
	Usage() float64
}

// ProducerPtr enqueues unsafe.Pointer values (non-blocking, single producer).
type ProducerPtr interface {
	// Enqueue adds an element to the buffer.
	// Returns ErrWouldBlock immediately if the buffer is full.
	Enqueue(elem unsafe.Pointer) error

	// ForceEnqueue adds an element unconditionally, discarding the oldest
	// unread element when the buffer is full.
	ForceEnqueue(elem unsafe.Pointer)
}

// ConsumerPtr dequeues unsafe.Pointer values (non-blocking, single consumer).
type ConsumerPtr interface {
	// Dequeue removes and returns the oldest element.
	// Returns (nil, ErrWouldBlock) immediately if the buffer is empty.
	Dequeue() (unsafe.Pointer, error)
}
