// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringbuf provides a fixed-capacity single-producer single-consumer
// circular buffer.
//
// The buffer is a contiguous power-of-2 array with two atomically published
// cursors. All operations are non-blocking and complete in a bounded number
// of steps: there are no locks, no retries, and no waiting. It is intended
// for high-frequency message buffering (bus/frame traffic) where
// allocation-free, low-latency handoff between exactly one producer
// goroutine and one consumer goroutine is required.
//
// # Quick Start
//
//	r := ringbuf.NewRing[Frame](4096)
//
//	// Producer goroutine
//	if err := r.Enqueue(&frame); err != nil {
//	    // Buffer full - caller decides: retry, drop, or ForceEnqueue
//	}
//
//	// Consumer goroutine
//	frame, err := r.Dequeue()
//	if err == nil {
//	    handle(frame)
//	}
//
// # Sentinel Slot
//
// One slot is always kept unused so that the two cursor positions alone
// distinguish empty (head == tail) from full ((tail+1)&mask == head). A
// buffer with Cap() == n therefore holds at most n-1 elements, and Usage()
// never reaches 1.0. Do not "fix" this: without the sentinel, empty and
// full are indistinguishable by cursor equality.
//
// # Memory Ordering
//
// The producer is the sole writer of the tail cursor, the consumer the sole
// writer of the head cursor. Each side reads its own cursor relaxed,
// reads the opposite cursor with acquire ordering, and publishes with
// release ordering. The acquire/release pairing guarantees that a consumer
// observing an advanced tail also observes the fully stored element (no
// torn reads), and that the producer never overwrites a slot the consumer
// has not finished with. These orderings are load-bearing: weakening the
// acquire/release pair to relaxed is a correctness bug.
//
// # Common Patterns
//
// Frame buffering with backpressure (SPSC):
//
//	r := ringbuf.NewRing[Frame](4096)
//
//	go func() { // Producer
//	    backoff := iox.Backoff{}
//	    for frame := range source {
//	        for r.Enqueue(&frame) != nil {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // Consumer
//	    backoff := iox.Backoff{}
//	    for {
//	        frame, err := r.Dequeue()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        handle(frame)
//	    }
//	}()
//
// Drop-oldest telemetry:
//
//	// Losing old unread samples is preferable to losing new ones
//	// or blocking the sampling loop.
//	r := ringbuf.NewRing[Sample](256)
//	r.ForceEnqueue(&sample) // never fails; discards oldest when full
//
// Monitoring:
//
//	if r.Usage() > 0.9 {
//	    // consumer is falling behind
//	}
//
// # Buffer Variants
//
// Three element flavors share the same cursor protocol:
//
//	NewRing[T]       - Generic type-safe buffer for any type
//	NewRingIndirect  - Buffer for uintptr values (pool indices, handles)
//	NewRingPtr       - Buffer for unsafe.Pointer (zero-copy pointer passing)
//
// # Capacity
//
// Capacity rounds up to the next power of 2:
//
//	r := ringbuf.NewRing[int](5)     // Actual capacity: 8, holds 7
//	r := ringbuf.NewRing[int](4000)  // Actual capacity: 4096, holds 4095
//	r := ringbuf.NewRing[int](4096)  // Actual capacity: 4096, holds 4095
//
// Constructors panic if capacity < 1. A capacity of 1 is accepted but
// degenerate: the sentinel consumes the only slot, so the buffer holds
// nothing. Capacity is immutable after construction.
//
// # Thread Safety
//
// The protocol is valid for exactly one producer goroutine and one
// consumer goroutine. Violating this (two producers, two consumers)
// causes undefined behavior including data corruption.
//
// Two operations additionally break the single-writer-per-cursor
// discipline and must be serialized by the caller:
//
//   - ForceEnqueue advances the consumer's cursor from the producer side
//     when the buffer is full. Concurrent Dequeue can race with the
//     advancement, losing or duplicating one slot of progress.
//   - Clear rewrites the consumer's cursor wholesale. Call it only while
//     both sides are quiescent.
//
// # Error Handling
//
// Enqueue and Dequeue return [ErrWouldBlock] when they cannot proceed.
// This error is sourced from [code.hybscloud.com/iox] for ecosystem
// consistency; it is a control flow signal, not a failure:
//
//	ringbuf.IsWouldBlock(err)  // true if buffer full/empty
//	ringbuf.IsNonFailure(err)  // true for nil or ErrWouldBlock
//
// There are no other error paths. Every operation is total.
//
// # Race Detection
//
// Go's race detector cannot observe happens-before relationships
// established through atomic memory orderings on separate variables, so
// concurrent producer/consumer tests report false positives. Tests
// incompatible with race detection are excluded via //go:build !race.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering. Benchmarks use [code.hybscloud.com/spin] for CPU
// pause instructions.
package ringbuf
