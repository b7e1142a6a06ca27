// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf_test

import (
	"fmt"

	"code.hybscloud.com/ringbuf"
)

// Example demonstrates basic enqueue/dequeue with the sentinel slot.
func Example() {
	r := ringbuf.NewRing[int](4) // power of 2, holds Cap()-1 = 3 elements

	for i := 1; i <= 3; i++ {
		v := i * 10
		if err := r.Enqueue(&v); err != nil {
			fmt.Println("full")
		}
	}

	// Fourth enqueue hits the sentinel slot
	v := 40
	if ringbuf.IsWouldBlock(r.Enqueue(&v)) {
		fmt.Println("buffer full at", r.Len(), "elements")
	}

	for {
		val, err := r.Dequeue()
		if err != nil {
			break
		}
		fmt.Println(val)
	}

	// Output:
	// buffer full at 3 elements
	// 10
	// 20
	// 30
}

// Example_dropOldest demonstrates the drop-oldest overwrite policy for
// telemetry-style traffic where new samples matter more than old ones.
func Example_dropOldest() {
	r := ringbuf.NewRing[string](4) // holds 3

	for _, sample := range []string{"s1", "s2", "s3"} {
		r.ForceEnqueue(&sample)
	}

	// Buffer is full: forcing s4 discards s1
	s4 := "s4"
	r.ForceEnqueue(&s4)

	for {
		s, err := r.Dequeue()
		if err != nil {
			break
		}
		fmt.Println(s)
	}

	// Output:
	// s2
	// s3
	// s4
}

// Example_capacityRounding shows the power-of-2 rounding policy.
func Example_capacityRounding() {
	fmt.Println(ringbuf.NewRing[byte](5).Cap())
	fmt.Println(ringbuf.NewRing[byte](4096).Cap())
	fmt.Println(ringbuf.NewRing[byte](4000).Cap())

	// Output:
	// 8
	// 4096
	// 4096
}

// Example_monitoring shows the advisory usage queries.
func Example_monitoring() {
	r := ringbuf.NewRing[int](8)

	for i := range 6 {
		v := i
		r.Enqueue(&v)
	}

	fmt.Printf("len=%d cap=%d usage=%.2f full=%v\n", r.Len(), r.Cap(), r.Usage(), r.Full())

	r.Clear()
	fmt.Printf("len=%d empty=%v\n", r.Len(), r.Empty())

	// Output:
	// len=6 cap=8 usage=0.75 full=false
	// len=0 empty=true
}

// Example_framePool demonstrates RingIndirect as the free list of a
// preallocated frame pool.
func Example_framePool() {
	pool := make([][]byte, 4)
	free := ringbuf.NewRingIndirect(8)

	for i := range pool {
		pool[i] = make([]byte, 64)
		free.Enqueue(uintptr(i))
	}

	// Allocate two frames
	i1, _ := free.Dequeue()
	i2, _ := free.Dequeue()
	fmt.Println("allocated", i1, i2)

	// Release the first
	free.Enqueue(i1)
	fmt.Println("free frames:", free.Len())

	// Output:
	// allocated 0 1
	// free frames: 3
}
