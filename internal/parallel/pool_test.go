package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// Creation
// =============================================================================

func TestPool_Create(t *testing.T) {
	p := New(4)
	defer p.Close()

	if p.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", p.Workers())
	}
	if !p.IsRunning() {
		t.Error("pool should be running after creation")
	}
}

func TestPool_DefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -3} {
		p := New(n)
		if got, want := p.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("New(%d).Workers() = %d, want %d", n, got, want)
		}
		p.Close()
	}
}

// =============================================================================
// Run
// =============================================================================

func TestPool_Run(t *testing.T) {
	p := New(4)
	defer p.Close()

	var counter atomic.Int64
	jobs := make([]func(), 100)
	for i := range jobs {
		jobs[i] = func() { counter.Add(1) }
	}
	p.Run(jobs)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestPool_RunEmpty(t *testing.T) {
	p := New(2)
	defer p.Close()

	p.Run(nil)
	p.Run([]func(){})
}

func TestPool_RunUnbalanced(t *testing.T) {
	p := New(4)
	defer p.Close()

	var counter atomic.Int64
	jobs := make([]func(), 16)
	for i := range jobs {
		jobs[i] = func() {
			if i%4 == 0 {
				time.Sleep(5 * time.Millisecond)
			}
			counter.Add(1)
		}
	}
	p.Run(jobs)

	if counter.Load() != 16 {
		t.Errorf("counter = %d, want 16", counter.Load())
	}
}

func TestPool_RunAfterClose(t *testing.T) {
	p := New(2)
	p.Close()

	ran := 0
	p.Run([]func(){func() { ran++ }, func() { ran++ }})
	if ran != 2 {
		t.Errorf("ran = %d after Close, want 2", ran)
	}
}

// =============================================================================
// Map
// =============================================================================

func TestMap_Order(t *testing.T) {
	p := New(3)
	defer p.Close()

	in := make([]int, 50)
	for i := range in {
		in[i] = i
	}
	out := Map(p, in, func(v int) int { return v * v })

	for i, v := range out {
		if v != i*i {
			t.Fatalf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}

// =============================================================================
// Close
// =============================================================================

func TestPool_CloseTwice(t *testing.T) {
	p := New(2)
	p.Close()
	p.Close()

	if p.IsRunning() {
		t.Error("pool should not be running after Close")
	}
}
