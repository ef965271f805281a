// Package blockpool implements a fixed-capacity, uniform-block allocator:
// every block lives in one preallocated array for the lifetime of the
// pool, Alloc hands out a pointer into that array, and Free returns it to
// a free list. There is no growth and no garbage collection path for a
// block — the whole point is that the scheduler's event wrappers never
// touch the heap after construction.
//
// Grounded on the allocation-avoidance idea behind logiface's own
// pair-recycling pool (refPool, which hands out *refPoolItem values
// backed by a sync.Pool to dodge an allocation per call), reworked from
// sync.Pool (whose contents the garbage collector may reclaim at any
// time, which would silently violate the scheduler's "exactly one live
// allocation per pending event" invariant) to an explicit fixed-size
// freelist, and from logiface's pair-of-unsafe.Pointer item shape to a
// generic block type. Recovering a freed block's slot uses the same
// unsafe.Pointer arithmetic joeycumines-go-utilpkg's eventloop already
// reaches for in its own hot paths (loop.go imports "unsafe" for its
// lock-free bookkeeping).
package blockpool

import "unsafe"

// Pool is a fixed-capacity allocator of *T values, all backed by one
// contiguous array. Not safe for concurrent use.
type Pool[T any] struct {
	blocks    []T
	free      []int32 // stack of free slot indices
	allocated []bool
}

// New returns a Pool with room for exactly count blocks. New panics if
// count <= 0.
func New[T any](count int) *Pool[T] {
	if count <= 0 {
		panic("blockpool: count must be positive")
	}
	p := &Pool[T]{
		blocks:    make([]T, count),
		free:      make([]int32, count),
		allocated: make([]bool, count),
	}
	for i := 0; i < count; i++ {
		p.free[i] = int32(count - 1 - i)
	}
	return p
}

// Cap returns the pool's fixed block count.
func (p *Pool[T]) Cap() int {
	return len(p.blocks)
}

// FreeCount returns the number of blocks currently available for Alloc.
func (p *Pool[T]) FreeCount() int {
	return len(p.free)
}

// Alloc reserves one block and returns a pointer to it, zeroed. Returns
// nil if the pool is exhausted.
func (p *Pool[T]) Alloc() *T {
	n := len(p.free)
	if n == 0 {
		return nil
	}
	idx := p.free[n-1]
	p.free = p.free[:n-1]
	p.allocated[idx] = true
	var zero T
	p.blocks[idx] = zero
	return &p.blocks[idx]
}

// Free returns ptr's block to the pool. Free panics if ptr was not
// returned by this pool's Alloc, or was already freed — both indicate a
// bug in the caller, not a recoverable runtime condition.
func (p *Pool[T]) Free(ptr *T) {
	idx := p.indexOf(ptr)
	if !p.allocated[idx] {
		panic("blockpool: double free or invalid pointer")
	}
	p.allocated[idx] = false
	p.free = append(p.free, idx)
}

func (p *Pool[T]) indexOf(ptr *T) int32 {
	base := unsafe.Pointer(&p.blocks[0])
	off := uintptr(unsafe.Pointer(ptr)) - uintptr(base)
	idx := off / unsafe.Sizeof(p.blocks[0])
	if idx >= uintptr(len(p.blocks)) {
		panic("blockpool: pointer does not belong to this pool")
	}
	return int32(idx)
}
