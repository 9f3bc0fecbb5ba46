// Package builderpool implements a lock-free, fixed-capacity pool of reusable
// text buffers.
package builderpool

import (
	"bytes"
	"fmt"
	"sync/atomic"

	"github.com/chronos-tachyon/assert"
	"github.com/chronos-tachyon/bzero"
	"golang.org/x/sys/cpu"
)

// slot holds at most one idle buffer.  Each slot occupies its own cache line.
type slot struct {
	buf atomic.Pointer[bytes.Buffer]
	_   cpu.CacheLinePad
}

// Pool retains up to SlotCount idle buffers for reuse.  Rent and Return are
// safe for concurrent use and never block.
//
// The first slot is checked before all others and is expected to satisfy
// most requests; the remaining slots are scanned in order.  Reuse order is
// otherwise unspecified.
//
// A Pool must not be copied after first use.
type Pool struct {
	first   slot
	slots   []slot
	initCap uint
	maxCap  uint
	scrub   bool
}

// New allocates a Pool with the given Options.  No buffers are allocated
// until the first call to Rent.
func New(o Options) (*Pool, error) {
	o, err := o.resolve()
	if err != nil {
		return nil, err
	}

	assert.Assertf(o.SlotCount >= 1, "SlotCount %d must be at least 1", o.SlotCount)

	pool := &Pool{
		slots:   make([]slot, o.SlotCount-1),
		initCap: o.InitialCapacity,
		maxCap:  o.MaxCapacity,
		scrub:   o.Scrub,
	}
	return pool, nil
}

// MustNew is like New, but panics if the Options are invalid.
func MustNew(o Options) *Pool {
	pool, err := New(o)
	if err != nil {
		assert.Raisef("builderpool.MustNew: %v", err)
	}
	return pool
}

// Options returns an Options struct which can be used to construct a new
// Pool with the same settings.
func (pool *Pool) Options() Options {
	return Options{
		InitialCapacity:    pool.initCap,
		MaxCapacity:        pool.maxCap,
		SlotCount:          pool.SlotCount(),
		HasInitialCapacity: true,
		HasMaxCapacity:     true,
		HasSlotCount:       true,
		Scrub:              pool.scrub,
	}
}

// InitialCapacity returns the capacity of buffers allocated by Rent.
func (pool *Pool) InitialCapacity() uint {
	return pool.initCap
}

// MaxCapacity returns the largest capacity that Return will retain.
func (pool *Pool) MaxCapacity() uint {
	return pool.maxCap
}

// SlotCount returns the maximum number of idle buffers the Pool retains.
func (pool *Pool) SlotCount() uint {
	return uint(len(pool.slots)) + 1
}

// Len returns the number of idle buffers currently held by the Pool.  The
// result is stale as soon as it is returned if other goroutines are using
// the Pool.
func (pool *Pool) Len() uint {
	var n uint
	for _, busy := range pool.occupancy() {
		if busy {
			n++
		}
	}
	return n
}

// Rent takes an idle buffer from the Pool, or allocates a new one with
// InitialCapacity bytes of storage if none is available.  The returned
// buffer is empty and owned by the caller until it is passed to Return.
func (pool *Pool) Rent() *bytes.Buffer {
	if buf := pool.first.buf.Load(); buf != nil && pool.first.buf.CompareAndSwap(buf, nil) {
		return buf
	}
	return pool.rentViaScan()
}

// RentCap is like Rent, but hints that the caller needs at least minCap bytes
// of storage.
//
// If minCap is at most MaxCapacity, RentCap is identical to Rent and the
// returned buffer may be smaller than requested.  Otherwise a new buffer with
// exactly minCap bytes of storage is allocated outside the Pool, and Return
// will not retain it.
func (pool *Pool) RentCap(minCap uint) *bytes.Buffer {
	if minCap <= pool.maxCap {
		return pool.Rent()
	}
	return newBuffer(minCap)
}

func (pool *Pool) rentViaScan() *bytes.Buffer {
	slots := pool.slots
	for index := range slots {
		s := &slots[index]
		if buf := s.buf.Load(); buf != nil && s.buf.CompareAndSwap(buf, nil) {
			return buf
		}
	}
	return newBuffer(pool.initCap)
}

// Return hands buf back to the Pool.  The caller must not use buf afterward.
//
// A nil buf, or one whose capacity exceeds MaxCapacity, is ignored and left
// untouched.  Any other buf is emptied and stored in a free slot; if every
// slot is occupied, buf is dropped.
//
// Concurrent calls may race for the same free slot, in which case one of the
// buffers is silently dropped.  A buffer is never handed to two renters.
func (pool *Pool) Return(buf *bytes.Buffer) {
	if buf == nil || uint(buf.Cap()) > pool.maxCap {
		return
	}

	pool.clear(buf)

	if pool.first.buf.Load() == nil {
		pool.first.buf.Store(buf)
		return
	}
	pool.returnViaScan(buf)
}

func (pool *Pool) returnViaScan(buf *bytes.Buffer) {
	slots := pool.slots
	for index := range slots {
		s := &slots[index]
		if s.buf.Load() == nil {
			s.buf.Store(buf)
			return
		}
	}
}

func (pool *Pool) clear(buf *bytes.Buffer) {
	buf.Reset()
	if pool.scrub {
		storage := buf.Bytes()
		bzero.Uint8(storage[:cap(storage)])
	}
}

// occupancy reports which slots hold a buffer, fast slot first.
func (pool *Pool) occupancy() []bool {
	busy := make([]bool, 1+len(pool.slots))
	busy[0] = pool.first.buf.Load() != nil
	for index := range pool.slots {
		busy[1+index] = pool.slots[index].buf.Load() != nil
	}
	return busy
}

// DebugString returns a detailed dump of the Pool's internal state.
func (pool *Pool) DebugString() string {
	busy := pool.occupancy()
	return Build(func(buf *bytes.Buffer) {
		buf.WriteString("Pool(\n")
		fmt.Fprintf(buf, "\tinitialCapacity = %d\n", pool.initCap)
		fmt.Fprintf(buf, "\tmaxCapacity = %d\n", pool.maxCap)
		fmt.Fprintf(buf, "\tslotCount = %d\n", len(busy))
		fmt.Fprintf(buf, "\tscrub = %t\n", pool.scrub)
		buf.WriteString("\tslots = [")
		for index, b := range busy {
			if index == 1 {
				buf.WriteString(" |")
			}
			if b {
				buf.WriteString(" x")
			} else {
				buf.WriteString(" .")
			}
		}
		buf.WriteString(" ]\n")
		buf.WriteString(")\n")
	})
}

// GoString returns a brief dump of the Pool's internal state.
func (pool *Pool) GoString() string {
	return fmt.Sprintf("Pool(init=%d,max=%d,slots=%d)", pool.initCap, pool.maxCap, pool.SlotCount())
}

// String returns a plain-text description of the Pool.
func (pool *Pool) String() string {
	return fmt.Sprintf("(buffer pool with %d slots)", pool.SlotCount())
}

func newBuffer(capacity uint) *bytes.Buffer {
	return bytes.NewBuffer(make([]byte, 0, capacity))
}

var _ fmt.GoStringer = (*Pool)(nil)
var _ fmt.Stringer = (*Pool)(nil)
