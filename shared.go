package builderpool

import (
	"bytes"
	"sync/atomic"

	"github.com/chronos-tachyon/assert"
)

var gShared atomic.Pointer[Pool]

// Shared returns the process-wide Pool, creating it with the default Options
// on first use.
func Shared() *Pool {
	if pool := gShared.Load(); pool != nil {
		return pool
	}
	return ensureSharedCreated()
}

// ensureSharedCreated publishes a default Pool unless another goroutine got
// there first, in which case the candidate is discarded.
func ensureSharedCreated() *Pool {
	gShared.CompareAndSwap(nil, MustNew(Options{}))
	pool := gShared.Load()
	assert.NotNil(&pool)
	return pool
}

// Build rents a buffer from the Shared pool, passes it to fn, and returns the
// accumulated text.  The buffer must not be retained by fn.
func Build(fn func(buf *bytes.Buffer)) string {
	assert.NotNil(&fn)

	pool := Shared()
	buf := pool.Rent()
	defer pool.Return(buf)

	fn(buf)
	return buf.String()
}
