package resync

import (
	"sync"
	"sync/atomic"
)

// Once is a sync.Once that can be reset.
// Singletons (config, logger, clock) rely on it so that tests can start again from a clean state.
type Once struct {
	m    sync.Mutex
	done uint32
}

// Do calls f if and only if Do has not been called since the last Reset.
func (o *Once) Do(f func()) {
	if atomic.LoadUint32(&o.done) == 1 {
		return
	}
	o.m.Lock()
	defer o.m.Unlock()
	if o.done == 0 {
		defer atomic.StoreUint32(&o.done, 1)
		f()
	}
}

// Reset makes the next call to Do execute its function again.
func (o *Once) Reset() {
	o.m.Lock()
	defer o.m.Unlock()
	atomic.StoreUint32(&o.done, 0)
}
