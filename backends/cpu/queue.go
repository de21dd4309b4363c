package cpu

import (
	"sync"

	"github.com/accelrt/accelrt/backends"
	"github.com/google/uuid"
)

// Queue is the CPU backend's concrete backends.Queue: a single goroutine consuming a
// channel of closures, so submissions run strictly in order.
type Queue struct {
	id     uuid.UUID
	device *Device

	work chan func()
	done sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

var _ backends.Queue = &Queue{}

const queueDepth = 128

func newQueue(device *Device) *Queue {
	q := &Queue{
		id:     uuid.New(),
		device: device,
		work:   make(chan func(), queueDepth),
	}
	q.done.Add(1)
	go func() {
		defer q.done.Done()
		for fn := range q.work {
			fn()
		}
	}()
	return q
}

// ID is the queue's unique identity.
func (q *Queue) ID() uuid.UUID { return q.id }

// Device returns the host device.
func (q *Queue) Device() backends.Device { return q.device }

// Submit enqueues fn and returns a handle for it. fn runs after every previously
// submitted closure has finished. Submitting to a queue of a finalized backend panics.
func (q *Queue) Submit(fn func()) backends.AsyncOperation {
	op := &Operation{id: uuid.New(), queue: q}
	op.finished.Add(1)
	q.work <- func() {
		defer op.finished.Done()
		fn()
	}
	return op
}

// Flush blocks until everything submitted so far has executed.
func (q *Queue) Flush() {
	barrier := make(chan struct{})
	q.work <- func() { close(barrier) }
	<-barrier
}

// shutdown drains the queue and stops its goroutine. Idempotent.
func (q *Queue) shutdown() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()
	close(q.work)
	q.done.Wait()
}

// Operation is the CPU backend's concrete backends.AsyncOperation.
type Operation struct {
	id       uuid.UUID
	queue    *Queue
	finished sync.WaitGroup
}

var _ backends.AsyncOperation = &Operation{}

// ID is the operation's unique identity.
func (op *Operation) ID() uuid.UUID { return op.id }

// Queue returns the queue the operation was submitted to.
func (op *Operation) Queue() backends.Queue { return op.queue }

// Wait blocks until the operation has executed.
func (op *Operation) Wait() { op.finished.Wait() }
