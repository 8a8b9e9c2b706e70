package clock

import (
	"container/heap"
	"time"
)

// Queue is a Scheduler whose time only moves when it is advanced.
// The owner pumps it with AdvanceTo (from a frame loop) or Advance (from a test).
// Due timers fire in deadline order on the caller's goroutine, each running to
// completion before the next one starts. Queue is not safe for concurrent use.
type Queue struct {
	now    time.Time
	timers timerHeap
	seq    uint64
}

// NewQueue creates a queue whose clock starts at start.
func NewQueue(start time.Time) *Queue {
	return &Queue{now: start}
}

// Now returns the queue's current time. While a callback runs this is the
// deadline the callback was scheduled for.
func (q *Queue) Now() time.Time {
	return q.now
}

// AfterFunc schedules a one-shot callback.
func (q *Queue) AfterFunc(d time.Duration, f func()) Timer {
	return q.schedule(d, 0, f)
}

// Every schedules a periodic callback. Non-positive periods are bumped to
// one nanosecond so a single AdvanceTo can never spin forever on one timer.
func (q *Queue) Every(d time.Duration, f func()) Timer {
	if d <= 0 {
		d = time.Nanosecond
	}
	return q.schedule(d, d, f)
}

func (q *Queue) schedule(d, period time.Duration, f func()) *queuedTimer {
	if d < 0 {
		d = 0
	}
	q.seq++
	t := &queuedTimer{
		queue:    q,
		deadline: q.now.Add(d),
		period:   period,
		fn:       f,
		seq:      q.seq,
		index:    -1,
	}
	heap.Push(&q.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every timer that comes due.
func (q *Queue) Advance(d time.Duration) int {
	return q.AdvanceTo(q.now.Add(d))
}

// AdvanceTo moves the clock to t, firing every timer whose deadline is at or
// before t. Times in the past are ignored. Returns the number of callbacks run.
func (q *Queue) AdvanceTo(t time.Time) int {
	if t.Before(q.now) {
		return 0
	}

	fired := 0
	for len(q.timers) > 0 {
		next := q.timers[0]
		if next.deadline.After(t) {
			break
		}
		heap.Pop(&q.timers)
		q.now = next.deadline

		if next.period > 0 {
			next.deadline = next.deadline.Add(next.period)
			q.seq++
			next.seq = q.seq
			heap.Push(&q.timers, next)
		} else {
			next.fired = true
		}

		next.fn()
		fired++
	}
	q.now = t
	return fired
}

// Pending returns the number of live timers.
func (q *Queue) Pending() int {
	return len(q.timers)
}

type queuedTimer struct {
	queue    *Queue
	deadline time.Time
	period   time.Duration
	fn       func()
	seq      uint64
	index    int
	fired    bool
	stopped  bool
}

func (t *queuedTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	if t.index >= 0 {
		heap.Remove(&t.queue.timers, t.index)
	}
	return true
}

// timerHeap orders timers by deadline, then by scheduling order.
type timerHeap []*queuedTimer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*queuedTimer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
