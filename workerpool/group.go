package workerpool

import "sync"

// Group is an independent set of tasks submitted to a shared Pool. Multiple
// Groups may submit to the same Pool concurrently; each tracks its own
// outstanding-task count and has its own waiting condition variable, so one
// group's WaitAll is never woken by another group's task completions.
//
// Construct with Pool.NewGroup.
type Group struct {
	pool *Pool

	// outstanding is the number of this group's tasks pushed but not yet
	// completed. Guarded by pool.mu.
	outstanding int
	// released counts drain wakeups signalled to a waiter that it has not
	// yet consumed. Guarded by pool.mu.
	released int

	waiting struct {
		count int
		cond  *sync.Cond
	}
}

// Push submits a task to the group's pool. If the pool's task queue is at
// capacity, Push donates the calling goroutine to the pool (as WaitAll
// does) while waiting for room, then retries — exactly as an overfull
// original queue falls back to waiting out its own backlog rather than
// waiting for a single freed slot. Returns ErrClosed if the pool has been
// closed.
func (g *Group) Push(fn func(any), data any) error {
	p := g.pool
	for {
		p.mu.Lock()
		if !p.running {
			p.mu.Unlock()
			return ErrClosed
		}
		if p.lockedPushTask(g, fn, data) {
			g.outstanding++
			p.lockedWakeWorkerIfAllowed()
			p.mu.Unlock()
			return nil
		}
		p.mu.Unlock()

		if p.logger != nil {
			p.logger.Debug().Str(`pool`, p.namePrefix).Log(`task queue full, draining own backlog before retrying push`)
		}
		g.WaitAll()
	}
}

// WaitAll blocks until every task currently outstanding on this group has
// completed (including tasks submitted by other goroutines concurrently,
// right up until the group's outstanding count reaches zero). While
// blocked, the calling goroutine donates its own slot of pool concurrency —
// incrementing the pool's worker limit for the duration of the wait — so
// that a task which itself pushes to and awaits another group cannot starve
// the pool.
//
// WaitAll does not observe Pool.Close: closing the pool while tasks remain
// queued leaves any concurrent WaitAll blocked forever, since the stopped
// workers will never complete the remaining tasks. Callers must drain every
// group (WaitAll or Destroy) before closing the pool.
func (g *Group) WaitAll() {
	p := g.pool
	p.mu.Lock()
	defer p.mu.Unlock()

	if g.outstanding == 0 {
		return
	}

	p.workerLimit++
	p.lockedWakeWorkerIfAllowed()
	if p.logger != nil {
		p.logger.Debug().Str(`pool`, p.namePrefix).Int(`outstanding`, g.outstanding).Log(`donation enter`)
	}

	for {
		g.waiting.count++
		g.waiting.cond.Wait()
		g.waiting.count--

		if !g.lockedShouldContinueWaiting() {
			return
		}
	}
}

// lockedShouldContinueWaiting evaluates, after a wakeup, whether the waiter
// should donate again and keep waiting, or stop. Must be called with
// pool.mu held.
func (g *Group) lockedShouldContinueWaiting() bool {
	p := g.pool
	switch {
	case g.outstanding > 0 && g.released > 0:
		// woken at drain, but more tasks were pushed before this waiter
		// reacquired the lock: consume the wakeup and keep waiting, with the
		// donation made on entry still in effect.
		g.released--
		return true
	case g.outstanding == 0 && g.released > 0:
		// the last task finished: consume the completion and give back the
		// standing donation made when we entered the loop.
		g.released--
		p.workerLimit--
		if p.logger != nil {
			p.logger.Debug().Str(`pool`, p.namePrefix).Log(`donation exit`)
		}
		return false
	default:
		// spurious wakeup, or no new completion since the last check: keep
		// waiting without touching the donation already in effect.
		return true
	}
}

// lockedWakeWaiterIfAllowed is called by a worker goroutine immediately
// after completing one of this group's tasks (with pool.mu held and
// g.outstanding already decremented). It only ever wakes a waiter once the
// group is fully drained (g.outstanding == 0) — exactly as
// locked_group_wake_waiter_if_allowed gates on
// current_submitted_tasks_count == 0 — so a WaitAll spanning several task
// completions is woken once at drain, not once per completion.
func (g *Group) lockedWakeWaiterIfAllowed() {
	if g.outstanding > 0 {
		return
	}
	if g.waiting.count == 0 {
		return
	}
	g.released++
	g.waiting.cond.Signal()
}

// Destroy waits for all of this group's outstanding tasks to complete. It
// exists for symmetry with the original construct/destroy pairing; unlike
// the original there is no explicit memory to free, so Destroy is simply
// WaitAll under another name for callers porting that lifecycle.
func (g *Group) Destroy() {
	g.WaitAll()
}
