// Package workerpool implements a bounded pool of worker goroutines shared
// by independent task groups, with cooperative thread donation: a goroutine
// blocked in Group.WaitAll lends its own slot of concurrency back to the
// pool for the duration of the wait, so that a task which itself submits and
// awaits work on another group cannot deadlock the pool.
//
// A single mutex guards all pool and group bookkeeping. One condition
// variable (per Pool) wakes idle workers; one condition variable (per Group)
// wakes goroutines parked in WaitAll. There is one worker goroutine per
// configured thread, started at NewPool and running until Close — task
// bodies never spawn a goroutine of their own.
package workerpool
