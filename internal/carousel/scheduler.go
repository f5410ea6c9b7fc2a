package carousel

import "time"

// Timer is a pending delayed task.
type Timer interface {
	// Stop cancels the task. It reports false when the task already ran or
	// was already stopped.
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, f func()) Timer

func (fn SchedulerFunc) AfterFunc(d time.Duration, f func()) Timer {
	return fn(d, f)
}

// RealScheduler runs tasks on their own goroutine via time.AfterFunc.
var RealScheduler Scheduler = SchedulerFunc(func(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
})

// debouncer holds at most one pending task. Scheduling cancels the previous
// task; gen lets a task that lost the race with Stop recognise it is stale.
type debouncer struct {
	scheduler Scheduler
	delay     time.Duration
	timer     Timer
	gen       uint64
}

func (d *debouncer) schedule(fn func(gen uint64)) {
	d.stop()
	gen := d.gen
	d.timer = d.scheduler.AfterFunc(d.delay, func() { fn(gen) })
}

// fired claims the task for gen. Callers must hold the owner's lock.
func (d *debouncer) fired(gen uint64) bool {
	if gen != d.gen || d.timer == nil {
		return false
	}
	d.timer = nil
	return true
}

func (d *debouncer) stop() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}
