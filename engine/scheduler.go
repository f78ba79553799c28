package engine

import "time"

type scheduledTask struct {
	due   time.Time
	round uint64
	run   func()
}

// Scheduler holds delayed work for the loop goroutine
// Tasks run from RunDue on the loop, never from a timer goroutine, so they cannot race a frame.
// Each task is tagged with the round it was scheduled in; tasks from an older round are dropped.
type Scheduler struct {
	tasks []scheduledTask
}

// After schedules run at now+delay for the given round
func (s *Scheduler) After(now time.Time, delay time.Duration, round uint64, run func()) {
	s.tasks = append(s.tasks, scheduledTask{
		due:   now.Add(delay),
		round: round,
		run:   run,
	})
}

// RunDue executes tasks due at now that belong to round, discards stale ones, and returns the count run
func (s *Scheduler) RunDue(now time.Time, round uint64) int {
	if len(s.tasks) == 0 {
		return 0
	}

	var due []func()
	pending := s.tasks[:0]
	for _, t := range s.tasks {
		switch {
		case t.round != round:
			// Stale round, drop
		case !now.Before(t.due):
			due = append(due, t.run)
		default:
			pending = append(pending, t)
		}
	}
	clear(s.tasks[len(pending):])
	s.tasks = pending

	// Tasks may schedule more work
	for _, run := range due {
		run()
	}
	return len(due)
}

// Clear drops all pending tasks
func (s *Scheduler) Clear() {
	clear(s.tasks)
	s.tasks = s.tasks[:0]
}

// Pending returns the number of queued tasks
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}
