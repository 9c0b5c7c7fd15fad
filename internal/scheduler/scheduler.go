package scheduler

import (
	"fmt"
	"strings"
)

// Scheduler is a simple event scheduler that can be used to schedule events
// to be executed at a specific cycle. It keeps peripheral emulation in step
// with the CPU: the host feeds it the cycles returned by each CPU step, and
// the scheduler runs every event that has become due.
//
// The scheduler is a linked list of events, sorted by the cycle at which
// they should be executed. When an event is scheduled, it is inserted into
// the list in the correct position, and when the scheduler is ticked, every
// event scheduled at or before the current cycle is executed and removed
// from the list.
type Scheduler struct {
	cycles uint64
	root   *Event

	eventHandlers [eventTypes]func()
	events        [eventTypes]Event // only one event of each type can be scheduled at a time
}

// NewScheduler returns a new Scheduler at cycle 0.
func NewScheduler() *Scheduler {
	s := &Scheduler{}
	for i := range s.events {
		s.events[i].eventType = EventType(i)
	}
	return s
}

// Cycle returns the number of cycles the scheduler has been ticked by.
func (s *Scheduler) Cycle() uint64 {
	return s.cycles
}

// RegisterEvent registers a function of the EventType to be called when
// the event is due. Handlers are registered once, rather than per
// scheduled event, so that scheduling never allocates.
func (s *Scheduler) RegisterEvent(eventType EventType, fn func()) {
	s.eventHandlers[eventType] = fn
}

// Tick advances the scheduler by the given number of cycles. Every event
// scheduled at or before the new cycle is executed in cycle order. An
// event handler may schedule further events, which are also executed
// if they fall due within this tick.
func (s *Scheduler) Tick(c uint64) {
	target := s.cycles + c

	for s.root != nil && s.root.cycle <= target {
		event := s.root
		s.root = event.next
		event.next = nil
		event.scheduled = false

		// handlers see the cycle the event was due at, so that
		// periodic events rescheduled from a handler don't drift
		s.cycles = event.cycle
		if fn := s.eventHandlers[event.eventType]; fn != nil {
			fn()
		}
	}

	s.cycles = target
}

// ScheduleEvent schedules an event to be executed the given number of
// cycles from now. If the event type is already scheduled it is moved.
func (s *Scheduler) ScheduleEvent(eventType EventType, after uint64) {
	s.DescheduleEvent(eventType)

	this := &s.events[eventType]
	this.cycle = s.cycles + after
	this.scheduled = true

	// events at the same cycle run in the order they were scheduled
	if s.root == nil || this.cycle < s.root.cycle {
		this.next = s.root
		s.root = this
		return
	}

	prev := s.root
	for prev.next != nil && prev.next.cycle <= this.cycle {
		prev = prev.next
	}
	this.next = prev.next
	prev.next = this
}

// DescheduleEvent removes the event from the list, if it is scheduled.
func (s *Scheduler) DescheduleEvent(eventType EventType) {
	if !s.events[eventType].scheduled {
		return
	}

	var prev *Event
	for event := s.root; event != nil; event = event.next {
		if event.eventType == eventType {
			if prev == nil {
				s.root = event.next
			} else {
				prev.next = event.next
			}
			event.next = nil
			event.scheduled = false
			return
		}
		prev = event
	}
}

// Until returns the number of cycles until the given event is due, and
// false if it isn't scheduled.
func (s *Scheduler) Until(eventType EventType) (uint64, bool) {
	e := &s.events[eventType]
	if !e.scheduled {
		return 0, false
	}
	if e.cycle <= s.cycles {
		return 0, true
	}
	return e.cycle - s.cycles, true
}

func (s *Scheduler) String() string {
	var b strings.Builder
	for event := s.root; event != nil; event = event.next {
		fmt.Fprintf(&b, "%s:%d->", event.eventType, event.cycle)
	}
	return b.String()
}
