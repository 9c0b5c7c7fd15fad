package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_Order(t *testing.T) {
	s := NewScheduler()

	var fired []EventType
	for i := 0; i < eventTypes; i++ {
		e := EventType(i)
		s.RegisterEvent(e, func() { fired = append(fired, e) })
	}

	s.ScheduleEvent(VBlank, 100)
	s.ScheduleEvent(TimerIncrement, 20)
	s.ScheduleEvent(SerialTransfer, 50)
	assert.Equal(t, "TimerIncrement:20->SerialTransfer:50->VBlank:100->", s.String())

	s.Tick(19)
	assert.Empty(t, fired)

	s.Tick(1)
	assert.Equal(t, []EventType{TimerIncrement}, fired)

	s.Tick(100)
	assert.Equal(t, []EventType{TimerIncrement, SerialTransfer, VBlank}, fired)
	assert.Equal(t, uint64(120), s.Cycle())
	assert.Equal(t, "", s.String())
}

func TestScheduler_Reschedule(t *testing.T) {
	s := NewScheduler()

	count := 0
	s.RegisterEvent(TimerIncrement, func() {
		count++
		s.ScheduleEvent(TimerIncrement, 16)
	})
	s.ScheduleEvent(TimerIncrement, 16)

	// ticking past several periods at once fires each due event
	s.Tick(64)
	assert.Equal(t, 4, count)

	until, ok := s.Until(TimerIncrement)
	assert.True(t, ok)
	assert.Equal(t, uint64(16), until)
}

func TestScheduler_Deschedule(t *testing.T) {
	s := NewScheduler()

	fired := false
	s.RegisterEvent(SerialTransfer, func() { fired = true })
	s.ScheduleEvent(SerialTransfer, 8)
	s.ScheduleEvent(VBlank, 4)

	s.DescheduleEvent(SerialTransfer)
	s.Tick(16)

	assert.False(t, fired)
	_, ok := s.Until(SerialTransfer)
	assert.False(t, ok)

	// moving an event replaces the earlier schedule
	s.ScheduleEvent(SerialTransfer, 8)
	s.ScheduleEvent(SerialTransfer, 32)
	s.Tick(8)
	assert.False(t, fired)
	s.Tick(24)
	assert.True(t, fired)
}
