package scheduler

// EventType identifies a kind of event. Only one event of each
// type can be scheduled at a time.
type EventType uint8

const (
	// TimerIncrement fires each time TIMA is due to be incremented.
	TimerIncrement EventType = iota
	// SerialTransfer fires when a serial transfer started through
	// SC has shifted out all 8 bits.
	SerialTransfer
	// VBlank fires once per frame, at the start of the vertical blank.
	VBlank

	eventTypes = int(iota)
)

var eventNames = [eventTypes]string{
	TimerIncrement: "TimerIncrement",
	SerialTransfer: "SerialTransfer",
	VBlank:         "VBlank",
}

func (e EventType) String() string {
	if int(e) < eventTypes {
		return eventNames[e]
	}
	return "Unknown"
}

// Event is a single scheduled event in the Scheduler's list.
type Event struct {
	cycle     uint64
	eventType EventType
	scheduled bool
	next      *Event
}
