package flow

import "time"

// State enumerates machine states.
type State string

const (
	StateIdle       State = "idle"
	StateProcessing State = "processing"
)

// TransitionFunc observes a completed transition. prev and next may be equal
// when the event had no effect.
type TransitionFunc func(ev Event, prev, next Snapshot)

// Machine sequences events through the reducer: idle -> processing -> idle.
// It is not safe for concurrent use.
type Machine struct {
	state    State
	ctx      Snapshot
	now      func() time.Time
	onChange []TransitionFunc
}

// MachineOption customises a Machine.
type MachineOption func(*Machine)

// WithClock overrides the time source used to stamp transactions.
func WithClock(now func() time.Time) MachineOption {
	return func(m *Machine) {
		if now != nil {
			m.now = now
		}
	}
}

// OnTransition registers a listener invoked after each processed event.
func OnTransition(fn TransitionFunc) MachineOption {
	return func(m *Machine) {
		if fn != nil {
			m.onChange = append(m.onChange, fn)
		}
	}
}

// NewMachine creates a machine in the idle state holding initial.
func NewMachine(initial Snapshot, opts ...MachineOption) *Machine {
	m := &Machine{state: StateIdle, ctx: initial.Clone(), now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Context returns a copy of the current snapshot.
func (m *Machine) Context() Snapshot {
	return m.ctx.Clone()
}

// Send processes one event synchronously and returns the resulting snapshot.
func (m *Machine) Send(ev Event) (Snapshot, error) {
	if m.state != StateIdle {
		return m.ctx.Clone(), ErrMachineBusy
	}
	if ev == nil {
		return m.ctx.Clone(), nil
	}
	switch ev.(type) {
	case SubmitEvent, RemoveEvent, UndoEvent, ResetEvent:
	default:
		return m.ctx.Clone(), nil
	}

	m.state = StateProcessing
	defer func() { m.state = StateIdle }()
	prev := m.ctx
	m.ctx = Reduce(prev, ev, m.now())
	for _, fn := range m.onChange {
		fn(ev, prev.Clone(), m.ctx.Clone())
	}
	return m.ctx.Clone(), nil
}
