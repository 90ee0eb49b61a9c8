package animation

import (
	"sync"
	"time"
)

// State of a decorative component
type State string

const (
	StateIdle          State = "idle"
	StateTransitioning State = "transitioning"
)

// Transition is the declarative description of one animation cycle
type Transition struct {
	Name     string        `json:"name"`
	Duration time.Duration `json:"duration"`
	Easing   string        `json:"easing"`
}

// Machine moves between idle and transitioning. Triggers received while
// transitioning are dropped rather than queued.
type Machine struct {
	mu         sync.Mutex
	transition Transition
	state      State
}

func NewMachine(transition Transition) *Machine {
	return &Machine{
		transition: transition,
		state:      StateIdle,
	}
}

// Trigger starts a cycle and reports whether one was started
func (m *Machine) Trigger() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateTransitioning {
		return false
	}
	m.state = StateTransitioning
	return true
}

// Complete ends the current cycle. Calling it while idle has no effect.
func (m *Machine) Complete() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateTransitioning {
		return
	}
	m.state = StateIdle
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Machine) Transition() Transition {
	return m.transition
}
