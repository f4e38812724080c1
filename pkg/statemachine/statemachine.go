package statemachine

// StateFn is a state following Rob Pike's lexer pattern: running a state
// does its work and returns the next state, or nil when the machine is done.
type StateFn[T any] func(*T) StateFn[T]

// Machine walks an entity through a chain of state functions. It is not
// safe for concurrent use; the owner of the entity drives it from a single
// goroutine.
type Machine[T any] struct {
	entity *T
	state  StateFn[T]
}

// New creates a machine parked on the initial state.
func New[T any](entity *T, initial StateFn[T]) *Machine[T] {
	return &Machine[T]{entity: entity, state: initial}
}

// Step runs the current state once and advances to whatever it returns.
// It reports false when the machine has already terminated.
func (m *Machine[T]) Step() bool {
	if m.state == nil {
		return false
	}
	m.state = m.state(m.entity)
	return true
}

// Done reports whether the machine has reached a terminal (nil) state.
func (m *Machine[T]) Done() bool {
	return m.state == nil
}

// Set parks the machine on the given state without running it.
func (m *Machine[T]) Set(state StateFn[T]) {
	m.state = state
}

// Current returns the state the machine is parked on.
func (m *Machine[T]) Current() StateFn[T] {
	return m.state
}
