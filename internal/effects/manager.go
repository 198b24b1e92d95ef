// Package effects tracks timed gameplay modifiers. Each active effect owns a
// restore function that undoes exactly the changes it made, and at most one
// instance of a kind is active at a time.
package effects

// Unbounded marks an effect with no countdown. It stays active until it is
// expired explicitly, for example when a shield is consumed.
const Unbounded = -1

// Restore reverts the state changes made when an effect was applied.
type Restore func()

type entry[K comparable] struct {
	kind      K
	restore   Restore
	remaining int
}

// Manager holds the active effects for one world.
type Manager[K comparable] struct {
	active []*entry[K] // activation order
}

// New creates an empty manager.
func New[K comparable]() *Manager[K] {
	return &Manager[K]{}
}

// Apply activates kind for duration ticks (or Unbounded). When kind is
// already active its restore runs first and its countdown is dropped, so
// apply always sees the pre-effect state. apply performs the change and
// returns the function that undoes it; a nil Restore is allowed.
func (m *Manager[K]) Apply(kind K, duration int, apply func() Restore) {
	if duration == 0 || duration < Unbounded {
		panic("effects: duration must be positive or Unbounded")
	}
	m.Expire(kind)

	restore := apply()
	m.active = append(m.active, &entry[K]{
		kind:      kind,
		restore:   restore,
		remaining: duration,
	})
}

// Expire restores and removes kind. It reports whether kind was active.
func (m *Manager[K]) Expire(kind K) bool {
	for i, e := range m.active {
		if e.kind != kind {
			continue
		}
		m.active = append(m.active[:i], m.active[i+1:]...)
		if e.restore != nil {
			e.restore()
		}
		return true
	}
	return false
}

// Tick advances every bounded countdown by one and expires the effects that
// reach zero, returning their kinds in activation order.
func (m *Manager[K]) Tick() []K {
	var expired []K
	for _, e := range m.active {
		if e.remaining == Unbounded {
			continue
		}
		e.remaining--
		if e.remaining <= 0 {
			expired = append(expired, e.kind)
		}
	}
	for _, k := range expired {
		m.Expire(k)
	}
	return expired
}

// ClearAll expires every active effect in activation order.
func (m *Manager[K]) ClearAll() {
	for len(m.active) > 0 {
		m.Expire(m.active[0].kind)
	}
}

// Active reports whether kind is currently applied.
func (m *Manager[K]) Active(kind K) bool {
	_, ok := m.Remaining(kind)
	return ok
}

// Remaining returns the ticks left for kind (Unbounded for effects without a
// countdown) and whether kind is active.
func (m *Manager[K]) Remaining(kind K) (int, bool) {
	for _, e := range m.active {
		if e.kind == kind {
			return e.remaining, true
		}
	}
	return 0, false
}

// Kinds returns the active kinds in activation order.
func (m *Manager[K]) Kinds() []K {
	kinds := make([]K, len(m.active))
	for i, e := range m.active {
		kinds[i] = e.kind
	}
	return kinds
}

// Len returns the number of active effects.
func (m *Manager[K]) Len() int {
	return len(m.active)
}
