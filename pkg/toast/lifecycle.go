package toast

// transitions is the legal lifecycle graph. Nested maps give O(1) lookups,
// the same shape the rest of our state handling uses.
var transitions = map[State]map[State]struct{}{
	StateActive: {
		StatePaused:   {},
		StateRemoving: {},
	},
	StatePaused: {
		StateActive:   {},
		StateRemoving: {},
	},
	StateRemoving: {
		StateRemoved: {},
	},
}

func canTransition(from, to State) bool {
	next, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}

// transition moves the item to the target state when the lifecycle allows it
// and reports whether the state actually changed.
func (it *item) transition(to State) bool {
	if !canTransition(it.state, to) {
		return false
	}
	it.state = to
	return true
}
