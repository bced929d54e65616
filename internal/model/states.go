package model

import "sort"

// State is a single accessibility state flag.
type State string

const (
	StateFocused    State = "focused"
	StateFocusable  State = "focusable"
	StateSelected   State = "selected"
	StateSelectable State = "selectable"
	StateInvisible  State = "invisible"
	StateReadOnly   State = "readonly"
	StateBusy       State = "busy"
)

// StateSet is a set of states. The nil set is empty and safe to query.
type StateSet map[State]struct{}

// NewStateSet builds a set from the given states.
func NewStateSet(states ...State) StateSet {
	s := make(StateSet, len(states))
	for _, st := range states {
		s[st] = struct{}{}
	}
	return s
}

// Has reports whether st is in the set.
func (s StateSet) Has(st State) bool {
	_, ok := s[st]
	return ok
}

// With returns a copy of s with st added.
func (s StateSet) With(st State) StateSet {
	c := make(StateSet, len(s)+1)
	for k := range s {
		c[k] = struct{}{}
	}
	c[st] = struct{}{}
	return c
}

// Sorted returns the states in lexical order, for stable output.
func (s StateSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, string(k))
	}
	sort.Strings(out)
	return out
}

// StateSetOf normalizes the state payloads remotes return: a StateSet, a
// []State, a []string or nil. ok is false for any other shape.
func StateSetOf(v any) (set StateSet, ok bool) {
	switch s := v.(type) {
	case nil:
		return StateSet{}, true
	case StateSet:
		return s, true
	case []State:
		return NewStateSet(s...), true
	case []string:
		set = make(StateSet, len(s))
		for _, st := range s {
			set[State(st)] = struct{}{}
		}
		return set, true
	default:
		return nil, false
	}
}
