package sim

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mj1618/kakao-a11y/internal/guard"
	"github.com/mj1618/kakao-a11y/internal/model"
)

// Fault is an injected remote failure.
type Fault string

const (
	FaultNone        Fault = ""
	FaultUnavailable Fault = "unavailable"
	FaultTimeout     Fault = "timeout"
	FaultInvalid     Fault = "invalid"
	FaultPanic       Fault = "panic"
)

// ParseFault converts a scenario string to a Fault.
func ParseFault(s string) (Fault, error) {
	switch f := Fault(strings.ToLower(strings.TrimSpace(s))); f {
	case FaultNone, FaultUnavailable, FaultTimeout, FaultInvalid, FaultPanic:
		return f, nil
	default:
		return FaultNone, fmt.Errorf("unknown fault: %q (expected unavailable, timeout, invalid, or panic)", s)
	}
}

func (f Fault) err(op string) error {
	switch f {
	case FaultUnavailable:
		return fmt.Errorf("%s: %w", op, guard.ErrUnavailable)
	case FaultTimeout:
		return fmt.Errorf("%s: %w", op, guard.ErrTimeout)
	case FaultInvalid:
		return fmt.Errorf("%s: %w", op, guard.ErrInvalid)
	case FaultPanic:
		panic(fmt.Sprintf("%s: injected remote crash", op))
	default:
		return nil
	}
}

// faultAll applies to every property of an object.
const faultAll model.PropertyID = "*"

type element struct {
	props  map[model.PropertyID]any
	faults map[model.PropertyID]Fault
	gone   bool
}

// Remote is a scripted platform.Remote.
type Remote struct {
	mu       sync.Mutex
	elements map[string]*element

	// Counters, for assertions.
	PropertyCalls map[model.PropertyID]int
	PrefetchCalls int
	Invocations   []model.Action
}

// NewRemote returns an empty remote tree.
func NewRemote() *Remote {
	return &Remote{
		elements:      make(map[string]*element),
		PropertyCalls: make(map[model.PropertyID]int),
	}
}

func (r *Remote) elem(obj model.RemoteObject) *element {
	key := obj.Key()
	el, ok := r.elements[key]
	if !ok {
		el = &element{
			props:  make(map[model.PropertyID]any),
			faults: make(map[model.PropertyID]Fault),
		}
		r.elements[key] = el
	}
	return el
}

// Set stores a property value for obj.
func (r *Remote) Set(obj model.RemoteObject, prop model.PropertyID, v any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elem(obj).props[prop] = v
}

// SetStates replaces the state set for obj.
func (r *Remote) SetStates(obj model.RemoteObject, states ...model.State) {
	r.Set(obj, model.PropStates, model.NewStateSet(states...))
}

// Inject makes every read of prop on obj fail with f. Use "*" for all
// properties; FaultNone clears the injection.
func (r *Remote) Inject(obj model.RemoteObject, prop model.PropertyID, f Fault) {
	r.mu.Lock()
	defer r.mu.Unlock()
	el := r.elem(obj)
	if f == FaultNone {
		delete(el.faults, prop)
		return
	}
	el.faults[prop] = f
}

// Dispose marks obj as gone; later calls fail with ErrUnavailable.
func (r *Remote) Dispose(obj model.RemoteObject) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elem(obj).gone = true
}

// Property implements platform.Remote.
func (r *Remote) Property(obj model.RemoteObject, prop model.PropertyID) (any, error) {
	r.mu.Lock()
	r.PropertyCalls[prop]++
	el := r.elem(obj)
	f, ok := el.faults[prop]
	if !ok {
		f = el.faults[faultAll]
	}
	gone := el.gone
	v := el.props[prop]
	r.mu.Unlock()

	if gone {
		return nil, fmt.Errorf("property %s: %w", prop, guard.ErrUnavailable)
	}
	if f == FaultInvalid {
		// A malformed payload rather than an error: the guard has to spot it.
		return struct{ Raw []byte }{Raw: []byte{0xff}}, nil
	}
	if err := f.err("property " + string(prop)); err != nil {
		return nil, err
	}
	return v, nil
}

// Invoke implements platform.Remote. Selecting an element adds the
// selected state.
func (r *Remote) Invoke(obj model.RemoteObject, action model.Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Invocations = append(r.Invocations, action)
	el := r.elem(obj)
	if el.gone {
		return fmt.Errorf("invoke %s: %w", action, guard.ErrUnavailable)
	}
	if action == model.ActionSelect {
		states, _ := model.StateSetOf(el.props[model.PropStates])
		el.props[model.PropStates] = states.With(model.StateSelected)
	}
	return nil
}

// Prefetch implements platform.Remote.
func (r *Remote) Prefetch(obj model.RemoteObject, props []model.PropertyID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.PrefetchCalls++
	if r.elem(obj).gone {
		return fmt.Errorf("prefetch: %w", guard.ErrUnavailable)
	}
	return nil
}

// Calls returns how many times prop was read.
func (r *Remote) Calls(prop model.PropertyID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.PropertyCalls[prop]
}

// Prefetches returns how many batched fetches were issued.
func (r *Remote) Prefetches() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.PrefetchCalls
}
