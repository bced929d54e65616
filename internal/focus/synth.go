// Package focus synthesizes "gained focus" signals for objects the remote
// application only reports as selected.
package focus

import (
	"github.com/mj1618/kakao-a11y/internal/guard"
	"github.com/mj1618/kakao-a11y/internal/model"
)

// Reason explains a focus decision.
type Reason string

const (
	ReasonSelected      Reason = "selected"
	ReasonTransientMenu Reason = "transient-menu"
	ReasonReadFailed    Reason = "state-read-failed"
	ReasonNotSelected   Reason = "not-selected"
	ReasonNotSupported  Reason = "not-supported"
)

// Intent is the outcome of one selection event.
type Intent struct {
	Emit   bool   `yaml:"emit"   json:"emit"`
	Reason Reason `yaml:"reason" json:"reason"`
}

// Blocked reports whether selection signals must be discarded outright
// because a context menu owns the foreground.
func Blocked(fg model.Foreground) bool {
	return fg.IsTransientMenu()
}

// Decide computes the intent for a selection event from the foreground
// snapshot taken when the event arrived and the state read made after base
// selection handling.
func Decide(fg model.Foreground, post guard.Result[model.StateSet]) Intent {
	if Blocked(fg) {
		return Intent{Reason: ReasonTransientMenu}
	}
	states, err := post.Get()
	if err != nil {
		return Intent{Reason: ReasonReadFailed}
	}
	if !states.Has(model.StateSelected) {
		return Intent{Reason: ReasonNotSelected}
	}
	return Intent{Emit: true, Reason: ReasonSelected}
}

// Focused applies the synthesized focus rule to a state set: selected
// implies focused. The input is not modified.
func Focused(states model.StateSet) model.StateSet {
	if states.Has(model.StateSelected) && !states.Has(model.StateFocused) {
		return states.With(model.StateFocused)
	}
	return states
}
