package mediate

import (
	"strings"

	"github.com/mj1618/kakao-a11y/internal/focus"
	"github.com/mj1618/kakao-a11y/internal/model"
	"github.com/mj1618/kakao-a11y/internal/overlay"
	"github.com/mj1618/kakao-a11y/internal/platform"
)

// Object is a remote object with its overlay attached. The overlay is fixed
// for the lifetime of the Object.
type Object struct {
	m      *Mediator
	remote model.RemoteObject
	kind   overlay.Kind
	flags  overlay.Flags
	policy overlay.Policy
}

// Remote returns the underlying remote object description.
func (o *Object) Remote() model.RemoteObject { return o.remote }

// Kind returns the attached overlay.
func (o *Object) Kind() overlay.Kind { return o.kind }

// Flags returns the overlay's behavior flags.
func (o *Object) Flags() overlay.Flags { return o.flags }

// Policy returns the overlay's channel policy.
func (o *Object) Policy() overlay.Policy { return o.policy }

// AllowFocusWithoutHardwareFlag reports whether the host may accept focus
// events for this object even when the remote does not mark it as having
// keyboard focus.
func (o *Object) AllowFocusWithoutHardwareFlag() bool {
	return o.flags.FocusWithoutHWFlag
}

// States returns the state set. For overlays that synthesize focus,
// selected also reports focused on every query.
func (o *Object) States() model.StateSet {
	states := o.m.acc.States(o.remote)
	if o.flags.SynthesizeFocus {
		return focus.Focused(states)
	}
	return states
}

// Name returns the accessible name, falling back to the value for overlays
// whose remote leaves the name empty.
func (o *Object) Name() string {
	name := o.m.acc.String(o.remote, model.PropName)
	if name == "" && o.flags.NameFromValue {
		name = o.m.acc.String(o.remote, model.PropValue)
	}
	return name
}

// Value returns the accessible value.
func (o *Object) Value() string {
	return o.m.acc.String(o.remote, model.PropValue)
}

// Description returns the accessible description.
func (o *Object) Description() string {
	return o.m.acc.String(o.remote, model.PropDescription)
}

// Role returns the reported role. It never calls the remote.
func (o *Object) Role() model.Role {
	if o.flags.RoleAbsent {
		return model.RoleNone
	}
	return o.remote.Role
}

// Prefetch runs the bulk property prefetch hook and reports whether a
// batched fetch was issued. Prefetch-disabled overlays never issue one;
// later reads go through the single-property guarded path.
func (o *Object) Prefetch(props []model.PropertyID) bool {
	if o.flags.PrefetchDisabled {
		o.m.log.Debug("prefetch suppressed", "object", o.remote.Key(), "overlay", o.kind.String(), "props", len(props))
		return false
	}
	return o.m.acc.Prefetch(o.remote, props).OK()
}

// OnGainFocus handles a focus event, real or synthesized.
func (o *Object) OnGainFocus() {
	o.m.foreground = model.ForegroundOf(o.remote)
	o.m.speak(o.remote, platform.ReasonFocus)
	o.m.indicate(o.remote, platform.ReasonFocus)
	if t := o.m.tactile(); o.policy.Tactile && t != nil {
		t.GainFocus(o.remote)
	}
}

// OnValueChange handles a value-change event.
func (o *Object) OnValueChange() {
	o.m.speak(o.remote, platform.ReasonValueChange)
	o.m.indicate(o.remote, platform.ReasonValueChange)
	if t := o.m.tactile(); o.policy.Tactile && t != nil {
		t.Update(o.remote)
	}
}

// OnNameChange reports a rename of the focused object. Renames of objects
// that do not hold focus are ignored.
func (o *Object) OnNameChange() {
	if !o.isForeground() {
		return
	}
	o.m.speak(o.remote, platform.ReasonNameChange)
	o.m.indicate(o.remote, platform.ReasonNameChange)
	if t := o.m.tactile(); o.policy.Tactile && t != nil {
		t.Update(o.remote)
	}
}

// OnCaret handles a caret movement. It reports nothing while a synthesized
// focus signal for this object is still pending, since the caret position
// would describe an object about to be superseded.
func (o *Object) OnCaret() bool {
	if o.m.queue.Pending(o.remote) {
		o.m.log.Debug("caret suppressed; focus pending", "object", o.remote.Key())
		return false
	}
	o.m.indicate(o.remote, platform.ReasonCaret)
	if t := o.m.tactile(); o.policy.Tactile && t != nil {
		t.Caret(o.remote)
	}
	return true
}

// OnElementSelected handles the remote's element-selected signal and
// returns the focus decision made for it.
func (o *Object) OnElementSelected() focus.Intent {
	if !o.flags.SynthesizeFocus {
		o.m.indicate(o.remote, platform.ReasonSelection)
		return focus.Intent{Reason: focus.ReasonNotSupported}
	}

	fg := o.m.foreground
	if focus.Blocked(fg) {
		o.m.log.Debug("selection ignored; menu in foreground", "object", o.remote.Key(), "foreground", string(fg.Role))
		return focus.Intent{Reason: focus.ReasonTransientMenu}
	}

	o.m.indicate(o.remote, platform.ReasonSelection)

	intent := focus.Decide(fg, o.m.acc.StatesResult(o.remote))
	if intent.Emit {
		o.m.queue.Push(o.remote)
	}
	return intent
}

// OnComposition reports whether an IME composition update for this object
// should be suppressed.
func (o *Object) OnComposition() bool {
	if !o.m.ime.Enabled() || o.m.provider.Locale == nil {
		return false
	}
	tag, err := o.m.provider.Locale.InputLocale()
	if err != nil {
		o.m.log.Debug("input locale unavailable", "err", err)
		return false
	}
	return o.m.ime.Suppress(o.Name(), tag)
}

func (o *Object) isForeground() bool {
	fg := o.m.foreground
	return fg.Key == o.remote.Key() && fg.Generation == o.remote.Generation
}

// describe joins the non-empty parts of the default tactile rendering.
func describe(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
