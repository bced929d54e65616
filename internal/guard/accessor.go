// Package guard wraps every call into the remote accessibility tree so that
// failures are converted to typed results and never escape to the host's
// dispatch goroutine.
package guard

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mj1618/kakao-a11y/internal/model"
	"github.com/mj1618/kakao-a11y/internal/platform"
)

// DefaultSlowCall is the latency above which a call is logged as slow and a
// failure is classified as a timeout.
const DefaultSlowCall = 500 * time.Millisecond

// Accessor performs guarded calls against a platform.Remote.
type Accessor struct {
	remote platform.Remote
	log    *slog.Logger
	slow   time.Duration
	now    func() time.Time
}

// Option configures an Accessor.
type Option func(*Accessor)

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(a *Accessor) { a.log = l }
}

// WithSlowCall sets the slow-call threshold. Zero disables slow-call detection.
func WithSlowCall(d time.Duration) Option {
	return func(a *Accessor) { a.slow = d }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(a *Accessor) { a.now = now }
}

// New returns an Accessor over remote.
func New(remote platform.Remote, opts ...Option) *Accessor {
	a := &Accessor{
		remote: remote,
		log:    slog.Default(),
		slow:   DefaultSlowCall,
		now:    time.Now,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// call runs fn and contains any error or panic it produces.
func (a *Accessor) call(obj model.RemoteObject, op string, fn func() error) (gerr *Error) {
	start := a.now()
	defer func() {
		if r := recover(); r != nil {
			gerr = &Error{Kind: KindInvalid, Op: op, Object: obj.Key(), Err: fmt.Errorf("remote panic: %v", r)}
		}
		elapsed := a.now().Sub(start)
		if a.slow > 0 && elapsed >= a.slow {
			a.log.Debug("slow remote call", "op", op, "object", obj.Key(), "elapsed", elapsed)
			if gerr != nil && gerr.Kind == KindUnavailable {
				gerr.Kind = KindTimeout
			}
		}
		if gerr != nil {
			a.log.Debug("remote call failed", "op", op, "object", obj.Key(), "kind", gerr.Kind.String(), "err", gerr.Err)
		}
	}()

	if a.remote == nil {
		return &Error{Kind: KindUnavailable, Op: op, Object: obj.Key(), Err: ErrUnavailable}
	}
	if err := fn(); err != nil {
		return &Error{Kind: kindOf(err), Op: op, Object: obj.Key(), Err: err}
	}
	return nil
}

// Read fetches one property.
func (a *Accessor) Read(obj model.RemoteObject, prop model.PropertyID) Result[any] {
	var v any
	if err := a.call(obj, "read "+string(prop), func() error {
		var err error
		v, err = a.remote.Property(obj, prop)
		return err
	}); err != nil {
		return Fail[any](err)
	}
	return Ok(v)
}

// Invoke runs a remote action.
func (a *Accessor) Invoke(obj model.RemoteObject, action model.Action) Result[struct{}] {
	if err := a.call(obj, "invoke "+string(action), func() error {
		return a.remote.Invoke(obj, action)
	}); err != nil {
		return Fail[struct{}](err)
	}
	return Ok(struct{}{})
}

// Prefetch issues a batched property fetch. Callers decide whether the
// object may be prefetched at all; see mediate.Object.Prefetch.
func (a *Accessor) Prefetch(obj model.RemoteObject, props []model.PropertyID) Result[struct{}] {
	if err := a.call(obj, "prefetch", func() error {
		return a.remote.Prefetch(obj, props)
	}); err != nil {
		return Fail[struct{}](err)
	}
	return Ok(struct{}{})
}

// StatesResult reads the state set, keeping the failure visible.
func (a *Accessor) StatesResult(obj model.RemoteObject) Result[model.StateSet] {
	r := a.Read(obj, model.PropStates)
	v, err := r.Get()
	if err != nil {
		return Fail[model.StateSet](r.err)
	}
	set, ok := model.StateSetOf(v)
	if !ok {
		return Fail[model.StateSet](a.invalid(obj, model.PropStates, v))
	}
	return Ok(set)
}

// States reads the state set, or an empty set on failure.
func (a *Accessor) States(obj model.RemoteObject) model.StateSet {
	return a.StatesResult(obj).Or(model.StateSet{})
}

// StringResult reads a string property, keeping the failure visible.
func (a *Accessor) StringResult(obj model.RemoteObject, prop model.PropertyID) Result[string] {
	r := a.Read(obj, prop)
	v, err := r.Get()
	if err != nil {
		return Fail[string](r.err)
	}
	switch s := v.(type) {
	case nil:
		return Ok("")
	case string:
		return Ok(s)
	case fmt.Stringer:
		return Ok(s.String())
	default:
		return Fail[string](a.invalid(obj, prop, v))
	}
}

// String reads a string property, or "" on failure.
func (a *Accessor) String(obj model.RemoteObject, prop model.PropertyID) string {
	return a.StringResult(obj, prop).Or("")
}

// Bool reads a boolean property, or false on failure.
func (a *Accessor) Bool(obj model.RemoteObject, prop model.PropertyID) bool {
	r := a.Read(obj, prop)
	v, err := r.Get()
	if err != nil {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		a.invalid(obj, prop, v)
		return false
	}
	return b
}

func (a *Accessor) invalid(obj model.RemoteObject, prop model.PropertyID, v any) *Error {
	err := &Error{
		Kind:   KindInvalid,
		Op:     "read " + string(prop),
		Object: obj.Key(),
		Err:    fmt.Errorf("%w: unexpected %T", ErrInvalid, v),
	}
	a.log.Debug("remote call failed", "op", err.Op, "object", err.Object, "kind", err.Kind.String(), "err", err.Err)
	return err
}
