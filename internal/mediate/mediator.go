// Package mediate attaches overlays to remote objects and routes their
// property queries and events to the host's output channels.
//
// A Mediator is driven from the host's single dispatch goroutine and is not
// safe for concurrent use. The one exception is the pending-focus queue,
// which the host's event queue may inspect from elsewhere.
package mediate

import (
	"log/slog"
	"time"

	"github.com/mj1618/kakao-a11y/internal/focus"
	"github.com/mj1618/kakao-a11y/internal/guard"
	"github.com/mj1618/kakao-a11y/internal/ime"
	"github.com/mj1618/kakao-a11y/internal/model"
	"github.com/mj1618/kakao-a11y/internal/overlay"
	"github.com/mj1618/kakao-a11y/internal/platform"
	"github.com/mj1618/kakao-a11y/internal/protocol"
)

// Options configures a Mediator.
type Options struct {
	Rules      overlay.Rules
	UIAClasses []string
	SlowCall   time.Duration
	IME        ime.Policy
	Logger     *slog.Logger
}

// DefaultOptions matches the KakaoTalk desktop client.
func DefaultOptions() Options {
	rules := overlay.DefaultRules()
	return Options{
		Rules:      rules,
		UIAClasses: []string{rules.ListClass},
		SlowCall:   guard.DefaultSlowCall,
	}
}

// Mediator is the host-facing entry point of the mediation layer.
type Mediator struct {
	provider   *platform.Provider
	acc        *guard.Accessor
	classifier *overlay.Classifier
	selector   *protocol.Selector
	ime        ime.Policy
	log        *slog.Logger

	queue      focus.Queue
	live       map[string]*Object
	generation uint64
	foreground model.Foreground
}

// New returns a Mediator over the host collaborators in p.
func New(p *platform.Provider, opts Options) *Mediator {
	if p == nil {
		p = &platform.Provider{}
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	m := &Mediator{
		provider: p,
		log:      log,
		live:     make(map[string]*Object),
	}
	m.Reconfigure(opts)
	return m
}

// Reconfigure swaps the classification rules, the protocol allow-list, the
// slow-call threshold and the IME policy. Objects already observed keep
// their overlay.
func (m *Mediator) Reconfigure(opts Options) {
	m.acc = guard.New(m.provider.Remote, guard.WithLogger(m.log), guard.WithSlowCall(opts.SlowCall))
	m.classifier = overlay.NewClassifier(opts.Rules)
	m.selector = protocol.NewSelector(m.provider.WindowClasses, opts.UIAClasses, m.log)
	m.ime = opts.IME
}

// Classifier returns the active classifier.
func (m *Mediator) Classifier() *overlay.Classifier { return m.classifier }

// SelectProtocol tells the host which protocol to use for hwnd.
func (m *Mediator) SelectProtocol(hwnd model.Handle) model.Protocol {
	return m.selector.Select(hwnd)
}

// Observe attaches an overlay to a newly observed remote object. Observing
// the same element again supersedes the earlier observation.
func (m *Mediator) Observe(obj model.RemoteObject) *Object {
	m.generation++
	obj.Generation = m.generation
	kind := m.classifier.Classify(obj)
	o := &Object{
		m:      m,
		remote: obj,
		kind:   kind,
		flags:  kind.Flags(),
		policy: kind.Policy(),
	}
	if prev, ok := m.live[obj.Key()]; ok {
		m.log.Debug("observation superseded", "object", obj.Key(), "old", prev.remote.Generation, "new", obj.Generation)
	}
	m.live[obj.Key()] = o
	m.log.Debug("object observed", "object", obj.String(), "overlay", kind.String())
	return o
}

// Drop discards an observation when the host releases it.
func (m *Mediator) Drop(o *Object) {
	if m.current(o.remote) {
		delete(m.live, o.remote.Key())
	}
}

// Lookup returns the current observation of the element with key.
func (m *Mediator) Lookup(key string) (*Object, bool) {
	o, ok := m.live[key]
	return o, ok
}

func (m *Mediator) current(obj model.RemoteObject) bool {
	o, ok := m.live[obj.Key()]
	return ok && o.remote.Generation == obj.Generation
}

// Foreground returns the host's current focus snapshot.
func (m *Mediator) Foreground() model.Foreground { return m.foreground }

// SetForeground records a focus change the host observed outside this
// layer, e.g. a context menu owned by another window.
func (m *Mediator) SetForeground(fg model.Foreground) { m.foreground = fg }

// Pending reports whether a synthesized focus signal for o is queued.
func (m *Mediator) Pending(o *Object) bool { return m.queue.Pending(o.remote) }

// PendingCount returns the number of queued focus signals.
func (m *Mediator) PendingCount() int { return m.queue.Len() }

// DeliverPending processes queued synthesized focus signals. Signals whose
// observation was dropped or superseded are discarded.
func (m *Mediator) DeliverPending() (delivered, dropped int) {
	ready, stale := m.queue.Drain(m.current)
	for _, obj := range stale {
		m.log.Debug("dropping stale synthesized focus", "object", obj.Key(), "generation", obj.Generation)
	}
	for _, obj := range ready {
		m.live[obj.Key()].OnGainFocus()
	}
	return len(ready), len(stale)
}

func (m *Mediator) speak(obj model.RemoteObject, reason platform.Reason) {
	if m.provider.Speech != nil {
		m.provider.Speech.Speak(obj, reason)
	}
}

func (m *Mediator) indicate(obj model.RemoteObject, reason platform.Reason) {
	if m.provider.Indicator != nil {
		m.provider.Indicator.Update(obj, reason)
	}
}

func (m *Mediator) tactile() platform.Tactile {
	return m.provider.Tactile
}
