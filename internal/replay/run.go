package replay

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/mj1618/kakao-a11y/internal/focus"
	"github.com/mj1618/kakao-a11y/internal/mediate"
	"github.com/mj1618/kakao-a11y/internal/model"
	"github.com/mj1618/kakao-a11y/internal/platform/sim"
	"golang.org/x/text/language"
)

// Result is the outcome of a replay.
type Result struct {
	OK        bool         `yaml:"ok"              json:"ok"`
	Action    string       `yaml:"action"          json:"action"`
	Steps     int          `yaml:"steps"           json:"steps"`
	Completed int          `yaml:"completed"       json:"completed"`
	Error     string       `yaml:"error,omitempty" json:"error,omitempty"`
	Results   []StepResult `yaml:"results"         json:"results"`
}

// StepResult is the output for a single step.
type StepResult struct {
	Step       int               `yaml:"step"                 json:"step"`
	OK         bool              `yaml:"ok"                   json:"ok"`
	Action     string            `yaml:"action"               json:"action"`
	Error      string            `yaml:"error,omitempty"      json:"error,omitempty"`
	Object     string            `yaml:"object,omitempty"     json:"object,omitempty"`
	Overlay    string            `yaml:"overlay,omitempty"    json:"overlay,omitempty"`
	Protocol   model.Protocol    `yaml:"protocol,omitempty"   json:"protocol,omitempty"`
	Intent     *focus.Intent     `yaml:"intent,omitempty"     json:"intent,omitempty"`
	Delivered  int               `yaml:"delivered,omitempty"  json:"delivered,omitempty"`
	Dropped    int               `yaml:"dropped,omitempty"    json:"dropped,omitempty"`
	Reported   *bool             `yaml:"reported,omitempty"   json:"reported,omitempty"`
	Suppressed *bool             `yaml:"suppressed,omitempty" json:"suppressed,omitempty"`
	Snapshot   *mediate.Snapshot `yaml:"snapshot,omitempty"   json:"snapshot,omitempty"`
	Calls      []sim.Call        `yaml:"calls,omitempty"      json:"calls,omitempty"`
}

// session is the state of one replay.
type session struct {
	host     *sim.Host
	m        *mediate.Mediator
	scenario *Scenario
	remotes  map[string]model.RemoteObject
	observed map[string]*mediate.Object
}

// Run executes the scenario's steps in order. By default execution stops on
// the first failing step.
func Run(s *Scenario, opts mediate.Options, stopOnError bool) (Result, error) {
	sess, err := newSession(s, opts)
	if err != nil {
		return Result{}, err
	}

	result := Result{Action: "replay", Steps: len(s.Steps), Results: make([]StepResult, 0, len(s.Steps))}
	failed := false
	for i, step := range s.Steps {
		stepNum := i + 1
		if len(step) != 1 {
			errMsg := fmt.Sprintf("step %d: expected exactly one action key, got %d", stepNum, len(step))
			result.Results = append(result.Results, StepResult{Step: stepNum, Error: errMsg})
			failed = true
			if stopOnError {
				result.Error = errMsg
				break
			}
			continue
		}

		for action, params := range step {
			sr, err := sess.execute(action, params)
			sr.Step = stepNum
			sr.Action = action
			sr.Calls = sess.host.Recorder.Take()
			if err != nil {
				sr.Error = err.Error()
				failed = true
				if stopOnError {
					result.Error = fmt.Sprintf("step %d: %s", stepNum, err)
				}
			} else {
				sr.OK = true
				result.Completed++
			}
			result.Results = append(result.Results, sr)
		}
		if failed && stopOnError {
			break
		}
	}
	result.OK = !failed
	return result, nil
}

func newSession(s *Scenario, opts mediate.Options) (*session, error) {
	host := sim.NewHost()
	for hwnd, class := range s.Windows {
		host.Windows.Set(hwnd, class)
	}
	if s.Locale != "" {
		tag, err := language.Parse(s.Locale)
		if err != nil {
			return nil, fmt.Errorf("invalid scenario locale %q: %w", s.Locale, err)
		}
		host.Locale.Tag = tag
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	sess := &session{
		host:     host,
		m:        mediate.New(host.Provider(), opts),
		scenario: s,
		remotes:  make(map[string]model.RemoteObject, len(s.Objects)),
		observed: make(map[string]*mediate.Object),
	}
	if s.Foreground != "" {
		sess.m.SetForeground(model.Foreground{Role: model.ParseRole(s.Foreground)})
	}

	names := make([]string, 0, len(s.Objects))
	for name := range s.Objects {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		def := s.Objects[name]
		obj := model.RemoteObject{
			Window:      def.Window,
			WindowClass: def.Class,
			ControlID:   def.ControlID,
			Role:        model.ParseRole(def.Role),
			RuntimeID:   name,
		}
		if obj.WindowClass == "" {
			obj.WindowClass = s.Windows[def.Window]
		}
		if def.Protocol != "" {
			obj.Protocol, _ = model.ParseProtocol(def.Protocol)
		}
		sess.remotes[name] = obj
		sess.seed(obj, def)
	}
	return sess, nil
}

// seed loads an object's declared properties into the simulated remote.
func (s *session) seed(obj model.RemoteObject, def ObjectDef) {
	r := s.host.Remote
	r.Set(obj, model.PropName, def.Name)
	r.Set(obj, model.PropValue, def.Value)
	r.Set(obj, model.PropDescription, def.Description)
	r.Set(obj, model.PropStates, def.States)
	if len(def.Bounds) == 4 {
		r.Set(obj, model.PropBounds, def.Bounds)
	}
	for prop, f := range def.Faults {
		fault, _ := sim.ParseFault(f)
		r.Inject(obj, model.PropertyID(prop), fault)
	}
}
