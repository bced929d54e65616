package replay

import (
	"fmt"
	"strings"

	"github.com/mj1618/kakao-a11y/internal/mediate"
	"github.com/mj1618/kakao-a11y/internal/model"
	"github.com/mj1618/kakao-a11y/internal/platform"
	"github.com/mj1618/kakao-a11y/internal/platform/sim"
)

func (s *session) execute(action string, params map[string]interface{}) (StepResult, error) {
	switch action {
	case "observe":
		return s.executeObserve(params)
	case "drop":
		return s.withObject(params, func(name string, o *mediate.Object, sr *StepResult) error {
			s.m.Drop(o)
			delete(s.observed, name)
			return nil
		})
	case "foreground":
		return s.executeForeground(params)
	case "select":
		return s.withObject(params, func(_ string, o *mediate.Object, sr *StepResult) error {
			intent := o.OnElementSelected()
			sr.Intent = &intent
			return nil
		})
	case "focus":
		return s.withObject(params, func(_ string, o *mediate.Object, sr *StepResult) error {
			o.OnGainFocus()
			return nil
		})
	case "value":
		return s.withObject(params, func(_ string, o *mediate.Object, sr *StepResult) error {
			o.OnValueChange()
			return nil
		})
	case "name":
		return s.withObject(params, func(_ string, o *mediate.Object, sr *StepResult) error {
			o.OnNameChange()
			return nil
		})
	case "caret":
		return s.withObject(params, func(_ string, o *mediate.Object, sr *StepResult) error {
			reported := o.OnCaret()
			sr.Reported = &reported
			return nil
		})
	case "composition":
		return s.withObject(params, func(_ string, o *mediate.Object, sr *StepResult) error {
			suppressed := o.OnComposition()
			sr.Suppressed = &suppressed
			return nil
		})
	case "prefetch":
		return s.withObject(params, func(_ string, o *mediate.Object, sr *StepResult) error {
			issued := o.Prefetch(propertyList(params))
			sr.Reported = &issued
			return nil
		})
	case "inspect":
		return s.withObject(params, func(_ string, o *mediate.Object, sr *StepResult) error {
			snap := o.Snapshot()
			sr.Snapshot = &snap
			return nil
		})
	case "deliver":
		delivered, dropped := s.m.DeliverPending()
		return StepResult{Delivered: delivered, Dropped: dropped}, nil
	case "set":
		return s.executeSet(params)
	case "fault":
		return s.executeFault(params)
	case "protocol":
		return s.executeProtocol(params)
	default:
		return StepResult{}, fmt.Errorf("unknown action: %s (supported: observe, drop, foreground, select, focus, value, name, caret, composition, prefetch, inspect, deliver, set, fault, protocol)", action)
	}
}

// withObject resolves the step's observed object and runs fn on it.
func (s *session) withObject(params map[string]interface{}, fn func(string, *mediate.Object, *StepResult) error) (StepResult, error) {
	name := stringParam(params, "object", "")
	sr := StepResult{Object: name}
	if name == "" {
		return sr, fmt.Errorf("object is required")
	}
	o, ok := s.observed[name]
	if !ok {
		if _, declared := s.remotes[name]; !declared {
			return sr, fmt.Errorf("unknown object: %s", name)
		}
		return sr, fmt.Errorf("object %s has not been observed", name)
	}
	sr.Overlay = o.Kind().String()
	return sr, fn(name, o, &sr)
}

func (s *session) executeObserve(params map[string]interface{}) (StepResult, error) {
	name := stringParam(params, "object", "")
	sr := StepResult{Object: name}
	obj, ok := s.remotes[name]
	if !ok {
		return sr, fmt.Errorf("unknown object: %q", name)
	}
	if obj.Protocol == "" {
		obj.Protocol = s.m.SelectProtocol(obj.Window)
	}
	o := s.m.Observe(obj)
	s.observed[name] = o
	sr.Overlay = o.Kind().String()
	sr.Protocol = obj.Protocol
	return sr, nil
}

func (s *session) executeForeground(params map[string]interface{}) (StepResult, error) {
	if name := stringParam(params, "object", ""); name != "" {
		o, ok := s.observed[name]
		if !ok {
			return StepResult{Object: name}, fmt.Errorf("object %s has not been observed", name)
		}
		s.m.SetForeground(model.ForegroundOf(o.Remote()))
		return StepResult{Object: name}, nil
	}
	role := stringParam(params, "role", "")
	if role == "" {
		return StepResult{}, fmt.Errorf("foreground needs object or role")
	}
	s.m.SetForeground(model.Foreground{Role: model.ParseRole(role)})
	return StepResult{}, nil
}

func (s *session) executeSet(params map[string]interface{}) (StepResult, error) {
	name := stringParam(params, "object", "")
	obj, ok := s.remotes[name]
	if !ok {
		return StepResult{Object: name}, fmt.Errorf("unknown object: %q", name)
	}
	r := s.host.Remote
	for _, prop := range []model.PropertyID{model.PropName, model.PropValue, model.PropDescription} {
		if v, ok := params[string(prop)]; ok {
			r.Set(obj, prop, fmt.Sprint(v))
		}
	}
	if raw, ok := params["states"]; ok {
		r.Set(obj, model.PropStates, stringList(raw))
	}
	if _, ok := params["disposed"]; ok && boolParam(params, "disposed", false) {
		r.Dispose(obj)
	}
	return StepResult{Object: name}, nil
}

func (s *session) executeFault(params map[string]interface{}) (StepResult, error) {
	name := stringParam(params, "object", "")
	obj, ok := s.remotes[name]
	if !ok {
		return StepResult{Object: name}, fmt.Errorf("unknown object: %q", name)
	}
	fault, err := sim.ParseFault(stringParam(params, "fault", ""))
	if err != nil {
		return StepResult{Object: name}, err
	}
	prop := stringParam(params, "property", "*")
	s.host.Remote.Inject(obj, model.PropertyID(prop), fault)
	return StepResult{Object: name}, nil
}

func (s *session) executeProtocol(params map[string]interface{}) (StepResult, error) {
	raw := stringParam(params, "window", "")
	hwnd, err := platform.ParseHandle(raw)
	if err != nil {
		return StepResult{}, err
	}
	return StepResult{Protocol: s.m.SelectProtocol(hwnd)}, nil
}

func propertyList(params map[string]interface{}) []model.PropertyID {
	var props []model.PropertyID
	for _, p := range stringList(params["properties"]) {
		props = append(props, model.PropertyID(p))
	}
	if len(props) == 0 {
		props = []model.PropertyID{model.PropName, model.PropValue, model.PropStates, model.PropRole}
	}
	return props
}

// stringList accepts a YAML list or a comma-separated string.
func stringList(v interface{}) []string {
	switch t := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, e := range t {
			out = append(out, fmt.Sprint(e))
		}
		return out
	case string:
		var out []string
		for _, p := range strings.Split(t, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	default:
		return nil
	}
}

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok && v != nil {
		return fmt.Sprint(v)
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}
