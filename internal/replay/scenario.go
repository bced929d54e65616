// Package replay runs scripted host sessions against the mediator using
// the simulated platform. A scenario declares windows, remote objects and
// their properties, then a list of host events to feed through.
package replay

import (
	"fmt"

	"github.com/mj1618/kakao-a11y/internal/model"
	"github.com/mj1618/kakao-a11y/internal/platform/sim"
	"gopkg.in/yaml.v3"
)

// ObjectDef declares a remote object and its initial property values.
type ObjectDef struct {
	Window      model.Handle      `yaml:"window"`
	Class       string            `yaml:"class"`
	ControlID   int               `yaml:"control_id"`
	Role        string            `yaml:"role"`
	Protocol    string            `yaml:"protocol"`
	Name        string            `yaml:"name"`
	Value       string            `yaml:"value"`
	Description string            `yaml:"description"`
	States      []string          `yaml:"states"`
	Bounds      []int             `yaml:"bounds"`
	Faults      map[string]string `yaml:"faults"`
}

// Scenario is a parsed replay script.
type Scenario struct {
	Windows    map[model.Handle]string             `yaml:"windows"`
	Locale     string                              `yaml:"locale"`
	Foreground string                              `yaml:"foreground"`
	Objects    map[string]ObjectDef                `yaml:"objects"`
	Steps      []map[string]map[string]interface{} `yaml:"steps"`
}

// Parse decodes a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty scenario")
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("no steps provided; expected a YAML list under steps")
	}
	for name, def := range s.Objects {
		for prop, f := range def.Faults {
			if _, err := sim.ParseFault(f); err != nil {
				return nil, fmt.Errorf("object %s fault on %s: %w", name, prop, err)
			}
		}
		if def.Protocol != "" {
			if _, err := model.ParseProtocol(def.Protocol); err != nil {
				return nil, fmt.Errorf("object %s: %w", name, err)
			}
		}
		if len(def.Bounds) != 0 && len(def.Bounds) != 4 {
			return nil, fmt.Errorf("object %s: bounds must be [x, y, w, h]", name)
		}
	}
	return &s, nil
}
