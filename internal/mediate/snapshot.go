package mediate

import (
	"github.com/mj1618/kakao-a11y/internal/model"
	"github.com/mj1618/kakao-a11y/internal/overlay"
)

// Snapshot is a serializable view of an Object as the host would see it.
type Snapshot struct {
	Object  model.RemoteObject `yaml:"object"             json:"object"`
	Overlay overlay.Kind       `yaml:"overlay"            json:"overlay"`
	Flags   overlay.Flags      `yaml:"flags"              json:"flags"`
	Policy  overlay.Policy     `yaml:"policy"             json:"policy"`
	Role    model.Role         `yaml:"role"               json:"role"`
	Name    string             `yaml:"name,omitempty"     json:"name,omitempty"`
	States  []string           `yaml:"states,omitempty"   json:"states,omitempty"`
	Tactile []Region           `yaml:"tactile"            json:"tactile"`
	Pending bool               `yaml:"pending,omitempty"  json:"pending,omitempty"`
}

// Snapshot reads the object's mediated view. Every remote read goes
// through the guarded accessor.
func (o *Object) Snapshot() Snapshot {
	return Snapshot{
		Object:  o.remote,
		Overlay: o.kind,
		Flags:   o.flags,
		Policy:  o.policy,
		Role:    o.Role(),
		Name:    o.Name(),
		States:  o.States().Sorted(),
		Tactile: o.TactileRegions(),
		Pending: o.m.queue.Pending(o.remote),
	}
}
