package model

import (
	"fmt"
	"strings"
)

// Protocol identifies which remote accessibility protocol exposed an object.
type Protocol string

const (
	// ProtocolUIA is the tree-based, property-cached protocol (UI Automation).
	ProtocolUIA Protocol = "uia"
	// ProtocolLegacy is the per-object interface protocol (MSAA/IAccessible).
	ProtocolLegacy Protocol = "legacy"
)

// ParseProtocol converts a user-supplied protocol name to a Protocol.
func ParseProtocol(s string) (Protocol, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uia", "remote-ui-automation":
		return ProtocolUIA, nil
	case "legacy", "msaa", "ia", "legacy-accessibility":
		return ProtocolLegacy, nil
	default:
		return "", fmt.Errorf("unknown protocol: %q (expected uia or legacy)", s)
	}
}

// Handle is an OS window handle.
type Handle uint64

func (h Handle) String() string {
	return fmt.Sprintf("0x%x", uint64(h))
}

// RemoteObject identifies an element in the remote application's
// accessibility tree. It is a description, not an owner: the element may
// disappear at any moment.
type RemoteObject struct {
	Window      Handle   `yaml:"window"               json:"window"`
	WindowClass string   `yaml:"class"                json:"class"`
	ControlID   int      `yaml:"control_id,omitempty" json:"control_id,omitempty"`
	Role        Role     `yaml:"role"                 json:"role"`
	Protocol    Protocol `yaml:"protocol"             json:"protocol"`
	RuntimeID   string   `yaml:"runtime_id,omitempty" json:"runtime_id,omitempty"`

	// Generation is assigned by the mediator on every observation so that a
	// reused runtime id never aliases an older observation.
	Generation uint64 `yaml:"-" json:"-"`
}

// Key returns the identity used to correlate events with an observation.
func (o RemoteObject) Key() string {
	if o.RuntimeID != "" {
		return o.RuntimeID
	}
	return fmt.Sprintf("%s/%d/%s", o.Window, o.ControlID, o.Role)
}

func (o RemoteObject) String() string {
	return fmt.Sprintf("%s[%s class=%s id=%d role=%s]", o.Key(), o.Protocol, o.WindowClass, o.ControlID, o.Role)
}

// Foreground is a snapshot of the object the host currently treats as
// focused. A zero Foreground means nothing is focused.
type Foreground struct {
	Role       Role   `yaml:"role"          json:"role"`
	Key        string `yaml:"key,omitempty" json:"key,omitempty"`
	Generation uint64 `yaml:"-"             json:"-"`
}

// ForegroundOf builds a snapshot from an observed object.
func ForegroundOf(o RemoteObject) Foreground {
	return Foreground{Role: o.Role, Key: o.Key(), Generation: o.Generation}
}

// IsTransientMenu reports whether the foreground is a context menu surface.
func (f Foreground) IsTransientMenu() bool {
	return transientMenuRoles[f.Role]
}
