// Package overlay decides which behavioral profile a remote object gets and
// what each profile is allowed to do.
package overlay

import "fmt"

// Kind is a closed set of overlay variants.
type Kind int

const (
	None Kind = iota
	Base
	ListItem
	MenuItem
	MenuContainer
	MessageEdit
)

var kindNames = map[Kind]string{
	None:          "none",
	Base:          "base",
	ListItem:      "list-item",
	MenuItem:      "menu-item",
	MenuContainer: "menu-container",
	MessageEdit:   "message-edit",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText renders the kind by name in YAML and JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Flags is the per-variant behavior table row.
type Flags struct {
	TactileSuppressed  bool `yaml:"tactile_suppressed"  json:"tactile_suppressed"`
	PrefetchDisabled   bool `yaml:"prefetch_disabled"   json:"prefetch_disabled"`
	FocusWithoutHWFlag bool `yaml:"focus_without_flag"  json:"focus_without_flag"`
	SynthesizeFocus    bool `yaml:"synthesize_focus"    json:"synthesize_focus"`
	NameFromValue      bool `yaml:"name_from_value"     json:"name_from_value"`
	RoleAbsent         bool `yaml:"role_absent"         json:"role_absent"`
}

var flagTable = map[Kind]Flags{
	Base: {
		PrefetchDisabled: true,
	},
	ListItem: {
		PrefetchDisabled: true,
		SynthesizeFocus:  true,
		NameFromValue:    true,
	},
	MenuItem: {
		TactileSuppressed:  true,
		PrefetchDisabled:   true,
		FocusWithoutHWFlag: true,
	},
	MenuContainer: {
		TactileSuppressed: true,
		PrefetchDisabled:  true,
	},
	MessageEdit: {
		TactileSuppressed: true,
		RoleAbsent:        true,
	},
}

// Flags returns the behavior flags for k. None has no flags set.
func (k Kind) Flags() Flags {
	return flagTable[k]
}

// Policy describes which output channels an overlay may drive.
type Policy struct {
	Speech    bool `yaml:"speech"    json:"speech"`
	Tactile   bool `yaml:"tactile"   json:"tactile"`
	Indicator bool `yaml:"indicator" json:"indicator"`
}

// Policy returns the channel policy for k. Tactile suppression never
// touches speech.
func (k Kind) Policy() Policy {
	return Policy{
		Speech:    true,
		Tactile:   !k.Flags().TactileSuppressed,
		Indicator: true,
	}
}
