package model

// PropertyID names a remote property.
type PropertyID string

const (
	PropName        PropertyID = "name"
	PropValue       PropertyID = "value"
	PropDescription PropertyID = "description"
	PropStates      PropertyID = "states"
	PropRole        PropertyID = "role"
	PropHelpText    PropertyID = "help_text"
	PropBounds      PropertyID = "bounds"
)

// Action names a remote method invocation.
type Action string

const (
	ActionSelect   Action = "select"
	ActionInvoke   Action = "invoke"
	ActionSetFocus Action = "set_focus"
)
