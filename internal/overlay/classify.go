package overlay

import "github.com/mj1618/kakao-a11y/internal/model"

// Rules holds the window classes and control ids the classifier matches.
type Rules struct {
	ListClass        string `yaml:"list_class"         toml:"list_class"         json:"list_class"`
	MenuClass        string `yaml:"menu_class"         toml:"menu_class"         json:"menu_class"`
	MessageEditClass string `yaml:"message_edit_class" toml:"message_edit_class" json:"message_edit_class"`
	MessageInputID   int    `yaml:"message_input_id"   toml:"message_input_id"   json:"message_input_id"`
}

// DefaultRules are the KakaoTalk desktop window classes.
func DefaultRules() Rules {
	return Rules{
		ListClass:        "EVA_VH_ListControl_Dblclk",
		MenuClass:        "EVA_Menu",
		MessageEditClass: "RICHEDIT50W",
		MessageInputID:   1001,
	}
}

// Classifier selects an overlay for a remote object. It holds no mutable
// state; Classify is a pure function of the object's identity fields.
type Classifier struct {
	rules Rules
}

// NewClassifier returns a Classifier for rules.
func NewClassifier(rules Rules) *Classifier {
	return &Classifier{rules: rules}
}

// Rules returns the classifier's rules.
func (c *Classifier) Rules() Rules {
	return c.rules
}

// Classify returns the overlay for obj. First match wins.
func (c *Classifier) Classify(obj model.RemoteObject) Kind {
	switch obj.Protocol {
	case model.ProtocolLegacy:
		if obj.WindowClass == c.rules.MessageEditClass && obj.ControlID == c.rules.MessageInputID {
			return MessageEdit
		}
		return None
	case model.ProtocolUIA:
		switch obj.WindowClass {
		case c.rules.ListClass:
			if obj.Role == model.RoleListItem || obj.Role == model.RoleTreeItem {
				return ListItem
			}
		case c.rules.MenuClass:
			if obj.Role == model.RoleMenuItem {
				return MenuItem
			}
			return MenuContainer
		}
		// Any UIA object in this application may trigger a synchronous bulk
		// fetch, so every one of them gets at least the prefetch override.
		return Base
	default:
		return None
	}
}
