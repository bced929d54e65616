package model

import "strings"

// Role is a compact role code.
type Role string

const (
	RoleNone      Role = "none"
	RoleOther     Role = "other"
	RoleWindow    Role = "window"
	RoleList      Role = "list"
	RoleListItem  Role = "listitem"
	RoleTree      Role = "tree"
	RoleTreeItem  Role = "treeitem"
	RoleMenu      Role = "menu"
	RoleMenuBar   Role = "menubar"
	RoleMenuItem  Role = "menuitem"
	RolePopupMenu Role = "popupmenu"
	RoleEdit      Role = "edit"
	RoleText      Role = "txt"
	RoleButton    Role = "btn"
	RolePane      Role = "pane"
)

// RoleMap maps raw UIA control type names and MSAA role constants to
// compact role codes.
var RoleMap = map[string]Role{
	"ListItem":                RoleListItem,
	"TreeItem":                RoleTreeItem,
	"List":                    RoleList,
	"Tree":                    RoleTree,
	"Menu":                    RoleMenu,
	"MenuBar":                 RoleMenuBar,
	"MenuItem":                RoleMenuItem,
	"Edit":                    RoleEdit,
	"Document":                RoleEdit,
	"Text":                    RoleText,
	"Button":                  RoleButton,
	"Pane":                    RolePane,
	"Window":                  RoleWindow,
	"ROLE_SYSTEM_LISTITEM":    RoleListItem,
	"ROLE_SYSTEM_OUTLINEITEM": RoleTreeItem,
	"ROLE_SYSTEM_LIST":        RoleList,
	"ROLE_SYSTEM_OUTLINE":     RoleTree,
	"ROLE_SYSTEM_MENUPOPUP":   RolePopupMenu,
	"ROLE_SYSTEM_MENUBAR":     RoleMenuBar,
	"ROLE_SYSTEM_MENUITEM":    RoleMenuItem,
	"ROLE_SYSTEM_TEXT":        RoleEdit,
	"ROLE_SYSTEM_STATICTEXT":  RoleText,
	"ROLE_SYSTEM_PUSHBUTTON":  RoleButton,
	"ROLE_SYSTEM_CLIENT":      RolePane,
	"ROLE_SYSTEM_WINDOW":      RoleWindow,
}

// transientMenuRoles are roles whose presence in the foreground means a
// context menu is open over the underlying content.
var transientMenuRoles = map[Role]bool{
	RoleMenuItem:  true,
	RoleMenu:      true,
	RolePopupMenu: true,
}

var knownRoles = map[Role]bool{
	RoleNone: true, RoleOther: true, RoleWindow: true, RoleList: true,
	RoleListItem: true, RoleTree: true, RoleTreeItem: true, RoleMenu: true,
	RoleMenuBar: true, RoleMenuItem: true, RolePopupMenu: true, RoleEdit: true,
	RoleText: true, RoleButton: true, RolePane: true,
}

// MapRole converts a raw accessibility role to a compact code.
func MapRole(raw string) Role {
	if r, ok := RoleMap[raw]; ok {
		return r
	}
	return RoleOther
}

// ParseRole accepts either a compact code in any case ("listItem",
// "LISTITEM") or a raw role name ("ROLE_SYSTEM_LISTITEM").
func ParseRole(s string) Role {
	if r := Role(strings.ToLower(s)); knownRoles[r] {
		return r
	}
	return MapRole(s)
}
