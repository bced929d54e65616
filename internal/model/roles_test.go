package model

import "testing"

func TestMapRole_KnownRoles(t *testing.T) {
	tests := []struct {
		input string
		want  Role
	}{
		{"ListItem", RoleListItem},
		{"TreeItem", RoleTreeItem},
		{"MenuItem", RoleMenuItem},
		{"Menu", RoleMenu},
		{"ROLE_SYSTEM_MENUPOPUP", RolePopupMenu},
		{"ROLE_SYSTEM_LISTITEM", RoleListItem},
		{"ROLE_SYSTEM_OUTLINEITEM", RoleTreeItem},
		{"ROLE_SYSTEM_TEXT", RoleEdit},
		{"Edit", RoleEdit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := MapRole(tt.input)
			if got != tt.want {
				t.Errorf("MapRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMapRole_UnknownFallback(t *testing.T) {
	unknowns := []string{"Slider", "ROLE_SYSTEM_GRAPHIC", "SomethingElse", ""}
	for _, role := range unknowns {
		got := MapRole(role)
		if got != RoleOther {
			t.Errorf("MapRole(%q) = %q, want %q", role, got, RoleOther)
		}
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
	}{
		{"listItem", RoleListItem},
		{"LISTITEM", RoleListItem},
		{"menuitem", RoleMenuItem},
		{"popupMenu", RolePopupMenu},
		{"none", RoleNone},
		{"ROLE_SYSTEM_MENUITEM", RoleMenuItem},
		{"bogus", RoleOther},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.input); got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestForeground_IsTransientMenu(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleMenuItem, true},
		{RoleMenu, true},
		{RolePopupMenu, true},
		{RoleListItem, false},
		{RoleMenuBar, false},
		{"", false},
	}
	for _, tt := range tests {
		if got := (Foreground{Role: tt.role}).IsTransientMenu(); got != tt.want {
			t.Errorf("Foreground{Role: %q}.IsTransientMenu() = %v, want %v", tt.role, got, tt.want)
		}
	}
}
