package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestClassifyCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"list item", []string{"--class", "EVA_VH_ListControl_Dblclk", "--role", "listItem"}, "list-item"},
		{"tree item", []string{"--class", "EVA_VH_ListControl_Dblclk", "--role", "treeItem"}, "list-item"},
		{"menu item", []string{"--class", "EVA_Menu", "--role", "menuItem"}, "menu-item"},
		{"menu container", []string{"--class", "EVA_Menu", "--role", "popupMenu"}, "menu-container"},
		{"message edit", []string{"--class", "RICHEDIT50W", "--control-id", "1001", "--role", "edit", "--protocol", "legacy"}, "message-edit"},
		{"other legacy", []string{"--class", "RICHEDIT50W", "--control-id", "7", "--role", "edit", "--protocol", "legacy"}, "none"},
		{"other uia", []string{"--class", "EVA_Window", "--role", "button"}, "base"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", append([]string{"--format", "json", "classify"}, tt.args...)...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var res struct {
				Overlay string `json:"overlay"`
			}
			if err := json.Unmarshal([]byte(out), &res); err != nil {
				t.Fatalf("bad JSON %q: %v", out, err)
			}
			if res.Overlay != tt.want {
				t.Errorf("overlay = %q, want %q", res.Overlay, tt.want)
			}
		})
	}
}

func TestClassifyCommand_YAMLPolicy(t *testing.T) {
	out, err := execute(t, "", "classify", "--class", "EVA_VH_ListControl_Dblclk", "--role", "listItem")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"overlay: list-item", "tactile_suppressed: true", "synthesize_focus: true"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestClassifyCommand_BadProtocol(t *testing.T) {
	if _, err := execute(t, "", "classify", "--role", "edit", "--protocol", "ia2"); err == nil {
		t.Error("expected an error for --protocol ia2")
	}
}

func TestProtocolCommand_ClassOverride(t *testing.T) {
	out, err := execute(t, "", "protocol", "--window", "0x10", "--class", "EVA_VH_ListControl_Dblclk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "protocol: uia") || !strings.Contains(out, "window: 0x10") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, err = execute(t, "", "protocol", "--window", "16", "--class", "EVA_ChildWindow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "protocol: legacy") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestProtocolCommand_BadWindow(t *testing.T) {
	if _, err := execute(t, "", "protocol", "--window", "nope", "--class", "X"); err == nil {
		t.Error("expected an error for a malformed window handle")
	}
}
