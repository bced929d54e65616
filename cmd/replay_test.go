package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const scenario = `
windows:
  0x1001: EVA_VH_ListControl_Dblclk
objects:
  room: {window: 0x1001, role: listItem, name: Family, states: [selected]}
steps:
  - observe: {object: room}
  - select: {object: room}
  - deliver: {}
`

func TestReplayCommand_Stdin(t *testing.T) {
	out, err := execute(t, scenario, "replay")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"ok: true", "completed: 3", "delivered: 1", "channel: speech"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReplayCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(scenario), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "", "replay", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "ok: true") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestReplayCommand_Failure(t *testing.T) {
	out, err := execute(t, "steps:\n  - focus: {object: ghost}\n", "replay")
	if err == nil {
		t.Fatal("expected an error for a failing scenario")
	}
	if !strings.Contains(out, "unknown object") {
		t.Errorf("result should still be printed:\n%s", out)
	}
}

func TestReplayCommand_Empty(t *testing.T) {
	if _, err := execute(t, "", "replay"); err == nil {
		t.Error("expected an error for an empty scenario")
	}
}

func TestConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kakao.toml")
	data := "[classes]\nlist_class = \"EVA_List\"\nmenu_class = \"EVA_Menu\"\nmessage_edit_class = \"RICHEDIT50W\"\nmessage_input_id = 1001\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "", "--config", path, "config")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "list_class: EVA_List") {
		t.Errorf("config file not applied:\n%s", out)
	}
}
