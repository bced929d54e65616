package overlay

import (
	"testing"

	"github.com/mj1618/kakao-a11y/internal/model"
)

func TestClassify_DecisionTable(t *testing.T) {
	r := DefaultRules()
	c := NewClassifier(r)

	tests := []struct {
		name string
		obj  model.RemoteObject
		want Kind
	}{
		{"message edit", model.RemoteObject{Protocol: model.ProtocolLegacy, WindowClass: r.MessageEditClass, ControlID: r.MessageInputID, Role: model.RoleEdit}, MessageEdit},
		{"message edit wrong id", model.RemoteObject{Protocol: model.ProtocolLegacy, WindowClass: r.MessageEditClass, ControlID: 7}, None},
		{"message edit over uia", model.RemoteObject{Protocol: model.ProtocolUIA, WindowClass: r.MessageEditClass, ControlID: r.MessageInputID}, Base},
		{"list item", model.RemoteObject{Protocol: model.ProtocolUIA, WindowClass: r.ListClass, Role: model.RoleListItem}, ListItem},
		{"tree item", model.RemoteObject{Protocol: model.ProtocolUIA, WindowClass: r.ListClass, Role: model.RoleTreeItem}, ListItem},
		{"list itself", model.RemoteObject{Protocol: model.ProtocolUIA, WindowClass: r.ListClass, Role: model.RoleList}, Base},
		{"list item over legacy", model.RemoteObject{Protocol: model.ProtocolLegacy, WindowClass: r.ListClass, Role: model.RoleListItem}, None},
		{"menu item", model.RemoteObject{Protocol: model.ProtocolUIA, WindowClass: r.MenuClass, Role: model.RoleMenuItem}, MenuItem},
		{"menu popup", model.RemoteObject{Protocol: model.ProtocolUIA, WindowClass: r.MenuClass, Role: model.RolePopupMenu}, MenuContainer},
		{"menu pane", model.RemoteObject{Protocol: model.ProtocolUIA, WindowClass: r.MenuClass, Role: model.RolePane}, MenuContainer},
		{"other uia", model.RemoteObject{Protocol: model.ProtocolUIA, WindowClass: "EVA_Window_Dblclk", Role: model.RoleButton}, Base},
		{"other legacy", model.RemoteObject{Protocol: model.ProtocolLegacy, WindowClass: "EVA_Window_Dblclk", Role: model.RoleButton}, None},
		{"no protocol", model.RemoteObject{WindowClass: r.ListClass, Role: model.RoleListItem}, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.obj); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.obj, got, tt.want)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewClassifier(DefaultRules())
	objs := []model.RemoteObject{
		{Protocol: model.ProtocolUIA, WindowClass: "EVA_VH_ListControl_Dblclk", Role: model.RoleListItem},
		{Protocol: model.ProtocolUIA, WindowClass: "EVA_Menu", Role: model.RoleMenuItem},
		{Protocol: model.ProtocolLegacy, WindowClass: "RICHEDIT50W", ControlID: 1001},
		{Protocol: model.ProtocolLegacy, WindowClass: "Static"},
	}
	for _, obj := range objs {
		first := c.Classify(obj)
		for i := 0; i < 50; i++ {
			// Generation changes between observations; classification must not.
			obj.Generation = uint64(i)
			if got := c.Classify(obj); got != first {
				t.Fatalf("Classify(%v) changed from %v to %v on call %d", obj, first, got, i)
			}
		}
	}
}

func TestClassify_CustomRules(t *testing.T) {
	c := NewClassifier(Rules{ListClass: "MyList", MenuClass: "MyMenu", MessageEditClass: "MyEdit", MessageInputID: 5})
	obj := model.RemoteObject{Protocol: model.ProtocolUIA, WindowClass: "MyList", Role: model.RoleListItem}
	if got := c.Classify(obj); got != ListItem {
		t.Errorf("Classify = %v, want %v", got, ListItem)
	}
	obj.WindowClass = "EVA_VH_ListControl_Dblclk"
	if got := c.Classify(obj); got != Base {
		t.Errorf("Classify with default class under custom rules = %v, want %v", got, Base)
	}
}
