package cmd

import (
	"fmt"

	"github.com/mj1618/kakao-a11y/internal/model"
	"github.com/mj1618/kakao-a11y/internal/output"
	"github.com/mj1618/kakao-a11y/internal/overlay"
	"github.com/mj1618/kakao-a11y/internal/platform"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Show which overlay applies to a remote object",
	Long: `Decide which behavioral overlay applies to a remote object described by
its window class, control id, role and protocol, and print the overlay's
flags and output-channel policy.

Examples:
  kakao-a11y classify --class EVA_VH_ListControl_Dblclk --role listItem
  kakao-a11y classify --class RICHEDIT50W --control-id 1001 --role edit --protocol legacy
  kakao-a11y classify --class EVA_Menu --role menuItem --format json`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().String("class", "", "Window class name of the object's native window")
	classifyCmd.Flags().String("role", "", "Object role, e.g. listItem, menuItem, edit (required)")
	classifyCmd.Flags().Int("control-id", 0, "Control identifier of the native window")
	classifyCmd.Flags().String("protocol", string(model.ProtocolUIA), "Accessibility protocol: uia, legacy")
	classifyCmd.Flags().String("window", "", "Native window handle, hex or decimal")
	classifyCmd.Flags().String("runtime-id", "", "Protocol runtime identifier")
	_ = classifyCmd.MarkFlagRequired("role")
}

func runClassify(cmd *cobra.Command, args []string) error {
	obj, err := objectFromFlags(cmd)
	if err != nil {
		return err
	}
	kind := overlay.NewClassifier(app.cfg.Classes).Classify(obj)
	app.log.Debug("classified object", "object", obj.String(), "overlay", kind.String())
	return output.Print(output.NewClassifyResult(obj, kind))
}

// objectFromFlags builds a remote object description from classify flags.
func objectFromFlags(cmd *cobra.Command) (model.RemoteObject, error) {
	class, _ := cmd.Flags().GetString("class")
	role, _ := cmd.Flags().GetString("role")
	controlID, _ := cmd.Flags().GetInt("control-id")
	proto, _ := cmd.Flags().GetString("protocol")
	window, _ := cmd.Flags().GetString("window")
	runtimeID, _ := cmd.Flags().GetString("runtime-id")

	if role == "" {
		return model.RemoteObject{}, fmt.Errorf("--role is required")
	}
	p, err := model.ParseProtocol(proto)
	if err != nil {
		return model.RemoteObject{}, err
	}
	obj := model.RemoteObject{
		WindowClass: class,
		ControlID:   controlID,
		Role:        model.ParseRole(role),
		Protocol:    p,
		RuntimeID:   runtimeID,
	}
	if window != "" {
		if obj.Window, err = platform.ParseHandle(window); err != nil {
			return model.RemoteObject{}, err
		}
	}
	return obj, nil
}
