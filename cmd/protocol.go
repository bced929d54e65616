package cmd

import (
	"fmt"

	"github.com/mj1618/kakao-a11y/internal/output"
	"github.com/mj1618/kakao-a11y/internal/platform"
	"github.com/mj1618/kakao-a11y/internal/protocol"
	"github.com/spf13/cobra"
)

var protocolCmd = &cobra.Command{
	Use:   "protocol",
	Short: "Show which accessibility protocol a window uses",
	Long: `Report whether a native window should be accessed through UI Automation
or the legacy protocol. The window's class name is looked up on the live
desktop unless --class is given.

Examples:
  kakao-a11y protocol --window 0x1a2b3c
  kakao-a11y protocol --window 1 --class EVA_VH_ListControl_Dblclk`,
	RunE: runProtocol,
}

func init() {
	rootCmd.AddCommand(protocolCmd)
	protocolCmd.Flags().String("window", "", "Native window handle, hex or decimal (required)")
	protocolCmd.Flags().String("class", "", "Window class name; skips the live lookup")
	_ = protocolCmd.MarkFlagRequired("window")
}

func runProtocol(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("window")
	class, _ := cmd.Flags().GetString("class")

	hwnd, err := platform.ParseHandle(raw)
	if err != nil {
		return err
	}

	res := output.ProtocolResult{Window: hwnd.String(), Class: class}
	if class != "" {
		res.Protocol = protocol.NewSelector(nil, app.cfg.Protocol.UIAClasses, app.log).ForClass(class)
		return output.Print(res)
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return fmt.Errorf("%w; pass --class to resolve offline", err)
	}
	sel := protocol.NewSelector(provider.WindowClasses, app.cfg.Protocol.UIAClasses, app.log)
	if name, err := provider.WindowClasses.ClassName(hwnd); err == nil {
		res.Class = name
	}
	res.Protocol = sel.Select(hwnd)
	return output.Print(res)
}
