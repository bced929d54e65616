package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mj1618/kakao-a11y/internal/output"
	"github.com/mj1618/kakao-a11y/internal/replay"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay [scenario.yaml]",
	Short: "Replay a scripted host session against a simulated client",
	Long: `Replay a sequence of host events from a YAML scenario against a simulated
KakaoTalk window and print what the mediator sent to speech, tactile and the
indicator at every step. The scenario is read from the given file or stdin.

Supported step types: observe, drop, foreground, select, focus, value, name,
caret, composition, prefetch, inspect, deliver, set, fault, protocol

Example:
  kakao-a11y replay <<'EOF'
  windows:
    0x1001: EVA_VH_ListControl_Dblclk
  objects:
    room: {window: 0x1001, role: listItem, name: Family, states: [selected]}
  steps:
    - observe: {object: room}
    - select: {object: room}
    - caret: {object: room}
    - deliver: {}
  EOF`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Bool("stop-on-error", true, "Stop execution on first error")
}

func runReplay(cmd *cobra.Command, args []string) error {
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")

	data, err := readScenario(cmd, args)
	if err != nil {
		return err
	}
	scenario, err := replay.Parse(data)
	if err != nil {
		return err
	}
	opts, err := app.cfg.MediatorOptions(app.log)
	if err != nil {
		return err
	}

	res, err := replay.Run(scenario, opts, stopOnError)
	if err != nil {
		return err
	}
	if err := output.Print(res); err != nil {
		return err
	}
	if !res.OK {
		return fmt.Errorf("replay failed: %d of %d steps completed", res.Completed, res.Steps)
	}
	return nil
}

func readScenario(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read scenario: %w", err)
		}
		return data, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}
