package cmd

import (
	"github.com/mj1618/kakao-a11y/internal/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, the config file, environment
overrides and command-line flags have been applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.Print(app.cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
