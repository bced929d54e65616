package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mj1618/kakao-a11y/internal/config"
	"github.com/mj1618/kakao-a11y/internal/logging"
	"github.com/mj1618/kakao-a11y/internal/output"
	"github.com/mj1618/kakao-a11y/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kakao-a11y",
	Short: "Accessibility mediation for the KakaoTalk desktop client",
	Long: `Mediates between a screen reader host and the KakaoTalk desktop client:
classifies remote objects into behavioral overlays, picks the accessibility
protocol per window, synthesizes focus for chat-list selection and keeps
tactile output quiet where the client's rendering is unreliable.`,
	SilenceUsage: true,
}

// app holds what PersistentPreRunE prepared for the subcommands.
var app struct {
	cfg       *config.Config
	log       *slog.Logger
	logCloser io.Closer
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Indent JSON output")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML, TOML or JSON config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text, json (overrides config)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		path, _ := rootCmd.PersistentFlags().GetString("config")
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if level, _ := rootCmd.PersistentFlags().GetString("log-level"); level != "" {
			if _, err := logging.ParseLevel(level); err != nil {
				return err
			}
			cfg.Log.Level = level
		}
		if f, _ := rootCmd.PersistentFlags().GetString("log-format"); f != "" {
			cfg.Log.Format = f
		}

		log, closer, err := logging.New(cfg.Log)
		if err != nil {
			return err
		}
		slog.SetDefault(log)
		app.cfg = cfg
		app.log = log
		app.logCloser = closer
		return nil
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.logCloser != nil {
			return app.logCloser.Close()
		}
		return nil
	}
}
