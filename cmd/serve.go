package cmd

import (
	"errors"
	"fmt"

	"github.com/mj1618/kakao-a11y/internal/config"
	"github.com/mj1618/kakao-a11y/internal/platform"
	"github.com/mj1618/kakao-a11y/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the mediator",
	Long: `Start a Model Context Protocol (MCP) server exposing classify,
select_protocol, replay and config as tools.

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport

With --watch the config file is reloaded when it changes on disk.

Examples:
  kakao-a11y serve
  kakao-a11y serve --transport streamable-http --port 8080
  kakao-a11y serve --config kakao.yaml --watch`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", server.TransportStdio, "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Bool("watch", false, "Reload the config file when it changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	watch, _ := cmd.Flags().GetBool("watch")

	provider, err := platform.NewProvider()
	if err != nil {
		if !errors.Is(err, platform.ErrUnsupported) {
			return err
		}
		app.log.Warn("no desktop backend; live protocol lookups disabled", "error", err)
		provider = nil
	}

	srv, err := server.New(app.cfg, provider, app.log)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	if path, _ := rootCmd.PersistentFlags().GetString("config"); watch && path != "" {
		loader := config.NewLoader(path)
		if _, err := loader.Load(); err != nil {
			return err
		}
		loader.OnChange(func(cfg *config.Config) {
			if err := srv.Reconfigure(cfg); err != nil {
				app.log.Error("config reload rejected", "error", err)
			}
		})
		if err := loader.Watch(); err != nil {
			return err
		}
		defer loader.Close()
		go func() {
			for err := range loader.Errors() {
				app.log.Error("config reload failed", "error", err)
			}
		}()
	}

	return srv.Serve(transport, port)
}
