// Package server exposes the mediator over the Model Context Protocol so
// agents can classify objects, resolve window protocols and replay host
// sessions without shelling out.
package server

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/kakao-a11y/internal/config"
	"github.com/mj1618/kakao-a11y/internal/mediate"
	"github.com/mj1618/kakao-a11y/internal/platform"
	"github.com/mj1618/kakao-a11y/internal/version"
)

// Transport names.
const (
	TransportStdio          = "stdio"
	TransportStreamableHTTP = "streamable-http"
)

// Server wraps the MCP server with the live configuration and, when the
// host platform is supported, a mediator bound to it.
type Server struct {
	mu       sync.Mutex
	cfg      *config.Config
	opts     mediate.Options
	provider *platform.Provider
	mediator *mediate.Mediator
	log      *slog.Logger
	mcp      *mcpserver.MCPServer
}

// New builds a server. provider may be nil, in which case tools that need
// the live desktop report an error.
func New(cfg *config.Config, provider *platform.Provider, log *slog.Logger) (*Server, error) {
	if log == nil {
		log = slog.Default()
	}
	opts, err := cfg.MediatorOptions(log)
	if err != nil {
		return nil, err
	}
	s := &Server{cfg: cfg, opts: opts, provider: provider, log: log}
	if provider != nil {
		s.mediator = mediate.New(provider, opts)
	}
	s.mcp = mcpserver.NewMCPServer("kakao-a11y", version.Version)
	s.registerTools()
	return s, nil
}

// Reconfigure swaps in a new configuration. Invalid configurations are
// rejected and the previous one stays active.
func (s *Server) Reconfigure(cfg *config.Config) error {
	opts, err := cfg.MediatorOptions(s.log)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.opts = opts
	if s.mediator != nil {
		s.mediator.Reconfigure(opts)
	}
	s.log.Info("configuration reloaded", "uia_classes", opts.UIAClasses, "slow_call", opts.SlowCall)
	return nil
}

// Serve starts the MCP server on the given transport.
func (s *Server) Serve(transport string, port int) error {
	switch transport {
	case TransportStdio:
		return mcpserver.ServeStdio(s.mcp)
	case TransportStreamableHTTP:
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		s.log.Info("serving MCP over HTTP", "port", port)
		return httpServer.Start(fmt.Sprintf(":%d", port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("classify",
			mcp.WithDescription("Decide which KakaoTalk overlay applies to a remote object and report its flags and output-channel policy."),
			mcp.WithString("class", mcp.Description("Window class name of the object's native window")),
			mcp.WithString("role", mcp.Required(), mcp.Description("Object role, e.g. listItem, menuItem, edit")),
			mcp.WithNumber("control_id", mcp.Description("Control identifier of the native window")),
			mcp.WithString("protocol", mcp.Description("Accessibility protocol: uia or legacy (default uia)")),
			mcp.WithString("window", mcp.Description("Native window handle, hex or decimal")),
		),
		s.handleClassify,
	)

	s.mcp.AddTool(
		mcp.NewTool("select_protocol",
			mcp.WithDescription("Report whether a native window should be accessed through UI Automation or the legacy protocol."),
			mcp.WithString("window", mcp.Required(), mcp.Description("Native window handle, hex or decimal")),
			mcp.WithString("class", mcp.Description("Window class name; skips the live lookup when given")),
		),
		s.handleSelectProtocol,
	)

	s.mcp.AddTool(
		mcp.NewTool("replay",
			mcp.WithDescription(`Replay a scripted host session against a simulated KakaoTalk window and report every speech, tactile and indicator call.

The scenario is YAML with windows, objects and a list of steps. Example:
  windows: {0x1001: EVA_VH_ListControl_Dblclk}
  objects:
    room: {window: 0x1001, role: listItem, name: Family, states: [selected]}
  steps:
    - observe: {object: room}
    - select: {object: room}
    - deliver: {}`),
			mcp.WithString("scenario", mcp.Required(), mcp.Description("YAML scenario")),
			mcp.WithBoolean("continue_on_error", mcp.Description("Keep going after a failing step")),
		),
		s.handleReplay,
	)

	s.mcp.AddTool(
		mcp.NewTool("config",
			mcp.WithDescription("Show the active mediator configuration."),
		),
		s.handleConfig,
	)
}
