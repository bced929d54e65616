package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/kakao-a11y/internal/model"
	"github.com/mj1618/kakao-a11y/internal/output"
	"github.com/mj1618/kakao-a11y/internal/overlay"
	"github.com/mj1618/kakao-a11y/internal/platform"
	"github.com/mj1618/kakao-a11y/internal/protocol"
	"github.com/mj1618/kakao-a11y/internal/replay"
	"gopkg.in/yaml.v3"
)

// errNoDesktop is returned by tools that need a live desktop on a platform
// without a backend.
var errNoDesktop = errors.New("no desktop backend on this platform; pass class explicitly")

// toText serializes a tool result to YAML for the MCP response.
func toText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	return string(b)
}

func toolError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(toText(map[string]interface{}{"ok": false, "error": err.Error()}))
}

func (s *Server) handleClassify(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	obj, err := remoteObject(params)
	if err != nil {
		return toolError(err), nil
	}

	s.mu.Lock()
	classifier := overlay.NewClassifier(s.opts.Rules)
	s.mu.Unlock()

	return mcp.NewToolResultText(toText(output.NewClassifyResult(obj, classifier.Classify(obj)))), nil
}

func (s *Server) handleSelectProtocol(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	raw := stringParam(params, "window", "")
	hwnd, err := platform.ParseHandle(raw)
	if err != nil {
		return toolError(err), nil
	}
	class := stringParam(params, "class", "")

	s.mu.Lock()
	defer s.mu.Unlock()

	res := output.ProtocolResult{Window: hwnd.String(), Class: class}
	switch {
	case class != "":
		sel := protocol.NewSelector(nil, s.opts.UIAClasses, s.log)
		res.Protocol = sel.ForClass(class)
	case s.mediator != nil:
		res.Protocol = s.mediator.SelectProtocol(hwnd)
	default:
		return toolError(errNoDesktop), nil
	}
	return mcp.NewToolResultText(toText(res)), nil
}

func (s *Server) handleReplay(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	scenario, err := replay.Parse([]byte(stringParam(params, "scenario", "")))
	if err != nil {
		return toolError(err), nil
	}

	s.mu.Lock()
	opts := s.opts
	s.mu.Unlock()

	res, err := replay.Run(scenario, opts, !boolParam(params, "continue_on_error", false))
	if err != nil {
		return toolError(err), nil
	}
	if !res.OK {
		return mcp.NewToolResultError(toText(res)), nil
	}
	return mcp.NewToolResultText(toText(res)), nil
}

func (s *Server) handleConfig(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mcp.NewToolResultText(toText(s.cfg)), nil
}

// remoteObject builds the object described by classify parameters.
func remoteObject(params map[string]interface{}) (model.RemoteObject, error) {
	role := stringParam(params, "role", "")
	if role == "" {
		return model.RemoteObject{}, errors.New("role is required")
	}
	obj := model.RemoteObject{
		WindowClass: stringParam(params, "class", ""),
		ControlID:   intParam(params, "control_id", 0),
		Role:        model.ParseRole(role),
		Protocol:    model.ProtocolUIA,
	}
	if p := stringParam(params, "protocol", ""); p != "" {
		proto, err := model.ParseProtocol(p)
		if err != nil {
			return obj, err
		}
		obj.Protocol = proto
	}
	if w := stringParam(params, "window", ""); w != "" {
		hwnd, err := platform.ParseHandle(w)
		if err != nil {
			return obj, err
		}
		obj.Window = hwnd
	}
	return obj, nil
}

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return defaultVal
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		}
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}
