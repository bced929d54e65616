package server

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/kakao-a11y/internal/config"
	"github.com/mj1618/kakao-a11y/internal/logging"
	"github.com/mj1618/kakao-a11y/internal/model"
	"github.com/mj1618/kakao-a11y/internal/platform/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, withDesktop bool) (*Server, *sim.Host) {
	t.Helper()
	host := sim.NewHost()
	host.Windows.Set(0x1001, "EVA_VH_ListControl_Dblclk")
	host.Windows.Set(0x2002, "EVA_Window")
	var s *Server
	var err error
	if withDesktop {
		s, err = New(config.DefaultConfig(), host.Provider(), logging.Discard())
	} else {
		s, err = New(config.DefaultConfig(), nil, logging.Discard())
	}
	require.NoError(t, err)
	return s, host
}

func call(args map[string]interface{}) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestHandleClassify(t *testing.T) {
	s, _ := newTestServer(t, false)
	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"list item", map[string]interface{}{"class": "EVA_VH_ListControl_Dblclk", "role": "listItem"}, "overlay: list-item"},
		{"menu item", map[string]interface{}{"class": "EVA_Menu", "role": "menuItem"}, "overlay: menu-item"},
		{"message edit", map[string]interface{}{"class": "RICHEDIT50W", "role": "edit", "control_id": float64(1001), "protocol": "legacy"}, "overlay: message-edit"},
		{"legacy", map[string]interface{}{"class": "EVA_Menu", "role": "menuItem", "protocol": "legacy"}, "overlay: none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.handleClassify(context.Background(), call(tt.args))
			require.NoError(t, err)
			assert.False(t, res.IsError)
			assert.Contains(t, resultText(t, res), tt.want)
		})
	}
}

func TestHandleClassifyErrors(t *testing.T) {
	s, _ := newTestServer(t, false)
	for _, args := range []map[string]interface{}{
		{},
		{"role": "listItem", "protocol": "ia2"},
		{"role": "listItem", "window": "zz"},
	} {
		res, err := s.handleClassify(context.Background(), call(args))
		require.NoError(t, err)
		assert.True(t, res.IsError, "args %v", args)
	}
}

func TestHandleSelectProtocol(t *testing.T) {
	s, host := newTestServer(t, true)

	res, err := s.handleSelectProtocol(context.Background(), call(map[string]interface{}{"window": "0x1001"}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "protocol: uia")

	res, err = s.handleSelectProtocol(context.Background(), call(map[string]interface{}{"window": "0x2002"}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "protocol: legacy")

	res, err = s.handleSelectProtocol(context.Background(), call(map[string]interface{}{"window": "0x3003", "class": "EVA_VH_ListControl_Dblclk"}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "protocol: uia")
	assert.Equal(t, 2, host.Windows.Lookups())
}

func TestHandleSelectProtocolWithoutDesktop(t *testing.T) {
	s, _ := newTestServer(t, false)

	res, err := s.handleSelectProtocol(context.Background(), call(map[string]interface{}{"window": "0x1001"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = s.handleSelectProtocol(context.Background(), call(map[string]interface{}{"window": "0x1001", "class": "Other"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "protocol: legacy")
}

func TestHandleReplay(t *testing.T) {
	s, _ := newTestServer(t, false)
	scenario := `
windows: {0x1001: EVA_VH_ListControl_Dblclk}
objects:
  room: {window: 0x1001, role: listItem, name: Family, states: [selected]}
steps:
  - observe: {object: room}
  - select: {object: room}
  - deliver: {}
`
	res, err := s.handleReplay(context.Background(), call(map[string]interface{}{"scenario": scenario}))
	require.NoError(t, err)
	assert.False(t, res.IsError, resultText(t, res))
	text := resultText(t, res)
	assert.Contains(t, text, "delivered: 1")
	assert.Contains(t, text, "reason: selected")

	res, err = s.handleReplay(context.Background(), call(map[string]interface{}{"scenario": "steps:\n  - select: {object: ghost}\n"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "unknown object")
}

func TestReconfigure(t *testing.T) {
	s, _ := newTestServer(t, true)

	cfg := config.DefaultConfig()
	cfg.Protocol.UIAClasses = []string{"EVA_Window"}
	require.NoError(t, s.Reconfigure(cfg))

	res, err := s.handleSelectProtocol(context.Background(), call(map[string]interface{}{"window": "0x2002"}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "protocol: uia")

	bad := config.DefaultConfig()
	bad.IME.Field = "message"
	bad.IME.Locale = "!!"
	assert.Error(t, s.Reconfigure(bad))
	assert.Equal(t, []string{"EVA_Window"}, s.opts.UIAClasses)

	res, err = s.handleConfig(context.Background(), call(nil))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "EVA_Window")
	assert.Equal(t, model.ProtocolUIA, s.mediator.SelectProtocol(0x2002))
}
