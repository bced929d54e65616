// Package protocol decides, per OS window, which remote accessibility
// protocol the host should use.
package protocol

import (
	"log/slog"

	"github.com/mj1618/kakao-a11y/internal/model"
	"github.com/mj1618/kakao-a11y/internal/platform"
)

// Selector routes windows whose class is on the allow-list to UIA and
// everything else to the legacy protocol.
type Selector struct {
	allow   map[string]bool
	windows platform.WindowClasses
	log     *slog.Logger
}

// NewSelector builds a Selector.
func NewSelector(windows platform.WindowClasses, allow []string, log *slog.Logger) *Selector {
	if log == nil {
		log = slog.Default()
	}
	s := &Selector{
		allow:   make(map[string]bool, len(allow)),
		windows: windows,
		log:     log,
	}
	for _, c := range allow {
		s.allow[c] = true
	}
	return s
}

// Select returns the protocol to use for hwnd. The class is looked up on
// every call; the OS recycles handles, so a remembered class can belong to a
// window that no longer exists.
func (s *Selector) Select(hwnd model.Handle) model.Protocol {
	if s.windows == nil {
		return model.ProtocolLegacy
	}
	class, err := s.windows.ClassName(hwnd)
	if err != nil {
		s.log.Debug("window class lookup failed", "hwnd", hwnd.String(), "err", err)
		return model.ProtocolLegacy
	}
	return s.ForClass(class)
}

// ForClass applies the allow-list to a class name directly.
func (s *Selector) ForClass(class string) model.Protocol {
	if s.allow[class] {
		return model.ProtocolUIA
	}
	return model.ProtocolLegacy
}
