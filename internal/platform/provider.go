package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles the host collaborators for the current OS.
type Provider struct {
	Remote        Remote
	WindowClasses WindowClasses
	Speech        Speech
	Tactile       Tactile
	Indicator     Indicator
	Locale        Locale
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("kakao-a11y has no native backend on %s/%s; supported: windows/amd64, windows/arm64", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/win32/init_windows.go for the Windows registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
