//go:build windows

package win32

import "github.com/mj1618/kakao-a11y/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			WindowClasses: WindowClasses{},
			Locale:        Locale{},
		}, nil
	}
}
