package sim

import (
	"github.com/mj1618/kakao-a11y/internal/platform"
	"golang.org/x/text/language"
)

// Locale is a fixed input locale.
type Locale struct {
	Tag language.Tag
}

// InputLocale implements platform.Locale.
func (l Locale) InputLocale() (language.Tag, error) {
	return l.Tag, nil
}

// Host bundles the simulated collaborators.
type Host struct {
	Remote   *Remote
	Windows  *Windows
	Recorder *Recorder
	Locale   *Locale
}

// NewHost returns an empty simulated host with an English input locale.
func NewHost() *Host {
	return &Host{
		Remote:   NewRemote(),
		Windows:  NewWindows(nil),
		Recorder: NewRecorder(),
		Locale:   &Locale{Tag: language.English},
	}
}

// Provider exposes the host as a platform.Provider.
func (h *Host) Provider() *platform.Provider {
	return &platform.Provider{
		Remote:        h.Remote,
		WindowClasses: h.Windows,
		Speech:        h.Recorder.Speech(),
		Tactile:       h.Recorder.Tactile(),
		Indicator:     h.Recorder.Indicator(),
		Locale:        h.Locale,
	}
}
