package platform

import (
	"github.com/mj1618/kakao-a11y/internal/model"
	"golang.org/x/text/language"
)

// Remote is the raw cross-process surface of the remote application's
// accessibility tree. Every method may block for seconds or fail; callers
// outside internal/guard must not use it directly.
type Remote interface {
	// Property fetches a single property value.
	Property(obj model.RemoteObject, prop model.PropertyID) (any, error)

	// Invoke runs a remote method on the object.
	Invoke(obj model.RemoteObject, action model.Action) error

	// Prefetch issues one batched fetch for the given properties.
	Prefetch(obj model.RemoteObject, props []model.PropertyID) error
}

// WindowClasses resolves OS window class names.
type WindowClasses interface {
	ClassName(hwnd model.Handle) (string, error)
}

// Speech is the host's speech output channel.
type Speech interface {
	Speak(obj model.RemoteObject, reason Reason)
}

// Tactile is the host's braille handler.
type Tactile interface {
	GainFocus(obj model.RemoteObject)
	Update(obj model.RemoteObject)
	Caret(obj model.RemoteObject)
}

// Indicator is the host's generic visual focus/caret highlighter.
type Indicator interface {
	Update(obj model.RemoteObject, reason Reason)
}

// Locale reports the active keyboard input locale.
type Locale interface {
	InputLocale() (language.Tag, error)
}
