package guard

import (
	"errors"
	"fmt"
)

// Kind classifies a failed remote call.
type Kind int

const (
	KindNone Kind = iota
	// KindUnavailable means the remote object no longer exists.
	KindUnavailable
	// KindTimeout means the call exceeded acceptable latency.
	KindTimeout
	// KindInvalid means the remote returned malformed or unexpected data.
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindUnavailable:
		return "RemoteUnavailable"
	case KindTimeout:
		return "RemoteTimeout"
	case KindInvalid:
		return "RemoteInvalid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinel errors. Remote implementations wrap these to report a specific
// failure kind; any other error is treated as ErrUnavailable.
var (
	ErrUnavailable = errors.New("remote object unavailable")
	ErrTimeout     = errors.New("remote call timed out")
	ErrInvalid     = errors.New("remote returned invalid data")
)

func (k Kind) sentinel() error {
	switch k {
	case KindUnavailable:
		return ErrUnavailable
	case KindTimeout:
		return ErrTimeout
	case KindInvalid:
		return ErrInvalid
	default:
		return nil
	}
}

// Error is a contained remote failure.
type Error struct {
	Kind   Kind
	Op     string
	Object string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("guard: %s %s: %s: %v", e.Op, e.Object, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match an *Error against the sentinel of its kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// kindOf maps a raw remote error to a Kind.
func kindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrTimeout):
		return KindTimeout
	case errors.Is(err, ErrInvalid):
		return KindInvalid
	default:
		return KindUnavailable
	}
}
