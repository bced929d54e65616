package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/kakao-a11y/internal/model"
)

// Reason tells an output channel why it is being driven.
type Reason string

const (
	ReasonFocus       Reason = "focus"
	ReasonValueChange Reason = "value"
	ReasonNameChange  Reason = "name"
	ReasonCaret       Reason = "caret"
	ReasonSelection   Reason = "selection"
)

// ParseHandle parses a window handle given as hex ("0x1a2b") or decimal.
func ParseHandle(s string) (model.Handle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid window handle: empty")
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid window handle %q: %w", s, err)
	}
	return model.Handle(v), nil
}
