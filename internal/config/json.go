package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// UnmarshalJSON accepts slow_call as a duration string ("500ms"), the same
// form the YAML and TOML loaders take, or as integer nanoseconds.
func (g *GuardConfig) UnmarshalJSON(data []byte) error {
	var raw struct {
		SlowCall json.RawMessage `json:"slow_call"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.SlowCall) == 0 || string(raw.SlowCall) == "null" {
		return nil
	}
	d, err := parseJSONDuration(raw.SlowCall)
	if err != nil {
		return fmt.Errorf("guard.slow_call: %w", err)
	}
	g.SlowCall = d
	return nil
}

// MarshalJSON writes slow_call as a duration string.
func (g GuardConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		SlowCall string `json:"slow_call"`
	}{SlowCall: g.SlowCall.String()})
}

func parseJSONDuration(raw json.RawMessage) (time.Duration, error) {
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte(`"`)) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		return time.ParseDuration(s)
	}
	var ns int64
	if err := json.Unmarshal(raw, &ns); err != nil {
		return 0, fmt.Errorf("expected a duration string or integer nanoseconds: %w", err)
	}
	return time.Duration(ns), nil
}
