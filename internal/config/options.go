package config

import (
	"log/slog"

	"github.com/mj1618/kakao-a11y/internal/mediate"
)

// MediatorOptions converts the configuration into mediator options.
func (c *Config) MediatorOptions(log *slog.Logger) (mediate.Options, error) {
	policy, err := c.IMEPolicy()
	if err != nil {
		return mediate.Options{}, err
	}
	classes := make([]string, len(c.Protocol.UIAClasses))
	copy(classes, c.Protocol.UIAClasses)
	return mediate.Options{
		Rules:      c.Classes,
		UIAClasses: classes,
		SlowCall:   c.Guard.SlowCall,
		IME:        policy,
		Logger:     log,
	}, nil
}
