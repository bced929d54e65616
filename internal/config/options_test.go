package config

import (
	"testing"
	"time"

	"github.com/mj1618/kakao-a11y/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediatorOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IME.Field = "message"
	cfg.Guard.SlowCall = time.Second

	opts, err := cfg.MediatorOptions(logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, cfg.Classes, opts.Rules)
	assert.Equal(t, []string{"EVA_VH_ListControl_Dblclk"}, opts.UIAClasses)
	assert.Equal(t, time.Second, opts.SlowCall)
	assert.True(t, opts.IME.Enabled())
	assert.NotNil(t, opts.Logger)

	opts.UIAClasses[0] = "Other"
	assert.Equal(t, "EVA_VH_ListControl_Dblclk", cfg.Protocol.UIAClasses[0])
}

func TestMediatorOptionsBadLocale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IME.Field = "message"
	cfg.IME.Locale = "!!"
	_, err := cfg.MediatorOptions(nil)
	assert.Error(t, err)
}
