package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_ReloadsOnWrite(t *testing.T) {
	path := writeFile(t, "kakao.yaml", "classes:\n  menu_class: FirstMenu\n")

	l := NewLoader(path)
	l.debounce = 50 * time.Millisecond
	defer l.Close()

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "FirstMenu", cfg.Classes.MenuClass)

	changed := make(chan *Config, 1)
	l.OnChange(func(c *Config) {
		select {
		case changed <- c:
		default:
		}
	})
	require.NoError(t, l.Watch())

	require.NoError(t, os.WriteFile(path, []byte("classes:\n  menu_class: SecondMenu\n"), 0o644))

	select {
	case c := <-changed:
		assert.Equal(t, "SecondMenu", c.Classes.MenuClass)
		assert.Equal(t, "SecondMenu", l.Config().Classes.MenuClass)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}
}

func TestLoader_InvalidReloadKeepsOldConfig(t *testing.T) {
	path := writeFile(t, "kakao.yaml", "classes:\n  menu_class: FirstMenu\n")

	l := NewLoader(path)
	l.debounce = 50 * time.Millisecond
	defer l.Close()

	_, err := l.Load()
	require.NoError(t, err)
	require.NoError(t, l.Watch())

	require.NoError(t, os.WriteFile(path, []byte("classes:\n  message_input_id: -1\n"), 0o644))

	select {
	case err := <-l.Errors():
		assert.ErrorIs(t, err, ErrInvalid)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload error reported")
	}
	assert.Equal(t, "FirstMenu", l.Config().Classes.MenuClass)
}

func TestLoader_WatchWithoutPath(t *testing.T) {
	l := NewLoader("")
	defer l.Close()
	assert.Error(t, l.Watch())
}
