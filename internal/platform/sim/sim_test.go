package sim

import (
	"errors"
	"testing"

	"github.com/mj1618/kakao-a11y/internal/guard"
	"github.com/mj1618/kakao-a11y/internal/model"
	"github.com/mj1618/kakao-a11y/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var item = model.RemoteObject{Window: 0x10, WindowClass: "EVA_VH_ListControl_Dblclk", Role: model.RoleListItem, Protocol: model.ProtocolUIA, RuntimeID: "42"}

func TestRemoteFaults(t *testing.T) {
	r := NewRemote()
	r.Set(item, model.PropName, "Family")

	v, err := r.Property(item, model.PropName)
	require.NoError(t, err)
	assert.Equal(t, "Family", v)

	r.Inject(item, model.PropName, FaultTimeout)
	_, err = r.Property(item, model.PropName)
	assert.True(t, errors.Is(err, guard.ErrTimeout))

	r.Inject(item, "*", FaultUnavailable)
	_, err = r.Property(item, model.PropValue)
	assert.True(t, errors.Is(err, guard.ErrUnavailable))

	r.Inject(item, model.PropName, FaultInvalid)
	v, err = r.Property(item, model.PropName)
	assert.NoError(t, err)
	assert.NotEqual(t, "Family", v)

	r.Inject(item, model.PropName, FaultPanic)
	assert.Panics(t, func() { _, _ = r.Property(item, model.PropName) })

	r.Inject(item, model.PropName, FaultNone)
	r.Inject(item, "*", FaultNone)
	_, err = r.Property(item, model.PropName)
	assert.NoError(t, err)
	assert.Equal(t, 5, r.Calls(model.PropName))
}

func TestRemoteDisposeAndInvoke(t *testing.T) {
	r := NewRemote()
	r.SetStates(item, model.StateSelectable)

	require.NoError(t, r.Invoke(item, model.ActionSelect))
	v, _ := r.Property(item, model.PropStates)
	assert.True(t, v.(model.StateSet).Has(model.StateSelected))
	require.NoError(t, r.Prefetch(item, []model.PropertyID{model.PropName}))
	assert.Equal(t, 1, r.Prefetches())

	r.Dispose(item)
	assert.ErrorIs(t, r.Invoke(item, model.ActionSelect), guard.ErrUnavailable)
	assert.ErrorIs(t, r.Prefetch(item, nil), guard.ErrUnavailable)
	_, err := r.Property(item, model.PropName)
	assert.ErrorIs(t, err, guard.ErrUnavailable)
}

func TestRemoteInvokeSelectKeepsSeededStates(t *testing.T) {
	r := NewRemote()
	r.Set(item, model.PropStates, []string{"selectable", "focusable"})

	require.NoError(t, r.Invoke(item, model.ActionSelect))
	v, err := r.Property(item, model.PropStates)
	require.NoError(t, err)
	states, ok := model.StateSetOf(v)
	require.True(t, ok)
	assert.Equal(t, []string{"focusable", "selectable", "selected"}, states.Sorted())
}

func TestParseFault(t *testing.T) {
	f, err := ParseFault(" Timeout ")
	require.NoError(t, err)
	assert.Equal(t, FaultTimeout, f)
	_, err = ParseFault("melted")
	assert.Error(t, err)
}

func TestWindows(t *testing.T) {
	w := NewWindows(map[model.Handle]string{0x10: "EVA_Window"})
	c, err := w.ClassName(0x10)
	require.NoError(t, err)
	assert.Equal(t, "EVA_Window", c)
	_, err = w.ClassName(0x20)
	assert.Error(t, err)
	assert.Equal(t, 2, w.Lookups())
}

func TestRecorder(t *testing.T) {
	h := NewHost()
	p := h.Provider()
	p.Speech.Speak(item, platform.ReasonFocus)
	p.Tactile.GainFocus(item)
	p.Indicator.Update(item, platform.ReasonSelection)

	assert.Equal(t, 1, h.Recorder.Count(ChannelSpeech, "speak"))
	assert.Equal(t, 1, h.Recorder.Count(ChannelTactile, ""))
	assert.Len(t, h.Recorder.Calls(), 3)

	calls := h.Recorder.Take()
	require.Len(t, calls, 3)
	assert.Equal(t, "42", calls[0].Object)
	assert.Empty(t, h.Recorder.Calls())
}
