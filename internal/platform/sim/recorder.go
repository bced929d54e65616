package sim

import (
	"sync"

	"github.com/mj1618/kakao-a11y/internal/model"
	"github.com/mj1618/kakao-a11y/internal/platform"
)

// Channel names used in recorded calls.
const (
	ChannelSpeech    = "speech"
	ChannelTactile   = "tactile"
	ChannelIndicator = "indicator"
)

// Call is one recorded output-channel invocation.
type Call struct {
	Channel string          `yaml:"channel"          json:"channel"`
	Hook    string          `yaml:"hook"             json:"hook"`
	Object  string          `yaml:"object"           json:"object"`
	Reason  platform.Reason `yaml:"reason,omitempty" json:"reason,omitempty"`
}

// Recorder implements the speech, tactile and indicator collaborators by
// recording every call.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(c Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

// Speech returns the recorder as a platform.Speech.
func (r *Recorder) Speech() platform.Speech { return speech{r} }

// Tactile returns the recorder as a platform.Tactile.
func (r *Recorder) Tactile() platform.Tactile { return tactile{r} }

// Indicator returns the recorder as a platform.Indicator.
func (r *Recorder) Indicator() platform.Indicator { return indicator{r} }

// Calls returns a copy of all recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Take returns the recorded calls and clears the log.
func (r *Recorder) Take() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.calls
	r.calls = nil
	return out
}

// Count returns how many calls were made on channel (any hook when hook is "").
func (r *Recorder) Count(channel, hook string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Channel == channel && (hook == "" || c.Hook == hook) {
			n++
		}
	}
	return n
}

type speech struct{ r *Recorder }

func (s speech) Speak(obj model.RemoteObject, reason platform.Reason) {
	s.r.add(Call{Channel: ChannelSpeech, Hook: "speak", Object: obj.Key(), Reason: reason})
}

type tactile struct{ r *Recorder }

func (t tactile) GainFocus(obj model.RemoteObject) {
	t.r.add(Call{Channel: ChannelTactile, Hook: "gain_focus", Object: obj.Key()})
}

func (t tactile) Update(obj model.RemoteObject) {
	t.r.add(Call{Channel: ChannelTactile, Hook: "update", Object: obj.Key()})
}

func (t tactile) Caret(obj model.RemoteObject) {
	t.r.add(Call{Channel: ChannelTactile, Hook: "caret", Object: obj.Key()})
}

type indicator struct{ r *Recorder }

func (i indicator) Update(obj model.RemoteObject, reason platform.Reason) {
	i.r.add(Call{Channel: ChannelIndicator, Hook: "update", Object: obj.Key(), Reason: reason})
}
