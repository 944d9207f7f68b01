// Package audio emits the short alerts played when a shot is fired or
// debris explodes.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Alerter plays a short, non-blocking alert.
type Alerter interface {
	Alert()
}

// Nop is an Alerter that stays silent.
type Nop struct{}

// Alert implements Alerter.
func (Nop) Alert() {}

// Bell rings the terminal bell by writing BEL to w.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a bell that writes to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Alert implements Alerter. Write errors are ignored.
func (b *Bell) Alert() {
	b.mu.Lock()
	defer b.mu.Unlock()
	//nolint:errcheck // Best-effort alert, the game continues regardless
	b.w.Write([]byte{'\a'})
}

const (
	sampleRate    = beep.SampleRate(44100)
	toneFrequency = 880
	toneLength    = 50 * time.Millisecond
)

var speakerOnce struct {
	sync.Once
	err error
}

// Speaker plays a short sine tone through the system audio device.
type Speaker struct{}

// NewSpeaker initializes the audio device. The device is shared by the
// whole process and initialized at most once.
func NewSpeaker() (*Speaker, error) {
	speakerOnce.Do(func() {
		speakerOnce.err = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	if speakerOnce.err != nil {
		return nil, fmt.Errorf("audio: cannot initialize speaker: %w", speakerOnce.err)
	}
	return &Speaker{}, nil
}

// Alert implements Alerter.
func (s *Speaker) Alert() {
	sine, err := generators.SineTone(sampleRate, toneFrequency)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneLength), sine))
}

// Counter counts alerts; it is used where alerts must be observed.
type Counter struct {
	mu sync.Mutex
	n  int
}

// Alert implements Alerter.
func (c *Counter) Alert() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

// Count returns the number of alerts so far.
func (c *Counter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// Mode names an alert implementation.
type Mode string

const (
	ModeBell    Mode = "bell"
	ModeSpeaker Mode = "speaker"
	ModeOff     Mode = "off"
)

// New builds the Alerter for mode. Bell alerts are written to w.
// If the speaker cannot be opened, New falls back to the bell and reports
// the speaker error so the caller can log it.
func New(mode Mode, w io.Writer) (Alerter, error) {
	switch mode {
	case ModeOff:
		return Nop{}, nil
	case ModeSpeaker:
		s, err := NewSpeaker()
		if err != nil {
			return NewBell(w), err
		}
		return s, nil
	case ModeBell, "":
		return NewBell(w), nil
	default:
		return nil, fmt.Errorf("audio: unknown sound mode %q", mode)
	}
}
