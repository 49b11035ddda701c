package overlay

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/cursorglow/internal/config"
	"github.com/iburimskiy/cursorglow/internal/feedback"
	"github.com/iburimskiy/cursorglow/internal/highlight"
)

// clicker plays a short tone for every button press.
type clicker struct {
	sampleRate beep.SampleRate
}

func newClicker() (*clicker, error) {
	sr := beep.SampleRate(config.ClickSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &clicker{sampleRate: sr}, nil
}

func (c *clicker) pressed(b highlight.Button) {
	freq := config.ClickFrequency
	if b == highlight.ButtonSecondary {
		freq *= 0.75
	}
	speaker.Play(feedback.Click(c.sampleRate, freq, config.ClickDuration, config.ClickVolume))
}

func (c *clicker) close() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
