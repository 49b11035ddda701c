// Package feedback generates the short tone played when a button is pressed.
package feedback

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Click returns a mono sine tone, duplicated to both channels, that fades
// out linearly over d.
func Click(sr beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for n < len(samples) && pos < total {
			t := float64(pos) / float64(sr)
			envelope := 1 - float64(pos)/float64(total)
			v := math.Sin(2*math.Pi*freq*t) * envelope * volume
			samples[n] = [2]float64{v, v}
			n++
			pos++
		}
		return n, true
	})
}
