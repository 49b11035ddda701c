package feedback

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func TestClickLengthAndLevel(t *testing.T) {
	sr := beep.SampleRate(1000)
	s := Click(sr, 50, 100*time.Millisecond, 0.5)

	buf := make([][2]float64, 64)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] != smp[1] {
				t.Fatalf("channels differ: %v", smp)
			}
			if math.Abs(smp[0]) > 0.5 {
				t.Fatalf("sample %v louder than volume", smp[0])
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if total != 100 {
		t.Errorf("streamed %d samples, want 100", total)
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v", s.Err())
	}
}

func TestClickFadesOut(t *testing.T) {
	sr := beep.SampleRate(8000)
	s := Click(sr, 440, 50*time.Millisecond, 1)

	buf := make([][2]float64, sr.N(50*time.Millisecond))
	n, _ := s.Stream(buf)

	peak := func(from, to int) float64 {
		var p float64
		for _, smp := range buf[from:to] {
			p = math.Max(p, math.Abs(smp[0]))
		}
		return p
	}
	if head, tail := peak(0, n/4), peak(3*n/4, n); tail >= head {
		t.Errorf("tail peak %v not quieter than head peak %v", tail, head)
	}
}
