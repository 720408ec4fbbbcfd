package mixer

import (
	"math"
	"testing"
)

// constSource renders a fixed DC value, which makes pan and gain math
// directly observable at the bus.
type constSource struct {
	v float64
}

func (s *constSource) Render(dst []float64) {
	for i := range dst {
		dst[i] = s.v
	}
}

func TestPanGainsEqualPower(t *testing.T) {
	for pan := -1.0; pan <= 1.0; pan += 0.125 {
		l, r := panGains(pan)
		if p := l*l + r*r; math.Abs(p-1) > 1e-9 {
			t.Errorf("pan %v: power %v, want 1", pan, p)
		}
	}

	l, r := panGains(0)
	if math.Abs(l-r) > 1e-9 {
		t.Errorf("center pan not symmetric: l=%v r=%v", l, r)
	}
}

func TestPanHardSides(t *testing.T) {
	src := &constSource{v: 0.5}
	ch := NewChannel(src)
	m := New([]*Channel{ch}, 64)
	dst := make([]float64, 128)

	ch.SetPan(1)
	m.RenderStereo(dst)
	if math.Abs(dst[0]) > 1e-9 {
		t.Errorf("hard right: left sample %v, want 0", dst[0])
	}
	if dst[1] < 0.4 {
		t.Errorf("hard right: right sample %v, want ~0.46", dst[1])
	}

	ch.SetPan(-1)
	m.RenderStereo(dst)
	if math.Abs(dst[1]) > 1e-9 {
		t.Errorf("hard left: right sample %v, want 0", dst[1])
	}
	if dst[0] < 0.4 {
		t.Errorf("hard left: left sample %v, want ~0.46", dst[0])
	}
}

func TestSetPanClamps(t *testing.T) {
	ch := NewChannel(&constSource{})
	ch.SetPan(5)
	if got := ch.pan.Load(); got != 1 {
		t.Errorf("pan = %v, want 1", got)
	}
	ch.SetGain(-2)
	if got := ch.gain.Load(); got != 0 {
		t.Errorf("gain = %v, want 0", got)
	}
}

func TestSilentSourcesProduceSilence(t *testing.T) {
	chs := []*Channel{
		NewChannel(&constSource{v: 0}),
		NewChannel(&constSource{v: 0}),
	}
	m := New(chs, 64)
	dst := make([]float64, 128)
	for i := range dst {
		dst[i] = 7 // must be overwritten, not accumulated into
	}
	m.RenderStereo(dst)
	for i, s := range dst {
		if s != 0 {
			t.Fatalf("sample %d = %v, want 0", i, s)
		}
	}
}

func TestChannelsSumIndependently(t *testing.T) {
	a := NewChannel(&constSource{v: 0.2})
	b := NewChannel(&constSource{v: 0.2})
	single := New([]*Channel{a}, 64)
	both := New([]*Channel{a, b}, 64)

	one := make([]float64, 2)
	two := make([]float64, 2)
	single.RenderStereo(one)
	both.RenderStereo(two)

	if two[0] <= one[0] || two[1] <= one[1] {
		t.Fatalf("two channels not louder than one: %v vs %v", two, one)
	}
}

func TestGainScalesOutput(t *testing.T) {
	ch := NewChannel(&constSource{v: 0.4})
	m := New([]*Channel{ch}, 64)
	dst := make([]float64, 2)

	m.RenderStereo(dst)
	full := dst[0]

	ch.SetGain(0.5)
	m.RenderStereo(dst)
	if dst[0] >= full {
		t.Fatalf("half gain %v not quieter than unity %v", dst[0], full)
	}

	ch.SetGain(0)
	m.RenderStereo(dst)
	if dst[0] != 0 || dst[1] != 0 {
		t.Fatalf("zero gain produced %v", dst)
	}
}

func TestBusSaturationBounded(t *testing.T) {
	// Six hot channels stacked dead center would sum far past full
	// scale; the bus has to compress, not wrap.
	var chs []*Channel
	for i := 0; i < 6; i++ {
		chs = append(chs, NewChannel(&constSource{v: 0.9}))
	}
	m := New(chs, 64)
	dst := make([]float64, 128)
	m.RenderStereo(dst)
	for i, s := range dst {
		if math.Abs(s) >= 1 {
			t.Fatalf("sample %d = %v, want |s| < 1", i, s)
		}
	}
}

func TestSoftSat(t *testing.T) {
	if got := softSat(0); got != 0 {
		t.Errorf("softSat(0) = %v", got)
	}
	for _, x := range []float64{2, 10, 100, -2, -10, -100} {
		if got := softSat(x); math.Abs(got) >= 1 {
			t.Errorf("softSat(%v) = %v, want |y| < 1", x, got)
		}
	}
	if softSat(0.3) <= softSat(0.2) {
		t.Error("softSat not monotone in the linear region")
	}
}
