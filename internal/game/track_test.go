package game

import (
	"math"
	"testing"

	"github.com/nilemile/nilemile/internal/config"
)

func testTrackConfig() config.TrackConfig {
	return config.TrackConfig{
		Length:    10000,
		HalfWidth: 160,
		Amplitude: 120,
		Frequency: 0.004,
		SafeZone:  400,
	}
}

func TestTrackCenterBounded(t *testing.T) {
	tr := NewTrack(testTrackConfig())

	for z := 0.0; z < 20000; z += 13.7 {
		c := tr.CenterAt(z)
		if c < -120 || c > 120 {
			t.Fatalf("CenterAt(%v) = %v, outside [-amplitude, amplitude]", z, c)
		}
	}
}

func TestTrackCenterPeriodic(t *testing.T) {
	cfg := testTrackConfig()
	tr := NewTrack(cfg)

	period := 2 * math.Pi / cfg.Frequency
	for z := 0.0; z < 5000; z += 311 {
		a := tr.CenterAt(z)
		b := tr.CenterAt(z + period)
		if math.Abs(a-b) > 1e-6 {
			t.Errorf("CenterAt not periodic: offset(%v)=%v, offset(%v)=%v", z, a, z+period, b)
		}
	}
}

func TestTrackCenterDeterministic(t *testing.T) {
	tr := NewTrack(testTrackConfig())

	for _, z := range []float64{0, 1, 100, 9999.5} {
		if tr.CenterAt(z) != tr.CenterAt(z) {
			t.Errorf("CenterAt(%v) is not deterministic", z)
		}
	}
}

func TestTrackBounds(t *testing.T) {
	cfg := testTrackConfig()
	tr := NewTrack(cfg)

	for z := 0.0; z < 10000; z += 97 {
		left := tr.LeftBoundAt(z)
		right := tr.RightBoundAt(z)
		center := tr.CenterAt(z)

		if right-left != 2*cfg.HalfWidth {
			t.Fatalf("track width at %v = %v, expected %v", z, right-left, 2*cfg.HalfWidth)
		}
		if math.Abs((left+right)/2-center) > 1e-9 {
			t.Fatalf("bounds at %v not centered on %v", z, center)
		}
	}
}

func TestTrackHazardLimit(t *testing.T) {
	cfg := testTrackConfig()
	tr := NewTrack(cfg)

	if tr.HazardLimit() != cfg.Length-cfg.SafeZone {
		t.Errorf("HazardLimit() = %v, expected %v", tr.HazardLimit(), cfg.Length-cfg.SafeZone)
	}
}
