package island

import "testing"

func TestClassify(t *testing.T) {
	const maxHeight = 10

	cases := []struct {
		heights [3]float32
		want    Band
	}{
		{[3]float32{0.2, 0.3, 0.1}, Water}, // avg 0.2
		{[3]float32{1.0, 1.2, 1.3}, Sand},  // avg ~1.167
		{[3]float32{2.0, 3.0, 4.0}, Grass}, // avg 3.0
		{[3]float32{5.0, 6.0, 7.0}, Rock},  // avg 6.0, exactly on the grass/rock edge
		{[3]float32{9, 9, 9}, Rock},
	}

	for _, c := range cases {
		avg := (c.heights[0] + c.heights[1] + c.heights[2]) / 3
		if got := classify(avg, maxHeight); got != c.want {
			t.Errorf("classify(avg %v of %v) = %v, want %v", avg, c.heights, got, c.want)
		}
	}
}

func TestClassifyBoundariesFallLow(t *testing.T) {
	const maxHeight = 10

	// Strict < puts exact threshold values into the higher band.
	if got := classify(0.5, maxHeight); got != Sand {
		t.Errorf("classify(0.5) = %v, want sand (water boundary excluded)", got)
	}
	if got := classify(1.5, maxHeight); got != Grass {
		t.Errorf("classify(1.5) = %v, want grass (sand boundary excluded)", got)
	}
	if got := classify(6.0, maxHeight); got != Rock {
		t.Errorf("classify(6.0) = %v, want rock (grass boundary excluded)", got)
	}
}

func TestClassifyScaleInvariant(t *testing.T) {
	// Classification depends only on the ratio avg/maxHeight.
	for _, frac := range []float32{0, 0.03, 0.05, 0.1, 0.15, 0.4, 0.6, 0.9, 1} {
		a := classify(frac*10, 10)
		b := classify(frac*20, 20)
		c := classify(frac*0.7, 0.7)
		if a != b || a != c {
			t.Errorf("fraction %v classified as %v / %v / %v across height ranges", frac, a, b, c)
		}
	}
}

func TestBandString(t *testing.T) {
	want := map[Band]string{Water: "water", Sand: "sand", Grass: "grass", Rock: "rock"}
	for b, s := range want {
		if b.String() != s {
			t.Errorf("Band(%d).String() = %q, want %q", b, b.String(), s)
		}
	}
}
