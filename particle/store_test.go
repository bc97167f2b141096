package particle

import "testing"

func TestNewStoreSpawnsInitialPopulation(t *testing.T) {
	counts := Counts{Bass: 5, Mid: 7, Treble: 9}
	s, err := NewStore(120, 40, counts, 1)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if got := s.Len(); got != 21 {
		t.Fatalf("Expected 21 particles, got %d", got)
	}

	byBand := map[Band]int{}
	for _, p := range s.Particles() {
		byBand[p.Band]++
	}
	if byBand[Bass] != 5 || byBand[Mid] != 7 || byBand[Treble] != 9 {
		t.Errorf("Band counts = %v, want 5/7/9", byBand)
	}
}

func TestNewStoreRejectsDegenerateBounds(t *testing.T) {
	if _, err := NewStore(0, 40, Counts{}, 1); err == nil {
		t.Error("Expected error for zero width, got nil")
	}
	if _, err := NewStore(120, -1, Counts{}, 1); err == nil {
		t.Error("Expected error for negative height, got nil")
	}
}

func TestSpawnedParticlesAreInsideWorld(t *testing.T) {
	s, err := NewStore(120, 40, Counts{Bass: 20, Mid: 20, Treble: 20}, 3)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	// Spawn near the edges: positions must be clamped inside
	s.Spawn(Bass, 0, 0, 10)
	s.Spawn(Treble, 120, 40, 10)

	for i, p := range s.Particles() {
		if p.Pos[0] < 0 || p.Pos[0] > 120 || p.Pos[1] < 0 || p.Pos[1] > 40 {
			t.Errorf("particle %d spawned outside world at %v", i, p.Pos)
		}
		if p.Mass < 1 {
			t.Errorf("particle %d mass = %g, want >= 1", i, p.Mass)
		}
		if p.Radius <= 0 {
			t.Errorf("particle %d radius = %g, want > 0", i, p.Radius)
		}
		if p.FloorY > 40 || p.FloorY < p.Radius {
			t.Errorf("particle %d floor = %g outside world", i, p.FloorY)
		}
	}
}

func TestSpawnBurstMixesBands(t *testing.T) {
	s, err := NewStore(120, 40, Counts{}, 5)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	s.SpawnBurst(60, 20, 9)

	byBand := map[Band]int{}
	for _, p := range s.Particles() {
		byBand[p.Band]++
	}
	if byBand[Bass] != 3 || byBand[Mid] != 3 || byBand[Treble] != 3 {
		t.Errorf("Burst band counts = %v, want 3 of each", byBand)
	}
}

func TestResetRestoresInitialPopulation(t *testing.T) {
	counts := Counts{Bass: 4, Mid: 4, Treble: 4}
	s, err := NewStore(120, 40, counts, 9)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	s.Spawn(Mid, 60, 20, 30)
	if s.Len() != 42 {
		t.Fatalf("Expected 42 after spawn, got %d", s.Len())
	}

	s.Reset()
	if s.Len() != 12 {
		t.Errorf("Expected 12 after reset, got %d", s.Len())
	}
}

func TestBandString(t *testing.T) {
	cases := map[Band]string{Bass: "bass", Mid: "mid", Treble: "treble", Band(9): "unknown"}
	for b, want := range cases {
		if got := b.String(); got != want {
			t.Errorf("Band(%d).String() = %q, want %q", b, got, want)
		}
	}
}

func TestRGBScaleClamps(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 50}
	bright := c.Scale(2)
	if bright.R != 255 || bright.G != 200 || bright.B != 100 {
		t.Errorf("Scale(2) = %+v, want {255 200 100}", bright)
	}
	if dark := c.Scale(0); dark != (RGB{}) {
		t.Errorf("Scale(0) = %+v, want zero", dark)
	}
}
