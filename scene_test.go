package cloudgen

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var largeClass = SizeClass{
	Name:          "large",
	Count:         8,
	Humps:         R(6, 9),
	RadiusX:       R(75, 130),
	RadiusY:       R(50, 65),
	MinHumpRadius: R(29, 39),
	MaxHumpRadius: R(40, 48),
	HumpNoise:     R(17, 27),
}

var smallClass = SizeClass{
	Name:          "small",
	Count:         13,
	Humps:         R(6, 9),
	RadiusX:       R(40, 80),
	RadiusY:       R(20, 35),
	MinHumpRadius: R(14, 16),
	MaxHumpRadius: R(22, 24),
	HumpNoise:     R(4, 9),
}

func checkScene(t *testing.T, s *Scene) {
	t.Helper()
	canvas := s.Canvas()
	for i, c := range s.Clouds {
		if !canvas.ContainsAABB(c.Bounds) {
			t.Errorf("cloud %d with bounds %v leaves the canvas", i, c.Bounds)
		}
		if !c.Outline.Closed() {
			t.Errorf("cloud %d is not closed", i)
		}
		for j := range i {
			if o := s.Clouds[j]; c.Bounds.Overlaps(o.Bounds) {
				t.Errorf("cloud %d %v overlaps cloud %d %v", i, c.Bounds, j, o.Bounds)
			}
		}
	}
}

func TestGenerateBlueSky(t *testing.T) {
	req := Request{Width: 1000, Height: 1000, Seed: 0, Classes: []SizeClass{largeClass}}
	s, err := Generate(req)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(s.Clouds); n > 8 {
		t.Errorf("got %d clouds, want at most 8", n)
	}
	checkScene(t, s)
	for _, c := range s.Clouds {
		if c.Class != 0 {
			t.Errorf("cloud attributed to class %d, want 0", c.Class)
		}
		if n := len(c.Outline); n < 6 || n > 9 {
			t.Errorf("cloud has %d humps, want 6 to 9", n)
		}
	}
	cr := s.Classes[0]
	if cr.Placed != len(s.Clouds) || cr.Target != 8 || cr.Name != "large" {
		t.Errorf("unexpected class result %+v for %d clouds", cr, len(s.Clouds))
	}
}

func TestGenerateMultipleClasses(t *testing.T) {
	req := Request{Width: 1000, Height: 1000, Seed: 17, Classes: []SizeClass{largeClass, smallClass}}
	s, err := Generate(req)
	if err != nil {
		t.Fatal(err)
	}
	checkScene(t, s)

	counts := make([]int, 2)
	last := 0
	for _, c := range s.Clouds {
		if c.Class < last {
			t.Fatalf("cloud of class %d placed after class %d", c.Class, last)
		}
		last = c.Class
		counts[c.Class]++
	}
	for i, cr := range s.Classes {
		if cr.Placed != counts[i] {
			t.Errorf("class %d reports %d placed clouds, scene has %d", i, cr.Placed, counts[i])
		}
		if cr.Placed > cr.Target {
			t.Errorf("class %d placed %d clouds, more than its target %d", i, cr.Placed, cr.Target)
		}
	}
	if len(s.Bounds()) != len(s.Clouds) {
		t.Errorf("got %d bounds for %d clouds", len(s.Bounds()), len(s.Clouds))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	req := Request{Width: 1000, Height: 1000, Seed: 1234, Classes: []SizeClass{largeClass, smallClass}}
	a, err := Generate(req)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(req)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, a, b)

	req.Seed++
	c, err := Generate(req)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Clouds) > 0 && len(a.Clouds) > 0 && c.Clouds[0].Bounds == a.Clouds[0].Bounds {
		t.Errorf("different seeds produced the same first cloud")
	}
}

func TestGenerateEmptyClass(t *testing.T) {
	empty := largeClass
	empty.Count = 0
	s, err := Generate(Request{Width: 1000, Height: 1000, Classes: []SizeClass{empty}})
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Clouds) != 0 {
		t.Errorf("got %d clouds, want none", len(s.Clouds))
	}
	diff(t, []ClassResult{{Name: "large"}}, s.Classes)
}

func TestComposerEmptyClassDrawsNothing(t *testing.T) {
	empty := largeClass
	empty.Count = 0
	c := &composer{
		log:           zap.NewNop(),
		maxAttempts:   DefaultMaxAttempts,
		classAttempts: DefaultClassAttempts,
		rng:           NewRand(0),
		scene:         &Scene{Width: 1000, Height: 1000},
	}
	c.fill(0, empty)
	if n := c.rng.Draws(); n != 0 {
		t.Errorf("got %d draws, want 0", n)
	}
}

func TestGenerateImpossibleTerminates(t *testing.T) {
	huge := largeClass
	huge.Count = 5
	// the canvas can't hold a single cloud of this class
	req := Request{Width: 100, Height: 100, Classes: []SizeClass{huge}}

	core, logs := observer.New(zap.DebugLevel)
	s, err := Generate(req, WithLogger(zap.New(core)), WithClassAttempts(20))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Clouds) != 0 {
		t.Errorf("got %d clouds, want none", len(s.Clouds))
	}
	diff(t, []ClassResult{{Name: "large", Target: 5, Placed: 0, Attempts: 20}}, s.Classes)
	if !s.Classes[0].Short() {
		t.Error("class not reported as short")
	}

	if n := logs.FilterMessage("gave up placing cloud").Len(); n != 20 {
		t.Errorf("got %d give-up messages, want 20", n)
	}
	if n := logs.FilterLevelExact(zap.WarnLevel).Len(); n != 1 {
		t.Errorf("got %d warnings, want 1", n)
	}
}

func TestGenerateOptions(t *testing.T) {
	req := Request{Width: 1000, Height: 1000, Seed: 3, Classes: []SizeClass{largeClass}}
	s, err := Generate(req, WithMaxAttempts(0), WithLogger(nil))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Clouds) != 0 {
		t.Errorf("placed %d clouds without placement attempts", len(s.Clouds))
	}
	if got := s.Classes[0].Attempts; got != DefaultClassAttempts {
		t.Errorf("got %d class attempts, want %d", got, DefaultClassAttempts)
	}
}

func TestGenerateInvalid(t *testing.T) {
	bad := largeClass
	bad.Humps = R(2, 5)
	negative := largeClass
	negative.RadiusX = R(-10, 5)
	reversed := largeClass
	reversed.HumpNoise = R(10, 5)
	huge := largeClass
	huge.Count = 1
	huge.Humps = R(3, 1e300)
	tooMany := largeClass
	tooMany.Humps = R(6, MaxHumps+1)

	tests := []struct {
		name string
		req  Request
	}{
		{"zero width", Request{Width: 0, Height: 100}},
		{"negative height", Request{Width: 100, Height: -1}},
		{"too few humps", Request{Width: 100, Height: 100, Classes: []SizeClass{bad}}},
		{"negative radius", Request{Width: 100, Height: 100, Classes: []SizeClass{negative}}},
		{"reversed range", Request{Width: 100, Height: 100, Classes: []SizeClass{largeClass, reversed}}},
		{"overflowing hump count", Request{Width: 1000, Height: 1000, Classes: []SizeClass{huge}}},
		{"too many humps", Request{Width: 1000, Height: 1000, Classes: []SizeClass{tooMany}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Generate(tt.req)
			if err == nil {
				t.Fatalf("got scene with %d clouds, want error", len(s.Clouds))
			}
			if !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("error %q doesn't wrap ErrInvalidRequest", err)
			}
		})
	}
}

func TestSizeClassSample(t *testing.T) {
	rng := NewRand(8)
	for range 1000 {
		p := largeClass.sample(rng)
		if err := p.Validate(); err != nil {
			t.Fatalf("sampled invalid parameters %+v: %v", p, err)
		}
		if p.Humps < 6 || p.Humps > 9 {
			t.Errorf("got %d humps, want 6 to 9", p.Humps)
		}
		if p.Radii.X < 75 || p.Radii.X > 130 || p.Radii.Y < 50 || p.Radii.Y > 65 {
			t.Errorf("got radii %v outside their ranges", p.Radii)
		}
	}
	if n := rng.Draws(); n != 6000 {
		t.Errorf("got %d draws, want 6000", n)
	}
}
