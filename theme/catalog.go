package theme

import (
	"fmt"
	"slices"

	cloudgen "github.com/Erkaman/cloud-gen"
)

// Names of the built-in themes.
const (
	BlueSky = "blue-sky"
	Dawn    = "dawn"
	Storm   = "storm"
	Night   = "night"
)

var r = cloudgen.R

// Shared by several themes.
var smallPuffs = cloudgen.SizeClass{
	Name:          "small",
	Humps:         r(6, 9),
	RadiusX:       r(40, 80),
	RadiusY:       r(20, 35),
	MinHumpRadius: r(14, 16),
	MaxHumpRadius: r(22, 24),
	HumpNoise:     r(4, 9),
}

func withCount(c cloudgen.SizeClass, n int) cloudgen.SizeClass {
	c.Count = n
	return c
}

var builtins = []Theme{
	{
		Name: BlueSky,
		Sky: Gradient{
			{0, "#559dcc"},
			{0.5, "#559dcc"},
			{1, "#99dfee"},
		},
		Cloud: Gradient{
			{0, "#ffffff"},
			{0.5, "#ffffff"},
			{1, "#8888bb"},
		},
		Classes: []cloudgen.SizeClass{
			{
				Name:          "large",
				Count:         8,
				Humps:         r(6, 9),
				RadiusX:       r(75, 130),
				RadiusY:       r(50, 65),
				MinHumpRadius: r(29, 39),
				MaxHumpRadius: r(40, 48),
				HumpNoise:     r(17, 27),
			},
			withCount(smallPuffs, 13),
		},
	},
	{
		Name: Dawn,
		Sky: Gradient{
			{0, "#8e728b"},
			{0.65, "#8e728b"},
			{1, "#fc8f5f"},
		},
		Cloud: Gradient{
			{0, "#aaaaaa"},
			{1, "#cc7777"},
		},
		Classes: []cloudgen.SizeClass{
			{
				Name:          "streaks",
				Count:         15,
				Humps:         r(7, 11),
				RadiusX:       r(80, 120),
				RadiusY:       r(20, 35),
				MinHumpRadius: r(19, 21),
				MaxHumpRadius: r(24, 25),
				HumpNoise:     r(4, 9),
			},
			{
				Name:          "puffs",
				Count:         10,
				Humps:         r(5, 7),
				RadiusX:       r(30, 50),
				RadiusY:       r(20, 40),
				MinHumpRadius: r(15, 17),
				MaxHumpRadius: r(27, 29),
				HumpNoise:     r(8, 12),
			},
		},
	},
	{
		Name: Storm,
		Sky: Gradient{
			{0, "#ffffff"},
			{0.5, "#777777"},
			{1, "#aaaaaa"},
		},
		Cloud: Gradient{
			{0, "#aaaaaa"},
			{0.1, "#aaaaaa"},
			{0.8, "#444444"},
			{1, "#333333"},
		},
		Classes: []cloudgen.SizeClass{
			{
				Name:          "thunderheads",
				Count:         3,
				Humps:         r(8, 13),
				RadiusX:       r(170, 260),
				RadiusY:       r(80, 120),
				MinHumpRadius: r(39, 40),
				MaxHumpRadius: r(60, 70),
				HumpNoise:     r(17, 27),
			},
			withCount(smallPuffs, 9),
			{
				Name:          "streaks",
				Count:         3,
				Humps:         r(6, 11),
				RadiusX:       r(110, 160),
				RadiusY:       r(20, 50),
				MinHumpRadius: r(19, 21),
				MaxHumpRadius: r(27, 29),
				HumpNoise:     r(10, 19),
			},
		},
	},
	{
		Name: Night,
		Sky: Gradient{
			{0, "#000055"},
			{1, "#333355"},
		},
		Cloud: Gradient{
			{0.1, "#666699"},
			{0.5, "#444488"},
		},
		Classes: []cloudgen.SizeClass{
			{
				Name:          "small",
				Count:         12,
				Humps:         r(4, 12),
				RadiusX:       r(40, 80),
				RadiusY:       r(20, 35),
				MinHumpRadius: r(17, 20),
				MaxHumpRadius: r(23, 27),
				HumpNoise:     r(4, 9),
			},
		},
	},
}

func init() {
	for i := range builtins {
		builtins[i].Width = DefaultWidth
		builtins[i].Height = DefaultHeight
	}
}

// Names returns the names of the built-in themes in catalog order.
func Names() []string {
	out := make([]string, len(builtins))
	for i, t := range builtins {
		out[i] = t.Name
	}
	return out
}

// Lookup returns the built-in theme with the given name. The returned theme's
// slices are copies and may be modified freely.
func Lookup(name string) (Theme, error) {
	i := slices.IndexFunc(builtins, func(t Theme) bool { return t.Name == name })
	if i < 0 {
		return Theme{}, fmt.Errorf("%w %q, want one of %v", ErrUnknownTheme, name, Names())
	}
	t := builtins[i]
	t.Sky = slices.Clone(t.Sky)
	t.Cloud = slices.Clone(t.Cloud)
	t.Classes = slices.Clone(t.Classes)
	return t, nil
}

// All returns every built-in theme in catalog order.
func All() []Theme {
	out := make([]Theme, 0, len(builtins))
	for _, name := range Names() {
		t, _ := Lookup(name)
		out = append(out, t)
	}
	return out
}
