package cloudgen_test

import (
	"fmt"

	cloudgen "github.com/Erkaman/cloud-gen"
)

func ExampleSynthesizeCloud() {
	rng := cloudgen.NewRand(0)
	c := cloudgen.SynthesizeCloud(rng, cloudgen.Pt(500, 500), cloudgen.HumpParams{
		Humps:         7,
		Radii:         cloudgen.Vec(100, 60),
		MinHumpRadius: 30,
		MaxHumpRadius: 45,
		HumpNoise:     20,
	})
	fmt.Println(len(c.Outline), c.Outline.Closed(), c.Bounds.Contains(cloudgen.Pt(500, 500)))
	// Output:
	// 7 true true
}

func ExampleGenerate() {
	s, err := cloudgen.Generate(cloudgen.Request{
		Width:  1000,
		Height: 1000,
		Seed:   0,
		Classes: []cloudgen.SizeClass{{
			Name:          "large",
			Count:         8,
			Humps:         cloudgen.R(6, 9),
			RadiusX:       cloudgen.R(75, 130),
			RadiusY:       cloudgen.R(50, 65),
			MinHumpRadius: cloudgen.R(29, 39),
			MaxHumpRadius: cloudgen.R(40, 48),
			HumpNoise:     cloudgen.R(17, 27),
		}},
	})
	if err != nil {
		panic(err)
	}

	// Crowded canvases can come up short, but never exceed the target.
	fmt.Println(s.Classes[0].Placed <= s.Classes[0].Target)
	// Output:
	// true
}
