// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rotor

import (
	"math"
	"testing"

	"github.com/Ben-Mertz/RotorSE/geom"
	"github.com/Ben-Mertz/RotorSE/loads"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_graph01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("graph01. topological ordering")

	var g Graph
	var trace []string
	mk := func(name string, needs, gives []string) *node {
		return &node{name, needs, gives, func(s *State) error {
			trace = append(trace, name)
			for _, v := range gives {
				s.Set(v, 1.0)
			}
			return nil
		}}
	}
	// added out of order on purpose
	g.Add(mk("c", []string{"b1", "b2"}, []string{"c1"}))
	g.Add(mk("b", []string{"a1"}, []string{"b1"}))
	g.Add(mk("bb", []string{"a1"}, []string{"b2"}))
	g.Add(mk("a", nil, []string{"a1"}))

	s := NewState()
	if err := g.Run(s); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("trace = %v\n", trace)
	pos := make(map[string]int)
	for i, name := range trace {
		pos[name] = i
	}
	if pos["a"] > pos["b"] || pos["a"] > pos["bb"] || pos["b"] > pos["c"] || pos["bb"] > pos["c"] {
		tst.Errorf("wrong order: %v\n", trace)
		return
	}
	chk.Scalar(tst, "c1", 1e-15, s.Float("c1"), 1.0)
}

func Test_graph02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("graph02. wiring errors")

	// unknown input
	var g Graph
	g.Add(&node{"x", []string{"missing"}, []string{"x1"}, func(s *State) error { return nil }})
	if err := g.Run(NewState()); err == nil {
		tst.Errorf("unknown input did not fail\n")
		return
	}

	// input satisfied by pre-seeded state
	s := NewState()
	s.Set("missing", 2.0)
	if err := g.Run(s); err != nil {
		tst.Errorf("pre-seeded input must be allowed:\n%v", err)
		return
	}

	// cycle
	var g2 Graph
	g2.Add(&node{"p", []string{"q1"}, []string{"p1"}, func(s *State) error { return nil }})
	g2.Add(&node{"q", []string{"p1"}, []string{"q1"}, func(s *State) error { return nil }})
	if err := g2.Run(NewState()); err == nil {
		tst.Errorf("cycle did not fail\n")
		return
	}

	// duplicate producer
	var g3 Graph
	g3.Add(&node{"r", nil, []string{"v"}, func(s *State) error { return nil }})
	g3.Add(&node{"t", nil, []string{"v"}, func(s *State) error { return nil }})
	if err := g3.Run(NewState()); err == nil {
		tst.Errorf("duplicate producer did not fail\n")
	}
}

func Test_graph03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("graph03. parallel execution matches sequential")

	build := func() (*Graph, *State) {
		var g Graph
		g.Add(&node{"src", nil, []string{"x"}, func(s *State) error { s.Set("x", 3.0); return nil }})
		g.Add(&node{"dbl", []string{"x"}, []string{"x2"}, func(s *State) error { s.Set("x2", 2*s.Float("x")); return nil }})
		g.Add(&node{"sqr", []string{"x"}, []string{"xx"}, func(s *State) error { s.Set("xx", s.Float("x")*s.Float("x")); return nil }})
		g.Add(&node{"sum", []string{"x2", "xx"}, []string{"y"}, func(s *State) error { s.Set("y", s.Float("x2")+s.Float("xx")); return nil }})
		return &g, NewState()
	}

	g1, s1 := build()
	if err := g1.Run(s1); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	g2, s2 := build()
	if err := g2.RunParallel(s2); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "sequential", 1e-15, s1.Float("y"), 15.0)
	chk.Scalar(tst, "parallel", 1e-15, s2.Float("y"), s1.Float("y"))
}

func Test_env01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("env01. turbine class and gust model")

	chk.Scalar(tst, "vref I", 1e-15, ClassI.VRef(), 50.0)
	chk.Scalar(tst, "vref II", 1e-15, ClassII.VRef(), 42.5)
	chk.Scalar(tst, "vref III", 1e-15, ClassIII.VRef(), 37.5)
	chk.Scalar(tst, "vref IV", 1e-15, ClassIV.VRef(), 30.0)
	chk.Scalar(tst, "vmean", 1e-15, ClassI.VMean(), 10.0)
	chk.Scalar(tst, "vextreme", 1e-15, ClassI.VExtreme(), 70.0)

	chk.Scalar(tst, "iref A", 1e-15, CatA.IRef(), 0.16)
	chk.Scalar(tst, "iref B", 1e-15, CatB.IRef(), 0.14)
	chk.Scalar(tst, "iref C", 1e-15, CatC.IRef(), 0.12)

	tc, err := ParseTurbineClass("III")
	if err != nil || tc != ClassIII {
		tst.Errorf("parse failed: %v %v\n", tc, err)
		return
	}
	if _, err := ParseTurbineClass("V"); err == nil {
		tst.Errorf("unknown class did not fail\n")
		return
	}

	vmean, vhub := 10.0, 11.73
	sigma, vgust := GustETM(CatB, vmean, vhub, 3.0)
	ana := 2.0 * 0.14 * (0.072*(vmean/2+3)*(vhub/2-4) + 10)
	chk.Scalar(tst, "sigma", 1e-14, sigma, ana)
	chk.Scalar(tst, "vgust", 1e-14, vgust, vhub+3*ana)

	// zero standard deviations leaves the hub speed unchanged
	_, v0 := GustETM(CatB, vmean, vhub, 0)
	chk.Scalar(tst, "vgust nstd=0", 1e-15, v0, vhub)
}

func Test_post01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("post01. root loads and rollups")

	// straight blade, zero loads: root moment is exactly zero
	r := utl.LinSpace(1.5, 63.0, 10)
	zero := make([]float64, 10)
	cv, err := geom.NewCurvature(r, zero, zero, 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	al := &loads.AeroLoads{R: r, Px: zero, Py: zero, Pz: zero}
	mag, m, err := RootMoment(al, cv, r)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "zero loads", 1e-15, mag, 0)
	chk.Scalar(tst, "mx", 1e-15, m.X, 0)

	// uniform flapwise load: My = -integral of x*px? check against direct sum
	px := make([]float64, 10)
	for i := range px {
		px[i] = 1000.0
	}
	al2 := &loads.AeroLoads{R: r, Px: px, Py: zero, Pz: zero}
	mag2, m2, err := RootMoment(al2, cv, r)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	// dM = (0,0,z) x (p,0,0) = (0, z*p, 0)
	ana := 0.0
	for i := 1; i < 10; i++ {
		ana += 0.5 * (r[i]*1000.0 + r[i-1]*1000.0) * (r[i] - r[i-1])
	}
	chk.Scalar(tst, "uniform flap moment", 1e-10, m2.Y, ana)
	chk.Scalar(tst, "magnitude", 1e-10, mag2, ana)

	// root force of the same case
	fmag, f, err := RootForce(al2, cv, r)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "root force", 1e-10, f.X, 1000.0*(r[9]-r[0]))
	chk.Scalar(tst, "root force mag", 1e-10, fmag, f.X)

	// extreme loads sharing
	tx, qx := ExtremeLoads(3.0e5, 3.0e4, 3)
	chk.Scalar(tst, "t extreme", 1e-12, tx, (3.0e5+2*3.0e4)/3.0)
	chk.Scalar(tst, "q extreme", 1e-15, qx, 0)

	// mass rollup with zero tilt
	mass, iall := MassProperties(3, 17000.0, 1.2e7, 0)
	chk.Scalar(tst, "mass all blades", 1e-15, mass, 51000.0)
	chk.Scalar(tst, "ixx", 1e-15, iall[0], 3.6e7)
	chk.Scalar(tst, "iyy", 1e-15, iall[1], 1.8e7)

	// tip deflection with all angles zero: just the amplified x
	td := TipDeflection(&TipDeflectionInput{Dx: 2.0, DynamicFactor: 1.2})
	chk.Scalar(tst, "tip deflection", 1e-15, td, 2.4)
}

func Test_post02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("post02. foreshortening anchored at the hub")

	// straight blade deflecting out of plane; zero twist and pitch keep the
	// airfoil and blade frames aligned
	in := &BladeDeflectionInput{
		Dx:           []float64{0, 3, 4},
		Dy:           []float64{0, 0, 0},
		Dz:           []float64{0, 0, 0},
		ThetaStr:     []float64{0, 0, 0},
		Rhub:         1.5,
		RStr:         []float64{2, 4, 6},
		PrecurveStr:  []float64{0, 0, 0},
		BladeLength:  10.0,
		RSubPrecurve: []float64{3, 5},
	}
	dbl, dps, err := BladeDeflection(in)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// both arc lengths include the hub radius
	length0 := 1.5 + 2.0 + 2.0
	length := 1.5 + math.Hypot(2, 3) + math.Hypot(2, 1)
	chk.Scalar(tst, "delta blade length", 1e-13, dbl, 10.0*(length0/length-1.0))
	io.Pforan("dbl = %v\n", dbl)

	// precurve corrections are the interpolated deflections
	chk.Scalar(tst, "dprecurve[0]", 1e-14, dps[0], 1.5)
	chk.Scalar(tst, "dprecurve[1]", 1e-14, dps[1], 3.5)

	// undeflected blade shortens by nothing
	dbl0, _, err := BladeDeflection(&BladeDeflectionInput{
		Dx:           []float64{0, 0, 0},
		Dy:           []float64{0, 0, 0},
		Dz:           []float64{0, 0, 0},
		ThetaStr:     []float64{0, 0, 0},
		Rhub:         1.5,
		RStr:         []float64{2, 4, 6},
		PrecurveStr:  []float64{0, 1, 2},
		BladeLength:  10.0,
		RSubPrecurve: []float64{4},
	})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "no deflection", 1e-15, dbl0, 0)
}
