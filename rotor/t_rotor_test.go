// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rotor

import (
	"math"
	"sync"
	"testing"

	"github.com/Ben-Mertz/RotorSE/aero"
	"github.com/Ben-Mertz/RotorSE/geom"
	"github.com/Ben-Mertz/RotorSE/loads"
	"github.com/Ben-Mertz/RotorSE/section"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// fakeSolver stands in for the blade-element/momentum code: a cubic power
// law feathered above 45 degrees of pitch and triangular distributed loads
type fakeSolver struct {
	radius float64
}

func (o *fakeSolver) Power(uhub, omega, pitch []float64) (p, t, q []float64, err error) {
	n := len(uhub)
	p = make([]float64, n)
	t = make([]float64, n)
	q = make([]float64, n)
	area := 0.5 * 1.225 * math.Pi * o.radius * o.radius
	for i := 0; i < n; i++ {
		cp := 0.45
		if pitch[i] > 45 {
			cp = 0.02
		}
		u := uhub[i]
		p[i] = cp * area * u * u * u
		t[i] = 0.8 * area * u * u
		if omega[i] > 0 {
			q[i] = p[i] / (omega[i] * math.Pi / 30.0)
		}
	}
	return
}

func (o *fakeSolver) Distributed(uhub, omega, pitch, azimuth float64) (*loads.AeroLoads, error) {
	n := 12
	r := utl.LinSpace(0.03*o.radius, o.radius, n)
	px := make([]float64, n)
	py := make([]float64, n)
	pz := make([]float64, n)
	for i := 0; i < n; i++ {
		f := r[i] / o.radius
		px[i] = 60.0 * uhub * uhub * f // flapwise ramp
		py[i] = -4.0 * uhub * uhub * f // drag-wise
	}
	return &loads.AeroLoads{R: r, Px: px, Py: py, Pz: pz, Omega: omega, Pitch: pitch, Azimuth: azimuth}, nil
}

// nrel5mwBlade returns the spline input of the 5 MW reference blade
func nrel5mwBlade() *geom.SplineInput {
	return &geom.SplineInput{
		RAeroUnit: []float64{0.02222276, 0.06666667, 0.11111057, 0.16666667, 0.23333333,
			0.3, 0.36666667, 0.43333333, 0.5, 0.56666667, 0.63333333,
			0.7, 0.76666667, 0.83333333, 0.88888943, 0.93333333, 0.97777724},
		RStrUnit: []float64{0, 0.00492790457512, 0.00652942887106, 0.00813095316699,
			0.00983257273154, 0.0114340970275, 0.0130356213234, 0.02222276,
			0.024446481932, 0.026048006228, 0.06666667, 0.089508406455,
			0.11111057, 0.146462837, 0.16666667, 0.195309105, 0.23333333,
			0.276686558545, 0.3, 0.333640766319, 0.36666667, 0.400404310407,
			0.43333333, 0.5, 0.520818918408, 0.56666667, 0.602196371696,
			0.63333333, 0.667358391486, 0.683573824984, 0.7, 0.73242031601,
			0.76666667, 0.83333333, 0.88888943, 0.93333333, 0.97777724, 1.0},
		IdxCylAero:  3,
		IdxCylStr:   14,
		HubFraction: 0.025,
		BladeLength: 61.5,
		RMaxChord:   0.23577,
		ChordSub:    []float64{3.2612, 4.5709, 3.3178, 1.4621},
		ThetaSub:    []float64{13.2783, 7.46036, 2.89317, -0.0878099},
		PrecurveSub: []float64{0, 0, 0},
		SparTsub:    []float64{0.05, 0.047754, 0.045376, 0.031085, 0.0061398},
		TeTsub:      []float64{0.1, 0.09569, 0.06569, 0.02569, 0.00569},
	}
}

// referenceStation builds a three-sector layup thick enough to survive the
// thickness rescaling at every station
func referenceStation() *section.Station {
	cs := func() *section.CompositeSection {
		return &section.CompositeSection{
			Loc: []float64{0, 0.15, 0.5, 1.0},
			Laminates: []section.Laminate{
				{Plies: []section.Lamina{{NPly: 20, TPly: 0.0005, Theta: 20, MatID: 1}}},
				{Plies: []section.Lamina{{NPly: 60, TPly: 0.0005, Theta: 0, MatID: 0}}},
				{Plies: []section.Lamina{{NPly: 40, TPly: 0.0005, Theta: 0, MatID: 0}}},
			},
		}
	}
	return &section.Station{Upper: cs(), Lower: cs(), Webs: nil, WebLoc: nil}
}

func nrel5mwRotor() *RotorSE {
	blade := nrel5mwBlade()
	nstr := len(blade.RStrUnit)
	leloc := make([]float64, nstr)
	profiles := make([]*section.Profile, nstr)
	stations := make([]*section.Station, nstr)
	for i := 0; i < nstr; i++ {
		leloc[i] = 0.35
		profiles[i] = section.CylinderProfile(24)
		stations[i] = referenceStation()
	}
	mats := []*section.Orthotropic{
		{Name: "glass_uni", E1: 45e9, E2: 10e9, G12: 5e9, Nu12: 0.28, Rho: 1850},
		{Name: "glass_biax", E1: 13.6e9, E2: 13.3e9, G12: 11.8e9, Nu12: 0.51, Rho: 1830},
	}
	return &RotorSE{
		Blade:       blade,
		LeLoc:       leloc,
		Profiles:    profiles,
		RefStations: stations,
		Mats:        mats,
		IdxSpar:     1,
		IdxTe:       2,
		Control: &aero.Control{
			Vin: 3.0, Vout: 25.0, RatedPower: 5e6,
			MinOmega: 0, MaxOmega: 12.0, Tsr: 7.55, Pitch: 0,
		},
		Drivetrain: aero.Geared,
		NBlades:    3,
		Precone:    2.5,
		Tilt:       5.0,
		HubHt:      90.0,
		ShearExp:   0.2,
		RefHt:      90.0,
		TurbClass:  ClassI,
		TurbCat:    CatB,
		Solver:     &fakeSolver{radius: 63.0},
	}
}

func Test_rotor01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rotor01. 5 MW reference rotor end to end")

	r := nrel5mwRotor()
	res, err := r.Run()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// geometry consistency
	chk.Scalar(tst, "Rhub", 1e-12, res.Shape.Rhub, 0.025*61.5)
	chk.Scalar(tst, "hub diameter", 1e-12, res.Shape.HubDiameter, 2*0.025*61.5)
	a := 2.5 * math.Pi / 180.0
	chk.Scalar(tst, "diameter", 1e-12, res.Diameter, 2*res.Shape.Rtip*math.Cos(a))

	// power curve: non-decreasing from cut-in to a plateau at rated
	pc := res.PC
	for i := 1; i < len(pc.P); i++ {
		if pc.P[i] < pc.P[i-1]-1.0 {
			tst.Errorf("power curve decreased at i=%d\n", i)
			return
		}
	}
	chk.Scalar(tst, "plateau", 1e-6, pc.P[len(pc.P)-1], 5e6)
	if pc.Rated.V <= 3.0 || pc.Rated.V >= 25.0 {
		tst.Errorf("rated speed %g outside (3,25)\n", pc.Rated.V)
		return
	}
	io.Pforan("rated: V=%.3f omega=%.3f\n", pc.Rated.V, pc.Rated.Omega)

	// energy and structure
	if res.AEP <= 0 || math.IsNaN(res.AEP) || math.IsInf(res.AEP, 0) {
		tst.Errorf("aep = %g is not positive finite\n", res.AEP)
		return
	}
	if res.MassOneBlade <= 0 || math.IsNaN(res.MassOneBlade) {
		tst.Errorf("blade mass = %g is not positive finite\n", res.MassOneBlade)
		return
	}
	chk.Scalar(tst, "mass all blades", 1e-12, res.MassAllBlades, 3*res.MassOneBlade)
	io.Pforan("mass one blade = %.1f kg, aep = %.0f kWh\n", res.MassOneBlade, res.AEP)

	// frequencies sorted and positive; curved axis stays in the same range
	if len(res.Freqs) != 5 || len(res.CurvedFreqs) != 5 {
		tst.Errorf("expected 5 frequencies\n")
		return
	}
	for i, f := range res.Freqs {
		if f <= 0 {
			tst.Errorf("freq[%d] = %g is not positive\n", i, f)
			return
		}
		if i > 0 && f < res.Freqs[i-1] {
			tst.Errorf("frequencies are not sorted\n")
			return
		}
	}

	// gust exceeds the rated hub speed
	if res.VGust <= pc.Rated.V {
		tst.Errorf("gust speed %g must exceed rated %g\n", res.VGust, pc.Rated.V)
		return
	}

	// deflection and root loads
	if res.TipDeflection == 0 {
		tst.Errorf("tip deflection is exactly zero\n")
		return
	}
	if res.RootMomentMag <= 0 {
		tst.Errorf("root moment %g is not positive\n", res.RootMomentMag)
		return
	}
	if res.TExtreme <= 0 {
		tst.Errorf("extreme thrust %g is not positive\n", res.TExtreme)
		return
	}
	chk.Scalar(tst, "extreme torque", 1e-15, res.QExtreme, 0)
	if len(res.AzimuthCases) != 3 {
		tst.Errorf("expected three azimuth cases\n")
		return
	}

	// strains present at every station, compressive side negative somewhere
	nstr := len(res.Shape.RStr)
	if len(res.StrainUSpar) != nstr || len(res.StrainLSpar) != nstr {
		tst.Errorf("strain arrays have the wrong length\n")
		return
	}
	for i := 0; i < nstr; i++ {
		if math.IsNaN(res.StrainUSpar[i]) || math.IsNaN(res.StrainLSpar[i]) {
			tst.Errorf("strain at station %d is NaN\n", i)
			return
		}
	}
}

func Test_rotor02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rotor02. parallel evaluation is equivalent")

	r1 := nrel5mwRotor()
	res1, err := r1.Run()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	r2 := nrel5mwRotor()
	res2, err := r2.RunParallel()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "aep", 1e-12, res2.AEP, res1.AEP)
	chk.Scalar(tst, "mass", 1e-12, res2.MassOneBlade, res1.MassOneBlade)
	chk.Scalar(tst, "tip deflection", 1e-12, res2.TipDeflection, res1.TipDeflection)
	chk.Scalar(tst, "root moment", 1e-12, res2.RootMomentMag, res1.RootMomentMag)
	chk.Vector(tst, "frequencies", 1e-12, res2.Freqs, res1.Freqs)
}

func Test_rotor03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rotor03. fatigue damage from a moment envelope")

	r := nrel5mwRotor()
	r.DamageRStar = []float64{0, 0.2, 0.4, 0.6, 0.8, 1.0}
	r.DamageMxb = []float64{2.4e6, 1.5e6, 8.0e5, 3.5e5, 1.0e5, 1.0e3}
	r.DamageMyb = []float64{2.0e6, 1.2e6, 6.5e5, 3.0e5, 8.0e4, 1.0e3}
	r.Fatigue.EpsMax = 3.5e-3
	r.Fatigue.Eta = 1.755
	r.Fatigue.M = 10.0
	r.Fatigue.N = 700.0e6

	res, err := r.Run()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	nstr := len(res.Shape.RStr)
	if len(res.DamageUSpar) != nstr || len(res.DamageLTe) != nstr {
		tst.Errorf("damage arrays have the wrong length\n")
		return
	}
	for i := 0; i < nstr; i++ {
		if math.IsNaN(res.DamageUSpar[i]) || math.IsInf(res.DamageUSpar[i], 0) {
			tst.Errorf("damage at station %d is not finite\n", i)
			return
		}
	}
}

// recordingSolver notes the operating point of every distributed evaluation
type recordingSolver struct {
	fakeSolver
	mu    sync.Mutex
	calls [][4]float64 // uhub, omega, pitch, azimuth
}

func (o *recordingSolver) Distributed(uhub, omega, pitch, azimuth float64) (*loads.AeroLoads, error) {
	o.mu.Lock()
	o.calls = append(o.calls, [4]float64{uhub, omega, pitch, azimuth})
	o.mu.Unlock()
	return o.fakeSolver.Distributed(uhub, omega, pitch, azimuth)
}

func Test_rotor04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rotor04. operating point of every distributed load case")

	r := nrel5mwRotor()
	rec := &recordingSolver{fakeSolver: fakeSolver{radius: 63.0}}
	r.Solver = rec
	res, err := r.Run()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if len(rec.calls) != 6 {
		tst.Errorf("expected 6 distributed evaluations; got %d\n", len(rec.calls))
		return
	}
	find := func(u, om, pitch, az float64) bool {
		for _, c := range rec.calls {
			if math.Abs(c[0]-u) < 1e-9 && math.Abs(c[1]-om) < 1e-9 &&
				math.Abs(c[2]-pitch) < 1e-9 && math.Abs(c[3]-az) < 1e-9 {
				return true
			}
		}
		return false
	}
	rated := res.PC.Rated

	// deflection case: gust speed, rated rotation, closest to the tower
	if !find(res.VGust, rated.Omega, rated.Pitch, 180.0) {
		tst.Errorf("deflection case not evaluated at (%g, %g, %g, 180)\n", res.VGust, rated.Omega, rated.Pitch)
		return
	}

	// power-curve deflection case at a fraction of rated speed, tsr tracking
	uhub := 0.7 * rated.V
	om := 7.55 * uhub / res.Radius * 30.0 / math.Pi
	if om > 12.0 {
		om = 12.0
	}
	if !find(uhub, om, 0.0, 0.0) {
		tst.Errorf("power-curve deflection case not evaluated at (%g, %g, 0, 0)\n", uhub, om)
		return
	}

	// max-strain case: parked at the survival speed of wind class I
	if !find(1.4*50.0, 0.0, 0.0, 0.0) {
		tst.Errorf("parked survival case not evaluated at (70, 0, 0, 0)\n")
		return
	}

	// three-azimuth drivetrain cases, feathered to 89 degrees
	for _, az := range []float64{0, 120, 240} {
		if !find(res.VGust, rated.Omega, 89.0, az) {
			tst.Errorf("azimuth case %g not evaluated at the gust speed\n", az)
			return
		}
	}
}
