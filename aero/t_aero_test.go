// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aero

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func testControl() *Control {
	return &Control{
		Vin:        3.0,
		Vout:       25.0,
		RatedPower: 5e6,
		MinOmega:   0.0,
		MaxOmega:   12.0,
		Tsr:        7.55,
		Pitch:      0.0,
	}
}

func Test_runvs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("runvs01. variable speed run conditions")

	c := testControl()
	rc, err := SetupRunVarSpeed(c, 63.0, 20)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if len(rc.Uhub) != 20 {
		tst.Errorf("wrong number of points: %d\n", len(rc.Uhub))
		return
	}
	chk.Scalar(tst, "uhub[0]", 1e-15, rc.Uhub[0], c.Vin)
	chk.Scalar(tst, "uhub[n-1]", 1e-15, rc.Uhub[len(rc.Uhub)-1], c.Vout)
	for i, om := range rc.Omega {
		if om < c.MinOmega-1e-12 || om > c.MaxOmega+1e-12 {
			tst.Errorf("omega[%d]=%g outside bounds\n", i, om)
			return
		}
		chk.Scalar(tst, io.Sf("pitch[%d]", i), 1e-15, rc.Pitch[i], c.Pitch)
	}
	// tsr tracking below the omega cap
	om0 := c.Tsr * rc.Uhub[0] / 63.0 * rs2rpm
	if om0 < c.MaxOmega {
		chk.Scalar(tst, "omega tracks tsr", 1e-12, rc.Omega[0], om0)
	}

	// representative power-curve deflection point
	uhub, omega, pitch := SetupPCDeflection(c, 11.5, 63.0, 0.7)
	chk.Scalar(tst, "pc defl uhub", 1e-15, uhub, 8.05)
	chk.Scalar(tst, "pc defl omega", 1e-12, omega, c.Tsr*8.05/63.0*rs2rpm)
	chk.Scalar(tst, "pc defl pitch", 1e-15, pitch, c.Pitch)

	// tsr tracking saturates at the upper rotation bound
	_, omega, _ = SetupPCDeflection(c, 30.0, 63.0, 0.7)
	chk.Scalar(tst, "pc defl omega capped", 1e-15, omega, c.MaxOmega)
}

func Test_drivetrain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("drivetrain01. loss models")

	for _, name := range []string{"geared", "single_stage", "multi_drive", "pm_direct_drive"} {
		dt, err := ParseDrivetrain(name)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		if dt.String() != name {
			tst.Errorf("round trip failed for %q\n", name)
			return
		}
		paero := []float64{0, 1e6, 3e6, 5e6, 6e6}
		pelec := dt.ApplyLosses(paero, 5e6)
		for i := range pelec {
			if pelec[i] > paero[i] {
				tst.Errorf("%s: output %g exceeds input %g\n", name, pelec[i], paero[i])
				return
			}
			if pelec[i] < 0 {
				tst.Errorf("%s: negative output %g\n", name, pelec[i])
				return
			}
		}
		// efficiency improves toward the rating
		e1 := pelec[1] / paero[1]
		e3 := pelec[3] / paero[3]
		if e3 <= e1 {
			tst.Errorf("%s: efficiency did not improve with load: %g <= %g\n", name, e3, e1)
			return
		}
	}

	if _, err := ParseDrivetrain("steam"); err == nil {
		tst.Errorf("unknown drivetrain did not fail\n")
	}
}

func Test_powercurve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("powercurve01. regulated power curve and rated speed")

	c := testControl()
	rc, err := SetupRunVarSpeed(c, 63.0, 20)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// cubic aerodynamic power crossing the rating inside the range
	n := len(rc.Uhub)
	paero := make([]float64, n)
	thrust := make([]float64, n)
	torque := make([]float64, n)
	for i, u := range rc.Uhub {
		paero[i] = 6e6 * math.Pow(u/11.0, 3.0)
		thrust[i] = 1e5 * u
		torque[i] = paero[i] / (rc.Omega[i]/rs2rpm + 1e-8)
	}

	pc, err := RegulatedPowerCurve(c, rc, paero, thrust, torque, Geared, 63.0, 200)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	// monotone non-decreasing up to the plateau, never above the rating
	for i := 1; i < len(pc.P); i++ {
		if pc.P[i] < pc.P[i-1]-1.0 {
			tst.Errorf("power curve decreased at i=%d: %g -> %g\n", i, pc.P[i-1], pc.P[i])
			return
		}
		if pc.P[i] > c.RatedPower+1e-6 {
			tst.Errorf("power exceeds rating at i=%d: %g\n", i, pc.P[i])
			return
		}
	}
	chk.Scalar(tst, "P(Vout)", 1e-6, pc.P[len(pc.P)-1], c.RatedPower)

	if pc.Rated.V <= c.Vin || pc.Rated.V >= c.Vout {
		tst.Errorf("rated speed %g outside (%g,%g)\n", pc.Rated.V, c.Vin, c.Vout)
		return
	}
	io.Pforan("rated V = %v, omega = %v\n", pc.Rated.V, pc.Rated.Omega)
	if pc.Rated.Omega > c.MaxOmega+1e-12 {
		tst.Errorf("rated omega %g exceeds cap\n", pc.Rated.Omega)
		return
	}
	if pc.Rated.T <= 0 || pc.Rated.Q <= 0 {
		tst.Errorf("rated thrust/torque not positive: %g, %g\n", pc.Rated.T, pc.Rated.Q)
	}
}

func Test_disk01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("disk01. actuator disk stand-in")

	d := &SimpleDisk{Radius: 63.0, Rhub: 1.5}
	p, t, q, err := d.Power([]float64{8, 8, 8}, []float64{10, 0, 10}, []float64{0, 0, 89})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	area := math.Pi * 63.0 * 63.0
	chk.Scalar(tst, "power", 1e-9, p[0], 0.5*1.225*area*0.45*512.0)
	chk.Scalar(tst, "thrust", 1e-9, t[0], 0.5*1.225*area*0.80*64.0)
	chk.Scalar(tst, "parked torque", 1e-15, q[1], 0)
	if p[2] >= p[0] {
		tst.Errorf("feathered power %g not below operating power %g\n", p[2], p[0])
		return
	}

	// distributed load integrates back to one third of the thrust
	al, err := d.Distributed(8, 10, 0, 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	sum := 0.0
	for i := 1; i < len(al.R); i++ {
		sum += 0.5 * (al.Px[i] + al.Px[i-1]) * (al.R[i] - al.R[i-1])
	}
	chk.Scalar(tst, "thrust share", 1e-9*t[0], sum, t[0]/3.0)
	chk.Scalar(tst, "omega passthrough", 1e-15, al.Omega, 10.0)

	// disk geometry
	radius, diameter := DiskGeometry(63.0, 0, 0)
	chk.Scalar(tst, "radius", 1e-15, radius, 63.0)
	chk.Scalar(tst, "diameter", 1e-15, diameter, 126.0)
}

func Test_aep01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("aep01. annual energy production")

	// constant power plant: aep = loss * P * (CDF(vout)-CDF(vin)) * 8760 / 1e3
	v := utl.LinSpace(3.0, 25.0, 50)
	p := make([]float64, len(v))
	for i := range p {
		p[i] = 5e6
	}
	pc := &PowerCurve{V: v, P: p}

	vbar := 0.2 * 50.0 // class I mean
	aep, err := AEP(pc, vbar, 0.95)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	ray := func(x float64) float64 {
		return 1.0 - math.Exp(-math.Pi/4.0*math.Pow(x/vbar, 2.0))
	}
	ana := 0.95 * 5e6 * (ray(25.0) - ray(3.0)) / 1e3 * 8760.0
	chk.Scalar(tst, "aep", 1e-6*ana, aep, ana)

	// more wind, more energy
	aep2, err := AEP(pc, vbar*1.2, 0.95)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if aep2 <= aep {
		tst.Errorf("aep did not grow with mean wind: %g <= %g\n", aep2, aep)
		return
	}

	if _, err := AEP(pc, -1, 0.95); err == nil {
		tst.Errorf("negative mean wind did not fail\n")
	}

	// shear correction
	vh := HubWindSpeed(10.0, 50.0, 90.0, 0.2)
	chk.Scalar(tst, "shear", 1e-14, vh, 10.0*math.Pow(90.0/50.0, 0.2))
	chk.Scalar(tst, "no ref height", 1e-15, HubWindSpeed(10.0, 0, 90.0, 0.2), 10.0)
}
