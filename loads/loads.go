// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loads assembles the distributed loading of the blade: aerodynamic
// loads interpolated from the aerodynamic grid, gravity rotated down the
// frame chain, and the centrifugal contribution of the spinning rotor; plus
// the mapping of damage-equivalent fatigue moments onto the structural grid.
package loads

import (
	"math"

	"github.com/Ben-Mertz/RotorSE/csys"
	"github.com/Ben-Mertz/RotorSE/geom"
	"github.com/cpmech/gosl/chk"
)

// gravity is the standard acceleration used for the weight loads
const gravity = 9.81

// rpm2rs converts rotation speed from rpm to rad/s
const rpm2rs = 2.0 * math.Pi / 60.0

// AeroLoads holds one distributed aerodynamic load set in the blade-aligned
// frame, defined on its own radial grid, together with the operating point
// that produced it
type AeroLoads struct {
	R       []float64 // [na] dimensional radius [m]
	Px      []float64 // [na] load per length, blade x [N/m]
	Py      []float64 // [na] load per length, blade y [N/m]
	Pz      []float64 // [na] load per length, blade z [N/m]
	Omega   float64   // rotation speed [rpm]
	Pitch   float64   // pitch angle [deg]
	Azimuth float64   // azimuth angle [deg]
}

// TotalInput collects the structural-grid quantities needed to assemble the
// combined load
type TotalInput struct {
	RStr      []float64 // [n] structural stations [m]
	ThetaStr  []float64 // [n] twist [deg]
	TotalCone []float64 // [n] total cone angle [deg]
	ZAz       []float64 // [n] azimuthal-frame z of each station [m]
	RhoA      []float64 // [n] mass per length [kg/m]
	Tilt      float64   // shaft tilt [deg]
}

// Total interpolates the aerodynamic loads onto the structural grid, adds
// weight and centrifugal loads and rotates the sum into the airfoil frame
// using twist plus pitch. Returns the three distributed components per
// structural station
func Total(a *AeroLoads, in *TotalInput) (px, py, pz []float64, err error) {

	n := len(in.RStr)
	for name, l := range map[string]int{
		"theta_str": len(in.ThetaStr), "totalCone": len(in.TotalCone),
		"z_az": len(in.ZAz), "rhoA": len(in.RhoA),
	} {
		if l != n {
			return nil, nil, nil, chk.Err("array %q has length %d; expected %d stations", name, l, n)
		}
	}

	// aerodynamic loads on the structural grid
	pax, err := geom.Akima(a.R, a.Px, in.RStr)
	if err != nil {
		return nil, nil, nil, err
	}
	pay, err := geom.Akima(a.R, a.Py, in.RStr)
	if err != nil {
		return nil, nil, nil, err
	}
	paz, err := geom.Akima(a.R, a.Pz, in.RStr)
	if err != nil {
		return nil, nil, nil, err
	}

	omega := a.Omega * rpm2rs
	px = make([]float64, n)
	py = make([]float64, n)
	pz = make([]float64, n)
	for i := 0; i < n; i++ {
		weight := csys.Vec{X: 0, Y: 0, Z: -in.RhoA[i] * gravity}.
			YawToHub(in.Tilt).HubToAzimuth(a.Azimuth).AzimuthToBlade(in.TotalCone[i])
		centri := csys.Vec{X: 0, Y: 0, Z: in.RhoA[i] * omega * omega * in.ZAz[i]}.
			AzimuthToBlade(in.TotalCone[i])

		sum := csys.Vec{X: pax[i], Y: pay[i], Z: paz[i]}.Add(weight).Add(centri)
		af := sum.BladeToAirfoil(in.ThetaStr[i] + a.Pitch)
		px[i] = af.X
		py[i] = af.Y
		pz[i] = af.Z
	}
	return
}

// Damage maps damage-equivalent moment envelopes given on a coarse
// nondimensional grid onto the structural grid and rotates them from the
// blade to the airfoil frame using the twist alone
func Damage(rstar, mxb, myb, rstr, thetaStr []float64) (mxa, mya []float64, err error) {

	n := len(rstr)
	if len(thetaStr) != n {
		return nil, nil, chk.Err("theta_str length %d does not match %d stations", len(thetaStr), n)
	}
	if len(rstar) != len(mxb) || len(rstar) != len(myb) {
		return nil, nil, chk.Err("damage envelope arrays (%d,%d,%d) do not share a length", len(rstar), len(mxb), len(myb))
	}

	// normalised arc fraction of the structural stations
	span := rstr[n-1] - rstr[0]
	if span <= 0 {
		return nil, nil, chk.Err("structural grid spans zero length")
	}
	rstarStr := make([]float64, n)
	for i, r := range rstr {
		rstarStr[i] = (r - rstr[0]) / span
	}

	mxbs, err := geom.Akima(rstar, mxb, rstarStr)
	if err != nil {
		return nil, nil, err
	}
	mybs, err := geom.Akima(rstar, myb, rstarStr)
	if err != nil {
		return nil, nil, err
	}

	mxa = make([]float64, n)
	mya = make([]float64, n)
	for i := 0; i < n; i++ {
		m := csys.Vec{X: mxbs[i], Y: mybs[i], Z: 0}.BladeToAirfoil(thetaStr[i])
		mxa[i] = m.X
		mya[i] = m.Y
	}
	return
}
