// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rotor

import (
	"math"

	"github.com/Ben-Mertz/RotorSE/csys"
	"github.com/Ben-Mertz/RotorSE/geom"
	"github.com/Ben-Mertz/RotorSE/loads"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"
)

// TipDeflectionInput collects the tip state and angles of the deflection case
type TipDeflectionInput struct {
	Dx, Dy, Dz    float64 // tip displacement, airfoil frame [m]
	Theta         float64 // twist at the tip [deg]
	Pitch         float64 // pitch of the load case [deg]
	TotalConeTip  float64 // total cone angle at the tip [deg]
	Azimuth       float64 // azimuth of the load case [deg]
	Tilt          float64 // shaft tilt [deg]
	DynamicFactor float64 // amplification over the static deflection
}

// TipDeflection rotates the tip displacement into the yaw-aligned frame and
// returns the amplified component toward the tower
func TipDeflection(in *TipDeflectionInput) float64 {
	v := csys.Vec{X: in.Dx, Y: in.Dy, Z: in.Dz}.
		AirfoilToBlade(in.Theta + in.Pitch).
		BladeToAzimuth(in.TotalConeTip).
		AzimuthToHub(in.Azimuth).
		HubToYaw(in.Tilt)
	return in.DynamicFactor * v.X
}

// RootMoment interpolates the aerodynamic loads onto the structural grid
// with a piecewise linear rule, rotates them into the azimuthal frame,
// crosses with the station position and integrates over arc length. Returns
// the moment magnitude and its three components [N.m]
func RootMoment(a *loads.AeroLoads, cv *geom.Curvature, rstr []float64) (mag float64, m csys.Vec, err error) {

	n := len(rstr)
	if len(cv.TotalCone) != n || len(cv.S) != n {
		return 0, m, chk.Err("curvature arrays have %d stations; expected %d", len(cv.TotalCone), n)
	}

	var px, py, pz interp.PiecewiseLinear
	if err = px.Fit(a.R, a.Px); err != nil {
		return 0, m, chk.Err("load interpolation failed: %v", err)
	}
	if err = py.Fit(a.R, a.Py); err != nil {
		return 0, m, chk.Err("load interpolation failed: %v", err)
	}
	if err = pz.Fit(a.R, a.Pz); err != nil {
		return 0, m, chk.Err("load interpolation failed: %v", err)
	}

	// dM = r x P per station, azimuthal frame
	dmx := make([]float64, n)
	dmy := make([]float64, n)
	dmz := make([]float64, n)
	for i := 0; i < n; i++ {
		p := csys.Vec{X: px.Predict(rstr[i]), Y: py.Predict(rstr[i]), Z: pz.Predict(rstr[i])}.
			BladeToAzimuth(cv.TotalCone[i])
		pos := csys.Vec{X: cv.XAz[i], Y: cv.YAz[i], Z: cv.ZAz[i]}
		dm := pos.Cross(p)
		dmx[i] = dm.X
		dmy[i] = dm.Y
		dmz[i] = dm.Z
	}
	m.X = integrate.Trapezoidal(cv.S, dmx)
	m.Y = integrate.Trapezoidal(cv.S, dmy)
	m.Z = integrate.Trapezoidal(cv.S, dmz)
	return m.Norm(), m, nil
}

// RootForce integrates the distributed aerodynamic load over arc length in
// the azimuthal frame, giving the force carried by the blade root [N]
func RootForce(a *loads.AeroLoads, cv *geom.Curvature, rstr []float64) (mag float64, f csys.Vec, err error) {

	n := len(rstr)
	if len(cv.TotalCone) != n || len(cv.S) != n {
		return 0, f, chk.Err("curvature arrays have %d stations; expected %d", len(cv.TotalCone), n)
	}

	var px, py, pz interp.PiecewiseLinear
	if err = px.Fit(a.R, a.Px); err != nil {
		return 0, f, chk.Err("load interpolation failed: %v", err)
	}
	if err = py.Fit(a.R, a.Py); err != nil {
		return 0, f, chk.Err("load interpolation failed: %v", err)
	}
	if err = pz.Fit(a.R, a.Pz); err != nil {
		return 0, f, chk.Err("load interpolation failed: %v", err)
	}

	fx := make([]float64, n)
	fy := make([]float64, n)
	fz := make([]float64, n)
	for i := 0; i < n; i++ {
		p := csys.Vec{X: px.Predict(rstr[i]), Y: py.Predict(rstr[i]), Z: pz.Predict(rstr[i])}.
			BladeToAzimuth(cv.TotalCone[i])
		fx[i] = p.X
		fy[i] = p.Y
		fz[i] = p.Z
	}
	f.X = integrate.Trapezoidal(cv.S, fx)
	f.Y = integrate.Trapezoidal(cv.S, fy)
	f.Z = integrate.Trapezoidal(cv.S, fz)
	return f.Norm(), f, nil
}

// BladeDeflectionInput holds the deflected state used to close the
// foreshortening loop
type BladeDeflectionInput struct {
	Dx, Dy, Dz   []float64 // [n] displacement, airfoil frame [m]
	Pitch        float64   // pitch of the deflection case [deg]
	ThetaStr     []float64 // [n] twist [deg]
	Rhub         float64   // hub radius [m]
	RStr         []float64 // [n] structural stations [m]
	PrecurveStr  []float64 // [n] undeflected precurve [m]
	BladeLength  float64   // undeflected blade length [m]
	RSubPrecurve []float64 // dimensional radii of the precurve control points [m]
}

// BladeDeflection derives the blade-length correction and the precurve
// control point corrections from the deflected shape. The corrections feed
// back into the geometry spline; the fixed point is reached by re-running
// the whole analysis
func BladeDeflection(in *BladeDeflectionInput) (deltaBladeLength float64, deltaPrecurveSub []float64, err error) {

	n := len(in.RStr)
	for name, l := range map[string]int{
		"dx": len(in.Dx), "dy": len(in.Dy), "dz": len(in.Dz),
		"theta_str": len(in.ThetaStr), "precurve_str": len(in.PrecurveStr),
	} {
		if l != n {
			return 0, nil, chk.Err("array %q has length %d; expected %d stations", name, l, n)
		}
	}

	// deflection-induced precurve, blade frame
	dxT := make([]float64, n)
	for i := 0; i < n; i++ {
		v := csys.Vec{X: in.Dx[i], Y: in.Dy[i], Z: in.Dz[i]}.
			AirfoilToBlade(in.ThetaStr[i] + in.Pitch)
		dxT[i] = in.PrecurveStr[i] + v.X
	}

	// arc lengths of the original and deflected axes, both anchored at the hub
	length0 := in.Rhub
	length := in.Rhub
	for i := 1; i < n; i++ {
		dz := in.RStr[i] - in.RStr[i-1]
		length0 += math.Hypot(dz, in.PrecurveStr[i]-in.PrecurveStr[i-1])
		length += math.Hypot(dz, dxT[i]-dxT[i-1])
	}
	if length <= 0 {
		return 0, nil, chk.Err("deflected blade has non-positive length %g", length)
	}
	shortening := length0 / length
	deltaBladeLength = in.BladeLength * (shortening - 1.0)

	// deflection-induced precurve at the control points
	deltaPrecurveSub = make([]float64, len(in.RSubPrecurve))
	for i, r := range in.RSubPrecurve {
		deltaPrecurveSub[i] = interpLin(in.RStr, dxT, r) - interpLin(in.RStr, in.PrecurveStr, r)
	}
	return
}

// interpLin evaluates a piecewise linear curve, clamping at the ends
func interpLin(x, y []float64, xi float64) float64 {
	n := len(x)
	if xi <= x[0] {
		return y[0]
	}
	if xi >= x[n-1] {
		return y[n-1]
	}
	j := 0
	for j < n-2 && x[j+1] < xi {
		j++
	}
	f := (xi - x[j]) / (x[j+1] - x[j])
	return (1.0-f)*y[j] + f*y[j+1]
}

// MassProperties rolls one blade's mass and out-of-plane moment of inertia
// up to the rotor: total mass of all blades and the moment of inertia vector
// about the hub-aligned axes, rotated into the yaw-aligned frame
func MassProperties(nBlades int, massOneBlade, moiOneBlade, tilt float64) (massAllBlades float64, iAllBlades [6]float64) {
	massAllBlades = float64(nBlades) * massOneBlade
	ixx := float64(nBlades) * moiOneBlade
	iyy := ixx / 2.0 // azimuthal average
	izz := ixx / 2.0
	v := csys.Vec{X: ixx, Y: iyy, Z: izz}.HubToYaw(tilt)
	iAllBlades = [6]float64{v.X, v.Y, v.Z, 0, 0, 0}
	return
}

// ExtremeLoads shares the one-blade thrust measured on the stopped rotor
// over all blades: the tower sees the parked blade plus the remaining blades
// at the survival load of the second evaluation point. Torque is zero on the
// stopped rotor
func ExtremeLoads(t0, t1 float64, nBlades int) (tExtreme, qExtreme float64) {
	n := float64(nBlades)
	tExtreme = (t0 + t1*(n-1.0)) / n
	qExtreme = 0.0
	return
}
