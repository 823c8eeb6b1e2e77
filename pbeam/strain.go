// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbeam

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// InternalForces integrates one distributed load set from the free tip down
// to every station: shear forces, axial force and bending moments
type InternalForces struct {
	Vx, Vy []float64 // [n] shear forces [N]
	Fz     []float64 // [n] axial force [N]
	Mx, My []float64 // [n] bending moments from the y and x loads [N.m]
	Tz     []float64 // [n] torsion, zero for purely translational loads [N.m]
}

// ShearAndBending computes the internal forces of the cantilever under one
// distributed load set by trapezoidal integration from the tip
func (o *Beam) ShearAndBending(ld *Loads) (f *InternalForces, err error) {

	n := o.n
	if len(ld.Px) != n || len(ld.Py) != n || len(ld.Pz) != n {
		return nil, chk.Err("load arrays (%d,%d,%d) do not match %d stations", len(ld.Px), len(ld.Py), len(ld.Pz), n)
	}
	z := o.sec.Z
	f = &InternalForces{
		Vx: make([]float64, n), Vy: make([]float64, n), Fz: make([]float64, n),
		Mx: make([]float64, n), My: make([]float64, n), Tz: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		for j := n - 1; j > i; j-- {
			dz := z[j] - z[j-1]
			f.Vx[i] += 0.5 * (ld.Px[j] + ld.Px[j-1]) * dz
			f.Vy[i] += 0.5 * (ld.Py[j] + ld.Py[j-1]) * dz
			f.Fz[i] += 0.5 * (ld.Pz[j] + ld.Pz[j-1]) * dz
			// lever arms of the trapezoid ends about station i
			f.Mx[i] += 0.5 * (ld.Py[j]*(z[j]-z[i]) + ld.Py[j-1]*(z[j-1]-z[i])) * dz
			f.My[i] += 0.5 * (ld.Px[j]*(z[j]-z[i]) + ld.Px[j-1]*(z[j-1]-z[i])) * dz
		}
	}
	return
}

// PrincipalCS holds the section constants rotated to the principal bending
// axes, one entry per station
type PrincipalCS struct {
	EI11, EI22 []float64 // principal bending stiffnesses [N.m2]
	EA         []float64 // axial stiffness [N]
	Ca, Sa     []float64 // cosine and sine of the principal axis angle
}

// NewPrincipalCS rotates the airfoil-frame section constants to principal
// axes. The inputs follow the airfoil convention (EIxx edgewise, EIyy
// flapwise, elastic centre offsets x_ec/y_ec); the routine swaps into the
// solver frame, translates the stiffnesses to the elastic centre and then
// diagonalises the bending block with alpha = atan2(2 EIxy, EIyy-EIxx)/2
func NewPrincipalCS(ea, eixx, eiyy, eixy, xec, yec []float64) (o *PrincipalCS, err error) {

	n := len(ea)
	if len(eixx) != n || len(eiyy) != n || len(eixy) != n || len(xec) != n || len(yec) != n {
		return nil, chk.Err("principal axes: input arrays do not share length %d", n)
	}
	o = &PrincipalCS{
		EI11: make([]float64, n), EI22: make([]float64, n),
		EA: make([]float64, n), Ca: make([]float64, n), Sa: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		// swap into the solver frame
		exx := eiyy[i]
		eyy := eixx[i]
		x := yec[i]
		y := xec[i]

		// translate to the elastic centre
		exx -= y * y * ea[i]
		eyy -= x * x * ea[i]
		exy := eixy[i] - x*y*ea[i]

		alpha := 0.5 * math.Atan2(2.0*exy, eyy-exx)
		ta := math.Tan(alpha)
		o.EI11[i] = exx - exy*ta
		o.EI22[i] = eyy + exy*ta
		o.EA[i] = ea[i]
		o.Ca[i] = math.Cos(alpha)
		o.Sa[i] = math.Sin(alpha)
	}
	return
}

// Strain evaluates the axial strain at the upper and lower probe points under
// the given internal forces. Probe coordinates are relative to the elastic
// centre in the airfoil convention
func (o *PrincipalCS) Strain(f *InternalForces, xu, yu, xl, yl []float64) (strainU, strainL []float64) {

	n := len(o.EA)
	strainU = make([]float64, n)
	strainL = make([]float64, n)
	for i := 0; i < n; i++ {
		// profile axes: swap moments and probe coordinates alike
		mx := f.My[i]
		my := f.Mx[i]
		m1 := mx*o.Ca[i] + my*o.Sa[i]
		m2 := -mx*o.Sa[i] + my*o.Ca[i]

		eval := func(xa, ya float64) float64 {
			xp, yp := ya, xa
			x := xp*o.Ca[i] + yp*o.Sa[i]
			y := -xp*o.Sa[i] + yp*o.Ca[i]
			return -(m1/o.EI11[i]*y - m2/o.EI22[i]*x + f.Fz[i]/o.EA[i])
		}
		strainU[i] = eval(xu[i], yu[i])
		strainL[i] = eval(xl[i], yl[i])
	}
	return
}

// FatigueParams collects the material and safety constants of the damage
// evaluation
type FatigueParams struct {
	EpsMax float64 // ultimate strain of the laminate
	Eta    float64 // total safety factor
	M      float64 // S-N curve slope exponent
	N      float64 // number of cycles over the design life
}

// LogDamage is the log-domain S-N damage measure
//
//	damage = ln N - m (ln eps_max - ln eta - ln |strain|)
//
// negative values mean the probe survives the design life
func LogDamage(strain float64, p FatigueParams) float64 {
	return math.Log(p.N) - p.M*(math.Log(p.EpsMax)-math.Log(p.Eta)-math.Log(math.Abs(strain)))
}

// Damage evaluates the fatigue damage at the probe points from
// damage-equivalent moments in the airfoil frame (no axial contribution)
func (o *PrincipalCS) Damage(mxa, mya, xu, yu, xl, yl []float64, p FatigueParams) (damU, damL []float64, err error) {

	n := len(o.EA)
	if len(mxa) != n || len(mya) != n {
		return nil, nil, chk.Err("damage moments (%d,%d) do not match %d stations", len(mxa), len(mya), n)
	}
	if p.EpsMax <= 0 || p.Eta <= 0 || p.N <= 1 {
		return nil, nil, chk.Err("fatigue parameters must satisfy eps_max>0, eta>0, N>1")
	}
	damU = make([]float64, n)
	damL = make([]float64, n)
	for i := 0; i < n; i++ {
		mx := mya[i]
		my := mxa[i]
		m1 := mx*o.Ca[i] + my*o.Sa[i]
		m2 := -mx*o.Sa[i] + my*o.Ca[i]

		eval := func(xa, ya float64) float64 {
			xp, yp := ya, xa
			x := xp*o.Ca[i] + yp*o.Sa[i]
			y := -xp*o.Sa[i] + yp*o.Ca[i]
			return -(m1/o.EI11[i]*y - m2/o.EI22[i]*x)
		}
		damU[i] = LogDamage(eval(xu[i], yu[i]), p)
		damL[i] = LogDamage(eval(xl[i], yl[i]), p)
	}
	return
}
