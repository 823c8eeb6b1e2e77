// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbeam

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// CurveInput describes the curved, twisted, spinning blade for the modal
// analysis. Radius, precurve and presweep define the axis geometry; the twist
// orients the section principal directions along the axis
type CurveInput struct {
	OmegaRPM float64   // rotation speed [rpm]
	R        []float64 // [n] dimensional radius [m]
	Theta    []float64 // [n] twist [deg]
	Precurve []float64 // [n] flapwise axis offset [m]
	Presweep []float64 // [n] edgewise axis offset [m]
	EA       []float64 // [n] axial stiffness [N]
	EIxx     []float64 // [n] first bending stiffness [N.m2]
	EIyy     []float64 // [n] second bending stiffness [N.m2]
	GJ       []float64 // [n] torsional stiffness [N.m2]
	RhoA     []float64 // [n] mass per length [kg/m]
	RhoJ     []float64 // [n] polar mass moment per length [kg.m]
}

// CurvedFrequencies computes the first nf natural frequencies [Hz] of the
// clamped rotating blade. Elements follow the curved axis with their local
// triad twisted by the section twist; the rotation speed enters as
// centrifugal stiffening of the bending planes. Spin softening is neglected
func CurvedFrequencies(in *CurveInput, nf int) ([]float64, error) {

	n := len(in.R)
	if n < 2 {
		return nil, chk.Err("curved beam needs at least two stations; got %d", n)
	}
	for name, a := range map[string][]float64{
		"theta": in.Theta, "precurve": in.Precurve, "presweep": in.Presweep,
		"EA": in.EA, "EIxx": in.EIxx, "EIyy": in.EIyy, "GJ": in.GJ,
		"rhoA": in.RhoA, "rhoJ": in.RhoJ,
	} {
		if len(a) != n {
			return nil, chk.Err("array %q has length %d; expected %d", name, len(a), n)
		}
	}

	omega := in.OmegaRPM * 2.0 * math.Pi / 60.0
	nt := ndof * n
	K := la.MatAlloc(nt, nt)
	M := la.MatAlloc(nt, nt)

	// centrifugal tension at each station
	ten := make([]float64, n)
	for i := n - 2; i >= 0; i-- {
		dz := in.R[i+1] - in.R[i]
		f0 := in.RhoA[i] * in.R[i]
		f1 := in.RhoA[i+1] * in.R[i+1]
		ten[i] = ten[i+1] + omega*omega*0.5*(f0+f1)*dz
	}

	Kl := la.MatAlloc(12, 12)
	Ml := la.MatAlloc(12, 12)
	T := la.MatAlloc(12, 12)

	for e := 0; e < n-1; e++ {

		// node positions along the curved axis
		p0 := []float64{in.Precurve[e], in.Presweep[e], in.R[e]}
		p1 := []float64{in.Precurve[e+1], in.Presweep[e+1], in.R[e+1]}
		dx := []float64{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		l := math.Sqrt(utl.Dot3d(dx, dx))
		if l <= 0 {
			return nil, chk.Err("element %d has zero length", e)
		}
		vt := []float64{dx[0] / l, dx[1] / l, dx[2] / l}

		// section direction from a global reference rotated by the twist
		ref := []float64{1, 0, 0}
		if math.Abs(vt[0]) > 0.95 {
			ref = []float64{0, 1, 0}
		}
		d := utl.Dot3d(ref, vt)
		vs := []float64{ref[0] - d*vt[0], ref[1] - d*vt[1], ref[2] - d*vt[2]}
		ls := math.Sqrt(utl.Dot3d(vs, vs))
		for i := 0; i < 3; i++ {
			vs[i] /= ls
		}
		vr := make([]float64, 3)
		utl.Cross3d(vr, vt, vs) // vr := vt cross vs

		// twist the (vs, vr) pair about the axis
		th := 0.5 * (in.Theta[e] + in.Theta[e+1]) * math.Pi / 180.0
		c, s := math.Cos(th), math.Sin(th)
		vsr := make([]float64, 3)
		vrr := make([]float64, 3)
		for i := 0; i < 3; i++ {
			vsr[i] = c*vs[i] + s*vr[i]
			vrr[i] = -s*vs[i] + c*vr[i]
		}

		// element averages
		ea := 0.5 * (in.EA[e] + in.EA[e+1])
		eis := 0.5 * (in.EIxx[e] + in.EIxx[e+1])
		eir := 0.5 * (in.EIyy[e] + in.EIyy[e+1])
		gj := 0.5 * (in.GJ[e] + in.GJ[e+1])
		ra := 0.5 * (in.RhoA[e] + in.RhoA[e+1])
		rj := 0.5 * (in.RhoJ[e] + in.RhoJ[e+1])
		tn := 0.5 * (ten[e] + ten[e+1])

		localBeam(Kl, Ml, ea, eis, eir, gj, ra, rj, tn, l)

		// T holds the local triad on every 3-block of the diagonal
		la.MatFill(T, 0)
		for b := 0; b < 4; b++ {
			for j := 0; j < 3; j++ {
				T[3*b+0][3*b+j] = vt[j]
				T[3*b+1][3*b+j] = vsr[j]
				T[3*b+2][3*b+j] = vrr[j]
			}
		}

		Ke := la.MatAlloc(12, 12)
		Me := la.MatAlloc(12, 12)
		la.MatTrMul3(Ke, 1, T, Kl, T) // Ke := trans(T) * Kl * T
		la.MatTrMul3(Me, 1, T, Ml, T)

		// scatter: local dof order is (u, theta) per node in local axes
		ix := elemDofs(e)
		for i := 0; i < 12; i++ {
			for j := 0; j < 12; j++ {
				K[ix[i]][ix[j]] += Ke[i][j]
				M[ix[i]][ix[j]] += Me[i][j]
			}
		}
	}

	// clamp the root node
	free := make([]int, 0, nt-ndof)
	for i := ndof; i < nt; i++ {
		free = append(free, i)
	}
	return eigenFrequencies(K, M, free, nf)
}

// elemDofs returns the global dof indices of element e in the order
// (u0x, u0y, u0z, r0x, r0y, r0z, u1x, ...)
func elemDofs(e int) (ix [12]int) {
	for k := 0; k < 6; k++ {
		ix[k] = ndof*e + k
		ix[6+k] = ndof*(e+1) + k
	}
	return
}

// localBeam fills the 12x12 local stiffness and consistent mass of a 3D
// element with axis along local x. eis and eir are the bending stiffnesses
// about the two section axes; tn is the axial tension driving the geometric
// stiffening of both bending planes
func localBeam(Kl, Ml [][]float64, ea, eis, eir, gj, ra, rj, tn, l float64) {

	la.MatFill(Kl, 0)
	la.MatFill(Ml, 0)

	// axial along local x: dofs 0, 6
	Kl[0][0] = ea / l
	Kl[6][6] = ea / l
	Kl[0][6] = -ea / l
	Kl[6][0] = -ea / l
	Ml[0][0] = ra * l / 3.0
	Ml[6][6] = ra * l / 3.0
	Ml[0][6] = ra * l / 6.0
	Ml[6][0] = ra * l / 6.0

	// torsion about local x: dofs 3, 9
	Kl[3][3] = gj / l
	Kl[9][9] = gj / l
	Kl[3][9] = -gj / l
	Kl[9][3] = -gj / l
	Ml[3][3] = rj * l / 3.0
	Ml[9][9] = rj * l / 3.0
	Ml[3][9] = rj * l / 6.0
	Ml[9][3] = rj * l / 6.0

	// bending with deflection along local y: dofs (1, 5, 7, 11)
	fillBend(Kl, Ml, eis, ra, tn, l, [4]int{1, 5, 7, 11}, 1.0)
	// bending with deflection along local z couples with -theta_y
	fillBend(Kl, Ml, eir, ra, tn, l, [4]int{2, 4, 8, 10}, -1.0)
}

// fillBend adds the hermite stiffness, consistent mass and geometric
// stiffness of one bending plane. sg flips the rotation coupling sign between
// the two planes
func fillBend(Kl, Ml [][]float64, ei, ra, tn, l float64, ix [4]int, sg float64) {
	l2 := l * l
	kb := [4][4]float64{
		{12, sg * 6 * l, -12, sg * 6 * l},
		{sg * 6 * l, 4 * l2, sg * -6 * l, 2 * l2},
		{-12, sg * -6 * l, 12, sg * -6 * l},
		{sg * 6 * l, 2 * l2, sg * -6 * l, 4 * l2},
	}
	mb := [4][4]float64{
		{156, sg * 22 * l, 54, sg * -13 * l},
		{sg * 22 * l, 4 * l2, sg * 13 * l, -3 * l2},
		{54, sg * 13 * l, 156, sg * -22 * l},
		{sg * -13 * l, -3 * l2, sg * -22 * l, 4 * l2},
	}
	gb := [4][4]float64{
		{36, sg * 3 * l, -36, sg * 3 * l},
		{sg * 3 * l, 4 * l2, sg * -3 * l, -l2},
		{-36, sg * -3 * l, 36, sg * -3 * l},
		{sg * 3 * l, -l2, sg * -3 * l, 4 * l2},
	}
	kf := ei / (l2 * l)
	mf := ra * l / 420.0
	gf := tn / (30.0 * l)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			Kl[ix[i]][ix[j]] += kf*kb[i][j] + gf*gb[i][j]
			Ml[ix[i]][ix[j]] += mf * mb[i][j]
		}
	}
}
