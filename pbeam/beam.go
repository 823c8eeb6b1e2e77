// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pbeam solves the blade as a chain of Euler-Bernoulli beam elements:
// static deflections under distributed loads, mass and inertia rollups,
// natural frequencies of the straight and of the curved/twisted axis, and the
// principal-axis strain and fatigue evaluation at probe points.
//
// Each node carries six degrees of freedom
//
//	ux, dux/dz, uy, duy/dz, uz, thetaz
//
// with z along the blade axis. EIxx is the stiffness resisting deflection in
// x and EIyy the one resisting deflection in y.
package pbeam

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// ndof is the number of degrees of freedom per node
const ndof = 6

// SectionData holds the per-station beam properties
type SectionData struct {
	Z    []float64 // [n] axial coordinate of each station [m]
	EA   []float64 // [n] axial stiffness [N]
	EIxx []float64 // [n] bending stiffness for x deflection [N.m2]
	EIyy []float64 // [n] bending stiffness for y deflection [N.m2]
	GJ   []float64 // [n] torsional stiffness [N.m2]
	RhoA []float64 // [n] mass per length [kg/m]
	RhoJ []float64 // [n] polar mass moment per length [kg.m]
}

// Check validates lengths, ordering and positivity
func (o *SectionData) Check() error {
	n := len(o.Z)
	if n < 2 {
		return chk.Err("beam needs at least two stations; got %d", n)
	}
	for name, a := range map[string][]float64{
		"EA": o.EA, "EIxx": o.EIxx, "EIyy": o.EIyy, "GJ": o.GJ, "rhoA": o.RhoA, "rhoJ": o.RhoJ,
	} {
		if len(a) != n {
			return chk.Err("array %q has length %d; expected %d", name, len(a), n)
		}
		for i, v := range a {
			if v <= 0 {
				return chk.Err("array %q must be positive; station %d = %g", name, i, v)
			}
		}
	}
	for i := 1; i < n; i++ {
		if o.Z[i] <= o.Z[i-1] {
			return chk.Err("z is not strictly increasing at station %d", i)
		}
	}
	return nil
}

// Loads holds one distributed load set, one value per station
type Loads struct {
	Px []float64 // [n] load per length in x [N/m]
	Py []float64 // [n] load per length in y [N/m]
	Pz []float64 // [n] load per length in z [N/m]
}

// TipData holds an optional lumped mass at the free tip
type TipData struct {
	M             float64 // mass [kg]
	Ixx, Iyy, Izz float64 // rotary inertia about the tip node [kg.m2]
}

// BaseData describes the support at the root. Rigid clamps all six degrees
// of freedom; otherwise the six spring constants are added at the root node
type BaseData struct {
	Rigid bool
	K     [ndof]float64 // springs for ux, dux/dz, uy, duy/dz, uz, thetaz
}

// Beam is the assembled finite element model
type Beam struct {
	sec  *SectionData
	tip  TipData
	base BaseData
	n    int // number of nodes

	K [][]float64 // [6n][6n] stiffness
	M [][]float64 // [6n][6n] consistent mass
}

// NewBeam assembles stiffness and mass for the given sections
func NewBeam(sec *SectionData, tip TipData, base BaseData) (o *Beam, err error) {

	if err = sec.Check(); err != nil {
		return
	}
	n := len(sec.Z)
	o = &Beam{sec: sec, tip: tip, base: base, n: n}
	nt := ndof * n
	o.K = la.MatAlloc(nt, nt)
	o.M = la.MatAlloc(nt, nt)

	for e := 0; e < n-1; e++ {
		l := sec.Z[e+1] - sec.Z[e]
		ea := 0.5 * (sec.EA[e] + sec.EA[e+1])
		eix := 0.5 * (sec.EIxx[e] + sec.EIxx[e+1])
		eiy := 0.5 * (sec.EIyy[e] + sec.EIyy[e+1])
		gj := 0.5 * (sec.GJ[e] + sec.GJ[e+1])
		ra := 0.5 * (sec.RhoA[e] + sec.RhoA[e+1])
		rj := 0.5 * (sec.RhoJ[e] + sec.RhoJ[e+1])

		a := ndof * e
		b := ndof * (e + 1)

		// bending in the two planes: hermite dofs (u_i, u'_i, u_j, u'_j)
		addBending(o.K, o.M, eix, ra, l, []int{a + 0, a + 1, b + 0, b + 1})
		addBending(o.K, o.M, eiy, ra, l, []int{a + 2, a + 3, b + 2, b + 3})
		addRod(o.K, o.M, ea/l, ra*l/6.0, []int{a + 4, b + 4})
		addRod(o.K, o.M, gj/l, rj*l/6.0, []int{a + 5, b + 5})
	}

	// lumped tip mass
	t := ndof * (n - 1)
	o.M[t+0][t+0] += tip.M
	o.M[t+2][t+2] += tip.M
	o.M[t+4][t+4] += tip.M
	o.M[t+1][t+1] += tip.Iyy
	o.M[t+3][t+3] += tip.Ixx
	o.M[t+5][t+5] += tip.Izz

	if !base.Rigid {
		for i := 0; i < ndof; i++ {
			o.K[i][i] += base.K[i]
		}
	}
	return
}

// addBending accumulates the hermite stiffness and consistent mass of one
// bending plane into the global matrices at the four dof indices
func addBending(K, M [][]float64, ei, rhoA, l float64, ix []int) {
	l2 := l * l
	kl := [4][4]float64{
		{12, 6 * l, -12, 6 * l},
		{6 * l, 4 * l2, -6 * l, 2 * l2},
		{-12, -6 * l, 12, -6 * l},
		{6 * l, 2 * l2, -6 * l, 4 * l2},
	}
	ml := [4][4]float64{
		{156, 22 * l, 54, -13 * l},
		{22 * l, 4 * l2, 13 * l, -3 * l2},
		{54, 13 * l, 156, -22 * l},
		{-13 * l, -3 * l2, -22 * l, 4 * l2},
	}
	kf := ei / (l2 * l)
	mf := rhoA * l / 420.0
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			K[ix[i]][ix[j]] += kf * kl[i][j]
			M[ix[i]][ix[j]] += mf * ml[i][j]
		}
	}
}

// addRod accumulates a two-dof axial or torsional element. k is the full
// stiffness EA/l (or GJ/l) and m the mass factor rhoA*l/6 (or rhoJ*l/6)
func addRod(K, M [][]float64, k, m float64, ix []int) {
	K[ix[0]][ix[0]] += k
	K[ix[1]][ix[1]] += k
	K[ix[0]][ix[1]] -= k
	K[ix[1]][ix[0]] -= k
	M[ix[0]][ix[0]] += 2 * m
	M[ix[1]][ix[1]] += 2 * m
	M[ix[0]][ix[1]] += m
	M[ix[1]][ix[0]] += m
}

// free returns the indices of the unconstrained degrees of freedom
func (o *Beam) free() []int {
	if !o.base.Rigid {
		ix := make([]int, ndof*o.n)
		for i := range ix {
			ix[i] = i
		}
		return ix
	}
	ix := make([]int, 0, ndof*(o.n-1))
	for i := ndof; i < ndof*o.n; i++ {
		ix = append(ix, i)
	}
	return ix
}

// consistent nodal forces of a linearly varying distributed load p1..p2
func hermiteLoad(p1, p2, l float64) (f1, m1, f2, m2 float64) {
	f1 = l * (21*p1 + 9*p2) / 60.0
	m1 = l * l * (3*p1 + 2*p2) / 60.0
	f2 = l * (9*p1 + 21*p2) / 60.0
	m2 = -l * l * (2*p1 + 3*p2) / 60.0
	return
}

// Displacement solves the static problem under one distributed load set and
// returns the six nodal fields
func (o *Beam) Displacement(ld *Loads) (dx, dy, dz, dthx, dthy, dthz []float64, err error) {

	n := o.n
	if len(ld.Px) != n || len(ld.Py) != n || len(ld.Pz) != n {
		err = chk.Err("load arrays (%d,%d,%d) do not match %d stations", len(ld.Px), len(ld.Py), len(ld.Pz), n)
		return
	}

	F := make([]float64, ndof*n)
	for e := 0; e < n-1; e++ {
		l := o.sec.Z[e+1] - o.sec.Z[e]
		a, b := ndof*e, ndof*(e+1)

		f1, m1, f2, m2 := hermiteLoad(ld.Px[e], ld.Px[e+1], l)
		F[a+0] += f1
		F[a+1] += m1
		F[b+0] += f2
		F[b+1] += m2

		f1, m1, f2, m2 = hermiteLoad(ld.Py[e], ld.Py[e+1], l)
		F[a+2] += f1
		F[a+3] += m1
		F[b+2] += f2
		F[b+3] += m2

		F[a+4] += l * (2*ld.Pz[e] + ld.Pz[e+1]) / 6.0
		F[b+4] += l * (ld.Pz[e] + 2*ld.Pz[e+1]) / 6.0
	}

	ix := o.free()
	nf := len(ix)
	Kff := la.MatAlloc(nf, nf)
	Ff := make([]float64, nf)
	for i, I := range ix {
		Ff[i] = F[I]
		for j, J := range ix {
			Kff[i][j] = o.K[I][J]
		}
	}
	u := make([]float64, nf)
	if err = la.DenseSolve(u, Kff, Ff, false); err != nil {
		err = chk.Err("static solve failed: %v", err)
		return
	}

	full := make([]float64, ndof*n)
	for i, I := range ix {
		full[I] = u[i]
	}
	dx = make([]float64, n)
	dy = make([]float64, n)
	dz = make([]float64, n)
	dthx = make([]float64, n)
	dthy = make([]float64, n)
	dthz = make([]float64, n)
	for i := 0; i < n; i++ {
		dx[i] = full[ndof*i+0]
		dthy[i] = full[ndof*i+1]
		dy[i] = full[ndof*i+2]
		dthx[i] = full[ndof*i+3]
		dz[i] = full[ndof*i+4]
		dthz[i] = full[ndof*i+5]
	}
	return
}

// Mass integrates the mass per length over the axis and adds the tip mass
func (o *Beam) Mass() (m float64) {
	for i := 1; i < o.n; i++ {
		m += 0.5 * (o.sec.RhoA[i] + o.sec.RhoA[i-1]) * (o.sec.Z[i] - o.sec.Z[i-1])
	}
	return m + o.tip.M
}

// OutOfPlaneMomentOfInertia integrates rhoA z^2 along the axis
func (o *Beam) OutOfPlaneMomentOfInertia() (moi float64) {
	z := o.sec.Z
	for i := 1; i < o.n; i++ {
		f0 := o.sec.RhoA[i-1] * z[i-1] * z[i-1]
		f1 := o.sec.RhoA[i] * z[i] * z[i]
		moi += 0.5 * (f0 + f1) * (z[i] - z[i-1])
	}
	ztip := z[o.n-1]
	return moi + o.tip.M*ztip*ztip
}

// NaturalFrequencies returns the first nf frequencies in Hz, ascending
func (o *Beam) NaturalFrequencies(nf int) ([]float64, error) {
	ix := o.free()
	return eigenFrequencies(o.K, o.M, ix, nf)
}

// eigenFrequencies solves K phi = w^2 M phi on the free dofs by reducing the
// generalized problem with a Cholesky factor of M and running Jacobi rotations
func eigenFrequencies(K, M [][]float64, ix []int, nf int) ([]float64, error) {

	n := len(ix)
	if nf > n {
		nf = n
	}
	Kf := la.MatAlloc(n, n)
	Mf := la.MatAlloc(n, n)
	for i, I := range ix {
		for j, J := range ix {
			Kf[i][j] = K[I][J]
			Mf[i][j] = M[I][J]
		}
	}

	L, err := cholesky(Mf)
	if err != nil {
		return nil, chk.Err("mass matrix factorisation failed: %v", err)
	}

	// B = inv(L) * K * inv(L)^T, kept symmetric
	W := la.MatAlloc(n, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			s := Kf[i][j]
			for k := 0; k < i; k++ {
				s -= L[i][k] * W[k][j]
			}
			W[i][j] = s / L[i][i]
		}
	}
	B := la.MatAlloc(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s := W[i][j]
			for k := 0; k < j; k++ {
				s -= L[j][k] * B[i][k]
			}
			B[i][j] = s / L[j][j]
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := 0.5 * (B[i][j] + B[j][i])
			B[i][j] = v
			B[j][i] = v
		}
	}

	Q := la.MatAlloc(n, n)
	v := make([]float64, n)
	if _, err := la.Jacobi(Q, v, B); err != nil {
		return nil, chk.Err("eigenvalue iteration failed: %v", err)
	}
	sort.Float64s(v)

	freqs := make([]float64, nf)
	for i := 0; i < nf; i++ {
		if v[i] < 0 {
			v[i] = 0
		}
		freqs[i] = math.Sqrt(v[i]) / (2.0 * math.Pi)
	}
	return freqs, nil
}

// cholesky computes the lower factor of a symmetric positive definite matrix
func cholesky(A [][]float64) ([][]float64, error) {
	n := len(A)
	L := la.MatAlloc(n, n)
	for j := 0; j < n; j++ {
		d := A[j][j]
		for k := 0; k < j; k++ {
			d -= L[j][k] * L[j][k]
		}
		if d <= 0 {
			return nil, chk.Err("matrix is not positive definite at row %d", j)
		}
		L[j][j] = math.Sqrt(d)
		for i := j + 1; i < n; i++ {
			s := A[i][j]
			for k := 0; k < j; k++ {
				s -= L[i][k] * L[j][k]
			}
			L[i][j] = s / L[j][j]
		}
	}
	return L, nil
}
