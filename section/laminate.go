// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Lamina is one group of identical plies within a laminate stack
type Lamina struct {
	NPly  int     `json:"nply"`  // number of plies in the group
	TPly  float64 `json:"tply"`  // thickness of a single ply [m]
	Theta float64 `json:"theta"` // fibre orientation [deg]
	MatID int     `json:"matid"` // index into the material table
}

// Thickness returns the total thickness of the ply group
func (o Lamina) Thickness() float64 { return float64(o.NPly) * o.TPly }

// Laminate is the ordered ply stack of one chordwise sector
type Laminate struct {
	Plies []Lamina `json:"plies"`
}

// Thickness returns the total stack height
func (o *Laminate) Thickness() (t float64) {
	for _, p := range o.Plies {
		t += p.Thickness()
	}
	return
}

// CompositeSection describes one surface (or web) of a cross section: the
// chordwise sector boundaries and the laminate within each sector
type CompositeSection struct {
	Loc       []float64  `json:"loc"`       // [nsec+1] sector boundaries, normalised chord
	Laminates []Laminate `json:"laminates"` // [nsec] laminate per sector
}

// Check validates boundary ordering and sector count
func (o *CompositeSection) Check(name string, nmat int) error {
	if len(o.Loc) != len(o.Laminates)+1 {
		return chk.Err("section %q: %d boundaries do not enclose %d sectors", name, len(o.Loc), len(o.Laminates))
	}
	for i := 1; i < len(o.Loc); i++ {
		if o.Loc[i] <= o.Loc[i-1] {
			return chk.Err("section %q: boundaries are not increasing at %d", name, i)
		}
	}
	for i, lam := range o.Laminates {
		for j, p := range lam.Plies {
			if p.NPly <= 0 || p.TPly <= 0 {
				return chk.Err("section %q: sector %d ply group %d has non-positive count or thickness", name, i, j)
			}
			if p.MatID < 0 || p.MatID >= nmat {
				return chk.Err("section %q: sector %d ply group %d references unknown material %d", name, i, j, p.MatID)
			}
		}
	}
	return nil
}

// Copy returns a deep copy so that a resize never touches the reference
func (o *CompositeSection) Copy() *CompositeSection {
	c := &CompositeSection{
		Loc:       append([]float64(nil), o.Loc...),
		Laminates: make([]Laminate, len(o.Laminates)),
	}
	for i, lam := range o.Laminates {
		c.Laminates[i].Plies = append([]Lamina(nil), lam.Plies...)
	}
	return c
}

// qbar computes the rotated reduced stiffness matrix of one ply
func qbar(m *Orthotropic, thetaDeg float64) (Q [3][3]float64) {
	nu21 := m.Nu12 * m.E2 / m.E1
	den := 1.0 - m.Nu12*nu21
	q11 := m.E1 / den
	q22 := m.E2 / den
	q12 := m.Nu12 * m.E2 / den
	q66 := m.G12

	a := thetaDeg * math.Pi / 180.0
	c, s := math.Cos(a), math.Sin(a)
	c2, s2 := c*c, s*s
	c4, s4 := c2*c2, s2*s2

	Q[0][0] = q11*c4 + 2*(q12+2*q66)*s2*c2 + q22*s4
	Q[1][1] = q11*s4 + 2*(q12+2*q66)*s2*c2 + q22*c4
	Q[0][1] = (q11+q22-4*q66)*s2*c2 + q12*(s4+c4)
	Q[1][0] = Q[0][1]
	Q[2][2] = (q11+q22-2*q12-2*q66)*s2*c2 + q66*(s4+c4)
	Q[0][2] = (q11-q12-2*q66)*s*c2*c + (q12-q22+2*q66)*s2*s*c
	Q[2][0] = Q[0][2]
	Q[1][2] = (q11-q12-2*q66)*s2*s*c + (q12-q22+2*q66)*s*c2*c
	Q[2][1] = Q[1][2]
	return
}

// ABD computes the classical lamination theory stiffness matrices of the
// laminate in sector isec, with the stack placed symmetrically about its
// mid-plane. Returns A, B, D and the total stack height
func (o *CompositeSection) ABD(isec int, mats []*Orthotropic) (A, B, D [3][3]float64, h float64) {
	lam := o.Laminates[isec]
	h = lam.Thickness()
	z := -h / 2.0
	for _, p := range lam.Plies {
		zt := z + p.Thickness()
		Q := qbar(mats[p.MatID], p.Theta)
		d1 := zt - z
		d2 := 0.5 * (zt*zt - z*z)
		d3 := (zt*zt*zt - z*z*z) / 3.0
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				A[i][j] += Q[i][j] * d1
				B[i][j] += Q[i][j] * d2
				D[i][j] += Q[i][j] * d3
			}
		}
		z = zt
	}
	return
}

// EffectiveEAxial computes the smeared axial modulus of the sector laminate
// from the inverse of the full extension-bending stiffness matrix
func (o *CompositeSection) EffectiveEAxial(isec int, mats []*Orthotropic) (float64, error) {
	A, B, D, h := o.ABD(isec, mats)
	S := la.MatAlloc(6, 6)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			S[i][j] = A[i][j]
			S[i][j+3] = B[i][j]
			S[i+3][j] = B[i][j]
			S[i+3][j+3] = D[i][j]
		}
	}
	// axial strain under a unit axial stress resultant
	x := make([]float64, 6)
	b := make([]float64, 6)
	b[0] = 1.0
	err := la.DenseSolve(x, S, b, false)
	if err != nil {
		return 0, chk.Err("laminate stiffness matrix is singular: %v", err)
	}
	if x[0] <= 0 {
		return 0, chk.Err("laminate has non-positive axial compliance")
	}
	return 1.0 / (h * x[0]), nil
}

// EffectiveGShear returns the smeared in-plane shear modulus A66/h
func (o *CompositeSection) EffectiveGShear(isec int, mats []*Orthotropic) float64 {
	A, _, _, h := o.ABD(isec, mats)
	return A[2][2] / h
}

// EffectiveRho returns the thickness-weighted density of the sector laminate
func (o *CompositeSection) EffectiveRho(isec int, mats []*Orthotropic) float64 {
	lam := o.Laminates[isec]
	h := lam.Thickness()
	if h == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range lam.Plies {
		sum += mats[p.MatID].Rho * p.Thickness()
	}
	return sum / h
}

// PanelBucklingStrain computes the critical compressive strain of the sector
// panel from the empirical plate buckling load
//
//	Nxx = 2 (pi/L)^2 (sqrt(D11 D22) + D12 + 2 D66)
//
// with L the chordwise sector length given the local chord
func (o *CompositeSection) PanelBucklingStrain(isec int, chord float64, mats []*Orthotropic) (float64, error) {
	L := chord * (o.Loc[isec+1] - o.Loc[isec])
	if L <= 0 {
		return 0, chk.Err("sector %d has non-positive chordwise length", isec)
	}
	_, _, D, h := o.ABD(isec, mats)
	E, err := o.EffectiveEAxial(isec, mats)
	if err != nil {
		return 0, err
	}
	d1 := D[0][0]
	d2 := D[1][1]
	d3 := D[0][1] + 2.0*D[2][2]
	pl := math.Pi / L
	nxx := 2.0 * pl * pl * (math.Sqrt(d1*d2) + d3)
	return -nxx / h / E, nil
}
