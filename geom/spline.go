// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom turns the sparse design description of the blade (a handful of
// chord, twist, precurve and thickness control points) into dimensional
// distributions on the aerodynamic and structural grids, and computes the
// curvature quantities of the possibly bent blade axis.
package geom

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/interp"
)

// SplineInput collects the design variables and rules defining the outer
// shape of the blade
type SplineInput struct {
	RAeroUnit   []float64 `json:"r_aero_unit"`  // [naero] normalised aerodynamic grid
	RStrUnit    []float64 `json:"r_str_unit"`   // [nstr] normalised structural grid
	IdxCylAero  int       `json:"idx_cyl_aero"` // first non-cylindrical aerodynamic station
	IdxCylStr   int       `json:"idx_cyl_str"`  // first non-cylindrical structural station
	HubFraction float64   `json:"hub_fraction"` // hub radius divided by rotor radius
	BladeLength float64   `json:"blade_length"` // dimensional blade length [m]
	RMaxChord   float64   `json:"r_max_chord"`  // normalised location of maximum chord
	ChordSub    []float64 `json:"chord_sub"`    // chord control points: hub, then max-chord to tip [m]
	ThetaSub    []float64 `json:"theta_sub"`    // twist control points from cylinder end to tip [deg]
	PrecurveSub []float64 `json:"precurve_sub"` // precurve control points (hub value of zero implied) [m]
	SparTsub    []float64 `json:"spar_t_sub"`   // spar cap thickness control points on linspace(0,Rtip) [m]
	TeTsub      []float64 `json:"te_t_sub"`     // trailing edge thickness control points [m]

	// foreshortening feedback, zero on the undeflected pass
	DeltaBladeLength float64   `json:"-"` // blade length correction [m]
	DeltaPrecurveSub []float64 `json:"-"` // precurve control point corrections [m]
}

// BladeShape holds the dimensional distributions on both grids
type BladeShape struct {
	Rhub, Rtip   float64   // hub and tip radii [m]
	RAero        []float64 // [naero] dimensional aerodynamic stations [m]
	RStr         []float64 // [nstr] dimensional structural stations [m]
	MaxChordR    float64   // dimensional max-chord location [m]
	ChordAero    []float64 // [naero] chord [m]
	ChordStr     []float64 // [nstr] chord [m]
	ThetaAero    []float64 // [naero] twist [deg]
	ThetaStr     []float64 // [nstr] twist [deg]
	PrecurveAero []float64 // [naero] precurve [m]
	PrecurveStr  []float64 // [nstr] precurve [m]
	PresweepAero []float64 // [naero] presweep, zero for now [m]
	PresweepStr  []float64 // [nstr] presweep [m]
	PrecurveTip  float64   // precurve at the tip [m]
	PresweepTip  float64   // presweep at the tip [m]
	SparTStr     []float64 // [nstr] spar cap thickness [m]
	TeTStr       []float64 // [nstr] trailing edge thickness [m]
	RSubPrecurve []float64 // dimensional radii of the precurve control points [m]
	HubDiameter  float64   // 2 x Rhub, kept under its historical meaning [m]
}

// Akima fits a shape-preserving piecewise cubic through the control points
// and evaluates it at every station in x
func Akima(xc, yc, x []float64) (y []float64, err error) {
	var sp interp.AkimaSpline
	if err = sp.Fit(xc, yc); err != nil {
		return nil, chk.Err("spline fit failed: %v", err)
	}
	y = make([]float64, len(x))
	for i, xi := range x {
		y[i] = sp.Predict(xi)
	}
	return
}

// Run evaluates every spline and fills a BladeShape
func (o *SplineInput) Run() (s *BladeShape, err error) {

	nc := len(o.ChordSub)
	nt := len(o.ThetaSub)
	if nc < 2 || nt < 2 {
		return nil, chk.Err("chord_sub and theta_sub need at least two control points; got %d and %d", nc, nt)
	}
	if len(o.PrecurveSub) != nc-1 {
		return nil, chk.Err("precurve_sub must have %d control points to share the chord radii; got %d", nc-1, len(o.PrecurveSub))
	}
	if o.DeltaPrecurveSub != nil && len(o.DeltaPrecurveSub) != len(o.PrecurveSub) {
		return nil, chk.Err("delta_precurve_sub length %d does not match precurve_sub length %d", len(o.DeltaPrecurveSub), len(o.PrecurveSub))
	}
	if o.IdxCylAero < 0 || o.IdxCylAero >= len(o.RAeroUnit) {
		return nil, chk.Err("idx_cylinder_aero = %d is outside the aerodynamic grid", o.IdxCylAero)
	}
	if o.IdxCylStr < 0 || o.IdxCylStr >= len(o.RStrUnit) {
		return nil, chk.Err("idx_cylinder_str = %d is outside the structural grid", o.IdxCylStr)
	}

	s = new(BladeShape)
	length := o.BladeLength + o.DeltaBladeLength
	s.Rhub = o.HubFraction * length
	s.Rtip = s.Rhub + length

	dim := func(runit []float64) []float64 {
		r := make([]float64, len(runit))
		for i, u := range runit {
			r[i] = s.Rhub + u*(s.Rtip-s.Rhub)
		}
		return r
	}
	s.RAero = dim(o.RAeroUnit)
	s.RStr = dim(o.RStrUnit)
	s.MaxChordR = s.Rhub + o.RMaxChord*(s.Rtip-s.Rhub)

	// chord control radii: hub, then from max chord to tip
	rc := make([]float64, nc)
	rc[0] = s.Rhub
	copy(rc[1:], utl.LinSpace(s.MaxChordR, s.Rtip, nc-1))

	if s.ChordAero, err = Akima(rc, o.ChordSub, s.RAero); err != nil {
		return nil, err
	}
	if s.ChordStr, err = Akima(rc, o.ChordSub, s.RStr); err != nil {
		return nil, err
	}

	// twist control radii start at the end of the cylindrical root
	rCylinder := s.Rhub + (s.Rtip-s.Rhub)*o.RAeroUnit[o.IdxCylAero]
	rt := utl.LinSpace(rCylinder, s.Rtip, nt)

	outerAero, err := Akima(rt, o.ThetaSub, s.RAero[o.IdxCylAero:])
	if err != nil {
		return nil, err
	}
	outerStr, err := Akima(rt, o.ThetaSub, s.RStr[o.IdxCylStr:])
	if err != nil {
		return nil, err
	}
	s.ThetaAero = holdInboard(outerAero, o.IdxCylAero, len(s.RAero))
	s.ThetaStr = holdInboard(outerStr, o.IdxCylStr, len(s.RStr))

	// precurve shares the chord control radii with an implied zero at the hub
	pc := make([]float64, nc)
	for i, v := range o.PrecurveSub {
		pc[i+1] = v
		if o.DeltaPrecurveSub != nil {
			pc[i+1] += o.DeltaPrecurveSub[i]
		}
	}
	if s.PrecurveAero, err = Akima(rc, pc, s.RAero); err != nil {
		return nil, err
	}
	if s.PrecurveStr, err = Akima(rc, pc, s.RStr); err != nil {
		return nil, err
	}
	s.PrecurveTip = s.PrecurveStr[len(s.PrecurveStr)-1]
	s.PresweepAero = make([]float64, len(s.RAero))
	s.PresweepStr = make([]float64, len(s.RStr))
	s.PresweepTip = 0
	s.RSubPrecurve = rc[1:]

	// panel thickness splines live on an even subdivision of the full radius
	rThick := utl.LinSpace(0, s.Rtip, len(o.SparTsub))
	if s.SparTStr, err = Akima(rThick, o.SparTsub, s.RStr); err != nil {
		return nil, err
	}
	rThick = utl.LinSpace(0, s.Rtip, len(o.TeTsub))
	if s.TeTStr, err = Akima(rThick, o.TeTsub, s.RStr); err != nil {
		return nil, err
	}

	s.HubDiameter = 2.0 * s.Rhub
	return s, nil
}

// holdInboard freezes the first interpolated value over the cylindrical root
func holdInboard(outer []float64, idx, n int) (full []float64) {
	full = make([]float64, n)
	for i := 0; i < idx; i++ {
		full[i] = outer[0]
	}
	copy(full[idx:], outer)
	return
}
