// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Profile holds one normalised airfoil shape split into upper and lower
// surfaces. X runs from 0 at the leading edge to 1 at the trailing edge and
// is shared by both surfaces
type Profile struct {
	X  []float64 `json:"x"`  // [np] chordwise coordinate
	Yu []float64 `json:"yu"` // [np] upper surface
	Yl []float64 `json:"yl"` // [np] lower surface
}

// Check validates the profile arrays
func (o *Profile) Check() error {
	n := len(o.X)
	if n < 3 {
		return chk.Err("profile needs at least three points; got %d", n)
	}
	if len(o.Yu) != n || len(o.Yl) != n {
		return chk.Err("profile surface lengths (%d,%d) do not match x length %d", len(o.Yu), len(o.Yl), n)
	}
	for i := 1; i < n; i++ {
		if o.X[i] <= o.X[i-1] {
			return chk.Err("profile x is not strictly increasing at point %d", i)
		}
	}
	return nil
}

// interp evaluates a piecewise linear curve, clamping at the ends
func interpLin(x, y []float64, xi float64) float64 {
	n := len(x)
	if xi <= x[0] {
		return y[0]
	}
	if xi >= x[n-1] {
		return y[n-1]
	}
	j := 0
	for x[j+1] < xi {
		j++
	}
	f := (xi - x[j]) / (x[j+1] - x[j])
	return y[j] + f*(y[j+1]-y[j])
}

// YUpper returns the upper surface coordinate at the chordwise position x
func (o *Profile) YUpper(x float64) float64 { return interpLin(o.X, o.Yu, x) }

// YLower returns the lower surface coordinate at the chordwise position x
func (o *Profile) YLower(x float64) float64 { return interpLin(o.X, o.Yl, x) }

// Height returns the normalised thickness of the section at x
func (o *Profile) Height(x float64) float64 { return o.YUpper(x) - o.YLower(x) }

// CylinderProfile builds the circular profile of the blade root, discretised
// with np points per surface
func CylinderProfile(np int) *Profile {
	o := &Profile{
		X:  make([]float64, np),
		Yu: make([]float64, np),
		Yl: make([]float64, np),
	}
	for i := 0; i < np; i++ {
		x := float64(i) / float64(np-1)
		o.X[i] = x
		d := x - 0.5
		h := 0.25 - d*d
		if h < 0 {
			h = 0
		}
		y := 0.0
		if h > 0 {
			y = math.Sqrt(h)
		}
		o.Yu[i] = y
		o.Yl[i] = -y
	}
	return o
}
