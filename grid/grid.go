// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid maps quantities between the two radial discretisations of the
// blade: the aerodynamic grid where the induction solver works and the finer
// structural grid where layups and beam properties are defined. Both grids
// hold normalised positions in [0,1]. The mapping stores, for each structural
// station, the bracketing aerodynamic interval and the fractional position
// within it, so that a perturbed aerodynamic grid can be pushed onto the
// structural grid without searching again.
package grid

import "github.com/cpmech/gosl/chk"

// Mapping holds the interval index and fraction of each structural station
// with respect to the augmented aerodynamic grid
type Mapping struct {
	Idx  []int     // [nstr] bracketing interval in the augmented aero grid
	Frac []float64 // [nstr] fractional position within the interval
	naug int       // number of points in the augmented aero grid
}

// CheckGrid returns an error if a normalised radial grid is not strictly
// increasing or leaves [0,1]. name labels the offending array in messages
func CheckGrid(name string, r []float64) error {
	if len(r) < 2 {
		return chk.Err("grid %q needs at least two stations; got %d", name, len(r))
	}
	for i, v := range r {
		if v < 0 || v > 1 {
			return chk.Err("grid %q: station %d = %g is outside [0,1]", name, i, v)
		}
		if i > 0 && v <= r[i-1] {
			return chk.Err("grid %q is not strictly increasing at station %d: %g <= %g", name, i, v, r[i-1])
		}
	}
	return nil
}

// augment prepends 0 and appends 1 to an aerodynamic grid so that every
// structural station in [0,1] is bracketed
func augment(raero []float64) (aug []float64) {
	aug = make([]float64, len(raero)+2)
	aug[0] = 0.0
	copy(aug[1:], raero)
	aug[len(aug)-1] = 1.0
	return
}

// NewMapping computes the interval/fraction mapping of the structural grid
// rstr with respect to the aerodynamic grid raero. Both grids are validated
func NewMapping(raero, rstr []float64) (o *Mapping, err error) {
	if err = CheckGrid("r_aero", raero); err != nil {
		return
	}
	if err = CheckGrid("r_str", rstr); err != nil {
		return
	}
	aug := augment(raero)
	o = &Mapping{
		Idx:  make([]int, len(rstr)),
		Frac: make([]float64, len(rstr)),
		naug: len(aug),
	}
	for i, r := range rstr {
		j := 0
		for j < len(aug)-1 && aug[j+1] < r {
			j++
		}
		o.Idx[i] = j
		o.Frac[i] = (r - aug[j]) / (aug[j+1] - aug[j])
	}
	return
}

// Apply reconstructs the structural grid corresponding to a new aerodynamic
// grid of the same point count, by linear reconstruction within the stored
// intervals
func (o *Mapping) Apply(raero []float64) (rstr []float64, err error) {
	aug := augment(raero)
	if len(aug) != o.naug {
		return nil, chk.Err("aero grid changed point count: mapping was built for %d augmented points; got %d", o.naug, len(aug))
	}
	rstr = make([]float64, len(o.Idx))
	for i, j := range o.Idx {
		rstr[i] = aug[j] + o.Frac[i]*(aug[j+1]-aug[j])
	}
	return
}
