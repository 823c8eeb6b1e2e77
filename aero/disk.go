// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aero

import (
	"math"

	"github.com/Ben-Mertz/RotorSE/loads"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// SimpleDisk is an actuator-disk stand-in for a full blade-element/momentum
// code: fixed power and thrust coefficients below the feathering pitch and
// a triangular distributed load shape. Useful for structural sizing runs and
// as the default solver of the command line driver
type SimpleDisk struct {
	Radius  float64 // projected rotor radius [m]
	Rhub    float64 // hub radius [m]
	Rho     float64 // air density [kg/m3]
	Cp      float64 // power coefficient in operation
	Ct      float64 // thrust coefficient in operation
	Feather float64 // pitch beyond which the rotor is feathered [deg]
	NSt     int     // stations of the distributed load
}

func (o *SimpleDisk) defaults() error {
	if o.Radius <= 0 {
		return chk.Err("disk radius must be positive; got %g", o.Radius)
	}
	if o.Rho == 0 {
		o.Rho = 1.225
	}
	if o.Cp == 0 {
		o.Cp = 0.45
	}
	if o.Ct == 0 {
		o.Ct = 0.80
	}
	if o.Feather == 0 {
		o.Feather = 45.0
	}
	if o.NSt < 2 {
		o.NSt = 20
	}
	return nil
}

// Power evaluates the operating points with disk theory
func (o *SimpleDisk) Power(uhub, omega, pitch []float64) (p, t, q []float64, err error) {
	if err = o.defaults(); err != nil {
		return
	}
	n := len(uhub)
	if len(omega) != n || len(pitch) != n {
		return nil, nil, nil, chk.Err("operating point arrays have lengths %d/%d/%d", n, len(omega), len(pitch))
	}
	p = make([]float64, n)
	t = make([]float64, n)
	q = make([]float64, n)
	area := math.Pi * o.Radius * o.Radius
	for i := 0; i < n; i++ {
		cp, ct := o.Cp, o.Ct
		if pitch[i] > o.Feather {
			cp, ct = 0.05*o.Cp, 0.05*o.Ct
		}
		u := uhub[i]
		p[i] = 0.5 * o.Rho * area * cp * u * u * u
		t[i] = 0.5 * o.Rho * area * ct * u * u
		if omega[i] > 0 {
			q[i] = p[i] / (omega[i] / rs2rpm)
		}
	}
	return
}

// Distributed spreads the disk thrust triangularly over the span, in the
// blade frame
func (o *SimpleDisk) Distributed(uhub, omega, pitch, azimuth float64) (*loads.AeroLoads, error) {
	if err := o.defaults(); err != nil {
		return nil, err
	}
	ct := o.Ct
	if pitch > o.Feather {
		ct = 0.05 * o.Ct
	}
	thrust := 0.5 * o.Rho * math.Pi * o.Radius * o.Radius * ct * uhub * uhub

	r0 := o.Rhub
	if r0 <= 0 {
		r0 = 0.02 * o.Radius
	}
	r := utl.LinSpace(r0, o.Radius, o.NSt)
	px := make([]float64, o.NSt)
	py := make([]float64, o.NSt)
	pz := make([]float64, o.NSt)

	// per blade, triangular: px(r) = k r with thrust/3 = integral k r dr
	span2 := o.Radius*o.Radius - r0*r0
	k := 2.0 * thrust / 3.0 / span2
	for i := 0; i < o.NSt; i++ {
		px[i] = k * r[i]
		py[i] = -0.07 * px[i] // in-plane drag share
	}
	return &loads.AeroLoads{R: r, Px: px, Py: py, Pz: pz, Omega: omega, Pitch: pitch, Azimuth: azimuth}, nil
}
