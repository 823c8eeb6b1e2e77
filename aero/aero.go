// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aero holds the contract of the induction solver together with the
// operating-point bookkeeping around it: variable-speed run conditions, the
// regulated power curve with drivetrain losses, the Rayleigh annual energy
// integration and the rotor disk geometry.
package aero

import (
	"math"

	"github.com/Ben-Mertz/RotorSE/loads"
	"github.com/cpmech/gosl/chk"
)

// rs2rpm converts rad/s to rpm
const rs2rpm = 60.0 / (2.0 * math.Pi)

// Solver is the opaque induction solver. Power evaluates a list of operating
// points and returns rotor power, thrust and torque per point; Distributed
// evaluates a single operating point and returns the distributed loads in the
// blade frame on the solver's own radial grid
type Solver interface {
	Power(uhub, omega, pitch []float64) (p, t, q []float64, err error)
	Distributed(uhub, omega, pitch, azimuth float64) (*loads.AeroLoads, error)
}

// DiskGeometry reduces tip radius, precone and tip precurve to the projected
// rotor radius and diameter
func DiskGeometry(rtip, precone, precurveTip float64) (radius, diameter float64) {
	a := precone * math.Pi / 180.0
	radius = rtip*math.Cos(a) + precurveTip*math.Sin(a)
	return radius, 2.0 * radius
}

// Control holds the variable-speed machine setpoints
type Control struct {
	Vin        float64 `json:"v_in"`        // cut-in wind speed [m/s]
	Vout       float64 `json:"v_out"`       // cut-out wind speed [m/s]
	RatedPower float64 `json:"rated_power"` // electrical rating [W]
	MinOmega   float64 `json:"min_omega"`   // lower rotation speed bound [rpm]
	MaxOmega   float64 `json:"max_omega"`   // upper rotation speed bound [rpm]
	Tsr        float64 `json:"tsr"`         // design tip speed ratio in region 2
	Pitch      float64 `json:"pitch"`       // fixed pitch in region 2 [deg]
}

// Check validates the setpoints
func (o *Control) Check() error {
	if o.Vin <= 0 || o.Vout <= o.Vin {
		return chk.Err("cut-in/cut-out speeds must satisfy 0 < Vin < Vout; got %g, %g", o.Vin, o.Vout)
	}
	if o.RatedPower <= 0 {
		return chk.Err("rated power must be positive; got %g", o.RatedPower)
	}
	if o.MaxOmega <= 0 || o.MinOmega < 0 || o.MaxOmega < o.MinOmega {
		return chk.Err("rotation speed bounds are inconsistent: [%g, %g]", o.MinOmega, o.MaxOmega)
	}
	if o.Tsr <= 0 {
		return chk.Err("tip speed ratio must be positive; got %g", o.Tsr)
	}
	return nil
}

// RunConditions is one list of operating points for the induction solver
type RunConditions struct {
	Uhub  []float64 // [m/s]
	Omega []float64 // [rpm]
	Pitch []float64 // [deg]
}

// SetupRunVarSpeed builds n coarse operating points between cut-in and
// cut-out, tracking the design tip speed ratio within the rotation speed
// bounds at fixed pitch
// SetupPCDeflection builds the single operating point whose deflections are
// taken as representative over the whole power curve: a fraction of rated
// speed with tip-speed-ratio tracking capped at the upper rotation bound
func SetupPCDeflection(c *Control, vrated, radius, vfactor float64) (uhub, omega, pitch float64) {
	uhub = vfactor * vrated
	omega = c.Tsr * uhub / radius * rs2rpm
	if omega > c.MaxOmega {
		omega = c.MaxOmega
	}
	return uhub, omega, c.Pitch
}

func SetupRunVarSpeed(c *Control, radius float64, n int) (rc *RunConditions, err error) {
	if err = c.Check(); err != nil {
		return
	}
	if radius <= 0 {
		return nil, chk.Err("rotor radius must be positive; got %g", radius)
	}
	if n < 2 {
		n = 20
	}
	rc = &RunConditions{
		Uhub:  make([]float64, n),
		Omega: make([]float64, n),
		Pitch: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		u := c.Vin + (c.Vout-c.Vin)*float64(i)/float64(n-1)
		om := c.Tsr * u / radius * rs2rpm
		if om > c.MaxOmega {
			om = c.MaxOmega
		}
		if om < c.MinOmega {
			om = c.MinOmega
		}
		rc.Uhub[i] = u
		rc.Omega[i] = om
		rc.Pitch[i] = c.Pitch
	}
	return
}
