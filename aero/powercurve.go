// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aero

import (
	"math"

	"github.com/Ben-Mertz/RotorSE/geom"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat/distuv"
)

// RatedConditions holds the operating point where the regulated machine
// first reaches its rating
type RatedConditions struct {
	V     float64 // rated wind speed [m/s]
	Omega float64 // rated rotation speed [rpm]
	Pitch float64 // pitch at rated [deg]
	T     float64 // rated thrust [N]
	Q     float64 // rated torque [N.m]
}

// PowerCurve is the regulated electrical power over wind speed
type PowerCurve struct {
	V     []float64 // [npts] wind speed [m/s]
	P     []float64 // [npts] electrical power [W]
	Rated RatedConditions
}

// RegulatedPowerCurve refines the coarse aerodynamic power evaluations onto
// npts wind speeds, applies the drivetrain losses, clips at the rating and
// locates the rated speed by bisection. thrust and torque at the coarse
// points yield the rated thrust and torque by interpolation
func RegulatedPowerCurve(c *Control, rc *RunConditions, paero, thrust, torque []float64,
	dt DrivetrainType, radius float64, npts int) (pc *PowerCurve, err error) {

	nc := len(rc.Uhub)
	if len(paero) != nc || len(thrust) != nc || len(torque) != nc {
		return nil, chk.Err("power arrays (%d,%d,%d) do not match %d operating points", len(paero), len(thrust), len(torque), nc)
	}
	if npts < nc {
		npts = 200
	}

	pelec := dt.ApplyLosses(paero, c.RatedPower)
	v := utl.LinSpace(c.Vin, c.Vout, npts)
	p, err := geom.Akima(rc.Uhub, pelec, v)
	if err != nil {
		return nil, err
	}

	pc = &PowerCurve{V: v, P: p}
	reachesRated := false
	for i := range p {
		if p[i] < 0 {
			p[i] = 0
		}
		if p[i] >= c.RatedPower {
			p[i] = c.RatedPower
			if !reachesRated {
				reachesRated = true
			}
		}
	}

	// rated speed: bisection of P(V) = Prated on the spline
	if !reachesRated {
		// never reaches the rating; report cut-out conditions
		pc.Rated.V = c.Vout
	} else {
		eval := func(x float64) float64 {
			y, _ := geom.Akima(rc.Uhub, pelec, []float64{x})
			return y[0] - c.RatedPower
		}
		a, b := c.Vin, c.Vout
		for i := 0; i < npts; i++ {
			if p[i] >= c.RatedPower {
				if i > 0 {
					a = v[i-1]
				}
				b = v[i]
				break
			}
		}
		for i := 0; i < 100; i++ {
			m := 0.5 * (a + b)
			if eval(m) > 0 {
				b = m
			} else {
				a = m
			}
			if b-a < 1e-8 {
				break
			}
		}
		pc.Rated.V = 0.5 * (a + b)
	}

	om := c.Tsr * pc.Rated.V / radius * rs2rpm
	if om > c.MaxOmega {
		om = c.MaxOmega
	}
	pc.Rated.Omega = om
	pc.Rated.Pitch = c.Pitch

	tr, err := geom.Akima(rc.Uhub, thrust, []float64{pc.Rated.V})
	if err != nil {
		return nil, err
	}
	qr, err := geom.Akima(rc.Uhub, torque, []float64{pc.Rated.V})
	if err != nil {
		return nil, err
	}
	pc.Rated.T = tr[0]
	pc.Rated.Q = qr[0]
	return pc, nil
}

// HubWindSpeed extrapolates a mean wind speed from the reference height to
// hub height with the power-law shear profile. A non-positive reference
// height disables the correction
func HubWindSpeed(vmean, refHt, hubHt, shearExp float64) float64 {
	if refHt <= 0 || hubHt <= 0 || refHt == hubHt {
		return vmean
	}
	return vmean * math.Pow(hubHt/refHt, shearExp)
}

// AEP integrates the power curve against the Rayleigh wind speed distribution
// with mean vbar, applies the availability/soiling loss factor and returns
// kWh per year
func AEP(pc *PowerCurve, vbar, lossFactor float64) (float64, error) {
	if vbar <= 0 {
		return 0, chk.Err("mean wind speed must be positive; got %g", vbar)
	}
	if lossFactor < 0 || lossFactor > 1 {
		return 0, chk.Err("loss factor %g is outside [0,1]", lossFactor)
	}
	ray := distuv.Rayleigh{Sigma: vbar * math.Sqrt(2.0/math.Pi)}
	cdfs := make([]float64, len(pc.V))
	for i, v := range pc.V {
		cdfs[i] = ray.CDF(v)
	}
	aep := integrate.Trapezoidal(cdfs, pc.P)
	return lossFactor * aep / 1e3 * 365.0 * 24.0, nil
}
