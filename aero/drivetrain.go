// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aero

import "github.com/cpmech/gosl/chk"

// DrivetrainType selects one loss curve of the cost and scaling model
type DrivetrainType int

const (
	Geared DrivetrainType = iota
	SingleStage
	MultiDrive
	PmDirectDrive
)

// ParseDrivetrain converts the configuration string
func ParseDrivetrain(s string) (DrivetrainType, error) {
	switch s {
	case "geared":
		return Geared, nil
	case "single_stage":
		return SingleStage, nil
	case "multi_drive":
		return MultiDrive, nil
	case "pm_direct_drive":
		return PmDirectDrive, nil
	}
	return 0, chk.Err("unknown drivetrain type %q", s)
}

// String implements fmt.Stringer
func (o DrivetrainType) String() string {
	switch o {
	case Geared:
		return "geared"
	case SingleStage:
		return "single_stage"
	case MultiDrive:
		return "multi_drive"
	case PmDirectDrive:
		return "pm_direct_drive"
	}
	return "unknown"
}

// lossCoeffs returns the constant, linear and quadratic loss coefficients
func (o DrivetrainType) lossCoeffs() (c, l, q float64) {
	switch o {
	case Geared:
		return 0.01289, 0.08510, 0.0
	case SingleStage:
		return 0.01331, 0.03655, 0.06107
	case MultiDrive:
		return 0.01547, 0.04463, 0.05790
	case PmDirectDrive:
		return 0.01007, 0.02000, 0.06899
	}
	return 0, 0, 0
}

// ApplyLosses converts aerodynamic rotor power to electrical power with the
// three-coefficient loss curve
//
//	eff = 1 - (c/pbar + l + q pbar),  pbar = P/Prated
//
// Non-positive input power gives zero output
func (o DrivetrainType) ApplyLosses(paero []float64, rated float64) (p []float64) {
	c, l, q := o.lossCoeffs()
	p = make([]float64, len(paero))
	for i, pa := range paero {
		if pa <= 0 {
			continue
		}
		pbar := pa / rated
		eff := 1.0 - (c/pbar + l + q*pbar)
		if eff < 0 {
			eff = 0
		}
		p[i] = pa * eff
	}
	return
}
