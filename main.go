// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/Ben-Mertz/RotorSE/aero"
	"github.com/Ben-Mertz/RotorSE/inp"
	"github.com/Ben-Mertz/RotorSE/rotor"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	allowParallel := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nRotorSE -- Rotor Structures and Aeroelastics\n")
		io.Pf("Copyright 2016 The RotorSE Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"run load cases in parallel", "allowParallel", allowParallel,
		))
	}

	// read simulation
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation:\n%v", err)
	}

	// induction solver: the actuator disk stands in for a linked
	// blade-element/momentum code
	shape, err := sim.Data.Blade.Run()
	if err != nil {
		chk.Panic("cannot evaluate blade geometry:\n%v", err)
	}
	radius, _ := aero.DiskGeometry(shape.Rtip, sim.Data.Machine.Precone, shape.PrecurveTip)
	solver := &aero.SimpleDisk{Radius: radius, Rhub: shape.Rhub}

	// analysis
	analysis, err := rotor.NewFromSim(sim, solver)
	if err != nil {
		chk.Panic("cannot set up analysis:\n%v", err)
	}
	var res *rotor.Results
	if allowParallel {
		res, err = analysis.RunParallel()
	} else {
		res, err = analysis.Run()
	}
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// report
	io.Pf("\n%v\n", io.ArgsTable("RESULTS",
		"rotor diameter [m]", "diameter", res.Diameter,
		"rated wind speed [m/s]", "ratedV", res.PC.Rated.V,
		"rated rotation speed [rpm]", "ratedOmega", res.PC.Rated.Omega,
		"annual energy production [kWh]", "aep", res.AEP,
		"mass of one blade [kg]", "massOneBlade", res.MassOneBlade,
		"tip deflection [m]", "tipDeflection", res.TipDeflection,
		"root moment [N.m]", "rootMoment", res.RootMomentMag,
		"extreme thrust [N]", "tExtreme", res.TExtreme,
	))
}
