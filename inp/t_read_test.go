// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/Ben-Mertz/RotorSE/aero"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. materials database")

	mdb, err := ReadMat("data", "materials.mat")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("%v\n", mdb)
	if len(mdb.Materials) != 3 {
		tst.Errorf("wrong number of materials: %d\n", len(mdb.Materials))
		return
	}
	m := mdb.Get("glass_uni")
	if m == nil {
		tst.Errorf("cannot find glass_uni\n")
		return
	}
	chk.Scalar(tst, "e1", 1e-15, m.E1, 45.0e9)
	chk.Scalar(tst, "rho", 1e-15, m.Rho, 1850)
	if mdb.Get("titanium") != nil {
		tst.Errorf("found inexistent material\n")
	}
}

func Test_str01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("str01. structure file")

	sd, err := ReadStr("data", "structure.str", 3)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if len(sd.Stations) != 3 || len(sd.Profiles) != 3 {
		tst.Errorf("wrong number of stations/profiles: %d/%d\n", len(sd.Stations), len(sd.Profiles))
		return
	}
	st := sd.Stations[1]
	if len(st.Webs) != 1 {
		tst.Errorf("mid station must have one web\n")
		return
	}
	chk.Scalar(tst, "webloc", 1e-15, st.WebLoc[0], 0.35)
	chk.Scalar(tst, "spar thickness", 1e-15, st.Upper.Laminates[sd.IdxSpar].Thickness(), 24*0.0005+4*0.0050)

	// material indices out of range must fail
	if _, err := ReadStr("data", "structure.str", 1); err == nil {
		tst.Errorf("out-of-range material index did not fail\n")
	}
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. simulation file")

	sim, err := ReadSim("data/small.sim")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("desc = %v\n", sim.Data.Desc)

	chk.Scalar(tst, "blade_length", 1e-15, sim.Data.Blade.BladeLength, 40.0)
	chk.Scalar(tst, "rated power", 1e-15, sim.Data.Control.RatedPower, 1.5e6)
	if sim.Drivetr != aero.Geared {
		tst.Errorf("wrong drivetrain: %v\n", sim.Drivetr)
		return
	}

	// defaults filled in
	chk.Scalar(tst, "loss factor", 1e-15, sim.Data.Machine.LossFactor, 1.0)
	chk.Scalar(tst, "dynamic factor", 1e-15, sim.Data.Machine.DynamicFactor, 1.2)
	chk.Scalar(tst, "gust std", 1e-15, sim.Data.Machine.GustStd, 3.0)
	chk.Scalar(tst, "tip azimuth", 1e-15, sim.Data.Machine.TipRatedAzim, 180.0)
	chk.Scalar(tst, "v factor", 1e-15, sim.Data.Machine.Vfactor, 0.7)

	// consistency with the structural grid
	if len(sim.Str.Stations) != len(sim.Data.Blade.RStrUnit) {
		tst.Errorf("stations and structural grid are inconsistent\n")
	}
}
