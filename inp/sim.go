// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the input data read from a (.sim) JSON file
// together with the auxiliary materials (.mat) and structure (.str) files
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/Ben-Mertz/RotorSE/aero"
	"github.com/Ben-Mertz/RotorSE/geom"
	"github.com/Ben-Mertz/RotorSE/section"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// MachineData holds the rotor-level configuration
type MachineData struct {
	NBlades       int     `json:"nblades"`        // number of blades
	Precone       float64 `json:"precone"`        // precone angle [deg]
	Tilt          float64 `json:"tilt"`           // shaft tilt angle [deg]
	Yaw           float64 `json:"yaw"`            // yaw error [deg]
	HubHt         float64 `json:"hubht"`          // hub height [m]
	ShearExp      float64 `json:"shearexp"`       // wind shear exponent
	RefHt         float64 `json:"refht"`          // reference height of the mean wind speed [m]
	TurbineClass  string  `json:"turbine_class"`  // IEC wind class: "I", "II", "III" or "IV"
	TurbulenceCat string  `json:"turbulence_cat"` // IEC turbulence category: "A", "B" or "C"
	Drivetrain    string  `json:"drivetrain"`     // "geared", "single_stage", "multi_drive" or "pm_direct_drive"
	LossFactor    float64 `json:"loss_factor"`    // availability and collection loss factor for AEP
	DynamicFactor float64 `json:"dynamic_factor"` // amplification applied to the static tip deflection
	GustStd       float64 `json:"gust_std"`       // number of turbulence standard deviations in the gust
	TipRatedAzim  float64 `json:"tip_azimuth"`    // azimuth of the rated tip deflection case [deg]
	Vfactor       float64 `json:"v_factor"`       // fraction of rated speed of the power-curve deflection case
	PitchExtreme  float64 `json:"pitch_extreme"`  // parked pitch of the max-strain case [deg]
	AzimExtreme   float64 `json:"azim_extreme"`   // parked azimuth of the max-strain case [deg]
}

// StrData holds the structural description: airfoil polygons per structural
// station, the layup stations, and the indices of the spar and trailing edge
// sectors used when resizing the layups
type StrData struct {
	LeLoc    []float64          `json:"le_loc"`   // [nstr] leading edge location over chord
	Profiles []*section.Profile `json:"profiles"` // [nstr] normalised airfoil polygons
	Stations []*section.Station `json:"stations"` // [nstr] composite layups
	IdxSpar  int                `json:"idx_spar"` // spar cap sector index
	IdxTe    int                `json:"idx_te"`   // trailing edge sector index
}

// Data holds global data from a .sim file
type Data struct {
	Desc    string            `json:"desc"`    // description of simulation
	Matfile string            `json:"matfile"` // materials file path, relative to the .sim file
	Strfile string            `json:"strfile"` // structure file path, relative to the .sim file
	Blade   *geom.SplineInput `json:"blade"`   // outer shape design variables
	Control *aero.Control     `json:"control"` // machine setpoints
	Machine *MachineData      `json:"machine"` // rotor-level configuration
}

// Simulation holds all read and derived data
type Simulation struct {

	// input
	Data Data   // global data
	Dir  string // directory where the .sim file is located

	// derived
	MatDb   *MatDb              // materials database
	Str     *StrData            // structural description
	Drivetr aero.DrivetrainType // parsed drivetrain type
}

// ReadSim reads a simulation file and all auxiliary files it references
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read and decode main file
	o = new(Simulation)
	o.Dir = filepath.Dir(simfilepath)
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(b, &o.Data)
	if err != nil {
		return nil, chk.Err("cannot decode %q: %v", simfilepath, err)
	}

	// defaults
	m := o.Data.Machine
	if m == nil {
		return nil, chk.Err("%q is missing the \"machine\" block", simfilepath)
	}
	if o.Data.Blade == nil {
		return nil, chk.Err("%q is missing the \"blade\" block", simfilepath)
	}
	if o.Data.Control == nil {
		return nil, chk.Err("%q is missing the \"control\" block", simfilepath)
	}
	if m.NBlades < 1 {
		m.NBlades = 3
	}
	if m.LossFactor == 0 {
		m.LossFactor = 1.0
	}
	if m.DynamicFactor == 0 {
		m.DynamicFactor = 1.2
	}
	if m.GustStd == 0 {
		m.GustStd = 3.0
	}
	if m.TipRatedAzim == 0 {
		m.TipRatedAzim = 180.0
	}
	if m.Vfactor == 0 {
		m.Vfactor = 0.7
	}
	if err = o.Data.Control.Check(); err != nil {
		return nil, err
	}
	o.Drivetr, err = aero.ParseDrivetrain(m.Drivetrain)
	if err != nil {
		return nil, err
	}

	// materials
	o.MatDb, err = ReadMat(o.Dir, o.Data.Matfile)
	if err != nil {
		return nil, err
	}

	// structure
	o.Str, err = ReadStr(o.Dir, o.Data.Strfile, len(o.MatDb.Materials))
	if err != nil {
		return nil, err
	}
	nstr := len(o.Data.Blade.RStrUnit)
	if len(o.Str.Profiles) != nstr || len(o.Str.Stations) != nstr || len(o.Str.LeLoc) != nstr {
		return nil, chk.Err("structure file %q has %d/%d/%d profiles/stations/le_loc entries but the blade has %d structural stations",
			o.Data.Strfile, len(o.Str.Profiles), len(o.Str.Stations), len(o.Str.LeLoc), nstr)
	}
	return
}

// ReadStr reads the structural description from a .str JSON file
func ReadStr(dir, fn string, nmat int) (sd *StrData, err error) {
	sd = new(StrData)
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(b, sd)
	if err != nil {
		return nil, chk.Err("cannot decode %q: %v", fn, err)
	}
	for i, pf := range sd.Profiles {
		if err = pf.Check(); err != nil {
			return nil, chk.Err("profile %d in %q is invalid: %v", i, fn, err)
		}
	}
	for i, st := range sd.Stations {
		if err = st.Upper.Check(io.Sf("station %d upper", i), nmat); err != nil {
			return nil, err
		}
		if err = st.Lower.Check(io.Sf("station %d lower", i), nmat); err != nil {
			return nil, err
		}
		if len(st.Webs) != len(st.WebLoc) {
			return nil, chk.Err("station %d in %q has %d webs but %d web locations", i, fn, len(st.Webs), len(st.WebLoc))
		}
		for j, w := range st.Webs {
			if err = w.Check(io.Sf("station %d web %d", i, j), nmat); err != nil {
				return nil, err
			}
		}
	}
	return
}
