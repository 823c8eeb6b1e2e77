// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rotor

import (
	"github.com/Ben-Mertz/RotorSE/aero"
	"github.com/Ben-Mertz/RotorSE/csys"
	"github.com/Ben-Mertz/RotorSE/geom"
	"github.com/Ben-Mertz/RotorSE/inp"
	"github.com/Ben-Mertz/RotorSE/loads"
	"github.com/Ben-Mertz/RotorSE/pbeam"
	"github.com/Ben-Mertz/RotorSE/section"
	"github.com/cpmech/gosl/chk"
)

// RotorSE holds all inputs of one rotor analysis. The analysis itself is a
// dataflow graph over these inputs; Run evaluates it
type RotorSE struct {

	// blade description
	Blade       *geom.SplineInput      // outer shape design variables
	LeLoc       []float64              // [nstr] leading edge location over chord
	Profiles    []*section.Profile     // [nstr] airfoil polygons
	RefStations []*section.Station     // [nstr] reference layups
	RefChord    []float64              // [nstr] chord the reference layups were drawn for [m]
	Mats        []*section.Orthotropic // material table
	IdxSpar     int                    // spar cap sector index
	IdxTe       int                    // trailing edge sector index

	// machine
	Control    *aero.Control       // setpoints
	Drivetrain aero.DrivetrainType // drivetrain loss model
	NBlades    int                 // number of blades
	Precone    float64             // [deg]
	Tilt       float64             // [deg]
	HubHt      float64             // hub height [m]
	ShearExp   float64             // wind shear exponent
	RefHt      float64             // reference height of the class mean wind [m]

	// environment
	TurbClass TurbineClass  // IEC wind class
	TurbCat   TurbulenceCat // IEC turbulence category
	GustStd   float64       // standard deviations in the gust

	// analysis settings
	Solver         aero.Solver // induction solver
	LossFactor     float64     // availability/collection losses for AEP
	DynamicFactor  float64     // tip deflection amplification
	TipRatedAzim   float64     // azimuth of the deflection case [deg]
	Vfactor        float64     // fraction of rated speed of the power-curve deflection case
	PitchExtreme   float64     // parked pitch of the strain case [deg]
	AzimuthExtreme float64     // parked azimuth of the strain case [deg]
	NFreq          int         // number of natural frequencies
	NPower         int         // points on the refined power curve
	Fatigue        pbeam.FatigueParams

	// damage equivalent moment envelope, blade frame, optional
	DamageRStar []float64 // coarse nondimensional radial grid
	DamageMxb   []float64 // flapwise moments [N.m]
	DamageMyb   []float64 // edgewise moments [N.m]
}

// AzimuthCase is the root loading of one parked azimuthal position
type AzimuthCase struct {
	Azimuth float64  // [deg]
	F       csys.Vec // integrated root force, azimuthal frame [N]
	M       csys.Vec // integrated root moment, azimuthal frame [N.m]
}

// Results collects the outputs of one evaluation
type Results struct {

	// geometry
	Shape    *geom.BladeShape
	Curv     *geom.Curvature
	Props    *section.BeamProps
	Radius   float64 // projected rotor radius [m]
	Diameter float64 // rotor diameter [m]

	// performance
	PC    *aero.PowerCurve
	AEP   float64 // [kWh]
	Sigma float64 // gust standard deviation [m/s]
	VGust float64 // gust wind speed [m/s]

	// structure
	MassOneBlade  float64
	MassAllBlades float64
	IAllBlades    [6]float64
	Freqs         []float64 // straight axis [Hz]
	CurvedFreqs   []float64 // curved/spinning axis [Hz]
	TipDeflection float64   // toward the tower [m]

	// strains at the probe points, parked survival case
	StrainUSpar, StrainLSpar []float64
	StrainUTe, StrainLTe     []float64

	// fatigue damage, present when an envelope was given
	DamageUSpar, DamageLSpar []float64
	DamageUTe, DamageLTe     []float64

	// foreshortening feedback
	DeltaBladeLength float64
	DeltaPrecurveSub []float64

	// root loads
	RootMomentMag float64
	RootMoment    csys.Vec
	TExtreme      float64 // extreme thrust shared over the blades [N]
	QExtreme      float64 // extreme torque [N.m]
	AzimuthCases  []AzimuthCase
}

// NewFromSim wires a read simulation file and an induction solver into a
// ready-to-run analysis
func NewFromSim(sim *inp.Simulation, solver aero.Solver) (o *RotorSE, err error) {
	m := sim.Data.Machine
	tc, err := ParseTurbineClass(m.TurbineClass)
	if err != nil {
		return nil, err
	}
	cat, err := ParseTurbulenceCat(m.TurbulenceCat)
	if err != nil {
		return nil, err
	}
	o = &RotorSE{
		Blade:          sim.Data.Blade,
		LeLoc:          sim.Str.LeLoc,
		Profiles:       sim.Str.Profiles,
		RefStations:    sim.Str.Stations,
		Mats:           sim.MatDb.Materials,
		IdxSpar:        sim.Str.IdxSpar,
		IdxTe:          sim.Str.IdxTe,
		Control:        sim.Data.Control,
		Drivetrain:     sim.Drivetr,
		NBlades:        m.NBlades,
		Precone:        m.Precone,
		Tilt:           m.Tilt,
		HubHt:          m.HubHt,
		ShearExp:       m.ShearExp,
		RefHt:          m.RefHt,
		TurbClass:      tc,
		TurbCat:        cat,
		GustStd:        m.GustStd,
		Solver:         solver,
		LossFactor:     m.LossFactor,
		DynamicFactor:  m.DynamicFactor,
		TipRatedAzim:   m.TipRatedAzim,
		Vfactor:        m.Vfactor,
		PitchExtreme:   m.PitchExtreme,
		AzimuthExtreme: m.AzimExtreme,
	}
	return
}

// node implements Node with closures; the graph owns no state of its own
type node struct {
	name  string
	needs []string
	gives []string
	run   func(s *State) error
}

func (o *node) Name() string       { return o.name }
func (o *node) Needs() []string    { return o.needs }
func (o *node) Gives() []string    { return o.gives }
func (o *node) Run(s *State) error { return o.run(s) }

// bundle keys passed between nodes
const (
	kShape      = "shape"          // *geom.BladeShape
	kCurv       = "curvature"      // *geom.Curvature
	kStations   = "stations"       // []*section.Station
	kProps      = "props"          // *section.BeamProps
	kBeam       = "beam"           // *pbeam.Beam
	kPC         = "power_curve"    // *aero.PowerCurve
	kAEP        = "aep"            // float64
	kAeroRated  = "aero_rated"     // *loads.AeroLoads
	kTotRated   = "total_rated"    // *pbeam.Loads
	kDefl       = "deflection"     // *deflection
	kGust       = "gust"           // [2]float64: sigma, vgust
	kAeroPCDefl = "aero_pc_defl"   // *loads.AeroLoads
	kTotPCDefl  = "total_pc_defl"  // *pbeam.Loads
	kAeroStrain = "aero_strain"    // *loads.AeroLoads
	kTotStrain  = "total_strain"   // *pbeam.Loads
	kStrain     = "strain"         // *strainOut
	kExtreme    = "extreme"        // [2]float64: T, Q
	kAzCases    = "az_cases"       // []AzimuthCase
	kFreqs      = "freqs"          // []float64
	kCurvedFr   = "curved_freqs"   // []float64
	kTipDefl    = "tip_deflection" // float64
	kRootMom    = "root_moment"    // rootMoment
	kFeedback   = "feedback"       // *feedback
)

// deflection is the output bundle of the static structural case
type deflection struct {
	dx, dy, dz []float64
	mass, moi  float64
}

type strainOut struct {
	uSpar, lSpar, uTe, lTe     []float64
	damU, damL, damUte, damLte []float64
}

type rootMoment struct {
	mag float64
	m   csys.Vec
}

type feedback struct {
	deltaBladeLength float64
	deltaPrecurveSub []float64
}

func (o *RotorSE) check() error {
	if o.Solver == nil {
		return chk.Err("an induction solver must be attached before running")
	}
	if o.Blade == nil || o.Control == nil {
		return chk.Err("blade description and control setpoints are mandatory")
	}
	if err := o.Control.Check(); err != nil {
		return err
	}
	if o.NBlades < 1 {
		o.NBlades = 3
	}
	if o.LossFactor == 0 {
		o.LossFactor = 1.0
	}
	if o.DynamicFactor == 0 {
		o.DynamicFactor = 1.2
	}
	if o.GustStd == 0 {
		o.GustStd = 3.0
	}
	if o.TipRatedAzim == 0 {
		o.TipRatedAzim = 180.0
	}
	if o.Vfactor == 0 {
		o.Vfactor = 0.7
	}
	if o.NFreq == 0 {
		o.NFreq = 5
	}
	if o.NPower == 0 {
		o.NPower = 200
	}
	return nil
}

// build assembles the dataflow graph
func (o *RotorSE) build() *Graph {

	g := new(Graph)

	g.Add(&node{"geometry", nil, []string{kShape}, func(s *State) error {
		shape, err := o.Blade.Run()
		if err != nil {
			return err
		}
		s.Set(kShape, shape)
		return nil
	}})

	g.Add(&node{"curvature", []string{kShape}, []string{kCurv}, func(s *State) error {
		shape := s.Get(kShape).(*geom.BladeShape)
		cv, err := geom.NewCurvature(shape.RStr, shape.PrecurveStr, shape.PresweepStr, o.Precone)
		if err != nil {
			return err
		}
		s.Set(kCurv, cv)
		return nil
	}})

	g.Add(&node{"resize", []string{kShape}, []string{kStations}, func(s *State) error {
		shape := s.Get(kShape).(*geom.BladeShape)
		n := len(shape.RStr)
		if len(o.RefStations) != n {
			return chk.Err("have %d reference layups but %d structural stations", len(o.RefStations), n)
		}
		sts := make([]*section.Station, n)
		for i := 0; i < n; i++ {
			cref := shape.ChordStr[i]
			if len(o.RefChord) == n {
				cref = o.RefChord[i]
			}
			st, err := section.Resize(o.RefStations[i], cref, shape.ChordStr[i],
				shape.SparTStr[i], shape.TeTStr[i], o.IdxSpar, o.IdxTe)
			if err != nil {
				return err
			}
			sts[i] = st
		}
		s.Set(kStations, sts)
		return nil
	}})

	g.Add(&node{"properties", []string{kShape, kStations}, []string{kProps}, func(s *State) error {
		shape := s.Get(kShape).(*geom.BladeShape)
		ein := &section.EngineInput{
			R:        shape.RStr,
			Chord:    shape.ChordStr,
			Theta:    shape.ThetaStr,
			LeLoc:    o.LeLoc,
			Profiles: o.Profiles,
			Stations: s.Get(kStations).([]*section.Station),
			Mats:     o.Mats,
			IdxSpar:  o.IdxSpar,
			IdxTe:    o.IdxTe,
		}
		bp, err := ein.Run()
		if err != nil {
			return err
		}
		s.Set(kProps, bp)
		return nil
	}})

	g.Add(&node{"beam", []string{kShape, kProps}, []string{kBeam, kFreqs}, func(s *State) error {
		shape := s.Get(kShape).(*geom.BladeShape)
		bp := s.Get(kProps).(*section.BeamProps)
		sec := &pbeam.SectionData{
			Z: shape.RStr, EA: bp.EA, EIxx: bp.EIxx, EIyy: bp.EIyy,
			GJ: bp.GJ, RhoA: bp.RhoA, RhoJ: bp.RhoJ,
		}
		beam, err := pbeam.NewBeam(sec, pbeam.TipData{}, pbeam.BaseData{Rigid: true})
		if err != nil {
			return err
		}
		freqs, err := beam.NaturalFrequencies(o.NFreq)
		if err != nil {
			return err
		}
		s.Set(kBeam, beam)
		s.Set(kFreqs, freqs)
		return nil
	}})

	g.Add(&node{"curved_frequencies", []string{kShape, kProps, kPC}, []string{kCurvedFr}, func(s *State) error {
		shape := s.Get(kShape).(*geom.BladeShape)
		bp := s.Get(kProps).(*section.BeamProps)
		pc := s.Get(kPC).(*aero.PowerCurve)
		in := &pbeam.CurveInput{
			OmegaRPM: pc.Rated.Omega,
			R:        shape.RStr,
			Theta:    shape.ThetaStr,
			Precurve: shape.PrecurveStr,
			Presweep: shape.PresweepStr,
			EA:       bp.EA, EIxx: bp.EIxx, EIyy: bp.EIyy,
			GJ: bp.GJ, RhoA: bp.RhoA, RhoJ: bp.RhoJ,
		}
		freqs, err := pbeam.CurvedFrequencies(in, o.NFreq)
		if err != nil {
			return err
		}
		s.Set(kCurvedFr, freqs)
		return nil
	}})

	g.Add(&node{"power_curve", []string{kShape}, []string{kPC, kAEP}, func(s *State) error {
		shape := s.Get(kShape).(*geom.BladeShape)
		radius, _ := aero.DiskGeometry(shape.Rtip, o.Precone, shape.PrecurveTip)
		rc, err := aero.SetupRunVarSpeed(o.Control, radius, 0)
		if err != nil {
			return err
		}
		p, t, q, err := o.Solver.Power(rc.Uhub, rc.Omega, rc.Pitch)
		if err != nil {
			return err
		}
		pc, err := aero.RegulatedPowerCurve(o.Control, rc, p, t, q, o.Drivetrain, radius, o.NPower)
		if err != nil {
			return err
		}
		vbar := aero.HubWindSpeed(o.TurbClass.VMean(), o.RefHt, o.HubHt, o.ShearExp)
		aep, err := aero.AEP(pc, vbar, o.LossFactor)
		if err != nil {
			return err
		}
		s.Set(kPC, pc)
		s.Set(kAEP, aep)
		return nil
	}})

	g.Add(&node{"gust", []string{kPC}, []string{kGust}, func(s *State) error {
		pc := s.Get(kPC).(*aero.PowerCurve)
		sigma, vgust := GustETM(o.TurbCat, o.TurbClass.VMean(), pc.Rated.V, o.GustStd)
		s.Set(kGust, [2]float64{sigma, vgust})
		return nil
	}})

	// deflection case: gust wind speed at rated rotation, closest to tower
	g.Add(&node{"loads_rated", []string{kPC, kGust, kShape, kCurv, kProps}, []string{kAeroRated, kTotRated}, func(s *State) error {
		pc := s.Get(kPC).(*aero.PowerCurve)
		vgust := s.Get(kGust).([2]float64)[1]
		al, err := o.Solver.Distributed(vgust, pc.Rated.Omega, pc.Rated.Pitch, o.TipRatedAzim)
		if err != nil {
			return err
		}
		tot, err := o.totalLoads(s, al)
		if err != nil {
			return err
		}
		s.Set(kAeroRated, al)
		s.Set(kTotRated, tot)
		return nil
	}})

	// power-curve deflection case driving the foreshortening feedback
	g.Add(&node{"loads_pc_defl", []string{kPC, kShape, kCurv, kProps}, []string{kAeroPCDefl, kTotPCDefl}, func(s *State) error {
		pc := s.Get(kPC).(*aero.PowerCurve)
		shape := s.Get(kShape).(*geom.BladeShape)
		radius, _ := aero.DiskGeometry(shape.Rtip, o.Precone, shape.PrecurveTip)
		uhub, omega, pitch := aero.SetupPCDeflection(o.Control, pc.Rated.V, radius, o.Vfactor)
		al, err := o.Solver.Distributed(uhub, omega, pitch, 0.0)
		if err != nil {
			return err
		}
		tot, err := o.totalLoads(s, al)
		if err != nil {
			return err
		}
		s.Set(kAeroPCDefl, al)
		s.Set(kTotPCDefl, tot)
		return nil
	}})

	// max-strain case: parked rotor at the survival wind speed
	g.Add(&node{"loads_strain", []string{kShape, kCurv, kProps}, []string{kAeroStrain, kTotStrain}, func(s *State) error {
		al, err := o.Solver.Distributed(o.TurbClass.VExtreme(), 0.0, o.PitchExtreme, o.AzimuthExtreme)
		if err != nil {
			return err
		}
		tot, err := o.totalLoads(s, al)
		if err != nil {
			return err
		}
		s.Set(kAeroStrain, al)
		s.Set(kTotStrain, tot)
		return nil
	}})

	g.Add(&node{"deflection", []string{kBeam, kTotRated}, []string{kDefl}, func(s *State) error {
		beam := s.Get(kBeam).(*pbeam.Beam)
		tot := s.Get(kTotRated).(*pbeam.Loads)
		dx, dy, dz, _, _, _, err := beam.Displacement(tot)
		if err != nil {
			return err
		}
		s.Set(kDefl, &deflection{dx: dx, dy: dy, dz: dz, mass: beam.Mass(), moi: beam.OutOfPlaneMomentOfInertia()})
		return nil
	}})

	g.Add(&node{"strain", []string{kBeam, kTotStrain, kProps, kShape}, []string{kStrain}, func(s *State) error {
		beam := s.Get(kBeam).(*pbeam.Beam)
		tot := s.Get(kTotStrain).(*pbeam.Loads)
		bp := s.Get(kProps).(*section.BeamProps)
		shape := s.Get(kShape).(*geom.BladeShape)

		forces, err := beam.ShearAndBending(tot)
		if err != nil {
			return err
		}
		pcs, err := pbeam.NewPrincipalCS(bp.EA, bp.EIxx, bp.EIyy, bp.EIxy, bp.XEc, bp.YEc)
		if err != nil {
			return err
		}
		out := new(strainOut)
		out.uSpar, out.lSpar = pcs.Strain(forces, bp.XuSpar, bp.YuSpar, bp.XlSpar, bp.YlSpar)
		out.uTe, out.lTe = pcs.Strain(forces, bp.XuTe, bp.YuTe, bp.XlTe, bp.YlTe)

		// fatigue damage from the externally supplied moment envelope
		if len(o.DamageRStar) > 0 {
			mxa, mya, err := loads.Damage(o.DamageRStar, o.DamageMxb, o.DamageMyb, shape.RStr, shape.ThetaStr)
			if err != nil {
				return err
			}
			out.damU, out.damL, err = pcs.Damage(mxa, mya, bp.XuSpar, bp.YuSpar, bp.XlSpar, bp.YlSpar, o.Fatigue)
			if err != nil {
				return err
			}
			out.damUte, out.damLte, err = pcs.Damage(mxa, mya, bp.XuTe, bp.YuTe, bp.XlTe, bp.YlTe, o.Fatigue)
			if err != nil {
				return err
			}
		}
		s.Set(kStrain, out)
		return nil
	}})

	g.Add(&node{"tip_deflection", []string{kDefl, kShape, kCurv, kPC}, []string{kTipDefl}, func(s *State) error {
		d := s.Get(kDefl).(*deflection)
		shape := s.Get(kShape).(*geom.BladeShape)
		cv := s.Get(kCurv).(*geom.Curvature)
		pc := s.Get(kPC).(*aero.PowerCurve)
		n := len(shape.RStr)
		td := TipDeflection(&TipDeflectionInput{
			Dx: d.dx[n-1], Dy: d.dy[n-1], Dz: d.dz[n-1],
			Theta:         shape.ThetaStr[n-1],
			Pitch:         pc.Rated.Pitch,
			TotalConeTip:  cv.TotalCone[n-1],
			Azimuth:       o.TipRatedAzim,
			Tilt:          o.Tilt,
			DynamicFactor: o.DynamicFactor,
		})
		s.Set(kTipDefl, td)
		return nil
	}})

	g.Add(&node{"blade_deflection", []string{kBeam, kTotPCDefl, kShape}, []string{kFeedback}, func(s *State) error {
		beam := s.Get(kBeam).(*pbeam.Beam)
		tot := s.Get(kTotPCDefl).(*pbeam.Loads)
		shape := s.Get(kShape).(*geom.BladeShape)
		dx, dy, dz, _, _, _, err := beam.Displacement(tot)
		if err != nil {
			return err
		}
		dbl, dps, err := BladeDeflection(&BladeDeflectionInput{
			Dx: dx, Dy: dy, Dz: dz,
			Pitch:        o.Control.Pitch,
			ThetaStr:     shape.ThetaStr,
			Rhub:         shape.Rhub,
			RStr:         shape.RStr,
			PrecurveStr:  shape.PrecurveStr,
			BladeLength:  o.Blade.BladeLength,
			RSubPrecurve: shape.RSubPrecurve,
		})
		if err != nil {
			return err
		}
		s.Set(kFeedback, &feedback{deltaBladeLength: dbl, deltaPrecurveSub: dps})
		return nil
	}})

	g.Add(&node{"root_moment", []string{kAeroRated, kCurv, kShape}, []string{kRootMom}, func(s *State) error {
		al := s.Get(kAeroRated).(*loads.AeroLoads)
		cv := s.Get(kCurv).(*geom.Curvature)
		shape := s.Get(kShape).(*geom.BladeShape)
		mag, m, err := RootMoment(al, cv, shape.RStr)
		if err != nil {
			return err
		}
		s.Set(kRootMom, rootMoment{mag: mag, m: m})
		return nil
	}})

	g.Add(&node{"extreme", nil, []string{kExtreme}, func(s *State) error {
		ve := o.TurbClass.VExtreme()
		_, t, _, err := o.Solver.Power([]float64{ve, ve}, []float64{0, 0}, []float64{0, 90})
		if err != nil {
			return err
		}
		tx, qx := ExtremeLoads(t[0], t[1], o.NBlades)
		s.Set(kExtreme, [2]float64{tx, qx})
		return nil
	}})

	g.Add(&node{"azimuth_cases", []string{kShape, kCurv, kGust, kPC}, []string{kAzCases}, func(s *State) error {
		shape := s.Get(kShape).(*geom.BladeShape)
		cv := s.Get(kCurv).(*geom.Curvature)
		vgust := s.Get(kGust).([2]float64)[1]
		pc := s.Get(kPC).(*aero.PowerCurve)
		var cases []AzimuthCase
		for _, az := range []float64{0, 120, 240} {
			al, err := o.Solver.Distributed(vgust, pc.Rated.Omega, 89.0, az)
			if err != nil {
				return err
			}
			_, f, err := RootForce(al, cv, shape.RStr)
			if err != nil {
				return err
			}
			_, m, err := RootMoment(al, cv, shape.RStr)
			if err != nil {
				return err
			}
			cases = append(cases, AzimuthCase{Azimuth: az, F: f, M: m})
		}
		s.Set(kAzCases, cases)
		return nil
	}})

	return g
}

// totalLoads assembles one combined distributed load in the airfoil frame
func (o *RotorSE) totalLoads(s *State, al *loads.AeroLoads) (*pbeam.Loads, error) {
	shape := s.Get(kShape).(*geom.BladeShape)
	cv := s.Get(kCurv).(*geom.Curvature)
	bp := s.Get(kProps).(*section.BeamProps)
	px, py, pz, err := loads.Total(al, &loads.TotalInput{
		RStr:      shape.RStr,
		ThetaStr:  shape.ThetaStr,
		TotalCone: cv.TotalCone,
		ZAz:       cv.ZAz,
		RhoA:      bp.RhoA,
		Tilt:      o.Tilt,
	})
	if err != nil {
		return nil, err
	}
	return &pbeam.Loads{Px: px, Py: py, Pz: pz}, nil
}

// Run evaluates the whole graph sequentially and collects the results
func (o *RotorSE) Run() (*Results, error) {
	return o.run(false)
}

// RunParallel evaluates the graph with independent load cases running
// concurrently. Results are identical to Run
func (o *RotorSE) RunParallel() (*Results, error) {
	return o.run(true)
}

func (o *RotorSE) run(parallel bool) (res *Results, err error) {
	if err = o.check(); err != nil {
		return nil, err
	}
	g := o.build()
	s := NewState()
	if parallel {
		err = g.RunParallel(s)
	} else {
		err = g.Run(s)
	}
	if err != nil {
		return nil, err
	}
	return o.collect(s), nil
}

func (o *RotorSE) collect(s *State) *Results {
	res := new(Results)
	res.Shape = s.Get(kShape).(*geom.BladeShape)
	res.Curv = s.Get(kCurv).(*geom.Curvature)
	res.Props = s.Get(kProps).(*section.BeamProps)
	res.Radius, res.Diameter = aero.DiskGeometry(res.Shape.Rtip, o.Precone, res.Shape.PrecurveTip)

	res.PC = s.Get(kPC).(*aero.PowerCurve)
	res.AEP = s.Float(kAEP)
	gust := s.Get(kGust).([2]float64)
	res.Sigma, res.VGust = gust[0], gust[1]

	d := s.Get(kDefl).(*deflection)
	res.MassOneBlade = d.mass
	res.MassAllBlades, res.IAllBlades = MassProperties(o.NBlades, d.mass, d.moi, o.Tilt)
	res.Freqs = s.Get(kFreqs).([]float64)
	res.CurvedFreqs = s.Get(kCurvedFr).([]float64)
	res.TipDeflection = s.Float(kTipDefl)

	st := s.Get(kStrain).(*strainOut)
	res.StrainUSpar, res.StrainLSpar = st.uSpar, st.lSpar
	res.StrainUTe, res.StrainLTe = st.uTe, st.lTe
	res.DamageUSpar, res.DamageLSpar = st.damU, st.damL
	res.DamageUTe, res.DamageLTe = st.damUte, st.damLte

	fb := s.Get(kFeedback).(*feedback)
	res.DeltaBladeLength = fb.deltaBladeLength
	res.DeltaPrecurveSub = fb.deltaPrecurveSub

	rm := s.Get(kRootMom).(rootMoment)
	res.RootMomentMag, res.RootMoment = rm.mag, rm.m
	ext := s.Get(kExtreme).([2]float64)
	res.TExtreme, res.QExtreme = ext[0], ext[1]
	res.AzimuthCases = s.Get(kAzCases).([]AzimuthCase)
	return res
}
