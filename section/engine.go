// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import "github.com/cpmech/gosl/chk"

// EngineInput describes all stations of the blade for property extraction
type EngineInput struct {
	R        []float64      // [n] dimensional radius [m]
	Chord    []float64      // [n] chord [m]
	Theta    []float64      // [n] twist [deg]
	LeLoc    []float64      // [n] leading edge (pitch axis) location, fraction of chord
	Profiles []*Profile     // [n] airfoil profile per station
	Stations []*Station     // [n] resized layup per station
	Mats     []*Orthotropic // material table
	IdxSpar  int            // upper-surface sector index of the spar cap
	IdxTe    int            // upper-surface sector index of the trailing edge panel
	Ext      Extractor      // property routine; ThinWalled when nil
}

// BeamProps holds the per-station beam properties in the airfoil-aligned
// convention used by the structural chain: x edgewise toward the trailing
// edge, y flapwise toward the suction side
type BeamProps struct {
	EA   []float64 // [n] axial stiffness [N]
	EIxx []float64 // [n] edgewise bending stiffness [N.m2]
	EIyy []float64 // [n] flapwise bending stiffness [N.m2]
	EIxy []float64 // [n] coupling stiffness [N.m2]
	GJ   []float64 // [n] torsional stiffness [N.m2]
	RhoA []float64 // [n] mass per length [kg/m]
	RhoJ []float64 // [n] polar mass moment per length [kg.m]

	XEc, YEc         []float64 // [n] elastic centre relative to the shear centre [m]
	XEcNose, YEcNose []float64 // [n] elastic centre relative to the nose, axes swapped [m]

	// strain probe coordinates relative to the elastic centre, airfoil axes
	XuSpar, YuSpar, XlSpar, YlSpar []float64 // [n] spar cap, upper and lower
	XuTe, YuTe, XlTe, YlTe         []float64 // [n] trailing edge panel

	EpsCritSpar []float64 // [n] spar panel buckling strain
	EpsCritTe   []float64 // [n] trailing edge panel buckling strain
}

// Run extracts properties at every station
func (o *EngineInput) Run() (bp *BeamProps, err error) {

	n := len(o.R)
	if n == 0 {
		return nil, chk.Err("property engine needs at least one station")
	}
	for name, l := range map[string]int{
		"chord": len(o.Chord), "theta": len(o.Theta), "le_loc": len(o.LeLoc),
		"profiles": len(o.Profiles), "stations": len(o.Stations),
	} {
		if l != n {
			return nil, chk.Err("array %q has length %d; expected %d stations", name, l, n)
		}
	}
	ext := o.Ext
	if ext == nil {
		ext = &ThinWalled{}
	}

	thPrime, err := TwistRate(o.R, o.Theta)
	if err != nil {
		return nil, err
	}

	alloc := func() []float64 { return make([]float64, n) }
	bp = &BeamProps{
		EA: alloc(), EIxx: alloc(), EIyy: alloc(), EIxy: alloc(), GJ: alloc(),
		RhoA: alloc(), RhoJ: alloc(),
		XEc: alloc(), YEc: alloc(), XEcNose: alloc(), YEcNose: alloc(),
		XuSpar: alloc(), YuSpar: alloc(), XlSpar: alloc(), YlSpar: alloc(),
		XuTe: alloc(), YuTe: alloc(), XlTe: alloc(), YlTe: alloc(),
		EpsCritSpar: alloc(), EpsCritTe: alloc(),
	}

	for i := 0; i < n; i++ {
		st := o.Stations[i]
		p, err := ext.Properties(o.Chord[i], o.Theta[i], thPrime[i], o.LeLoc[i], o.Profiles[i], st, o.Mats)
		if err != nil {
			return nil, chk.Err("station %d: %v", i, err)
		}
		if p.EA <= 0 || p.GJ <= 0 || p.RhoA <= 0 {
			return nil, chk.Err("station %d: non-positive EA=%g, GJ=%g or rhoA=%g", i, p.EA, p.GJ, p.RhoA)
		}

		bp.EA[i] = p.EA
		bp.EIxx[i] = p.EIEdge
		bp.EIyy[i] = p.EIFlap
		bp.EIxy[i] = p.EIFlapEdge
		bp.GJ[i] = p.GJ
		bp.RhoA[i] = p.RhoA
		bp.RhoJ[i] = p.IFlap + p.ILag // perpendicular axis theorem
		bp.XEc[i] = p.ZTc - p.ZSc
		bp.YEc[i] = p.YTc - p.YSc
		bp.XEcNose[i] = p.YTc + o.LeLoc[i]*o.Chord[i]
		bp.YEcNose[i] = p.ZTc

		// strain probes at the chordwise midpoints of the two design sectors,
		// each surface using its own sector boundaries
		probe := func(idx int) (xu, yu, xl, yl float64, err error) {
			up, lo := st.Upper, st.Lower
			if idx < 0 || idx >= len(up.Laminates) || idx >= len(lo.Laminates) {
				return 0, 0, 0, 0, chk.Err("sector index %d outside the %d upper / %d lower sectors", idx, len(up.Laminates), len(lo.Laminates))
			}
			xun := 0.5 * (up.Loc[idx] + up.Loc[idx+1])
			xln := 0.5 * (lo.Loc[idx] + lo.Loc[idx+1])
			yun := o.Profiles[i].YUpper(xun)
			yln := o.Profiles[i].YLower(xln)
			xu = xun*o.Chord[i] - bp.XEcNose[i]
			xl = xln*o.Chord[i] - bp.XEcNose[i]
			yu = yun*o.Chord[i] - bp.YEcNose[i]
			yl = yln*o.Chord[i] - bp.YEcNose[i]
			// airfoil-aligned convention swaps the axes
			xu, yu = yu, xu
			xl, yl = yl, xl
			return
		}
		if bp.XuSpar[i], bp.YuSpar[i], bp.XlSpar[i], bp.YlSpar[i], err = probe(o.IdxSpar); err != nil {
			return nil, chk.Err("station %d: %v", i, err)
		}
		if bp.XuTe[i], bp.YuTe[i], bp.XlTe[i], bp.YlTe[i], err = probe(o.IdxTe); err != nil {
			return nil, chk.Err("station %d: %v", i, err)
		}

		if bp.EpsCritSpar[i], err = st.Upper.PanelBucklingStrain(o.IdxSpar, o.Chord[i], o.Mats); err != nil {
			return nil, chk.Err("station %d: %v", i, err)
		}
		if bp.EpsCritTe[i], err = st.Upper.PanelBucklingStrain(o.IdxTe, o.Chord[i], o.Mats); err != nil {
			return nil, chk.Err("station %d: %v", i, err)
		}
	}
	return bp, nil
}
