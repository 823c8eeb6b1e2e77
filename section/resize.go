// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import "github.com/cpmech/gosl/chk"

// Station bundles the three composite sections describing one structural
// station of the blade
type Station struct {
	Upper  *CompositeSection   `json:"upper"`  // suction side
	Lower  *CompositeSection   `json:"lower"`  // pressure side
	Webs   []*CompositeSection `json:"webs"`   // shear webs, possibly empty
	WebLoc []float64           `json:"webloc"` // normalised chordwise web positions
}

// Copy deep-copies the station
func (o *Station) Copy() *Station {
	c := &Station{
		Upper:  o.Upper.Copy(),
		Lower:  o.Lower.Copy(),
		Webs:   make([]*CompositeSection, len(o.Webs)),
		WebLoc: append([]float64(nil), o.WebLoc...),
	}
	for i, w := range o.Webs {
		c.Webs[i] = w.Copy()
	}
	return c
}

// scalePlies multiplies every ply thickness of one sector by f
func scalePlies(cs *CompositeSection, isec int, f float64) {
	for j := range cs.Laminates[isec].Plies {
		cs.Laminates[isec].Plies[j].TPly *= f
	}
}

// scaleAll multiplies every ply thickness of the whole section by f
func scaleAll(cs *CompositeSection, f float64) {
	for i := range cs.Laminates {
		scalePlies(cs, i, f)
	}
}

// Resize returns a copy of the reference station with all ply thicknesses
// scaled by chord/chordRef, then the spar cap and trailing edge sectors
// rescaled again so that their upper-surface stack heights match the sparT
// and teT targets exactly. The targeted rescale overwrites the chord scale
// on those two sectors
func Resize(ref *Station, chordRef, chord, sparT, teT float64, idxSpar, idxTe int) (st *Station, err error) {

	if chordRef <= 0 || chord <= 0 {
		return nil, chk.Err("chord values must be positive; got ref=%g new=%g", chordRef, chord)
	}
	nsec := len(ref.Upper.Laminates)
	if idxSpar < 0 || idxSpar >= nsec || idxTe < 0 || idxTe >= nsec {
		return nil, chk.Err("sector indices (spar=%d, te=%d) are outside the %d upper sectors", idxSpar, idxTe, nsec)
	}

	st = ref.Copy()
	f := chord / chordRef
	scaleAll(st.Upper, f)
	scaleAll(st.Lower, f)
	for _, w := range st.Webs {
		scaleAll(w, f)
	}

	tspar := st.Upper.Laminates[idxSpar].Thickness()
	if tspar <= 0 {
		return nil, chk.Err("spar cap sector %d has zero thickness; cannot hit target %g", idxSpar, sparT)
	}
	scalePlies(st.Upper, idxSpar, sparT/tspar)
	scalePlies(st.Lower, idxSpar, sparT/tspar)

	tte := st.Upper.Laminates[idxTe].Thickness()
	if tte <= 0 {
		return nil, chk.Err("trailing edge sector %d has zero thickness; cannot hit target %g", idxTe, teT)
	}
	scalePlies(st.Upper, idxTe, teT/tte)
	scalePlies(st.Lower, idxTe, teT/tte)
	return st, nil
}
