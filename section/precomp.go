// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Props holds the raw outputs of the section property extraction routine.
// Offsets use the PreComp-style convention: y chordwise positive toward the
// trailing edge measured from the reference (pitch) axis, z flapwise positive
// toward the suction side measured from the chord line. Stiffnesses are taken
// about the reference axis; the caller translates them to the elastic centre
type Props struct {
	EIFlap     float64 // flapwise bending stiffness [N.m2]
	EIEdge     float64 // edgewise (lag) bending stiffness [N.m2]
	GJ         float64 // torsional stiffness [N.m2]
	EA         float64 // axial stiffness [N]
	EIFlapEdge float64 // flap/edge coupling stiffness [N.m2]
	YSc, ZSc   float64 // shear centre offsets [m]
	YTc, ZTc   float64 // tension (elastic) centre offsets [m]
	YCm, ZCm   float64 // mass centre offsets [m]
	RhoA       float64 // mass per unit length [kg/m]
	IFlap      float64 // flapwise mass moment of inertia per length [kg.m]
	ILag       float64 // edgewise mass moment of inertia per length [kg.m]
	TwIner     float64 // orientation of the principal inertia axes [deg]
	Area       float64 // shell cross-section area [m2]
}

// Extractor is the contract of the opaque section property routine. chord,
// twist theta [deg], twist rate thPrime [deg/m] and the leading edge offset
// leLoc (fraction of chord) describe the station; the profile, station layup
// and material table describe the laminates
type Extractor interface {
	Properties(chord, theta, thPrime, leLoc float64, pf *Profile, st *Station, mats []*Orthotropic) (*Props, error)
}

// TwistRate computes the finite-difference derivative of twist over radius,
// one-sided at the ends
func TwistRate(r, theta []float64) (thPrime []float64, err error) {
	n := len(r)
	if len(theta) != n {
		return nil, chk.Err("theta length %d does not match r length %d", len(theta), n)
	}
	if n < 2 {
		return nil, chk.Err("twist rate needs at least two stations; got %d", n)
	}
	thPrime = make([]float64, n)
	thPrime[0] = (theta[1] - theta[0]) / (r[1] - r[0])
	for i := 1; i < n-1; i++ {
		thPrime[i] = (theta[i+1] - theta[i-1]) / (r[i+1] - r[i-1])
	}
	thPrime[n-1] = (theta[n-1] - theta[n-2]) / (r[n-1] - r[n-2])
	return
}

// ThinWalled is the built-in property extractor. It integrates the laminate
// shell along the profile polyline with smeared sector moduli, closes the
// torsion cell over the outer shell (Bredt-Batho) and places the shear centre
// on the reference axis. Twist-rate coupling is neglected
type ThinWalled struct {
	Nseg int // segments per sector for the surface integration
}

// segment accumulators for one surface pass
type accum struct {
	ea, sx, sy       float64
	eixx, eiyy, eixy float64
	rhoA, msx, msy   float64
	iflap, ilag      float64
	area             float64
	twistPathInv     float64
}

// addPlate accumulates one shell segment of length ds and midpoint (x,y)
// measured from the reference axis (x chordwise, y flapwise)
func (o *accum) addPlate(E, G, rho, t, ds, x, y float64, inCell bool) {
	eds := E * t * ds
	o.ea += eds
	o.sx += eds * x
	o.sy += eds * y
	o.eixx += eds * x * x
	o.eiyy += eds * y * y
	o.eixy += eds * x * y
	m := rho * t * ds
	o.rhoA += m
	o.msx += m * x
	o.msy += m * y
	o.ilag += m * x * x
	o.iflap += m * y * y
	o.area += t * ds
	if inCell && G > 0 && t > 0 {
		o.twistPathInv += ds / (G * t)
	}
}

// Properties implements the Extractor contract
func (o *ThinWalled) Properties(chord, theta, thPrime, leLoc float64, pf *Profile, st *Station, mats []*Orthotropic) (*Props, error) {

	if chord <= 0 {
		return nil, chk.Err("chord must be positive; got %g", chord)
	}
	nseg := o.Nseg
	if nseg < 1 {
		nseg = 8
	}
	xref := leLoc * chord

	var ac accum
	cellArea := 0.0

	// walk one surface sector by sector; sign selects upper (+1) or lower (-1)
	walk := func(cs *CompositeSection, upper bool) error {
		surf := pf.YLower
		if upper {
			surf = pf.YUpper
		}
		for s := range cs.Laminates {
			E, err := cs.EffectiveEAxial(s, mats)
			if err != nil {
				return err
			}
			G := cs.EffectiveGShear(s, mats)
			rho := cs.EffectiveRho(s, mats)
			t := cs.Laminates[s].Thickness()
			x0, x1 := cs.Loc[s], cs.Loc[s+1]
			for k := 0; k < nseg; k++ {
				a := x0 + (x1-x0)*float64(k)/float64(nseg)
				b := x0 + (x1-x0)*float64(k+1)/float64(nseg)
				xa, ya := a*chord, surf(a)*chord
				xb, yb := b*chord, surf(b)*chord
				ds := math.Hypot(xb-xa, yb-ya)
				xm := 0.5*(xa+xb) - xref
				ym := 0.5 * (ya + yb)
				ac.addPlate(E, G, rho, t, ds, xm, ym, true)
				// shoelace contribution of the closed outer loop
				if upper {
					cellArea += 0.5 * (xa*yb - xb*ya)
				} else {
					cellArea += 0.5 * (xb*ya - xa*yb)
				}
			}
		}
		return nil
	}
	if err := walk(st.Upper, true); err != nil {
		return nil, err
	}
	if err := walk(st.Lower, false); err != nil {
		return nil, err
	}

	// shear webs: straight vertical plates between the two surfaces
	for iw, w := range st.Webs {
		if len(st.WebLoc) <= iw {
			return nil, chk.Err("web %d has no chordwise location", iw)
		}
		xw := st.WebLoc[iw]
		yu := pf.YUpper(xw) * chord
		yl := pf.YLower(xw) * chord
		height := yu - yl
		if height <= 0 {
			continue
		}
		for s := range w.Laminates {
			E, err := w.EffectiveEAxial(s, mats)
			if err != nil {
				return nil, err
			}
			G := w.EffectiveGShear(s, mats)
			rho := w.EffectiveRho(s, mats)
			t := w.Laminates[s].Thickness()
			ac.addPlate(E, G, rho, t, height, xw*chord-xref, 0.5*(yu+yl), false)
		}
	}

	if ac.ea <= 0 || ac.rhoA <= 0 {
		return nil, chk.Err("section has non-positive axial stiffness (%g) or mass (%g)", ac.ea, ac.rhoA)
	}

	p := &Props{
		EIFlap:     ac.eiyy,
		EIEdge:     ac.eixx,
		EA:         ac.ea,
		EIFlapEdge: ac.eixy,
		YTc:        ac.sx / ac.ea,
		ZTc:        ac.sy / ac.ea,
		YCm:        ac.msx / ac.rhoA,
		ZCm:        ac.msy / ac.rhoA,
		RhoA:       ac.rhoA,
		IFlap:      ac.iflap,
		ILag:       ac.ilag,
		TwIner:     theta,
		Area:       ac.area,
	}
	cellArea = math.Abs(cellArea)
	if ac.twistPathInv > 0 {
		p.GJ = 4.0 * cellArea * cellArea / ac.twistPathInv
	}
	return p, nil
}
