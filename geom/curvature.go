// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Curvature holds the azimuthal-frame geometry of the deformed blade axis
type Curvature struct {
	TotalCone []float64 // [n] precone plus local curvature angle [deg]
	XAz       []float64 // [n] azimuthal-frame x of each station [m]
	YAz       []float64 // [n] azimuthal-frame y [m]
	ZAz       []float64 // [n] azimuthal-frame z [m]
	S         []float64 // [n] arc length along the axis, s[0]=r[0] [m]
}

// NewCurvature computes total cone angle, azimuthal coordinates and arc
// length for a blade axis given by radius, precurve and presweep plus a
// scalar precone angle in degrees. The station coordinates use a zero-precone
// transform; precone enters only through the cone angle sum
func NewCurvature(r, precurve, presweep []float64, precone float64) (o *Curvature, err error) {

	n := len(r)
	if n < 2 {
		return nil, chk.Err("curvature needs at least two stations; got %d", n)
	}
	if len(precurve) != n || len(presweep) != n {
		return nil, chk.Err("precurve/presweep lengths (%d,%d) do not match r length %d", len(precurve), len(presweep), n)
	}

	o = &Curvature{
		TotalCone: make([]float64, n),
		XAz:       make([]float64, n),
		YAz:       make([]float64, n),
		ZAz:       make([]float64, n),
		S:         make([]float64, n),
	}

	for i := 0; i < n; i++ {
		o.XAz[i] = precurve[i]
		o.YAz[i] = presweep[i]
		o.ZAz[i] = r[i]
	}

	// local slope angle from backward/forward segments, averaged inside
	slope := func(i, j int) float64 {
		return math.Atan2(-(o.XAz[j] - o.XAz[i]), o.ZAz[j]-o.ZAz[i])
	}
	toDeg := 180.0 / math.Pi
	o.TotalCone[0] = precone + toDeg*slope(0, 1)
	for i := 1; i < n-1; i++ {
		o.TotalCone[i] = precone + toDeg*0.5*(slope(i-1, i)+slope(i, i+1))
	}
	o.TotalCone[n-1] = precone + toDeg*slope(n-2, n-1)

	// cumulative arc length anchored at the hub radius
	o.S[0] = r[0]
	for i := 1; i < n; i++ {
		dx := precurve[i] - precurve[i-1]
		dy := presweep[i] - presweep[i-1]
		dz := r[i] - r[i-1]
		o.S[i] = o.S[i-1] + math.Sqrt(dx*dx+dy*dy+dz*dz)
	}
	return o, nil
}
