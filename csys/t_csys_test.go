// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csys

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_roundtrip01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("roundtrip01. forward/backward transform pairs")

	v := Vec{1.2, -0.7, 3.1}
	angles := []float64{0, 5, 45, 90, 135, 180, -30}

	for _, a := range angles {
		chk.Scalar(tst, io.Sf("yaw   X a=%g", a), 1e-14, v.YawToHub(a).HubToYaw(a).X, v.X)
		chk.Scalar(tst, io.Sf("yaw   Z a=%g", a), 1e-14, v.YawToHub(a).HubToYaw(a).Z, v.Z)
		chk.Scalar(tst, io.Sf("azim  Y a=%g", a), 1e-14, v.HubToAzimuth(a).AzimuthToHub(a).Y, v.Y)
		chk.Scalar(tst, io.Sf("azim  Z a=%g", a), 1e-14, v.HubToAzimuth(a).AzimuthToHub(a).Z, v.Z)
		chk.Scalar(tst, io.Sf("cone  X a=%g", a), 1e-14, v.AzimuthToBlade(a).BladeToAzimuth(a).X, v.X)
		chk.Scalar(tst, io.Sf("cone  Z a=%g", a), 1e-14, v.AzimuthToBlade(a).BladeToAzimuth(a).Z, v.Z)
		chk.Scalar(tst, io.Sf("twist X a=%g", a), 1e-14, v.BladeToAirfoil(a).AirfoilToBlade(a).X, v.X)
		chk.Scalar(tst, io.Sf("twist Y a=%g", a), 1e-14, v.BladeToAirfoil(a).AirfoilToBlade(a).Y, v.Y)
		chk.Scalar(tst, io.Sf("wind  X a=%g", a), 1e-14, v.WindToYaw(a).YawToWind(a).X, v.X)
		chk.Scalar(tst, io.Sf("inert Y a=%g", a), 1e-14, v.InertialToWind(a).WindToInertial(a).Y, v.Y)
	}

	// profile frame swap
	w := v.AirfoilToProfile().ProfileToAirfoil()
	chk.Scalar(tst, "profile X", 1e-17, w.X, v.X)
	chk.Scalar(tst, "profile Y", 1e-17, w.Y, v.Y)
}

func Test_rotations01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rotations01. reference values")

	// gravity resolved into a 5 degree tilted hub frame
	g := Vec{0, 0, -9.81}
	h := g.YawToHub(5.0)
	chk.Scalar(tst, "gx", 1e-14, h.X, 9.81*math.Sin(5.0*math.Pi/180.0))
	chk.Scalar(tst, "gy", 1e-17, h.Y, 0)
	chk.Scalar(tst, "gz", 1e-14, h.Z, -9.81*math.Cos(5.0*math.Pi/180.0))

	// half an azimuth revolution flips the in-plane components
	b := Vec{0.3, -1.0, 2.0}.HubToAzimuth(180.0)
	chk.Scalar(tst, "bx", 1e-14, b.X, 0.3)
	chk.Scalar(tst, "by", 1e-14, b.Y, 1.0)
	chk.Scalar(tst, "bz", 1e-14, b.Z, -2.0)

	// cross product against a known triad
	m := Vec{1, 0, 0}.Cross(Vec{0, 1, 0})
	chk.Scalar(tst, "mx", 1e-17, m.X, 0)
	chk.Scalar(tst, "my", 1e-17, m.Y, 0)
	chk.Scalar(tst, "mz", 1e-17, m.Z, 1)
}

func Test_deriv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deriv01. analytic partials vs finite differences")

	v := Vec{0.9, 1.7, -0.4}
	ang := 23.0
	h := 1e-6

	checkdang := func(label string, got Vec, f func(a float64) Vec) {
		fd := f(ang + h)
		bk := f(ang - h)
		chk.AnaNum(tst, label+" dang.X", 1e-8, got.X, (fd.X-bk.X)/(2*h), chk.Verbose)
		chk.AnaNum(tst, label+" dang.Y", 1e-8, got.Y, (fd.Y-bk.Y)/(2*h), chk.Verbose)
		chk.AnaNum(tst, label+" dang.Z", 1e-8, got.Z, (fd.Z-bk.Z)/(2*h), chk.Verbose)
	}

	_, J := v.YawToHubDeriv(ang)
	checkdang("yawToHub", J.Dang, func(a float64) Vec { return v.YawToHub(a) })

	_, J = v.HubToAzimuthDeriv(ang)
	checkdang("hubToAzimuth", J.Dang, func(a float64) Vec { return v.HubToAzimuth(a) })

	_, J = v.AzimuthToBladeDeriv(ang)
	checkdang("azimuthToBlade", J.Dang, func(a float64) Vec { return v.AzimuthToBlade(a) })

	_, J = v.BladeToAirfoilDeriv(ang)
	checkdang("bladeToAirfoil", J.Dang, func(a float64) Vec { return v.BladeToAirfoil(a) })

	// component partials of a z-axis rotation
	res, J := v.AirfoilToBladeDeriv(ang)
	s, c := sincosd(ang)
	chk.Scalar(tst, "res.X", 1e-15, res.X, v.X*c-v.Y*s)
	chk.Scalar(tst, "Dx.X", 1e-15, J.Dx.X, c)
	chk.Scalar(tst, "Dy.X", 1e-15, J.Dy.X, -s)
	chk.Scalar(tst, "Dz.Z", 1e-15, J.Dz.Z, 1)

	// cross product partials
	a := Vec{1.1, -2.2, 0.5}
	b := Vec{0.3, 0.9, -1.4}
	_, dA, dB := a.CrossDeriv(b)
	chk.Scalar(tst, "dA.Dy.X", 1e-15, dA.Dy.X, b.Z)
	chk.Scalar(tst, "dB.Dy.X", 1e-15, dB.Dy.X, -a.Z)
}
