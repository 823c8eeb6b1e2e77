// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csys

import "math"

// toRad converts the angle sensitivity from per-radian to per-degree
const toRad = math.Pi / 180.0

// derivZ computes the Jacobian of a rotation about the local z-axis with the
// component pattern {xc - m*ys, m*xs + yc, z}, where m is +1 for the forward
// direction and -1 for the reverse one
func (o Vec) derivZ(angdeg, m float64) (res Vec, J Jac) {
	s, c := sincosd(angdeg)
	res = Vec{o.X*c - m*o.Y*s, m*o.X*s + o.Y*c, o.Z}
	J.Dx = Vec{c, m * s, 0}
	J.Dy = Vec{-m * s, c, 0}
	J.Dz = Vec{0, 0, 1}
	J.Dang = Vec{(-o.X*s - m*o.Y*c) * toRad, (m*o.X*c - o.Y*s) * toRad, 0}
	return
}

// derivY computes the Jacobian of a rotation about the local y-axis with the
// component pattern {xc - m*zs, y, m*xs + zc}
func (o Vec) derivY(angdeg, m float64) (res Vec, J Jac) {
	s, c := sincosd(angdeg)
	res = Vec{o.X*c - m*o.Z*s, o.Y, m*o.X*s + o.Z*c}
	J.Dx = Vec{c, 0, m * s}
	J.Dy = Vec{0, 1, 0}
	J.Dz = Vec{-m * s, 0, c}
	J.Dang = Vec{(-o.X*s - m*o.Z*c) * toRad, 0, (m*o.X*c - o.Z*s) * toRad}
	return
}

// derivX computes the Jacobian of a rotation about the local x-axis with the
// component pattern {x, yc - m*zs, m*ys + zc}
func (o Vec) derivX(angdeg, m float64) (res Vec, J Jac) {
	s, c := sincosd(angdeg)
	res = Vec{o.X, o.Y*c - m*o.Z*s, m*o.Y*s + o.Z*c}
	J.Dx = Vec{1, 0, 0}
	J.Dy = Vec{0, c, m * s}
	J.Dz = Vec{0, -m * s, c}
	J.Dang = Vec{0, (-o.Y*s - m*o.Z*c) * toRad, (m*o.Y*c - o.Z*s) * toRad}
	return
}

// HubToYawDeriv is HubToYaw returning the analytic partials as well
func (o Vec) HubToYawDeriv(tilt float64) (Vec, Jac) { return o.derivY(tilt, -1) }

// YawToHubDeriv is YawToHub returning the analytic partials as well
func (o Vec) YawToHubDeriv(tilt float64) (Vec, Jac) { return o.derivY(tilt, 1) }

// AzimuthToHubDeriv is AzimuthToHub returning the analytic partials as well
func (o Vec) AzimuthToHubDeriv(azimuth float64) (Vec, Jac) { return o.derivX(azimuth, 1) }

// HubToAzimuthDeriv is HubToAzimuth returning the analytic partials as well
func (o Vec) HubToAzimuthDeriv(azimuth float64) (Vec, Jac) { return o.derivX(azimuth, -1) }

// AzimuthToBladeDeriv is AzimuthToBlade returning the analytic partials as well
func (o Vec) AzimuthToBladeDeriv(cone float64) (Vec, Jac) { return o.derivY(cone, 1) }

// BladeToAzimuthDeriv is BladeToAzimuth returning the analytic partials as well
func (o Vec) BladeToAzimuthDeriv(cone float64) (Vec, Jac) { return o.derivY(cone, -1) }

// AirfoilToBladeDeriv is AirfoilToBlade returning the analytic partials as well
func (o Vec) AirfoilToBladeDeriv(theta float64) (Vec, Jac) { return o.derivZ(theta, 1) }

// BladeToAirfoilDeriv is BladeToAirfoil returning the analytic partials as well
func (o Vec) BladeToAirfoilDeriv(theta float64) (Vec, Jac) { return o.derivZ(theta, -1) }

// CrossDeriv computes o times b and the partials of the product with respect
// to both operands
func (o Vec) CrossDeriv(b Vec) (res Vec, dA, dB Jac) {
	res = o.Cross(b)
	dA.Dx = Vec{0, -b.Z, b.Y}
	dA.Dy = Vec{b.Z, 0, -b.X}
	dA.Dz = Vec{-b.Y, b.X, 0}
	dB.Dx = Vec{0, o.Z, -o.Y}
	dB.Dy = Vec{-o.Z, 0, o.X}
	dB.Dz = Vec{o.Y, -o.X, 0}
	return
}
