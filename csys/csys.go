// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csys implements the coordinate-system algebra used throughout the
// rotor analyses. A Vec holds the components of a physical vector resolved in
// one of the named frames below; each transform rotates the components into
// the adjacent frame of the chain
//
//	inertial -- wind -- yaw -- hub -- azimuth -- blade -- airfoil -- profile
//
// following Hansen's conventions: x downwind, z along the blade pitch axis
// (vertically up in the yaw frame), y completing the right-handed triad.
// All angles are given in degrees.
package csys

import "math"

// Vec holds the components of a vector resolved in one frame of the chain
type Vec struct {
	X float64 // component along local x-axis
	Y float64 // component along local y-axis
	Z float64 // component along local z-axis
}

// Jac holds the partial derivatives of one transform. Dx, Dy and Dz are the
// derivatives of the output components with respect to the input components;
// Dang is the derivative with respect to the rotation angle, per degree
type Jac struct {
	Dx   Vec // d{out} / d{in.X}
	Dy   Vec // d{out} / d{in.Y}
	Dz   Vec // d{out} / d{in.Z}
	Dang Vec // d{out} / d{angle}
}

// sincosd computes sine and cosine of an angle given in degrees
func sincosd(angdeg float64) (s, c float64) {
	a := angdeg * math.Pi / 180.0
	return math.Sin(a), math.Cos(a)
}

// WindToInertial rotates from the wind-aligned frame to the inertial frame.
// beta is the wind direction
func (o Vec) WindToInertial(beta float64) Vec {
	s, c := sincosd(beta)
	return Vec{o.X*c - o.Y*s, o.X*s + o.Y*c, o.Z}
}

// InertialToWind rotates from the inertial frame to the wind-aligned frame
func (o Vec) InertialToWind(beta float64) Vec {
	s, c := sincosd(beta)
	return Vec{o.X*c + o.Y*s, -o.X*s + o.Y*c, o.Z}
}

// YawToWind rotates from the yaw-aligned frame to the wind-aligned frame.
// psi is the yaw error
func (o Vec) YawToWind(psi float64) Vec {
	s, c := sincosd(psi)
	return Vec{o.X*c - o.Y*s, o.X*s + o.Y*c, o.Z}
}

// WindToYaw rotates from the wind-aligned frame to the yaw-aligned frame
func (o Vec) WindToYaw(psi float64) Vec {
	s, c := sincosd(psi)
	return Vec{o.X*c + o.Y*s, -o.X*s + o.Y*c, o.Z}
}

// HubToYaw rotates from the hub-aligned frame to the yaw-aligned frame.
// tilt is the shaft tilt angle
func (o Vec) HubToYaw(tilt float64) Vec {
	s, c := sincosd(tilt)
	return Vec{o.X*c + o.Z*s, o.Y, -o.X*s + o.Z*c}
}

// YawToHub rotates from the yaw-aligned frame to the hub-aligned frame
func (o Vec) YawToHub(tilt float64) Vec {
	s, c := sincosd(tilt)
	return Vec{o.X*c - o.Z*s, o.Y, o.X*s + o.Z*c}
}

// AzimuthToHub rotates from the azimuth-aligned frame to the hub-aligned
// frame. azimuth is zero with the blade pointing up
func (o Vec) AzimuthToHub(azimuth float64) Vec {
	s, c := sincosd(azimuth)
	return Vec{o.X, o.Y*c - o.Z*s, o.Y*s + o.Z*c}
}

// HubToAzimuth rotates from the hub-aligned frame to the azimuth-aligned frame
func (o Vec) HubToAzimuth(azimuth float64) Vec {
	s, c := sincosd(azimuth)
	return Vec{o.X, o.Y*c + o.Z*s, -o.Y*s + o.Z*c}
}

// AzimuthToBlade rotates from the azimuth-aligned frame to the blade-aligned
// frame. cone is the local total cone angle
func (o Vec) AzimuthToBlade(cone float64) Vec {
	s, c := sincosd(cone)
	return Vec{o.X*c - o.Z*s, o.Y, o.X*s + o.Z*c}
}

// BladeToAzimuth rotates from the blade-aligned frame to the azimuth-aligned
// frame
func (o Vec) BladeToAzimuth(cone float64) Vec {
	s, c := sincosd(cone)
	return Vec{o.X*c + o.Z*s, o.Y, -o.X*s + o.Z*c}
}

// AirfoilToBlade rotates from the airfoil-aligned frame to the blade-aligned
// frame. theta is the section twist plus the pitch angle
func (o Vec) AirfoilToBlade(theta float64) Vec {
	s, c := sincosd(theta)
	return Vec{o.X*c - o.Y*s, o.X*s + o.Y*c, o.Z}
}

// BladeToAirfoil rotates from the blade-aligned frame to the airfoil-aligned
// frame
func (o Vec) BladeToAirfoil(theta float64) Vec {
	s, c := sincosd(theta)
	return Vec{o.X*c + o.Y*s, -o.X*s + o.Y*c, o.Z}
}

// AirfoilToProfile swaps axes from the airfoil-aligned frame to the profile
// frame aligned with the chord line
func (o Vec) AirfoilToProfile() Vec {
	return Vec{-o.Y, o.X, o.Z}
}

// ProfileToAirfoil swaps axes from the profile frame back to the
// airfoil-aligned frame
func (o Vec) ProfileToAirfoil() Vec {
	return Vec{o.Y, -o.X, o.Z}
}

// Cross computes the cross product o times b, both resolved in the same frame
func (o Vec) Cross(b Vec) Vec {
	return Vec{
		o.Y*b.Z - o.Z*b.Y,
		o.Z*b.X - o.X*b.Z,
		o.X*b.Y - o.Y*b.X,
	}
}

// Add returns the component-wise sum of two vectors in the same frame
func (o Vec) Add(b Vec) Vec {
	return Vec{o.X + b.X, o.Y + b.Y, o.Z + b.Z}
}

// Norm returns the Euclidean norm
func (o Vec) Norm() float64 {
	return math.Sqrt(o.X*o.X + o.Y*o.Y + o.Z*o.Z)
}
