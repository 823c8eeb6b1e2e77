// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rotor

import (
	"github.com/cpmech/gosl/chk"
)

// TurbineClass is the IEC 61400-1 wind class
type TurbineClass int

// turbine classes
const (
	ClassI TurbineClass = iota
	ClassII
	ClassIII
	ClassIV
)

// ParseTurbineClass converts the class letter
func ParseTurbineClass(name string) (TurbineClass, error) {
	switch name {
	case "I":
		return ClassI, nil
	case "II":
		return ClassII, nil
	case "III":
		return ClassIII, nil
	case "IV":
		return ClassIV, nil
	}
	return 0, chk.Err("unknown turbine class %q; options are \"I\", \"II\", \"III\" and \"IV\"", name)
}

func (o TurbineClass) String() string {
	switch o {
	case ClassI:
		return "I"
	case ClassII:
		return "II"
	case ClassIII:
		return "III"
	case ClassIV:
		return "IV"
	}
	return "unknown"
}

// VRef returns the reference wind speed of the class [m/s]
func (o TurbineClass) VRef() float64 {
	switch o {
	case ClassI:
		return 50.0
	case ClassII:
		return 42.5
	case ClassIII:
		return 37.5
	case ClassIV:
		return 30.0
	}
	chk.Panic("turbine class %d is invalid", int(o))
	return 0
}

// VMean returns the annual mean wind speed of the class [m/s]
func (o TurbineClass) VMean() float64 { return 0.2 * o.VRef() }

// VExtreme returns the 50-year extreme wind speed of the class [m/s]
func (o TurbineClass) VExtreme() float64 { return 1.4 * o.VRef() }

// TurbulenceCat is the IEC turbulence category
type TurbulenceCat int

// turbulence categories
const (
	CatA TurbulenceCat = iota
	CatB
	CatC
)

// ParseTurbulenceCat converts the category letter
func ParseTurbulenceCat(name string) (TurbulenceCat, error) {
	switch name {
	case "A":
		return CatA, nil
	case "B":
		return CatB, nil
	case "C":
		return CatC, nil
	}
	return 0, chk.Err("unknown turbulence category %q; options are \"A\", \"B\" and \"C\"", name)
}

func (o TurbulenceCat) String() string {
	switch o {
	case CatA:
		return "A"
	case CatB:
		return "B"
	case CatC:
		return "C"
	}
	return "unknown"
}

// IRef returns the reference turbulence intensity of the category
func (o TurbulenceCat) IRef() float64 {
	switch o {
	case CatA:
		return 0.16
	case CatB:
		return 0.14
	case CatC:
		return 0.12
	}
	chk.Panic("turbulence category %d is invalid", int(o))
	return 0
}

// GustETM evaluates the IEC extreme turbulence model: the standard
// deviation at hub height and the gust speed nstd standard deviations
// above the hub wind speed
func GustETM(cat TurbulenceCat, vmean, vhub, nstd float64) (sigma, vgust float64) {
	c := 2.0
	sigma = c * cat.IRef() * (0.072*(vmean/c+3.0)*(vhub/c-4.0) + 10.0)
	vgust = vhub + nstd*sigma
	return
}
