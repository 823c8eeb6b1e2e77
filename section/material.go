// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package section models the composite cross sections of the blade: airfoil
// profiles, orthotropic materials, laminate stacks per chordwise sector, the
// chord-driven resizing of ply thicknesses, and the extraction of beam
// stiffness and inertia properties per station.
package section

import "github.com/cpmech/gosl/chk"

// Orthotropic holds the in-plane engineering constants of one ply material
type Orthotropic struct {
	Name string  `json:"name"` // material name
	E1   float64 `json:"e1"`   // modulus along the fibres [Pa]
	E2   float64 `json:"e2"`   // modulus across the fibres [Pa]
	G12  float64 `json:"g12"`  // in-plane shear modulus [Pa]
	Nu12 float64 `json:"nu12"` // major Poisson ratio
	Rho  float64 `json:"rho"`  // density [kg/m3]
}

// Check returns an error for physically invalid constants
func (o *Orthotropic) Check() error {
	if o.E1 <= 0 || o.E2 <= 0 || o.G12 <= 0 || o.Rho <= 0 {
		return chk.Err("material %q: E1, E2, G12 and rho must be positive", o.Name)
	}
	if o.Nu12 <= 0 || o.Nu12 >= 1 {
		return chk.Err("material %q: nu12 = %g is outside (0,1)", o.Name, o.Nu12)
	}
	return nil
}
