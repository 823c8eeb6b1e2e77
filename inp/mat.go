// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/Ben-Mertz/RotorSE/section"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// MatDb implements a database of composite materials
type MatDb struct {
	Materials []*section.Orthotropic `json:"materials"` // all materials
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, err
	}

	// check
	if len(mdb.Materials) < 1 {
		return nil, chk.Err("materials file %q has no materials", fn)
	}
	for i, m := range mdb.Materials {
		if err = m.Check(); err != nil {
			return nil, chk.Err("material %d (%q) is invalid: %v", i, m.Name, err)
		}
	}
	return
}

// Get returns a material
//
//	Note: returns nil if not found
func (o *MatDb) Get(name string) *section.Orthotropic {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// String outputs all materials
func (o *MatDb) String() string {
	l := "{\n  \"materials\" : [\n"
	for i, m := range o.Materials {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    {\"name\":%q, \"e1\":%g, \"e2\":%g, \"g12\":%g, \"nu12\":%g, \"rho\":%g}",
			m.Name, m.E1, m.E2, m.G12, m.Nu12, m.Rho)
	}
	l += "\n  ]\n}"
	return l
}
