// Copyright 2016 The RotorSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rotor composes the geometry, section, load and structural
// computations into a directed acyclic dataflow graph and runs the named
// load cases of the aeroelastic analysis over it.
package rotor

import (
	"sort"
	"sync"

	"github.com/cpmech/gosl/chk"
)

// Node is one computation in the dataflow graph. Needs and Gives declare
// the state variables it consumes and produces; execution order follows
// from these declarations alone
type Node interface {
	Name() string             // unique node name
	Needs() []string          // consumed state variables
	Gives() []string          // produced state variables
	Run(s *State) (err error) // computes Gives from Needs
}

// State is the variable store shared by the nodes of one evaluation.
// Concurrent evaluations must each use their own State
type State struct {
	mu   sync.Mutex
	vals map[string]interface{}
}

// NewState returns an empty variable store
func NewState() *State {
	return &State{vals: make(map[string]interface{})}
}

// Set stores a variable
func (o *State) Set(key string, val interface{}) {
	o.mu.Lock()
	o.vals[key] = val
	o.mu.Unlock()
}

// Has tells whether a variable has been produced already
func (o *State) Has(key string) bool {
	o.mu.Lock()
	_, ok := o.vals[key]
	o.mu.Unlock()
	return ok
}

// Get returns a variable
//
//	Note: panics if the variable is absent
func (o *State) Get(key string) interface{} {
	o.mu.Lock()
	v, ok := o.vals[key]
	o.mu.Unlock()
	if !ok {
		chk.Panic("state variable %q has not been produced", key)
	}
	return v
}

// Float returns a scalar variable
func (o *State) Float(key string) float64 {
	v, ok := o.Get(key).(float64)
	if !ok {
		chk.Panic("state variable %q is not a scalar", key)
	}
	return v
}

// Slice returns an array variable
func (o *State) Slice(key string) []float64 {
	v, ok := o.Get(key).([]float64)
	if !ok {
		chk.Panic("state variable %q is not an array", key)
	}
	return v
}

// Graph is a set of nodes wired by their declared variables
type Graph struct {
	nodes []Node
}

// Add appends nodes to the graph
func (o *Graph) Add(nodes ...Node) {
	o.nodes = append(o.nodes, nodes...)
}

// Sort returns the nodes in dependency order. Variables already present in
// the state count as satisfied roots. Returns an error on unknown inputs
// or cyclic wiring
func (o *Graph) Sort(s *State) (order []Node, err error) {

	producer := make(map[string]int) // variable name => node index
	for i, n := range o.nodes {
		for _, g := range n.Gives() {
			if j, ok := producer[g]; ok {
				return nil, chk.Err("variable %q is produced by both %q and %q", g, o.nodes[j].Name(), n.Name())
			}
			producer[g] = i
		}
	}

	// dependency edges between nodes
	deps := make([][]int, len(o.nodes))
	for i, n := range o.nodes {
		seen := make(map[int]bool)
		for _, need := range n.Needs() {
			j, ok := producer[need]
			if !ok {
				if s != nil && s.Has(need) {
					continue
				}
				return nil, chk.Err("node %q needs variable %q but no node produces it", n.Name(), need)
			}
			if j != i && !seen[j] {
				deps[i] = append(deps[i], j)
				seen[j] = true
			}
		}
		sort.Ints(deps[i])
	}

	// depth-first topological sort
	const (
		white = 0
		grey  = 1
		black = 2
	)
	colour := make([]int, len(o.nodes))
	var visit func(i int) error
	visit = func(i int) error {
		colour[i] = grey
		for _, j := range deps[i] {
			switch colour[j] {
			case white:
				if err := visit(j); err != nil {
					return err
				}
			case grey:
				return chk.Err("graph has a cycle through nodes %q and %q", o.nodes[i].Name(), o.nodes[j].Name())
			}
		}
		colour[i] = black
		order = append(order, o.nodes[i])
		return nil
	}
	for i := range o.nodes {
		if colour[i] == white {
			if err = visit(i); err != nil {
				return nil, err
			}
		}
	}
	return
}

// Run executes all nodes sequentially in dependency order
func (o *Graph) Run(s *State) (err error) {
	order, err := o.Sort(s)
	if err != nil {
		return
	}
	for _, n := range order {
		if err = n.Run(s); err != nil {
			return chk.Err("node %q failed: %v", n.Name(), err)
		}
	}
	return
}

// RunParallel executes the graph level by level, running nodes whose inputs
// are all available concurrently. Independent load cases share no state
// variables and therefore run in parallel
func (o *Graph) RunParallel(s *State) (err error) {

	order, err := o.Sort(s) // validates wiring up front
	if err != nil {
		return
	}

	done := make(map[string]bool) // produced variables
	if s != nil {
		for _, n := range order {
			for _, need := range n.Needs() {
				if s.Has(need) {
					done[need] = true
				}
			}
		}
	}

	pending := order
	for len(pending) > 0 {

		// collect the ready level
		var level, rest []Node
		for _, n := range pending {
			ready := true
			for _, need := range n.Needs() {
				if !done[need] {
					ready = false
					break
				}
			}
			if ready {
				level = append(level, n)
			} else {
				rest = append(rest, n)
			}
		}
		if len(level) == 0 {
			return chk.Err("graph is stuck with %d nodes pending", len(rest))
		}

		// run the level
		errs := make([]error, len(level))
		var wg sync.WaitGroup
		for i, n := range level {
			wg.Add(1)
			go func(i int, n Node) {
				defer wg.Done()
				errs[i] = n.Run(s)
			}(i, n)
		}
		wg.Wait()
		for i, n := range level {
			if errs[i] != nil {
				return chk.Err("node %q failed: %v", n.Name(), errs[i])
			}
			for _, g := range n.Gives() {
				done[g] = true
			}
		}
		pending = rest
	}
	return
}
