// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package inp

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/puppetview"
)

// Parameter-edit errors.
var (
	// ErrNoParamEdit is returned when SetParam is called outside a
	// BeginParams/EndParams bracket.
	ErrNoParamEdit = errors.New("inp: SetParam outside parameter-edit bracket")

	// ErrUnknownParam is returned for parameter names the puppet does
	// not define.
	ErrUnknownParam = errors.New("inp: unknown parameter")
)

// Puppet is the parsed scene graph plus its animation parameters.
//
// Parameter mutation is bracketed: BeginParams opens an edit window,
// SetParam stages values, and EndParams clamps the staged values into
// each parameter's range and applies them. Applying is the point where
// dependent state recomputes, so per-frame callers bracket even when
// they set nothing.
//
// Puppet is not safe for concurrent use; the viewport drives it from a
// single event queue.
type Puppet struct {
	Meta    Meta
	Physics Physics
	Root    Node
	Params  []Param

	byName  map[string]*Param
	values  map[string]puppetview.Vec2
	staged  map[string]puppetview.Vec2
	editing bool
}

var _ puppetview.Puppet = (*Puppet)(nil)

// NewPuppet indexes the parameter table and seeds default values.
// Parse calls this with the decoded payload; tests and embedders can
// construct puppets directly.
func NewPuppet(meta Meta, physics Physics, root Node, params []Param) *Puppet {
	p := &Puppet{
		Meta:    meta,
		Physics: physics,
		Root:    root,
		Params:  params,
		byName:  make(map[string]*Param, len(params)),
		values:  make(map[string]puppetview.Vec2, len(params)),
	}
	for i := range params {
		prm := &params[i]
		p.byName[prm.Name] = prm
		p.values[prm.Name] = puppetview.V2(prm.Defaults[0], prm.Defaults[1])
	}
	return p
}

// BeginParams opens a parameter-edit bracket. Staged values from an
// abandoned bracket are discarded.
func (p *Puppet) BeginParams() {
	p.editing = true
	p.staged = make(map[string]puppetview.Vec2)
}

// SetParam stages a value for a named parameter. The value is clamped
// into the parameter's range when the bracket closes, not here.
func (p *Puppet) SetParam(name string, value puppetview.Vec2) error {
	if !p.editing {
		return fmt.Errorf("%w: %q", ErrNoParamEdit, name)
	}
	if _, ok := p.byName[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}
	p.staged[name] = value
	return nil
}

// EndParams closes the bracket: staged values are clamped into their
// parameter ranges and applied. Calling EndParams without an open
// bracket is a no-op.
func (p *Puppet) EndParams() {
	if !p.editing {
		return
	}
	for name, v := range p.staged {
		prm := p.byName[name]
		p.values[name] = puppetview.V2(
			clamp(v.X, prm.Min[0], prm.Max[0]),
			clamp(v.Y, prm.Min[1], prm.Max[1]),
		)
	}
	p.staged = nil
	p.editing = false
}

// ParamValue returns the applied value of a named parameter.
func (p *Puppet) ParamValue(name string) (puppetview.Vec2, bool) {
	v, ok := p.values[name]
	return v, ok
}

// NodeCount returns the number of nodes in the scene graph.
func (p *Puppet) NodeCount() int {
	n := 0
	p.Root.Walk(func(*Node) { n++ })
	return n
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
