// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package inp

import (
	"errors"
	"testing"

	"github.com/gogpu/puppetview"
)

func testPuppet() *Puppet {
	params := []Param{
		{
			UUID: 10, Name: "Head:: Yaw-Pitch", IsVec2: true,
			Min: [2]float64{-1, -1}, Max: [2]float64{1, 1},
			Defaults: [2]float64{0, 0},
		},
		{
			UUID: 11, Name: "Eye:: Blink", IsVec2: false,
			Min: [2]float64{0, 0}, Max: [2]float64{1, 0},
			Defaults: [2]float64{1, 0},
		},
	}
	return NewPuppet(Meta{Name: "Aka"}, Physics{}, Node{Name: "Root"}, params)
}

func TestPuppet_Defaults(t *testing.T) {
	p := testPuppet()
	if v, ok := p.ParamValue("Eye:: Blink"); !ok || !v.Approx(puppetview.V2(1, 0), 0) {
		t.Errorf("default = %v, want (1,0)", v)
	}
}

func TestPuppet_ParamBracket(t *testing.T) {
	p := testPuppet()

	// Setting outside a bracket is rejected.
	err := p.SetParam("Head:: Yaw-Pitch", puppetview.V2(0.5, 0.5))
	if !errors.Is(err, ErrNoParamEdit) {
		t.Fatalf("SetParam outside bracket = %v, want ErrNoParamEdit", err)
	}

	p.BeginParams()
	if err := p.SetParam("Head:: Yaw-Pitch", puppetview.V2(0.5, -0.25)); err != nil {
		t.Fatalf("SetParam: %v", err)
	}

	// Staged values are not visible until the bracket closes.
	if v, _ := p.ParamValue("Head:: Yaw-Pitch"); !v.Approx(puppetview.V2(0, 0), 0) {
		t.Errorf("value applied before EndParams: %v", v)
	}

	p.EndParams()
	if v, _ := p.ParamValue("Head:: Yaw-Pitch"); !v.Approx(puppetview.V2(0.5, -0.25), 1e-12) {
		t.Errorf("value = %v, want (0.5, -0.25)", v)
	}
}

func TestPuppet_EndParamsClamps(t *testing.T) {
	p := testPuppet()
	p.BeginParams()
	if err := p.SetParam("Head:: Yaw-Pitch", puppetview.V2(5, -5)); err != nil {
		t.Fatalf("SetParam: %v", err)
	}
	p.EndParams()

	if v, _ := p.ParamValue("Head:: Yaw-Pitch"); !v.Approx(puppetview.V2(1, -1), 1e-12) {
		t.Errorf("clamped value = %v, want (1, -1)", v)
	}
}

func TestPuppet_UnknownParam(t *testing.T) {
	p := testPuppet()
	p.BeginParams()
	defer p.EndParams()

	err := p.SetParam("No Such Param", puppetview.V2(0, 0))
	if !errors.Is(err, ErrUnknownParam) {
		t.Errorf("SetParam = %v, want ErrUnknownParam", err)
	}
}

func TestPuppet_ReopenedBracketDiscardsStaged(t *testing.T) {
	p := testPuppet()
	p.BeginParams()
	_ = p.SetParam("Head:: Yaw-Pitch", puppetview.V2(0.9, 0.9))
	// Re-opening without closing abandons the staged edit.
	p.BeginParams()
	p.EndParams()

	if v, _ := p.ParamValue("Head:: Yaw-Pitch"); !v.Approx(puppetview.V2(0, 0), 0) {
		t.Errorf("abandoned edit leaked: %v", v)
	}
}

func TestPuppet_EmptyBracketIsNoOp(t *testing.T) {
	p := testPuppet()
	// Per-frame callers bracket even with nothing to set.
	for i := 0; i < 3; i++ {
		p.BeginParams()
		p.EndParams()
	}
	p.EndParams() // without an open bracket

	if v, _ := p.ParamValue("Eye:: Blink"); !v.Approx(puppetview.V2(1, 0), 0) {
		t.Errorf("empty brackets changed state: %v", v)
	}
}
