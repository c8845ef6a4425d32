// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package inp loads and parses binary puppet assets in the INP
// container format.
//
// An INP file is a magic header followed by a JSON puppet payload, a
// texture section and an optional vendor-data section. Parse produces
// a Model holding the puppet scene graph, its decoded textures and any
// opaque vendor extensions. Fetch retrieves an asset over HTTP; both
// are startup-phase operations invoked exactly once per viewer run.
//
// The Puppet type implements the puppetview.Puppet contract: parameter
// values may only be staged inside a BeginParams/EndParams bracket, and
// EndParams is the point at which dependent state is recomputed.
package inp
