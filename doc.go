// Package puppetview provides an interactive viewport for 2D puppet
// models rendered through the GoGPU ecosystem.
//
// # Overview
//
// puppetview turns raw pointer, keyboard and resize events from a host
// window into a 2D camera transform, advances an animation clock, and
// drives a per-frame submission pipeline that keeps the render surface
// in sync with the window. Asset loading, model parsing and the GPU
// draw pipeline live behind small collaborator contracts so the core
// can be exercised with fabricated events and stub collaborators.
//
// # Architecture
//
// The package is organized around three components, leaf first:
//
//   - Camera: a 2D affine transform (position, scale, rotation) plus
//     pure conversion math between screen space and world space.
//   - SceneController: consumes input events, mutates the Camera, and
//     owns the animation clock.
//   - Orchestrator: an event-driven state machine that sequences input
//     dispatch, clock update, the parameter-edit bracket, frame
//     acquisition, render submission and present, and that handles
//     resize and loop termination.
//
// Collaborators (Surface, Renderer, Puppet) are plain interfaces; the
// gpu subpackage implements them over gpucontext, and the inp
// subpackage loads and parses the binary puppet asset.
//
// # Quick Start
//
//	camera := puppetview.NewCamera()
//	camera.Scale = puppetview.V2(0.15, 0.15)
//	ctrl := puppetview.NewSceneController(camera)
//	orc := puppetview.NewOrchestrator(camera, ctrl, surface, renderer, puppet, cfg)
//
//	// Host pump: feed occurrences, honor directives.
//	d, err := orc.Step(puppetview.RedrawRequested{})
//
// # Coordinate System
//
// Screen coordinates follow standard computer graphics conventions:
// origin at the top left, X increases right, Y increases down. World
// coordinates use the same axis directions; the camera does not flip Y.
// Angles are in radians.
package puppetview

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"
)
