// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu implements the puppetview collaborator contracts over
// the gpucontext integration surface.
//
// The host application (gogpu.App) owns the window, device, queue and
// swapchain. This package receives the per-frame draw context from the
// host, uploads puppet textures through it on first use, and draws the
// puppet's parts positioned by the camera's view matrix. It does not
// create a GPU device of its own.
//
// Texture handles are carried as opaque values between the host's
// creator and drawer, so the renderer can be exercised in tests with a
// fake DrawTarget and no GPU.
package gpu
