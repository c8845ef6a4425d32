// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/puppetview"
	"github.com/gogpu/puppetview/inp"
)

// Package errors.
var (
	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("gpu: nil DeviceProvider")

	// ErrNilModel is returned when the renderer is constructed without
	// a model.
	ErrNilModel = errors.New("gpu: nil model")

	// ErrInvalidFrame is returned when Render receives a frame that was
	// not produced by this package's surface.
	ErrInvalidFrame = errors.New("gpu: frame does not carry a draw target")

	// ErrNoTextureCreator is returned when the host draw context cannot
	// create textures.
	ErrNoTextureCreator = errors.New("gpu: host draw context has no texture creator")
)

// maxTextureDim is the largest texture edge uploaded as-is. Larger
// puppet textures are downscaled before upload.
const maxTextureDim = 8192

// DrawTarget is the subset of the host draw context the renderer
// needs: texture creation from raw RGBA pixels and positioned texture
// draws. Texture handles are opaque to the renderer.
type DrawTarget interface {
	CreateTexture(width, height int, rgba []byte) (any, error)
	DrawTexture(tex any, x, y float32) error
}

// hostDrawTarget adapts a gpucontext.TextureDrawer to DrawTarget.
type hostDrawTarget struct {
	dc gpucontext.TextureDrawer
}

// NewHostDrawTarget wraps the host's draw context, typically obtained
// from gogpu.Context.AsTextureDrawer inside the draw callback.
func NewHostDrawTarget(dc gpucontext.TextureDrawer) DrawTarget {
	return hostDrawTarget{dc: dc}
}

func (h hostDrawTarget) CreateTexture(width, height int, rgba []byte) (any, error) {
	creator := h.dc.TextureCreator()
	if creator == nil {
		return nil, ErrNoTextureCreator
	}
	tex, err := creator.NewTextureFromRGBA(width, height, rgba)
	if err != nil {
		return nil, fmt.Errorf("gpu: NewTextureFromRGBA failed: %w", err)
	}
	// Puppet textures are premultiplied on upload paths that support it
	// so the host picks the matching blend pipeline.
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}
	return tex, nil
}

func (h hostDrawTarget) DrawTexture(tex any, x, y float32) error {
	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return fmt.Errorf("%w: %T", ErrInvalidFrame, tex)
	}
	return h.dc.DrawTexture(gpuTex, x, y)
}

// drawTargeter is implemented by frames that carry a DrawTarget.
type drawTargeter interface {
	Target() DrawTarget
}

// part is one drawable scene-graph node flattened to world space.
type part struct {
	texture int
	world   puppetview.Vec2
	zsort   float64
}

// Renderer draws a parsed puppet model into host frames. It implements
// the puppetview.Renderer contract.
//
// The renderer owns the camera, mirroring the render pipeline it
// stands in for: the controller mutates the camera, the renderer reads
// it at submission time.
type Renderer struct {
	provider gpucontext.DeviceProvider
	format   gputypes.TextureFormat
	model    *inp.Model
	camera   *puppetview.Camera

	width  uint32
	height uint32

	// textures holds uploaded handles parallel to the model's texture
	// table; nil entries were skipped (undecoded encodings).
	textures []any
	uploaded bool

	parts []part
}

var _ puppetview.Renderer = (*Renderer)(nil)

// NewRenderer constructs a renderer for the model against the device
// and queue held by provider. Texture upload is deferred to the first
// Render call, when a draw target exists.
func NewRenderer(provider gpucontext.DeviceProvider, format gputypes.TextureFormat,
	model *inp.Model, width, height uint32) (*Renderer, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if model == nil || model.Puppet == nil {
		return nil, ErrNilModel
	}

	r := &Renderer{
		provider: provider,
		format:   format,
		model:    model,
		camera:   puppetview.NewCamera(),
		width:    width,
		height:   height,
	}
	r.parts = flattenParts(&model.Puppet.Root)

	puppetview.Logger().Debug("renderer constructed",
		"parts", len(r.parts),
		"textures", len(model.Textures),
		"viewport", fmt.Sprintf("%dx%d", width, height))
	return r, nil
}

// Camera returns the camera read at render submission. Callers mutate
// it through a SceneController.
func (r *Renderer) Camera() *puppetview.Camera {
	return r.camera
}

// Resize updates the renderer's internal viewport.
func (r *Renderer) Resize(width, height uint32) {
	r.width = width
	r.height = height
}

// Render draws the puppet into the frame, back to front. The puppet
// argument is the same model the renderer was constructed with; its
// applied parameters will drive deformation once deformers land, so
// the contract already passes it through.
func (r *Renderer) Render(_ puppetview.Puppet, f puppetview.Frame) error {
	dt, ok := f.(drawTargeter)
	if !ok {
		return fmt.Errorf("%w: %T", ErrInvalidFrame, f)
	}
	target := dt.Target()

	if err := r.ensureTextures(target); err != nil {
		return err
	}

	view := r.camera.ViewMatrix()
	center := puppetview.V2(float64(r.width)/2, float64(r.height)/2)

	for _, p := range r.parts {
		if p.texture < 0 || p.texture >= len(r.textures) {
			continue
		}
		tex := r.textures[p.texture]
		if tex == nil {
			continue
		}

		// Parts are anchored at their center.
		w, h := r.model.Textures[p.texture].Size()
		pos := center.Add(view.Transform(p.world))
		x := float32(pos.X - float64(w)/2)
		y := float32(pos.Y - float64(h)/2)
		if err := target.DrawTexture(tex, x, y); err != nil {
			return fmt.Errorf("gpu: draw part: %w", err)
		}
	}
	return nil
}

// ensureTextures uploads decoded model textures on first use.
func (r *Renderer) ensureTextures(target DrawTarget) error {
	if r.uploaded {
		return nil
	}
	r.textures = make([]any, len(r.model.Textures))
	for i, t := range r.model.Textures {
		if t.Image == nil {
			puppetview.Logger().Debug("skipping undecoded texture",
				"index", i, "encoding", t.Encoding.String())
			continue
		}
		img := capTextureSize(t.Image)
		b := img.Bounds()
		tex, err := target.CreateTexture(b.Dx(), b.Dy(), img.Pix)
		if err != nil {
			return fmt.Errorf("gpu: upload texture %d: %w", i, err)
		}
		r.textures[i] = tex
	}
	r.uploaded = true
	return nil
}

// capTextureSize downscales an image whose longest edge exceeds
// maxTextureDim, preserving aspect ratio.
func capTextureSize(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= maxTextureDim {
		return img
	}

	scale := float64(maxTextureDim) / float64(longest)
	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)

	puppetview.Logger().Debug("texture downscaled",
		"from", fmt.Sprintf("%dx%d", w, h),
		"to", fmt.Sprintf("%dx%d", dw, dh))
	return dst
}

// flattenParts walks the scene graph accumulating translations and
// collects enabled Part nodes, sorted back to front by zsort.
func flattenParts(root *inp.Node) []part {
	var parts []part
	var walk func(n *inp.Node, parent puppetview.Vec2)
	walk = func(n *inp.Node, parent puppetview.Vec2) {
		if !n.Enabled && n.Name != root.Name {
			return
		}
		world := parent.Add(puppetview.V2(n.Transform.Trans[0], n.Transform.Trans[1]))
		if n.Type == "Part" && len(n.Textures) > 0 {
			parts = append(parts, part{texture: n.Textures[0], world: world, zsort: n.ZSort})
		}
		for i := range n.Children {
			walk(&n.Children[i], world)
		}
	}
	walk(root, puppetview.Vec2{})

	sort.SliceStable(parts, func(i, j int) bool {
		return parts[i].zsort > parts[j].zsort
	})
	return parts
}
