// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package inp

import (
	"fmt"
	"image"
	"strings"
)

// Meta is the descriptive metadata attached to a puppet.
type Meta struct {
	Name           string `json:"name"`
	Version        string `json:"version"`
	Artist         string `json:"artist,omitempty"`
	Rigger         string `json:"rigger,omitempty"`
	Copyright      string `json:"copyright,omitempty"`
	LicenseURL     string `json:"licenseURL,omitempty"`
	Contact        string `json:"contact,omitempty"`
	Reference      string `json:"reference,omitempty"`
	ThumbnailID    uint32 `json:"thumbnailId,omitempty"`
	PreservePixels bool   `json:"preservePixels,omitempty"`
}

// String formats the metadata one field per line, omitting empty ones.
func (m Meta) String() string {
	var b strings.Builder
	write := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s: %s\n", label, value)
		}
	}
	write("name", m.Name)
	write("version", m.Version)
	write("artist", m.Artist)
	write("rigger", m.Rigger)
	write("copyright", m.Copyright)
	write("license", m.LicenseURL)
	write("contact", m.Contact)
	write("reference", m.Reference)
	return strings.TrimSuffix(b.String(), "\n")
}

// Physics holds the puppet-level physics constants.
type Physics struct {
	PixelsPerMeter float64 `json:"pixelsPerMeter"`
	Gravity        float64 `json:"gravity"`
}

// Transform is a node-local transform: translation, per-axis rotation
// in radians, and scale.
type Transform struct {
	Trans [3]float64 `json:"trans"`
	Rot   [3]float64 `json:"rot"`
	Scale [2]float64 `json:"scale"`
}

// Node is one element of the puppet scene graph. Part nodes reference
// entries in the model's texture table by index.
type Node struct {
	UUID      uint32    `json:"uuid"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Enabled   bool      `json:"enabled"`
	ZSort     float64   `json:"zsort"`
	Transform Transform `json:"transform"`
	Textures  []int     `json:"textures,omitempty"`
	Opacity   float64   `json:"opacity,omitempty"`
	Children  []Node    `json:"children,omitempty"`
}

// Walk visits the node and all descendants depth-first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for i := range n.Children {
		n.Children[i].Walk(fn)
	}
}

// Param is a named animation parameter with its value range.
type Param struct {
	UUID     uint32     `json:"uuid"`
	Name     string     `json:"name"`
	IsVec2   bool       `json:"is_vec2"`
	Min      [2]float64 `json:"min"`
	Max      [2]float64 `json:"max"`
	Defaults [2]float64 `json:"defaults"`
}

// VendorData is an opaque extension blob attached to a model. The
// viewer does not interpret it.
type VendorData struct {
	Name    string
	Payload []byte
}

// String identifies the vendor section without dumping its payload.
func (v VendorData) String() string {
	return fmt.Sprintf("%s (%d bytes)", v.Name, len(v.Payload))
}

// TextureEncoding identifies how a texture slot is encoded on disk.
type TextureEncoding uint8

const (
	// TextureEncodingPNG is decoded at parse time.
	TextureEncodingPNG TextureEncoding = iota
	TextureEncodingTGA
	TextureEncodingBC7
)

// String returns the encoding name.
func (e TextureEncoding) String() string {
	switch e {
	case TextureEncodingPNG:
		return "png"
	case TextureEncodingTGA:
		return "tga"
	case TextureEncodingBC7:
		return "bc7"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(e))
	}
}

// Texture is one entry of the model's texture table. PNG textures are
// decoded into Image; other encodings keep only the raw bytes and are
// uploaded or converted by the renderer.
type Texture struct {
	Encoding TextureEncoding
	Data     []byte
	Image    *image.RGBA
}

// Size returns the pixel dimensions of a decoded texture, or (0, 0) if
// the texture was not decoded.
func (t Texture) Size() (width, height int) {
	if t.Image == nil {
		return 0, 0
	}
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Model is a fully parsed INP asset: the puppet scene graph, its
// texture table and any vendor extensions.
type Model struct {
	Puppet   *Puppet
	Textures []Texture
	Vendors  []VendorData
}
