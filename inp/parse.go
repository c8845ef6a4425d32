// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package inp

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/gogpu/puppetview"
)

// Parse errors.
var (
	// ErrBadMagic is returned when the input does not start with the
	// INP magic bytes.
	ErrBadMagic = errors.New("inp: bad magic, not an INP file")

	// ErrMalformed is returned for structurally invalid files:
	// truncated sections, impossible lengths, missing texture table.
	ErrMalformed = errors.New("inp: malformed file")
)

// INP container section markers. All integers are big-endian.
const (
	magic         = "TRNSRTS\x00"
	texSection    = "TEX_SECT"
	extSection    = "EXT_SECT"
	maxSectionLen = 1 << 30 // sanity bound against corrupt length fields
)

// puppetJSON mirrors the JSON payload layout inside the container.
type puppetJSON struct {
	Meta    Meta    `json:"meta"`
	Physics Physics `json:"physics"`
	Nodes   Node    `json:"nodes"`
	Param   []Param `json:"param"`
}

// Parse reads a complete INP asset: magic, JSON puppet payload,
// texture table, and an optional vendor-data table. PNG textures are
// decoded to RGBA images; TGA and BC7 slots keep their raw bytes for
// the renderer to handle. Malformed input yields an error wrapping
// ErrBadMagic or ErrMalformed; Parse never panics on bad bytes.
func Parse(r io.Reader) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("inp: read: %w", err)
	}
	c := &cursor{data: data}

	head, err := c.take(len(magic))
	if err != nil || string(head) != magic {
		return nil, ErrBadMagic
	}

	payload, err := c.takeBlock("puppet payload")
	if err != nil {
		return nil, err
	}
	var pj puppetJSON
	if err := json.Unmarshal(payload, &pj); err != nil {
		return nil, fmt.Errorf("%w: puppet payload: %v", ErrMalformed, err)
	}

	textures, err := parseTextures(c)
	if err != nil {
		return nil, err
	}

	vendors, err := parseVendors(c)
	if err != nil {
		return nil, err
	}

	puppetview.Logger().Debug("parsed INP model",
		"name", pj.Meta.Name,
		"textures", len(textures),
		"vendors", len(vendors))

	return &Model{
		Puppet:   NewPuppet(pj.Meta, pj.Physics, pj.Nodes, pj.Param),
		Textures: textures,
		Vendors:  vendors,
	}, nil
}

// parseTextures reads the mandatory TEX_SECT table.
func parseTextures(c *cursor) ([]Texture, error) {
	marker, err := c.take(len(texSection))
	if err != nil || string(marker) != texSection {
		return nil, fmt.Errorf("%w: missing texture section", ErrMalformed)
	}
	count, err := c.takeU32("texture count")
	if err != nil {
		return nil, err
	}

	textures := make([]Texture, 0, count)
	for i := uint32(0); i < count; i++ {
		length, err := c.takeU32("texture length")
		if err != nil {
			return nil, err
		}
		enc, err := c.takeU8("texture encoding")
		if err != nil {
			return nil, err
		}
		raw, err := c.take(int(length))
		if err != nil {
			return nil, fmt.Errorf("%w: texture %d truncated", ErrMalformed, i)
		}

		tex := Texture{Encoding: TextureEncoding(enc), Data: raw}
		if tex.Encoding == TextureEncodingPNG {
			img, err := png.Decode(bytes.NewReader(raw))
			if err != nil {
				return nil, fmt.Errorf("%w: texture %d: %v", ErrMalformed, i, err)
			}
			tex.Image = toRGBA(img)
		} else {
			puppetview.Logger().Debug("texture kept encoded",
				"index", i, "encoding", tex.Encoding.String())
		}
		textures = append(textures, tex)
	}
	return textures, nil
}

// parseVendors reads the optional EXT_SECT table. No table at all is
// valid; a present marker followed by garbage is not.
func parseVendors(c *cursor) ([]VendorData, error) {
	if c.remaining() == 0 {
		return nil, nil
	}
	marker, err := c.take(len(extSection))
	if err != nil || string(marker) != extSection {
		return nil, fmt.Errorf("%w: trailing bytes are not a vendor section", ErrMalformed)
	}
	count, err := c.takeU32("vendor count")
	if err != nil {
		return nil, err
	}

	vendors := make([]VendorData, 0, count)
	for i := uint32(0); i < count; i++ {
		name, err := c.takeBlock("vendor name")
		if err != nil {
			return nil, err
		}
		payload, err := c.takeBlock("vendor payload")
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, VendorData{Name: string(name), Payload: payload})
	}
	return vendors, nil
}

// toRGBA converts any decoded image to *image.RGBA without copying
// when it already is one.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// cursor is a bounds-checked reader over the raw file bytes.
type cursor struct {
	data []byte
	off  int
}

func (c *cursor) remaining() int { return len(c.data) - c.off }

func (c *cursor) take(n int) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, fmt.Errorf("%w: unexpected end of file", ErrMalformed)
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, nil
}

func (c *cursor) takeU32(what string) (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, fmt.Errorf("%w: truncated %s", ErrMalformed, what)
	}
	return binary.BigEndian.Uint32(b), nil
}

func (c *cursor) takeU8(what string) (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, fmt.Errorf("%w: truncated %s", ErrMalformed, what)
	}
	return b[0], nil
}

// takeBlock reads a u32 length prefix and that many bytes.
func (c *cursor) takeBlock(what string) ([]byte, error) {
	length, err := c.takeU32(what + " length")
	if err != nil {
		return nil, err
	}
	if length > maxSectionLen {
		return nil, fmt.Errorf("%w: %s length %d out of range", ErrMalformed, what, length)
	}
	b, err := c.take(int(length))
	if err != nil {
		return nil, fmt.Errorf("%w: truncated %s", ErrMalformed, what)
	}
	return b, nil
}
