// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// Capture writes the last presented frame to path. The extension picks the
// encoding: .webp via nativewebp, anything else as PNG. When maxDim is
// positive and the framebuffer is larger, the image is first downscaled to
// fit with CatmullRom filtering.
func (s *Surface) Capture(path string, maxDim int) error {
	img := s.Snapshot()
	if maxDim > 0 {
		img = shrinkToFit(img, maxDim)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("headless: capture: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("headless: capture encode: %w", err)
	}
	return f.Close()
}

// shrinkToFit scales img down so both dimensions fit in maxDim, keeping
// the aspect ratio. Images already small enough come back unchanged.
func shrinkToFit(img *image.RGBA, maxDim int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}
	scale := float64(maxDim) / float64(w)
	if h > w {
		scale = float64(maxDim) / float64(h)
	}
	dw := int(float64(w)*scale + 0.5)
	dh := int(float64(h)*scale + 0.5)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
