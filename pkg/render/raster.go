package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/hselder/aquarelle/pkg/rng"
	"github.com/hselder/aquarelle/pkg/scene"
	"github.com/hselder/aquarelle/pkg/watercolor"
)

// Options control rasterization.
type Options struct {
	// LineThickness is the base grid stroke width; each line's multiplier
	// scales it. Defaults to DefaultLineThickness when zero.
	LineThickness float64
}

// DefaultLineThickness matches the original plugin's default brush size.
const DefaultLineThickness = 8.0

// Raster renders the scene onto a new RGBA image of the scene's
// dimensions.
func Raster(s *scene.Scene, opts Options) *image.RGBA {
	if opts.LineThickness <= 0 {
		opts.LineThickness = DefaultLineThickness
	}

	dc := gg.NewContext(s.Width, s.Height)
	dc.SetRGB255(int(scene.Background.R), int(scene.Background.G), int(scene.Background.B))
	dc.Clear()
	canvas := dc.Image().(*image.RGBA)

	for i, b := range s.Blocks {
		if b.TouchesBorder {
			dc.SetRGB255(int(b.Color.R), int(b.Color.G), int(b.Color.B))
			dc.DrawRectangle(float64(b.X), float64(b.Y), float64(b.W), float64(b.H))
			dc.Fill()
			continue
		}
		compositeBlock(canvas, s, i)
	}

	dc.SetRGB(0, 0, 0)
	dc.SetLineCapRound()
	for _, l := range s.Lines {
		dc.SetLineWidth(opts.LineThickness * l.Thickness)
		dc.DrawLine(l.X1, l.Y1, l.X2, l.Y2)
		dc.Stroke()
	}

	return canvas
}

// PNG renders the scene and encodes it.
func PNG(s *scene.Scene, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Raster(s, opts)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// compositeBlock paints interior block i: watercolor layers on an
// offscreen context, then blur, noise, erosion, and a final translucent
// composite onto the canvas.
func compositeBlock(canvas *image.RGBA, s *scene.Scene, i int) {
	b := s.Blocks[i]
	layers, erosions := s.Layers(i)
	if len(layers) == 0 {
		return
	}

	bc := gg.NewContext(s.Width, s.Height)
	for _, l := range layers {
		if len(l.Polygon.Verts) < 3 {
			continue
		}
		tracePolygon(bc, l.Polygon)
		bc.SetRGBA255(int(b.Color.R), int(b.Color.G), int(b.Color.B), alpha255(l.Alpha))
		if l.HasStroke {
			bc.FillPreserve()
			bc.SetRGBA255(int(b.Color.R), int(b.Color.G), int(b.Color.B), alpha255(l.StrokeAlpha))
			bc.SetLineWidth(l.StrokeWeight)
			bc.Stroke()
		} else {
			bc.Fill()
		}
	}

	layer := imaging.Clone(bc.Image())

	// Soft bleed: blur radius scales with painterliness and block size,
	// mirroring the p * min(w,h) * 0.08 schedule.
	minDim := b.W
	if b.H < minDim {
		minDim = b.H
	}
	if sigma := b.Painterliness * float64(minDim) * 0.08; sigma > 0.5 {
		layer = imaging.Blur(layer, sigma)
	}

	rs := rng.New(s.Seed).Fork("texture", i)
	if noise := b.Painterliness * 0.8 * 15; b.Painterliness > 0.1 {
		applyNoise(layer, rs, noise)
	}
	for _, e := range erosions {
		erode(layer, rs, e)
	}

	// Composite with the block's overall opacity: 75% at the border
	// falling to 55% at the center.
	op := (75 - 20*b.Painterliness) / 100
	mask := image.NewUniform(color.Alpha{A: uint8(op * 255)})
	draw.DrawMask(canvas, canvas.Bounds(), layer, image.Point{}, mask, image.Point{}, draw.Over)
}

func tracePolygon(dc *gg.Context, p watercolor.Polygon) {
	dc.NewSubPath()
	dc.MoveTo(p.Verts[0].X, p.Verts[0].Y)
	for _, v := range p.Verts[1:] {
		dc.LineTo(v.X, v.Y)
	}
	dc.ClosePath()
}

// alpha255 clamps a layer alpha to the 0-255 byte range.
func alpha255(a float64) int {
	if a < 0 {
		return 0
	}
	if a > 255 {
		return 255
	}
	return int(a)
}
