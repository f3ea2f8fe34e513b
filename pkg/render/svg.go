package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/hselder/aquarelle/pkg/scene"
)

// SVG writes a flat vector preview of the scene to w. Border blocks are
// plain rectangles; interior blocks get a painterliness-rounded rectangle
// plus their watercolor layer polygons at layer opacity. This is a
// preview, not the full raster look: no blur, noise, or erosion.
func SVG(w io.Writer, s *scene.Scene, opts Options) error {
	if opts.LineThickness <= 0 {
		opts.LineThickness = DefaultLineThickness
	}

	canvas := svg.New(w)
	canvas.Start(s.Width, s.Height)
	canvas.Rect(0, 0, s.Width, s.Height, fill(scene.Background)+";stroke:none")

	for i, b := range s.Blocks {
		if b.TouchesBorder {
			canvas.Rect(b.X, b.Y, b.W, b.H, fill(b.Color)+";stroke:none")
			continue
		}

		minDim := b.W
		if b.H < minDim {
			minDim = b.H
		}
		radius := int(b.Painterliness * float64(minDim) / 2)
		opacity := (75 - 20*b.Painterliness) / 100
		canvas.Roundrect(b.X, b.Y, b.W, b.H, radius, radius,
			fmt.Sprintf("%s;fill-opacity:%.3f;stroke:none", fill(b.Color), opacity))

		layers, _ := s.Layers(i)
		for _, l := range layers {
			if len(l.Polygon.Verts) < 3 {
				continue
			}
			xs := make([]int, len(l.Polygon.Verts))
			ys := make([]int, len(l.Polygon.Verts))
			for j, v := range l.Polygon.Verts {
				xs[j] = int(v.X)
				ys[j] = int(v.Y)
			}
			canvas.Polygon(xs, ys,
				fmt.Sprintf("%s;fill-opacity:%.4f;stroke:none", fill(b.Color), float64(alpha255(l.Alpha))/255*opacity))
		}
	}

	for _, l := range s.Lines {
		canvas.Line(int(l.X1), int(l.Y1), int(l.X2), int(l.Y2),
			fmt.Sprintf("stroke:black;stroke-width:%.2f;stroke-linecap:round", opts.LineThickness*l.Thickness))
	}

	canvas.End()
	return nil
}

func fill(c scene.RGB) string {
	return fmt.Sprintf("fill:rgb(%d,%d,%d)", c.R, c.G, c.B)
}
