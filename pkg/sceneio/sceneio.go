// Package sceneio serializes scenes to and from JSON.
//
// An exported scene carries every field a renderer needs, including the
// seed, so importing it and regenerating watercolor layers reproduces the
// exact in-process result. Import validation is all-or-nothing: a
// malformed file is rejected with a descriptive error before any of it is
// used.
package sceneio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hselder/aquarelle/pkg/scene"
)

// ErrMalformedScene is wrapped by every import validation failure. Use
// errors.Is to detect it.
var ErrMalformedScene = errors.New("malformed scene")

// Write encodes s as indented JSON to w.
func Write(w io.Writer, s *scene.Scene) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}

// Export writes s to the file at path.
func Export(path string, s *scene.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := Write(f, s); err != nil {
		return err
	}
	return f.Close()
}

// Read decodes and validates a scene from r. The returned scene is
// equivalent input to a freshly generated one; nothing is accepted
// partially.
func Read(r io.Reader) (*scene.Scene, error) {
	var s scene.Scene
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrMalformedScene, err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Import reads and validates the scene file at path.
func Import(path string) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

func validate(s *scene.Scene) error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrMalformedScene, s.Width, s.Height)
	}
	// The base tiling always subdivides a Height x Height square, so a tall
	// canvas legitimately carries blocks wider than the canvas itself. Bound
	// blocks by the tiling region, not the canvas.
	maxExtent := s.Width
	if s.Height > maxExtent {
		maxExtent = s.Height
	}
	for i, b := range s.Blocks {
		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("%w: block %d: extent %dx%d must be positive", ErrMalformedScene, i, b.W, b.H)
		}
		if b.X < 0 || b.Y < 0 || b.X+b.W > maxExtent || b.Y+b.H > maxExtent {
			return fmt.Errorf("%w: block %d: rect outside the tiled region", ErrMalformedScene, i)
		}
		if b.ColorFamily == "" {
			return fmt.Errorf("%w: block %d: missing color family", ErrMalformedScene, i)
		}
		if _, ok := scene.Palettes[b.ColorFamily]; !ok {
			return fmt.Errorf("%w: block %d: unknown color family %q", ErrMalformedScene, i, b.ColorFamily)
		}
		// Generation skips white regions entirely; a white block in a scene
		// file can only be hand-edited and would render as painted white
		// instead of bare canvas.
		if b.ColorFamily == scene.FamilyWhite {
			return fmt.Errorf("%w: block %d: reserved color family %q", ErrMalformedScene, i, b.ColorFamily)
		}
		if b.Painterliness < 0 || b.Painterliness > 1 {
			return fmt.Errorf("%w: block %d: painterliness %v outside [0,1]", ErrMalformedScene, i, b.Painterliness)
		}
	}
	for i, l := range s.Lines {
		if l.X1 == l.X2 && l.Y1 == l.Y2 {
			return fmt.Errorf("%w: line %d: zero length", ErrMalformedScene, i)
		}
		if l.Thickness < 0 {
			return fmt.Errorf("%w: line %d: negative thickness", ErrMalformedScene, i)
		}
	}
	return nil
}
