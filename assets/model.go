// Package assets provides the renderer-side model resources used by entity prefabs and a
// Manager that resolves them by name.
package assets

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Model is a wireframe mesh in model space. Each line joins two vertices by index.
type Model struct {
	Name     string
	Vertices []mgl32.Vec3
	Lines    [][2]int
	Color    color.RGBA
}

// Validate checks that every line references existing vertices.
func (m *Model) Validate() error {
	if len(m.Vertices) == 0 {
		return fmt.Errorf("%w: model %q has no vertices", ErrInvalidModel, m.Name)
	}
	for i, line := range m.Lines {
		for _, idx := range line {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("%w: model %q line %d references vertex %d of %d",
					ErrInvalidModel, m.Name, i, idx, len(m.Vertices))
			}
		}
	}
	return nil
}

// Bounds returns the radius of the smallest origin-centred circle in the XY plane
// that contains every vertex.
func (m *Model) Bounds() float32 {
	var radius float32
	for _, v := range m.Vertices {
		radius = max(radius, v.Vec2().Len())
	}
	return radius
}

// polygon returns a closed ring of sides vertices on the XY plane starting at +X.
func polygon(sides int, radius float32, rotation float32) ([]mgl32.Vec3, [][2]int) {
	vertices := make([]mgl32.Vec3, sides)
	lines := make([][2]int, sides)
	for i := range sides {
		theta := float64(rotation) + 2*math.Pi*float64(i)/float64(sides)
		vertices[i] = mgl32.Vec3{
			radius * float32(math.Cos(theta)),
			radius * float32(math.Sin(theta)),
			0,
		}
		lines[i] = [2]int{i, (i + 1) % sides}
	}
	return vertices, lines
}
