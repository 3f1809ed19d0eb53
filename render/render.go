// Package render draws world wireframes onto an ebiten image.
package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/asteroids/assets"
)

const DefaultLineWidth = 1.5

// Viewport maps clip space onto a pixel rectangle with the origin top-left.
type Viewport struct {
	Width, Height float32
}

// ClipToScreen performs the perspective divide and viewport transform. ok is
// false for points on or behind the eye plane.
func (v Viewport) ClipToScreen(clip mgl32.Vec4) (screen mgl32.Vec2, ok bool) {
	if clip.W() <= 0 {
		return mgl32.Vec2{}, false
	}
	x := clip.X() / clip.W()
	y := clip.Y() / clip.W()
	return mgl32.Vec2{
		(x + 1) / 2 * v.Width,
		(1 - y) / 2 * v.Height,
	}, true
}

// FrameStats counts what was submitted since the last Begin.
type FrameStats struct {
	Models  int
	Circles int
	Lines   int
	Culled  int
}

type strokeFunc func(x0, y0, x1, y1 float32, c color.RGBA)

// Renderer implements world.Renderer by projecting every line segment to the
// screen and stroking it.
type Renderer struct {
	LineWidth float32
	Antialias bool

	viewport Viewport
	stroke   strokeFunc
	stats    FrameStats
}

func NewRenderer() *Renderer {
	return &Renderer{LineWidth: DefaultLineWidth, Antialias: true}
}

// Begin targets screen for the following draw calls.
func (r *Renderer) Begin(screen *ebiten.Image) {
	bounds := screen.Bounds()
	r.begin(Viewport{Width: float32(bounds.Dx()), Height: float32(bounds.Dy())},
		func(x0, y0, x1, y1 float32, c color.RGBA) {
			vector.StrokeLine(screen, x0, y0, x1, y1, r.LineWidth, c, r.Antialias)
		})
}

func (r *Renderer) begin(viewport Viewport, stroke strokeFunc) {
	r.viewport = viewport
	r.stroke = stroke
	r.stats = FrameStats{}
}

func (r *Renderer) Stats() FrameStats { return r.stats }

func (r *Renderer) DrawModel(model *assets.Model, mvp mgl32.Mat4) {
	if model == nil || r.stroke == nil {
		return
	}
	r.stats.Models++
	for _, line := range model.Lines {
		r.segment(mvp, model.Vertices[line[0]], model.Vertices[line[1]], model.Color)
	}
}

// DrawCircle outlines a circle of radius around the model-space origin on the XY plane.
func (r *Renderer) DrawCircle(mvp mgl32.Mat4, radius float32, segments int, c color.RGBA) {
	if r.stroke == nil || segments < 3 {
		return
	}
	r.stats.Circles++
	prev := mgl32.Vec3{radius, 0, 0}
	for i := 1; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		next := mgl32.Vec3{
			radius * float32(math.Cos(theta)),
			radius * float32(math.Sin(theta)),
			0,
		}
		r.segment(mvp, prev, next, c)
		prev = next
	}
}

func (r *Renderer) segment(mvp mgl32.Mat4, a, b mgl32.Vec3, c color.RGBA) {
	p0, ok0 := r.viewport.ClipToScreen(mvp.Mul4x1(a.Vec4(1)))
	p1, ok1 := r.viewport.ClipToScreen(mvp.Mul4x1(b.Vec4(1)))
	if !ok0 || !ok1 {
		r.stats.Culled++
		return
	}
	r.stats.Lines++
	r.stroke(p0.X(), p0.Y(), p1.X(), p1.Y(), c)
}
