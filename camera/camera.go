// Package camera implements a perspective camera with lazily rebuilt matrices,
// mouse ray casting and the input controllers that drive it.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type dirtyFlags uint8

const (
	projectionDirty dirtyFlags = 1 << iota
	viewDirty
)

const (
	DefaultFieldOfView = 45.0
	DefaultNearPlane   = 0.1
	DefaultFarPlane    = 1000.0
)

// Camera is a perspective camera positioned by a point and an orientation.
// With the identity orientation it looks along -Z with +Y up.
//
// The projection matrix only changes when the field of view, clip planes or
// viewport size change; the view matrix only when position or orientation do.
// Both are rebuilt on first access after such a change.
type Camera struct {
	fieldOfView float32
	nearPlane   float32
	farPlane    float32
	size        mgl32.Vec2
	worldUp     mgl32.Vec3

	position    mgl32.Vec3
	orientation mgl32.Quat

	dirty      dirtyFlags
	projection mgl32.Mat4
	view       mgl32.Mat4
}

// New creates a camera at the origin with the identity orientation and a 1x1 viewport.
// fieldOfView is the vertical angle in degrees.
func New(fieldOfView float32, worldUp mgl32.Vec3) *Camera {
	return &Camera{
		fieldOfView: fieldOfView,
		nearPlane:   DefaultNearPlane,
		farPlane:    DefaultFarPlane,
		size:        mgl32.Vec2{1, 1},
		worldUp:     worldUp.Normalize(),
		orientation: mgl32.QuatIdent(),
		dirty:       projectionDirty | viewDirty,
	}
}

func (c *Camera) FieldOfView() float32 { return c.fieldOfView }
func (c *Camera) NearPlane() float32   { return c.nearPlane }
func (c *Camera) FarPlane() float32    { return c.farPlane }
func (c *Camera) Size() mgl32.Vec2     { return c.size }
func (c *Camera) WorldUp() mgl32.Vec3  { return c.worldUp }

func (c *Camera) Position() mgl32.Vec3    { return c.position }
func (c *Camera) Orientation() mgl32.Quat { return c.orientation }

func (c *Camera) SetFieldOfView(degrees float32) {
	c.fieldOfView = degrees
	c.dirty |= projectionDirty
}

func (c *Camera) SetNearPlane(near float32) {
	c.nearPlane = near
	c.dirty |= projectionDirty
}

func (c *Camera) SetFarPlane(far float32) {
	c.farPlane = far
	c.dirty |= projectionDirty
}

// Resize sets the viewport size in pixels. A zero height is treated as 1.
func (c *Camera) Resize(width, height float32) {
	c.size = mgl32.Vec2{max(width, 1), max(height, 1)}
	c.dirty |= projectionDirty
}

func (c *Camera) AspectRatio() float32 {
	return c.size.X() / c.size.Y()
}

func (c *Camera) MoveTo(position mgl32.Vec3) {
	c.position = position
	c.dirty |= viewDirty
}

func (c *Camera) MoveBy(offset mgl32.Vec3) {
	c.MoveTo(c.position.Add(offset))
}

func (c *Camera) RotateTo(orientation mgl32.Quat) {
	c.orientation = orientation.Normalize()
	c.dirty |= viewDirty
}

// RotateBy applies rotation in world space on top of the current orientation.
func (c *Camera) RotateBy(rotation mgl32.Quat) {
	c.RotateTo(rotation.Mul(c.orientation))
}

func (c *Camera) Forward() mgl32.Vec3 {
	return c.orientation.Rotate(mgl32.Vec3{0, 0, -1})
}

func (c *Camera) Right() mgl32.Vec3 {
	return c.orientation.Rotate(mgl32.Vec3{1, 0, 0})
}

func (c *Camera) Up() mgl32.Vec3 {
	return c.orientation.Rotate(mgl32.Vec3{0, 1, 0})
}

func (c *Camera) ProjectionDirty() bool { return c.dirty&projectionDirty != 0 }
func (c *Camera) ViewDirty() bool       { return c.dirty&viewDirty != 0 }

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	if c.dirty&projectionDirty != 0 {
		c.projection = mgl32.Perspective(mgl32.DegToRad(c.fieldOfView), c.AspectRatio(), c.nearPlane, c.farPlane)
		c.dirty &^= projectionDirty
	}
	return c.projection
}

// ViewMatrix is the inverse of the camera's rigid transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	if c.dirty&viewDirty != 0 {
		eye := c.position
		c.view = mgl32.LookAtV(eye, eye.Add(c.Forward()), c.Up())
		c.dirty &^= viewDirty
	}
	return c.view
}

func (c *Camera) ProjectionViewMatrix() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// CreateRay returns the ray through the centre of the view.
func (c *Camera) CreateRay() Ray {
	return Ray{Origin: c.position, Direction: c.Forward().Normalize()}
}

// CreateRayForMouse returns the ray from the near plane through the given clip
// space position.
func (c *Camera) CreateRayForMouse(clip mgl32.Vec2) (Ray, error) {
	pv := c.ProjectionViewMatrix()
	if float32(math.Abs(float64(pv.Det()))) < 1e-12 {
		return Ray{}, ErrSingularTransform
	}
	inv := pv.Inv()

	near, err := unproject(inv, mgl32.Vec3{clip.X(), clip.Y(), -1})
	if err != nil {
		return Ray{}, err
	}
	mid, err := unproject(inv, mgl32.Vec3{clip.X(), clip.Y(), 0})
	if err != nil {
		return Ray{}, err
	}
	dir := mid.Sub(near)
	if dir.Len() == 0 {
		return Ray{}, ErrSingularTransform
	}
	return Ray{Origin: near, Direction: dir.Normalize()}, nil
}

// WorldToClip projects a world point into clip space. ok is false when the
// point lies behind the camera.
func (c *Camera) WorldToClip(point mgl32.Vec3) (clip mgl32.Vec3, ok bool) {
	p := c.ProjectionViewMatrix().Mul4x1(point.Vec4(1))
	if p.W() <= 0 {
		return mgl32.Vec3{}, false
	}
	return p.Vec3().Mul(1 / p.W()), true
}

func unproject(inv mgl32.Mat4, ndc mgl32.Vec3) (mgl32.Vec3, error) {
	p := inv.Mul4x1(ndc.Vec4(1))
	if float32(math.Abs(float64(p.W()))) < 1e-12 {
		return mgl32.Vec3{}, ErrSingularTransform
	}
	return p.Vec3().Mul(1 / p.W()), nil
}
