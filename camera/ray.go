package camera

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrRayParallel is returned when a ray runs parallel to the plane it is intersected with.
	ErrRayParallel = errors.New("ray is parallel to plane")
	// ErrPlaneBehindRay is returned when the intersection lies behind the ray origin.
	ErrPlaneBehindRay = errors.New("plane is behind ray origin")
	// ErrSingularTransform is returned when the projection-view matrix cannot be inverted.
	ErrSingularTransform = errors.New("projection-view matrix is singular")
)

const parallelEpsilon = 1e-6

// Ray is a half-line starting at Origin. Direction is unit length.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Plane holds every point p with Normal·p == Distance.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// NewPlane normalizes the given normal.
func NewPlane(normal mgl32.Vec3, distance float32) Plane {
	return Plane{Normal: normal.Normalize(), Distance: distance}
}

// GroundPlane is the z = 0 plane entities live on.
func GroundPlane() Plane {
	return Plane{Normal: mgl32.Vec3{0, 0, 1}, Distance: 0}
}

// Intersect returns the point where ray meets plane.
func Intersect(plane Plane, ray Ray) (mgl32.Vec3, error) {
	denom := plane.Normal.Dot(ray.Direction)
	if float32(math.Abs(float64(denom))) < parallelEpsilon {
		return mgl32.Vec3{}, ErrRayParallel
	}
	t := (plane.Distance - plane.Normal.Dot(ray.Origin)) / denom
	if t < 0 {
		return mgl32.Vec3{}, ErrPlaneBehindRay
	}
	return ray.At(t), nil
}

// ScreenToClipSpace maps a pixel position (origin top-left, +Y down) into clip
// space (origin centre, +Y up). Zero dimensions are treated as 1.
func ScreenToClipSpace(position, size mgl32.Vec2) mgl32.Vec2 {
	w, h := max(size.X(), 1), max(size.Y(), 1)
	return mgl32.Vec2{
		2*position.X()/w - 1,
		1 - 2*position.Y()/h,
	}
}
