package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/asteroids/input"
)

const (
	DefaultTopDownHeight = 25.0
	DefaultKeyboardSpeed = 30.0
	MinFieldOfView       = 10.0
	MaxFieldOfView       = 120.0
)

// TopDownController looks straight down on a plane. WASD pans, dragging with
// the right button keeps the grabbed world point under the cursor and the
// wheel zooms by changing the field of view.
type TopDownController struct {
	camera        *Camera
	plane         Plane
	keyboardSpeed float32
	keys          keyAxes

	dragging   bool
	dragAnchor mgl32.Vec3
}

// NewTopDownController places the camera at height above the plane origin
// looking down its normal.
func NewTopDownController(camera *Camera, plane Plane, height, keyboardSpeed float32) *TopDownController {
	camera.RotateTo(mgl32.QuatBetweenVectors(mgl32.Vec3{0, 0, -1}, plane.Normal.Mul(-1)))
	camera.MoveTo(plane.Normal.Mul(plane.Distance + height))
	return &TopDownController{
		camera:        camera,
		plane:         plane,
		keyboardSpeed: keyboardSpeed,
		keys:          newKeyAxes(),
	}
}

func (c *TopDownController) Camera() *Camera { return c.camera }

func (c *TopDownController) Dragging() bool { return c.dragging }

func (c *TopDownController) pointUnder(clip mgl32.Vec2) (mgl32.Vec3, bool) {
	ray, err := c.camera.CreateRayForMouse(clip)
	if err != nil {
		return mgl32.Vec3{}, false
	}
	p, err := Intersect(c.plane, ray)
	return p, err == nil
}

func (c *TopDownController) OnMouseMoved(event input.MouseEvent) {
	if !c.dragging {
		return
	}
	p, ok := c.pointUnder(event.Position)
	if !ok {
		return
	}
	c.camera.MoveBy(c.dragAnchor.Sub(p))
}

func (c *TopDownController) OnMousePressed(event input.MouseEvent) bool {
	if event.Button != input.MouseButtonRight {
		return false
	}
	p, ok := c.pointUnder(event.Position)
	if !ok {
		return false
	}
	c.dragging = true
	c.dragAnchor = p
	return true
}

func (c *TopDownController) OnMouseReleased(event input.MouseEvent) {
	if event.Button == input.MouseButtonRight {
		c.dragging = false
	}
}

func (c *TopDownController) OnMouseWheel(event input.WheelEvent) {
	fov := mgl32.Clamp(c.camera.FieldOfView()-event.Offset.Y(), MinFieldOfView, MaxFieldOfView)
	c.camera.SetFieldOfView(fov)
}

func (c *TopDownController) OnKeyPressed(event input.KeyEvent)  { c.keys.press(event.Key) }
func (c *TopDownController) OnKeyReleased(event input.KeyEvent) { c.keys.release(event.Key) }

func (c *TopDownController) Tick(delta float32) {
	x := c.keys.axis(input.KeyA, input.KeyD)
	y := c.keys.axis(input.KeyS, input.KeyW)
	if x == 0 && y == 0 {
		return
	}
	step := c.camera.Right().Mul(x).Add(c.camera.Up().Mul(y))
	c.camera.MoveBy(step.Normalize().Mul(c.keyboardSpeed * delta))
}

// Release drops any held keys and an active drag, e.g. when the controller is
// switched out.
func (c *TopDownController) Release() {
	c.keys.reset()
	c.dragging = false
}
