package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/asteroids/input"
)

// DefaultMouseSensitivity is in degrees per clip-space unit.
const DefaultMouseSensitivity = 90.0

// FirstPersonController rotates the camera while the left button is held and
// flies it with WASD along its own axes, Q and Z moving along world up.
type FirstPersonController struct {
	camera      *Camera
	sensitivity float32
	speed       float32
	keys        keyAxes

	yaw, pitch float32
	base       mgl32.Quat

	dragging  bool
	lastMouse mgl32.Vec2
}

// NewFirstPersonController starts from the camera's current orientation.
func NewFirstPersonController(camera *Camera, sensitivity, speed float32) *FirstPersonController {
	return &FirstPersonController{
		camera:      camera,
		sensitivity: sensitivity,
		speed:       speed,
		keys:        newKeyAxes(),
		base:        camera.Orientation(),
	}
}

func (c *FirstPersonController) Camera() *Camera { return c.camera }

// Angles returns the accumulated yaw and pitch in degrees.
func (c *FirstPersonController) Angles() (yaw, pitch float32) { return c.yaw, c.pitch }

func (c *FirstPersonController) OnMouseMoved(event input.MouseEvent) {
	if !c.dragging {
		return
	}
	d := event.Position.Sub(c.lastMouse)
	c.lastMouse = event.Position
	c.yaw -= d.X() * c.sensitivity
	c.pitch = mgl32.Clamp(c.pitch+d.Y()*c.sensitivity, -89, 89)
	c.apply()
}

func (c *FirstPersonController) apply() {
	yaw := mgl32.QuatRotate(mgl32.DegToRad(c.yaw), c.camera.WorldUp())
	pitch := mgl32.QuatRotate(mgl32.DegToRad(c.pitch), mgl32.Vec3{1, 0, 0})
	c.camera.RotateTo(yaw.Mul(c.base).Mul(pitch))
}

func (c *FirstPersonController) OnMousePressed(event input.MouseEvent) bool {
	if event.Button != input.MouseButtonLeft {
		return false
	}
	c.dragging = true
	c.lastMouse = event.Position
	return true
}

func (c *FirstPersonController) OnMouseReleased(event input.MouseEvent) {
	if event.Button == input.MouseButtonLeft {
		c.dragging = false
	}
}

func (c *FirstPersonController) OnMouseWheel(input.WheelEvent) {}

func (c *FirstPersonController) OnKeyPressed(event input.KeyEvent)  { c.keys.press(event.Key) }
func (c *FirstPersonController) OnKeyReleased(event input.KeyEvent) { c.keys.release(event.Key) }

func (c *FirstPersonController) Tick(delta float32) {
	forward := c.keys.axis(input.KeyS, input.KeyW)
	right := c.keys.axis(input.KeyA, input.KeyD)
	up := c.keys.axis(input.KeyZ, input.KeyQ)
	if forward == 0 && right == 0 && up == 0 {
		return
	}
	step := c.camera.Forward().Mul(forward).
		Add(c.camera.Right().Mul(right)).
		Add(c.camera.WorldUp().Mul(up))
	if step.Len() == 0 {
		return
	}
	c.camera.MoveBy(step.Normalize().Mul(c.speed * delta))
}

func (c *FirstPersonController) Release() {
	c.keys.reset()
	c.dragging = false
}
