package camera

import (
	"github.com/kamstrup/intmap"

	"github.com/plus3/asteroids/input"
)

// Controller drives a camera from input events. Mouse positions arrive in
// clip space.
type Controller interface {
	input.Handler
	Camera() *Camera
	Tick(delta float32)
	// Release forgets held keys and drags.
	Release()
}

// keyAxes accumulates held keys into a movement direction.
type keyAxes struct {
	held *intmap.Set[input.Key]
}

func newKeyAxes() keyAxes {
	return keyAxes{held: intmap.NewSet[input.Key](8)}
}

func (k keyAxes) press(key input.Key)   { k.held.Add(key) }
func (k keyAxes) release(key input.Key) { k.held.Del(key) }

func (k keyAxes) axis(negative, positive input.Key) float32 {
	var v float32
	if k.held.Has(negative) {
		v--
	}
	if k.held.Has(positive) {
		v++
	}
	return v
}

func (k keyAxes) reset() { k.held.Clear() }
