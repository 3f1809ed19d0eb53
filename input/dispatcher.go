package input

// Dispatcher fans events out to handlers in registration order.
type Dispatcher struct {
	handlers []Handler
}

func NewDispatcher(handlers ...Handler) *Dispatcher {
	return &Dispatcher{handlers: handlers}
}

func (d *Dispatcher) Add(handler Handler) {
	d.handlers = append(d.handlers, handler)
}

func (d *Dispatcher) OnMouseMoved(event MouseEvent) {
	for _, h := range d.handlers {
		h.OnMouseMoved(event)
	}
}

// OnMousePressed stops at the first handler that consumes the press.
func (d *Dispatcher) OnMousePressed(event MouseEvent) bool {
	for _, h := range d.handlers {
		if h.OnMousePressed(event) {
			return true
		}
	}
	return false
}

func (d *Dispatcher) OnMouseReleased(event MouseEvent) {
	for _, h := range d.handlers {
		h.OnMouseReleased(event)
	}
}

func (d *Dispatcher) OnMouseWheel(event WheelEvent) {
	for _, h := range d.handlers {
		h.OnMouseWheel(event)
	}
}

func (d *Dispatcher) OnKeyPressed(event KeyEvent) {
	for _, h := range d.handlers {
		h.OnKeyPressed(event)
	}
}

func (d *Dispatcher) OnKeyReleased(event KeyEvent) {
	for _, h := range d.handlers {
		h.OnKeyReleased(event)
	}
}

// Replace swaps old for replacement in place, keeping its position. It reports
// whether old was registered.
func (d *Dispatcher) Replace(old, replacement Handler) bool {
	for i, h := range d.handlers {
		if h == old {
			d.handlers[i] = replacement
			return true
		}
	}
	return false
}
