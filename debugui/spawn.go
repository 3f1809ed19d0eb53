package debugui

import (
	"github.com/plus3/asteroids/world"
)

// NewGameOverlay builds the standard panel set for session. The inspector shows
// the browser selection, or the entity under the cursor when nothing is selected.
func NewGameOverlay(session *world.Session) *Overlay {
	overlay := NewOverlay()
	timer := NewFrameTimer()

	construction := NewConstructionPanel(session)
	browser := NewEntityBrowser(session.World, 100)
	inspector := NewEntityInspector(session.World)
	stats := NewPerformanceStats(session.World, 120)

	overlay.Add(construction.Render)
	overlay.Add(browser.Render)
	overlay.Add(func() {
		id := browser.GetSelectedEntity()
		if _, ok := session.World.Entity(id); !ok {
			id = session.World.SelectedEntityId()
		}
		inspector.Render(id)
	})
	overlay.Add(func() { stats.Render(timer.GetDeltaTime()) })
	return overlay
}
