package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/asteroids/world"
)

// ConstructionPanel shows the resource totals and a build button for every
// structure prefab.
type ConstructionPanel struct {
	session *world.Session
	lastErr error
}

func NewConstructionPanel(session *world.Session) *ConstructionPanel {
	return &ConstructionPanel{session: session}
}

// BuildableTypes lists the registered prefabs that take part in the link network,
// in entity type order.
func BuildableTypes(prefabs *world.Prefabs) []world.EntityType {
	var types []world.EntityType
	for _, t := range world.EntityTypes() {
		prefab, ok := prefabs.Get(t)
		if !ok {
			continue
		}
		if prefab.Flags&(world.FlagNeedsLink|world.FlagLinkable) != 0 {
			types = append(types, t)
		}
	}
	return types
}

func (cp *ConstructionPanel) Render() {
	if !imgui.BeginV("Construction", nil, imgui.WindowFlagsAlwaysAutoResize) {
		imgui.End()
		return
	}

	resources := cp.session.World.Resources()
	imgui.Text(fmt.Sprintf("Electricity: %d", resources.Electricity()))
	imgui.Text(fmt.Sprintf("Minerals: %d", resources.Minerals()))
	imgui.Separator()

	for _, t := range BuildableTypes(cp.session.Prefabs) {
		if imgui.Button(t.String()) {
			cp.lastErr = cp.session.Construction.StartBuilding(t)
		}
	}

	construction := cp.session.Construction
	if construction.IsBuilding() {
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Placing %s", construction.Prefab().Type))
		imgui.SameLine()
		if imgui.Button("Cancel") {
			construction.Cancel()
		}
	}

	if cp.lastErr != nil {
		imgui.Text(cp.lastErr.Error())
	}

	imgui.End()
}
