package world

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/asteroids/assets"
)

// Renderer is the draw sink used by the render traversal. Matrices map model space
// to clip space.
type Renderer interface {
	DrawModel(model *assets.Model, mvp mgl32.Mat4)
	DrawCircle(mvp mgl32.Mat4, radius float32, segments int, c color.RGBA)
}

var (
	selectionColor = color.RGBA{255, 64, 64, 255}
	selectedColor  = color.RGBA{64, 255, 64, 255}
	previewColor   = color.RGBA{255, 255, 255, 160}
)

// miningLaserDutyCycle is the fraction of a mining cycle during which the laser is drawn.
const miningLaserDutyCycle = 0.75

// Render draws every entity, its selection circle, its link and its mining laser,
// followed by the pending placement of construction (if any). It does not modify
// the world.
func (w *World) Render(renderer Renderer, projectionView mgl32.Mat4, construction *ConstructionController) {
	for entity := range w.entities.All() {
		mvp := projectionView.Mul4(modelMatrix(entity.Position, entity.Movement.Direction))

		if entity.Selectable() {
			c := selectionColor
			if entity.Id == w.selectedEntityId {
				c = selectedColor
			}
			renderer.DrawCircle(mvp, entity.Building.SelectionRadius, circleSegments(entity.Building.SelectionRadius), c)
		}

		if entity.Render.Model != nil {
			renderer.DrawModel(entity.Render.Model, mvp)
		}

		if linked, ok := w.Entity(entity.Building.LinkedToId); ok {
			w.renderConnector(renderer, projectionView, entity.Position, linked.Position, w.linkModel)
		}

		if entity.Mines() && entity.Mining.TimeSinceLastCycle < entity.Mining.CycleDuration*miningLaserDutyCycle {
			if target, ok := w.Entity(entity.Target); ok {
				w.renderConnector(renderer, projectionView, entity.Position, target.Position, w.minerLaserModel)
			}
		}
	}

	if construction == nil || !construction.IsBuilding() {
		return
	}

	prefab := construction.Prefab()
	cursor := construction.CursorPosition()
	mvp := projectionView.Mul4(modelMatrix(cursor, 0))

	if prefab.Selectable() {
		radius := prefab.Building.SelectionRadius
		renderer.DrawCircle(mvp, radius, circleSegments(radius), previewColor)
	}
	if prefab.Render.Model != nil {
		renderer.DrawModel(prefab.Render.Model, mvp)
	}

	// Preview what the placement would connect to if committed now.
	if prefab.HasFlags(FlagNeedsLink) {
		if linked, ok := w.Entity(w.FindClosestToPosition(cursor, FlagLinkable)); ok {
			w.renderConnector(renderer, projectionView, cursor, linked.Position, w.linkModel)
		}
	}
	if prefab.Mines() {
		if target, ok := w.Entity(w.FindClosestToPosition(cursor, FlagMinable)); ok {
			w.renderConnector(renderer, projectionView, cursor, target.Position, w.minerLaserModel)
		}
	}
}

func (w *World) renderConnector(renderer Renderer, projectionView mgl32.Mat4, from, to mgl32.Vec2, model *assets.Model) {
	if model == nil {
		return
	}
	renderer.DrawModel(model, projectionView.Mul4(ConnectorMatrix(from, to)))
}

func modelMatrix(position mgl32.Vec2, direction float32) mgl32.Mat4 {
	translation := mgl32.Translate3D(position.X(), position.Y(), 0)
	rotation := mgl32.HomogRotate3DZ(direction)
	return translation.Mul4(rotation)
}

// ConnectorMatrix stretches a unit connector running along +Y so that it spans
// from -> to: scaled by the distance on Y and rotated about Z onto the bearing.
func ConnectorMatrix(from, to mgl32.Vec2) mgl32.Mat4 {
	delta := to.Sub(from)
	distance := delta.Len()
	bearing := float32(math.Atan2(float64(delta.Y()), float64(delta.X())))

	translation := mgl32.Translate3D(from.X(), from.Y(), 0)
	rotation := mgl32.HomogRotate3DZ(bearing - math.Pi/2)
	scale := mgl32.Scale3D(1, distance, 1)

	return translation.Mul4(rotation).Mul4(scale)
}

func circleSegments(radius float32) int {
	return max(8, int(radius/0.1))
}
