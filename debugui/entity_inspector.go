package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/asteroids/assets"
	"github.com/plus3/asteroids/world"
)

// EntityInspector shows every field of one entity. Numeric and boolean fields
// are edited in place.
type EntityInspector struct {
	world *world.World
}

func NewEntityInspector(w *world.World) *EntityInspector {
	return &EntityInspector{world: w}
}

func (ei *EntityInspector) Render(id world.EntityId) {
	if !imgui.BeginV("Entity Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	entity, ok := ei.world.Entity(id)
	if !ok {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity %d (generation %d)", id.Index(), id.Generation()))
	imgui.Separator()
	ei.renderStruct(reflect.ValueOf(entity).Elem())

	imgui.End()
}

func (ei *EntityInspector) renderStruct(val reflect.Value) {
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		ei.renderField(field, val.Field(field.Index))
	}
}

func (ei *EntityInspector) renderField(field FieldInfo, val reflect.Value) {
	name := field.Name
	label := "##" + name

	switch field.Kind {
	case fieldModel:
		model := val.Interface().(*assets.Model)
		if model == nil {
			imgui.Text(name + ": nil")
			return
		}
		imgui.Text(fmt.Sprintf("%s: %s (%d lines)", name, model.Name, len(model.Lines)))

	case fieldFlags:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface().(world.EntityFlags).Names()))

	case fieldStringer:
		imgui.Text(fmt.Sprintf("%s: %s", name, val.Interface().(fmt.Stringer).String()))

	case fieldInt:
		v := int32(val.Int())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case fieldFloat:
		v := float32(val.Float())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(label, &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case fieldBool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case fieldStruct:
		if imgui.TreeNodeStr(name) {
			ei.renderStruct(val)
			imgui.TreePop()
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}
