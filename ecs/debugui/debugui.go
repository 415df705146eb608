// Package debugui provides Dear ImGui windows for inspecting an entity at
// runtime. The windows are ordinary components: attach them to the entity to
// inspect and they draw from their Render hook, so the host must render inside
// an ImGui frame (see ebitenhost.Overlay).
package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/scenecore/ecs"
)

// InspectorComponent shows the owning entity's transform and the exported
// fields of every attached component. Numbers, bools and strings are editable.
type InspectorComponent struct {
	ecs.BaseComponent
	Title string
}

func (ic *InspectorComponent) windowTitle() string {
	if ic.Title != "" {
		return ic.Title
	}
	if name := ic.Entity().Name; name != "" {
		return "Inspector: " + name
	}
	return "Inspector"
}

func (ic *InspectorComponent) Render() {
	entity := ic.Entity()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 420), imgui.CondOnce)
	if !imgui.BeginV(ic.windowTitle(), nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := entity.CollectStats()
	imgui.Text(fmt.Sprintf("Components: %d", stats.ComponentCount))
	imgui.Text(fmt.Sprintf("Started: %t  Destroyed: %t", stats.Started, stats.Destroyed))
	imgui.Separator()

	if imgui.TreeNodeStr("Transform") {
		t := entity.Transform()
		renderVec3("Position", (*[3]float32)(&t.Position))
		renderVec3("Scale", (*[3]float32)(&t.Scale))
		imgui.TreePop()
	}

	for i, c := range entity.Components() {
		val := reflect.ValueOf(c).Elem()
		if imgui.TreeNodeStr(fmt.Sprintf("%d: %s", i, val.Type().String())) {
			renderComponent(val, fmt.Sprintf("c%d", i))
			imgui.TreePop()
		}
	}

	imgui.End()
}

func renderVec3(name string, v *[3]float32) {
	imgui.Text(name)
	for axis, label := range [3]string{"x", "y", "z"} {
		imgui.SetNextItemWidth(90)
		imgui.InputFloat(fmt.Sprintf("%s##%s", label, name), &v[axis])
		if axis < 2 {
			imgui.SameLine()
		}
	}
}

func renderComponent(val reflect.Value, id string) {
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.Deref {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		renderField(field, fieldVal, id+"."+field.Name)
	}
}

func renderField(field FieldInfo, val reflect.Value, id string) {
	name := field.Name

	switch field.Editor {
	case editorInt, editorUint:
		var v int32
		if field.Editor == editorInt {
			v = int32(val.Int())
		} else {
			v = int32(val.Uint())
		}
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", id), &v) {
			setFieldValue(val, int64(v))
		}

	case editorFloat:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", id), &v) {
			setFieldValue(val, float64(v))
		}

	case editorBool:
		v := val.Bool()
		if imgui.Checkbox(fmt.Sprintf("%s##%s", name, id), &v) {
			setFieldValue(val, v)
		}

	case editorString:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", id), "", &v, imgui.InputTextFlagsNone, nil) {
			setFieldValue(val, v)
		}

	case editorNested:
		if imgui.TreeNodeStr(name) {
			renderComponent(val, id)
			imgui.TreePop()
		}

	default:
		imgui.Text(fieldSummary(name, val))
	}
}
