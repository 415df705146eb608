package debugui

import (
	"reflect"

	"github.com/plus3/scenecore/ecs"
)

var baseComponentType = reflect.TypeFor[ecs.BaseComponent]()

// fieldEditor selects the widget a field is drawn with.
type fieldEditor int

const (
	editorSummary fieldEditor = iota
	editorInt
	editorUint
	editorFloat
	editorBool
	editorString
	editorNested
)

// FieldInfo describes one inspectable field of a component type.
type FieldInfo struct {
	Name   string
	Index  int
	Deref  bool // the field is a pointer; the pointee is edited
	Editor fieldEditor
}

// ReflectionCache remembers the inspectable fields of each component type.
// It is only used from Render hooks and is not safe for concurrent use.
type ReflectionCache struct {
	fields map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{fields: make(map[reflect.Type][]FieldInfo)}
}

// GetFields returns the exported fields of t in declaration order. The
// embedded BaseComponent is skipped and non-struct types have no fields.
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	if cached, ok := rc.fields[t]; ok {
		return cached
	}

	var out []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			sf := t.Field(i)
			if !sf.IsExported() || sf.Type == baseComponentType {
				continue
			}

			typ, deref := sf.Type, false
			if typ.Kind() == reflect.Pointer {
				typ, deref = typ.Elem(), true
			}
			out = append(out, FieldInfo{
				Name:   sf.Name,
				Index:  i,
				Deref:  deref,
				Editor: editorFor(typ.Kind()),
			})
		}
	}

	rc.fields[t] = out
	return out
}

func editorFor(kind reflect.Kind) fieldEditor {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return editorInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return editorUint
	case reflect.Float32, reflect.Float64:
		return editorFloat
	case reflect.Bool:
		return editorBool
	case reflect.String:
		return editorString
	case reflect.Struct:
		return editorNested
	default:
		return editorSummary
	}
}

var globalReflectionCache = NewReflectionCache()
