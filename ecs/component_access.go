package ecs

import (
	"reflect"
	"unsafe"

	"go.uber.org/zap"
)

// AddComponent constructs a new component of type C owned by e, appends it to
// the entity and returns it. The returned pointer stays valid for the lifetime
// of the entity.
//
// Components must embed BaseComponent; any other type fails to compile.
func AddComponent[C any, P ComponentPtr[C]](e *Entity) P {
	c := P(new(C))
	c.bind(e)
	e.insert(c, reflect.TypeFor[P]())
	return c
}

// GetComponent returns the first component attached to e whose concrete type
// is exactly C. Embedding or interface satisfaction does not count as a match.
//
// When there is no such component an error is logged and ok is false.
func GetComponent[C any, P ComponentPtr[C]](e *Entity) (component P, ok bool) {
	typ := reflect.TypeFor[P]()
	if index, found := e.firstOfType.Get(typeId(typ)); found {
		return e.components[index].(P), true
	}

	e.log.Error("could not find component",
		zap.String("entity", e.Name),
		zap.Stringer("component", typ.Elem()),
	)
	return nil, false
}

// GetComponents returns every component of exactly type C in attachment order.
// Unlike GetComponent it does not log when nothing matches.
func GetComponents[C any, P ComponentPtr[C]](e *Entity) []P {
	typ := reflect.TypeFor[P]()
	first, found := e.firstOfType.Get(typeId(typ))
	if !found {
		return nil
	}

	var out []P
	for i := first; i < len(e.components); i++ {
		if e.types[i] == typ {
			out = append(out, e.components[i].(P))
		}
	}
	return out
}

// HasComponent reports whether a component of exactly type C is attached.
func HasComponent[C any, P ComponentPtr[C]](e *Entity) bool {
	_, found := e.firstOfType.Get(typeId(reflect.TypeFor[P]()))
	return found
}

// iface mirrors the runtime layout of an interface value.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// typeId returns the address of the runtime type descriptor behind t. Two
// reflect.Types are identical exactly when their ids are equal.
func typeId(t reflect.Type) int {
	ptr := (*iface)(unsafe.Pointer(&t)).data
	return int(uintptr(ptr))
}
