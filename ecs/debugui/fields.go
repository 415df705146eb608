package debugui

import (
	"fmt"
	"reflect"
)

// setFieldValue assigns value to field when the kinds are compatible and the
// field is settable. It reports whether the assignment happened.
func setFieldValue(field reflect.Value, value any) bool {
	if !field.CanSet() {
		return false
	}

	switch v := value.(type) {
	case int64:
		switch field.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if field.OverflowInt(v) {
				return false
			}
			field.SetInt(v)
			return true
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if v < 0 || field.OverflowUint(uint64(v)) {
				return false
			}
			field.SetUint(uint64(v))
			return true
		}
	case float64:
		switch field.Kind() {
		case reflect.Float32, reflect.Float64:
			field.SetFloat(v)
			return true
		}
	case bool:
		if field.Kind() == reflect.Bool {
			field.SetBool(v)
			return true
		}
	case string:
		if field.Kind() == reflect.String {
			field.SetString(v)
			return true
		}
	}
	return false
}

// fieldSummary is the read-only line shown for values without an editor.
func fieldSummary(name string, val reflect.Value) string {
	switch val.Kind() {
	case reflect.Slice:
		return fmt.Sprintf("%s: [%d items]", name, val.Len())
	case reflect.Map:
		return fmt.Sprintf("%s: map[%d items]", name, val.Len())
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Chan:
		if val.IsNil() {
			return fmt.Sprintf("%s: nil", name)
		}
		return fmt.Sprintf("%s: %s", name, val.Type().String())
	}
	if !val.CanInterface() {
		return fmt.Sprintf("%s: <unexported>", name)
	}
	return fmt.Sprintf("%s: %v", name, val.Interface())
}
