package outcome

import "reflect"

// IsNil reports whether i is absent: an untyped nil, or a typed nil of a
// nilable kind (pointer, interface, map, slice, func, chan). A typed nil
// pointer inside a non-nil interface still counts as absent.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
