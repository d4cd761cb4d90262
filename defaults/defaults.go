package defaults

import "reflect"

// Provider supplies a value for a declared result type when a loose-mode
// dispatch finds no matching setup.
type Provider interface {
	// Value returns the default for t. A nil type yields nil.
	Value(t reflect.Type) any
}

// Empty is the zero-equivalent strategy: numeric and boolean types produce
// their zero value, strings produce "", slice/map/channel shapes produce an
// empty concrete instance, and pointer, interface, and function shapes
// produce the absent value (nil).
type Empty struct{}

// Value implements Provider.
func (Empty) Value(t reflect.Type) any {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0).Interface()
	case reflect.Map:
		return reflect.MakeMap(t).Interface()
	case reflect.Chan:
		return reflect.MakeChan(t, 0).Interface()
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.UnsafePointer:
		return nil
	default:
		return reflect.Zero(t).Interface()
	}
}
