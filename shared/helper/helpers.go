package helper

import (
	"fmt"
	"reflect"
	"runtime"
)

// GetTypedValueOf safely asserts the result of a getter function to the expected type T.
// Returns an error if the getter fails or the type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

// GetTypedValueOf2 is the comma-ok variant of GetTypedValueOf.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// MustGetTypedValue is the panic-on-failure variant of GetTypedValueOf.
// Use when failure should be fatal (e.g., when the type is a captured invariant).
func MustGetTypedValue[T any](getFn func() (any, error)) T {
	res, err := GetTypedValueOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}

// FuncPointer returns the code pointer of fn, or 0 if fn is not a non-nil func.
func FuncPointer(fn any) uintptr {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return 0
	}
	return v.Pointer()
}

// FuncName resolves the symbol name of fn for diagnostics.
func FuncName(fn any) string {
	ptr := FuncPointer(fn)
	if ptr == 0 {
		return "<nil>"
	}
	if f := runtime.FuncForPC(ptr); f != nil {
		return f.Name()
	}
	return fmt.Sprintf("func@%#x", ptr)
}
