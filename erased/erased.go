// Package erased provides a container that hides the concrete type of the value
// it holds until an explicit recovery attempt.
//
// Recovery comes in two flavours:
//   - Recover is checked and reports absence on mismatch.
//   - MustRecover panics on mismatch and is meant for call sites where the type
//     is an invariant captured by a closure.
package erased

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/on-the-ground/rllt/shared/helper"
)

// ErrTypeMismatch is wrapped by every recovery failure.
var ErrTypeMismatch = errors.New("erased: type mismatch")

// MismatchError describes a failed recovery.
type MismatchError struct {
	Want reflect.Type
	Got  reflect.Type
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: want %v, got %v", ErrTypeMismatch, typeName(e.Want), typeName(e.Got))
}

func (e *MismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// Value holds exactly one value of some static type. The zero Value is empty.
type Value struct {
	typ reflect.Type
	val any
}

// Empty is the Value produced by handlers with no result.
var Empty = Value{}

// Of wraps v, remembering T as the type it must be recovered as.
func Of[T any](v T) Value {
	return Value{typ: reflect.TypeFor[T](), val: v}
}

// Type returns the stored type, or nil for an empty Value.
func (v Value) Type() reflect.Type {
	return v.typ
}

func (v Value) IsEmpty() bool {
	return v.typ == nil
}

func (v Value) String() string {
	if v.IsEmpty() {
		return "erased.Value(<empty>)"
	}
	return fmt.Sprintf("erased.Value(%v)", v.typ)
}

// Recover returns the held value as T iff T is the exact type it was wrapped as.
func Recover[T any](v Value) (T, bool) {
	if v.typ == reflect.TypeFor[T]() && v.val == nil {
		// nil interface values fail a plain assertion
		var zero T
		return zero, true
	}
	return helper.GetTypedValueOf2[T](func() (any, bool) {
		return v.val, v.typ == reflect.TypeFor[T]()
	})
}

// MustRecover is the panic-on-failure variant of Recover.
// The panic value is an error wrapping *MismatchError.
func MustRecover[T any](v Value) T {
	if v.typ == reflect.TypeFor[T]() && v.val == nil {
		var zero T
		return zero
	}
	return helper.MustGetTypedValue[T](func() (any, error) {
		if want := reflect.TypeFor[T](); v.typ != want {
			return nil, &MismatchError{Want: want, Got: v.typ}
		}
		return v.val, nil
	})
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<empty>"
	}
	return t.String()
}
