package fabric

import (
	"github.com/on-the-ground/rllt/erased"
)

// Handler is the capability stored in both fabric tables.
type Handler interface {
	Invoke(in erased.Value) erased.Value
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(in erased.Value) erased.Value

func (hf HandlerFunc) Invoke(in erased.Value) erased.Value {
	return hf(in)
}

var (
	_ Handler = HandlerFunc(nil)
	_ Handler = voidHandler(nil)
	_ Handler = argumentHandler[int, int](nil)
)

// voidHandler ignores its input and yields erased.Empty.
type voidHandler func()

func (vh voidHandler) Invoke(erased.Value) erased.Value {
	vh()
	return erased.Empty
}

// argumentHandler recovers its input as A unconditionally.
// A mismatching input panics; it is never recovered here.
type argumentHandler[A, R any] func(A) R

func (ah argumentHandler[A, R]) Invoke(in erased.Value) erased.Value {
	return erased.Of(ah(erased.MustRecover[A](in)))
}
