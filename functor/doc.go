// Package functor provides a memoizing wrapper around pure computations.
//
// A Functor binds a Computation to an argument list and keyword arguments and
// caches every result by its Signature (arguments plus keyword arguments,
// compared by full structural equality). Calling again with a signature that
// was already seen returns the cached result without running the computation.
//
// Composition never mutates the receiver:
//   - Chain / Map feed the functor's result into a second computation.
//   - Filter guards a call with a predicate over the bound arguments.
//   - TransformArguments rebinds the arguments and makes the transform itself
//     the new computation.
//
// Each composed functor starts with an empty cache of its own.
//
// Example:
//
//	addOne := func(args []int, _ functor.Kwargs) string {
//	    return strconv.Itoa(args[0] + 1)
//	}
//	f := functor.New(addOne, []int{1}, nil)
//	f.Call(nil, nil) // "2", computed
//	f.Call(nil, nil) // "2", cached
//
// WARNING: memoization is only sound for pure computations. A computation that
// depends on time, I/O or any other hidden state will keep returning its first
// answer. This is an assumed contract and is not checked.
package functor
