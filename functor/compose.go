package functor

// Chain runs f on its own bound arguments, then runs next with that result as
// its single argument and no kwargs. The intermediate functor gets a fresh
// cache and is discarded.
func Chain[A, R comparable](f *Functor[A, R], next Computation[R, R]) R {
	prior := f.Call(nil, nil)
	return newFunctor(next, []R{prior}, nil, f.config).Call(nil, nil)
}

// Map is Chain under another name, for call sites that read as a transformation.
func Map[A, R comparable](f *Functor[A, R], transform Computation[R, R]) R {
	return Chain(f, transform)
}

// Filter evaluates pred on the bound arguments. If it holds, the result of
// calling f with no extra arguments is returned; otherwise (zero, false) and
// the computation is not run.
func (f *Functor[A, R]) Filter(pred Predicate[A]) (R, bool) {
	bound := f.Bound()
	if !pred(bound.Args, bound.Kwargs) {
		var zero R
		return zero, false
	}
	return f.Call(nil, nil), true
}

// TransformArguments applies transform to the bound arguments and returns a new
// functor bound to the transformed signature whose computation is transform
// itself, not the computation of f.
func (f *Functor[A, R]) TransformArguments(transform Computation[A, Signature[A]]) *Functor[A, Signature[A]] {
	bound := f.Bound()
	next := transform(bound.Args, bound.Kwargs)
	return newFunctor(transform, next.Args, next.Kwargs, f.config)
}

// Curry is meant to bind additional arguments. It currently ignores args and
// kwargs and returns a copy of f: same computation, same bound arguments and a
// copy of the cache.
func (f *Functor[A, R]) Curry(args []A, kwargs Kwargs) *Functor[A, R] {
	return f.clone()
}

// Reduce is meant to fold the bound arguments with reducer. Like Curry it
// currently ignores its parameters and returns a copy of f.
func (f *Functor[A, R]) Reduce(reducer Reducer[A, R], initial *R) *Functor[A, R] {
	return f.clone()
}
