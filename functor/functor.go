package functor

import (
	"fmt"
	"maps"
	"slices"

	"github.com/on-the-ground/rllt/shared/helper"
	"go.uber.org/zap"
)

// Computation is the function wrapped by a Functor. It must be pure.
type Computation[A any, R any] func(args []A, kwargs Kwargs) R

// Predicate decides whether Filter lets a call through.
type Predicate[A any] func(args []A, kwargs Kwargs) bool

// Reducer folds arguments into an accumulator.
type Reducer[A any, R any] func(args []A, kwargs Kwargs, acc *R) R

// Functor wraps a Computation together with bound arguments and a result cache.
//
// A Functor is not safe for concurrent use: Call writes the cache without locking.
type Functor[A comparable, R any] struct {
	fn     Computation[A, R]
	args   []A
	kwargs Kwargs
	cache  *table[R]
	config Config
}

// New binds fn to args and kwargs. At most one Config may be passed.
func New[A comparable, R any](
	fn Computation[A, R],
	args []A,
	kwargs Kwargs,
	config ...Config,
) *Functor[A, R] {
	return newFunctor(fn, args, kwargs, normalizeConfig(config))
}

func newFunctor[A comparable, R any](fn Computation[A, R], args []A, kwargs Kwargs, config Config) *Functor[A, R] {
	return &Functor[A, R]{
		fn:     fn,
		args:   slices.Clone(args),
		kwargs: maps.Clone(kwargs),
		cache:  newTable[R](),
		config: config,
	}
}

// Bound returns a copy of the bound arguments.
func (f *Functor[A, R]) Bound() Signature[A] {
	return Signature[A]{Args: slices.Clone(f.args), Kwargs: maps.Clone(f.kwargs)}
}

// Call runs the computation on the bound arguments followed by args, with the
// bound kwargs overlaid by kwargs. A signature seen before is answered from the
// cache without running the computation again.
func (f *Functor[A, R]) Call(args []A, kwargs Kwargs) R {
	sig := f.bind(args, kwargs)
	key := sig.path()
	if res, ok := f.cache.load(key); ok {
		return res
	}
	res := f.invoke(sig)
	f.cache.store(key, res)
	if f.config.LogCalls {
		f.LogCall(sig.Args, sig.Kwargs, res)
	}
	return res
}

// ClearCache drops every cached result. Bound arguments are kept.
func (f *Functor[A, R]) ClearCache() {
	f.cache.clear()
}

// CacheLen returns the number of cached signatures.
func (f *Functor[A, R]) CacheLen() int {
	return f.cache.len()
}

// Equal reports whether both functors wrap the same computation (by code
// pointer) with structurally equal bound arguments. Caches are ignored.
// Closures created from the same function literal share a code pointer.
func (f *Functor[A, R]) Equal(other *Functor[A, R]) bool {
	if f == nil || other == nil {
		return f == other
	}
	return helper.FuncPointer(f.fn) == helper.FuncPointer(other.fn) &&
		f.Bound().Equal(other.Bound())
}

// LogCall emits a single info line describing a call.
func (f *Functor[A, R]) LogCall(args []A, kwargs Kwargs, result R) {
	name := helper.FuncName(f.fn)
	sig := Signature[A]{Args: args, Kwargs: kwargs}
	f.config.Logger.Info(
		fmt.Sprintf("calling %s with args %v and kwargs %v resulted in %v", name, args, kwargs, result),
		zap.String("computation", name),
		zap.Any("args", args),
		zap.Any("kwargs", kwargs),
		zap.Any("result", result),
		zap.Uint64("signature", sig.Fingerprint()),
	)
}

func (f *Functor[A, R]) String() string {
	return fmt.Sprintf("Functor{fn: %s, bound: %v, cached: %d}", helper.FuncName(f.fn), f.Bound(), f.CacheLen())
}

func (f *Functor[A, R]) bind(args []A, kwargs Kwargs) Signature[A] {
	merged := make(Kwargs, len(f.kwargs)+len(kwargs))
	maps.Copy(merged, f.kwargs)
	maps.Copy(merged, kwargs)
	return Signature[A]{
		Args:   append(slices.Clone(f.args), args...),
		Kwargs: merged,
	}
}

// invoke hands the computation its own copies so it cannot alias the bound state.
func (f *Functor[A, R]) invoke(sig Signature[A]) R {
	if sw := f.config.Stopwatch; sw != nil {
		start := sw.Start()
		defer sw.Stop(start)
	}
	return f.fn(slices.Clone(sig.Args), maps.Clone(sig.Kwargs))
}

func (f *Functor[A, R]) clone() *Functor[A, R] {
	c := newFunctor(f.fn, f.args, f.kwargs, f.config)
	c.cache = f.cache.clone()
	return c
}
