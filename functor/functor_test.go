package functor_test

import (
	"strconv"
	"testing"

	"github.com/on-the-ground/rllt/functor"
	"github.com/on-the-ground/rllt/internal/logging"
	"github.com/on-the-ground/rllt/timeit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func addOne(args []int, _ functor.Kwargs) string {
	return strconv.Itoa(args[0] + 1)
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}
	return n
}

func double(args []string, _ functor.Kwargs) string {
	return strconv.Itoa(atoi(args[0]) * 2)
}

func square(args []string, _ functor.Kwargs) string {
	n := atoi(args[0])
	return strconv.Itoa(n * n)
}

func multiply(args []int, kwargs functor.Kwargs) string {
	return strconv.Itoa(args[0] * atoi(kwargs["by"]))
}

func isEven(args []int, _ functor.Kwargs) bool {
	return args[0]%2 == 0
}

func newTestConfig() functor.Config {
	return functor.NewConfig(logging.NewTestLogger(), true, nil)
}

func TestFunctor_Call(t *testing.T) {
	f := functor.New(addOne, []int{1}, nil, newTestConfig())
	assert.Equal(t, "2", f.Call(nil, nil))
}

func TestFunctor_CallAppendsToBoundArguments(t *testing.T) {
	sum := func(args []int, kwargs functor.Kwargs) string {
		total := 0
		for _, a := range args {
			total += a
		}
		return strconv.Itoa(total) + kwargs["unit"]
	}
	f := functor.New(sum, []int{1}, functor.Kwargs{"unit": "m"})

	assert.Equal(t, "6m", f.Call([]int{2, 3}, nil))
	assert.Equal(t, "6cm", f.Call([]int{2, 3}, functor.Kwargs{"unit": "cm"}))
	assert.Equal(t, functor.Signature[int]{Args: []int{1}, Kwargs: functor.Kwargs{"unit": "m"}}, f.Bound())
}

func TestFunctor_CallWithKwargs(t *testing.T) {
	f := functor.New(multiply, []int{3}, functor.Kwargs{"by": "4"})
	assert.Equal(t, "12", f.Call(nil, nil))
	assert.Equal(t, "15", f.Call(nil, functor.Kwargs{"by": "5"}))
}

func TestFunctor_CachesBySignature(t *testing.T) {
	count := 0
	spy := func(args []int, kwargs functor.Kwargs) string {
		count++
		return addOne(args, kwargs)
	}
	f := functor.New(spy, nil, nil)

	assert.Equal(t, "2", f.Call([]int{1}, functor.Kwargs{"a": "1", "b": "2"}))
	assert.Equal(t, "2", f.Call([]int{1}, functor.Kwargs{"b": "2", "a": "1"})) // cached
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, f.CacheLen())

	f.Call([]int{1}, functor.Kwargs{"a": "1"})
	f.Call([]int{1, 0}, functor.Kwargs{"a": "1", "b": "2"})
	assert.Equal(t, 3, count)
	assert.Equal(t, 3, f.CacheLen())
}

func TestFunctor_CacheKeyIsEffectiveSignature(t *testing.T) {
	count := 0
	spy := func(args []int, _ functor.Kwargs) string {
		count++
		return strconv.Itoa(len(args))
	}
	bound := functor.New(spy, []int{1, 2}, nil)

	assert.Equal(t, "2", bound.Call(nil, nil))
	assert.Equal(t, "3", bound.Call([]int{3}, nil))
	assert.Equal(t, "3", bound.Call([]int{3}, functor.Kwargs{}))
	assert.Equal(t, 2, count)
}

func TestFunctor_ClearCache(t *testing.T) {
	count := 0
	spy := func(args []int, kwargs functor.Kwargs) string {
		count++
		return addOne(args, kwargs)
	}
	f := functor.New(spy, []int{1}, nil)

	f.Call(nil, nil)
	f.ClearCache()
	assert.Zero(t, f.CacheLen())
	assert.Equal(t, functor.Signature[int]{Args: []int{1}}, f.Bound())

	f.Call(nil, nil)
	assert.Equal(t, 2, count)
}

func TestFunctor_ComputationCannotAliasBoundState(t *testing.T) {
	mutate := func(args []int, kwargs functor.Kwargs) string {
		args[0] = 100
		kwargs["x"] = "changed"
		return "done"
	}
	f := functor.New(mutate, []int{1}, functor.Kwargs{"x": "y"})
	f.Call(nil, nil)

	assert.Equal(t, functor.Signature[int]{Args: []int{1}, Kwargs: functor.Kwargs{"x": "y"}}, f.Bound())
	assert.Equal(t, 1, f.CacheLen())
}

func TestFunctor_Chain(t *testing.T) {
	f := functor.New(addOne, []int{1}, nil, newTestConfig())
	assert.Equal(t, "4", functor.Chain(f, double))
	assert.Equal(t, 1, f.CacheLen())
}

func TestFunctor_Map(t *testing.T) {
	f := functor.New(addOne, []int{1}, nil)
	assert.Equal(t, "4", functor.Map(f, square))
}

func TestFunctor_ChainIgnoresCallerArgumentsOfNext(t *testing.T) {
	var seen []string
	next := func(args []string, kwargs functor.Kwargs) string {
		seen = args
		assert.Empty(t, kwargs)
		return args[0]
	}
	f := functor.New(multiply, []int{2}, functor.Kwargs{"by": "21"})

	assert.Equal(t, "42", functor.Chain(f, next))
	assert.Equal(t, []string{"42"}, seen)
}

func TestFunctor_Filter(t *testing.T) {
	count := 0
	spy := func(args []int, kwargs functor.Kwargs) string {
		count++
		return addOne(args, kwargs)
	}

	odd := functor.New(spy, []int{1}, nil)
	res, ok := odd.Filter(isEven)
	assert.False(t, ok)
	assert.Empty(t, res)
	assert.Zero(t, count)
	assert.Zero(t, odd.CacheLen())

	even := functor.New(spy, []int{2}, nil)
	res, ok = even.Filter(isEven)
	assert.True(t, ok)
	assert.Equal(t, "3", res)
	assert.Equal(t, 1, count)
}

func TestFunctor_TransformArguments(t *testing.T) {
	calls := 0
	transform := func(args []int, _ functor.Kwargs) functor.Signature[int] {
		calls++
		return functor.Signature[int]{Args: []int{args[0] * 2}, Kwargs: functor.Kwargs{}}
	}
	f := functor.New(addOne, []int{1}, nil)
	f.Call(nil, nil)

	transformed := f.TransformArguments(transform)
	assert.Equal(t, 1, calls)
	assert.Equal(t, functor.Signature[int]{Args: []int{2}, Kwargs: functor.Kwargs{}}, transformed.Bound())
	assert.Zero(t, transformed.CacheLen())

	// the computation is the transform itself, run against [2]
	res := transformed.Call(nil, nil)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []int{4}, res.Args)

	assert.True(t, transformed.Equal(functor.New(transform, []int{2}, nil)))

	// the receiver is untouched
	assert.Equal(t, functor.Signature[int]{Args: []int{1}}, f.Bound())
	assert.Equal(t, 1, f.CacheLen())
}

func TestFunctor_CurryAndReduceReturnCopies(t *testing.T) {
	f := functor.New(addOne, []int{1}, nil)
	f.Call(nil, nil)

	curried := f.Curry([]int{5}, functor.Kwargs{"ignored": "yes"})
	assert.True(t, curried.Equal(f))
	assert.Equal(t, "2", curried.Call(nil, nil))
	assert.Equal(t, 1, curried.CacheLen())

	initial := "0"
	reduced := f.Reduce(func(args []int, _ functor.Kwargs, acc *string) string {
		return *acc
	}, &initial)
	assert.True(t, reduced.Equal(f))
	assert.Equal(t, 1, reduced.CacheLen())

	// copies do not share the cache
	curried.ClearCache()
	assert.Equal(t, 1, f.CacheLen())
	assert.Equal(t, 1, reduced.CacheLen())
}

func TestFunctor_Equal(t *testing.T) {
	a := functor.New(addOne, []int{1}, functor.Kwargs{"k": "v"})
	b := functor.New(addOne, []int{1}, functor.Kwargs{"k": "v"})
	b.Call([]int{7}, nil)
	assert.True(t, a.Equal(b), "cache contents are ignored")

	assert.False(t, a.Equal(functor.New(addOne, []int{2}, functor.Kwargs{"k": "v"})))
	assert.False(t, a.Equal(functor.New(addOne, []int{1}, nil)))
	assert.False(t, a.Equal(functor.New(multiply, []int{1}, functor.Kwargs{"k": "v"})))
	assert.False(t, a.Equal(nil))

	var none *functor.Functor[int, string]
	assert.True(t, none.Equal(nil))
}

func TestFunctor_LogCall(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	f := functor.New(addOne, []int{1}, nil, functor.NewConfig(zap.New(core), false, nil))

	f.Call(nil, nil)
	assert.Zero(t, logs.Len(), "LogCalls is off")

	f.LogCall([]int{1}, functor.Kwargs{"k": "v"}, "2")
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "addOne")
	assert.Contains(t, entries[0].Message, "resulted in 2")

	fields := entries[0].ContextMap()
	assert.Equal(t, "2", fields["result"])
	assert.Contains(t, fields["computation"], "addOne")
	want := functor.Signature[int]{Args: []int{1}, Kwargs: functor.Kwargs{"k": "v"}}.Fingerprint()
	assert.Equal(t, want, fields["signature"])
}

func TestFunctor_LogCallsOnComputationRunsOnly(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	f := functor.New(addOne, []int{1}, nil, functor.NewConfig(zap.New(core), true, nil))

	f.Call(nil, nil)
	f.Call(nil, nil)
	assert.Equal(t, 1, logs.Len())

	functor.Chain(f, double)
	assert.Equal(t, 2, logs.Len(), "chained functor inherits the config")
}

func TestFunctor_Stopwatch(t *testing.T) {
	sw := timeit.NewStopwatch()
	f := functor.New(addOne, []int{1}, nil, functor.NewConfig(nil, false, sw))

	f.Call(nil, nil)
	f.Call(nil, nil)
	f.Call([]int{5}, nil)

	assert.Len(t, sw.Spans(), 2)
}

func TestFunctor_ConfigPanicsOnMany(t *testing.T) {
	assert.Panics(t, func() {
		functor.New(addOne, nil, nil, functor.Config{}, functor.Config{})
	})
}

func TestFunctor_String(t *testing.T) {
	f := functor.New(addOne, []int{1}, nil)
	assert.Contains(t, f.String(), "addOne")
	assert.Contains(t, f.String(), "cached: 0")
}
