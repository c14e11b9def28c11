// Package fabric is a named registry of handlers that host code can register,
// invoke and remove by string key at runtime.
//
// A Fabric keeps two independent tables:
//   - void handlers: func(), invoked for side effects only.
//   - argument handlers: func(A) R, stored behind the type-erased Handler
//     capability so that handlers of different types share one table.
//
// The same name may live in both tables at once. Re-registering a name
// replaces the previous handler; Remove clears the name from both tables.
//
// Type checks happen on both sides of the erasure boundary, with different
// outcomes:
//
//	fabric.RegisterWithArgument(f, "inc", func(x int) int { return x + 1 })
//
//	n, ok := fabric.InvokeWithArgument[int](f, "inc", 10)     // 11, true
//	s, ok := fabric.InvokeWithArgument[string](f, "inc", 10)  // "", false
//	fabric.InvokeWithArgument[int](f, "inc", "10")            // panics
//
// Asking for the wrong result type is an ordinary, recoverable absence.
// Feeding the wrong argument type is a programmer error and panics.
package fabric
