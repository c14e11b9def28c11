package functor

import (
	"fmt"
	"maps"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Kwargs are keyword arguments. Order never matters.
type Kwargs = map[string]string

// Signature is an argument list plus keyword arguments.
// It is the cache key of a Functor and is compared by full structural equality.
type Signature[A comparable] struct {
	Args   []A
	Kwargs Kwargs
}

// Equal reports structural equality. nil and empty are equal.
func (s Signature[A]) Equal(other Signature[A]) bool {
	return slices.Equal(s.Args, other.Args) && maps.Equal(s.Kwargs, other.Kwargs)
}

// Fingerprint is a 64-bit digest of the canonical form, for diagnostics only.
// Equal signatures share a fingerprint; the converse does not hold.
func (s Signature[A]) Fingerprint() uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "%d\x00", len(s.Args))
	for _, a := range s.Args {
		fmt.Fprintf(d, "%#v\x00", a)
	}
	keys := slices.Sorted(maps.Keys(s.Kwargs))
	fmt.Fprintf(d, "%d\x00", len(keys))
	for _, k := range keys {
		fmt.Fprintf(d, "%q=%q\x00", k, s.Kwargs[k])
	}
	return d.Sum64()
}

func (s Signature[A]) String() string {
	return fmt.Sprintf("Signature{Args: %v, Kwargs: %v}", s.Args, s.Kwargs)
}

// path lays the signature out as a trie path:
// len(args), args..., len(kwargs), then sorted key/value pairs.
func (s Signature[A]) path() []any {
	keys := slices.Sorted(maps.Keys(s.Kwargs))
	p := make([]any, 0, 2+len(s.Args)+2*len(keys))
	p = append(p, len(s.Args))
	for _, a := range s.Args {
		p = append(p, a)
	}
	p = append(p, len(keys))
	for _, k := range keys {
		p = append(p, k, s.Kwargs[k])
	}
	return p
}
