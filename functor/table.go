package functor

// table is a trie keyed by a path of comparable values.
// Each level compares keys with ==, so two paths hit the same leaf iff they
// are element-wise equal. Entries never expire; only clear drops them.
type table[R any] struct {
	root *node[R]
	size int
}

type node[R any] struct {
	children map[any]*node[R]
	value    R
	set      bool
}

func newTable[R any]() *table[R] {
	return &table[R]{root: &node[R]{}}
}

func (t *table[R]) load(keys []any) (R, bool) {
	n := t.root
	for _, k := range keys {
		child, ok := n.children[k]
		if !ok {
			var zero R
			return zero, false
		}
		n = child
	}
	return n.value, n.set
}

func (t *table[R]) store(keys []any, value R) {
	if len(keys) == 0 {
		panic("table: empty keys")
	}
	n := t.root
	for _, k := range keys {
		child, ok := n.children[k]
		if !ok {
			if n.children == nil {
				n.children = make(map[any]*node[R])
			}
			child = &node[R]{}
			n.children[k] = child
		}
		n = child
	}
	if !n.set {
		t.size++
	}
	n.value = value
	n.set = true
}

func (t *table[R]) len() int {
	return t.size
}

func (t *table[R]) clear() {
	t.root = &node[R]{}
	t.size = 0
}

// clone deep-copies the trie. Values are copied by assignment.
func (t *table[R]) clone() *table[R] {
	return &table[R]{root: t.root.clone(), size: t.size}
}

func (n *node[R]) clone() *node[R] {
	c := &node[R]{value: n.value, set: n.set}
	if n.children != nil {
		c.children = make(map[any]*node[R], len(n.children))
		for k, child := range n.children {
			c.children[k] = child.clone()
		}
	}
	return c
}
