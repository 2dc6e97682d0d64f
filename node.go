package bdeque

// node is a single slot in the chain. A node is jointly owned by its
// neighbors and, at the endpoints, by the deque itself: every owning slot
// (head, tail, a neighbor's next or prev, or a local handle the node has
// been moved out into) holds one reference counted in refs. Moving a node
// between owning slots does not change the count.
//
// borrow arbitrates access to the node's contents, see borrow.go.
type node[T any] struct {
	elem   T
	next   *node[T]
	prev   *node[T]
	refs   int
	borrow int
}

func newNode[T any](elem T) *node[T] {
	return &node[T]{elem: elem}
}

// retain records a new owning reference and returns the node
// so that it can be assigned to the owning slot in one expression.
func (n *node[T]) retain() *node[T] {
	n.refs++
	return n
}

// release drops one owning reference.
func (n *node[T]) release() {
	if n.refs <= 0 {
		panic("bdeque: release of an unowned node")
	}
	n.refs--
}

// extract moves the element out of a detached node.
//
// The caller's handle must be the last remaining owner and no view may be
// outstanding on the node; anything else means an owning reference or a
// borrow leaked, which the structure cannot recover from.
func (n *node[T]) extract() T {
	if n.refs != 1 {
		panic("bdeque: detached node is not uniquely owned")
	}
	if n.borrow != unborrowed {
		panic("bdeque: detached node is still borrowed")
	}
	n.refs = 0
	return n.elem
}
