package bdeque

// A node's borrow field holds the state of its access guard:
// unborrowed, a positive count of outstanding read views,
// or exclusive while a single write view is out.
//
// The guard is strictly per node. It exists to catch aliased mutation of
// a node reached via two different paths, not to lock the whole chain.
// There is no waiter queue: a conflicting acquisition panics immediately.
const (
	unborrowed = 0
	exclusive  = -1
)

// borrowShared acquires a read view on the node.
// It panics if a write view is outstanding.
func (n *node[T]) borrowShared() {
	if n.borrow == exclusive {
		panic("bdeque: node already mutably borrowed")
	}
	n.borrow++
}

func (n *node[T]) unborrowShared() {
	if n.borrow <= 0 {
		panic("bdeque: shared borrow released twice")
	}
	n.borrow--
}

// borrowMut acquires the write view on the node.
// It panics if any view, read or write, is outstanding.
func (n *node[T]) borrowMut() {
	if n.borrow != unborrowed {
		panic("bdeque: node already borrowed")
	}
	n.borrow = exclusive
}

func (n *node[T]) unborrowMut() {
	if n.borrow != exclusive {
		panic("bdeque: exclusive borrow released twice")
	}
	n.borrow = unborrowed
}

// Ref is a read view onto a single element of a Deque.
//
// Any number of Ref views may be outstanding on the same node at once,
// but none while a RefMut is out. A Ref pins the node's access guard
// until Release is called.
type Ref[T any] struct {
	n *node[T]
}

// Value returns the viewed element.
func (r *Ref[T]) Value() T {
	if r.n == nil {
		panic("bdeque: use of a released view")
	}
	return r.n.elem
}

// Release ends the view. Every Ref must be released before a mutating
// operation touches the same node. It panics if called twice.
func (r *Ref[T]) Release() {
	if r.n == nil {
		panic("bdeque: view released twice")
	}
	r.n.unborrowShared()
	r.n = nil
}

// RefMut is a write view onto a single element of a Deque.
//
// At most one view of any kind may be outstanding on a node while a
// RefMut is out.
type RefMut[T any] struct {
	n *node[T]
}

// Value returns the viewed element.
func (r *RefMut[T]) Value() T {
	if r.n == nil {
		panic("bdeque: use of a released view")
	}
	return r.n.elem
}

// Set replaces the viewed element.
func (r *RefMut[T]) Set(elem T) {
	if r.n == nil {
		panic("bdeque: use of a released view")
	}
	r.n.elem = elem
}

// Release ends the view. It panics if called twice.
func (r *RefMut[T]) Release() {
	if r.n == nil {
		panic("bdeque: view released twice")
	}
	r.n.unborrowMut()
	r.n = nil
}
