// Package bdeque provides a generic double-ended queue over a
// doubly-linked chain of jointly owned nodes.
// Each node's contents are protected by a runtime shared/exclusive access
// guard: any number of read views or exactly one write view may be
// outstanding on a node at a time, and a conflicting acquisition panics.
// It is not safe for concurrent use.
//
// The New function creates a new deque instance.
//
// bdeque deliberately offers no non-consuming iterator. Walking the chain
// through read views would require every visited node's guard to stay
// pinned for the traversal's duration, turning the per-node guards into a
// structure-wide lock. Use repeated PeekFront and PeekBack for read
// access, or IntoIter for a full, destructive traversal.
package bdeque

// New returns a new Deque instance.
//
// By default a returned Deque has no drop callback.
// Option(s) can be used to customize the returned Deque.
func New[T any](opts ...Option[T]) *Deque[T] {
	var o options[T]
	for _, opt := range opts {
		opt.apply(&o)
	}
	return &Deque[T]{onDrop: o.onDrop}
}

// Deque is a double-ended queue. Elements can be pushed, popped and
// peeked at both ends, all in constant time.
//
// The zero value Deque is ready to use.
//
// If you want to configure a Deque, use the New function
// and provide proper Option(s).
type Deque[T any] struct {
	head   *node[T]
	tail   *node[T]
	size   int
	onDrop DropCallback[T]
}

// PushFront inserts elem at the front of the deque.
func (d *Deque[T]) PushFront(elem T) {
	n := newNode(elem)
	if d.head == nil {
		d.head = n.retain()
		d.tail = n.retain()
		d.size++
		return
	}
	old := d.head
	old.borrowMut()
	old.prev = n.retain()
	old.unborrowMut()
	n.borrowMut()
	n.next = old // ownership moves out of the head slot
	n.unborrowMut()
	d.head = n.retain()
	d.size++
}

// PushBack inserts elem at the back of the deque.
func (d *Deque[T]) PushBack(elem T) {
	n := newNode(elem)
	if d.tail == nil {
		d.tail = n.retain()
		d.head = n.retain()
		d.size++
		return
	}
	old := d.tail
	old.borrowMut()
	old.next = n.retain()
	old.unborrowMut()
	n.borrowMut()
	n.prev = old // ownership moves out of the tail slot
	n.unborrowMut()
	d.tail = n.retain()
	d.size++
}

// PopFront removes and returns the element at the front of the deque.
// It returns false if the deque is empty.
//
// It panics if a view is outstanding on the front node or its successor.
func (d *Deque[T]) PopFront() (T, bool) {
	if d.head == nil {
		var zero T
		return zero, false
	}
	old := d.head
	d.head = nil // ownership moves to the local handle
	old.borrowMut()
	next := old.next
	old.next = nil
	old.unborrowMut()
	if next == nil {
		// Last element, the tail slot gives up its ownership too.
		d.tail = nil
		old.release()
	} else {
		next.borrowMut()
		next.prev = nil
		next.unborrowMut()
		old.release() // the successor no longer owns old
		d.head = next // ownership moves out of old's next slot
	}
	d.size--
	return old.extract(), true
}

// PopBack removes and returns the element at the back of the deque.
// It returns false if the deque is empty.
//
// It panics if a view is outstanding on the back node or its predecessor.
func (d *Deque[T]) PopBack() (T, bool) {
	if d.tail == nil {
		var zero T
		return zero, false
	}
	old := d.tail
	d.tail = nil // ownership moves to the local handle
	old.borrowMut()
	prev := old.prev
	old.prev = nil
	old.unborrowMut()
	if prev == nil {
		// Last element, the head slot gives up its ownership too.
		d.head = nil
		old.release()
	} else {
		prev.borrowMut()
		prev.next = nil
		prev.unborrowMut()
		old.release() // the predecessor no longer owns old
		d.tail = prev // ownership moves out of old's prev slot
	}
	d.size--
	return old.extract(), true
}

// PeekFront returns a read view onto the front element.
// It returns false if the deque is empty.
//
// The view pins the front node's access guard until Release is called;
// until then any operation needing exclusive access to that node panics.
func (d *Deque[T]) PeekFront() (*Ref[T], bool) {
	if d.head == nil {
		return nil, false
	}
	d.head.borrowShared()
	return &Ref[T]{n: d.head}, true
}

// PeekBack returns a read view onto the back element.
// It returns false if the deque is empty.
//
// The view pins the back node's access guard until Release is called;
// until then any operation needing exclusive access to that node panics.
func (d *Deque[T]) PeekBack() (*Ref[T], bool) {
	if d.tail == nil {
		return nil, false
	}
	d.tail.borrowShared()
	return &Ref[T]{n: d.tail}, true
}

// PeekFrontMut returns a write view onto the front element.
// It returns false if the deque is empty.
//
// It panics if any view is already outstanding on the front node.
func (d *Deque[T]) PeekFrontMut() (*RefMut[T], bool) {
	if d.head == nil {
		return nil, false
	}
	d.head.borrowMut()
	return &RefMut[T]{n: d.head}, true
}

// PeekBackMut returns a write view onto the back element.
// It returns false if the deque is empty.
//
// It panics if any view is already outstanding on the back node.
func (d *Deque[T]) PeekBackMut() (*RefMut[T], bool) {
	if d.tail == nil {
		return nil, false
	}
	d.tail.borrowMut()
	return &RefMut[T]{n: d.tail}, true
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.size
}

// Clear discards all elements.
//
// Nodes are detached one at a time, front to back, so a chain of any
// length unwinds in a single pass without recursion. Each detached node
// is released under the same unique-ownership check as PopFront.
//
// If a drop callback is set, it is called for each discarded element.
func (d *Deque[T]) Clear() {
	for d.head != nil {
		elem, _ := d.PopFront()
		if d.onDrop != nil {
			d.onDrop(elem)
		}
	}
}
