package bdeque

// IntoIter is a consuming double-ended iterator over a Deque.
// It owns the deque it was created from and drains it as it goes:
// iteration is one-shot and destructive, not restartable.
type IntoIter[T any] struct {
	d Deque[T]
}

// IntoIter converts the deque into a consuming iterator.
//
// The conversion moves the deque's contents into the iterator. The
// receiver is left empty and no longer reaches any node, so the drained
// sequence cannot be observed through it while iteration is in progress.
func (d *Deque[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{d: Deque[T]{head: d.head, tail: d.tail, size: d.size}}
	d.head, d.tail, d.size = nil, nil, 0
	return it
}

// Next removes and returns the front element.
// It returns false when the iterator is exhausted, and keeps returning
// false on every subsequent call.
func (it *IntoIter[T]) Next() (T, bool) {
	return it.d.PopFront()
}

// NextBack removes and returns the back element.
// It returns false when the iterator is exhausted, and keeps returning
// false on every subsequent call.
//
// Next and NextBack may be interleaved arbitrarily; together they yield
// each element exactly once.
func (it *IntoIter[T]) NextBack() (T, bool) {
	return it.d.PopBack()
}
