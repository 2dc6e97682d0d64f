package bdeque

// DropCallback is the callback function that is called for each element
// discarded by Clear. It is called synchronously, in front-to-back order.
type DropCallback[T any] func(elem T)

// Option configures a Deque.
type Option[T any] interface {
	apply(*options[T])
}

type options[T any] struct {
	onDrop DropCallback[T]
}

type optionf[T any] func(*options[T])

func (f optionf[T]) apply(o *options[T]) {
	f(o)
}

// WithDropCallbackOption returns an Option that sets the Deque drop callback.
func WithDropCallbackOption[T any](f DropCallback[T]) Option[T] {
	return optionf[T](func(o *options[T]) {
		o.onDrop = f
	})
}
