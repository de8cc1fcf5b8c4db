// Package observe provides a minimal synchronous observable value, the
// building block for the solution's derived-state graph. Writes push
// change notifications to subscribers before Set returns; there is no
// batching or deferred flushing, so dependents always read a consistent
// upstream state by the time they are notified.
package observe

// Value holds a comparable value and notifies subscribers when it changes.
type Value[T comparable] struct {
	v    T
	subs []func(T)
}

// NewValue creates a Value with an initial value. No notification fires
// for the initial value.
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{v: initial}
}

// Get returns the current value.
func (o *Value[T]) Get() T {
	return o.v
}

// Set stores v and synchronously notifies subscribers, in subscription
// order, if it differs from the current value.
func (o *Value[T]) Set(v T) {
	if v == o.v {
		return
	}
	o.v = v
	for _, fn := range o.subs {
		fn(v)
	}
}

// Subscribe registers fn to be called on every subsequent change.
func (o *Value[T]) Subscribe(fn func(T)) {
	o.subs = append(o.subs, fn)
}
