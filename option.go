package optioncell

// Option is a plain two-state value: absent or present with a payload.
// It is the layout reference for Cell: one bool discriminant followed by
// the payload stored inline. Unlike Cell it is freely mutable; it can be
// set, overwritten, cleared and taken any number of times.
type Option[T any] struct {
	set   bool
	value T
}

// Some returns an Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{set: true, value: value}
}

// None returns an absent Option. The zero value is equivalent.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o *Option[T]) IsSome() bool { return o.set }

// IsNone reports whether the option is absent.
func (o *Option[T]) IsNone() bool { return !o.set }

// Get returns the payload and whether it is present.
func (o *Option[T]) Get() (T, bool) {
	return o.value, o.set
}

// Set stores value, overwriting any previous payload.
func (o *Option[T]) Set(value T) {
	o.set = true
	o.value = value
}

// Clear resets the option to absent and zeroes the payload slot so a
// heap payload does not stay reachable.
func (o *Option[T]) Clear() {
	var zero T
	o.set = false
	o.value = zero
}

// Take moves the payload out, leaving the option absent.
func (o *Option[T]) Take() (T, bool) {
	v, ok := o.value, o.set
	o.Clear()
	return v, ok
}
