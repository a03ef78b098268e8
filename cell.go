// Package optioncell provides a write-once cell that shares its in-memory
// representation with Option, so a mutable run of options can be viewed in
// place as cells (see reinterpret.go) and written through exactly once each.
//
// The cell performs no synchronization of its own. Every operation is a
// plain synchronous memory access; if several goroutines may call Set on
// the same cell, the caller must wrap it in a mutex or build an atomic
// variant on top.
package optioncell

import "errors"

var (
	ErrNotSet     = errors.New("value not set")
	ErrAlreadySet = errors.New("value already set")
)

// Cell is a single-assignment slot: empty until Set succeeds, then a
// read-only holder of its payload. Its underlying type is Option's struct,
// so the compiler guarantees identical size, alignment, field offsets and
// discriminant encoding for every payload type. That identity is what makes
// the conversions in reinterpret.go plain retypings of the same bytes.
//
// The zero value is an empty cell.
type Cell[T any] Option[T]

// New returns an empty cell.
func New[T any]() *Cell[T] {
	return &Cell[T]{}
}

// FromOption converts an option into a cell carrying the same state and
// payload. The argument is moved in; the caller's copy should be treated
// as dead afterwards or the payload ends up shared.
func FromOption[T any](o Option[T]) Cell[T] {
	return Cell[T](o)
}

// IsFilled reports whether the cell holds a value.
func (c *Cell[T]) IsFilled() bool { return c.set }

// IsEmpty reports whether the cell is still unset.
func (c *Cell[T]) IsEmpty() bool { return !c.set }

// Get returns a pointer to the payload, or ErrNotSet if the cell is empty.
// The pointer aliases the cell's own storage and stays valid for as long
// as the storage does. Get never mutates the cell.
func (c *Cell[T]) Get() (*T, error) {
	if !c.set {
		return nil, ErrNotSet
	}
	return &c.value, nil
}

// Set stores value if the cell is empty. A filled cell rejects the write
// with ErrAlreadySet and keeps its payload; the caller still holds value,
// so nothing is lost. This is the only mutating operation on a cell.
func (c *Cell[T]) Set(value T) error {
	if c.set {
		return ErrAlreadySet
	}
	c.value = value
	c.set = true
	return nil
}

// GetOrInit returns the payload, filling the cell from f first if it is
// empty. Panics if f recursively initializes the same cell.
func (c *Cell[T]) GetOrInit(f func() T) *T {
	if c.set {
		return &c.value
	}
	v := f()
	if err := c.Set(v); err != nil {
		panic("recursive initialization in GetOrInit")
	}
	return &c.value
}

// IntoOption consumes the cell, handing its state and payload back as a
// freely mutable option. The cell must not be used afterwards; the payload
// now belongs to the returned option.
func (c Cell[T]) IntoOption() Option[T] {
	return Option[T](c)
}

// GetMut exposes the cell's memory as a mutable option. This steps outside
// the write-once discipline, so it needs the same exclusive access the
// slice conversions need: no other reader or writer while the returned
// pointer is in use.
func (c *Cell[T]) GetMut() *Option[T] {
	return (*Option[T])(c)
}
