package optioncell

import (
	"unsafe"

	"github.com/rawbytedev/optioncell/internal/layout"
)

// View conversions between option storage and cell storage. None of them
// allocate, copy payload bytes or touch the discriminants; they only change
// the type the same bytes are accessed through, and with it the permitted
// operations (option: mutate freely; cell: write once). Cell's underlying
// type is Option's struct, so the per-element retyping is checked by the
// compiler rather than asserted at runtime.
//
// A view denotes the same memory as its source. While one view is being
// written through, the caller must not access the storage through the
// other; the usual exclusive-access rules apply to the pair as a whole.

// FromMut views a single option as a cell.
func FromMut[T any](o *Option[T]) *Cell[T] {
	return (*Cell[T])(o)
}

// FromMutSlice views a slice of options as a slice of cells over the same
// backing array. Writes through either slice are visible through the other.
// Length and capacity carry over.
func FromMutSlice[T any](opts []Option[T]) []Cell[T] {
	if opts == nil {
		return nil
	}
	cells := unsafe.Slice((*Cell[T])(unsafe.SliceData(opts)), cap(opts))
	return cells[:len(opts)]
}

// OptionSlice is the reverse of FromMutSlice: it views a slice of cells as
// the option storage they live in, restoring free mutability.
func OptionSlice[T any](cells []Cell[T]) []Option[T] {
	if cells == nil {
		return nil
	}
	opts := unsafe.Slice((*Option[T])(unsafe.SliceData(cells)), cap(cells))
	return opts[:len(cells)]
}

// LayoutCompatible reports whether Option[T] and Cell[T] agree on size and
// alignment. Holds for every T by construction; tests assert it for a set
// of representative payload shapes.
func LayoutCompatible[T any]() bool {
	return layout.Same[Option[T], Cell[T]]()
}
