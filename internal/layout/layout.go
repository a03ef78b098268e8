package layout

import "unsafe"

// SizeOf returns the size in bytes of T's representation.
func SizeOf[T any]() uintptr {
	var v T
	return unsafe.Sizeof(v)
}

// AlignOf returns the required alignment of T.
func AlignOf[T any]() uintptr {
	var v T
	return unsafe.Alignof(v)
}

// Same reports whether A and B have the same size and alignment. Field
// offsets are not probed here; callers comparing struct types check those
// with unsafe.Offsetof where they can name the fields.
func Same[A, B any]() bool {
	return SizeOf[A]() == SizeOf[B]() && AlignOf[A]() == AlignOf[B]()
}
