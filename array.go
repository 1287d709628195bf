package wasmhello

// IntArray is a handle to a heap-allocated integer sequence, exclusively
// owned by its creator until released.
//
// The C example models a malloc/free pair; a Go rendition cannot (and need
// not) reproduce manual memory management, but it keeps the two-state
// lifecycle observable: a handle is live from CreateArray until
// Free, releasing is terminal, and releasing again is a no-op. Accessing a
// released handle is reported as ErrReleased instead of being undefined.
type IntArray struct {
	values   []int
	released bool
}

// CreateArray allocates an integer sequence of the given size, with entries
// holding index+1 for every index in [0,size).
//
// A size of 0 yields an empty but valid handle. A negative size is rejected
// with ErrInvalidSize; the C example leaves this case undefined, which is not
// an acceptable contract for a library surface.
func CreateArray(size int) (*IntArray, error) {
	if size < 0 {
		return nil, ErrInvalidSize
	}
	values := make([]int, size)
	for i := range values {
		values[i] = i + 1
	}
	tracer().Debugf("created array of size %d", size)
	return &IntArray{values: values}, nil
}

// FreeArray releases a, tolerating a nil handle as a no-op.
//
// It is the package-level spelling of (*IntArray).Free, matching the export
// surface of the C example module.
func FreeArray(a *IntArray) {
	a.Free()
}

// Free releases the array. Calling Free on a nil or already-released handle
// is a no-op; release is terminal.
func (a *IntArray) Free() {
	if a == nil || a.released {
		return
	}
	a.values = nil
	a.released = true
	tracer().Debugf("array freed")
}

// Released reports whether the handle has been released. A nil handle counts
// as released.
func (a *IntArray) Released() bool {
	return a == nil || a.released
}

// Len returns the number of entries, or 0 for a released or nil handle.
func (a *IntArray) Len() int {
	if a == nil {
		return 0
	}
	return len(a.values)
}

// At returns the entry at index i.
//
// It returns ErrReleased for a released or nil handle and ErrIndexOutOfBounds
// for an index outside [0,Len).
func (a *IntArray) At(i int) (int, error) {
	if a.Released() {
		return 0, ErrReleased
	}
	if i < 0 || i >= len(a.values) {
		return 0, ErrIndexOutOfBounds
	}
	return a.values[i], nil
}

// Values returns a copy of the entries, or nil for a released or nil handle.
// The copy keeps the handle's sequence exclusively owned.
func (a *IntArray) Values() []int {
	if a.Released() {
		return nil
	}
	out := make([]int, len(a.values))
	copy(out, a.values)
	return out
}
