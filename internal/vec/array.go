package vec

import "fmt"

// DefaultCapacity is the initial buffer size used by New.
const DefaultCapacity = 4

const maxInt = int(^uint(0) >> 1)

// Array is a growable contiguous sequence of T. The zero value is an
// empty array with no buffer; it allocates on first insertion.
type Array[T any] struct {
	data   []T // backing buffer, len(data) is the capacity
	length int // live elements occupy data[:length]
}

// New returns an empty array with DefaultCapacity slots allocated.
func New[T any]() *Array[T] {
	return WithCapacity[T](DefaultCapacity)
}

// WithCapacity returns an empty array with exactly capacity slots
// allocated. Negative values are treated as zero; a zero-capacity
// array grows normally on the first insertion.
func WithCapacity[T any](capacity int) *Array[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Array[T]{data: make([]T, capacity)}
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.length }

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int { return len(a.data) }

// grow ensures the buffer holds at least minCapacity slots, doubling
// from the current capacity (or 1 when empty) until it fits. Live
// elements are copied into the new buffer in order. When doubling
// would overflow int the candidate saturates to minCapacity itself.
func (a *Array[T]) grow(minCapacity int) {
	if len(a.data) >= minCapacity {
		return
	}
	newCap := len(a.data)
	if newCap == 0 {
		newCap = 1
	}
	for newCap < minCapacity {
		if newCap > maxInt/2 {
			newCap = minCapacity
			break
		}
		newCap *= 2
	}
	next := make([]T, newCap)
	copy(next, a.data[:a.length])
	a.data = next
}

func (a *Array[T]) boundsCheck(index int) error {
	if index < 0 || index >= a.length {
		return fmt.Errorf("%w: index %d with length %d", ErrOutOfRange, index, a.length)
	}
	return nil
}

// Get returns the element at index, or ErrOutOfRange when index is
// outside [0, Len()).
func (a *Array[T]) Get(index int) (T, error) {
	if err := a.boundsCheck(index); err != nil {
		var zero T
		return zero, err
	}
	return a.data[index], nil
}

// Set overwrites the element at index in place.
func (a *Array[T]) Set(index int, value T) error {
	if err := a.boundsCheck(index); err != nil {
		return err
	}
	a.data[index] = value
	return nil
}

// At returns a pointer to the live element at index, valid until the
// next growth. Mutation through it is visible in the array.
func (a *Array[T]) At(index int) (*T, error) {
	if err := a.boundsCheck(index); err != nil {
		return nil, err
	}
	return &a.data[index], nil
}

// Push appends value, growing the buffer when full.
func (a *Array[T]) Push(value T) {
	a.grow(a.length + 1)
	a.data[a.length] = value
	a.length++
}

// Pop removes and returns the last element, or ErrEmpty when the
// array has no elements. Capacity is unchanged.
func (a *Array[T]) Pop() (T, error) {
	var zero T
	if a.length == 0 {
		return zero, fmt.Errorf("%w: pop", ErrEmpty)
	}
	a.length--
	value := a.data[a.length]
	a.data[a.length] = zero // release the slot's reference
	return value, nil
}

// Unshift inserts value at the front, moving every live element one
// slot to the right. Costs O(Len()).
func (a *Array[T]) Unshift(value T) {
	a.grow(a.length + 1)
	copy(a.data[1:a.length+1], a.data[:a.length])
	a.data[0] = value
	a.length++
}

// Shift removes and returns the first element, moving the remainder
// one slot to the left. Returns ErrEmpty when the array has no
// elements. Costs O(Len()).
func (a *Array[T]) Shift() (T, error) {
	var zero T
	if a.length == 0 {
		return zero, fmt.Errorf("%w: shift", ErrEmpty)
	}
	value := a.data[0]
	copy(a.data, a.data[1:a.length])
	a.length--
	a.data[a.length] = zero
	return value, nil
}

// Find returns a pointer to the first element satisfying pred, or nil
// when none matches. The pointer is a live view into the array.
func (a *Array[T]) Find(pred func(T) bool) *T {
	for i := 0; i < a.length; i++ {
		if pred(a.data[i]) {
			return &a.data[i]
		}
	}
	return nil
}

// FindIndex returns the index of the first element satisfying pred,
// or -1 when none matches.
func (a *Array[T]) FindIndex(pred func(T) bool) int {
	for i := 0; i < a.length; i++ {
		if pred(a.data[i]) {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy with its own buffer of the same capacity.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{data: make([]T, len(a.data)), length: a.length}
	copy(c.data, a.data[:a.length])
	return c
}

// CopyFrom replaces the receiver's contents with a deep copy of src,
// adopting src's capacity. Copying an array into itself is a no-op.
func (a *Array[T]) CopyFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.data = make([]T, len(src.data))
	copy(a.data, src.data[:src.length])
	a.length = src.length
}

// MoveFrom transfers src's buffer to the receiver in constant time.
// Afterwards src is valid and empty (length 0, capacity 0) and no
// longer owns a buffer. Moving an array into itself is a no-op.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.data = src.data
	a.length = src.length
	src.data = nil
	src.length = 0
}

// Items returns a copy of the live elements in order. Mutating the
// returned slice does not affect the array.
func (a *Array[T]) Items() []T {
	items := make([]T, a.length)
	copy(items, a.data[:a.length])
	return items
}

// Equal reports whether a and b hold the same elements in the same
// order. Capacity is not compared.
func Equal[T comparable](a, b *Array[T]) bool {
	if a.length != b.length {
		return false
	}
	for i := 0; i < a.length; i++ {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element comparison, for
// element types that are not comparable.
func EqualFunc[T any](a, b *Array[T], eq func(T, T) bool) bool {
	if a.length != b.length {
		return false
	}
	for i := 0; i < a.length; i++ {
		if !eq(a.data[i], b.data[i]) {
			return false
		}
	}
	return true
}
