package vecbool

import (
	"iter"
	"math/bits"
	"slices"
)

// chunkBits is the number of logical elements stored per chunk.
const chunkBits = 8

// VecBool is a growable boolean vector storing one element per bit.
//
// The zero value is an empty vector ready to use; New exists for symmetry
// with the other constructors. All checked operations (Get, Set, Pop) treat
// out-of-range indices as a normal outcome, never a panic. The unchecked
// variants trade that safety for direct-indexing speed.
type VecBool struct {
	len    int
	chunks []uint8
}

// New creates an empty VecBool.
//
// No heap allocation occurs until the first Push.
func New() *VecBool {
	return &VecBool{}
}

// NewWithCapacity creates an empty VecBool with storage pre-allocated for at
// least capacity elements. The pre-allocation is a hint only: Len and Cap of
// the result are both 0, and behavior is identical to New followed by the
// same pushes.
func NewWithCapacity(capacity int) *VecBool {
	if capacity < 0 {
		capacity = 0
	}
	return &VecBool{
		chunks: make([]uint8, 0, capacity/chunkBits+1),
	}
}

// NewZeroed creates a VecBool of the given length with every element false.
func NewZeroed(length int) *VecBool {
	if length < 0 {
		length = 0
	}
	return &VecBool{
		len:    length,
		chunks: make([]uint8, length/chunkBits+1),
	}
}

// Len returns the number of elements in the vector.
func (v *VecBool) Len() int {
	return v.len
}

// Cap returns the number of elements the current chunk storage can address.
func (v *VecBool) Cap() int {
	return len(v.chunks) * chunkBits
}

// Get returns the element at index. The second return value is false if
// index is out of range.
func (v *VecBool) Get(index int) (bool, bool) {
	if index < 0 || index >= v.len {
		return false, false
	}
	return v.GetUnchecked(index), true
}

// GetUnchecked returns the element at index without bounds checking against
// Len. The caller must guarantee 0 <= index < Cap(); violating that panics.
func (v *VecBool) GetUnchecked(index int) bool {
	chunkIdx, mask := bitPos(index)
	return v.chunks[chunkIdx]&mask != 0
}

// Set updates the element at index and reports whether the update happened.
// It returns false, leaving the vector unchanged, if index is out of range.
func (v *VecBool) Set(index int, value bool) bool {
	if index < 0 || index >= v.len {
		return false
	}
	v.SetUnchecked(index, value)
	return true
}

// SetUnchecked updates the element at index without bounds checking against
// Len. The caller must guarantee 0 <= index < Cap(); violating that panics.
func (v *VecBool) SetUnchecked(index int, value bool) {
	chunkIdx, mask := bitPos(index)
	if value {
		v.chunks[chunkIdx] |= mask
	} else {
		v.chunks[chunkIdx] &^= mask
	}
}

// Push appends value to the end of the vector, growing storage by exactly
// one chunk when no spare bit slots remain. Amortized O(1).
func (v *VecBool) Push(value bool) {
	if v.len >= v.Cap() {
		v.chunks = append(v.chunks, 0)
	}
	v.len++
	v.SetUnchecked(v.len-1, value)
}

// Pop removes and returns the last element. The second return value is
// false if the vector is empty.
//
// When the removed element was the sole occupant of the last chunk, that
// chunk is released, so storage never exceeds len/8 + 1 chunks.
func (v *VecBool) Pop() (bool, bool) {
	if v.len == 0 {
		return false, false
	}

	v.len--
	value := v.GetUnchecked(v.len)

	if v.len%chunkBits == 0 {
		v.chunks = v.chunks[:len(v.chunks)-1]
	}

	return value, true
}

// Iterator returns an iterator over all elements in index order.
//
// Each call yields an independent sequence; the vector holds no cursor
// state. The sequence is invalidated by any mutation of the vector during
// iteration.
func (v *VecBool) Iterator() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		// Full chunks contribute all chunkBits elements each.
		full := v.len / chunkBits
		for _, chunk := range v.chunks[:full] {
			for shift := 0; shift < chunkBits; shift++ {
				if !yield(chunk&(1<<shift) != 0) {
					return
				}
			}
		}

		// The final partial chunk contributes only the valid prefix.
		rem := v.len % chunkBits
		if rem == 0 {
			return
		}
		chunk := v.chunks[full]
		for shift := 0; shift < rem; shift++ {
			if !yield(chunk&(1<<shift) != 0) {
				return
			}
		}
	}
}

// Count returns the number of true elements.
func (v *VecBool) Count() int {
	full := v.len / chunkBits

	count := 0
	for _, chunk := range v.chunks[:full] {
		count += bits.OnesCount8(chunk)
	}

	if rem := v.len % chunkBits; rem > 0 {
		count += bits.OnesCount8(v.chunks[full] & (1<<rem - 1))
	}

	return count
}

// Clone returns a deep copy of the vector.
func (v *VecBool) Clone() *VecBool {
	return &VecBool{
		len:    v.len,
		chunks: slices.Clone(v.chunks),
	}
}

// Reset sets every element to false. The length is unchanged.
func (v *VecBool) Reset() {
	for i := range v.chunks {
		v.chunks[i] = 0
	}
}

// bitPos translates a logical index into a chunk index and a bit mask.
// Every accessor goes through this single mapping.
func bitPos(index int) (chunkIdx int, mask uint8) {
	return index / chunkBits, 1 << (index % chunkBits)
}
