package Go_Splay

import (
	"math/bits"
)

// New BitArray with room for size bits before it needs to grow. Its length is 0.
func New(size int) BitArray {
	return BitArray{bits: make([]uint, 0, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a growable sequence of bits. The zero value is an empty BitArray ready to use.
type BitArray struct {
	bits []uint
	n    int
}

// Len is the number of bits pushed since the last Reset.
func (u *BitArray) Len() int {
	return u.n
}

// Get the i-th bit. 0<=i<Len().
func (u *BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u *BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u *BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Push b to the end of the array. Amortized O(1).
func (u *BitArray) Push(b bool) {
	if u.n/bits.UintSize == len(u.bits) {
		u.bits = append(u.bits, 0)
	}
	if b {
		u.Up(u.n)
	} else {
		u.Down(u.n)
	}
	u.n++
}

// Reset the length to 0. The underlying words are kept for reuse.
func (u *BitArray) Reset() {
	u.bits, u.n = u.bits[:0], 0
}
