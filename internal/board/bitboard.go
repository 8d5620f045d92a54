package board

import "math/bits"

// Bitboard holds 45 cell bits in a 64-bit word; bits 45..63 are always
// zero and operations that could set them (Not in particular) must be
// masked against AllCellsMask.
type Bitboard uint64

// AllCellsMask has bits 0..44 set.
const AllCellsMask Bitboard = (1 << NCells) - 1

// Set returns b with bit i set.
func (b Bitboard) Set(i int) Bitboard { return b | (1 << uint(i)) }

// Clear returns b with bit i cleared.
func (b Bitboard) Clear(i int) Bitboard { return b &^ (1 << uint(i)) }

// Has reports whether bit i is set.
func (b Bitboard) Has(i int) bool { return b&(1<<uint(i)) != 0 }

// Not returns the complement of b, masked to the 45 playable bits.
func (b Bitboard) Not() Bitboard { return ^b & AllCellsMask }

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the index of the lowest set bit; callers must check b != 0.
func (b Bitboard) LSB() int { return bits.TrailingZeros64(uint64(b)) }

// PopLSB returns the lowest set bit's index and b with that bit cleared.
func (b Bitboard) PopLSB() (int, Bitboard) {
	i := b.LSB()
	return i, b & (b - 1)
}

// ForEach calls fn once per set bit, in ascending order.
func (b Bitboard) ForEach(fn func(i int)) {
	for b != 0 {
		var i int
		i, b = b.PopLSB()
		fn(i)
	}
}
