package board

// magicEntry is a perfect-hash table mapping a blocker-occupancy subset of
// BlockerMask(i) to the bitboard of cells reachable by a 2-step move from
// cell i under that exact occupancy, ignoring destination contents.
//
// The hash is (occupancy * Magic) >> (64 - magicBits); Table has
// 1<<magicBits entries, sized for the worst case of 6 blocker bits (every
// interior cell has exactly six 2-step directions).
type magicEntry struct {
	Magic uint64
	Table [1 << magicBits]Bitboard
}

const magicBits = 6

var magics [NCells]magicEntry

// submasks yields every subset of mask, including 0 and mask itself, via
// the standard "subset - 1 & mask" descending enumeration.
func submasks(mask Bitboard, fn func(Bitboard)) {
	sub := mask
	for {
		fn(sub)
		if sub == 0 {
			break
		}
		sub = (sub - 1) & mask
	}
}

// reachableFor computes, for cell i and a given subset of BlockerMask(i)
// denoting which midpoints are unoccupied, the bitboard of 2-step
// destinations whose midpoint lies in that subset.
func reachableFor(i int, emptyMidpoints Bitboard) Bitboard {
	var dest Bitboard
	for _, nb := range N2(i) {
		if emptyMidpoints.Has(nb.Mid) {
			dest = dest.Set(nb.End)
		}
	}
	return dest
}

// xorshift64star is a small seeded PRNG used to search for magic
// multipliers deterministically and reproducibly (the same technique the
// teacher's fancy-magic table builder and the original magic-number
// generator both use, minus the hardware RDRAND fallback neither needs
// here).
type xorshift64star struct{ state uint64 }

func (x *xorshift64star) next() uint64 {
	x.state ^= x.state >> 12
	x.state ^= x.state << 25
	x.state ^= x.state >> 27
	return x.state * 0x2545F4914F6CDD1D
}

// sparse63 returns a pseudo-random 64-bit value with relatively few set
// bits, which converges faster in magic-number search than a uniform
// random value.
func sparse63(rng *xorshift64star) uint64 {
	return rng.next() & rng.next() & rng.next()
}

func init() {
	rng := &xorshift64star{state: 0x9E3779B97F4A7C15}

	for i := 0; i < NCells; i++ {
		mask := BlockerMask(i)

		var subsets []Bitboard
		submasks(mask, func(s Bitboard) { subsets = append(subsets, s) })

		var found magicEntry
	search:
		for attempt := 0; attempt < 1_000_000; attempt++ {
			candidate := sparse63(rng)
			if candidate == 0 {
				continue
			}
			var table [1 << magicBits]Bitboard
			var used [1 << magicBits]bool
			for _, s := range subsets {
				idx := (uint64(s) * candidate) >> (64 - magicBits)
				dest := reachableFor(i, s)
				if used[idx] && table[idx] != dest {
					continue search
				}
				used[idx] = true
				table[idx] = dest
			}
			found = magicEntry{Magic: candidate, Table: table}
			break search
		}
		magics[i] = found
	}
}

// lookup2 returns the bitboard of 2-step destinations reachable from cell i
// given the set of currently-empty cells within BlockerMask(i).
func lookup2(i int, emptyMidpoints Bitboard) Bitboard {
	m := &magics[i]
	idx := (uint64(emptyMidpoints) * m.Magic) >> (64 - magicBits)
	return m.Table[idx]
}
