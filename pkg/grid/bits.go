package grid

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	wordSize     = 64
	log2WordSize = 6
)

// Bits is a 2D grid of single-bit cells packed into 64-bit words.
type Bits struct {
	w, h  int
	words []uint64
}

// NewBits allocates a w x h bit grid with every bit cleared.
func NewBits(w, h int) *Bits {
	checkSize(w, h)
	n := (w*h + wordSize - 1) >> log2WordSize
	return &Bits{w: w, h: h, words: make([]uint64, n)}
}

// Width returns the number of columns.
func (b *Bits) Width() int { return b.w }

// Height returns the number of rows.
func (b *Bits) Height() int { return b.h }

func (b *Bits) locate(col, row int) (int, uint64) {
	checkIndex(col, row, b.w, b.h)
	i := row*b.w + col
	return i >> log2WordSize, 1 << uint(i&(wordSize-1))
}

// Get returns the bit at (col, row) as 0 or 1.
func (b *Bits) Get(col, row int) int {
	w, mask := b.locate(col, row)
	if b.words[w]&mask != 0 {
		return 1
	}
	return 0
}

// Put sets the bit at (col, row) and returns its previous value.
func (b *Bits) Put(col, row, bit int) int {
	if bit != 0 && bit != 1 {
		panic(fmt.Sprintf("grid: bit value %d is not 0 or 1", bit))
	}
	w, mask := b.locate(col, row)
	old := 0
	if b.words[w]&mask != 0 {
		old = 1
	}
	if bit == 1 {
		b.words[w] |= mask
	} else {
		b.words[w] &^= mask
	}
	return old
}

// Count returns the number of set bits.
func (b *Bits) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// MapRowMajor calls apply for every cell, columns varying fastest. The bit
// passed to apply is read just before the visit.
func (b *Bits) MapRowMajor(apply func(col, row int, b *Bits, bit int)) {
	RowMajor(b.w, b.h, func(col, row int) {
		apply(col, row, b, b.Get(col, row))
	})
}

// MapColMajor calls apply for every cell, rows varying fastest.
func (b *Bits) MapColMajor(apply func(col, row int, b *Bits, bit int)) {
	ColMajor(b.w, b.h, func(col, row int) {
		apply(col, row, b, b.Get(col, row))
	})
}

// String renders the grid as rows of 0 and 1, each ending in a newline.
func (b *Bits) String() string {
	var sb strings.Builder
	sb.Grow((b.w + 1) * b.h)
	b.MapRowMajor(func(col, row int, _ *Bits, bit int) {
		sb.WriteByte('0' + byte(bit))
		if col == b.w-1 {
			sb.WriteByte('\n')
		}
	})
	return sb.String()
}

// Free releases the backing store. The grid must not be used afterwards.
func (b *Bits) Free() {
	b.words = nil
	b.w, b.h = 0, 0
}

var (
	_ Grid[int] = (*Bits)(nil)
	_ Grid[int] = (*Dense[int])(nil)
)
