package regexlib

import (
	"encoding/binary"
	"math/bits"
	"strconv"
	"strings"
)

// Position identifies one leaf occurrence in the augmented pattern.
// Positions start at 1; the end marker always holds the highest one.
type Position int

// PosSet is a set of positions backed by a bitset. Sets handed out by a
// compiled Regex are never modified afterwards.
type PosSet struct {
	words []uint64
}

func newPosSet(size int) PosSet {
	return PosSet{words: make([]uint64, (size+64)/64)}
}

func posSetOf(size int, ps ...Position) PosSet {
	s := newPosSet(size)
	for _, p := range ps {
		s.add(p)
	}
	return s
}

func (s *PosSet) add(p Position) {
	i := int(p)
	s.words[i/64] |= 1 << (i % 64)
}

func (s *PosSet) or(other PosSet) {
	for i := range s.words {
		if i < len(other.words) {
			s.words[i] |= other.words[i]
		}
	}
}

func (s PosSet) clone() PosSet {
	c := PosSet{words: make([]uint64, len(s.words))}
	copy(c.words, s.words)
	return c
}

func (s PosSet) union(other PosSet) PosSet {
	c := s.clone()
	c.or(other)
	return c
}

// Has reports whether p is in the set.
func (s PosSet) Has(p Position) bool {
	i := int(p)
	if i < 0 || i/64 >= len(s.words) {
		return false
	}
	return s.words[i/64]&(1<<(i%64)) != 0
}

// Len returns the number of positions in the set.
func (s PosSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Empty reports whether the set has no positions.
func (s PosSet) Empty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

func (s PosSet) forEach(f func(Position)) {
	for i, w := range s.words {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			f(Position(i*64 + bit))
			w &^= 1 << bit
		}
	}
}

// Positions returns the members in ascending order.
func (s PosSet) Positions() []Position {
	out := make([]Position, 0, s.Len())
	s.forEach(func(p Position) { out = append(out, p) })
	return out
}

// Ints is Positions as plain ints, for display tables.
func (s PosSet) Ints() []int {
	out := make([]int, 0, s.Len())
	s.forEach(func(p Position) { out = append(out, int(p)) })
	return out
}

// Equal reports whether both sets hold the same positions.
func (s PosSet) Equal(other PosSet) bool {
	return s.Key() == other.Key()
}

// Key is a canonical encoding of the set: equal sets have equal keys
// regardless of capacity.
func (s PosSet) Key() string {
	n := len(s.words)
	for n > 0 && s.words[n-1] == 0 {
		n--
	}
	var sb strings.Builder
	sb.Grow(n * 8)
	var buf [8]byte
	for _, w := range s.words[:n] {
		binary.LittleEndian.PutUint64(buf[:], w)
		_, _ = sb.Write(buf[:])
	}
	return sb.String()
}

func (s PosSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	s.forEach(func(p Position) {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.Itoa(int(p)))
	})
	sb.WriteByte('}')
	return sb.String()
}
