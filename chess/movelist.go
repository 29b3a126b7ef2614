package chess

import (
	"math/rand"
	"slices"
)

// MaxMoves is the largest legal move count reachable from any
// position, used to size MoveList's backing array so it never
// allocates during generation.
const MaxMoves = 218

// MoveList is a fixed-capacity move container: add, random sampling,
// sorting by a caller-supplied comparator, clearing, and indexing,
// with no heap allocation on the hot path. It implements Sink, so
// GenerateInto can fill one directly.
type MoveList struct {
	moves [MaxMoves]Move
	count int
}

// Add appends m. The caller is responsible for never exceeding
// MaxMoves; legal move generation never will.
func (l *MoveList) Add(m Move) {
	l.moves[l.count] = m
	l.count++
}

func (l *MoveList) Len() int { return l.count }

func (l *MoveList) At(i int) Move { return l.moves[i] }

func (l *MoveList) Clear() { l.count = 0 }

// Random returns a uniformly chosen move from the list. The caller
// must not call it on an empty list.
func (l *MoveList) Random() Move {
	return l.moves[rand.Intn(l.count)]
}

// SortFunc orders the list in place by cmp, following the same
// three-way contract as slices.SortFunc (negative when a sorts before
// b, zero when equal, positive otherwise).
func (l *MoveList) SortFunc(cmp func(a, b Move) int) {
	slices.SortFunc(l.moves[:l.count], cmp)
}

// Slice exposes the populated moves as a slice for iteration. The
// slice aliases the list's backing array and is invalidated by the
// next Clear/Add.
func (l *MoveList) Slice() []Move { return l.moves[:l.count] }

func (l *MoveList) Contains(m Move) bool {
	for i := 0; i < l.count; i++ {
		if l.moves[i] == m {
			return true
		}
	}
	return false
}
