// Package hashing provides position hashing and distinct-position counting
// for threat-engine games.
package hashing

import (
	"github.com/lgbarn/threatboard/internal/chess"
	"github.com/lgbarn/threatboard/internal/engine"
)

// zobristSeed offsets every key so that square 0 with kind 0 is not zero.
const zobristSeed = 0x9e3779b97f4a7c15

// sideToMoveKey is folded in when SideB is to move.
var sideToMoveKey = splitmix64(zobristSeed ^ 0xb1d0)

// splitmix64 is the finaliser of the SplitMix64 generator. It gives a
// well-mixed key for any input without a precomputed table, so boards of
// any size hash the same way.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// pieceKey returns the key for kind of side standing on square index sq.
func pieceKey(sq int, kind chess.Kind, side chess.Side) uint64 {
	return splitmix64(zobristSeed + uint64(sq)*uint64(chess.NumKinds)*uint64(chess.NumSides) +
		uint64(kind)*uint64(chess.NumSides) + uint64(side))
}

// squares calls fn for every occupied square of b with its linear index.
func squares(b *engine.Board, fn func(sq int, p *engine.Piece)) {
	size := b.Size()
	for f := 0; f < size; f++ {
		for r := 0; r < size; r++ {
			p, err := b.At(chess.Coord{File: f, Rank: r})
			if err != nil || p.IsEmpty() {
				continue
			}
			fn(f*size+r, p)
		}
	}
}

// ZobristHash hashes the piece placement and side to move of g. Threat
// sets are not hashed; they follow from placement.
func ZobristHash(g *engine.Game) uint64 {
	var h uint64
	squares(g.Board(), func(sq int, p *engine.Piece) {
		h ^= pieceKey(sq, p.Kind(), p.Side())
	})
	if g.ToMove() == chess.SideB {
		h ^= sideToMoveKey
	}
	return h
}

// WeakHash is a cheap additive hash of piece placement, used as a
// secondary check against Zobrist collisions.
func WeakHash(b *engine.Board) uint32 {
	var h uint32
	squares(b, func(sq int, p *engine.Piece) {
		h += uint32(sq+1) * (uint32(p.Kind())*uint32(chess.NumSides) + uint32(p.Side()) + 1)
	})
	return h
}

// Signature identifies a position.
type Signature struct {
	// Hash is the Zobrist hash of placement and side to move
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
	// Pieces is the number of non-empty pieces
	Pieces int
}

// SignatureOf computes the signature of g's current position.
func SignatureOf(g *engine.Game) Signature {
	pieces := 0
	squares(g.Board(), func(int, *engine.Piece) { pieces++ })
	return Signature{
		Hash:     ZobristHash(g),
		WeakHash: WeakHash(g.Board()),
		Pieces:   pieces,
	}
}

// PositionSet tracks seen positions.
type PositionSet struct {
	// table stores seen signatures by Zobrist hash
	table map[uint64][]Signature
	// duplicates counts positions seen more than once
	duplicates int
	// unique counts distinct positions stored
	unique int
	// maxCapacity limits stored positions; 0 means unlimited
	maxCapacity int
}

// NewPositionSet creates an empty set. maxCapacity of 0 means unlimited.
func NewPositionSet(maxCapacity int) *PositionSet {
	return &PositionSet{
		table:       make(map[uint64][]Signature),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd records g's position. It returns true if the position had
// already been seen. Once the set is full new positions are not stored.
func (s *PositionSet) CheckAndAdd(g *engine.Game) bool {
	if g == nil {
		return false
	}
	return s.checkAndAdd(SignatureOf(g))
}

func (s *PositionSet) checkAndAdd(sig Signature) bool {
	for _, existing := range s.table[sig.Hash] {
		if existing == sig {
			s.duplicates++
			return true
		}
	}
	if s.IsFull() {
		return false
	}
	s.table[sig.Hash] = append(s.table[sig.Hash], sig)
	s.unique++
	return false
}

// DuplicateCount returns the number of repeated positions detected.
func (s *PositionSet) DuplicateCount() int {
	return s.duplicates
}

// UniqueCount returns the number of distinct positions stored.
func (s *PositionSet) UniqueCount() int {
	return s.unique
}

// IsFull returns true if the set has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (s *PositionSet) IsFull() bool {
	return s.maxCapacity > 0 && s.unique >= s.maxCapacity
}

// Reset clears the set.
func (s *PositionSet) Reset() {
	s.table = make(map[uint64][]Signature)
	s.duplicates = 0
	s.unique = 0
}
