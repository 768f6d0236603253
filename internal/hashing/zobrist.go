package hashing

import (
	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/engine"
)

// zobristKeys holds one random key per (colour, piece, square) plus keys for
// the side to move, each castling-rights combination and each en-passant file.
type zobristKeys struct {
	pieces    [chess.NumColours][chess.NumPieceTypes][chess.NumSquares]uint64
	blackMove uint64
	castling  [16]uint64
	epFile    [chess.BoardSize]uint64
}

var keys = newZobristKeys(0x9E3779B97F4A7C15)

// newZobristKeys fills the key tables from a splitmix64 stream so hashes are
// stable across runs.
func newZobristKeys(seed uint64) *zobristKeys {
	state := seed
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	k := &zobristKeys{}
	for c := range k.pieces {
		for p := range k.pieces[c] {
			for sq := range k.pieces[c][p] {
				k.pieces[c][p][sq] = next()
			}
		}
	}
	k.blackMove = next()
	for i := range k.castling {
		k.castling[i] = next()
	}
	for i := range k.epFile {
		k.epFile[i] = next()
	}
	return k
}

// GenerateZobristHash returns the Zobrist hash of a position. Two positions
// hash alike when they have the same pieces, side to move, castling rights
// and en-passant capture; the ply count is ignored. The en-passant file only
// counts when a pawn of the side to move can take on it.
func GenerateZobristHash(p *engine.Position) uint64 {
	var hash uint64
	for c := chess.White; c <= chess.Black; c++ {
		for _, piece := range chess.PieceTypes {
			for _, sq := range p.Bitboard(c, piece).Squares() {
				hash ^= keys.pieces[c][piece.Index()][sq]
			}
		}
	}
	if p.SideToMove == chess.Black {
		hash ^= keys.blackMove
	}
	hash ^= keys.castling[p.Castling&0xF]
	if p.EnPassant != chess.NoSquare {
		pawns := p.Bitboard(p.SideToMove, chess.Pawn)
		if engine.PawnAttacks(p.SideToMove, pawns).Has(p.EnPassant) {
			hash ^= keys.epFile[p.EnPassant.File()]
		}
	}
	return hash
}

// WeakHash is a cheap checksum of piece placement used to confirm a Zobrist
// match. It ignores side to move and castling rights.
func WeakHash(p *engine.Position) uint32 {
	var sum uint32
	for c := chess.White; c <= chess.Black; c++ {
		for _, piece := range chess.PieceTypes {
			code := uint32(int(c)*chess.NumPieceTypes + piece.Index() + 1)
			for _, sq := range p.Bitboard(c, piece).Squares() {
				sum += code * uint32(sq+1)
			}
		}
	}
	return sum
}
