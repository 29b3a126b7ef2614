package chess

import "sync"

// zobristPRNG is the fast 64-bit xorshift generator from Stockfish's
// misc.h, used here for the same reason it's used there: reproducible,
// dependency-free, good-enough-for-hashing randomness seeded once at
// table-build time.
type zobristPRNG struct {
	seed uint64
}

func newZobristPRNG(seed uint64) *zobristPRNG {
	return &zobristPRNG{seed: seed}
}

func (r *zobristPRNG) rand64() uint64 {
	r.seed ^= r.seed >> 12
	r.seed ^= r.seed << 25
	r.seed ^= r.seed >> 27
	return r.seed * 2685821657736338717
}

var (
	zobristPieceSquare [16][64]uint64
	zobristEnPassant   [8]uint64
	zobristCastling    [16]uint64
	zobristSide        uint64

	zobristOnce sync.Once
)

func initZobrist() {
	zobristOnce.Do(buildZobrist)
}

func buildZobrist() {
	rng := newZobristPRNG(1070372)

	for _, p := range []Piece{
		WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing,
		BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing,
	} {
		for sq := 0; sq < 64; sq++ {
			zobristPieceSquare[p][sq] = rng.rand64()
		}
	}

	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.rand64()
	}

	for cr := 0; cr < 16; cr++ {
		zobristCastling[cr] = rng.rand64()
	}

	zobristSide = rng.rand64()
}

// computeZobrist recomputes a position's hash from scratch: the XOR
// of every occupied square's piece-square contribution, plus side,
// castling rights, and en-passant file contributions. Used by
// setupIncrementalState to seed a freshly parsed position's key, and
// by Validate as an independent cross-check against the incrementally
// maintained key.
func computeZobrist(b *Board, turn Color, rights CastlingFlags, ep Square) uint64 {
	var key uint64
	occ := b.Occupied()
	for occ != 0 {
		sq := popLSB(&occ)
		key ^= zobristPieceSquare[b.PieceAt(sq)][sq]
	}
	if turn == Black {
		key ^= zobristSide
	}
	if ep != NoSquare {
		key ^= zobristEnPassant[ep.File()]
	}
	key ^= zobristCastling[rights]
	return key
}
