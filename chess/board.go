package chess

import "github.com/bambamboo15/cpp-chess/chess/internal/assert"

// Board is the mailbox+bitboard position representation: twelve piece
// bitboards indexed by Piece encoding (the two reserved indices exist
// but are always zero), two per-color occupancy bitboards, one total
// occupancy bitboard, and a 64-entry mailbox mapping square to Piece.
// The three derived summaries are maintained as invariants by the
// three mutation primitives below; nothing else may touch them.
type Board struct {
	pieces    [16]Bitboard // indexed by Piece; index 14 (NoPiece) and 15 unused
	colorOcc  [2]Bitboard
	occupied  Bitboard
	mailbox   [64]Piece
}

// NewBoard returns an empty board with every square vacant.
func NewBoard() Board {
	b := Board{}
	for sq := range b.mailbox {
		b.mailbox[sq] = NoPiece
	}
	return b
}

func (b *Board) PieceAt(sq Square) Piece     { return b.mailbox[sq] }
func (b *Board) Occupied() Bitboard          { return b.occupied }
func (b *Board) Occupancy(c Color) Bitboard  { return b.colorOcc[c] }
func (b *Board) PieceBitboard(p Piece) Bitboard { return b.pieces[p] }

func (b *Board) Pawns(c Color) Bitboard   { return b.pieces[MakePiece(Pawn, c)] }
func (b *Board) Knights(c Color) Bitboard { return b.pieces[MakePiece(Knight, c)] }
func (b *Board) Bishops(c Color) Bitboard { return b.pieces[MakePiece(Bishop, c)] }
func (b *Board) Rooks(c Color) Bitboard   { return b.pieces[MakePiece(Rook, c)] }
func (b *Board) Queens(c Color) Bitboard  { return b.pieces[MakePiece(Queen, c)] }
func (b *Board) Kings(c Color) Bitboard   { return b.pieces[MakePiece(King, c)] }

// KingSquare returns the square of the color's king. The caller must
// already know exactly one exists (a Position invariant).
func (b *Board) KingSquare(c Color) Square {
	bb := b.Kings(c)
	return popLSB(&bb)
}

// PutPiece places piece on sq. Requires sq be empty and piece be real;
// it sets the piece bit, both occupancy summaries, and the mailbox
// entry. This and RemovePiece/MovePiece are the only ways the board
// changes.
func (b *Board) PutPiece(piece Piece, sq Square) {
	assert.That(b.mailbox[sq] == NoPiece, "PutPiece: destination occupied")
	assert.That(piece != NoPiece, "PutPiece: placing NoPiece")

	mask := sq.Bit()
	b.pieces[piece] |= mask
	b.occupied |= mask
	b.colorOcc[piece.Color()] |= mask
	b.mailbox[sq] = piece
}

// RemovePiece clears sq, which must be occupied, inverting PutPiece.
func (b *Board) RemovePiece(sq Square) {
	piece := b.mailbox[sq]
	assert.That(piece != NoPiece, "RemovePiece: square already empty")

	mask := sq.Bit()
	b.pieces[piece] &^= mask
	b.occupied &^= mask
	b.colorOcc[piece.Color()] &^= mask
	b.mailbox[sq] = NoPiece
}

// MovePiece relocates the piece on from to to. Requires from occupied
// and to empty; XORs a two-bit mask into each summary.
func (b *Board) MovePiece(from, to Square) {
	piece := b.mailbox[from]
	assert.That(piece != NoPiece, "MovePiece: source empty")
	assert.That(b.mailbox[to] == NoPiece, "MovePiece: destination occupied")

	mask := from.Bit() | to.Bit()
	b.pieces[piece] ^= mask
	b.occupied ^= mask
	b.colorOcc[piece.Color()] ^= mask
	b.mailbox[to] = piece
	b.mailbox[from] = NoPiece
}

// String renders an ASCII board diagram, rank 8 down to rank 1.
func (b *Board) String() string {
	out := make([]byte, 0, 8*18)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			p := b.PieceAt(squareAt(file, rank))
			out = append(out, p.String()[0], ' ')
		}
		out = append(out, '\n')
	}
	return string(out)
}
