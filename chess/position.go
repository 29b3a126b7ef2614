package chess

import "github.com/bambamboo15/cpp-chess/chess/internal/assert"

// historyCapacity is the fixed size of a Position's Zobrist history
// buffer. This is a hard ceiling carried over from the source: ply
// indices beyond this are a programmer error, not a condition the
// Position tries to recover from by growing the buffer. 512 plies is
// 256 full moves, far past any game this engine will ever be asked to
// hold in memory at once.
const historyCapacity = 512

// Position is a Board plus every piece of state a move needs to be
// made and unmade: side to move, castling rights, the en-passant
// target, the halfmove clock, a ply counter, the current Zobrist key,
// and the fixed-capacity history of keys indexed by ply that backs
// threefold-repetition detection. It owns all of this directly; there
// are no shared-ownership graphs or cycles.
type Position struct {
	board         Board
	turn          Color
	castling      CastlingFlags
	epSquare      Square
	halfmoveClock int
	ply           int
	hash          uint64
	history       [historyCapacity]uint64
}

// UndoInfo is everything needed to invert one Make: the previous
// halfmove clock, the captured piece (NoPiece if none, and for en
// passant the captured pawn rather than whatever sits on the
// destination square), the previous castling rights, and the previous
// en-passant square. The Zobrist key itself is not stored here; it is
// recovered from the history buffer after the ply counter is
// decremented.
type UndoInfo struct {
	halfmoveClock int
	captured      Piece
	castling      CastlingFlags
	epSquare      Square
}

func (p *Position) Board() *Board           { return &p.board }
func (p *Position) Turn() Color             { return p.turn }
func (p *Position) Castling() CastlingFlags { return p.castling }
func (p *Position) EnPassant() Square       { return p.epSquare }
func (p *Position) HalfmoveClock() int      { return p.halfmoveClock }
func (p *Position) Ply() int                { return p.ply }
func (p *Position) Hash() uint64            { return p.hash }
func (p *Position) FullmoveNumber() int     { return p.ply/2 + 1 }

// setupIncrementalState computes the Zobrist key from scratch and
// seeds history[ply] with it. Called once, right after a position is
// constructed from a FEN-like descriptor; every later key is derived
// incrementally by Make/Unmake.
func (p *Position) setupIncrementalState() {
	p.hash = computeZobrist(&p.board, p.turn, p.castling, p.epSquare)
	p.history[p.ply] = p.hash
}

// Make applies move, which must be pseudolegal and must belong to the
// side currently to move. It is infallible on well-formed input;
// violating either precondition is a programmer error caught only
// under the chessdebug build tag. Returns the UndoInfo needed to
// invert the move with Unmake.
func (p *Position) Make(move Move) UndoInfo {
	us := p.turn
	them := us.Other()

	from, to := move.From(), move.To()
	pieceFrom := p.board.PieceAt(from)
	pieceTo := p.board.PieceAt(to)

	assert.That(pieceFrom != NoPiece, "Make: no piece on origin square")
	assert.That(pieceFrom.Color() == us, "Make: moving piece belongs to the wrong side")

	undo := UndoInfo{
		halfmoveClock: p.halfmoveClock,
		captured:      capturedPieceFor(move, pieceTo, them),
		castling:      p.castling,
		epSquare:      p.epSquare,
	}

	p.halfmoveClock++
	p.ply++
	assert.That(p.ply < historyCapacity, "Make: ply exceeds the fixed history capacity")

	if pieceFrom.Type() == Pawn || move.IsCapture() {
		p.halfmoveClock = 0
	}

	p.turn = them
	p.hash ^= zobristSide

	if p.epSquare != NoSquare {
		p.hash ^= zobristEnPassant[p.epSquare.File()]
	}
	if move.IsDoublePawnPush() {
		p.epSquare = move.DoublePawnPushEnPassantSquare(us)
		p.hash ^= zobristEnPassant[p.epSquare.File()]
	} else {
		p.epSquare = NoSquare
	}

	p.hash ^= zobristCastling[p.castling]
	if pieceFrom.Type() == King {
		p.castling &^= KingsideFor(us) | QueensideFor(us)
	} else if pieceFrom.Type() == Rook {
		if from == kingsideCastleRookFrom[us] {
			p.castling &^= KingsideFor(us)
		} else if from == queensideCastleRookFrom[us] {
			p.castling &^= QueensideFor(us)
		}
	}
	if pieceTo.Type() == Rook && pieceTo.Color() == them {
		if to == kingsideCastleRookFrom[them] {
			p.castling &^= KingsideFor(them)
		} else if to == queensideCastleRookFrom[them] {
			p.castling &^= QueensideFor(them)
		}
	}
	p.hash ^= zobristCastling[p.castling]

	if move.IsCapture() {
		capSq := move.CaptureDestination(us)
		captured := p.board.PieceAt(capSq)
		p.hash ^= zobristPieceSquare[captured][capSq]
		p.board.RemovePiece(capSq)
	}

	if move.IsPromotion() {
		promoted := MakePiece(move.PromotionType(), us)
		p.hash ^= zobristPieceSquare[pieceFrom][from]
		p.hash ^= zobristPieceSquare[promoted][to]
		p.board.RemovePiece(from)
		p.board.PutPiece(promoted, to)
	} else {
		p.hash ^= zobristPieceSquare[pieceFrom][from]
		p.hash ^= zobristPieceSquare[pieceFrom][to]
		p.board.MovePiece(from, to)
	}

	if move.IsKingsideCastle() {
		rf, rt := kingsideCastleRookFrom[us], kingsideCastleRookTo[us]
		rook := MakePiece(Rook, us)
		p.hash ^= zobristPieceSquare[rook][rf]
		p.hash ^= zobristPieceSquare[rook][rt]
		p.board.MovePiece(rf, rt)
	} else if move.IsQueensideCastle() {
		rf, rt := queensideCastleRookFrom[us], queensideCastleRookTo[us]
		rook := MakePiece(Rook, us)
		p.hash ^= zobristPieceSquare[rook][rf]
		p.hash ^= zobristPieceSquare[rook][rt]
		p.board.MovePiece(rf, rt)
	}

	p.history[p.ply] = p.hash
	return undo
}

// capturedPieceFor resolves the UndoInfo.captured field: for en
// passant the captured piece is synthesized as the opposing pawn
// (pieceTo is NoPiece on the destination square in that case), and
// otherwise it is whatever already sat on the destination.
func capturedPieceFor(move Move, pieceTo Piece, them Color) Piece {
	if move.IsEnPassant() {
		return MakePiece(Pawn, them)
	}
	return pieceTo
}

// Unmake inverts the most recent Make. The side that made the move is
// taken to be the opposite of the current side to move. It does
// not recompute the Zobrist key: decrementing ply exposes the correct
// prior key already sitting in the history buffer.
func (p *Position) Unmake(move Move, undo UndoInfo) {
	us := p.turn.Other()
	assert.That(p.turn != us, "Unmake: side-to-move bookkeeping is inconsistent")

	p.castling = undo.castling
	p.halfmoveClock = undo.halfmoveClock
	p.epSquare = undo.epSquare
	p.turn = us
	p.ply--
	p.hash = p.history[p.ply]

	from, to := move.From(), move.To()

	if move.IsPromotion() {
		p.board.RemovePiece(to)
		p.board.PutPiece(MakePiece(Pawn, us), from)
	} else {
		p.board.MovePiece(to, from)
	}

	if move.IsCapture() {
		p.board.PutPiece(undo.captured, move.CaptureDestination(us))
	} else if move.IsKingsideCastle() {
		p.board.MovePiece(kingsideCastleRookTo[us], kingsideCastleRookFrom[us])
	} else if move.IsQueensideCastle() {
		p.board.MovePiece(queensideCastleRookTo[us], queensideCastleRookFrom[us])
	}
}

// MakeNull flips the side to move and clears the en-passant square
// without touching the board, for use by search techniques built atop
// this state machine (not itself a search technique). UnmakeNull
// restores exactly what MakeNull changed.
type NullUndoInfo struct {
	epSquare Square
}

func (p *Position) MakeNull() NullUndoInfo {
	undo := NullUndoInfo{epSquare: p.epSquare}

	p.hash ^= zobristSide
	if p.epSquare != NoSquare {
		p.hash ^= zobristEnPassant[p.epSquare.File()]
		p.epSquare = NoSquare
	}
	p.turn = p.turn.Other()
	p.ply++
	assert.That(p.ply < historyCapacity, "MakeNull: ply exceeds the fixed history capacity")
	p.history[p.ply] = p.hash
	return undo
}

func (p *Position) UnmakeNull(undo NullUndoInfo) {
	p.ply--
	p.hash = p.history[p.ply]
	p.turn = p.turn.Other()
	p.epSquare = undo.epSquare
}

// Test makes move, calls fn, then unmakes move — a one-shot
// convenience for code that wants to probe a position after a
// tentative move without hand-pairing Make/Unmake itself.
func (p *Position) Test(move Move, fn func()) {
	undo := p.Make(move)
	fn()
	p.Unmake(move, undo)
}

// DrawByFiftyMoves reports whether the halfmove clock alone already
// forces a draw, per the standard 50-move rule (100 halfmoves).
func (p *Position) DrawByFiftyMoves() bool {
	return p.halfmoveClock >= 100
}

// DrawByRepetition reports whether the position just reached on this
// ply has occurred at least three times within the halfmove-clock
// window — the only window in which a repetition is reachable, since
// a pawn move or capture resets the clock and makes earlier positions
// unreachable by a repeating move sequence. This must be called right
// after the repeating position was reached.
func (p *Position) DrawByRepetition() bool {
	if p.ply < 8 {
		return false
	}
	last := p.history[p.ply]
	oldest := p.ply - p.halfmoveClock
	count := 0
	for i := p.ply; i >= oldest; i -= 2 {
		if p.history[i] == last {
			count++
		}
	}
	return count >= 3
}
