package chess

import "fmt"

// ParseUCIMove resolves a four- or five-character UCI move string
// (origin, destination, optional promotion letter) against pos,
// filling in whichever flag the position makes it — double push,
// capture, en passant, castle, or promotion — rather than assuming
// one the way a position-blind decoder would have to. An input that
// names no piece, names the wrong side's piece, targets a friendly
// piece, or names a destination that piece's movement pattern cannot
// reach is rejected. Full legality is not checked: a move that leaves
// the mover's own king in check is accepted, and any king move to the
// castling destination (g1/c1, or g8/c8 for Black) that is not a
// one-square step decodes as a castle without checking castling rights
// or the squares between.
func ParseUCIMove(pos *Position, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NullMove, fmt.Errorf("chess: invalid UCI move %q", s)
	}
	from, err := parseSquareStr(s[0:2])
	if err != nil {
		return NullMove, err
	}
	to, err := parseSquareStr(s[2:4])
	if err != nil {
		return NullMove, err
	}

	b := pos.Board()
	us := pos.Turn()

	pieceFrom := b.PieceAt(from)
	if pieceFrom == NoPiece {
		return NullMove, fmt.Errorf("chess: no piece on %v", from)
	}
	if pieceFrom.Color() != us {
		return NullMove, fmt.Errorf("chess: %v belongs to the side not to move", from)
	}
	pieceTo := b.PieceAt(to)
	if pieceTo != NoPiece && pieceTo.Color() == us {
		return NullMove, fmt.Errorf("chess: %v is occupied by a friendly piece", to)
	}

	switch pieceFrom.Type() {
	case Pawn:
		return parseUCIPawnMove(pos, from, to, s, us, pieceTo)
	case Knight:
		if KnightAttack(from)&to.Bit() == 0 {
			return NullMove, fmt.Errorf("chess: %v is not a knight move from %v", to, from)
		}
		return NewMove(from, to, captureFlag(pieceTo)), nil
	case King:
		return parseUCIKingMove(from, to, us, pieceTo)
	case Bishop:
		if BishopAttack(from, b.Occupied())&to.Bit() == 0 {
			return NullMove, fmt.Errorf("chess: %v is not a bishop move from %v", to, from)
		}
		return NewMove(from, to, captureFlag(pieceTo)), nil
	case Rook:
		if RookAttack(from, b.Occupied())&to.Bit() == 0 {
			return NullMove, fmt.Errorf("chess: %v is not a rook move from %v", to, from)
		}
		return NewMove(from, to, captureFlag(pieceTo)), nil
	case Queen:
		if QueenAttack(from, b.Occupied())&to.Bit() == 0 {
			return NullMove, fmt.Errorf("chess: %v is not a queen move from %v", to, from)
		}
		return NewMove(from, to, captureFlag(pieceTo)), nil
	}
	return NullMove, fmt.Errorf("chess: unrecognized piece type on %v", from)
}

func captureFlag(pieceTo Piece) uint16 {
	if pieceTo != NoPiece {
		return Capture
	}
	return QuietMove
}

func parseSquareStr(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("chess: invalid square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("chess: invalid square %q", s)
	}
	return squareAt(file, rank), nil
}

func parseUCIPawnMove(pos *Position, from, to Square, s string, us Color, pieceTo Piece) (Move, error) {
	b := pos.Board()
	occ := b.Occupied()
	promoRank := promotionRank(us)
	var promoChar byte
	if len(s) == 5 {
		promoChar = s[4]
	}

	if doubleForward(us, from.Bit())&to.Bit() != 0 && pawnStartingRank(us)&from.Bit() != 0 {
		intermediate := forward(us, from.Bit())
		if occ&intermediate == 0 && occ&to.Bit() == 0 {
			return NewMove(from, to, DoublePawnPush), nil
		}
	}

	if forward(us, from.Bit())&to.Bit() != 0 {
		if occ&to.Bit() != 0 {
			return NullMove, fmt.Errorf("chess: pawn push to occupied square %v", to)
		}
		if to.Bit()&promoRank != 0 {
			return NewMove(from, to, promotionFlagFor(promoChar, false)), nil
		}
		return NewMove(from, to, QuietMove), nil
	}

	if (leftPawnAttack(us, from.Bit())|rightPawnAttack(us, from.Bit()))&to.Bit() != 0 {
		if to == pos.EnPassant() {
			return NewMove(from, to, EnPassant), nil
		}
		if pieceTo == NoPiece {
			return NullMove, fmt.Errorf("chess: pawn capture to empty square %v", to)
		}
		if to.Bit()&promoRank != 0 {
			return NewMove(from, to, promotionFlagFor(promoChar, true)), nil
		}
		return NewMove(from, to, Capture), nil
	}

	return NullMove, fmt.Errorf("chess: %v is not a legal pawn destination from %v", to, from)
}

func promotionFlagFor(ch byte, capture bool) uint16 {
	base := QueenPromotion
	switch ch {
	case 'n':
		base = KnightPromotion
	case 'b':
		base = BishopPromotion
	case 'r':
		base = RookPromotion
	}
	if capture {
		return base | Capture
	}
	return base
}

func parseUCIKingMove(from, to Square, us Color, pieceTo Piece) (Move, error) {
	if KingAttack(from)&to.Bit() != 0 {
		return NewMove(from, to, captureFlag(pieceTo)), nil
	}
	if to == kingsideCastleKingTo[us] {
		return NewMove(from, to, KingCastle), nil
	}
	if to == queensideCastleKingTo[us] {
		return NewMove(from, to, QueenCastle), nil
	}
	return NullMove, fmt.Errorf("chess: %v is not a legal king destination from %v", to, from)
}
