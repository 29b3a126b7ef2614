package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFEN builds a Position from Forsyth-Edwards Notation. Malformed
// structure (wrong rank count, wrong file count, an unrecognized piece
// letter, a malformed side-to-move or en-passant field) is reported as
// an error. The one deliberate exception is the castling field: a
// character outside KQkq is silently ignored rather than rejected,
// matching the source parser, whose castling switch has no default
// case and simply fails to match anything for a bad character.
func ParseFEN(fen string) (*Position, error) {
	initTables()
	initZobrist()

	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("chess: FEN needs at least 4 fields, got %d", len(fields))
	}

	pos := &Position{}
	pos.board = NewBoard()

	if err := parsePlacement(&pos.board, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		pos.turn = White
	case "b":
		pos.turn = Black
	default:
		return nil, fmt.Errorf("chess: invalid side to move %q", fields[1])
	}

	pos.castling = parseCastling(fields[2])

	epSquare, err := parseEnPassant(fields[3])
	if err != nil {
		return nil, err
	}
	pos.epSquare = epSquare

	halfmove, fullmove := 0, 1
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("chess: invalid halfmove clock %q", fields[4])
		}
		halfmove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("chess: invalid fullmove number %q", fields[5])
		}
		fullmove = n
	}
	pos.halfmoveClock = halfmove
	pos.ply = (fullmove-1)*2 + int(pos.turn)

	pos.setupIncrementalState()
	return pos, nil
}

func parsePlacement(b *Board, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("chess: piece placement needs 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pt, color, ok := pieceFromFENChar(byte(ch))
			if !ok {
				return fmt.Errorf("chess: invalid piece character %q", ch)
			}
			if file >= 8 {
				return fmt.Errorf("chess: rank %d overflows 8 files", rank+1)
			}
			b.PutPiece(MakePiece(pt, color), squareAt(file, rank))
			file++
		}
		if file != 8 {
			return fmt.Errorf("chess: rank %d has %d files, want 8", rank+1, file)
		}
	}
	return nil
}

func pieceFromFENChar(ch byte) (PieceType, Color, bool) {
	color := White
	lowered := ch
	if ch >= 'a' && ch <= 'z' {
		color = Black
	} else if ch >= 'A' && ch <= 'Z' {
		lowered = ch + 32
	} else {
		return 0, 0, false
	}
	switch lowered {
	case 'p':
		return Pawn, color, true
	case 'n':
		return Knight, color, true
	case 'b':
		return Bishop, color, true
	case 'r':
		return Rook, color, true
	case 'q':
		return Queen, color, true
	case 'k':
		return King, color, true
	}
	return 0, 0, false
}

func parseCastling(field string) CastlingFlags {
	if field == "-" {
		return NoCastling
	}
	var flags CastlingFlags
	for _, ch := range field {
		switch ch {
		case 'K':
			flags |= WhiteKingside
		case 'Q':
			flags |= WhiteQueenside
		case 'k':
			flags |= BlackKingside
		case 'q':
			flags |= BlackQueenside
		}
	}
	return flags
}

func parseEnPassant(field string) (Square, error) {
	if field == "-" {
		return NoSquare, nil
	}
	if len(field) != 2 {
		return NoSquare, fmt.Errorf("chess: invalid en passant square %q", field)
	}
	file := int(field[0] - 'a')
	rank := int(field[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("chess: invalid en passant square %q", field)
	}
	return squareAt(file, rank), nil
}

// FEN renders the position back to Forsyth-Edwards Notation.
func (p *Position) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.board.PieceAt(squareAt(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.turn.String())
	sb.WriteByte(' ')
	sb.WriteString(castlingString(p.castling))
	sb.WriteByte(' ')
	sb.WriteString(p.epSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullmoveNumber()))
	return sb.String()
}

func castlingString(c CastlingFlags) string {
	if c == NoCastling {
		return "-"
	}
	var sb strings.Builder
	if c&WhiteKingside != 0 {
		sb.WriteByte('K')
	}
	if c&WhiteQueenside != 0 {
		sb.WriteByte('Q')
	}
	if c&BlackKingside != 0 {
		sb.WriteByte('k')
	}
	if c&BlackQueenside != 0 {
		sb.WriteByte('q')
	}
	return sb.String()
}
