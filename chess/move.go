package chess

// Move packs a chess move into 16 bits, following the encoding at
// https://www.chessprogramming.org/Encoding_Moves : the low 6 bits are
// the destination square, the next 6 are the origin square, and the
// top 4 form a flag tag. A zero Move is the null move; no real move
// has from == to == 0 with a quiet flag, so the all-zero pattern is
// never ambiguous in practice.
type Move uint16

// Flag tag values. Bit 0b0100 marks a capture, bit 0b1000 marks a
// promotion, and the low two bits of a promotion flag select the
// promoted piece type.
const (
	QuietMove      uint16 = 0b0000
	DoublePawnPush uint16 = 0b0001
	KingCastle     uint16 = 0b0010
	QueenCastle    uint16 = 0b0011
	Capture        uint16 = 0b0100
	EnPassant      uint16 = 0b0101

	KnightPromotion        uint16 = 0b1000
	BishopPromotion        uint16 = 0b1001
	RookPromotion          uint16 = 0b1010
	QueenPromotion         uint16 = 0b1011
	KnightPromotionCapture uint16 = 0b1100
	BishopPromotionCapture uint16 = 0b1101
	RookPromotionCapture   uint16 = 0b1110
	QueenPromotionCapture  uint16 = 0b1111
)

// NullMove is the distinguished absent move.
const NullMove Move = 0

// NewMove builds a Move from its three fields.
func NewMove(from, to Square, flag uint16) Move {
	return Move((flag&0xF)<<12 | uint16(from&0x3F)<<6 | uint16(to&0x3F))
}

func (m Move) To() Square   { return Square(m & 0x3F) }
func (m Move) From() Square { return Square((m >> 6) & 0x3F) }
func (m Move) Flag() uint16 { return uint16(m >> 12) }

func (m Move) IsNull() bool { return m == NullMove }

// IsCapture reports whether the capture bit (0b0100) is set.
func (m Move) IsCapture() bool { return m.Flag()&0b0100 != 0 }

// IsPromotion reports whether the promotion bit (0b1000) is set.
func (m Move) IsPromotion() bool { return m.Flag()&0b1000 != 0 }

func (m Move) IsDoublePawnPush() bool { return m.Flag() == DoublePawnPush }
func (m Move) IsEnPassant() bool      { return m.Flag() == EnPassant }
func (m Move) IsKingsideCastle() bool { return m.Flag() == KingCastle }
func (m Move) IsQueensideCastle() bool {
	return m.Flag() == QueenCastle
}

// IsCastle reports either castle flag, matching the source's
// isCastle() bit-3-pattern test ((flags & 0b111) == 0b001 when shifted
// appropriately); expressed here as the two explicit flag values since
// Go has no equivalent bitfield-range idiom worth obscuring this behind.
func (m Move) IsCastle() bool { return m.IsKingsideCastle() || m.IsQueensideCastle() }

// PromotionType decodes the promoted piece type from a promotion
// move's low two flag bits: 00=Knight, 01=Bishop, 10=Rook, 11=Queen.
// Only meaningful when IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	return PieceType(m.Flag()&0b0011) + Knight
}

// CaptureDestination returns the square of the captured piece: the
// destination square normally, or the square behind it for en passant.
func (m Move) CaptureDestination(us Color) Square {
	if m.IsEnPassant() {
		return m.To() + Square(epCaptureOffset(us))
	}
	return m.To()
}

func epCaptureOffset(us Color) int8 {
	if us == White {
		return -8
	}
	return 8
}

// DoublePawnPushEnPassantSquare is the square behind a double-pushed
// pawn, i.e. the new en-passant target.
func (m Move) DoublePawnPushEnPassantSquare(us Color) Square {
	if us == White {
		return m.From() + 8
	}
	return m.From() - 8
}

// String renders the move in UCI form: origin, destination, and an
// optional lowercase promotion letter.
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.PromotionType().String()
	}
	return s
}
