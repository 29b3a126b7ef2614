package goose_engine_mg_test

import (
	"testing"

	myengine "github.com/bambamboo15/cpp-chess/chess"
)

func mustParseFEN(t *testing.T, fen string) *myengine.Position {
	t.Helper()
	pos, err := myengine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func checkPerft(t *testing.T, fen string, expected []uint64) {
	t.Helper()
	pos := mustParseFEN(t, fen)
	for depth, want := range expected {
		got := myengine.Perft(pos, depth+1)
		if got != want {
			t.Errorf("%s: perft(%d) = %d, want %d", fen, depth+1, got, want)
		}
	}
}

func TestPerftInitial(t *testing.T) {
	expected := []uint64{20, 400, 8902, 197281}
	if !testing.Short() {
		expected = append(expected, 4865609, 119060324)
	}
	checkPerft(t, myengine.FENStartPos, expected)
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	expected := []uint64{48, 2039, 97862}
	if !testing.Short() {
		expected = append(expected, 4085603)
	}
	checkPerft(t, fen, expected)
}

func TestPerftEnPassant(t *testing.T) {
	fen := "k7/8/8/3pP3/8/8/8/7K w - d6 0 2"
	checkPerft(t, fen, []uint64{5, 19})
}

func TestPerftPromotion(t *testing.T) {
	fen := "1n5k/P7/8/8/8/8/8/7K w - - 0 1"
	checkPerft(t, fen, []uint64{11})
}

func TestPerftPosition3(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	expected := []uint64{14, 191, 2812}
	if !testing.Short() {
		expected = append(expected, 43238, 674624)
	}
	checkPerft(t, fen, expected)
}

func TestPerftPosition4(t *testing.T) {
	fen := "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	checkPerft(t, fen, []uint64{6, 264, 9467})
}

func TestPerftPosition5(t *testing.T) {
	fen := "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1"
	checkPerft(t, fen, []uint64{44, 1486, 62379})
}

func TestPerftPosition6(t *testing.T) {
	fen := "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
	checkPerft(t, fen, []uint64{46, 2079, 89890})
}

func TestPerftDivideSumsToTotal(t *testing.T) {
	pos := mustParseFEN(t, myengine.FENStartPos)
	div := myengine.PerftDivide(pos, 2)
	if len(div) != 20 {
		t.Fatalf("PerftDivide at depth 2 from the initial position has %d root moves, want 20", len(div))
	}
	var sum uint64
	for move, n := range div {
		sum += n
		if n != 20 {
			t.Errorf("move %s: divide count %d, want 20 (the initial position is knight-move symmetric)", move, n)
		}
	}
	if sum != 400 {
		t.Errorf("sum of divide counts = %d, want 400", sum)
	}
}
