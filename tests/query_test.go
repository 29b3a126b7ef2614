package goose_engine_mg_test

import (
	"testing"

	myengine "github.com/bambamboo15/cpp-chess/chess"
)

func TestFoolsMateIsCheckmate(t *testing.T) {
	pos := mustParseFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")

	if !myengine.IsCheck(pos) {
		t.Fatalf("white should be in check from the h4 queen")
	}
	if !myengine.IsCheckmate(pos) {
		t.Fatalf("fool's mate position should be checkmate")
	}
	if myengine.IsStalemate(pos) {
		t.Fatalf("a position in check can never be a stalemate")
	}
}

func TestBasicStalemate(t *testing.T) {
	pos := mustParseFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	if myengine.IsCheck(pos) {
		t.Fatalf("black should not be in check in this stalemate position")
	}
	if !myengine.IsStalemate(pos) {
		t.Fatalf("position should be a stalemate")
	}
	if myengine.IsCheckmate(pos) {
		t.Fatalf("a position not in check can never be a checkmate")
	}
}

func TestMateInOne(t *testing.T) {
	pos := mustParseFEN(t, "7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1")

	move, err := myengine.ParseUCIMove(pos, "g6g7")
	if err != nil {
		t.Fatalf("ParseUCIMove g6g7: %v", err)
	}
	if !myengine.GivesCheck(pos, move) {
		t.Fatalf("Qxg7 should give check")
	}

	pos.Make(move)
	if !myengine.IsCheckmate(pos) {
		t.Fatalf("Qxg7 should be checkmate")
	}
}

func TestSquareAttackedByRookThroughOpenFileAndBlocked(t *testing.T) {
	pos := mustParseFEN(t, "4r3/8/8/8/4P3/8/8/4K3 w - - 0 1")
	b := pos.Board()

	if myengine.SquareAttacked(b, 4, myengine.Black) {
		t.Fatalf("e1 king should be shielded from the e8 rook by the e4 pawn")
	}

	pos2 := mustParseFEN(t, "4r3/8/8/8/8/8/8/4K3 w - - 0 1")
	if !myengine.SquareAttacked(pos2.Board(), 4, myengine.Black) {
		t.Fatalf("e1 king should be attacked by the e8 rook on an open file")
	}
}

func TestSquareAttackedByBishopThroughBlockedDiagonal(t *testing.T) {
	pos := mustParseFEN(t, "8/8/8/8/1b6/8/3P4/4K3 w - - 0 1")
	if myengine.SquareAttacked(pos.Board(), 4, myengine.Black) {
		t.Fatalf("e1 king should be shielded from the b4 bishop by the d2 pawn")
	}

	pos2 := mustParseFEN(t, "8/8/8/8/1b6/8/8/4K3 w - - 0 1")
	if !myengine.SquareAttacked(pos2.Board(), 4, myengine.Black) {
		t.Fatalf("e1 king should be attacked by the b4 bishop on an open diagonal")
	}
}

func TestSquareAttackedByPawnKnightAndKing(t *testing.T) {
	pos := mustParseFEN(t, "8/8/8/3p4/8/5n2/3K4/8 b - - 0 1")
	b := pos.Board()

	if !myengine.SquareAttacked(b, 28, myengine.Black) { // e4 attacked by d5 pawn
		t.Fatalf("e4 should be attacked by the d5 black pawn")
	}
	if !myengine.SquareAttacked(b, 11, myengine.Black) { // d2 king is attacked by f3 knight
		t.Fatalf("d2 should be attacked by the f3 black knight")
	}
	if !myengine.SquareAttacked(b, 19, myengine.White) { // d3 attacked by the d2 king
		t.Fatalf("d3 should be attacked by the d2 white king")
	}
}
