package goose_engine_mg_test

import (
	"testing"

	myengine "github.com/bambamboo15/cpp-chess/chess"
)

// playUCI applies a sequence of UCI moves to pos in order. It keeps no
// undo information, so the game can only be walked forward.
func playUCI(t *testing.T, pos *myengine.Position, moves []string) {
	t.Helper()
	for _, s := range moves {
		m, err := myengine.ParseUCIMove(pos, s)
		if err != nil {
			t.Fatalf("ParseUCIMove(%q): %v", s, err)
		}
		pos.Make(m)
	}
}

func TestThreefoldRepetitionByKnightShuffle(t *testing.T) {
	pos := mustParseFEN(t, myengine.FENStartPos)

	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	playUCI(t, pos, shuffle)
	if pos.DrawByRepetition() {
		t.Fatalf("one knight-shuffle cycle should not yet be a threefold repetition")
	}

	playUCI(t, pos, shuffle)
	if !pos.DrawByRepetition() {
		t.Fatalf("two knight-shuffle cycles back to the initial position should be a threefold repetition")
	}
}

func TestFiftyMoveRuleByKnightShuffle(t *testing.T) {
	pos := mustParseFEN(t, myengine.FENStartPos)
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	for i := 0; i < 25; i++ {
		playUCI(t, pos, shuffle)
	}
	if pos.HalfmoveClock() != 100 {
		t.Fatalf("halfmove clock after 100 reversible halfmoves = %d, want 100", pos.HalfmoveClock())
	}
	if !pos.DrawByFiftyMoves() {
		t.Fatalf("100 halfmoves with no pawn move or capture should trigger the fifty-move rule")
	}
}

func TestPawnMoveResetsHalfmoveClock(t *testing.T) {
	pos := mustParseFEN(t, myengine.FENStartPos)
	playUCI(t, pos, []string{"g1f3", "g8f6"})
	if pos.HalfmoveClock() != 2 {
		t.Fatalf("halfmove clock = %d, want 2", pos.HalfmoveClock())
	}
	playUCI(t, pos, []string{"e2e4"})
	if pos.HalfmoveClock() != 0 {
		t.Fatalf("a pawn push should reset the halfmove clock, got %d", pos.HalfmoveClock())
	}
}

func TestDrawByRepetitionNotTriggeredTooEarly(t *testing.T) {
	pos := mustParseFEN(t, myengine.FENStartPos)
	playUCI(t, pos, []string{"g1f3", "g8f6"})
	if pos.DrawByRepetition() {
		t.Fatalf("two plies into a fresh game should never be a repetition")
	}
}
