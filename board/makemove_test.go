package board_test

import (
	"testing"

	"chessmind/board"
)

func TestApplyMoveEmptySource(t *testing.T) {
	pos := board.NewPosition()
	before := pos.FEN(board.White)
	if pos.ApplyMove(mv(t, "e4e5")) {
		t.Fatalf("ApplyMove from an empty square reported success")
	}
	if got := pos.FEN(board.White); got != before {
		t.Fatalf("failed move changed the position:\ngot  %q\nwant %q", got, before)
	}
}

func TestApplyMoveSinglePush(t *testing.T) {
	pos := board.NewPosition()
	if !pos.ApplyMove(mv(t, "e2e3")) {
		t.Fatalf("ApplyMove(e2e3) failed")
	}
	if pos.Get(sq(t, "e3")) != board.MakePiece(board.White, board.Pawn) {
		t.Fatalf("pawn did not arrive on e3")
	}
	if pos.Get(sq(t, "e2")) != board.NoPiece {
		t.Fatalf("e2 not vacated")
	}
	if pos.EnPassantTarget() != board.NoSquare {
		t.Fatalf("single push set an en passant target: %v", pos.EnPassantTarget())
	}
}

func TestApplyMoveThereAndBack(t *testing.T) {
	// Knights out and home again: plain moves leave no trace, so the
	// position is the starting one in every observable respect.
	pos := board.NewPosition()
	for _, m := range []string{"b1c3", "b8c6", "c3b1", "c6b8"} {
		if !pos.ApplyMove(mv(t, m)) {
			t.Fatalf("ApplyMove(%s) failed", m)
		}
	}
	if got := pos.FEN(board.White); got != board.FENStartPos {
		t.Fatalf("round trip left traces:\ngot  %q\nwant %q", got, board.FENStartPos)
	}
}

func TestApplyMoveDoublePushSetsAndClearsTarget(t *testing.T) {
	pos := board.NewPosition()
	pos.ApplyMove(mv(t, "e2e4"))
	if got := pos.EnPassantTarget(); got != sq(t, "e3") {
		t.Fatalf("after e2e4: target %v want e3", got)
	}

	// Any following move clears it, including a black double push that
	// sets its own.
	pos.ApplyMove(mv(t, "d7d5"))
	if got := pos.EnPassantTarget(); got != sq(t, "d6") {
		t.Fatalf("after d7d5: target %v want d6", got)
	}
	pos.ApplyMove(mv(t, "g1f3"))
	if got := pos.EnPassantTarget(); got != board.NoSquare {
		t.Fatalf("after a knight move: target %v want none", got)
	}
}

func TestApplyMoveCapture(t *testing.T) {
	// Kiwipete: the e2 bishop takes the a6 bishop.
	pos, _ := mustPosition(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if !pos.ApplyMove(mv(t, "e2a6")) {
		t.Fatalf("ApplyMove(e2a6) failed")
	}
	if got := pos.Get(sq(t, "a6")); got != board.MakePiece(board.White, board.Bishop) {
		t.Fatalf("a6 after capture: got %v want white bishop", got)
	}
	if pos.Get(sq(t, "e2")) != board.NoPiece {
		t.Fatalf("e2 not vacated after capture")
	}
}

func TestApplyMoveEnPassantCapture(t *testing.T) {
	pos, _ := mustPosition(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	if !pos.ApplyMove(mv(t, "e5d6")) {
		t.Fatalf("ApplyMove(e5d6) failed")
	}
	if got := pos.Get(sq(t, "d6")); got != board.MakePiece(board.White, board.Pawn) {
		t.Fatalf("capturing pawn not on d6: got %v", got)
	}
	if pos.Get(sq(t, "d5")) != board.NoPiece {
		t.Fatalf("captured pawn still on d5")
	}
	if pos.Get(sq(t, "e5")) != board.NoPiece {
		t.Fatalf("e5 not vacated")
	}
	if pos.EnPassantTarget() != board.NoSquare {
		t.Fatalf("target survived the capture")
	}
}

func TestApplyMoveCastling(t *testing.T) {
	cases := []struct {
		name      string
		side      board.Color
		move      string
		kingTo    string
		rookTo    string
		rookFrom  string
		vacatedKg string
	}{
		{"white king side", board.White, "e1g1", "g1", "f1", "h1", "e1"},
		{"white queen side", board.White, "e1c1", "c1", "d1", "a1", "e1"},
		{"black king side", board.Black, "e8g8", "g8", "f8", "h8", "e8"},
		{"black queen side", board.Black, "e8c8", "c8", "d8", "a8", "e8"},
	}
	for _, c := range cases {
		pos, _ := mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
		if !pos.ApplyMove(mv(t, c.move)) {
			t.Fatalf("%s: ApplyMove(%s) failed", c.name, c.move)
		}
		if got := pos.Get(sq(t, c.kingTo)); got != board.MakePiece(c.side, board.King) {
			t.Errorf("%s: king not on %s (got %v)", c.name, c.kingTo, got)
		}
		if got := pos.Get(sq(t, c.rookTo)); got != board.MakePiece(c.side, board.Rook) {
			t.Errorf("%s: rook not on %s (got %v)", c.name, c.rookTo, got)
		}
		if pos.Get(sq(t, c.rookFrom)) != board.NoPiece {
			t.Errorf("%s: rook corner %s not vacated", c.name, c.rookFrom)
		}
		if pos.Get(sq(t, c.vacatedKg)) != board.NoPiece {
			t.Errorf("%s: king square %s not vacated", c.name, c.vacatedKg)
		}
		if got := pos.KingSquare(c.side); got != sq(t, c.kingTo) {
			t.Errorf("%s: king cache %v want %s", c.name, got, c.kingTo)
		}
		if pos.CanCastle(c.side, true) || pos.CanCastle(c.side, false) {
			t.Errorf("%s: castling rights survived castling", c.name)
		}
	}
}

func TestApplyMoveRookMoveDropsWing(t *testing.T) {
	pos, _ := mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	pos.ApplyMove(mv(t, "a1a4"))
	if pos.CanCastle(board.White, false) {
		t.Fatalf("queen side right survived the a1 rook leaving")
	}
	if !pos.CanCastle(board.White, true) {
		t.Fatalf("king side right lost with the h1 rook untouched")
	}

	pos.ApplyMove(mv(t, "h8h6"))
	if pos.CanCastle(board.Black, true) {
		t.Fatalf("black king side right survived the h8 rook leaving")
	}
	if !pos.CanCastle(board.Black, false) {
		t.Fatalf("black queen side right lost with the a8 rook untouched")
	}
}

func TestApplyMoveKingStepDropsBothWings(t *testing.T) {
	pos, _ := mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	pos.ApplyMove(mv(t, "e1e2"))
	if pos.CanCastle(board.White, true) || pos.CanCastle(board.White, false) {
		t.Fatalf("castling rights survived a king step")
	}
	if got := pos.KingSquare(board.White); got != sq(t, "e2") {
		t.Fatalf("king cache after e1e2: got %v", got)
	}

	// Returning home does not restore the rights.
	pos.ApplyMove(mv(t, "e2e1"))
	if pos.CanCastle(board.White, true) || pos.CanCastle(board.White, false) {
		t.Fatalf("castling rights restored by moving back")
	}
	if got := moveSet(pos.LegalMoves(board.White)); got["e1g1"] || got["e1c1"] {
		t.Fatalf("castle moves generated after the king had moved")
	}
}

func TestApplyMovePromotion(t *testing.T) {
	// Unspecified promotion becomes a queen.
	pos, _ := mustPosition(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	pos.ApplyMove(mv(t, "a7a8"))
	if got := pos.Get(sq(t, "a8")); got != board.MakePiece(board.White, board.Queen) {
		t.Fatalf("default promotion: got %v want white queen", got)
	}

	// An explicit underpromotion is honored.
	pos, _ = mustPosition(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	pos.ApplyMove(mv(t, "a7a8n"))
	if got := pos.Get(sq(t, "a8")); got != board.MakePiece(board.White, board.Knight) {
		t.Fatalf("knight promotion: got %v want white knight", got)
	}

	// Promotion on a capture.
	pos, _ = mustPosition(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	pos.ApplyMove(mv(t, "a7b8"))
	if got := pos.Get(sq(t, "b8")); got != board.MakePiece(board.White, board.Queen) {
		t.Fatalf("capture promotion: got %v want white queen", got)
	}

	// Black promotes on the first rank.
	pos, _ = mustPosition(t, "7k/8/8/8/8/8/p7/7K b - - 0 1")
	pos.ApplyMove(mv(t, "a2a1r"))
	if got := pos.Get(sq(t, "a1")); got != board.MakePiece(board.Black, board.Rook) {
		t.Fatalf("black rook promotion: got %v want black rook", got)
	}
}
