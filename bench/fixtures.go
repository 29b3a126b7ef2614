package bench

// Named FEN fixtures shared by every file in this package, so a
// benchmark never repeats a raw FEN literal that isn't also pinned to
// an expected perft count in tests/perft_test.go.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position6FEN = "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
)
