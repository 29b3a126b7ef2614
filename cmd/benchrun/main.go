package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

// perftFixture names one of the positions this module's own test suite
// already perft-validates, so benchrun never carries a FEN literal that
// isn't also pinned to a node count somewhere under tests/.
type perftFixture struct {
	label string
	fen   string // empty means the default starting position
	depth int
}

var perftFixtures = []perftFixture{
	{"Initial", "", 3},
	{"Initial", "", 4},
	{"Initial", "", 5},
	{"Initial", "", 6},
	{"Kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4},
	{"Position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4},
	{"Position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 3},
	{"Position6", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 3},
}

func main() {
	// Run all benchmarks in bench/ with benchmem.
	// Usage: go run ./cmd/benchrun
	// Print a simple header explaining Go's benchmark columns
	// Format: BenchmarkName  Iterations  ns/op  B/op  allocs/op
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	// Also run perft performance tests (macro throughput) with one-line outputs
	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	for _, f := range perftFixtures {
		args := []string{"run", "./cmd/perft", "-depth", fmt.Sprint(f.depth), "-label", f.label}
		if f.fen != "" {
			args = append(args, "-fen", f.fen)
		}
		run("go", args...)
	}

	// Cross-validate legal move generation against the dragontoothmg
	// oracle across crossvalidate's own list of well-known positions
	// (start, Kiwipete, Position3/4/5), catching any generator bug
	// the hard-coded perft table wouldn't (one wrong in the same way
	// the table already expects).
	fmt.Println("\nOracle Cross-Validation:")
	code = run("go", "run", "./cmd/crossvalidate", "-depth", "4")
	os.Exit(code)
}
