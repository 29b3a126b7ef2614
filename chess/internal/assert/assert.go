// Package assert provides a debug-only precondition checker for the
// chess package. It mirrors the source's CHESS_ASSERT macro: compiled
// away entirely in a normal build, and active only when built with
// -tags chessdebug. See assert_debug.go and assert_release.go.
package assert
