// Package clue defines the row type the redundancy engine operates on.
package clue

// Record is a single input/output row: a clue paired with its accepted
// answer line and an opaque tags string carried through unchanged.
type Record struct {
	Clue   string
	Answer string
	Tags   string
}
