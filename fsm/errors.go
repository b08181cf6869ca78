package fsm

import "errors"

var (
	// ErrNoMatch indicates that every alternative was exhausted without
	// reaching an accepting state.
	ErrNoMatch = errors.New("fsm: no match")
	// ErrNoSeed indicates a seed position that cannot start a build or match.
	ErrNoSeed = errors.New("fsm: invalid seed position")
	// ErrBadMachine indicates a malformed machine.
	ErrBadMachine = errors.New("fsm: malformed machine")
)
