// Package stack implements the fixed depth return address stack.
package stack

import "errors"

// Depth is the number of return addresses the stack can hold.
const Depth = 16

var (
	// ErrOverflow is returned when pushing to a full stack.
	ErrOverflow = errors.New("stack overflow")
	// ErrUnderflow is returned when popping from an empty stack.
	ErrUnderflow = errors.New("stack underflow")
)

// Stack holds subroutine return addresses.
type Stack struct {
	entries [Depth]uint16
	sp      int
}

// New returns an empty stack.
func New() *Stack {
	return &Stack{}
}

// Push stores a return address.
func (s *Stack) Push(address uint16) error {
	if s.sp >= Depth {
		return ErrOverflow
	}
	s.entries[s.sp] = address
	s.sp++
	return nil
}

// Pop removes and returns the most recently pushed return address.
func (s *Stack) Pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrUnderflow
	}
	s.sp--
	return s.entries[s.sp], nil
}

// Depth returns the number of stored return addresses.
func (s *Stack) Depth() int {
	return s.sp
}

// Reset empties the stack. Old entries stay in place but are unreachable
// until overwritten by the next push.
func (s *Stack) Reset() {
	s.sp = 0
}
