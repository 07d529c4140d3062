package eval

import (
	"errors"
)

// Evaluation failures. Every error returned by Eval wraps one of these.
var (
	ErrUnboundSymbol  = errors.New("unbound symbol")
	ErrArity          = errors.New("wrong number of arguments")
	ErrOperandType    = errors.New("unsupported operand type")
	ErrDivisionByZero = errors.New("division by zero")
	ErrNotCallable    = errors.New("cannot apply")
	ErrNotImplemented = errors.New("not implemented")
	ErrInvalidForm    = errors.New("invalid special form")
)
