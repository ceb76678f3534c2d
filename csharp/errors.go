package csharp

import "github.com/cockroachdb/errors"

// Error classes for the fatal failure taxonomy. Every generation failure is
// marked with exactly one of these so callers can classify with errors.Is.
// There is no recovery mode: a failed translation aborts the whole run.
var (
	// ErrShape marks malformed type shapes: multi-dimensional arrays,
	// maps without exactly two type parameters, function arguments that
	// cannot be expressed, and object literals whose naming context was
	// insufficient.
	ErrShape = errors.New("shape error")

	// ErrNaming marks name-synthesis failures, including exhausting the
	// lexical chain without finding a non-conflicting candidate.
	ErrNaming = errors.New("naming error")

	// ErrOverload marks unsupported overload-expansion configurations and
	// duplicate parameter-documentation keys.
	ErrOverload = errors.New("overload error")

	// ErrUnknownShape marks member kinds or type arrangements not covered
	// by any translation rule.
	ErrUnknownShape = errors.New("unknown shape")
)
