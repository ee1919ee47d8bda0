// Package errs defines the single tagged error type shared by every package
// in this module, so that a caller can branch on failure class with one
// errors.As call regardless of which package raised it.
package errs

import "fmt"

// Kind classifies a FoldError. The set is closed: every failure in this
// module's core is one of these, or wraps one.
type Kind int

const (
	ChainLength Kind = iota
	UnsupportedAminoAcid
	ConformationEncoding
	OperatorShape
	InvalidResult
	InvalidInteractionType
	NotImplemented
)

func (k Kind) String() string {
	switch k {
	case ChainLength:
		return "ChainLength"
	case UnsupportedAminoAcid:
		return "UnsupportedAminoAcid"
	case ConformationEncoding:
		return "ConformationEncoding"
	case OperatorShape:
		return "OperatorShape"
	case InvalidResult:
		return "InvalidResult"
	case InvalidInteractionType:
		return "InvalidInteractionType"
	case NotImplemented:
		return "NotImplemented"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// FoldError is the single tagged error type surfaced by this module's core.
// Propagation policy is fail-fast: these are programmer/data errors, never
// locally recovered.
type FoldError struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *FoldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *FoldError) Unwrap() error { return e.Err }

// New constructs a FoldError with no wrapped cause.
func New(kind Kind, msg string) *FoldError {
	return &FoldError{Kind: kind, Msg: msg}
}

// Newf constructs a FoldError with a formatted message.
func Newf(kind Kind, format string, a ...any) *FoldError {
	return &FoldError{Kind: kind, Msg: fmt.Sprintf(format, a...)}
}

// Wrap constructs a FoldError carrying a wrapped cause.
func Wrap(kind Kind, msg string, cause error) *FoldError {
	return &FoldError{Kind: kind, Msg: msg, Err: cause}
}
