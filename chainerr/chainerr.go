package chainerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a chain validation failure.
type Kind int

const (
	// KindUnknown is returned by KindOf for errors not produced by this package.
	KindUnknown Kind = iota
	MalformedBlock
	BlockNumberMismatch
	MissingTransferField
	MalformedTransfer
	MissingAmount
	NonNumericAmount
	MissingSystemReward
	AddressLengthError
	AddressFormatError
	NonPositiveAmount
	NegativeBalance
	InvalidTimestamp
	NonMonotonicTimestamp
	HashMismatch
	GenesisLinkError
	LinkageError
	EmptyInput
	// SourceUnavailable indicates the input could not be read at all.
	// It never carries a block line.
	SourceUnavailable
)

var kindNames = map[Kind]string{
	KindUnknown:           "Unknown",
	MalformedBlock:        "MalformedBlock",
	BlockNumberMismatch:   "BlockNumberMismatch",
	MissingTransferField:  "MissingTransferField",
	MalformedTransfer:     "MalformedTransfer",
	MissingAmount:         "MissingAmount",
	NonNumericAmount:      "NonNumericAmount",
	MissingSystemReward:   "MissingSystemReward",
	AddressLengthError:    "AddressLengthError",
	AddressFormatError:    "AddressFormatError",
	NonPositiveAmount:     "NonPositiveAmount",
	NegativeBalance:       "NegativeBalance",
	InvalidTimestamp:      "InvalidTimestamp",
	NonMonotonicTimestamp: "NonMonotonicTimestamp",
	HashMismatch:          "HashMismatch",
	GenesisLinkError:      "GenesisLinkError",
	LinkageError:          "LinkageError",
	EmptyInput:            "EmptyInput",
	SourceUnavailable:     "SourceUnavailable",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is a fatal chain validation error.
type Error struct {
	// Kind is the failure classification.
	Kind Kind
	// Line is the 0-based line (block) number the failure was found on.
	Line int
	// Message is the human readable description.
	Message string
}

// Errorf builds a new validation error of the given kind.
// The line number is filled in by the chain runner.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Error renders the error as "line N: message".
func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// AtLine returns a copy of the error attributed to the given line.
func (e *Error) AtLine(line int) *Error {
	ne := *e
	ne.Line = line
	return &ne
}

// KindOf returns the kind of a validation error, unwrapping pkg/errors wrappers.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Kind
	}
	return KindUnknown
}

// AsError extracts the validation error, if any.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	e, ok := errors.Cause(err).(*Error)
	return e, ok
}
