package report

import (
	"fmt"
	"io"

	"github.com/aperturerobotics/billcoin/chainerr"
	"github.com/aperturerobotics/billcoin/ledger"
	"github.com/pkg/errors"
)

// InvalidTrailer is printed after a block failure diagnostic.
const InvalidTrailer = "BLOCKCHAIN INVALID"

// Reporter renders the outcome of a run.
type Reporter interface {
	// Balances renders the final balances of a valid chain.
	Balances(entries []ledger.Entry) error
	// Invalid renders a block failure.
	Invalid(err *chainerr.Error) error
	// SourceMissing renders an input that could not be read.
	SourceMissing(err *chainerr.Error) error
}

// Plain renders reports as plain text lines.
type Plain struct {
	w io.Writer
}

// NewPlain builds a plain text reporter.
func NewPlain(w io.Writer) *Plain {
	return &Plain{w: w}
}

// Balances writes one "address: balance billcoins" line per entry.
func (p *Plain) Balances(entries []ledger.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(p.w, "%s: %s billcoins\n", e.Address, e.Balance.String()); err != nil {
			return errors.Wrap(err, "write balances")
		}
	}
	return nil
}

// Invalid writes the "Line N: message" diagnostic and the invalid trailer.
func (p *Plain) Invalid(verr *chainerr.Error) error {
	if _, err := fmt.Fprintf(p.w, "Line %d: %s\n%s\n", verr.Line, verr.Message, InvalidTrailer); err != nil {
		return errors.Wrap(err, "write diagnostic")
	}
	return nil
}

// SourceMissing writes the input error diagnostic.
func (p *Plain) SourceMissing(verr *chainerr.Error) error {
	if _, err := fmt.Fprintf(p.w, "ERROR:  %s\n", verr.Message); err != nil {
		return errors.Wrap(err, "write source error")
	}
	return nil
}

// _ is a type assertion
var _ Reporter = ((*Plain)(nil))
