package chain

import (
	"context"

	"github.com/aperturerobotics/billcoin/chainerr"
	"github.com/aperturerobotics/billcoin/ledger"
	"github.com/aperturerobotics/billcoin/logctx"
	"github.com/aperturerobotics/billcoin/source"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Runner validates a whole chain, one line at a time, stopping at the first failure.
type Runner struct {
	le        *logrus.Entry
	validator *Validator
	state     *State
}

// NewRunner builds a new Runner with a fresh chain state.
func NewRunner(ctx context.Context) *Runner {
	return &Runner{
		le:        logctx.GetLogEntry(ctx).WithField("c", "runner"),
		validator: NewValidator(ctx),
		state:     NewState(),
	}
}

// State returns the chain state.
// After a failed run it reflects every mutation made before the failing check.
func (r *Runner) State() *State {
	return r.state
}

// Run validates every line of src in order.
// On success the positive balances are returned sorted by address.
// Validation failures are returned as *chainerr.Error carrying the line number.
func (r *Runner) Run(src source.Source) ([]ledger.Entry, error) {
	for {
		line, ok, err := src.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		if err := r.validator.ValidateBlock(r.state, line); err != nil {
			ve, isVe := chainerr.AsError(err)
			if !isVe {
				return nil, errors.Wrapf(err, "line %d", r.state.LineNumber)
			}
			return nil, ve.AtLine(r.state.LineNumber)
		}
		r.state.LineNumber++
	}

	if r.state.LineNumber == 0 {
		return nil, chainerr.Errorf(
			chainerr.EmptyInput,
			"The file is empty, you need at least one block in the block chain",
		)
	}

	r.le.
		WithField("blocks", r.state.LineNumber).
		WithField("addresses", r.state.Ledger.Len()).
		WithField("memo-size", r.state.Memo.Len()).
		Info("chain valid")
	return r.state.Ledger.Snapshot(), nil
}
