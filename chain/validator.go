package chain

import (
	"context"

	"github.com/aperturerobotics/billcoin/block"
	"github.com/aperturerobotics/billcoin/chainerr"
	"github.com/aperturerobotics/billcoin/hashchain"
	"github.com/aperturerobotics/billcoin/logctx"
	"github.com/aperturerobotics/billcoin/transaction"
	"github.com/aperturerobotics/billcoin/utils/numeric"
	"github.com/sirupsen/logrus"
)

// blockCheck is a single validation step. A nil error passes.
type blockCheck struct {
	name string
	fn   func(bc *blockContext) error
}

// blockContext is the per-line working set shared by the checks.
type blockContext struct {
	state *State
	line  string
	rec   *block.Record
	ts    block.Timestamp
}

// Validator validates block lines against the chain state.
// Checks run in a fixed order and the first failure ends validation of the line.
type Validator struct {
	le     *logrus.Entry
	checks []blockCheck
}

// NewValidator builds a new Validator.
func NewValidator(ctx context.Context) *Validator {
	return &Validator{
		le: logctx.GetLogEntry(ctx).WithField("c", "validator"),
		checks: []blockCheck{
			{"structure", checkStructure},
			{"block-number", checkBlockNumber},
			{"transfers", checkTransfers},
			{"balances", checkBalances},
			{"timestamp", checkTimestamp},
			{"next-hash", checkNextHash},
			{"prev-hash", checkPrevHash},
		},
	}
}

// ValidateBlock validates the line as the block at state.LineNumber.
// The ledger is mutated as transfers apply; the tail advances only if every check passes.
func (v *Validator) ValidateBlock(state *State, line string) error {
	bc := &blockContext{state: state, line: line}
	for _, c := range v.checks {
		if err := c.fn(bc); err != nil {
			v.le.
				WithField("line", state.LineNumber).
				WithField("check", c.name).
				WithError(err).
				Debug("block rejected")
			return err
		}
	}

	state.accept(bc.rec, bc.ts)
	v.le.
		WithField("line", state.LineNumber).
		WithField("next-hash", bc.rec.NextHash).
		Debug("block accepted")
	return nil
}

func checkStructure(bc *blockContext) error {
	rec, err := block.ParseRecord(bc.line)
	if err != nil {
		return err
	}
	bc.rec = rec
	bc.ts = rec.Timestamp()
	return nil
}

func checkBlockNumber(bc *blockContext) error {
	if numeric.LeadingInt(bc.rec.BlockNumber) != int64(bc.state.LineNumber) {
		return chainerr.Errorf(
			chainerr.BlockNumberMismatch,
			"Invalid block number %s, should be %d",
			bc.rec.BlockNumber, bc.state.LineNumber,
		)
	}
	return nil
}

// checkTransfers parses, validates and applies each transfer in turn.
func checkTransfers(bc *blockContext) error {
	tokens, err := transaction.Split(bc.rec.TransferField)
	if err != nil {
		return err
	}

	for i, token := range tokens {
		tx, err := transaction.ParseTransfer(token, i+1, len(tokens))
		if err != nil {
			return err
		}
		if err := tx.Validate(); err != nil {
			return err
		}
		tx.Apply(bc.state.Ledger)
	}
	return nil
}

func checkBalances(bc *blockContext) error {
	addr, bal, ok := bc.state.Ledger.FirstNegative(transaction.SystemAddress)
	if ok {
		return chainerr.Errorf(
			chainerr.NegativeBalance,
			"Invalid block, address %s has %s billcoins!", addr, bal.String(),
		)
	}
	return nil
}

func checkTimestamp(bc *blockContext) error {
	if bc.state.LineNumber == 0 {
		return nil
	}

	if !bc.ts.Valid() {
		return chainerr.Errorf(
			chainerr.InvalidTimestamp,
			"Timestamp %s invalid. Seconds and nanoseconds must be positive",
			bc.rec.TimestampField,
		)
	}

	prev := bc.state.LastTimestamp
	if prev != nil && !bc.ts.After(*prev) {
		return chainerr.Errorf(
			chainerr.NonMonotonicTimestamp,
			"Previous timestamp %s >= new timestamp %s",
			prev.String(), bc.rec.TimestampField,
		)
	}
	return nil
}

func checkNextHash(bc *blockContext) error {
	input := bc.rec.HashInput()
	computed := hashchain.ComputeHash(input, bc.state.Memo)
	if computed != bc.rec.NextHash {
		return chainerr.Errorf(
			chainerr.HashMismatch,
			"String '%s' hash set to %s, should be %s",
			input, bc.rec.NextHash, computed,
		)
	}
	return nil
}

func checkPrevHash(bc *blockContext) error {
	if bc.state.LineNumber == 0 {
		if bc.rec.PreviousHash != block.GenesisPrevHash {
			return chainerr.Errorf(
				chainerr.GenesisLinkError,
				"The first block should have a previous hash value of %s and not '%s'",
				block.GenesisPrevHash, bc.rec.PreviousHash,
			)
		}
		return nil
	}

	if bc.rec.PreviousHash != bc.state.LastNextHash {
		return chainerr.Errorf(
			chainerr.LinkageError,
			"Previous hash was %s, should be %s",
			bc.rec.PreviousHash, bc.state.LastNextHash,
		)
	}
	return nil
}
