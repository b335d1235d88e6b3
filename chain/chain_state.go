package chain

import (
	"github.com/aperturerobotics/billcoin/block"
	"github.com/aperturerobotics/billcoin/hashchain"
	"github.com/aperturerobotics/billcoin/ledger"
)

// State is the chain tail carried from one block to the next.
type State struct {
	// LastNextHash is the next hash recorded by the last accepted block.
	LastNextHash string
	// LastTimestamp is the timestamp of the last accepted block, nil before the genesis block.
	LastTimestamp *block.Timestamp
	// Ledger holds the balances after the last accepted block.
	Ledger *ledger.Ledger
	// Memo caches hash contributions for the run.
	Memo *hashchain.Memo
	// LineNumber is the number of the next line to validate.
	LineNumber int
}

// NewState builds the state preceding the genesis block.
func NewState() *State {
	return &State{
		LastNextHash: block.GenesisPrevHash,
		Ledger:       ledger.NewLedger(),
		Memo:         hashchain.NewMemo(),
	}
}

// accept advances the tail past an accepted block.
func (s *State) accept(rec *block.Record, ts block.Timestamp) {
	s.LastNextHash = rec.NextHash
	s.LastTimestamp = &ts
}
