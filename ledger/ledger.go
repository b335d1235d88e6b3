package ledger

import (
	"math/big"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/maps/treemap"
)

// Entry is an address and its balance.
type Entry struct {
	// Address is the address identifier.
	Address string
	// Balance is the balance in billcoins.
	Balance *big.Int
}

// Ledger maps addresses to signed balances of unbounded size.
// Addresses are iterated in the order they were first referenced.
type Ledger struct {
	balances *linkedhashmap.Map // map[string]*big.Int
}

// NewLedger builds an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{balances: linkedhashmap.New()}
}

// Credit adds amount to the address, creating it at zero if absent.
func (l *Ledger) Credit(address string, amount *big.Int) {
	l.balances.Put(address, new(big.Int).Add(l.get(address), amount))
}

// Debit subtracts amount from the address, creating it at zero if absent.
func (l *Ledger) Debit(address string, amount *big.Int) {
	l.balances.Put(address, new(big.Int).Sub(l.get(address), amount))
}

// get returns the stored balance without copying it.
func (l *Ledger) get(address string) *big.Int {
	v, ok := l.balances.Get(address)
	if !ok {
		return new(big.Int)
	}
	return v.(*big.Int)
}

// BalanceOf returns the balance of the address, or zero if it was never referenced.
func (l *Ledger) BalanceOf(address string) *big.Int {
	return new(big.Int).Set(l.get(address))
}

// Len returns the number of referenced addresses.
func (l *Ledger) Len() int {
	return l.balances.Size()
}

// FirstNegative returns the first address holding a negative balance, skipping except.
func (l *Ledger) FirstNegative(except string) (string, *big.Int, bool) {
	it := l.balances.Iterator()
	for it.Next() {
		addr := it.Key().(string)
		if addr == except {
			continue
		}
		if bal := it.Value().(*big.Int); bal.Sign() < 0 {
			return addr, new(big.Int).Set(bal), true
		}
	}
	return "", nil, false
}

// Snapshot returns the addresses with a strictly positive balance, sorted by address.
func (l *Ledger) Snapshot() []Entry {
	sorted := treemap.NewWithStringComparator()
	it := l.balances.Iterator()
	for it.Next() {
		if bal := it.Value().(*big.Int); bal.Sign() > 0 {
			sorted.Put(it.Key(), bal)
		}
	}

	entries := make([]Entry, 0, sorted.Size())
	sit := sorted.Iterator()
	for sit.Next() {
		entries = append(entries, Entry{
			Address: sit.Key().(string),
			Balance: new(big.Int).Set(sit.Value().(*big.Int)),
		})
	}
	return entries
}
