package transaction

import (
	"unicode/utf8"

	"github.com/aperturerobotics/billcoin/chainerr"
	"github.com/aperturerobotics/billcoin/ledger"
	"github.com/aperturerobotics/billcoin/utils/numeric"
)

// AddressLength is the required length of every address.
const AddressLength = 6

// Validate checks the transfer addresses and amount.
func (t *Transfer) Validate() error {
	if utf8.RuneCountInString(t.From) != AddressLength ||
		utf8.RuneCountInString(t.To) != AddressLength {
		return chainerr.Errorf(
			chainerr.AddressLengthError,
			"The address in '%s>%s' is not %d digits long", t.From, t.To, AddressLength,
		)
	}

	toOk := numeric.IsNumeric(t.To)
	fromOk := numeric.IsNumeric(t.From) || t.From == SystemAddress
	if !toOk || !fromOk {
		return chainerr.Errorf(
			chainerr.AddressFormatError,
			"The address in '%s>%s' is not a number", t.From, t.To,
		)
	}

	if t.Amount == nil || t.Amount.Sign() <= 0 {
		return chainerr.Errorf(
			chainerr.NonPositiveAmount,
			"The amount '%s' given cannot be negative or zero", t.Amount.String(),
		)
	}
	return nil
}

// Apply credits the receiver and debits the sender unless it is the SYSTEM.
func (t *Transfer) Apply(l *ledger.Ledger) {
	l.Credit(t.To, t.Amount)
	if t.From != SystemAddress {
		l.Debit(t.From, t.Amount)
	}
}
