package transaction

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/aperturerobotics/billcoin/chainerr"
	"github.com/aperturerobotics/billcoin/utils/numeric"
)

// SystemAddress is the sender of newly issued billcoins.
const SystemAddress = "SYSTEM"

// amountPattern matches the first parenthesized amount group.
var amountPattern = regexp.MustCompile(`\(.*?\)`)

// Transfer is a single value movement within a block.
type Transfer struct {
	// From is the sending address.
	From string
	// To is the receiving address.
	To string
	// Amount is the number of billcoins moved.
	Amount *big.Int
	// Position is the 1-based position of the transfer in its block.
	Position int
	// Total is the number of transfers in the block.
	Total int
}

// IsLast checks if this is the final transfer of the block.
func (t *Transfer) IsLast() bool {
	return t.Position == t.Total
}

// Split splits a transfer field into its ordered tokens.
func Split(field string) ([]string, error) {
	tokens := numeric.SplitFields(field, ":")
	if len(tokens) == 0 {
		return nil, chainerr.Errorf(
			chainerr.MissingTransferField,
			"There is no transaction string. It requires at least one from the SYSTEM",
		)
	}
	return tokens, nil
}

// ParseTransfer parses a single from>to(amount) token at the given position.
func ParseTransfer(token string, position, total int) (*Transfer, error) {
	parts := numeric.SplitFields(token, ">")
	if len(parts) != 2 {
		return nil, chainerr.Errorf(
			chainerr.MalformedTransfer,
			"Could not parse transaction list '%s'", token,
		)
	}

	dest := parts[1]
	to, _, _ := strings.Cut(dest, "(")
	group := amountPattern.FindString(dest)
	if group == "" {
		return nil, chainerr.Errorf(
			chainerr.MissingAmount,
			"The transaction '%s' must contain its value in parenthesis", token,
		)
	}

	body := strings.NewReplacer("(", "", ")", "").Replace(group)
	if !numeric.IsNumeric(body) {
		return nil, chainerr.Errorf(
			chainerr.NonNumericAmount,
			"The amount '%s' is not numeric", body,
		)
	}

	if position == total && !strings.Contains(token, SystemAddress) {
		return nil, chainerr.Errorf(
			chainerr.MissingSystemReward,
			"The SYSTEM transaction must be the last transaction in the string instead of '%s'", token,
		)
	}

	return &Transfer{
		From:     parts[0],
		To:       to,
		Amount:   numeric.LeadingBigInt(body),
		Position: position,
		Total:    total,
	}, nil
}

// ParseTransfers parses every transfer of a block in order, stopping at the first error.
func ParseTransfers(field string) ([]*Transfer, error) {
	tokens, err := Split(field)
	if err != nil {
		return nil, err
	}

	txs := make([]*Transfer, 0, len(tokens))
	for i, token := range tokens {
		tx, err := ParseTransfer(token, i+1, len(tokens))
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
