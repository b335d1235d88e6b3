package hashchain

import (
	"math/big"
)

// hashModulus bounds the digest to 16 bits.
var hashModulus = big.NewInt(65536)

var (
	bigThree = big.NewInt(3)
	bigSeven = big.NewInt(7)
	bigPow   = big.NewInt(3000)
)

// Memo caches per code point hash contributions for the duration of a run.
// Not safe for concurrent use.
type Memo struct {
	contribs map[rune]*big.Int
}

// NewMemo builds an empty memo.
func NewMemo() *Memo {
	return &Memo{contribs: make(map[rune]*big.Int)}
}

// Len returns the number of memoized code points.
func (m *Memo) Len() int {
	return len(m.contribs)
}

// get returns the contribution for v, computing and storing it if absent.
func (m *Memo) get(v rune) *big.Int {
	if c, ok := m.contribs[v]; ok {
		return c
	}
	c := Contribution(v)
	m.contribs[v] = c
	return c
}

// Contribution computes (v^3000 + v^v - 3^v) * 7^v for a code point.
// 0^0 is 1.
func Contribution(v rune) *big.Int {
	bv := big.NewInt(int64(v))

	c := new(big.Int).Exp(bv, bigPow, nil)
	c.Add(c, new(big.Int).Exp(bv, bv, nil))
	c.Sub(c, new(big.Int).Exp(bigThree, bv, nil))
	return c.Mul(c, new(big.Int).Exp(bigSeven, bv, nil))
}

// ComputeHash computes the chained hash of input as an unpadded lowercase hex string.
// If memo is nil a temporary memo is used.
func ComputeHash(input string, memo *Memo) string {
	if memo == nil {
		memo = NewMemo()
	}

	total := new(big.Int)
	for _, r := range input {
		total.Add(total, memo.get(r))
	}
	return total.Mod(total, hashModulus).Text(16)
}
