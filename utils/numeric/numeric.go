package numeric

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// hexIntPattern matches a hexadecimal integer literal, underscores between digits allowed.
var hexIntPattern = regexp.MustCompile(`^[+-]?0[xX][0-9a-fA-F]+(_[0-9a-fA-F]+)*$`)

// IsNumeric checks if the string is a decimal, hexadecimal or floating point literal.
// Surrounding whitespace is permitted, as are single underscores between digits.
func IsNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if hexIntPattern.MatchString(s) {
		return true
	}

	if strings.Contains(s, "_") {
		for i := 0; i < len(s); i++ {
			if s[i] == '_' && !digitsAround(s, i) {
				return false
			}
		}
		s = strings.ReplaceAll(s, "_", "")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// out of range literals are still numbers
		ne, ok := err.(*strconv.NumError)
		return ok && ne.Err == strconv.ErrRange
	}
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// leadingDigits returns the sign and decimal digits at the start of s.
// Leading whitespace is skipped and single underscores between digits are dropped.
func leadingDigits(s string) (bool, string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var digits strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' && digitsAround(s, i) {
			continue
		}
		if !isDigit(c) {
			break
		}
		digits.WriteByte(c)
	}
	return neg, digits.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// digitsAround checks that the byte at i sits between two decimal digits.
func digitsAround(s string, i int) bool {
	return i > 0 && i+1 < len(s) && isDigit(s[i-1]) && isDigit(s[i+1])
}

// LeadingInt parses the optional sign and decimal digits at the start of s.
// Parsing stops at the first non-digit and a string without leading digits
// reads as zero. Values beyond int64 saturate.
func LeadingInt(s string) int64 {
	neg, digits := leadingDigits(s)

	var v int64
	for i := 0; i < len(digits); i++ {
		d := int64(digits[i] - '0')
		if v > (math.MaxInt64-d)/10 {
			if neg {
				return math.MinInt64
			}
			return math.MaxInt64
		}
		v = v*10 + d
	}

	if neg {
		return -v
	}
	return v
}

// LeadingBigInt parses like LeadingInt without any bound on the value.
func LeadingBigInt(s string) *big.Int {
	neg, digits := leadingDigits(s)

	v := new(big.Int)
	if digits == "" {
		return v
	}
	v.SetString(digits, 10)
	if neg {
		v.Neg(v)
	}
	return v
}

// SplitFields splits s on sep and drops trailing empty fields.
func SplitFields(s, sep string) []string {
	fields := strings.Split(s, sep)
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}
