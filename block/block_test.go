package block

import (
	"testing"

	"github.com/aperturerobotics/billcoin/chainerr"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	line := "9|a91|402207>794343(10):SYSTEM>689881(100)|1553184699.691433000|676e\n"
	r, err := ParseRecord(line)
	require.NoError(t, err)
	require.Equal(t, "9", r.BlockNumber)
	require.Equal(t, "a91", r.PreviousHash)
	require.Equal(t, "402207>794343(10):SYSTEM>689881(100)", r.TransferField)
	require.Equal(t, "676e", r.NextHash)
	require.Equal(t, "9|a91|402207>794343(10):SYSTEM>689881(100)|1553184699.691433000", r.HashInput())
	require.Equal(t, Timestamp{Seconds: 1553184699, Nanoseconds: 691433000}, r.Timestamp())
}

func TestParseRecordWrongLength(t *testing.T) {
	for _, line := range []string{
		"3|4d25|561180>444100(1):SYSTEM>569274(100)|1553184699.663411000",
		"3|4d25|x|1.0|abcd|extra",
		"",
	} {
		_, err := ParseRecord(line)
		require.Equal(t, chainerr.MalformedBlock, chainerr.KindOf(err))
	}
}

func TestParseRecordCRLF(t *testing.T) {
	r, err := ParseRecord("0|0|SYSTEM>100000(1)|1000.0|553b\r\n")
	require.NoError(t, err)
	require.Equal(t, "553b", r.NextHash)
}

func TestTimestampOrdering(t *testing.T) {
	prev := ParseTimestamp("1000.0000")
	require.True(t, ParseTimestamp("1000.0001").After(prev))
	require.True(t, ParseTimestamp("1001.0").After(prev))
	require.False(t, ParseTimestamp("1000.0000").After(prev))
	require.False(t, ParseTimestamp("999.9999").After(prev))
	require.True(t, ParseTimestamp("1000.0000").After(ParseTimestamp("100.0000")))
}

func TestTimestampValid(t *testing.T) {
	require.True(t, ParseTimestamp("1000.0").Valid())
	require.False(t, ParseTimestamp("-1.5").Valid())
	require.False(t, ParseTimestamp("1.-5").Valid())
}

func TestParseTimestampLenient(t *testing.T) {
	require.Equal(t, Timestamp{Seconds: 1000}, ParseTimestamp("1000"))
	require.Equal(t, Timestamp{}, ParseTimestamp("abc.def"))
	require.Equal(t, Timestamp{Seconds: 1, Nanoseconds: 2}, ParseTimestamp("1.2.3"))
	require.Equal(t, "1000.5", ParseTimestamp("1000.5").String())
}
