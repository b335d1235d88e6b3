package block

import (
	"strings"

	"github.com/aperturerobotics/billcoin/chainerr"
)

// FieldCount is the number of pipe separated fields in a block line.
const FieldCount = 5

// GenesisPrevHash is the previous hash recorded by the genesis block.
const GenesisPrevHash = "0"

// Record is a parsed block line.
type Record struct {
	// Raw is the line the record was parsed from, without the line terminator.
	Raw string
	// BlockNumber is the recorded sequence number.
	BlockNumber string
	// PreviousHash is the recorded hash of the previous block.
	PreviousHash string
	// TransferField is the colon separated list of transfers.
	TransferField string
	// TimestampField is the recorded seconds.nanoseconds timestamp.
	TimestampField string
	// NextHash is the recorded hash of this block.
	NextHash string
}

// ParseRecord splits a block line into its fields.
func ParseRecord(line string) (*Record, error) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, "|")
	if len(fields) != FieldCount {
		return nil, chainerr.Errorf(
			chainerr.MalformedBlock,
			"Could not parse block chain string '%s' as it requires exactly %d elements",
			line, FieldCount,
		)
	}

	return &Record{
		Raw:            line,
		BlockNumber:    fields[0],
		PreviousHash:   fields[1],
		TransferField:  fields[2],
		TimestampField: fields[3],
		NextHash:       fields[4],
	}, nil
}

// HashInput returns the canonical string hashed to derive the next hash.
func (r *Record) HashInput() string {
	return strings.Join([]string{
		r.BlockNumber,
		r.PreviousHash,
		r.TransferField,
		r.TimestampField,
	}, "|")
}

// Timestamp parses the recorded timestamp.
func (r *Record) Timestamp() Timestamp {
	return ParseTimestamp(r.TimestampField)
}
