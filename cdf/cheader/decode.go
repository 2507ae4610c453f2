package cheader

import (
	"bytes"
	"encoding/json"

	"cdf-scope/cdf/cbytes"
	"github.com/pkg/errors"
)

// MagicPrefixBytes is the literal "CDF" prefix; the fourth byte of the
// magic field is the format version.
var MagicPrefixBytes = []byte{0x43, 0x44, 0x46}

var (
	ErrBadMagic           = errors.New("bad magic prefix")
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrInvalidRecordCount = errors.New("invalid record count")
)

type (
	// Preamble is the fixed part of the header before the tagged lists.
	Preamble struct {
		Version byte        `json:"version"`
		NumRecs RecordCount `json:"numrecs"`
	}
	RecordCount int32
)

// NumRecsStreaming is the reserved record count of a file whose record
// dimension length was not fixed at header-write time.
const NumRecsStreaming RecordCount = -1

func (r RecordCount) Streaming() bool {
	return r == NumRecsStreaming
}

func (r RecordCount) MarshalJSON() ([]byte, error) {
	if r.Streaming() {
		return json.Marshal("streaming")
	}
	return json.Marshal(int32(r))
}

func IsValidMagic(bs []byte) bool {
	return len(bs) >= 4 &&
		bytes.Equal(bs[:3], MagicPrefixBytes) &&
		(bs[3] == 1 || bs[3] == 2)
}

func DecodeMagic(reader *cbytes.Reader) (byte, error) {
	magicBytes, err := reader.ReadBytes(4)
	if err != nil {
		err := errors.Wrap(err, "DecodeMagic error: read magic")
		return 0, err
	}
	if !bytes.Equal(magicBytes[:3], MagicPrefixBytes) {
		err := errors.Wrapf(
			ErrBadMagic,
			`DecodeMagic error: expected prefix "%v", found "%v"`,
			MagicPrefixBytes, magicBytes[:3],
		)
		return 0, err
	}
	version := magicBytes[3]
	if version != 1 && version != 2 {
		err := errors.Wrapf(
			ErrUnsupportedVersion,
			"DecodeMagic error: version byte %#x is not acceptable",
			version,
		)
		return 0, err
	}
	return version, nil
}

func DecodeNumRecs(reader *cbytes.Reader) (RecordCount, error) {
	position := reader.Position()
	numRecs, err := reader.ReadInt()
	if err != nil {
		err := errors.Wrap(err, "DecodeNumRecs error: read record count")
		return 0, err
	}
	if numRecs < -1 {
		err := errors.Wrapf(
			ErrInvalidRecordCount,
			"DecodeNumRecs error: found %d at offset %d",
			numRecs, position,
		)
		return 0, err
	}
	return RecordCount(numRecs), nil
}

func Decode(reader *cbytes.Reader) (*Preamble, error) {
	preamble := Preamble{}
	err := error(nil)

	preamble.Version, err = DecodeMagic(reader)
	if err != nil {
		err := errors.Wrap(err, "cheader.Decode error")
		return nil, err
	}
	preamble.NumRecs, err = DecodeNumRecs(reader)
	if err != nil {
		err := errors.Wrap(err, "cheader.Decode error")
		return nil, err
	}

	return &preamble, nil
}
