package cbytes

import (
	"bytes"
	"encoding/binary"
	"io"
	"unicode/utf8"

	"cdf-scope/ds"
	"github.com/pkg/errors"
)

var (
	ErrTruncated     = errors.New("truncated input")
	ErrNegativeValue = errors.New("negative value")
	ErrBadPadding    = errors.New("non-zero padding")
	ErrInvalidText   = errors.New("invalid UTF-8 text")
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// Position returns the number of bytes consumed so far.
func (b *Reader) Position() int64 {
	return b.Size() - int64(b.Len())
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of input
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	position := b.Position()
	if _, err := io.ReadFull(&b.Reader, bs); err != nil {
		err := errors.Wrapf(
			ErrTruncated,
			"ReadBytes error: wanted %d bytes at offset %d",
			n, position,
		)
		return nil, err
	}
	return bs, nil
}

func (b *Reader) ReadInt() (int32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	result := binary.BigEndian.Uint32(bs)
	return int32(result), nil
}

func (b *Reader) ReadLong() (int64, error) {
	bs, err := b.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	result := binary.BigEndian.Uint64(bs)
	return int64(result), nil
}

func (b *Reader) ReadNonNeg() (int32, error) {
	position := b.Position()
	result, err := b.ReadInt()
	if err != nil {
		return 0, err
	}
	if result < 0 {
		err := errors.Wrapf(
			ErrNegativeValue,
			"ReadNonNeg error: found %d at offset %d",
			result, position,
		)
		return 0, err
	}
	return result, nil
}

func (b *Reader) ReadNonNegLong() (int64, error) {
	position := b.Position()
	result, err := b.ReadLong()
	if err != nil {
		return 0, err
	}
	if result < 0 {
		err := errors.Wrapf(
			ErrNegativeValue,
			"ReadNonNegLong error: found %d at offset %d",
			result, position,
		)
		return 0, err
	}
	return result, nil
}

// ReadName reads a length-prefixed name that is zero-padded
// to the next 4-byte boundary.
func (b *Reader) ReadName() (string, error) {
	length, err := b.ReadNonNeg()
	if err != nil {
		err := errors.Wrap(err, "ReadName error: read length")
		return "", err
	}
	position := b.Position()
	paddedLength := ds.NearestDivisibleByM(int(length), 4)
	bs, err := b.ReadBytes(paddedLength)
	if err != nil {
		err := errors.Wrap(err, "ReadName error: read padded bytes")
		return "", err
	}
	for _, paddingByte := range bs[length:] {
		if paddingByte != 0 {
			err := errors.Wrapf(
				ErrBadPadding,
				`ReadName error: name bytes "%v" at offset %d`,
				bs, position,
			)
			return "", err
		}
	}
	if !utf8.Valid(bs[:length]) {
		err := errors.Wrapf(
			ErrInvalidText,
			`ReadName error: name bytes "%v" at offset %d`,
			bs, position,
		)
		return "", err
	}
	return string(bs[:length]), nil
}
