package cvalue

import (
	"encoding/binary"
	"math"

	"cdf-scope/cdf/cbytes"
	"cdf-scope/ds"
	"github.com/pkg/errors"
)

var ErrUnknownType = errors.New("unknown element type")

func ReadType(reader *cbytes.Reader) (ElementType, error) {
	position := reader.Position()
	code, err := reader.ReadInt()
	if err != nil {
		err := errors.Wrap(err, "ReadType error: read type code")
		return 0, err
	}
	elementType := ElementType(code)
	switch elementType {
	case TypeByte, TypeChar, TypeShort, TypeInt, TypeFloat, TypeDouble:
		return elementType, nil
	}
	err = errors.Wrapf(
		ErrUnknownType,
		"ReadType error: found code %d at offset %d",
		code, position,
	)
	return 0, err
}

// ReadValues reads count elements of the given type from a span that is
// zero-padded to the next 4-byte boundary. The padding bytes are discarded
// without inspection. A char span is returned as a single string of length
// count rather than a slice of single-byte elements.
func ReadValues(reader *cbytes.Reader, elementType ElementType, count int) (any, error) {
	rawLength := count * elementType.Width()
	paddedLength := ds.NearestDivisibleByM(rawLength, 4)
	bs, err := reader.ReadBytes(paddedLength)
	if err != nil {
		err := errors.Wrapf(
			err,
			`ReadValues error: read %d "%s" elements`,
			count, elementType,
		)
		return nil, err
	}
	bs = bs[:rawLength]

	switch elementType {
	case TypeByte:
		values := make([]int8, 0, count)
		for _, rawByte := range bs {
			values = append(values, int8(rawByte))
		}
		return values, nil
	case TypeChar:
		return string(bs), nil
	case TypeShort:
		values := make([]int16, 0, count)
		for i := 0; i < count; i++ {
			values = append(values, int16(binary.BigEndian.Uint16(bs[i*2:])))
		}
		return values, nil
	case TypeInt:
		values := make([]int32, 0, count)
		for i := 0; i < count; i++ {
			values = append(values, int32(binary.BigEndian.Uint32(bs[i*4:])))
		}
		return values, nil
	case TypeFloat:
		values := make([]float32, 0, count)
		for i := 0; i < count; i++ {
			values = append(values, math.Float32frombits(binary.BigEndian.Uint32(bs[i*4:])))
		}
		return values, nil
	case TypeDouble:
		values := make([]float64, 0, count)
		for i := 0; i < count; i++ {
			values = append(values, math.Float64frombits(binary.BigEndian.Uint64(bs[i*8:])))
		}
		return values, nil
	}

	return nil, ds.ErrUnreachableCode{Caller: "cvalue.ReadValues"}
}
