// Package clist implements the tagged-list protocol shared by the
// dimension, attribute, and variable sections of a header: a 4-byte tag
// that is either ABSENT (zero, followed by a zero count) or a specific
// list kind followed by count and elements.
package clist

import (
	"encoding/json"

	"cdf-scope/cdf/cbytes"
	"github.com/pkg/errors"
)

const (
	TagAbsent    int32 = 0x00000000
	TagDimension int32 = 0x0000000A
	TagVariable  int32 = 0x0000000B
	TagAttribute int32 = 0x0000000C
)

var (
	ErrWrongListTag        = errors.New("wrong list tag")
	ErrMalformedAbsentList = errors.New("malformed ABSENT list")
)

type (
	// List distinguishes a section that is absent from one that is
	// present but empty.
	List[T any] struct {
		Present bool `json:"present"`
		Items   []T  `json:"items"`
	}
	DecodeFunction[T any] func(reader *cbytes.Reader) (*T, error)
)

// MarshalJSON renders an absent list as the literal "absent",
// matching the shape ncdump-style tooling prints.
func (l List[T]) MarshalJSON() ([]byte, error) {
	if !l.Present {
		return json.Marshal("absent")
	}
	return json.Marshal(l.Items)
}

func Decode[T any](reader *cbytes.Reader, expectedTag int32, decodeOne DecodeFunction[T]) (List[T], error) {
	position := reader.Position()
	tag, err := reader.ReadInt()
	if err != nil {
		err := errors.Wrap(err, "clist.Decode error: read tag")
		return List[T]{}, err
	}

	if tag == TagAbsent {
		count, err := reader.ReadInt()
		if err != nil {
			err := errors.Wrap(err, "clist.Decode error: read count after ABSENT tag")
			return List[T]{}, err
		}
		if count != 0 {
			err := errors.Wrapf(
				ErrMalformedAbsentList,
				"clist.Decode error: expected zero count after ABSENT tag, found %d at offset %d",
				count, position,
			)
			return List[T]{}, err
		}
		return List[T]{}, nil
	}

	if tag != expectedTag {
		err := errors.Wrapf(
			ErrWrongListTag,
			`clist.Decode error: expected tag "%#010x", found "%#010x" at offset %d`,
			expectedTag, tag, position,
		)
		return List[T]{}, err
	}

	count, err := reader.ReadNonNeg()
	if err != nil {
		err := errors.Wrap(err, "clist.Decode error: read element count")
		return List[T]{}, err
	}
	items := make([]T, 0, count)
	for i := int32(0); i < count; i++ {
		item, err := decodeOne(reader)
		if err != nil {
			err := errors.Wrapf(err, "clist.Decode error: element %d", i)
			return List[T]{}, err
		}
		items = append(items, *item)
	}

	return List[T]{Present: true, Items: items}, nil
}
