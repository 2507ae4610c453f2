package cdim

import (
	"cdf-scope/cdf/cbytes"
	"github.com/pkg/errors"
)

type (
	Dimension struct {
		Name   string `json:"name"`
		Length int32  `json:"length"`
	}
)

// Unlimited reports whether this is the record dimension, whose
// declared length of zero means it grows by appended records.
func (d Dimension) Unlimited() bool {
	return d.Length == 0
}

func Decode(reader *cbytes.Reader) (*Dimension, error) {
	dimension := Dimension{}
	err := error(nil)

	dimension.Name, err = reader.ReadName()
	if err != nil {
		err := errors.Wrap(err, "cdim.Decode error: read dimension.Name")
		return nil, err
	}
	dimension.Length, err = reader.ReadNonNeg()
	if err != nil {
		err := errors.Wrap(err, "cdim.Decode error: read dimension.Length")
		return nil, err
	}

	return &dimension, nil
}
