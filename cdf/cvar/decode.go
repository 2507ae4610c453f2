package cvar

import (
	"cdf-scope/cdf/cattr"
	"cdf-scope/cdf/cbytes"
	"cdf-scope/cdf/clist"
	"cdf-scope/cdf/cvalue"
	"github.com/pkg/errors"
)

type (
	Variable struct {
		Name       string                      `json:"name"`
		DimIDs     []int32                     `json:"dim_ids"`
		Attributes clist.List[cattr.Attribute] `json:"attributes"`
		Type       cvalue.ElementType          `json:"type"`
		VSize      int32                       `json:"vsize"`
		Begin      int64                       `json:"begin"`
	}
)

// CreateDecodeFunction binds the header version so a variable list can be
// decoded through the tagged-list protocol, which knows nothing about
// versions.
func CreateDecodeFunction(version byte) clist.DecodeFunction[Variable] {
	return func(reader *cbytes.Reader) (*Variable, error) {
		return Decode(reader, version)
	}
}

func Decode(reader *cbytes.Reader, version byte) (*Variable, error) {
	variable := Variable{}
	err := error(nil)

	variable.Name, err = reader.ReadName()
	if err != nil {
		err := errors.Wrap(err, "cvar.Decode error: read variable.Name")
		return nil, err
	}
	count, err := reader.ReadNonNeg()
	if err != nil {
		err := errors.Wrap(err, "cvar.Decode error: read dimension id count")
		return nil, err
	}
	variable.DimIDs = make([]int32, 0, count)
	for i := int32(0); i < count; i++ {
		dimID, err := reader.ReadNonNeg()
		if err != nil {
			err := errors.Wrapf(err, "cvar.Decode error: read variable.DimIDs[%d]", i)
			return nil, err
		}
		variable.DimIDs = append(variable.DimIDs, dimID)
	}
	variable.Attributes, err = cattr.DecodeList(reader)
	if err != nil {
		err := errors.Wrap(err, "cvar.Decode error: read variable.Attributes")
		return nil, err
	}
	variable.Type, err = cvalue.ReadType(reader)
	if err != nil {
		err := errors.Wrap(err, "cvar.Decode error: read variable.Type")
		return nil, err
	}
	variable.VSize, err = reader.ReadNonNeg()
	if err != nil {
		err := errors.Wrap(err, "cvar.Decode error: read variable.VSize")
		return nil, err
	}

	// the classic format stores the data offset in 32 bits;
	// the 64-bit offset variant (version byte 2) widens it to 64 bits
	if version == 2 {
		variable.Begin, err = reader.ReadNonNegLong()
	} else {
		begin := int32(0)
		begin, err = reader.ReadNonNeg()
		variable.Begin = int64(begin)
	}
	if err != nil {
		err := errors.Wrap(err, "cvar.Decode error: read variable.Begin")
		return nil, err
	}

	return &variable, nil
}
