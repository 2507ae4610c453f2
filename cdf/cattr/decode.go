package cattr

import (
	"cdf-scope/cdf/cbytes"
	"cdf-scope/cdf/clist"
	"cdf-scope/cdf/cvalue"
	"github.com/pkg/errors"
)

type (
	// Attribute holds one decoded name/value pair. Values is a typed
	// slice of Type's Go representation, except for char attributes
	// where it is a single string.
	Attribute struct {
		Name   string             `json:"name"`
		Type   cvalue.ElementType `json:"type"`
		Values any                `json:"values"`
	}
)

func Decode(reader *cbytes.Reader) (*Attribute, error) {
	attribute := Attribute{}
	err := error(nil)

	attribute.Name, err = reader.ReadName()
	if err != nil {
		err := errors.Wrap(err, "cattr.Decode error: read attribute.Name")
		return nil, err
	}
	attribute.Type, err = cvalue.ReadType(reader)
	if err != nil {
		err := errors.Wrap(err, "cattr.Decode error: read attribute.Type")
		return nil, err
	}
	count, err := reader.ReadNonNeg()
	if err != nil {
		err := errors.Wrap(err, "cattr.Decode error: read value count")
		return nil, err
	}
	attribute.Values, err = cvalue.ReadValues(reader, attribute.Type, int(count))
	if err != nil {
		err := errors.Wrap(err, "cattr.Decode error: read attribute.Values")
		return nil, err
	}

	return &attribute, nil
}

func DecodeList(reader *cbytes.Reader) (clist.List[Attribute], error) {
	return clist.Decode(reader, clist.TagAttribute, Decode)
}
