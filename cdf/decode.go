package cdf

import (
	"cdf-scope/cdf/cattr"
	"cdf-scope/cdf/cbytes"
	"cdf-scope/cdf/cdim"
	"cdf-scope/cdf/cheader"
	"cdf-scope/cdf/clist"
	"cdf-scope/cdf/cvar"
	"github.com/pkg/errors"
)

// DecodeHeader reads the whole header region in its fixed order:
// magic and version, record count, dimension list, global attribute
// list, variable list. The first violation aborts the decode; no
// partial header is ever returned.
func DecodeHeader(reader *cbytes.Reader) (*Header, error) {
	header := Header{}
	err := error(nil)

	preamble, err := cheader.Decode(reader)
	if err != nil {
		return nil, err
	}
	header.Version = preamble.Version
	header.NumRecs = preamble.NumRecs

	header.Dimensions, err = clist.Decode(reader, clist.TagDimension, cdim.Decode)
	if err != nil {
		err := errors.Wrap(err, "cdf.DecodeHeader error: read dimension list")
		return nil, err
	}
	header.GlobalAttributes, err = cattr.DecodeList(reader)
	if err != nil {
		err := errors.Wrap(err, "cdf.DecodeHeader error: read global attribute list")
		return nil, err
	}
	header.Variables, err = clist.Decode(reader, clist.TagVariable, cvar.CreateDecodeFunction(header.Version))
	if err != nil {
		err := errors.Wrap(err, "cdf.DecodeHeader error: read variable list")
		return nil, err
	}

	return &header, nil
}

func Decode(bs []byte) (*Header, error) {
	return DecodeHeader(cbytes.NewBytesReader(bs))
}
