// Package cdf stores the code to decode the header region of NetCDF
// classic (CDF-1) and 64-bit offset (CDF-2) files.
package cdf

import (
	"cdf-scope/cdf/cattr"
	"cdf-scope/cdf/cdim"
	"cdf-scope/cdf/cheader"
	"cdf-scope/cdf/clist"
	"cdf-scope/cdf/cvar"
)

type (
	Header struct {
		Version          byte                        `json:"version"`
		NumRecs          cheader.RecordCount         `json:"numrecs"`
		Dimensions       clist.List[cdim.Dimension]  `json:"dim_list"`
		GlobalAttributes clist.List[cattr.Attribute] `json:"gatt_list"`
		Variables        clist.List[cvar.Variable]   `json:"var_list"`
	}
)

func IsCDFFile(bs []byte) bool {
	return len(bs) >= 4 && cheader.IsValidMagic(bs[:4])
}
