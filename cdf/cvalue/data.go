package cvalue

import (
	"encoding/json"
	"fmt"

	"cdf-scope/ds"
)

// ElementType is the closed set of primitive storage types
// usable for attribute and variable data.
type ElementType int32

const (
	TypeByte ElementType = iota + 1
	TypeChar
	TypeShort
	TypeInt
	TypeFloat
	TypeDouble
)

// Width returns the storage size of one element in bytes.
func (t ElementType) Width() int {
	switch t {
	case TypeByte, TypeChar:
		return 1
	case TypeShort:
		return 2
	case TypeInt, TypeFloat:
		return 4
	case TypeDouble:
		return 8
	}
	panic(ds.ErrUnreachableCode{Caller: fmt.Sprintf("ElementType(%d).Width", t)})
}

func (t ElementType) String() string {
	switch t {
	case TypeByte:
		return "byte"
	case TypeChar:
		return "char"
	case TypeShort:
		return "short"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	}
	return fmt.Sprintf("unknown(%d)", int32(t))
}

func (t ElementType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}
