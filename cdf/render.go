package cdf

import (
	"cdf-scope/cdf/cattr"
	"cdf-scope/cdf/cdim"
	"cdf-scope/cdf/clist"
	"cdf-scope/cdf/cvar"
	"github.com/iancoleman/orderedmap"
	"github.com/samber/lo"
)

// ToOrderedMap renders a decoded header for display, keeping the file
// order of dimensions, attributes, and variables through JSON
// marshalling.
func ToOrderedMap(header Header) *orderedmap.OrderedMap {
	result := orderedmap.New()
	result.Set("version", header.Version)
	result.Set("numrecs", header.NumRecs)
	result.Set("dim_list", toListValue(header.Dimensions, toDimensionEntry))
	result.Set("gatt_list", toListValue(header.GlobalAttributes, toAttributeEntry))
	result.Set("var_list", toListValue(header.Variables, toVariableEntry))
	return result
}

func toListValue[T any](list clist.List[T], toEntry func(T) *orderedmap.OrderedMap) any {
	if !list.Present {
		return "absent"
	}
	return lo.Map(
		list.Items,
		func(item T, _ int) *orderedmap.OrderedMap {
			return toEntry(item)
		},
	)
}

func toDimensionEntry(dimension cdim.Dimension) *orderedmap.OrderedMap {
	entry := orderedmap.New()
	entry.Set("name", dimension.Name)
	entry.Set("length", dimension.Length)
	entry.Set("unlimited", dimension.Unlimited())
	return entry
}

func toAttributeEntry(attribute cattr.Attribute) *orderedmap.OrderedMap {
	entry := orderedmap.New()
	entry.Set("name", attribute.Name)
	entry.Set("type", attribute.Type.String())
	entry.Set("values", attribute.Values)
	return entry
}

func toVariableEntry(variable cvar.Variable) *orderedmap.OrderedMap {
	entry := orderedmap.New()
	entry.Set("name", variable.Name)
	entry.Set("dim_ids", variable.DimIDs)
	entry.Set("attributes", toListValue(variable.Attributes, toAttributeEntry))
	entry.Set("type", variable.Type.String())
	entry.Set("vsize", variable.VSize)
	entry.Set("begin", variable.Begin)
	return entry
}
