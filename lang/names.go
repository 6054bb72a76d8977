package lang

import (
	"fmt"
	"maps"
	"slices"
)

// sortedKeys returns the names bound in a table in lexical order, or nil
// for an empty table.
func sortedKeys[T any](table map[string]T) []string {
	if len(table) == 0 {
		return nil
	}

	return slices.Sorted(maps.Keys(table))
}

// typeName names the dynamic Go type of a host value in conversion errors.
func typeName(x any) string {
	if x == nil {
		return "nil"
	}

	return fmt.Sprintf("%T", x)
}
