// Package builder provides the fluent statement builders. Every fluent call
// returns a fresh clone, so a partially built query can be branched and
// extended per caller without aliasing; Build never mutates the builder and
// is repeatable.
package builder

import (
	"sort"

	"github.com/satishbabariya/fluentsql/query/sqlgen"
)

// sortedColumns returns the keys of a column map in sorted order. Map-shaped
// input has no call order to preserve, and parameter numbering must stay
// reproducible across runs.
func sortedColumns(m map[string]interface{}) []string {
	cols := make([]string, 0, len(m))
	for col := range m {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

func cloneConditions(conds []sqlgen.Condition) []sqlgen.Condition {
	out := make([]sqlgen.Condition, len(conds))
	copy(out, conds)
	return out
}

func cloneStrings(ss []string) []string {
	out := make([]string, len(ss))
	copy(out, ss)
	return out
}

func cloneValues(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
