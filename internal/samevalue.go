package internal

import "math"

// SameValue implements the GLOSSARY's "SameValue equality" (+0 and -0
// differ, NaN equals itself) for the float64 case, and falls back to Go's
// == for any other comparable dynamic type. Values whose dynamic type is
// not comparable (slices, maps, funcs) are always treated as changed — see
// SPEC_FULL.md §6.2 for why no reflect.DeepEqual fallback is used instead.
func SameValue(a, b any) (same bool) {
	if af, ok := a.(float64); ok {
		bf, ok := b.(float64)
		if !ok {
			return false
		}
		if math.IsNaN(af) && math.IsNaN(bf) {
			return true
		}
		return math.Float64bits(af) == math.Float64bits(bf)
	}

	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
