package fluentvalidation

import "sort"

// copyMap is a generic function that takes a map and returns a shallow copy
// of it. A nil map copies to an empty, non-nil map so callers can treat the
// result uniformly.
func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// sortedKeys is a function that takes a map with string keys and returns a
// slice of its keys sorted in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, len(m))
	i := 0
	for k := range m {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	return keys
}
