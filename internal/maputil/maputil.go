// Package maputil provides the pure helpers the schema tree uses to inspect
// nested maps: dotted-path flattening and lookup, scalar-to-slice coercion,
// early-exit iteration, and key-subset checks.
package maputil

import (
	"sort"
	"strings"
)

// Flatten converts a nested map into a single-level map keyed by dotted
// paths. Scalar values and non-map containers are kept as-is; nested maps are
// descended into. An empty nested map contributes its own key.
func Flatten(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	flattenInto(out, "", m)
	return out
}

func flattenInto(out map[string]any, prefix string, m map[string]any) {
	for k, v := range m {
		key := joinPath(prefix, k)
		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			flattenInto(out, key, nested)
			continue
		}
		out[key] = v
	}
}

// FlattenKeys returns the dotted leaf paths of a nested map, sorted
// lexically at every level so the result is deterministic.
func FlattenKeys(m map[string]any) []string {
	var out []string
	collectKeys(&out, "", m)
	return out
}

func collectKeys(out *[]string, prefix string, m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := joinPath(prefix, k)
		if nested, ok := m[k].(map[string]any); ok && len(nested) > 0 {
			collectKeys(out, key, nested)
			continue
		}
		*out = append(*out, key)
	}
}

// ValueAt looks up a value in a nested map by dotted path. The second return
// reports whether every segment of the path resolved.
func ValueAt(m map[string]any, path string) (any, bool) {
	if path == "" {
		return m, true
	}

	current := any(m)
	for _, segment := range strings.Split(path, ".") {
		nested, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = nested[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// ToSlice coerces a scalar-or-slice value into a slice. A nil value yields
// nil, a slice is returned unchanged, anything else becomes a one-element
// slice.
func ToSlice(v any) []any {
	switch s := v.(type) {
	case nil:
		return nil
	case []any:
		return s
	case []string:
		out := make([]any, len(s))
		for i, el := range s {
			out[i] = el
		}
		return out
	default:
		return []any{v}
	}
}

// ForEach iterates a slice calling fn for every element until fn returns
// false. It reports whether the iteration ran to completion.
func ForEach(items []any, fn func(index int, value any) bool) bool {
	for i, v := range items {
		if !fn(i, v) {
			return false
		}
	}
	return true
}

// KeysWithin reports whether every top-level key of m is present in allowed.
func KeysWithin(m map[string]any, allowed []string) bool {
	for k := range m {
		if !contains(allowed, k) {
			return false
		}
	}
	return true
}

// UnknownKeys returns the dotted paths of every key of m that falls outside
// allowed, expanding nested maps so deeply-nested offenders are reported as
// parent.child. Keys are sorted lexically for deterministic reporting.
func UnknownKeys(m map[string]any, allowed []string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []string
	for _, k := range keys {
		if contains(allowed, k) {
			continue
		}
		if nested, ok := m[k].(map[string]any); ok && len(nested) > 0 {
			for _, sub := range FlattenKeys(nested) {
				out = append(out, joinPath(k, sub))
			}
			continue
		}
		out = append(out, k)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, el := range list {
		if el == s {
			return true
		}
	}
	return false
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
