// Package fieldpath resolves dotted field paths ("files.@id") against decoded
// JSON records. Resolution is explicit about absence so callers can tell "no
// such field" apart from "present but empty".
package fieldpath

import "strings"

// Resolve walks path key by key through record. The boolean result is false
// when any key along the way is missing or an intermediate value is not an
// object; a present-but-null leaf still resolves true.
func Resolve(record map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	current := record
	keys := strings.Split(path, ".")
	for i, key := range keys {
		value, ok := current[key]
		if !ok {
			return nil, false
		}
		if i == len(keys)-1 {
			return value, true
		}
		next, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// Parent drops the final segment of a dotted path. A path with no dot is its
// own parent: "files.@id" filters on the length of "files", while a bare
// "status" filters on the status value itself.
func Parent(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[:i]
	}
	return path
}
