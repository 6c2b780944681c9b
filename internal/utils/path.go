package utils

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPath is returned for empty paths and paths with empty segments.
var ErrInvalidPath = errors.New("invalid path")

// SplitPath splits a dotted path such as "name.first" into its segments.
func SplitPath(path string) ([]string, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}
	parts := strings.Split(path, ".")
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}
	return parts, nil
}

// GetPath returns the value at a dotted path inside a decoded JSON object.
func GetPath(doc map[string]any, path string) (any, bool) {
	parts, err := SplitPath(path)
	if err != nil {
		return nil, false
	}

	var cur any = doc
	for _, p := range parts {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = obj[p]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// SetPath replaces the value at an existing dotted path inside a decoded JSON
// object. Intermediate objects are never created.
func SetPath(doc map[string]any, path string, value any) error {
	parts, err := SplitPath(path)
	if err != nil {
		return err
	}

	obj := doc
	for _, p := range parts[:len(parts)-1] {
		next, ok := obj[p].(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q is not an object", ErrInvalidPath, p)
		}
		obj = next
	}

	last := parts[len(parts)-1]
	if _, ok := obj[last]; !ok {
		return fmt.Errorf("%w: %q not found", ErrInvalidPath, path)
	}
	obj[last] = value
	return nil
}
