// Package header implements an ordered FITS-style keyword store: an
// insertion-ordered mapping from uppercase keyword strings to values.
// The store defines no schema of its own; projection and instrument
// parameters are interpreted by the consumers that read them.
package header

import (
	"fmt"
	"sort"
	"strconv"
)

// MissingKeyError reports a keyword or metadata lookup with no default
// supplied.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("keyword %q not found", e.Key)
}

// Header is an ordered mapping of uppercase keywords to values. The zero
// value is not usable; construct with New.
//
// Header is not safe for concurrent mutation, matching the single-owner
// model of the image abstraction that holds it.
type Header struct {
	keys   []string
	values map[string]interface{}
}

// New returns an empty header.
func New() *Header {
	return &Header{values: make(map[string]interface{})}
}

// Len returns the number of keywords.
func (h *Header) Len() int { return len(h.keys) }

// Keys returns the keywords in insertion order.
func (h *Header) Keys() []string {
	out := make([]string, len(h.keys))
	copy(out, h.keys)
	return out
}

// Set stores a value under the upcased keyword, preserving the original
// insertion position when the keyword already exists.
func (h *Header) Set(key string, value interface{}) {
	key = upcase(key)
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

// Get returns the value for the upcased keyword, or a MissingKeyError.
func (h *Header) Get(key string) (interface{}, error) {
	v, ok := h.values[upcase(key)]
	if !ok {
		return nil, &MissingKeyError{Key: upcase(key)}
	}
	return v, nil
}

// GetDefault returns the value for the keyword, or def when absent.
func (h *Header) GetDefault(key string, def interface{}) interface{} {
	if v, ok := h.values[upcase(key)]; ok {
		return v
	}
	return def
}

// Has reports whether the keyword is present.
func (h *Header) Has(key string) bool {
	_, ok := h.values[upcase(key)]
	return ok
}

// Float returns the keyword value coerced to float64. Integer and string
// values are converted; anything else is an error.
func (h *Header) Float(key string) (float64, error) {
	v, err := h.Get(key)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("keyword %q: %w", upcase(key), err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("keyword %q: value %v is not numeric", upcase(key), v)
	}
}

// Update merges a keyword map into the header, upcasing every key. New
// keywords are appended in sorted order so repeated updates from unordered
// maps produce a deterministic layout.
func (h *Header) Update(kwds map[string]interface{}) {
	newKeys := make([]string, 0, len(kwds))
	for k := range kwds {
		uk := upcase(k)
		if _, ok := h.values[uk]; !ok {
			newKeys = append(newKeys, uk)
		}
	}
	sort.Strings(newKeys)
	h.keys = append(h.keys, newKeys...)
	for k, v := range kwds {
		h.values[upcase(k)] = v
	}
}

// Map returns a copy of the keyword/value mapping.
func (h *Header) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(h.values))
	for k, v := range h.values {
		out[k] = v
	}
	return out
}

// Copy returns a deep copy of the keyword order and a shallow copy of the
// values.
func (h *Header) Copy() *Header {
	out := New()
	for _, k := range h.keys {
		out.Set(k, h.values[k])
	}
	return out
}

func upcase(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
