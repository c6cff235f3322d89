package entity

import (
	"sort"
	"strings"
)

// Headers is a header map that keeps keys as provided and matches them
// case-insensitively. Setting a key replaces any differently-cased duplicate.
type Headers map[string]string

// Set stores value under key, dropping case-insensitive duplicates.
func (h Headers) Set(key, value string) {
	for k := range h {
		if k != key && strings.EqualFold(k, key) {
			delete(h, k)
		}
	}
	h[key] = value
}

// Get returns the value for key in any case.
func (h Headers) Get(key string) string {
	if v, ok := h[key]; ok {
		return v
	}
	for k, v := range h {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// Has reports whether key is present in any case.
func (h Headers) Has(key string) bool {
	for k := range h {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// Del removes key in every case.
func (h Headers) Del(key string) {
	for k := range h {
		if strings.EqualFold(k, key) {
			delete(h, k)
		}
	}
}

// Clone returns a copy of h.
func (h Headers) Clone() Headers {
	out := make(Headers, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}

// Keys returns the keys sorted for stable output.
func (h Headers) Keys() []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
