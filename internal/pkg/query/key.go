// Package query caches upstream fetch results under normalized keys. Each
// logical list (reports, users, riders, ...) is a namespace; the filter
// parameters that produced a fetch become part of the key, so identical
// filter inputs always hit the same slot. Mutations invalidate by exact key
// or whole namespace.
package query

import (
	"sort"
	"strings"
)

const (
	keyPrefix = "query:"
	seqPrefix = "query_seq:"
)

// Key identifies one cached fetch.
type Key struct {
	Namespace string
	params    map[string]string
}

// NewKey builds a normalized key: parameter names are lowercased, values are
// trimmed, empty values are dropped (an empty filter and an absent filter are
// the same fetch).
func NewKey(namespace string, params map[string]string) Key {
	normalized := make(map[string]string, len(params))
	for name, value := range params {
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		normalized[name] = value
	}
	return Key{Namespace: strings.ToLower(strings.TrimSpace(namespace)), params: normalized}
}

// String renders the Redis key. Parameters are sorted by name so map order
// can never produce two keys for one fetch. The namespace is terminated by
// "|", which keeps prefix invalidation from bleeding into other namespaces.
func (k Key) String() string {
	names := make([]string, 0, len(k.params))
	for name := range k.params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(keyPrefix)
	b.WriteString(k.Namespace)
	b.WriteString("|")
	for i, name := range names {
		if i > 0 {
			b.WriteString("&")
		}
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(k.params[name])
	}
	return b.String()
}

// seqKey is the companion counter key. It lives under its own prefix so
// namespace invalidation never resets issue ordering.
func (k Key) seqKey() string {
	return seqPrefix + strings.TrimPrefix(k.String(), keyPrefix)
}

// Param returns a normalized parameter value ("" when absent).
func (k Key) Param(name string) string {
	return k.params[strings.ToLower(name)]
}

// NamespacePattern is the SCAN pattern matching every key in a namespace.
func NamespacePattern(namespace string) string {
	return keyPrefix + strings.ToLower(strings.TrimSpace(namespace)) + "|*"
}
