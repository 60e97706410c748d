// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package manifest

import (
	"iter"
	"slices"
)

// orderedMap is a map that remembers the order in which keys were first
// inserted. Setting an existing key replaces its value in place.
type orderedMap[K comparable, V any] struct {
	keys []K
	m    map[K]V
}

func newOrderedMap[K comparable, V any]() *orderedMap[K, V] {
	return &orderedMap[K, V]{m: make(map[K]V)}
}

func (om *orderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := om.m[k]
	return v, ok
}

// Set stores v under k and reports whether an existing value was replaced.
func (om *orderedMap[K, V]) Set(k K, v V) (replaced bool) {
	if _, replaced = om.m[k]; !replaced {
		om.keys = append(om.keys, k)
	}
	om.m[k] = v
	return replaced
}

func (om *orderedMap[K, V]) Len() int { return len(om.keys) }

func (om *orderedMap[K, V]) Keys() []K { return slices.Clone(om.keys) }

// All iterates over the map in insertion order.
func (om *orderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range om.keys {
			if !yield(k, om.m[k]) {
				return
			}
		}
	}
}
