// SPDX-License-Identifier: MIT

package cache

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Memo memoizes string-keyed computations of V. The zero value is ready to
// use. Safe for concurrent use.
type Memo[V any] struct {
	group  singleflight.Group
	mu     sync.RWMutex
	values map[string]V
}

// Do returns the cached value for key, computing it via compute on first
// use. Concurrent first callers share a single computation; a computation
// error is returned to every waiter and nothing is cached for the key.
func (m *Memo[V]) Do(key string, compute func() (V, error)) (V, error) {
	m.mu.RLock()
	v, ok := m.values[key]
	m.mu.RUnlock()
	if ok {
		return v, nil
	}

	res, err, _ := m.group.Do(key, func() (any, error) {
		// A racing caller may have published while we queued.
		m.mu.RLock()
		cached, hit := m.values[key]
		m.mu.RUnlock()
		if hit {
			return cached, nil
		}

		computed, cerr := compute()
		if cerr != nil {
			return nil, cerr
		}

		m.mu.Lock()
		if m.values == nil {
			m.values = make(map[string]V)
		}
		m.values[key] = computed
		m.mu.Unlock()

		return computed, nil
	})
	if err != nil {
		var zero V

		return zero, err
	}

	return res.(V), nil
}

// Cached reports the published value for key, if any, without computing.
func (m *Memo[V]) Cached(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]

	return v, ok
}
