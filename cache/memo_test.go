// SPDX-License-Identifier: MIT

package cache_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cornerstone-data/bedrock/cache"
)

func TestMemo_ComputesOnce(t *testing.T) {
	t.Parallel()

	var m cache.Memo[int]
	var calls atomic.Int32

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			v, err := m.Do("k", func() (int, error) {
				calls.Add(1)

				return 7, nil
			})
			if err != nil || v != 7 {
				t.Errorf("Do: v=%d err=%v", v, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "exactly one computation per key")

	v, ok := m.Cached("k")
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestMemo_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	var m cache.Memo[string]

	a, err := m.Do("a", func() (string, error) { return "va", nil })
	require.NoError(t, err)
	b, err := m.Do("b", func() (string, error) { return "vb", nil })
	require.NoError(t, err)

	assert.Equal(t, "va", a)
	assert.Equal(t, "vb", b)
}

func TestMemo_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	var m cache.Memo[int]
	boom := errors.New("load failed")

	calls := 0
	_, err := m.Do("k", func() (int, error) {
		calls++

		return 0, boom
	})
	assert.ErrorIs(t, err, boom)

	_, ok := m.Cached("k")
	assert.False(t, ok)

	// The next call retries the computation.
	v, err := m.Do("k", func() (int, error) {
		calls++

		return 3, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, calls)
}
