package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingularGetMiss(t *testing.T) {
	c := NewSingular[int]("miss")

	var v int
	assert.ErrorIs(t, c.Get(&v), ErrNotFound)
}

func TestSingularMutexGetSetComputesOnce(t *testing.T) {
	c := NewSingular[[]int]("once")

	var calls int32
	valueFunc := func() ([]int, error) {
		atomic.AddInt32(&calls, 1)
		return []int{1, 2, 3}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var got []int
			assert.NoError(t, c.MutexGetSet(&got, valueFunc, 0))
			assert.Equal(t, []int{1, 2, 3}, got)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestSingularMutexGetSetPropagatesError(t *testing.T) {
	c := NewSingular[int]("err")
	boom := errors.New("boom")

	var v int
	assert.ErrorIs(t, c.MutexGetSet(&v, func() (int, error) { return 0, boom }, 0), boom)
	assert.ErrorIs(t, c.Get(&v), ErrNotFound, "failed computations are not cached")
}

func TestSingularDelete(t *testing.T) {
	c := NewSingular[string]("delete")
	require.NoError(t, c.Set("value", 0))
	require.NoError(t, c.Delete())

	var v string
	assert.ErrorIs(t, c.Get(&v), ErrNotFound)
}
