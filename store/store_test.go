package store_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodify/store"
)

func TestVisitedSet_InsertOnce(t *testing.T) {
	s := store.NewVisitedSet[string](0)
	assert.True(t, s.Insert("A"))
	assert.False(t, s.Insert("A"))
	assert.True(t, s.Contains("A"))
	assert.False(t, s.Contains("B"))
	assert.Equal(t, 1, s.Len())
}

// TestVisitedSet_ConcurrentInsert checks that exactly one of many racing
// inserts of the same key wins.
func TestVisitedSet_ConcurrentInsert(t *testing.T) {
	const goroutines = 64
	const keys = 500
	s := store.NewVisitedSet[int](keys)

	var wins [keys]atomic.Int32
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for k := 0; k < keys; k++ {
				if s.Insert(k) {
					wins[k].Add(1)
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, keys, s.Len())
	for k := range wins {
		assert.EqualValues(t, 1, wins[k].Load(), "key %d", k)
	}
}

func TestDistanceTable_Relax(t *testing.T) {
	d := store.NewDistanceTable[string, uint32](4)

	_, ok := d.Get("A")
	assert.False(t, ok)

	assert.True(t, d.Relax("A", 10), "first write always succeeds")
	assert.False(t, d.Relax("A", 10), "equal distance is not an improvement")
	assert.False(t, d.Relax("A", 12))
	assert.True(t, d.Relax("A", 3))

	got, ok := d.Get("A")
	require.True(t, ok)
	assert.EqualValues(t, 3, got)
	assert.Equal(t, map[string]uint32{"A": 3}, d.Snapshot())
}

// TestDistanceTable_ConcurrentRelax races writers with every value in
// [0, n) and expects the minimum to survive.
func TestDistanceTable_ConcurrentRelax(t *testing.T) {
	const n = 2000
	d := store.NewDistanceTable[string, uint64](0)

	var improvements atomic.Int64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := n - 1; i >= 0; i-- {
		go func(v uint64) {
			defer wg.Done()
			if d.Relax("X", v) {
				improvements.Add(1)
			}
		}(uint64(i))
	}
	wg.Wait()

	got, _ := d.Get("X")
	assert.EqualValues(t, 0, got)
	assert.GreaterOrEqual(t, improvements.Load(), int64(1))
	assert.Equal(t, 1, d.Len())
}

func TestDistanceTable_Range(t *testing.T) {
	d := store.NewDistanceTable[int, uint8](0)
	for i := 0; i < 10; i++ {
		d.Relax(i, uint8(i))
	}
	var sum int
	d.Range(func(n int, w uint8) bool {
		assert.EqualValues(t, n, w)
		sum += n

		return true
	})
	assert.Equal(t, 45, sum)
}

func TestBucketMap(t *testing.T) {
	b := store.NewBucketMap[string, uint32]()

	_, ok := b.Min()
	assert.False(t, ok, "empty map has no minimum")
	assert.Nil(t, b.Take(0))

	b.Push(5, "E")
	b.Push(2, "B")
	b.Push(2, "C")
	b.Push(9, "I")

	lowest, ok := b.Min()
	require.True(t, ok)
	assert.EqualValues(t, 2, lowest)
	assert.ElementsMatch(t, []string{"B", "C"}, b.Take(2))
	assert.Nil(t, b.Take(2))

	lowest, _ = b.Min()
	assert.EqualValues(t, 5, lowest)

	// a push after Take starts a fresh bucket
	b.Push(2, "D")
	assert.Equal(t, []string{"D"}, b.Take(2))
	assert.Equal(t, 2, b.Len())
}

func TestBucketMap_ConcurrentPush(t *testing.T) {
	const goroutines = 32
	const perGoroutine = 100
	b := store.NewBucketMap[int, uint16]()

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				b.Push(uint16(i%4), g*perGoroutine+i)
			}
		}(g)
	}
	wg.Wait()

	total := 0
	for idx := uint16(0); idx < 4; idx++ {
		total += len(b.Take(idx))
	}
	assert.Equal(t, goroutines*perGoroutine, total)
	_, ok := b.Min()
	assert.False(t, ok)
}
